package engine

import (
	"path/filepath"
	"strings"
)

// Kind is the extraction strategy selected for a file.
type Kind string

// Supported document kinds.
const (
	KindPDF         Kind = "pdf"
	KindImage       Kind = "image"
	KindPlainText   Kind = "text"
	KindUnsupported Kind = "unsupported"
)

// Classify picks the extraction strategy for a filename by case-insensitive
// suffix matching. It performs no I/O and is total over all strings.
func Classify(filename string) Kind {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return KindPDF
	case ".png", ".jpg", ".jpeg":
		return KindImage
	case ".txt":
		return KindPlainText
	default:
		return KindUnsupported
	}
}

// Supported reports whether any extraction strategy accepts the filename.
func Supported(filename string) bool {
	return Classify(filename) != KindUnsupported
}
