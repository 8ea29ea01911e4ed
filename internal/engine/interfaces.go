package engine

import (
	"context"

	"github.com/kmrl-docs/dochub/internal/model"
)

// OCREngine abstracts optical character recognition. Implementations
// receive an encoded image and the language models to load.
type OCREngine interface {
	Recognize(ctx context.Context, image []byte, languages []string) (string, error)
}

// PDFOpener abstracts paginated PDF parsing.
type PDFOpener interface {
	Open(data []byte) (PDFDocument, error)
}

// PDFDocument exposes one parsed PDF: per-page embedded text layers and
// rasterized page images for the OCR fallback.
type PDFDocument interface {
	NumPages() int
	PageText(n int) (string, error)
	PageImage(n int) ([]byte, error)
	Close() error
}

// TranslationClient abstracts the external translation service.
type TranslationClient interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// ExtractionResult holds the outcome of text extraction for one document.
// Immutable after creation. A failed extraction carries a Fault instead of
// an error: extraction never fails outward.
type ExtractionResult struct {
	Text      string
	PageCount int
	UsedOCR   bool
	Fault     *model.Fault
}

// TranslationResult holds the outcome of the translate-if-needed step.
// Skipped is set when no translation was required (default script or empty
// input); that is not an error.
type TranslationResult struct {
	Text    string
	Skipped bool
	Fault   *model.Fault
}
