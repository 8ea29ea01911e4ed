package model

import "time"

// Source constants record how a document entered the system.
const (
	SourceUpload = "upload"
	SourceMail   = "email"
)

// Document is the registry record for one ingested file. The raw bytes and
// the produced artifacts live in the artifact store; this row is the
// structured trace of what happened to them.
type Document struct {
	ID             string  `json:"id"`
	Filename       string  `json:"filename"`
	Kind           string  `json:"kind"`
	Source         string  `json:"source"`
	Script         string  `json:"script"`
	UsedOCR        bool    `json:"used_ocr"`
	PageCount      int     `json:"page_count"`
	OriginalFile   string  `json:"original_file"`
	TranslatedFile *string `json:"translated_file"`
	ErrorKind      *string `json:"error_kind,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

// DocumentFilter holds query parameters for listing documents.
type DocumentFilter struct {
	Source []string
	Kind   []string
}

// NewDocument creates a registry record with the creation time set.
func NewDocument(id, filename, kind, source string) Document {
	return Document{
		ID:        id,
		Filename:  filename,
		Kind:      kind,
		Source:    source,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}
