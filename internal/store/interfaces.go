package store

import (
	"context"

	"github.com/kmrl-docs/dochub/internal/model"
)

// DocumentReader provides read access to the document registry.
type DocumentReader interface {
	GetDocument(ctx context.Context, id string) (*model.Document, error)
	ListDocuments(ctx context.Context, f model.DocumentFilter) ([]model.Document, error)
}

// DocumentWriter provides write access to the document registry.
type DocumentWriter interface {
	CreateDocument(ctx context.Context, doc model.Document) error
}

// DocumentRepository combines registry operations for the API layer.
type DocumentRepository interface {
	DocumentReader
	DocumentWriter
}
