package engine

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/gen2brain/go-fitz"
)

// FitzOpener implements PDFOpener on top of MuPDF via go-fitz.
type FitzOpener struct{}

// NewFitzOpener creates a new MuPDF-backed PDF opener.
func NewFitzOpener() *FitzOpener {
	return &FitzOpener{}
}

// Open parses a PDF from memory.
func (*FitzOpener) Open(data []byte) (PDFDocument, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return &fitzDocument{doc: doc}, nil
}

type fitzDocument struct {
	doc *fitz.Document
}

func (d *fitzDocument) NumPages() int {
	return d.doc.NumPage()
}

// PageText returns the page's embedded text layer.
func (d *fitzDocument) PageText(n int) (string, error) {
	return d.doc.Text(n)
}

// PageImage rasterizes the page and encodes it as PNG for the OCR engine.
func (d *fitzDocument) PageImage(n int) ([]byte, error) {
	img, err := d.doc.Image(n)
	if err != nil {
		return nil, fmt.Errorf("rasterize page %d: %w", n, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode page %d: %w", n, err)
	}
	return buf.Bytes(), nil
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}
