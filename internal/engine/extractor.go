package engine

import (
	"context"
	"strings"

	"github.com/kmrl-docs/dochub/internal/model"
)

// unsupportedText is the sentinel returned for files no strategy accepts.
const unsupportedText = "Unsupported file format"

// Extractor turns a document into raw text. Plain text is decoded directly,
// images go straight to OCR, and PDFs use their embedded text layer with a
// per-page OCR fallback for scanned pages.
type Extractor struct {
	ocr OCREngine
	pdf PDFOpener
}

// NewExtractor creates an extractor over the given OCR and PDF collaborators.
func NewExtractor(ocr OCREngine, pdf PDFOpener) *Extractor {
	return &Extractor{ocr: ocr, pdf: pdf}
}

// Extract produces the raw text for a document. Parse and OCR failures are
// captured in the result's Fault rather than returned; callers always get a
// result.
func (e *Extractor) Extract(ctx context.Context, data []byte, filename string) ExtractionResult {
	var res ExtractionResult

	switch Classify(filename) {
	case KindPlainText:
		// Invalid byte sequences are dropped, not fatal.
		res.Text = strings.ToValidUTF8(string(data), "")

	case KindImage:
		hint := Route(filename)
		text, err := e.ocr.Recognize(ctx, data, hint.OCRLanguages)
		if err != nil {
			res.Fault = model.NewFault(model.ErrExtraction, err)
			break
		}
		res.Text = text
		res.UsedOCR = true

	case KindPDF:
		res = e.extractPDF(ctx, data, filename)

	default:
		res.Text = unsupportedText
	}

	res.Text = cleanText(res.Text)
	return res
}

// extractPDF walks the document page by page. A page whose embedded text
// layer is non-empty after trimming is used verbatim; otherwise the page is
// rasterized and sent through OCR. Pages are joined with newlines, so a
// mixed PDF yields mixed-provenance text.
func (e *Extractor) extractPDF(ctx context.Context, data []byte, filename string) ExtractionResult {
	var res ExtractionResult

	doc, err := e.pdf.Open(data)
	if err != nil {
		res.Fault = model.NewFault(model.ErrExtraction, err)
		return res
	}
	defer doc.Close()

	res.PageCount = doc.NumPages()
	hint := Route(filename)

	var b strings.Builder
	for i := 0; i < res.PageCount; i++ {
		pageText, err := doc.PageText(i)
		if err != nil {
			res.Fault = model.NewFault(model.ErrExtraction, err)
			return res
		}
		if strings.TrimSpace(pageText) != "" {
			b.WriteString(pageText)
			b.WriteString("\n")
			continue
		}

		img, err := doc.PageImage(i)
		if err != nil {
			res.Fault = model.NewFault(model.ErrExtraction, err)
			return res
		}
		ocrText, err := e.ocr.Recognize(ctx, img, hint.OCRLanguages)
		if err != nil {
			res.Fault = model.NewFault(model.ErrExtraction, err)
			return res
		}
		res.UsedOCR = true
		b.WriteString(ocrText)
		b.WriteString("\n")
	}

	res.Text = b.String()
	return res
}

// cleanText strips form-feed control characters and surrounding whitespace.
func cleanText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\f", ""))
}
