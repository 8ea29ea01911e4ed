package engine

import (
	"context"
	"fmt"

	"github.com/kmrl-docs/dochub/internal/artifact"
	"github.com/kmrl-docs/dochub/internal/model"
)

// Pipeline composes classification, extraction, script routing, translation,
// and artifact persistence for a single document.
type Pipeline struct {
	extractor  *Extractor
	translator *Translator
	artifacts  *artifact.Store
}

// NewPipeline creates a pipeline with the given dependencies.
func NewPipeline(extractor *Extractor, translator *Translator, artifacts *artifact.Store) *Pipeline {
	return &Pipeline{extractor: extractor, translator: translator, artifacts: artifacts}
}

// Result is the outcome of one ingestion. Soft failures are rendered into
// the text fields, matching what the artifact store persisted, and tagged in
// ErrorKind for structured handling.
type Result struct {
	Original       string  `json:"original"`
	Translated     string  `json:"translated"`
	OriginalFile   string  `json:"original_file"`
	TranslatedFile *string `json:"translated_file"`
	ErrorKind      *string `json:"error_kind,omitempty"`

	Kind      Kind   `json:"-"`
	Script    string `json:"-"`
	UsedOCR   bool   `json:"-"`
	PageCount int    `json:"-"`
}

// Ingest runs the full pipeline for one document. Extraction and translation
// failures surface as text content inside the result, never as a returned
// error; the only error path is an unwritable artifact store.
func (p *Pipeline) Ingest(ctx context.Context, data []byte, filename string) (Result, error) {
	res := Result{
		Kind:   Classify(filename),
		Script: Route(filename).Name,
	}

	extraction := p.extractor.Extract(ctx, data, filename)
	res.UsedOCR = extraction.UsedOCR
	res.PageCount = extraction.PageCount

	text := extraction.Text
	if extraction.Fault != nil {
		text = "OCR/Read Error: " + extraction.Fault.Detail
		res.ErrorKind = errorKind(extraction.Fault)
	}
	res.Original = text

	name, err := p.artifacts.Save(text, artifact.RoleOriginal, filename)
	if err != nil {
		return res, fmt.Errorf("save original: %w", err)
	}
	res.OriginalFile = name

	translation := p.translator.TranslateIfNeeded(ctx, text, filename)
	switch {
	case translation.Fault != nil:
		res.Translated = "Translation Error: " + translation.Fault.Detail
		res.ErrorKind = errorKind(translation.Fault)
	case translation.Skipped:
		// Default script or nothing to translate: empty translation, no artifact.
	default:
		res.Translated = translation.Text
		translatedName, err := p.artifacts.Save(translation.Text, artifact.RoleTranslated, filename)
		if err != nil {
			return res, fmt.Errorf("save translation: %w", err)
		}
		res.TranslatedFile = &translatedName
	}

	return res, nil
}

// Document converts the result into a registry record.
func (r Result) Document(id, filename, source string) model.Document {
	doc := model.NewDocument(id, filename, string(r.Kind), source)
	doc.Script = r.Script
	doc.UsedOCR = r.UsedOCR
	doc.PageCount = r.PageCount
	doc.OriginalFile = r.OriginalFile
	doc.TranslatedFile = r.TranslatedFile
	doc.ErrorKind = r.ErrorKind
	return doc
}

func errorKind(f *model.Fault) *string {
	kind := string(f.Kind)
	return &kind
}
