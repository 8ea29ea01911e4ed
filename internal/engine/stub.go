package engine

import (
	"context"
	"strings"
)

// StubOCR returns canned OCR output (for development/testing).
type StubOCR struct{}

func (*StubOCR) Recognize(_ context.Context, _ []byte, languages []string) (string, error) {
	return "stub ocr output (" + strings.Join(languages, "+") + ")", nil
}

// StubTranslator echoes its input tagged with the language pair (for
// development/testing without a translation backend).
type StubTranslator struct{}

func (*StubTranslator) Translate(_ context.Context, text, sourceLang, targetLang string) (string, error) {
	return "[" + sourceLang + "->" + targetLang + "] " + text, nil
}
