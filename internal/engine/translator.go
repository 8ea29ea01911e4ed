package engine

import (
	"context"
	"strings"

	"github.com/kmrl-docs/dochub/internal/model"
)

// Translator invokes the external translation service for documents whose
// routed script is not the default language.
type Translator struct {
	client TranslationClient
}

// NewTranslator creates a translator over the given client.
func NewTranslator(client TranslationClient) *Translator {
	return &Translator{client: client}
}

// TranslateIfNeeded translates text into the default language when the
// filename routes to a non-default script. Default-script documents and
// empty or whitespace-only text are skipped, not errors. Service failures
// are captured in the result's Fault.
func (t *Translator) TranslateIfNeeded(ctx context.Context, text, filename string) TranslationResult {
	hint := Route(filename)
	if !hint.NeedsTranslation() || strings.TrimSpace(text) == "" {
		return TranslationResult{Skipped: true}
	}

	out, err := t.client.Translate(ctx, text, hint.SourceLang, defaultLang)
	if err != nil {
		return TranslationResult{Fault: model.NewFault(model.ErrTranslation, err)}
	}
	return TranslationResult{Text: out}
}
