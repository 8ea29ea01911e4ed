package engine

import "strings"

// defaultLang is the language documents are assumed to be in when no
// script token appears in the filename. It is also the translation target.
const defaultLang = "en"

// ScriptHint encodes which OCR language models and which translation source
// code apply to a document, decided from its filename.
type ScriptHint struct {
	Name         string
	OCRLanguages []string
	SourceLang   string
}

// The known script hints.
var (
	HintTamil     = ScriptHint{Name: "tamil", OCRLanguages: []string{"tam", "eng"}, SourceLang: "ta"}
	HintMalayalam = ScriptHint{Name: "malayalam", OCRLanguages: []string{"mal", "eng"}, SourceLang: "ml"}
	HintDefault   = ScriptHint{Name: "default", OCRLanguages: []string{"eng"}, SourceLang: defaultLang}
)

// Route inspects the filename for a script token and returns the matching
// hint. Exactly one hint is selected per filename. Tamil is checked before
// Malayalam; that priority, and the two-script set, follow the upstream
// intake convention rather than any property of the filenames themselves.
func Route(filename string) ScriptHint {
	lower := strings.ToLower(filename)
	switch {
	case strings.Contains(lower, "tamil"):
		return HintTamil
	case strings.Contains(lower, "malayalam"):
		return HintMalayalam
	default:
		return HintDefault
	}
}

// NeedsTranslation reports whether documents routed to this hint require
// translation into the default language.
func (h ScriptHint) NeedsTranslation() bool {
	return h.SourceLang != defaultLang
}
