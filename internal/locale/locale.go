// Package locale is the single owner of per-language tables: locale tags for
// the speech engine, display names for prompts, and the deterministic
// fallback strings every adapter degrades to. All lookups resolve unknown
// codes to English.
package locale

import "agrivoice-go/internal/types"

type entry struct {
	tag  string // BCP-47 locale tag for the speech engine
	name string // English display name, used in AI prompts
}

var languages = map[types.LanguageCode]entry{
	types.LangEnglish:   {"en-US", "English"},
	types.LangHindi:     {"hi-IN", "Hindi"},
	types.LangTamil:     {"ta-IN", "Tamil"},
	types.LangTelugu:    {"te-IN", "Telugu"},
	types.LangKannada:   {"kn-IN", "Kannada"},
	types.LangMalayalam: {"ml-IN", "Malayalam"},
	types.LangGujarati:  {"gu-IN", "Gujarati"},
	types.LangMarathi:   {"mr-IN", "Marathi"},
	types.LangBengali:   {"bn-IN", "Bengali"},
	types.LangOdia:      {"or-IN", "Odia"},
	types.LangPunjabi:   {"pa-IN", "Punjabi"},
}

// Normalize maps an arbitrary code to a supported language, defaulting to
// English.
func Normalize(code string) types.LanguageCode {
	lang := types.LanguageCode(code)
	if _, ok := languages[lang]; ok {
		return lang
	}
	return types.LangEnglish
}

// Supported lists the supported language codes in a stable order.
func Supported() []types.LanguageCode {
	return []types.LanguageCode{
		types.LangEnglish, types.LangHindi, types.LangTamil, types.LangTelugu,
		types.LangKannada, types.LangMalayalam, types.LangGujarati,
		types.LangMarathi, types.LangBengali, types.LangOdia, types.LangPunjabi,
	}
}

// Tag returns the speech-engine locale tag, e.g. hi -> hi-IN.
func Tag(lang types.LanguageCode) string {
	if e, ok := languages[lang]; ok {
		return e.tag
	}
	return languages[types.LangEnglish].tag
}

// DisplayName returns the English name of the language for prompt text.
func DisplayName(lang types.LanguageCode) string {
	if e, ok := languages[lang]; ok {
		return e.name
	}
	return languages[types.LangEnglish].name
}
