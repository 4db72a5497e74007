package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agrivoice-go/internal/types"
)

func TestNormalizeUnknownDefaultsToEnglish(t *testing.T) {
	for _, code := range []string{"", "fr", "xx", "EN", "hindi"} {
		assert.Equal(t, types.LangEnglish, Normalize(code), "code %q", code)
	}
}

func TestNormalizeSupported(t *testing.T) {
	assert.Equal(t, types.LangHindi, Normalize("hi"))
	assert.Equal(t, types.LangOdia, Normalize("or"))
}

func TestTagMapping(t *testing.T) {
	assert.Equal(t, "hi-IN", Tag(types.LangHindi))
	assert.Equal(t, "en-US", Tag(types.LangEnglish))
	assert.Equal(t, "en-US", Tag(types.LanguageCode("zz")))
}

func TestFallbacksNonEmptyForAllLanguages(t *testing.T) {
	for _, lang := range Supported() {
		assert.NotEmpty(t, FallbackTranscript(lang), "transcript for %s", lang)
		s := FallbackSuggestions(lang)
		assert.NotEmpty(t, s.Description, "description for %s", lang)
		assert.NotEmpty(t, s.PriceRange, "price_range for %s", lang)
		assert.NotEmpty(t, s.WhereToSell, "where_to_sell for %s", lang)
		assert.NotEmpty(t, s.SellingTip, "selling_tip for %s", lang)

		imp := FallbackImprovements(lang)
		assert.NotEmpty(t, imp.PricingSuggestions)
		assert.NotEmpty(t, imp.PresentationTips)
		assert.NotEmpty(t, imp.MarketingIdeas)
		assert.NotEmpty(t, imp.AlternativeChannels)
	}
}

func TestFallbacksAreLanguageSpecific(t *testing.T) {
	assert.NotEqual(t, FallbackTranscript(types.LangHindi), FallbackTranscript(types.LangTamil))
	assert.NotEqual(t, FallbackSuggestions(types.LangHindi).Description, FallbackSuggestions(types.LangBengali).Description)
}

func TestFallbackUnknownLanguageUsesEnglish(t *testing.T) {
	assert.Equal(t, FallbackTranscript(types.LangEnglish), FallbackTranscript(types.LanguageCode("zz")))
	assert.Equal(t, FallbackSuggestions(types.LangEnglish), FallbackSuggestions(types.LanguageCode("zz")))
}
