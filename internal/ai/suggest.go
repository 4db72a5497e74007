package ai

import (
	"context"
	"fmt"
	"strings"

	"agrivoice-go/internal/locale"
	"agrivoice-go/internal/logger"
	"agrivoice-go/internal/market"
	"agrivoice-go/internal/types"
)

// SuggestionService produces the farmer-facing advice attached to a listing.
// Like extraction, implementations degrade to deterministic per-language
// templates instead of failing.
type SuggestionService interface {
	Suggest(ctx context.Context, info types.ProductInfo, tr types.Transcript) types.Suggestions
	Improve(ctx context.Context, info types.ProductInfo, lang types.LanguageCode) types.ImprovementSuggestions
}

// Suggester is the Gemini-backed implementation, optionally grounded in the
// commodity reference sheet.
type Suggester struct {
	gen TextGenerator
	ref *market.Reference
	log *logger.Logger
}

func NewSuggester(gen TextGenerator, ref *market.Reference, log *logger.Logger) *Suggester {
	return &Suggester{gen: gen, ref: ref, log: log.Component("ai.suggester")}
}

func (s *Suggester) Suggest(ctx context.Context, info types.ProductInfo, tr types.Transcript) types.Suggestions {
	reply, err := s.gen.GenerateText(ctx, s.suggestionPrompt(info, tr))
	if err != nil {
		s.log.WithError(err).Warn("suggestion model call failed, using language templates")
		return fallbackSuggestionsFor(info, tr.Language, s.ref)
	}
	var out types.Suggestions
	if err := parseJSONObject(reply, &out); err != nil {
		s.log.WithError(err).Warn("suggestion reply unparseable, using language templates")
		return fallbackSuggestionsFor(info, tr.Language, s.ref)
	}
	// a listing must never ship with empty advice fields
	fb := fallbackSuggestionsFor(info, tr.Language, s.ref)
	if out.Description == "" {
		out.Description = fb.Description
	}
	if out.PriceRange == "" {
		out.PriceRange = fb.PriceRange
	}
	if out.WhereToSell == "" {
		out.WhereToSell = fb.WhereToSell
	}
	if out.SellingTip == "" {
		out.SellingTip = fb.SellingTip
	}
	return out
}

func (s *Suggester) Improve(ctx context.Context, info types.ProductInfo, lang types.LanguageCode) types.ImprovementSuggestions {
	reply, err := s.gen.GenerateText(ctx, improvementPrompt(info, lang))
	if err != nil {
		s.log.WithError(err).Warn("improvement model call failed, using templates")
		return locale.FallbackImprovements(lang)
	}
	var out types.ImprovementSuggestions
	if err := parseJSONObject(reply, &out); err != nil {
		s.log.WithError(err).Warn("improvement reply unparseable, using templates")
		return locale.FallbackImprovements(lang)
	}
	return out
}

// FallbackSuggester is selected when no model is configured.
type FallbackSuggester struct {
	Ref *market.Reference
}

func (f FallbackSuggester) Suggest(_ context.Context, info types.ProductInfo, tr types.Transcript) types.Suggestions {
	return fallbackSuggestionsFor(info, tr.Language, f.Ref)
}

func (f FallbackSuggester) Improve(_ context.Context, _ types.ProductInfo, lang types.LanguageCode) types.ImprovementSuggestions {
	return locale.FallbackImprovements(lang)
}

func fallbackSuggestionsFor(info types.ProductInfo, lang types.LanguageCode, ref *market.Reference) types.Suggestions {
	out := locale.FallbackSuggestions(lang)
	if band, ok := ref.Lookup(info.Product); ok && band.MinPrice != "" && band.MaxPrice != "" {
		out.PriceRange = fmt.Sprintf("%s - %s per %s", band.MinPrice, band.MaxPrice, band.Unit)
	}
	return out
}

func (s *Suggester) suggestionPrompt(info types.ProductInfo, tr types.Transcript) string {
	langName := locale.DisplayName(tr.Language)
	var b strings.Builder
	fmt.Fprintf(&b, "A farmer has %s of %s and is selling at %s.\n", info.Quantity, info.Product, info.Price)
	if band, ok := s.ref.Lookup(info.Product); ok {
		fmt.Fprintf(&b, "Current mandi reference rate for %s: %s to %s per %s. Ground your price range in this.\n",
			band.Commodity, band.MinPrice, band.MaxPrice, band.Unit)
	}
	fmt.Fprintf(&b, `
Generate the following in %[1]s:
1. A short product description (2-3 sentences)
2. A suggested minimum and maximum market price range for %[2]s today
3. Where the farmer can sell the %[2]s (local market, online agri-portal, nearby town)
4. A simple promotional tip to attract buyers

Return ONLY a JSON object with this structure:
{
  "description": "product description in %[1]s",
  "price_range": "suggested price range",
  "where_to_sell": "market suggestions in %[1]s",
  "selling_tip": "promotional tip in %[1]s"
}

Make the response practical and appropriate for Indian farmers.`, langName, info.Product)
	return b.String()
}

func improvementPrompt(info types.ProductInfo, lang types.LanguageCode) string {
	langName := locale.DisplayName(lang)
	return fmt.Sprintf(`A farmer's %s has not sold for several days.
Generate improvement suggestions in %s to help sell it.

Consider pricing adjustments, better presentation, alternative selling
channels and marketing improvements.

Return ONLY a JSON object with this structure:
{
  "pricing_suggestions": "pricing tips in %[2]s",
  "presentation_tips": "presentation tips in %[2]s",
  "marketing_ideas": "marketing ideas in %[2]s",
  "alternative_channels": "alternative channels in %[2]s"
}`, info.Product, langName)
}
