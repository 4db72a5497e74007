package ai

import (
	"context"
	"fmt"

	"agrivoice-go/internal/locale"
	"agrivoice-go/internal/logger"
	"agrivoice-go/internal/types"
)

// unknownField is the sentinel value used when extraction degrades.
const unknownField = "unknown"

// ExtractionService turns a transcript into a structured product record.
// Implementations never fail: any model or parse error degrades to the
// sentinel record carrying the original text.
type ExtractionService interface {
	Extract(ctx context.Context, tr types.Transcript) types.ProductInfo
}

// Extractor is the Gemini-backed implementation.
type Extractor struct {
	gen TextGenerator
	log *logger.Logger
}

func NewExtractor(gen TextGenerator, log *logger.Logger) *Extractor {
	return &Extractor{gen: gen, log: log.Component("ai.extractor")}
}

func (e *Extractor) Extract(ctx context.Context, tr types.Transcript) types.ProductInfo {
	reply, err := e.gen.GenerateText(ctx, extractionPrompt(tr))
	if err != nil {
		e.log.WithError(err).Warn("extraction model call failed, using sentinel record")
		return FallbackProductInfo(tr.Text)
	}
	var info types.ProductInfo
	if err := parseJSONObject(reply, &info); err != nil {
		e.log.WithError(err).Warn("extraction reply unparseable, using sentinel record")
		return FallbackProductInfo(tr.Text)
	}
	if info.Product == "" {
		info.Product = unknownField
	}
	if info.Quantity == "" {
		info.Quantity = unknownField
	}
	if info.Price == "" {
		info.Price = unknownField
	}
	return info
}

// FallbackExtractor is selected when no model is configured.
type FallbackExtractor struct{}

func (FallbackExtractor) Extract(_ context.Context, tr types.Transcript) types.ProductInfo {
	return FallbackProductInfo(tr.Text)
}

// FallbackProductInfo builds the sentinel record, preserving the source text
// so nothing the farmer said is lost.
func FallbackProductInfo(originalText string) types.ProductInfo {
	return types.ProductInfo{
		Product:      unknownField,
		Quantity:     unknownField,
		Price:        unknownField,
		PricePerUnit: unknownField,
		OriginalText: originalText,
	}
}

func extractionPrompt(tr types.Transcript) string {
	langName := locale.DisplayName(tr.Language)
	return fmt.Sprintf(`Extract structured product information from this text in %s: %q

Return ONLY a JSON object with the following structure:
{
  "product": "product name",
  "quantity": "quantity with unit",
  "price": "price with currency",
  "price_per_unit": "price per unit if mentioned"
}

Example: for "I have 10 kg of onions selling at ₹30 per kg"
return {"product": "onion", "quantity": "10 kg", "price": "₹30", "price_per_unit": "₹30/kg"}

Extract only information explicitly mentioned in the text.`, langName, tr.Text)
}
