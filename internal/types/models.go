package types

import "time"

// LanguageCode is a supported input language tag.
type LanguageCode string

const (
	LangEnglish   LanguageCode = "en"
	LangHindi     LanguageCode = "hi"
	LangTamil     LanguageCode = "ta"
	LangTelugu    LanguageCode = "te"
	LangKannada   LanguageCode = "kn"
	LangMalayalam LanguageCode = "ml"
	LangGujarati  LanguageCode = "gu"
	LangMarathi   LanguageCode = "mr"
	LangBengali   LanguageCode = "bn"
	LangOdia      LanguageCode = "or"
	LangPunjabi   LanguageCode = "pa"
)

// ProductStatus tracks the lifecycle of a listing. Transitions are
// permissive: any status may be set at any time, including back to pending.
type ProductStatus string

const (
	StatusPending   ProductStatus = "pending"
	StatusSold      ProductStatus = "sold"
	StatusExpired   ProductStatus = "expired"
	StatusCancelled ProductStatus = "cancelled"
)

// ValidStatus reports whether s is one of the known product statuses.
func ValidStatus(s ProductStatus) bool {
	switch s {
	case StatusPending, StatusSold, StatusExpired, StatusCancelled:
		return true
	}
	return false
}

type Transcript struct {
	Text       string       `json:"text"`
	Language   LanguageCode `json:"language"`
	Confidence float64      `json:"confidence,omitempty"`
}

// ProductInfo holds the fields extracted from a transcript. Values are
// free-text with embedded units and currency symbols; the source text is
// multilingual and unit conventions vary, so no numeric normalization is
// attempted.
type ProductInfo struct {
	Product      string `json:"product"`
	Quantity     string `json:"quantity"`
	Price        string `json:"price"`
	PricePerUnit string `json:"price_per_unit,omitempty"`
	OriginalText string `json:"original_text,omitempty"`
}

type Suggestions struct {
	Description string `json:"description"`
	PriceRange  string `json:"price_range"`
	WhereToSell string `json:"where_to_sell"`
	SellingTip  string `json:"selling_tip"`
}

// ImprovementSuggestions is generated for listings that stay unsold.
type ImprovementSuggestions struct {
	PricingSuggestions  string `json:"pricing_suggestions"`
	PresentationTips    string `json:"presentation_tips"`
	MarketingIdeas      string `json:"marketing_ideas"`
	AlternativeChannels string `json:"alternative_channels"`
}

// ListingRecord is the persisted farmer-facing product listing.
type ListingRecord struct {
	ID           string                  `json:"id"`
	FarmerMobile string                  `json:"farmer_mobile"`
	ProductInfo  ProductInfo             `json:"product_info"`
	Suggestions  Suggestions             `json:"suggestions"`
	Improvements *ImprovementSuggestions `json:"improvement_suggestions,omitempty"`
	Transcript   Transcript              `json:"transcript"`
	AudioURL     string                  `json:"audio_url,omitempty"`
	Status       ProductStatus           `json:"status"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

type FarmerProfile struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email,omitempty"`
	Mobile      string       `json:"mobile"`
	Language    LanguageCode `json:"language"`
	VillageCity string       `json:"village_city,omitempty"`
	// bcrypt hash, never serialized
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// VoiceProcessRequest is the input to the voice-to-listing pipeline.
type VoiceProcessRequest struct {
	AudioData       string `json:"audio_data,omitempty"`
	TranscribedText string `json:"transcribed_text,omitempty"`
	Language        string `json:"language"`
	FarmerMobile    string `json:"farmer_mobile,omitempty"`
}

// VoiceProcessResult is the flat response contract returned to the farmer's
// device after a pipeline run.
type VoiceProcessResult struct {
	Success             bool         `json:"success"`
	TranscribedText     string       `json:"transcribed_text"`
	Product             string       `json:"product"`
	Quantity            string       `json:"quantity"`
	Price               string       `json:"price"`
	Description         string       `json:"description"`
	SuggestedPriceRange string       `json:"suggested_price_range"`
	MarketSuggestion    string       `json:"market_suggestion"`
	SellingTip          string       `json:"selling_tip"`
	ProductID           string       `json:"product_id"`
	Language            LanguageCode `json:"language"`
}

// ListingStats summarizes a farmer's listings for the status dashboard.
type ListingStats struct {
	Total          int     `json:"total"`
	Sold           int     `json:"sold"`
	Pending        int     `json:"pending"`
	SoldPercentage float64 `json:"sold_percentage"`
}
