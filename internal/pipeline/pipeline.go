// Package pipeline sequences the voice-to-listing flow:
// Received -> Transcribed -> Extracted -> Suggested -> Stored -> Responded.
// Each stage calls one adapter; adapter-level fallbacks absorb external
// failures, so an Error escaping Run means something structurally wrong.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agrivoice-go/internal/ai"
	"agrivoice-go/internal/locale"
	"agrivoice-go/internal/logger"
	"agrivoice-go/internal/store"
	"agrivoice-go/internal/transcription"
	"agrivoice-go/internal/types"
)

const (
	StageReceived    = "received"
	StageTranscribed = "transcribed"
	StageExtracted   = "extracted"
	StageSuggested   = "suggested"
	StageStored      = "stored"
)

// ErrNoInput is returned when a request carries neither audio nor text.
var ErrNoInput = errors.New("either audio_data or transcribed_text must be provided")

// Error is a pipeline failure tagged with the stage that produced it.
type Error struct {
	Stage string
	Err   error
}

func (e *Error) Error() string { return fmt.Sprintf("pipeline stage %s: %v", e.Stage, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// Orchestrator holds the constructed adapters. It has no mutable state of
// its own; concurrent runs are independent.
type Orchestrator struct {
	transcriber transcription.Service
	extractor   ai.ExtractionService
	suggester   ai.SuggestionService
	store       store.Service
	log         *logger.Logger
}

func New(tr transcription.Service, ex ai.ExtractionService, sg ai.SuggestionService, st store.Service, log *logger.Logger) *Orchestrator {
	return &Orchestrator{
		transcriber: tr,
		extractor:   ex,
		suggester:   sg,
		store:       st,
		log:         log.Component("pipeline"),
	}
}

// Run executes one voice-to-listing pass. It is re-invocable: the same
// inputs produce a new listing each time, no deduplication.
func (o *Orchestrator) Run(ctx context.Context, req types.VoiceProcessRequest) (types.VoiceProcessResult, error) {
	start := time.Now()
	lang := locale.Normalize(req.Language)
	log := o.log.WithField("language", lang)

	tr, err := o.normalize(ctx, req, lang)
	if err != nil {
		return types.VoiceProcessResult{}, err
	}
	log.WithField("transcript_len", len(tr.Text)).Info("transcript ready")

	info := o.extractor.Extract(ctx, tr)
	suggestions := o.suggester.Suggest(ctx, info, tr)

	mobile := req.FarmerMobile
	if mobile == "" {
		mobile = "demo"
	}
	rec := types.ListingRecord{
		FarmerMobile: mobile,
		ProductInfo:  info,
		Suggestions:  suggestions,
		Transcript:   tr,
		Status:       types.StatusPending,
	}
	stored, err := o.store.StoreListing(ctx, rec)
	if err != nil {
		// keep the response contract complete even when the store is down
		log.WithError(err).Warn("store unavailable, returning mock listing")
		stored = store.MockListing(rec)
	}

	log.WithField("product_id", stored.ID).
		WithField("duration_ms", time.Since(start).Milliseconds()).
		Info("pipeline completed")

	return types.VoiceProcessResult{
		Success:             true,
		TranscribedText:     tr.Text,
		Product:             info.Product,
		Quantity:            info.Quantity,
		Price:               info.Price,
		Description:         suggestions.Description,
		SuggestedPriceRange: suggestions.PriceRange,
		MarketSuggestion:    suggestions.WhereToSell,
		SellingTip:          suggestions.SellingTip,
		ProductID:           stored.ID,
		Language:            lang,
	}, nil
}

// normalize selects between the two entry paths: pre-transcribed text is
// taken verbatim, otherwise audio goes through the transcription adapter.
func (o *Orchestrator) normalize(ctx context.Context, req types.VoiceProcessRequest, lang types.LanguageCode) (types.Transcript, error) {
	if req.TranscribedText != "" {
		return types.Transcript{Text: req.TranscribedText, Language: lang}, nil
	}
	if req.AudioData == "" {
		return types.Transcript{}, ErrNoInput
	}
	audio, err := transcription.DecodeAudio(req.AudioData)
	if err != nil {
		return types.Transcript{}, err
	}
	tr, err := o.transcriber.Transcribe(ctx, audio, lang)
	if err != nil {
		return types.Transcript{}, &Error{Stage: StageTranscribed, Err: err}
	}
	return tr, nil
}
