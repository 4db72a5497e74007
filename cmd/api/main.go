package main

import (
	"context"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"agrivoice-go/internal/ai"
	"agrivoice-go/internal/config"
	"agrivoice-go/internal/logger"
	"agrivoice-go/internal/market"
	"agrivoice-go/internal/pipeline"
	"agrivoice-go/internal/server"
	"agrivoice-go/internal/store"
	"agrivoice-go/internal/transcription"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "agrivoice-go").Info("starting service")

	cfg := config.Load()
	ctx := context.Background()

	// commodity reference prices, optional
	var ref *market.Reference
	if cfg.MarketDataPath != "" {
		loaded, err := market.Load(cfg.MarketDataPath)
		if err != nil {
			log.WithField("path", cfg.MarketDataPath).WithError(err).Warn("market reference unavailable")
		} else {
			ref = loaded
			log.WithField("commodities", ref.Size()).Info("market reference loaded")
		}
	}

	// transcription: real engine when a key is present, canned transcripts otherwise
	var transcriber transcription.Service = transcription.Fallback{}
	if cfg.SpeechAPIKey != "" {
		transcriber = transcription.NewSpeechClient(cfg.SpeechAPIURL, cfg.SpeechAPIKey, log)
		log.Info("speech engine configured")
	} else {
		log.Warn("SPEECH_API_KEY not set, transcription runs in fallback mode")
	}

	// AI: Gemini when a key is present, language templates otherwise
	var (
		extractor ai.ExtractionService = ai.FallbackExtractor{}
		suggester ai.SuggestionService = ai.FallbackSuggester{Ref: ref}
		aiReady   bool
	)
	if cfg.GeminiAPIKey != "" {
		gen, err := ai.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.WithError(err).Warn("gemini client init failed, AI runs in fallback mode")
		} else {
			extractor = ai.NewExtractor(gen, log)
			suggester = ai.NewSuggester(gen, ref, log)
			aiReady = true
			log.WithField("model", cfg.GeminiModel).Info("gemini configured")
		}
	} else {
		log.Warn("GEMINI_API_KEY not set, AI runs in fallback mode")
	}

	// persistence: Supabase Postgres when configured and reachable
	var st store.Service = store.NewMemory()
	if cfg.DatabaseURL != "" {
		pg, err := store.NewPostgres(ctx, cfg.DatabaseURL, log)
		if err != nil {
			log.WithError(err).Warn("database unreachable, using in-memory store")
		} else {
			st = pg
			defer pg.Close()
		}
	} else {
		log.Warn("DATABASE_URL not set, using in-memory store")
	}

	orch := pipeline.New(transcriber, extractor, suggester, st, log)
	srv := server.New(orch, st, suggester, log, cfg.JWTSecret, aiReady)

	e := srv.Router()
	e.Server.ReadTimeout = 15 * time.Second
	e.Server.WriteTimeout = 60 * time.Second
	e.Server.IdleTimeout = 120 * time.Second

	addr := ":" + cfg.Port
	log.WithField("addr", addr).Info("listening")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}
