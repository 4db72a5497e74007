package config

import "os"

// Config carries everything read from the environment. Missing credentials
// are not an error: each adapter switches to its deterministic fallback when
// its key is empty.
type Config struct {
	Port string

	// Gemini API
	GeminiAPIKey string
	GeminiModel  string

	// external speech-to-text service
	SpeechAPIKey string
	SpeechAPIURL string

	// Supabase Postgres connection string
	DatabaseURL string

	// commodity reference price sheet, optional
	MarketDataPath string

	JWTSecret string
}

func Load() Config {
	return Config{
		Port:           envOr("PORT", "8080"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    envOr("GEMINI_MODEL", "gemini-2.0-flash"),
		SpeechAPIKey:   os.Getenv("SPEECH_API_KEY"),
		SpeechAPIURL:   envOr("SPEECH_API_URL", "https://speech.googleapis.com/v1/speech:recognize"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MarketDataPath: os.Getenv("MARKET_DATA_PATH"),
		JWTSecret:      envOr("JWT_SECRET", "agrivoice-dev-secret"),
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
