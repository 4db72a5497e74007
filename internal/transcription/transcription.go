// Package transcription wraps the external speech-to-text capability. Both
// implementations of Service satisfy the same degradation rule: once the
// audio payload itself is valid, a transcript always comes back.
package transcription

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"agrivoice-go/internal/locale"
	"agrivoice-go/internal/types"
)

const (
	// observed payload bounds from field recordings
	minAudioBytes = 1024
	maxAudioBytes = 10 * 1024 * 1024

	// reported when the engine gives no score of its own
	placeholderConfidence = 0.95
)

var (
	ErrBadAudio      = errors.New("audio data is not valid base64")
	ErrAudioTooSmall = errors.New("audio payload below 1 KB minimum")
	ErrAudioTooLarge = errors.New("audio payload above 10 MB maximum")
)

// Service converts raw audio bytes into a transcript.
type Service interface {
	Transcribe(ctx context.Context, audio []byte, lang types.LanguageCode) (types.Transcript, error)
}

// DecodeAudio decodes a base64 payload and enforces the size bounds.
func DecodeAudio(audioData string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(audioData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadAudio, err)
	}
	if len(raw) < minAudioBytes {
		return nil, ErrAudioTooSmall
	}
	if len(raw) > maxAudioBytes {
		return nil, ErrAudioTooLarge
	}
	return raw, nil
}

// Fallback is the deterministic implementation used when no speech engine is
// configured. It returns the per-language canned transcript.
type Fallback struct{}

func (Fallback) Transcribe(_ context.Context, _ []byte, lang types.LanguageCode) (types.Transcript, error) {
	return types.Transcript{
		Text:       locale.FallbackTranscript(lang),
		Language:   lang,
		Confidence: placeholderConfidence,
	}, nil
}
