package transcription

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"agrivoice-go/internal/locale"
	"agrivoice-go/internal/logger"
	"agrivoice-go/internal/types"
)

// SpeechClient talks to a Google-style speech recognition endpoint. Engine
// failures and unrecognized speech degrade to the per-language fallback
// transcript instead of failing the pipeline.
type SpeechClient struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
	log        *logger.Logger
}

func NewSpeechClient(apiURL, apiKey string, log *logger.Logger) *SpeechClient {
	return &SpeechClient{
		apiURL:     apiURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 12 * time.Second},
		log:        log.Component("transcription"),
	}
}

type recognizeRequest struct {
	Config struct {
		LanguageCode string `json:"languageCode"`
	} `json:"config"`
	Audio struct {
		Content string `json:"content"`
	} `json:"audio"`
}

type recognizeResponse struct {
	Results []struct {
		Alternatives []struct {
			Transcript string  `json:"transcript"`
			Confidence float64 `json:"confidence"`
		} `json:"alternatives"`
	} `json:"results"`
}

func (c *SpeechClient) Transcribe(ctx context.Context, audio []byte, lang types.LanguageCode) (types.Transcript, error) {
	text, confidence, err := c.recognize(ctx, audio, locale.Tag(lang))
	if err != nil || text == "" {
		c.log.WithError(err).WithField("language", lang).Warn("speech engine unavailable, using fallback transcript")
		return Fallback{}.Transcribe(ctx, audio, lang)
	}
	if confidence == 0 {
		confidence = placeholderConfidence
	}
	return types.Transcript{Text: text, Language: lang, Confidence: confidence}, nil
}

func (c *SpeechClient) recognize(ctx context.Context, audio []byte, localeTag string) (string, float64, error) {
	var reqBody recognizeRequest
	reqBody.Config.LanguageCode = localeTag
	reqBody.Audio.Content = base64.StdEncoding.EncodeToString(audio)
	payload, _ := json.Marshal(reqBody)

	var parsed recognizeResponse
	if err := c.doJSON(ctx, payload, &parsed); err != nil {
		return "", 0, err
	}
	if len(parsed.Results) == 0 || len(parsed.Results[0].Alternatives) == 0 {
		return "", 0, fmt.Errorf("speech engine returned no alternatives")
	}
	alt := parsed.Results[0].Alternatives[0]
	return alt.Transcript, alt.Confidence, nil
}

func (c *SpeechClient) doJSON(ctx context.Context, payload []byte, target any) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 20 * time.Second
	var lastErr error
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"?key="+c.apiKey, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			return err
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("speech server error: %s", string(body))
			return lastErr
		}
		if resp.StatusCode >= 400 {
			lastErr = fmt.Errorf("speech request rejected: %s", string(body))
			return backoff.Permanent(lastErr)
		}
		if err := json.Unmarshal(body, target); err != nil {
			lastErr = fmt.Errorf("speech response decode: %w", err)
			return lastErr
		}
		return nil
	}
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		if lastErr != nil {
			return lastErr
		}
		return err
	}
	return nil
}
