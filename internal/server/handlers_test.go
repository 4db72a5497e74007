package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrivoice-go/internal/ai"
	"agrivoice-go/internal/logger"
	"agrivoice-go/internal/pipeline"
	"agrivoice-go/internal/store"
	"agrivoice-go/internal/transcription"
	"agrivoice-go/internal/types"
)

type downGen struct{}

func (downGen) GenerateText(context.Context, string) (string, error) {
	return "", errors.New("model down")
}

func newTestServer(st store.Service) *Server {
	log := logger.New()
	sg := ai.NewSuggester(downGen{}, nil, log)
	orch := pipeline.New(transcription.Fallback{}, ai.NewExtractor(downGen{}, log), sg, st, log)
	return New(orch, st, sg, log, "test-secret", false)
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestRegisterMobileValidation(t *testing.T) {
	cases := []struct {
		mobile string
		code   int
	}{
		{"9876543210", http.StatusOK},
		{"1876543210", http.StatusBadRequest}, // leading digit below 6
		{"987654321", http.StatusBadRequest},  // nine digits
		{"98765432101", http.StatusBadRequest},
	}
	for _, tc := range cases {
		srv := newTestServer(store.NewMemory())
		body := `{"name": "Ravi", "mobile": "` + tc.mobile + `", "password": "secret123", "language": "hi"}`
		rec := doJSON(t, srv, http.MethodPost, "/register", body)
		assert.Equal(t, tc.code, rec.Code, "mobile %q", tc.mobile)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	srv := newTestServer(store.NewMemory())

	rec := doJSON(t, srv, http.MethodPost, "/register",
		`{"name": "Ravi", "mobile": "9876543210", "password": "secret123", "language": "hi", "village_city": "Nashik"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/login", `{"mobile": "9876543210", "password": "secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out.Success)
	assert.NotEmpty(t, out.Token)

	rec = doJSON(t, srv, http.MethodPost, "/login", `{"mobile": "9876543210", "password": "wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/login", `{"mobile": "9000000000", "password": "secret123"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCompleteVoiceProcessTextInput(t *testing.T) {
	srv := newTestServer(store.NewMemory())

	rec := doJSON(t, srv, http.MethodPost, "/complete-voice-process",
		`{"transcribed_text": "I have 10 kg of fresh tomatoes, selling at ₹40 per kg", "language": "en", "farmer_mobile": "9876543210"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res types.VoiceProcessResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Equal(t, types.LangEnglish, res.Language)
	assert.NotEmpty(t, res.ProductID)
	assert.NotEmpty(t, res.Description)
}

func TestCompleteVoiceProcessMissingInput(t *testing.T) {
	srv := newTestServer(store.NewMemory())
	rec := doJSON(t, srv, http.MethodPost, "/complete-voice-process", `{"language": "en"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckStatusStatistics(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	first, err := st.StoreListing(ctx, types.ListingRecord{FarmerMobile: "9876543210"})
	require.NoError(t, err)
	require.NoError(t, st.UpdateStatus(ctx, first.ID, types.StatusSold))
	_, err = st.StoreListing(ctx, types.ListingRecord{FarmerMobile: "9876543210"})
	require.NoError(t, err)

	srv := newTestServer(st)
	rec := doJSON(t, srv, http.MethodPost, "/check-status", `{"mobile": "9876543210"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Success    bool                  `json:"success"`
		Products   []types.ListingRecord `json:"products"`
		Statistics types.ListingStats    `json:"statistics"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out.Success)
	assert.Len(t, out.Products, 2)
	assert.Equal(t, 2, out.Statistics.Total)
	assert.Equal(t, 1, out.Statistics.Sold)
	assert.InDelta(t, 50.0, out.Statistics.SoldPercentage, 1e-9)
}

func TestUpdateProductStatus(t *testing.T) {
	st := store.NewMemory()
	stored, err := st.StoreListing(context.Background(), types.ListingRecord{FarmerMobile: "9876543210"})
	require.NoError(t, err)

	srv := newTestServer(st)

	rec := doJSON(t, srv, http.MethodPost, "/update-product-status",
		`{"product_id": "`+stored.ID+`", "status": "sold"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	// idempotent second update
	rec = doJSON(t, srv, http.MethodPost, "/update-product-status",
		`{"product_id": "`+stored.ID+`", "status": "sold"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/update-product-status",
		`{"product_id": "`+stored.ID+`", "status": "vanished"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/update-product-status",
		`{"product_id": "missing", "status": "sold"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(store.NewMemory())
	rec := doJSON(t, srv, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Status   string `json:"status"`
		Services struct {
			AI struct {
				Available bool `json:"available"`
			} `json:"ai"`
			Database struct {
				Connected bool `json:"connected"`
			} `json:"database"`
		} `json:"services"`
		Languages []string `json:"languages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "healthy", out.Status)
	assert.False(t, out.Services.AI.Available)
	assert.False(t, out.Services.Database.Connected)
	assert.Len(t, out.Languages, 11)
}
