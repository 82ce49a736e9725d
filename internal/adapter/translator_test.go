package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTranslator(t *testing.T, serverURL string) Translator {
	t.Helper()
	tr, err := NewTranslator(config.Translator{BaseURL: serverURL, APIKey: "secret"}, logger.Nop())
	require.NoError(t, err)
	return tr
}

// ── Translate ───────────────────────────────────────────────────────────────

func TestTranslate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/translate", r.URL.Path)

		var req translateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, translateRequest{Q: "soups", Source: "en", Target: "de", Format: "text", APIKey: "secret"}, req)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"translatedText":" Suppen "}`))
	}))
	defer srv.Close()

	got, err := newTestTranslator(t, srv.URL).Translate(context.Background(), "soups", "en", "de")
	require.NoError(t, err)
	assert.Equal(t, "Suppen", got)
}

func TestTranslate_SameLocaleSkipsRequest(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	got, err := newTestTranslator(t, srv.URL).Translate(context.Background(), " soups ", "en", "en")
	require.NoError(t, err)
	assert.Equal(t, "soups", got)
	assert.Zero(t, calls.Load())
}

func TestTranslate_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"translatedText":""}`))
	}))
	defer srv.Close()

	_, err := newTestTranslator(t, srv.URL).Translate(context.Background(), "soups", "en", "de")
	assert.ErrorIs(t, err, ErrTranslationFailed)
}

func TestTranslate_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"Invalid API key"}`))
	}))
	defer srv.Close()

	_, err := newTestTranslator(t, srv.URL).Translate(context.Background(), "soups", "en", "de")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestNewTranslator_Disabled(t *testing.T) {
	tr, err := NewTranslator(config.Translator{}, logger.Nop())
	require.NoError(t, err)

	_, err = tr.Translate(context.Background(), "soups", "en", "de")
	assert.ErrorIs(t, err, ErrTranslatorDisabled)
}
