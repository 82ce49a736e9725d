package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParseText(t *testing.T) {
	h, m := newTestHandler(t)

	m.parser.EXPECT().ParseText(gomock.Any(), models.ParseRequest{Text: "2 eggs", Locale: "de"}).
		Return(models.ParsedRecipe{Title: "Rührei", Ingredients: []models.Ingredient{{Name: "Eier", Quantity: 2}}}, nil)

	rr := do(t, h.Init(), http.MethodPost, "/api/parse/text", `{"text":"2 eggs"}`, "Accept-Language", "de-DE")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"title":"Rührei"`)
}

func TestParseURL_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"no recipe on page", adapter.ErrExtractionFailed, http.StatusUnprocessableEntity},
		{"empty page", fmt.Errorf("recipe page download failed: %w", adapter.ErrEmptyPage), http.StatusUnprocessableEntity},
		{"page not found upstream", fmt.Errorf("recipe page download failed: %w", adapter.ErrNotFound), http.StatusBadGateway},
		{"ai backend down", adapter.ErrBadGateway, http.StatusBadGateway},
		{"ai backend throttled", adapter.ErrTooManyRequests, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.parser.EXPECT().ParseURL(gomock.Any(), gomock.Any()).Return(models.ParsedRecipe{}, tt.err)

			rr := do(t, h.Init(), http.MethodPost, "/api/parse/url", `{"url":"https://example.com/pie"}`)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestParse_RateLimitedPerUser(t *testing.T) {
	h, m := newTestHandler(t)
	router := h.Init()

	// burst of 2 from testConfig
	m.parser.EXPECT().ParseText(gomock.Any(), gomock.Any()).Return(models.ParsedRecipe{Title: "x"}, nil).Times(2)

	for range 2 {
		rr := do(t, router, http.MethodPost, "/api/parse/text", `{"text":"x"}`)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := do(t, router, http.MethodPost, "/api/parse/text", `{"text":"x"}`)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "1", rr.Header().Get("Retry-After"))
}
