package utils

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, map[string]string{"title": "Mac & Cheese <quick>"}, http.StatusCreated)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "{\"title\":\"Mac & Cheese <quick>\"}\n", w.Body.String())
	assert.Equal(t, w.Body.Len(), n)
}

func TestWriteJSON_Values(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"nil", nil, "null\n"},
		{"empty slice", []int{}, "[]\n"},
		{"struct", struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		}{1, "soups"}, "{\"id\":1,\"name\":\"soups\"}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, err := WriteJSON(w, tt.data, http.StatusOK)
			require.NoError(t, err)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestWriteJSON_EncodeError(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, math.Inf(1), http.StatusOK)

	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestReadJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"dessert"}`))
		var p payload
		require.NoError(t, ReadJSON(r, &p, 1024))
		assert.Equal(t, "dessert", p.Name)
	})

	t.Run("trailing whitespace is fine", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{\"name\":\"x\"}\n  "))
		var p payload
		assert.NoError(t, ReadJSON(r, &p, 1024))
	})

	tests := []struct {
		name    string
		body    string
		max     int64
		wantErr error
	}{
		{"empty", "", 1024, ErrEmptyBody},
		{"unknown field", `{"title":"x"}`, 1024, ErrMalformedJSON},
		{"syntax", `{"name":`, 1024, ErrMalformedJSON},
		{"wrong type", `{"name":5}`, 1024, ErrMalformedJSON},
		{"two values", `{"name":"a"}{"name":"b"}`, 1024, ErrTrailingData},
		{"too large", `{"name":"` + strings.Repeat("a", 64) + `"}`, 16, ErrBodyTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var p payload
			assert.ErrorIs(t, ReadJSON(r, &p, tt.max), tt.wantErr)
		})
	}
}
