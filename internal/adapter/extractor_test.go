package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionServer(t *testing.T, status int, content string, seen func(body map[string]any)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if seen != nil {
			seen(body)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"upstream says no","type":"error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
			"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 20, "total_tokens": 30},
		})
	}))
}

func newTestExtractor(t *testing.T, serverURL string) RecipeExtractor {
	t.Helper()
	e, err := NewOpenAIExtractor(config.AI{BaseURL: serverURL + "/v1", APIKey: "test-key"}, logger.Nop())
	require.NoError(t, err)
	return e
}

// ── Extract ─────────────────────────────────────────────────────────────────

func TestExtract_Success(t *testing.T) {
	reply := `{"title":" Pancakes ","category":"Breakfast","ingredients":[{"name":"flour","quantity":200,"unit":"g"},{"name":" "}],"instructions":["Mix","Fry"],"servings":4}`

	var got map[string]any
	srv := completionServer(t, http.StatusOK, reply, func(body map[string]any) { got = body })
	defer srv.Close()

	parsed, err := newTestExtractor(t, srv.URL).Extract(context.Background(), "pancakes: flour, fry", "de")
	require.NoError(t, err)

	assert.Equal(t, "Pancakes", parsed.Title)
	assert.Equal(t, "breakfast", parsed.Category)
	require.Len(t, parsed.Ingredients, 1)
	assert.Equal(t, "flour", parsed.Ingredients[0].Name)
	assert.Equal(t, []string{"Mix", "Fry"}, parsed.Instructions)
	assert.Equal(t, 4, parsed.Servings)

	assert.Equal(t, defaultAIModel, got["model"])
	format, ok := got["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_object", format["type"])
	messages, ok := got["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Contains(t, messages[0].(map[string]any)["content"], `"de"`)
}

func TestExtract_FencedReply(t *testing.T) {
	srv := completionServer(t, http.StatusOK, "```json\n{\"title\":\"Soup\"}\n```", nil)
	defer srv.Close()

	parsed, err := newTestExtractor(t, srv.URL).Extract(context.Background(), "soup", "en")
	require.NoError(t, err)
	assert.Equal(t, "Soup", parsed.Title)
}

func TestExtract_NoRecipe(t *testing.T) {
	srv := completionServer(t, http.StatusOK, `{"title":""}`, nil)
	defer srv.Close()

	_, err := newTestExtractor(t, srv.URL).Extract(context.Background(), "hello there", "en")
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtract_InvalidJSON(t *testing.T) {
	srv := completionServer(t, http.StatusOK, `not json at all`, nil)
	defer srv.Close()

	_, err := newTestExtractor(t, srv.URL).Extract(context.Background(), "x", "en")
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtract_EmptyInput(t *testing.T) {
	e, err := NewOpenAIExtractor(config.AI{APIKey: "k"}, logger.Nop())
	require.NoError(t, err)

	_, err = e.Extract(context.Background(), "   ", "en")
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtract_UpstreamStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"rate limited", http.StatusTooManyRequests, ErrTooManyRequests},
		{"bad key", http.StatusUnauthorized, ErrUnauthorized},
		{"provider down", http.StatusServiceUnavailable, ErrBadGateway},
		{"bad request", http.StatusBadRequest, ErrExtractionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := completionServer(t, tt.status, "", nil)
			defer srv.Close()

			_, err := newTestExtractor(t, srv.URL).Extract(context.Background(), "text", "en")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewOpenAIExtractor_InvalidBaseURL(t *testing.T) {
	_, err := NewOpenAIExtractor(config.AI{BaseURL: "http://"}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}
