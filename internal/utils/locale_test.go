package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocaleMatcher_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		defaultLocale  string
		target         string
		acceptLanguage string
		want           string
	}{
		{name: "query param wins", target: "/api/categories?locale=de", acceptLanguage: "en-US", want: "de"},
		{name: "query param with region", target: "/api/categories?locale=DE-at", want: "de"},
		{name: "unsupported query param falls back to default", defaultLocale: "de", target: "/api/categories?locale=fr", want: "de"},
		{name: "unsupported query param falls through to header", target: "/api/categories?locale=fr", acceptLanguage: "de", want: "de"},
		{name: "malformed query param ignored", target: "/api/categories?locale=not_a_tag!", acceptLanguage: "de", want: "de"},
		{name: "accept language first tag", target: "/api/categories", acceptLanguage: "de-DE,de;q=0.9,en;q=0.8", want: "de"},
		{name: "accept language weights", target: "/api/categories", acceptLanguage: "en;q=0.1, de;q=0.9", want: "de"},
		{name: "accept language skips unsupported", defaultLocale: "de", target: "/api/categories", acceptLanguage: "fr-FR,fr;q=0.9,en;q=0.5", want: "en"},
		{name: "accept language nothing supported", defaultLocale: "de", target: "/api/categories", acceptLanguage: "fr, it;q=0.8", want: "de"},
		{name: "zero weight excluded", target: "/api/categories", acceptLanguage: "de;q=0", want: "en"},
		{name: "wildcard falls back", target: "/api/categories", acceptLanguage: "*", want: "en"},
		{name: "nothing falls back", target: "/api/categories", want: "en"},
		{name: "empty query param ignored", target: "/api/categories?locale=", acceptLanguage: "de", want: "de"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := tt.defaultLocale
			if def == "" {
				def = "en"
			}
			m := NewLocaleMatcher(def, []string{"en", "de"})

			r := httptest.NewRequest("GET", tt.target, nil)
			if tt.acceptLanguage != "" {
				r.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			assert.Equal(t, tt.want, m.FromRequest(r))
		})
	}
}

func TestLocaleMatcher_Match(t *testing.T) {
	m := NewLocaleMatcher("de", []string{"en", "de", "de"})

	assert.Equal(t, "de", m.Default())
	assert.Equal(t, "en", m.Match("en-GB"))
	assert.Equal(t, "de", m.Match("de-CH"))
	assert.Equal(t, "de", m.Match("fr"))
	assert.Equal(t, "de", m.Match(""))
	assert.Equal(t, "de", m.Match())
	assert.Equal(t, "en", m.Match("fr", "en"))
}

func TestLocaleMatcher_Empty(t *testing.T) {
	m := NewLocaleMatcher("", nil)

	assert.Equal(t, "", m.Default())
	assert.Equal(t, "", m.Match("de"))
	assert.Equal(t, "", m.FromRequest(httptest.NewRequest("GET", "/?locale=de", nil)))
}

func TestNormalizeLocale(t *testing.T) {
	assert.Equal(t, "de", NormalizeLocale(" de_CH "))
	assert.Equal(t, "en", NormalizeLocale("EN"))
	assert.Equal(t, "", NormalizeLocale(""))
}
