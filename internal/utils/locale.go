package utils

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// LocaleQueryParam is the query parameter that selects the label locale.
const LocaleQueryParam = "locale"

// LocaleMatcher maps requested language tags onto the configured locales.
// Results are always one of the configured primary subtags.
type LocaleMatcher struct {
	locales []string
	matcher language.Matcher
}

// NewLocaleMatcher builds a matcher over supported. defaultLocale is returned
// when nothing requested matches and does not have to be listed in supported.
func NewLocaleMatcher(defaultLocale string, supported []string) *LocaleMatcher {
	m := &LocaleMatcher{}

	seen := make(map[string]bool, len(supported)+1)
	tags := make([]language.Tag, 0, len(supported)+1)
	for _, locale := range append([]string{defaultLocale}, supported...) {
		locale = NormalizeLocale(locale)
		if locale == "" || seen[locale] {
			continue
		}
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		seen[locale] = true
		m.locales = append(m.locales, locale)
		tags = append(tags, tag)
	}

	if len(tags) > 0 {
		m.matcher = language.NewMatcher(tags)
	}
	return m
}

// Default returns the fallback locale, or "" when none is configured.
func (m *LocaleMatcher) Default() string {
	if len(m.locales) == 0 {
		return ""
	}
	return m.locales[0]
}

// Match returns the configured locale closest to requested, in order of
// preference. Unparsable and unsupported tags fall back to the default.
func (m *LocaleMatcher) Match(requested ...string) string {
	tags := make([]language.Tag, 0, len(requested))
	for _, raw := range requested {
		if tag, err := language.Parse(strings.TrimSpace(raw)); err == nil {
			tags = append(tags, tag)
		}
	}
	return m.match(tags)
}

func (m *LocaleMatcher) match(tags []language.Tag) string {
	if locale, ok := m.best(tags); ok {
		return locale
	}
	return m.Default()
}

func (m *LocaleMatcher) best(tags []language.Tag) (string, bool) {
	if m.matcher == nil || len(tags) == 0 {
		return "", false
	}

	_, index, confidence := m.matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	return m.locales[index], true
}

// FromRequest picks the locale for category labels. A supported "locale" query
// parameter wins. Otherwise Accept-Language is matched by weight, and the
// default is used when neither names a supported locale.
func (m *LocaleMatcher) FromRequest(r *http.Request) string {
	if raw := strings.TrimSpace(r.URL.Query().Get(LocaleQueryParam)); raw != "" {
		if tag, err := language.Parse(raw); err == nil {
			if locale, ok := m.best([]language.Tag{tag}); ok {
				return locale
			}
		}
	}

	var tags []language.Tag
	if header := r.Header.Get("Accept-Language"); header != "" {
		// sorted by descending weight; q=0 entries are dropped
		if accepted, _, err := language.ParseAcceptLanguage(header); err == nil {
			tags = accepted
		}
	}

	return m.match(tags)
}

// NormalizeLocale reduces a BCP 47 tag to its lowercased primary subtag.
func NormalizeLocale(tag string) string {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}
	return strings.ToLower(tag)
}
