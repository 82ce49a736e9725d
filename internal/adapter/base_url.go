package adapter

import (
	"fmt"
	"net/url"
	"strings"
)

// normalizeBaseURL turns a configured endpoint ("llm.local:8000/v1",
// "https://translate.example/") into an absolute URL without a trailing
// slash. A missing scheme defaults to http; only http and https are accepted.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("address must include a host")
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", fmt.Errorf("address must not carry a query or fragment")
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.User = nil
	return strings.TrimRight(u.String(), "/"), nil
}
