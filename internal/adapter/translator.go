package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
)

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

type libreTranslator struct {
	client *utils.HTTPClient
	apiKey string
	logger *logger.Logger
}

// NewLibreTranslator constructs a [Translator] for a LibreTranslate-compatible
// API at cfg.BaseURL. Transient failures are retried twice.
func NewLibreTranslator(cfg config.Translator, log *logger.Logger) (Translator, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:    baseURL,
		Timeout:    cfg.Timeout,
		RetryCount: 2,
	})

	return &libreTranslator{client: client, apiKey: cfg.APIKey, logger: log}, nil
}

// Translate implements [Translator]. Identical source and target locales
// return text unchanged without a request.
func (t *libreTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" || source == target {
		return text, nil
	}

	var out translateResponse
	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(translateRequest{Q: text, Source: source, Target: target, Format: "text", APIKey: t.apiKey}).
		SetResult(&out).
		Post("/translate")
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "libreTranslator.Translate").
			Str("source", source).
			Str("target", target).
			Msg("translation rejected")
		return "", err
	}

	translated := strings.TrimSpace(out.TranslatedText)
	if translated == "" {
		return "", fmt.Errorf("%w: empty result for %s->%s", ErrTranslationFailed, source, target)
	}

	return translated, nil
}

// noopTranslator is used when no translation backend is configured.
type noopTranslator struct{}

// NewNoopTranslator returns a [Translator] that always fails with
// [ErrTranslatorDisabled].
func NewNoopTranslator() Translator {
	return noopTranslator{}
}

func (noopTranslator) Translate(context.Context, string, string, string) (string, error) {
	return "", ErrTranslatorDisabled
}

// NewTranslator picks the LibreTranslate client when a base URL is
// configured and the no-op translator otherwise.
func NewTranslator(cfg config.Translator, log *logger.Logger) (Translator, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return NewNoopTranslator(), nil
	}
	return NewLibreTranslator(cfg, log)
}
