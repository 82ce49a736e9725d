// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/sashabaranov/go-openai"
)

const (
	defaultAIModel = "gpt-4o-mini"

	// maxExtractInputRunes bounds the prompt size of a single extraction.
	maxExtractInputRunes = 24000
)

const extractSystemPrompt = `You extract cooking recipes from text.
Reply with a single JSON object and nothing else, using exactly these keys:
{"title": string, "description": string, "category": string,
 "ingredients": [{"name": string, "quantity": number, "unit": string}],
 "instructions": [string], "servings": number,
 "prep_minutes": number, "cook_minutes": number}
"category" is one lowercase English word such as breakfast, lunch, dinner,
dessert, snack, drinks or baking. Omit unknown numbers or set them to 0.
Write title, ingredient names and instructions in the language with code %q.
If the text does not contain a recipe reply with {"title": ""}.`

type openAIExtractor struct {
	client *openai.Client
	model  string
	logger *logger.Logger
}

// NewOpenAIExtractor constructs a [RecipeExtractor] backed by an
// OpenAI-compatible chat completion API. cfg.BaseURL may point to any
// compatible provider; an empty value keeps the OpenAI default.
func NewOpenAIExtractor(cfg config.AI, log *logger.Logger) (RecipeExtractor, error) {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		baseURL, err := normalizeBaseURL(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
		}
		clientConfig.BaseURL = baseURL
	}
	clientConfig.HTTPClient = utils.NewHTTPClient(utils.HTTPClientOptions{Timeout: cfg.Timeout}).GetClient()

	model := cfg.Model
	if model == "" {
		model = defaultAIModel
	}

	return &openAIExtractor{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		logger: log,
	}, nil
}

// Extract implements [RecipeExtractor].
func (e *openAIExtractor) Extract(ctx context.Context, text, locale string) (models.ParsedRecipe, error) {
	log := logger.FromContext(ctx)

	text = strings.TrimSpace(text)
	if text == "" {
		return models.ParsedRecipe{}, fmt.Errorf("%w: empty input", ErrExtractionFailed)
	}
	if utf8.RuneCountInString(text) > maxExtractInputRunes {
		text = string([]rune(text)[:maxExtractInputRunes])
	}

	req := openai.ChatCompletionRequest{
		Model:       e.model,
		Temperature: 0.1,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: fmt.Sprintf(extractSystemPrompt, locale)},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	}

	resp, err := e.client.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "openAIExtractor.Extract").Str("model", e.model).Msg("chat completion failed")
		return models.ParsedRecipe{}, mapAPIError(err)
	}
	if len(resp.Choices) == 0 {
		return models.ParsedRecipe{}, fmt.Errorf("%w: empty response", ErrExtractionFailed)
	}

	parsed, err := decodeParsedRecipe(resp.Choices[0].Message.Content)
	if err != nil {
		log.Err(err).Str("func", "openAIExtractor.Extract").Msg("unusable extraction reply")
		return models.ParsedRecipe{}, err
	}

	log.Debug().
		Str("func", "openAIExtractor.Extract").
		Int("total_tokens", resp.Usage.TotalTokens).
		Int("ingredients", len(parsed.Ingredients)).
		Msg("recipe extracted")

	return parsed, nil
}

// decodeParsedRecipe reads the model reply. Some providers wrap JSON in
// markdown fences even in JSON mode.
func decodeParsedRecipe(content string) (models.ParsedRecipe, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	if content == "" {
		return models.ParsedRecipe{}, fmt.Errorf("%w: empty reply", ErrExtractionFailed)
	}

	var parsed models.ParsedRecipe
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return models.ParsedRecipe{}, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	parsed.Title = strings.TrimSpace(parsed.Title)
	if parsed.Title == "" {
		return models.ParsedRecipe{}, fmt.Errorf("%w: no recipe found", ErrExtractionFailed)
	}
	parsed.Category = strings.ToLower(strings.TrimSpace(parsed.Category))

	ingredients := parsed.Ingredients[:0]
	for _, ing := range parsed.Ingredients {
		ing.Name = strings.TrimSpace(ing.Name)
		if ing.Name == "" {
			continue
		}
		ingredients = append(ingredients, ing)
	}
	parsed.Ingredients = ingredients

	return parsed, nil
}

func mapAPIError(err error) error {
	status := 0

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch status {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", ErrTooManyRequests, err)
	case 0:
		return fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	default:
		if status >= http.StatusInternalServerError {
			return fmt.Errorf("%w: %w", ErrBadGateway, err)
		}
		return fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}
}
