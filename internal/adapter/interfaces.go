// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external services the recipe
// backend depends on.
//
//   - [RecipeExtractor] turns free recipe text into a structured
//     [models.ParsedRecipe] through an OpenAI-compatible chat completion API.
//   - [PageFetcher] downloads a recipe web page and reduces it to its
//     readable text.
//   - [Translator] translates category labels through a
//     LibreTranslate-compatible API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of the backend
// (e.g. [ErrNotFound] for 404, [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RecipeExtractor extracts a structured recipe from unstructured text.
type RecipeExtractor interface {
	// Extract asks the backend to read text and return the recipe it
	// describes. Ingredient names and instructions are kept in locale.
	// Returns [ErrExtractionFailed] (wrapped) if the reply is empty or is
	// not a recipe.
	Extract(ctx context.Context, text, locale string) (models.ParsedRecipe, error)
}

// PageFetcher downloads web pages.
type PageFetcher interface {
	// Fetch downloads the page at rawURL and returns its visible text.
	// Script and style contents are dropped. Returns [ErrInvalidPageURL]
	// for non-http(s) URLs and [ErrEmptyPage] if nothing readable is left.
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// Translator translates short texts between locales.
type Translator interface {
	// Translate returns text translated from source to target locale.
	Translate(ctx context.Context, text, source, target string) (string, error)
}
