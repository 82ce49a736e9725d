package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type parserService struct {
	extractor adapter.RecipeExtractor
	fetcher   adapter.PageFetcher
	validator validators.Validator

	defaultLocale string

	logger *logger.Logger
}

func NewParserService(extractor adapter.RecipeExtractor, fetcher adapter.PageFetcher, cfg config.App, logger *logger.Logger) ParserService {
	return &parserService{
		extractor:     extractor,
		fetcher:       fetcher,
		validator:     validators.NewRecipeValidator(),
		defaultLocale: cfg.DefaultLocale,
		logger:        logger,
	}
}

// ParseText extracts a recipe from pasted text. The result is not stored.
func (p *parserService) ParseText(ctx context.Context, request models.ParseRequest) (models.ParsedRecipe, error) {
	request.URL = ""
	if err := p.validator.Validate(ctx, request); err != nil {
		return models.ParsedRecipe{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return p.extractor.Extract(ctx, request.Text, p.locale(request.Locale))
}

// ParseURL downloads the page at request.URL and extracts a recipe from its
// text. The URL is kept as the recipe source.
func (p *parserService) ParseURL(ctx context.Context, request models.ParseRequest) (models.ParsedRecipe, error) {
	log := logger.FromContext(ctx)

	request.Text = ""
	if err := p.validator.Validate(ctx, request); err != nil {
		return models.ParsedRecipe{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	pageURL := strings.TrimSpace(request.URL)

	text, err := p.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		log.Err(err).Str("url", pageURL).Msg("recipe page download failed")
		return models.ParsedRecipe{}, fmt.Errorf("recipe page download failed: %w", err)
	}

	parsed, err := p.extractor.Extract(ctx, text, p.locale(request.Locale))
	if err != nil {
		return models.ParsedRecipe{}, err
	}
	parsed.SourceURL = pageURL

	return parsed, nil
}

func (p *parserService) locale(locale string) string {
	if locale = utils.NormalizeLocale(locale); locale != "" {
		return locale
	}
	return p.defaultLocale
}
