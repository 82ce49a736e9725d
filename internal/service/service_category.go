// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/resolver"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"golang.org/x/sync/errgroup"
)

type categoryService struct {
	categoryRepository   store.CategoryRepository
	preferenceRepository store.PreferenceRepository
	translator           adapter.Translator
	validator            validators.Validator

	locales          *utils.LocaleMatcher
	supportedLocales []string

	logger *logger.Logger
}

func NewCategoryService(storages *store.Storages, translator adapter.Translator, cfg config.App, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository:   storages.CategoryRepository,
		preferenceRepository: storages.PreferenceRepository,
		translator:           translator,
		validator:            validators.NewCategoryValidator(),
		locales:              utils.NewLocaleMatcher(cfg.DefaultLocale, cfg.SupportedLocales),
		supportedLocales:     cfg.SupportedLocales,
		logger:               logger,
	}
}

func (c *categoryService) GetCategories(ctx context.Context, userID int64, locale string) ([]models.ResolvedCategory, error) {
	categories, preferences, err := c.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	return resolver.Resolve(categories, preferences, c.locale(locale)), nil
}

func (c *categoryService) GetManagedCategories(ctx context.Context, userID int64, locale string) ([]models.ResolvedCategory, error) {
	categories, preferences, err := c.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	return resolver.ResolveForManagement(categories, preferences, c.locale(locale)), nil
}

// load fetches the categories visible to userID and the user's preferences
// concurrently.
func (c *categoryService) load(ctx context.Context, userID int64) ([]models.Category, []models.UserPreference, error) {
	var (
		categories  []models.Category
		preferences []models.UserPreference
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = c.categoryRepository.ListCategories(gctx, userID)
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		preferences, err = c.preferenceRepository.ListPreferences(gctx, userID)
		if err != nil {
			return fmt.Errorf("list preferences: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("loading categories failed")
		return nil, nil, err
	}

	return categories, preferences, nil
}

func (c *categoryService) locale(locale string) string {
	return c.locales.Match(locale)
}

// CreateCategory stores a user category under its canonical name (trimmed,
// lowercased). The name as typed becomes the label for the request locale and
// labels for the other supported locales are requested from the translator.
// Translation failures leave the label missing for the translation worker.
func (c *categoryService) CreateCategory(ctx context.Context, request models.CategoryCreateRequest) (models.Category, error) {
	log := logger.FromContext(ctx).WithUser(request.UserID)

	if err := c.validator.Validate(ctx, request); err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	label := strings.TrimSpace(request.Name)
	source := c.locale(request.Locale)
	owner := request.UserID

	category := models.Category{
		UserID: &owner,
		Name:   strings.ToLower(label),
	}

	// names are unique across the global categories and the user's own
	existing, err := c.categoryRepository.ListCategories(ctx, request.UserID)
	if err != nil {
		return models.Category{}, fmt.Errorf("list categories: %w", err)
	}
	for _, e := range existing {
		if e.Name == category.Name {
			return models.Category{}, store.ErrCategoryAlreadyExists
		}
	}

	category.Translated = c.translate(ctx, label, source)

	created, err := c.categoryRepository.CreateCategory(ctx, category)
	if err != nil {
		log.Err(err).Str("name", category.Name).Msg("category creation failed")
		return models.Category{}, fmt.Errorf("category creation failed: %w", err)
	}

	log.Info().Int64("category_id", created.ID).Str("name", created.Name).Msg("category created")
	return created, nil
}

func (c *categoryService) translate(ctx context.Context, label, source string) models.Translations {
	log := logger.FromContext(ctx)

	var mu sync.Mutex
	translations := models.Translations{source: label}

	g, gctx := errgroup.WithContext(ctx)
	for _, target := range c.supportedLocales {
		if target == source {
			continue
		}
		g.Go(func() error {
			translated, err := c.translator.Translate(gctx, label, source, target)
			if err != nil {
				if !errors.Is(err, adapter.ErrTranslatorDisabled) {
					log.Warn().Err(err).Str("source", source).Str("target", target).Msg("category label translation failed")
				}
				return nil
			}
			mu.Lock()
			translations[target] = translated
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return translations
}

// DeleteCategory removes a user category together with the user's
// preference for it. System and global categories are rejected.
func (c *categoryService) DeleteCategory(ctx context.Context, userID, categoryID int64) error {
	log := logger.FromContext(ctx).WithUser(userID)

	category, err := c.categoryRepository.GetCategory(ctx, userID, categoryID)
	if err != nil {
		return fmt.Errorf("category lookup failed: %w", err)
	}
	if category.IsSystem || category.UserID == nil {
		log.Warn().Int64("category_id", categoryID).Msg("attempt to delete a system category")
		return ErrSystemCategoryImmutable
	}

	if err = c.categoryRepository.DeleteCategory(ctx, userID, categoryID); err != nil {
		log.Err(err).Int64("category_id", categoryID).Msg("category deletion failed")
		return fmt.Errorf("category deletion failed: %w", err)
	}

	if err = c.preferenceRepository.DeletePreferences(ctx, userID, categoryID); err != nil {
		log.Err(err).Int64("category_id", categoryID).Msg("preference cleanup failed")
		return fmt.Errorf("preference cleanup failed: %w", err)
	}

	return nil
}
