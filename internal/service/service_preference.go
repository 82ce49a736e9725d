package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/resolver"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"golang.org/x/sync/errgroup"
)

type preferenceService struct {
	categoryRepository   store.CategoryRepository
	preferenceRepository store.PreferenceRepository
	validator            validators.Validator

	logger *logger.Logger
}

func NewPreferenceService(storages *store.Storages, logger *logger.Logger) PreferenceService {
	return &preferenceService{
		categoryRepository:   storages.CategoryRepository,
		preferenceRepository: storages.PreferenceRepository,
		validator:            validators.NewCategoryValidator(),
		logger:               logger,
	}
}

// SavePreferences stores preferences that reference a category by id or by
// canonical name. An id takes precedence over a name. When several
// preferences resolve to the same category the last one wins.
func (p *preferenceService) SavePreferences(ctx context.Context, userID int64, preferences ...models.UserPreference) error {
	log := logger.FromContext(ctx).WithUser(userID)

	if len(preferences) == 0 {
		return nil
	}

	for i := range preferences {
		preferences[i].UserID = userID
		if err := p.validator.Validate(ctx, preferences[i]); err != nil {
			return fmt.Errorf("%w: preference %d: %w", ErrInvalidDataProvided, i, err)
		}
	}

	categories, err := p.categoryRepository.ListCategories(ctx, userID)
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}
	index := newCategoryIndex(categories)

	resolved := make([]models.UserPreference, 0, len(preferences))
	position := make(map[int64]int, len(preferences))
	for i, pref := range preferences {
		category, ok := index.find(pref)
		if !ok {
			log.Warn().Int("index", i).Msg("preference references an unknown category")
			return fmt.Errorf("%w: preference %d", ErrUnknownCategory, i)
		}

		pref.CategoryID = &category.ID
		pref.CategoryValue = &category.Name

		if at, seen := position[category.ID]; seen {
			resolved[at] = pref
			continue
		}
		position[category.ID] = len(resolved)
		resolved = append(resolved, pref)
	}

	if err = p.preferenceRepository.SavePreferences(ctx, userID, resolved...); err != nil {
		log.Err(err).Int("count", len(resolved)).Msg("saving preferences failed")
		return fmt.Errorf("saving preferences failed: %w", err)
	}

	return nil
}

// ReorderCategories assigns each listed category its position as display
// order. Visibility of already stored preferences is kept; categories
// without one become visible. The "all" entry is skipped.
func (p *preferenceService) ReorderCategories(ctx context.Context, userID int64, names []string) error {
	if err := p.validator.Validate(ctx, models.ReorderRequest{Categories: names}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	var (
		categories []models.Category
		stored     []models.UserPreference
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		categories, err = p.categoryRepository.ListCategories(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		stored, err = p.preferenceRepository.ListPreferences(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("loading categories failed: %w", err)
	}

	index := newCategoryIndex(categories)
	visible := make(map[int64]bool, len(stored))
	for _, pref := range stored {
		if pref.CategoryID != nil {
			visible[*pref.CategoryID] = pref.IsVisible
		}
	}

	preferences := make([]models.UserPreference, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == resolver.AllValue {
			continue
		}

		category, ok := index.byName[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, name)
		}

		isVisible, known := visible[category.ID]
		if !known {
			isVisible = true
		}

		preferences = append(preferences, models.UserPreference{
			UserID:        userID,
			CategoryID:    &category.ID,
			CategoryValue: &category.Name,
			IsVisible:     isVisible,
			DisplayOrder:  len(preferences),
		})
	}

	if err := p.preferenceRepository.SavePreferences(ctx, userID, preferences...); err != nil {
		return fmt.Errorf("saving order failed: %w", err)
	}

	logger.FromContext(ctx).WithUser(userID).Debug().Int("count", len(preferences)).Msg("categories reordered")
	return nil
}

// SetVisibility shows or hides one category, keeping its display order.
func (p *preferenceService) SetVisibility(ctx context.Context, userID, categoryID int64, visible bool) error {
	category, err := p.categoryRepository.GetCategory(ctx, userID, categoryID)
	if err != nil {
		return fmt.Errorf("category lookup failed: %w", err)
	}

	stored, err := p.preferenceRepository.ListPreferences(ctx, userID)
	if err != nil {
		return fmt.Errorf("list preferences: %w", err)
	}

	order := resolver.DefaultOrder
	for _, pref := range stored {
		if pref.CategoryID != nil && *pref.CategoryID == categoryID {
			order = pref.DisplayOrder
			break
		}
	}

	pref := models.UserPreference{
		UserID:        userID,
		CategoryID:    &category.ID,
		CategoryValue: &category.Name,
		IsVisible:     visible,
		DisplayOrder:  order,
	}
	if err = p.preferenceRepository.SavePreferences(ctx, userID, pref); err != nil {
		return fmt.Errorf("saving visibility failed: %w", err)
	}

	return nil
}

type categoryIndex struct {
	byID   map[int64]models.Category
	byName map[string]models.Category
}

func newCategoryIndex(categories []models.Category) categoryIndex {
	index := categoryIndex{
		byID:   make(map[int64]models.Category, len(categories)),
		byName: make(map[string]models.Category, len(categories)),
	}
	for _, c := range categories {
		index.byID[c.ID] = c
		index.byName[c.Name] = c
	}
	return index
}

func (i categoryIndex) find(pref models.UserPreference) (models.Category, bool) {
	if pref.CategoryID != nil {
		if c, ok := i.byID[*pref.CategoryID]; ok {
			return c, true
		}
	}
	if pref.CategoryValue != nil {
		c, ok := i.byName[strings.ToLower(strings.TrimSpace(*pref.CategoryValue))]
		return c, ok
	}
	return models.Category{}, false
}
