package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/pagination"
	"github.com/MKhiriev/go-recipe-keeper/internal/resolver"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type recipeService struct {
	recipeRepository   store.RecipeRepository
	categoryRepository store.CategoryRepository

	logger *logger.Logger
}

func NewRecipeService(storages *store.Storages, logger *logger.Logger) RecipeService {
	return &recipeService{
		recipeRepository:   storages.RecipeRepository,
		categoryRepository: storages.CategoryRepository,
		logger:             logger,
	}
}

// ListRecipes returns one page of the user's recipes with the pager window.
// A page past the last one yields an empty page, not an error.
func (r *recipeService) ListRecipes(ctx context.Context, filter models.RecipeFilter) (models.RecipePage, error) {
	filter.Page, filter.PageSize = pagination.Normalize(filter.Page, filter.PageSize)
	filter.Category = canonicalCategory(filter.Category)

	recipes, total, err := r.recipeRepository.ListRecipes(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", filter.UserID).Msg("listing recipes failed")
		return models.RecipePage{}, fmt.Errorf("listing recipes failed: %w", err)
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}

	totalPages := pagination.TotalPages(total, filter.PageSize)
	return models.RecipePage{
		Recipes:    recipes,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
		Window:     pagination.Window(filter.Page, totalPages, pagination.DefaultWindow),
	}, nil
}

func (r *recipeService) GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error) {
	return r.recipeRepository.GetRecipe(ctx, userID, recipeID)
}

func (r *recipeService) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	if err := r.prepare(ctx, &recipe); err != nil {
		return models.Recipe{}, err
	}

	created, err := r.recipeRepository.CreateRecipe(ctx, recipe)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", recipe.UserID).Msg("recipe creation failed")
		return models.Recipe{}, fmt.Errorf("recipe creation failed: %w", err)
	}

	return created, nil
}

func (r *recipeService) UpdateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	if err := r.prepare(ctx, &recipe); err != nil {
		return models.Recipe{}, err
	}

	updated, err := r.recipeRepository.UpdateRecipe(ctx, recipe)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("recipe update failed: %w", err)
	}

	return updated, nil
}

func (r *recipeService) DeleteRecipe(ctx context.Context, userID, recipeID int64) error {
	return r.recipeRepository.DeleteRecipe(ctx, userID, recipeID)
}

// prepare trims the recipe and checks that its category is one the user can
// see. "all" and empty both mean uncategorised.
func (r *recipeService) prepare(ctx context.Context, recipe *models.Recipe) error {
	recipe.Title = strings.TrimSpace(recipe.Title)
	recipe.Description = strings.TrimSpace(recipe.Description)
	recipe.Category = canonicalCategory(recipe.Category)

	if recipe.Category == "" {
		return nil
	}

	categories, err := r.categoryRepository.ListCategories(ctx, recipe.UserID)
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}
	for _, c := range categories {
		if c.Name == recipe.Category {
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownCategory, recipe.Category)
}

func canonicalCategory(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == resolver.AllValue {
		return ""
	}
	return name
}
