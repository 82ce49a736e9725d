package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// RecipeValidationService checks inputs before they reach the wrapped
// RecipeService.
type RecipeValidationService struct {
	inner     RecipeService
	validator validators.Validator
}

func NewRecipeValidationService() RecipeServiceWrapper {
	return &RecipeValidationService{
		validator: validators.NewRecipeValidator(),
	}
}

func (v *RecipeValidationService) ListRecipes(ctx context.Context, filter models.RecipeFilter) (models.RecipePage, error) {
	if filter.UserID <= 0 {
		return models.RecipePage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}

	return v.inner.ListRecipes(ctx, filter)
}

func (v *RecipeValidationService) GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error) {
	if err := v.validator.Validate(ctx, models.Recipe{ID: recipeID, UserID: userID}, validators.FieldID, validators.FieldUserID); err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.GetRecipe(ctx, userID, recipeID)
}

func (v *RecipeValidationService) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	if err := v.validator.Validate(ctx, recipe); err != nil {
		return models.Recipe{}, fmt.Errorf("error during recipe validation before saving: %w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateRecipe(ctx, recipe)
}

func (v *RecipeValidationService) UpdateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	if err := v.validator.Validate(ctx, recipe); err != nil {
		return models.Recipe{}, fmt.Errorf("error during recipe validation before update: %w: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, recipe, validators.FieldID); err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateRecipe(ctx, recipe)
}

func (v *RecipeValidationService) DeleteRecipe(ctx context.Context, userID, recipeID int64) error {
	if err := v.validator.Validate(ctx, models.Recipe{ID: recipeID, UserID: userID}, validators.FieldID, validators.FieldUserID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeleteRecipe(ctx, userID, recipeID)
}

func (v *RecipeValidationService) Wrap(wrapped RecipeService) RecipeService {
	v.inner = wrapped
	return v
}
