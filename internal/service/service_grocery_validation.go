package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type GroceryValidationService struct {
	inner     GroceryService
	validator validators.Validator
}

func NewGroceryValidationService() GroceryServiceWrapper {
	return &GroceryValidationService{
		validator: validators.NewRecipeValidator(),
	}
}

func (v *GroceryValidationService) ListItems(ctx context.Context, userID int64) ([]models.GroceryItem, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}
	return v.inner.ListItems(ctx, userID)
}

func (v *GroceryValidationService) AddItems(ctx context.Context, userID int64, items ...models.GroceryItem) ([]models.GroceryItem, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no grocery items provided", ErrInvalidDataProvided)
	}
	for i, item := range items {
		item.UserID = userID
		if err := v.validator.Validate(ctx, item); err != nil {
			return nil, fmt.Errorf("%w: item %d: %w", ErrInvalidDataProvided, i, err)
		}
	}
	return v.inner.AddItems(ctx, userID, items...)
}

func (v *GroceryValidationService) AddFromRecipe(ctx context.Context, userID, recipeID int64) ([]models.GroceryItem, error) {
	if userID <= 0 || recipeID <= 0 {
		return nil, fmt.Errorf("%w: invalid user or recipe id", ErrInvalidDataProvided)
	}
	return v.inner.AddFromRecipe(ctx, userID, recipeID)
}

func (v *GroceryValidationService) UpdateItem(ctx context.Context, update models.GroceryItemUpdate) (models.GroceryItem, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.GroceryItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateItem(ctx, update)
}

func (v *GroceryValidationService) DeleteItem(ctx context.Context, userID, itemID int64) error {
	if userID <= 0 || itemID <= 0 {
		return fmt.Errorf("%w: invalid user or item id", ErrInvalidDataProvided)
	}
	return v.inner.DeleteItem(ctx, userID, itemID)
}

func (v *GroceryValidationService) ClearChecked(ctx context.Context, userID int64) (int64, error) {
	if userID <= 0 {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}
	return v.inner.ClearChecked(ctx, userID)
}

func (v *GroceryValidationService) Wrap(wrapped GroceryService) GroceryService {
	v.inner = wrapped
	return v
}
