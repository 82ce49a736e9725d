package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type groceryService struct {
	groceryRepository store.GroceryRepository
	recipeRepository  store.RecipeRepository

	logger *logger.Logger
}

func NewGroceryService(storages *store.Storages, logger *logger.Logger) GroceryService {
	return &groceryService{
		groceryRepository: storages.GroceryRepository,
		recipeRepository:  storages.RecipeRepository,
		logger:            logger,
	}
}

func (g *groceryService) ListItems(ctx context.Context, userID int64) ([]models.GroceryItem, error) {
	items, err := g.groceryRepository.ListItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing grocery items failed: %w", err)
	}
	if items == nil {
		items = []models.GroceryItem{}
	}
	return items, nil
}

func (g *groceryService) AddItems(ctx context.Context, userID int64, items ...models.GroceryItem) ([]models.GroceryItem, error) {
	for i := range items {
		items[i].UserID = userID
		items[i].Name = strings.TrimSpace(items[i].Name)
		items[i].Unit = strings.TrimSpace(items[i].Unit)
	}

	added, err := g.groceryRepository.AddItems(ctx, items...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Int("count", len(items)).Msg("adding grocery items failed")
		return nil, fmt.Errorf("adding grocery items failed: %w", err)
	}
	return added, nil
}

// AddFromRecipe copies the recipe's ingredients to the grocery list.
// Ingredients repeated with the same unit are merged into one item.
func (g *groceryService) AddFromRecipe(ctx context.Context, userID, recipeID int64) ([]models.GroceryItem, error) {
	recipe, err := g.recipeRepository.GetRecipe(ctx, userID, recipeID)
	if err != nil {
		return nil, fmt.Errorf("recipe lookup failed: %w", err)
	}

	items := make([]models.GroceryItem, 0, len(recipe.Ingredients))
	merged := make(map[string]int, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			continue
		}
		unit := strings.TrimSpace(ing.Unit)

		key := strings.ToLower(name) + "\x00" + strings.ToLower(unit)
		if at, ok := merged[key]; ok {
			items[at].Quantity += ing.Quantity
			continue
		}

		merged[key] = len(items)
		items = append(items, models.GroceryItem{
			UserID:   userID,
			Name:     name,
			Quantity: ing.Quantity,
			Unit:     unit,
			RecipeID: &recipe.ID,
		})
	}

	if len(items) == 0 {
		return nil, ErrRecipeHasNoIngredients
	}

	return g.AddItems(ctx, userID, items...)
}

func (g *groceryService) UpdateItem(ctx context.Context, update models.GroceryItemUpdate) (models.GroceryItem, error) {
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		update.Name = &name
	}

	item, err := g.groceryRepository.UpdateItem(ctx, update)
	if err != nil {
		return models.GroceryItem{}, fmt.Errorf("grocery item update failed: %w", err)
	}
	return item, nil
}

func (g *groceryService) DeleteItem(ctx context.Context, userID, itemID int64) error {
	return g.groceryRepository.DeleteItem(ctx, userID, itemID)
}

// ClearChecked removes every checked item and reports how many were removed.
func (g *groceryService) ClearChecked(ctx context.Context, userID int64) (int64, error) {
	removed, err := g.groceryRepository.DeleteChecked(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("clearing checked items failed: %w", err)
	}

	logger.FromContext(ctx).WithUser(userID).Debug().Int64("removed", removed).Msg("checked grocery items cleared")
	return removed, nil
}
