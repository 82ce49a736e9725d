package store

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// CategoryRepository persists global and user-created categories.
type CategoryRepository interface {
	ListCategories(ctx context.Context, userID int64) ([]models.Category, error)
	GetCategory(ctx context.Context, userID, categoryID int64) (models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID int64) error
	ListUntranslated(ctx context.Context, locales []string, afterID int64, limit int) ([]models.Category, error)
	UpdateTranslations(ctx context.Context, categoryID int64, translations models.Translations) error
}

// PreferenceRepository persists per-user category visibility and order.
type PreferenceRepository interface {
	ListPreferences(ctx context.Context, userID int64) ([]models.UserPreference, error)
	SavePreferences(ctx context.Context, userID int64, prefs ...models.UserPreference) error
	DeletePreferences(ctx context.Context, userID, categoryID int64) error
}

type RecipeRepository interface {
	ListRecipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, int, error)
	GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error)
	CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	UpdateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, userID, recipeID int64) error
}

type GroceryRepository interface {
	ListItems(ctx context.Context, userID int64) ([]models.GroceryItem, error)
	AddItems(ctx context.Context, items ...models.GroceryItem) ([]models.GroceryItem, error)
	UpdateItem(ctx context.Context, update models.GroceryItemUpdate) (models.GroceryItem, error)
	DeleteItem(ctx context.Context, userID, itemID int64) error
	DeleteChecked(ctx context.Context, userID int64) (int64, error)
}
