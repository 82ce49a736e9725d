package service

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CategoryService serves the category lists shown to a user.
type CategoryService interface {
	// GetCategories returns the visible categories of userID in display
	// order, labelled for locale and headed by the "all" entry.
	GetCategories(ctx context.Context, userID int64, locale string) ([]models.ResolvedCategory, error)
	// GetManagedCategories is GetCategories including hidden categories.
	GetManagedCategories(ctx context.Context, userID int64, locale string) ([]models.ResolvedCategory, error)
	CreateCategory(ctx context.Context, request models.CategoryCreateRequest) (models.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID int64) error
}

type PreferenceService interface {
	SavePreferences(ctx context.Context, userID int64, preferences ...models.UserPreference) error
	// ReorderCategories stores names' positions as display order.
	ReorderCategories(ctx context.Context, userID int64, names []string) error
	SetVisibility(ctx context.Context, userID, categoryID int64, visible bool) error
}

type RecipeService interface {
	ListRecipes(ctx context.Context, filter models.RecipeFilter) (models.RecipePage, error)
	GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error)
	CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	UpdateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, userID, recipeID int64) error
}

type GroceryService interface {
	ListItems(ctx context.Context, userID int64) ([]models.GroceryItem, error)
	AddItems(ctx context.Context, userID int64, items ...models.GroceryItem) ([]models.GroceryItem, error)
	// AddFromRecipe adds every ingredient of the recipe as a grocery item.
	AddFromRecipe(ctx context.Context, userID, recipeID int64) ([]models.GroceryItem, error)
	UpdateItem(ctx context.Context, update models.GroceryItemUpdate) (models.GroceryItem, error)
	DeleteItem(ctx context.Context, userID, itemID int64) error
	ClearChecked(ctx context.Context, userID int64) (int64, error)
}

type ParserService interface {
	ParseText(ctx context.Context, request models.ParseRequest) (models.ParsedRecipe, error)
	ParseURL(ctx context.Context, request models.ParseRequest) (models.ParsedRecipe, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
