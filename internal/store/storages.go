package store

import "github.com/MKhiriev/go-recipe-keeper/internal/logger"

// Storages groups every repository the services depend on.
type Storages struct {
	UserRepository       UserRepository
	CategoryRepository   CategoryRepository
	PreferenceRepository PreferenceRepository
	RecipeRepository     RecipeRepository
	GroceryRepository    GroceryRepository
}

// NewStorages builds all repositories over a single connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		CategoryRepository:   NewCategoryRepository(db, log),
		PreferenceRepository: NewPreferenceRepository(db, log),
		RecipeRepository:     NewRecipeRepository(db, log),
		GroceryRepository:    NewGroceryRepository(db, log),
	}
}
