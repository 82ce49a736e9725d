package service

import (
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/internal/mock"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"go.uber.org/mock/gomock"
)

type storeMocks struct {
	users       *mock.MockUserRepository
	categories  *mock.MockCategoryRepository
	preferences *mock.MockPreferenceRepository
	recipes     *mock.MockRecipeRepository
	grocery     *mock.MockGroceryRepository
}

func newStoreMocks(t *testing.T) (*store.Storages, storeMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := storeMocks{
		users:       mock.NewMockUserRepository(ctrl),
		categories:  mock.NewMockCategoryRepository(ctrl),
		preferences: mock.NewMockPreferenceRepository(ctrl),
		recipes:     mock.NewMockRecipeRepository(ctrl),
		grocery:     mock.NewMockGroceryRepository(ctrl),
	}

	return &store.Storages{
		UserRepository:       m.users,
		CategoryRepository:   m.categories,
		PreferenceRepository: m.preferences,
		RecipeRepository:     m.recipes,
		GroceryRepository:    m.grocery,
	}, m
}

func ptr[T any](v T) *T { return &v }

// testCategories are the categories visible to user 7: two system ones and
// one of the user's own.
func testCategories() []models.Category {
	return []models.Category{
		{ID: 1, Name: "breakfast", IsSystem: true, Translated: models.Translations{"en": "Breakfast", "de": "Frühstück"}},
		{ID: 3, Name: "dinner", IsSystem: true, Translated: models.Translations{"en": "Dinner", "de": "Abendessen"}},
		{ID: 10, UserID: ptr(int64(7)), Name: "soups", Translated: models.Translations{"en": "Soups"}},
	}
}
