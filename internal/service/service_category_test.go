package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/mock"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCategoryService(t *testing.T) (CategoryService, storeMocks, *mock.MockTranslator) {
	t.Helper()
	storages, m := newStoreMocks(t)
	translator := mock.NewMockTranslator(gomock.NewController(t))

	cfg := config.App{DefaultLocale: "en", SupportedLocales: []string{"en", "de"}}
	return NewCategoryService(storages, translator, cfg, logger.Nop()), m, translator
}

// ── GetCategories ────────────────────────────────────────────────────────────

func TestCategoryService_GetCategories(t *testing.T) {
	svc, m, _ := newTestCategoryService(t)

	m.categories.EXPECT().ListCategories(gomock.Any(), int64(7)).Return(testCategories(), nil)
	m.preferences.EXPECT().ListPreferences(gomock.Any(), int64(7)).Return([]models.UserPreference{
		{UserID: 7, CategoryID: ptr(int64(10)), IsVisible: true, DisplayOrder: 0},
		{UserID: 7, CategoryValue: ptr("breakfast"), IsVisible: false, DisplayOrder: 1},
	}, nil)

	got, err := svc.GetCategories(context.Background(), 7, "de-DE")
	require.NoError(t, err)

	want := []models.ResolvedCategory{
		{Value: "all", Label: "Alle Rezepte", IsSystem: true},
		{Value: "soups", Label: "soups", IsVisible: ptr(true), Order: ptr(0), ID: ptr(int64(10))},
		{Value: "dinner", Label: "Abendessen", IsSystem: true, IsVisible: ptr(true), Order: ptr(999), ID: ptr(int64(3))},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetCategories() mismatch (-want +got):\n%s", diff)
	}
}

func TestCategoryService_GetCategories_UnsupportedLocaleUsesDefault(t *testing.T) {
	svc, m, _ := newTestCategoryService(t)

	m.categories.EXPECT().ListCategories(gomock.Any(), int64(7)).Return(testCategories(), nil)
	m.preferences.EXPECT().ListPreferences(gomock.Any(), int64(7)).Return(nil, nil)

	got, err := svc.GetCategories(context.Background(), 7, "fr")
	require.NoError(t, err)

	labels := make([]string, 0, len(got))
	for _, c := range got {
		labels = append(labels, c.Label)
	}
	assert.Equal(t, []string{"All Recipes", "Breakfast", "Dinner", "Soups"}, labels)
}

func TestCategoryService_GetManagedCategories_KeepsHidden(t *testing.T) {
	svc, m, _ := newTestCategoryService(t)

	m.categories.EXPECT().ListCategories(gomock.Any(), int64(7)).Return(testCategories(), nil)
	m.preferences.EXPECT().ListPreferences(gomock.Any(), int64(7)).Return([]models.UserPreference{
		{UserID: 7, CategoryID: ptr(int64(1)), IsVisible: false, DisplayOrder: 0},
	}, nil)

	got, err := svc.GetManagedCategories(context.Background(), 7, "")
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "All Recipes", got[0].Label)
	assert.Equal(t, "breakfast", got[1].Value)
	assert.False(t, *got[1].IsVisible)
}

func TestCategoryService_GetCategories_StoreError(t *testing.T) {
	svc, m, _ := newTestCategoryService(t)
	boom := errors.New("connection refused")

	m.categories.EXPECT().ListCategories(gomock.Any(), int64(7)).Return(nil, boom)
	m.preferences.EXPECT().ListPreferences(gomock.Any(), int64(7)).Return(nil, nil).AnyTimes()

	_, err := svc.GetCategories(context.Background(), 7, "en")
	assert.ErrorIs(t, err, boom)
}

// ── CreateCategory ───────────────────────────────────────────────────────────

func TestCategoryService_CreateCategory(t *testing.T) {
	svc, m, translator := newTestCategoryService(t)

	m.categories.EXPECT().ListCategories(gomock.Any(), int64(7)).Return(testCategories(), nil)
	translator.EXPECT().Translate(gomock.Any(), "Salads", "en", "de").Return("Salate", nil)
	m.categories.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.Category) (models.Category, error) {
			assert.Equal(t, "salads", c.Name)
			require.NotNil(t, c.UserID)
			assert.Equal(t, int64(7), *c.UserID)
			assert.False(t, c.IsSystem)
			assert.Equal(t, models.Translations{"en": "Salads", "de": "Salate"}, c.Translated)
			c.ID = 11
			return c, nil
		},
	)

	got, err := svc.CreateCategory(context.Background(), models.CategoryCreateRequest{UserID: 7, Name: "  Salads "})
	require.NoError(t, err)
	assert.Equal(t, int64(11), got.ID)
}

func TestCategoryService_CreateCategory_TranslationFailureIsNotFatal(t *testing.T) {
	svc, m, translator := newTestCategoryService(t)

	m.categories.EXPECT().ListCategories(gomock.Any(), int64(7)).Return(nil, nil)
	translator.EXPECT().Translate(gomock.Any(), "Kuchen", "de", "en").Return("", adapter.ErrBadGateway)
	m.categories.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.Category) (models.Category, error) {
			assert.Equal(t, models.Translations{"de": "Kuchen"}, c.Translated)
			return c, nil
		},
	)

	_, err := svc.CreateCategory(context.Background(), models.CategoryCreateRequest{UserID: 7, Name: "Kuchen", Locale: "de"})
	require.NoError(t, err)
}

func TestCategoryService_CreateCategory_CollidesWithSystemName(t *testing.T) {
	svc, m, _ := newTestCategoryService(t)

	m.categories.EXPECT().ListCategories(gomock.Any(), int64(7)).Return(testCategories(), nil)

	_, err := svc.CreateCategory(context.Background(), models.CategoryCreateRequest{UserID: 7, Name: "Dinner"})
	assert.ErrorIs(t, err, store.ErrCategoryAlreadyExists)
}

func TestCategoryService_CreateCategory_Invalid(t *testing.T) {
	svc, _, _ := newTestCategoryService(t)

	_, err := svc.CreateCategory(context.Background(), models.CategoryCreateRequest{UserID: 7, Name: "All"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.CreateCategory(context.Background(), models.CategoryCreateRequest{UserID: 7})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── DeleteCategory ───────────────────────────────────────────────────────────

func TestCategoryService_DeleteCategory(t *testing.T) {
	svc, m, _ := newTestCategoryService(t)

	gomock.InOrder(
		m.categories.EXPECT().GetCategory(gomock.Any(), int64(7), int64(10)).Return(testCategories()[2], nil),
		m.categories.EXPECT().DeleteCategory(gomock.Any(), int64(7), int64(10)).Return(nil),
		m.preferences.EXPECT().DeletePreferences(gomock.Any(), int64(7), int64(10)).Return(nil),
	)

	require.NoError(t, svc.DeleteCategory(context.Background(), 7, 10))
}

func TestCategoryService_DeleteCategory_SystemRejected(t *testing.T) {
	svc, m, _ := newTestCategoryService(t)

	m.categories.EXPECT().GetCategory(gomock.Any(), int64(7), int64(3)).Return(testCategories()[1], nil)

	err := svc.DeleteCategory(context.Background(), 7, 3)
	assert.ErrorIs(t, err, ErrSystemCategoryImmutable)
}

func TestCategoryService_DeleteCategory_NotFound(t *testing.T) {
	svc, m, _ := newTestCategoryService(t)

	m.categories.EXPECT().GetCategory(gomock.Any(), int64(7), int64(99)).Return(models.Category{}, store.ErrCategoryNotFound)

	err := svc.DeleteCategory(context.Background(), 7, 99)
	assert.ErrorIs(t, err, store.ErrCategoryNotFound)
}
