package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// TestSQLite_CategoryLifecycle runs the category and preference repositories
// against a real in-memory sqlite database with migrations applied.
func TestSQLite_CategoryLifecycle(t *testing.T) {
	ctx := context.Background()
	db, err := NewConnect(ctx, config.DB{
		Driver: config.DriverSQLite,
		DSN:    "file:lifecycle?mode=memory&cache=shared&_foreign_keys=on",
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	storages := NewStorages(db, logger.Nop())

	user, err := storages.UserRepository.CreateUser(ctx, models.User{Login: "anna", PasswordHash: "x"})
	require.NoError(t, err)

	_, err = storages.UserRepository.CreateUser(ctx, models.User{Login: "anna", PasswordHash: "y"})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)

	categories, err := storages.CategoryRepository.ListCategories(ctx, user.UserID)
	require.NoError(t, err)
	require.Len(t, categories, 7)
	assert.Equal(t, "Frühstück", categories[0].Translated.Label("de"))

	soups, err := storages.CategoryRepository.CreateCategory(ctx, models.Category{UserID: &user.UserID, Name: "soups"})
	require.NoError(t, err)

	_, err = storages.CategoryRepository.CreateCategory(ctx, models.Category{UserID: &user.UserID, Name: "soups"})
	assert.ErrorIs(t, err, ErrCategoryAlreadyExists)

	require.NoError(t, storages.PreferenceRepository.SavePreferences(ctx, user.UserID,
		models.UserPreference{CategoryID: &soups.ID, IsVisible: false, DisplayOrder: 0}))
	// second save updates in place
	require.NoError(t, storages.PreferenceRepository.SavePreferences(ctx, user.UserID,
		models.UserPreference{CategoryID: &soups.ID, IsVisible: true, DisplayOrder: 3}))

	prefs, err := storages.PreferenceRepository.ListPreferences(ctx, user.UserID)
	require.NoError(t, err)
	require.Len(t, prefs, 1)
	assert.True(t, prefs[0].IsVisible)
	assert.Equal(t, 3, prefs[0].DisplayOrder)

	// system categories cannot be deleted
	assert.ErrorIs(t, storages.CategoryRepository.DeleteCategory(ctx, user.UserID, categories[0].ID), ErrCategoryNotFound)
	require.NoError(t, storages.CategoryRepository.DeleteCategory(ctx, user.UserID, soups.ID))

	prefs, err = storages.PreferenceRepository.ListPreferences(ctx, user.UserID)
	require.NoError(t, err)
	assert.Empty(t, prefs)
}
