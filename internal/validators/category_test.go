package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestCategoryValidator_CreateRequest(t *testing.T) {
	v := NewCategoryValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CategoryCreateRequest{UserID: 1, Name: "Soups"}))
	assert.ErrorIs(t, v.Validate(ctx, models.CategoryCreateRequest{Name: "Soups"}), ErrInvalidUserID)
	assert.ErrorIs(t, v.Validate(ctx, models.CategoryCreateRequest{UserID: 1, Name: "  "}), ErrEmptyName)
	assert.ErrorIs(t, v.Validate(ctx, models.CategoryCreateRequest{UserID: 1, Name: " ALL "}), ErrReservedName)
	assert.ErrorIs(t, v.Validate(ctx, &models.CategoryCreateRequest{UserID: 1, Name: strings.Repeat("x", MaxCategoryNameLength+1)}), ErrNameTooLong)
}

func TestCategoryValidator_Preference(t *testing.T) {
	v := NewCategoryValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.UserPreference{UserID: 1, CategoryID: ptr(int64(2))}))
	assert.NoError(t, v.Validate(ctx, models.UserPreference{UserID: 1, CategoryValue: ptr("dinner"), DisplayOrder: 3}))
	assert.ErrorIs(t, v.Validate(ctx, models.UserPreference{UserID: 1}), ErrNoCategoryRef)
	assert.ErrorIs(t, v.Validate(ctx, models.UserPreference{UserID: 1, CategoryValue: ptr(" ")}), ErrNoCategoryRef)
	assert.ErrorIs(t, v.Validate(ctx, models.UserPreference{UserID: 1, CategoryID: ptr(int64(2)), DisplayOrder: -1}), ErrInvalidOrder)
	assert.NoError(t, v.Validate(ctx, models.UserPreference{CategoryID: ptr(int64(2))}, FieldCategoryRef))
}

func TestCategoryValidator_ReorderRequest(t *testing.T) {
	v := NewCategoryValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ReorderRequest{Categories: []string{"dinner", "lunch"}}))
	assert.ErrorIs(t, v.Validate(ctx, models.ReorderRequest{}), ErrEmptyCategoryList)
	assert.ErrorIs(t, v.Validate(ctx, models.ReorderRequest{Categories: []string{"dinner", ""}}), ErrEmptyName)
	assert.ErrorIs(t, v.Validate(ctx, models.ReorderRequest{Categories: []string{"dinner", " Dinner"}}), ErrDuplicateCategory)
	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
}
