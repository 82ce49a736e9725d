package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-recipe-keeper/internal/resolver"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// Field names accepted by [CategoryValidator].
const (
	FieldCategoryRef  = "category_ref"
	FieldDisplayOrder = "display_order"
	FieldCategories   = "categories"
)

// MaxCategoryNameLength bounds user category names.
const MaxCategoryNameLength = 50

// CategoryValidator validates category creation, preference and reorder
// requests.
type CategoryValidator struct{}

// NewCategoryValidator constructs a CategoryValidator.
func NewCategoryValidator() Validator {
	return &CategoryValidator{}
}

// Validate dispatches on the dynamic type of obj: models.CategoryCreateRequest,
// models.UserPreference and models.ReorderRequest, by value or pointer.
func (v *CategoryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CategoryCreateRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.CategoryCreateRequest:
		return v.validateCreateRequest(ctx, *value, fields...)

	case models.UserPreference:
		return v.validatePreference(ctx, value, fields...)
	case *models.UserPreference:
		return v.validatePreference(ctx, *value, fields...)

	case models.ReorderRequest:
		return v.validateReorderRequest(ctx, value, fields...)
	case *models.ReorderRequest:
		return v.validateReorderRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CategoryValidator) validateCreateRequest(_ context.Context, request models.CategoryCreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldName:
			name := strings.TrimSpace(request.Name)
			if name == "" {
				return ErrEmptyName
			}
			if utf8.RuneCountInString(name) > MaxCategoryNameLength {
				return ErrNameTooLong
			}
			// "all" is the synthetic first entry of every category list.
			if strings.EqualFold(name, resolver.AllValue) {
				return ErrReservedName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CategoryValidator) validatePreference(_ context.Context, pref models.UserPreference, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldCategoryRef, FieldDisplayOrder}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if pref.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldCategoryRef:
			hasID := pref.CategoryID != nil && *pref.CategoryID > 0
			hasValue := pref.CategoryValue != nil && strings.TrimSpace(*pref.CategoryValue) != ""
			if !hasID && !hasValue {
				return ErrNoCategoryRef
			}
		case FieldDisplayOrder:
			if pref.DisplayOrder < 0 {
				return ErrInvalidOrder
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CategoryValidator) validateReorderRequest(_ context.Context, request models.ReorderRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCategories}
	}

	for _, f := range fields {
		switch f {
		case FieldCategories:
			if len(request.Categories) == 0 {
				return ErrEmptyCategoryList
			}
			seen := make(map[string]struct{}, len(request.Categories))
			for i, name := range request.Categories {
				name = strings.ToLower(strings.TrimSpace(name))
				if name == "" {
					return fmt.Errorf("validation error at index %d: %w", i, ErrEmptyName)
				}
				if _, ok := seen[name]; ok {
					return fmt.Errorf("validation error at index %d: %w", i, ErrDuplicateCategory)
				}
				seen[name] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
