package validators

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// Field names accepted by [RecipeValidator].
const (
	FieldUserID      = "user_id"
	FieldID          = "id"
	FieldTitle       = "title"
	FieldName        = "name"
	FieldIngredients = "ingredients"
	FieldServings    = "servings"
	FieldMinutes     = "minutes"
	FieldSourceURL   = "source_url"
	FieldQuantity    = "quantity"
	FieldChanges     = "changes"
	FieldParseSource = "parse_source"
)

const (
	MaxTitleLength     = 200
	MaxNameLength      = 120
	MaxParseTextLength = 50000
)

// RecipeValidator validates recipes, grocery items and parse requests.
type RecipeValidator struct{}

// NewRecipeValidator constructs a RecipeValidator.
func NewRecipeValidator() Validator {
	return &RecipeValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms of
// models.Recipe, models.GroceryItem, models.GroceryItemUpdate and
// models.ParseRequest are accepted. When fields is empty every field of the
// type is checked.
func (v *RecipeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Recipe:
		return v.validateRecipe(ctx, value, fields...)
	case *models.Recipe:
		return v.validateRecipe(ctx, *value, fields...)

	case models.GroceryItem:
		return v.validateGroceryItem(ctx, value, fields...)
	case *models.GroceryItem:
		return v.validateGroceryItem(ctx, *value, fields...)

	case models.GroceryItemUpdate:
		return v.validateGroceryItemUpdate(ctx, value, fields...)
	case *models.GroceryItemUpdate:
		return v.validateGroceryItemUpdate(ctx, *value, fields...)

	case models.ParseRequest:
		return v.validateParseRequest(ctx, value, fields...)
	case *models.ParseRequest:
		return v.validateParseRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecipeValidator) validateRecipe(_ context.Context, recipe models.Recipe, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle, FieldIngredients, FieldServings, FieldMinutes, FieldSourceURL}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if recipe.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldID:
			if recipe.ID <= 0 {
				return ErrInvalidID
			}
		case FieldTitle:
			title := strings.TrimSpace(recipe.Title)
			if title == "" {
				return ErrEmptyTitle
			}
			if utf8.RuneCountInString(title) > MaxTitleLength {
				return ErrTitleTooLong
			}
		case FieldIngredients:
			for i, ing := range recipe.Ingredients {
				if err := validateIngredient(ing); err != nil {
					return fmt.Errorf("validation error at ingredient %d: %w", i, err)
				}
			}
		case FieldServings:
			if recipe.Servings < 0 {
				return ErrInvalidServings
			}
		case FieldMinutes:
			if recipe.PrepMinutes < 0 || recipe.CookMinutes < 0 {
				return ErrInvalidMinutes
			}
		case FieldSourceURL:
			if recipe.SourceURL != "" && !isHTTPURL(recipe.SourceURL) {
				return ErrInvalidURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateIngredient(ing models.Ingredient) error {
	if strings.TrimSpace(ing.Name) == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(ing.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if ing.Quantity < 0 {
		return ErrInvalidQuantity
	}
	return nil
}

func (v *RecipeValidator) validateGroceryItem(_ context.Context, item models.GroceryItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldName, FieldQuantity}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if item.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldName:
			if strings.TrimSpace(item.Name) == "" {
				return ErrEmptyName
			}
			if utf8.RuneCountInString(item.Name) > MaxNameLength {
				return ErrNameTooLong
			}
		case FieldQuantity:
			if item.Quantity < 0 {
				return ErrInvalidQuantity
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateGroceryItemUpdate checks set fields only; nil means "do not touch".
// FieldChanges rejects an update that sets nothing.
func (v *RecipeValidator) validateGroceryItemUpdate(_ context.Context, update models.GroceryItemUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldName, FieldQuantity, FieldChanges}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if update.ID <= 0 {
				return ErrInvalidID
			}
		case FieldUserID:
			if update.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldName:
			if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
				return ErrEmptyName
			}
		case FieldQuantity:
			if update.Quantity != nil && *update.Quantity < 0 {
				return ErrInvalidQuantity
			}
		case FieldChanges:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecipeValidator) validateParseRequest(_ context.Context, request models.ParseRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldParseSource}
	}

	for _, f := range fields {
		switch f {
		case FieldParseSource:
			hasText := strings.TrimSpace(request.Text) != ""
			hasURL := strings.TrimSpace(request.URL) != ""
			if hasText == hasURL {
				return ErrParseSource
			}
			if hasURL && !isHTTPURL(request.URL) {
				return ErrInvalidURL
			}
			if utf8.RuneCountInString(request.Text) > MaxParseTextLength {
				return ErrTextTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
