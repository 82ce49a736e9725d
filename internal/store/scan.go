package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// sqliteTimeFormats are the layouts go-sqlite3 and CURRENT_TIMESTAMP produce.
var sqliteTimeFormats = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
}

// timestamp scans both native time values and the text timestamps sqlite
// returns for columns without a declared type (e.g. in RETURNING clauses).
type timestamp struct {
	dst *time.Time
}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*ts.dst = v
		return nil
	case nil:
		*ts.dst = time.Time{}
		return nil
	case []byte:
		return ts.parse(string(v))
	case string:
		return ts.parse(v)
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (ts timestamp) parse(value string) error {
	for _, layout := range sqliteTimeFormats {
		if t, err := time.Parse(layout, value); err == nil {
			*ts.dst = t
			return nil
		}
	}
	return fmt.Errorf("unparsable timestamp %q", value)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Login, &user.PasswordHash, &user.Name, &user.Locale, timestamp{&user.CreatedAt})
	return user, err
}

func scanCategory(row rowScanner) (models.Category, error) {
	var (
		category models.Category
		userID   sql.NullInt64
	)

	err := row.Scan(&category.ID, &userID, &category.Name, &category.IsSystem, &category.Translated, timestamp{&category.CreatedAt})
	if err != nil {
		return models.Category{}, err
	}

	if userID.Valid {
		category.UserID = &userID.Int64
	}
	return category, nil
}

func scanPreference(row rowScanner, userID int64) (models.UserPreference, error) {
	var (
		categoryID int64
		value      string
		pref       = models.UserPreference{UserID: userID}
	)

	if err := row.Scan(&categoryID, &value, &pref.IsVisible, &pref.DisplayOrder); err != nil {
		return models.UserPreference{}, err
	}

	pref.CategoryID = &categoryID
	if value != "" {
		pref.CategoryValue = &value
	}
	return pref, nil
}

func scanRecipe(row rowScanner) (models.Recipe, error) {
	var recipe models.Recipe
	err := row.Scan(
		&recipe.ID,
		&recipe.UserID,
		&recipe.Title,
		&recipe.Description,
		&recipe.Category,
		&recipe.Ingredients,
		&recipe.Instructions,
		&recipe.Servings,
		&recipe.PrepMinutes,
		&recipe.CookMinutes,
		&recipe.SourceURL,
		&recipe.ImageURL,
		timestamp{&recipe.CreatedAt},
		timestamp{&recipe.UpdatedAt},
	)
	return recipe, err
}

func scanGroceryItem(row rowScanner) (models.GroceryItem, error) {
	var (
		item     models.GroceryItem
		recipeID sql.NullInt64
	)

	err := row.Scan(&item.ID, &item.UserID, &item.Name, &item.Quantity, &item.Unit, &item.Checked, &recipeID, timestamp{&item.CreatedAt})
	if err != nil {
		return models.GroceryItem{}, err
	}

	if recipeID.Valid {
		item.RecipeID = &recipeID.Int64
	}
	return item, nil
}
