package store

import (
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-recipe-keeper/internal/pagination"
	"github.com/MKhiriev/go-recipe-keeper/internal/resolver"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

var (
	userColumns       = []string{"user_id", "login", "password_hash", "name", "locale", "created_at"}
	categoryColumns   = []string{"id", "user_id", "name", "is_system", "translated_category", "created_at"}
	preferenceColumns = []string{"category_id", "category_value", "is_visible", "display_order"}
	recipeColumns     = []string{
		"id", "user_id", "title", "description", "category", "ingredients", "instructions",
		"servings", "prep_minutes", "cook_minutes", "source_url", "image_url", "created_at", "updated_at",
	}
	groceryColumns = []string{"id", "user_id", "name", "quantity", "unit", "checked", "recipe_id", "created_at"}
)

func returning(columns ...string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// users

func buildCreateUserQuery(sb squirrel.StatementBuilderType, user models.User) (string, []any, error) {
	return sb.Insert("users").
		Columns("login", "password_hash", "name", "locale").
		Values(user.Login, user.PasswordHash, user.Name, user.Locale).
		Suffix(returning("user_id", "created_at")).
		ToSql()
}

func buildFindUserByLoginQuery(sb squirrel.StatementBuilderType, login string) (string, []any, error) {
	return sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"login": login}).
		ToSql()
}

// categories

// visibleTo matches global categories and the ones owned by userID.
func visibleTo(userID int64) squirrel.Or {
	return squirrel.Or{
		squirrel.Eq{"user_id": nil},
		squirrel.Eq{"user_id": userID},
	}
}

func buildListCategoriesQuery(sb squirrel.StatementBuilderType, userID int64) (string, []any, error) {
	return sb.Select(categoryColumns...).
		From("categories").
		Where(visibleTo(userID)).
		OrderBy("id").
		ToSql()
}

func buildGetCategoryQuery(sb squirrel.StatementBuilderType, userID, categoryID int64) (string, []any, error) {
	return sb.Select(categoryColumns...).
		From("categories").
		Where(squirrel.And{squirrel.Eq{"id": categoryID}, visibleTo(userID)}).
		ToSql()
}

func buildCreateCategoryQuery(sb squirrel.StatementBuilderType, category models.Category) (string, []any, error) {
	return sb.Insert("categories").
		Columns("user_id", "name", "is_system", "translated_category").
		Values(category.UserID, category.Name, false, category.Translated).
		Suffix(returning("id", "created_at")).
		ToSql()
}

// buildDeleteCategoryQuery only ever matches non-system categories owned by userID.
func buildDeleteCategoryQuery(sb squirrel.StatementBuilderType, userID, categoryID int64) (string, []any, error) {
	return sb.Delete("categories").
		Where(squirrel.Eq{"id": categoryID, "user_id": userID, "is_system": false}).
		ToSql()
}

func buildListUserCategoriesQuery(sb squirrel.StatementBuilderType, afterID int64) (string, []any, error) {
	return sb.Select(categoryColumns...).
		From("categories").
		Where(squirrel.NotEq{"user_id": nil}).
		Where(squirrel.Gt{"id": afterID}).
		OrderBy("id").
		ToSql()
}

func buildUpdateTranslationsQuery(sb squirrel.StatementBuilderType, categoryID int64, translations models.Translations) (string, []any, error) {
	return sb.Update("categories").
		Set("translated_category", translations).
		Where(squirrel.Eq{"id": categoryID}).
		ToSql()
}

// preferences

func buildListPreferencesQuery(sb squirrel.StatementBuilderType, userID int64) (string, []any, error) {
	return sb.Select(preferenceColumns...).
		From("category_preferences").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("display_order", "category_id").
		ToSql()
}

func buildUpsertPreferenceQuery(sb squirrel.StatementBuilderType, userID int64, pref models.UserPreference) (string, []any, error) {
	var value string
	if pref.CategoryValue != nil {
		value = *pref.CategoryValue
	}

	return sb.Insert("category_preferences").
		Columns("user_id", "category_id", "category_value", "is_visible", "display_order").
		Values(userID, *pref.CategoryID, value, pref.IsVisible, pref.DisplayOrder).
		Suffix("ON CONFLICT (user_id, category_id) DO UPDATE SET " +
			"category_value = excluded.category_value, " +
			"is_visible = excluded.is_visible, " +
			"display_order = excluded.display_order").
		ToSql()
}

func buildDeletePreferencesQuery(sb squirrel.StatementBuilderType, userID, categoryID int64) (string, []any, error) {
	return sb.Delete("category_preferences").
		Where(squirrel.Eq{"user_id": userID, "category_id": categoryID}).
		ToSql()
}

// recipes

func recipeFilterCondition(filter models.RecipeFilter) squirrel.And {
	cond := squirrel.And{squirrel.Eq{"user_id": filter.UserID}}

	if filter.Category != "" && filter.Category != resolver.AllValue {
		cond = append(cond, squirrel.Eq{"category": filter.Category})
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		cond = append(cond, squirrel.Or{
			squirrel.Like{"LOWER(title)": pattern},
			squirrel.Like{"LOWER(description)": pattern},
		})
	}

	return cond
}

func buildCountRecipesQuery(sb squirrel.StatementBuilderType, filter models.RecipeFilter) (string, []any, error) {
	return sb.Select("COUNT(*)").
		From("recipes").
		Where(recipeFilterCondition(filter)).
		ToSql()
}

func buildListRecipesQuery(sb squirrel.StatementBuilderType, filter models.RecipeFilter) (string, []any, error) {
	page, pageSize := pagination.Normalize(filter.Page, filter.PageSize)

	return sb.Select(recipeColumns...).
		From("recipes").
		Where(recipeFilterCondition(filter)).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(pageSize)).
		Offset(uint64(pagination.Offset(page, pageSize))).
		ToSql()
}

func buildGetRecipeQuery(sb squirrel.StatementBuilderType, userID, recipeID int64) (string, []any, error) {
	return sb.Select(recipeColumns...).
		From("recipes").
		Where(squirrel.Eq{"id": recipeID, "user_id": userID}).
		ToSql()
}

func buildCreateRecipeQuery(sb squirrel.StatementBuilderType, recipe models.Recipe) (string, []any, error) {
	return sb.Insert("recipes").
		Columns("user_id", "title", "description", "category", "ingredients", "instructions",
			"servings", "prep_minutes", "cook_minutes", "source_url", "image_url").
		Values(recipe.UserID, recipe.Title, recipe.Description, recipe.Category, recipe.Ingredients, recipe.Instructions,
			recipe.Servings, recipe.PrepMinutes, recipe.CookMinutes, recipe.SourceURL, recipe.ImageURL).
		Suffix(returning("id", "created_at", "updated_at")).
		ToSql()
}

func buildUpdateRecipeQuery(sb squirrel.StatementBuilderType, recipe models.Recipe, now time.Time) (string, []any, error) {
	return sb.Update("recipes").
		SetMap(map[string]any{
			"title":        recipe.Title,
			"description":  recipe.Description,
			"category":     recipe.Category,
			"ingredients":  recipe.Ingredients,
			"instructions": recipe.Instructions,
			"servings":     recipe.Servings,
			"prep_minutes": recipe.PrepMinutes,
			"cook_minutes": recipe.CookMinutes,
			"source_url":   recipe.SourceURL,
			"image_url":    recipe.ImageURL,
			"updated_at":   now,
		}).
		Where(squirrel.Eq{"id": recipe.ID, "user_id": recipe.UserID}).
		Suffix(returning("created_at", "updated_at")).
		ToSql()
}

func buildDeleteRecipeQuery(sb squirrel.StatementBuilderType, userID, recipeID int64) (string, []any, error) {
	return sb.Delete("recipes").
		Where(squirrel.Eq{"id": recipeID, "user_id": userID}).
		ToSql()
}

// grocery items

func buildListGroceryItemsQuery(sb squirrel.StatementBuilderType, userID int64) (string, []any, error) {
	return sb.Select(groceryColumns...).
		From("grocery_items").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("checked", "id").
		ToSql()
}

func buildAddGroceryItemQuery(sb squirrel.StatementBuilderType, item models.GroceryItem) (string, []any, error) {
	return sb.Insert("grocery_items").
		Columns("user_id", "name", "quantity", "unit", "checked", "recipe_id").
		Values(item.UserID, item.Name, item.Quantity, item.Unit, item.Checked, item.RecipeID).
		Suffix(returning("id", "created_at")).
		ToSql()
}

func buildUpdateGroceryItemQuery(sb squirrel.StatementBuilderType, update models.GroceryItemUpdate) (string, []any, error) {
	query := sb.Update("grocery_items")

	if update.Name != nil {
		query = query.Set("name", *update.Name)
	}
	if update.Quantity != nil {
		query = query.Set("quantity", *update.Quantity)
	}
	if update.Unit != nil {
		query = query.Set("unit", *update.Unit)
	}
	if update.Checked != nil {
		query = query.Set("checked", *update.Checked)
	}

	return query.
		Where(squirrel.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix(returning(groceryColumns...)).
		ToSql()
}

func buildDeleteGroceryItemQuery(sb squirrel.StatementBuilderType, userID, itemID int64) (string, []any, error) {
	return sb.Delete("grocery_items").
		Where(squirrel.Eq{"id": itemID, "user_id": userID}).
		ToSql()
}

func buildDeleteCheckedQuery(sb squirrel.StatementBuilderType, userID int64) (string, []any, error) {
	return sb.Delete("grocery_items").
		Where(squirrel.Eq{"user_id": userID, "checked": true}).
		ToSql()
}
