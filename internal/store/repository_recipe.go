package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type recipeRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	logger.Debug().Msg("creating recipe repository")
	return &recipeRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// ListRecipes returns one page of the user's recipes matching filter and the
// total number of matching recipes.
func (r *recipeRepository) ListRecipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, int, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountRecipesQuery(r.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "recipeRepository.ListRecipes").Msg("failed to build count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	listQuery, listArgs, err := buildListRecipesQuery(r.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "recipeRepository.ListRecipes").Msg("failed to build list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	err = r.retry(ctx, "recipeRepository.ListRecipes", func() error {
		return r.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total)
	})
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.ListRecipes").
			Int64("user_id", filter.UserID).
			Msg("failed to count recipes")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var recipes []models.Recipe
	err = r.retry(ctx, "recipeRepository.ListRecipes", func() error {
		var queryErr error
		recipes, queryErr = r.queryRecipes(ctx, listQuery, listArgs...)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.ListRecipes").
			Int64("user_id", filter.UserID).
			Msg("failed to list recipes")
		return nil, 0, err
	}

	return recipes, total, nil
}

func (r *recipeRepository) GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRecipeQuery(r.builder, userID, recipeID)
	if err != nil {
		log.Err(err).Str("func", "recipeRepository.GetRecipe").Msg("failed to build query")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var recipe models.Recipe
	err = r.retry(ctx, "recipeRepository.GetRecipe", func() error {
		var scanErr error
		recipe, scanErr = scanRecipe(r.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Recipe{}, ErrRecipeNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.GetRecipe").
			Int64("recipe_id", recipeID).
			Msg("failed to get recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return recipe, nil
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateRecipeQuery(r.builder, recipe)
	if err != nil {
		log.Err(err).Str("func", "recipeRepository.CreateRecipe").Msg("failed to build query")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.QueryRowContext(ctx, query, args...).Scan(&recipe.ID, timestamp{&recipe.CreatedAt}, timestamp{&recipe.UpdatedAt})
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.CreateRecipe").
			Int64("user_id", recipe.UserID).
			Msg("failed to create recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return recipe, nil
}

// UpdateRecipe overwrites all editable fields of an existing recipe.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateRecipeQuery(r.builder, recipe, r.now())
	if err != nil {
		log.Err(err).Str("func", "recipeRepository.UpdateRecipe").Msg("failed to build query")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.QueryRowContext(ctx, query, args...).Scan(timestamp{&recipe.CreatedAt}, timestamp{&recipe.UpdatedAt})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Recipe{}, ErrRecipeNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.UpdateRecipe").
			Int64("recipe_id", recipe.ID).
			Msg("failed to update recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return recipe, nil
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, userID, recipeID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecipeQuery(r.builder, userID, recipeID)
	if err != nil {
		log.Err(err).Str("func", "recipeRepository.DeleteRecipe").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.DeleteRecipe").
			Int64("recipe_id", recipeID).
			Msg("failed to delete recipe")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		return ErrRecipeNotFound
	}

	return nil
}

func (r *recipeRepository) queryRecipes(ctx context.Context, query string, args ...any) ([]models.Recipe, error) {
	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0, 12)
	for rows.Next() {
		recipe, scanErr := scanRecipe(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		recipes = append(recipes, recipe)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return recipes, nil
}
