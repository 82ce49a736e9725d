package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type categoryRepository struct {
	*DB
	logger *logger.Logger
}

func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		DB:     db,
		logger: logger,
	}
}

// ListCategories returns every global category plus the ones created by userID,
// ordered by id.
func (c *categoryRepository) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCategoriesQuery(c.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "categoryRepository.ListCategories").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var categories []models.Category
	err = c.retry(ctx, "categoryRepository.ListCategories", func() error {
		var queryErr error
		categories, queryErr = c.queryCategories(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.ListCategories").
			Int64("user_id", userID).
			Msg("failed to list categories")
		return nil, err
	}

	return categories, nil
}

// GetCategory returns a category visible to userID.
func (c *categoryRepository) GetCategory(ctx context.Context, userID, categoryID int64) (models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCategoryQuery(c.builder, userID, categoryID)
	if err != nil {
		log.Err(err).Str("func", "categoryRepository.GetCategory").Msg("failed to build query")
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var category models.Category
	err = c.retry(ctx, "categoryRepository.GetCategory", func() error {
		var scanErr error
		category, scanErr = scanCategory(c.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrCategoryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.GetCategory").
			Int64("category_id", categoryID).
			Msg("failed to get category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return category, nil
}

// CreateCategory inserts a user-owned category and returns it with its id.
func (c *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateCategoryQuery(c.builder, category)
	if err != nil {
		log.Err(err).Str("func", "categoryRepository.CreateCategory").Msg("failed to build query")
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = c.QueryRowContext(ctx, query, args...).Scan(&category.ID, timestamp{&category.CreatedAt})
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.CreateCategory").
			Str("name", category.Name).
			Msg("failed to create category")
		if c.errorClassificator.IsUniqueViolation(err) {
			return models.Category{}, ErrCategoryAlreadyExists
		}
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	category.IsSystem = false
	return category, nil
}

// DeleteCategory removes a non-system category owned by userID.
func (c *categoryRepository) DeleteCategory(ctx context.Context, userID, categoryID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCategoryQuery(c.builder, userID, categoryID)
	if err != nil {
		log.Err(err).Str("func", "categoryRepository.DeleteCategory").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.DeleteCategory").
			Int64("category_id", categoryID).
			Msg("failed to delete category")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// ListUntranslated returns up to limit user-created categories with an id
// greater than afterID that lack a label for at least one of locales,
// ordered by id.
func (c *categoryRepository) ListUntranslated(ctx context.Context, locales []string, afterID int64, limit int) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUserCategoriesQuery(c.builder, afterID)
	if err != nil {
		log.Err(err).Str("func", "categoryRepository.ListUntranslated").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var categories []models.Category
	err = c.retry(ctx, "categoryRepository.ListUntranslated", func() error {
		var queryErr error
		categories, queryErr = c.queryCategories(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "categoryRepository.ListUntranslated").Msg("failed to list user categories")
		return nil, err
	}

	untranslated := make([]models.Category, 0, limit)
	for _, category := range categories {
		if len(untranslated) == limit {
			break
		}
		if missingLocale(category.Translated, locales) {
			untranslated = append(untranslated, category)
		}
	}

	return untranslated, nil
}

// UpdateTranslations replaces the label map of a category.
func (c *categoryRepository) UpdateTranslations(ctx context.Context, categoryID int64, translations models.Translations) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTranslationsQuery(c.builder, categoryID, translations)
	if err != nil {
		log.Err(err).Str("func", "categoryRepository.UpdateTranslations").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.UpdateTranslations").
			Int64("category_id", categoryID).
			Msg("failed to update translations")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

func (c *categoryRepository) queryCategories(ctx context.Context, query string, args ...any) ([]models.Category, error) {
	rows, err := c.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0, 16)
	for rows.Next() {
		category, scanErr := scanCategory(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

func missingLocale(translations models.Translations, locales []string) bool {
	for _, locale := range locales {
		if translations.Label(locale) == "" {
			return true
		}
	}
	return false
}
