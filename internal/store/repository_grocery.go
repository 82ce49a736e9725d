package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type groceryRepository struct {
	*DB
	logger *logger.Logger
}

func NewGroceryRepository(db *DB, logger *logger.Logger) GroceryRepository {
	logger.Debug().Msg("creating grocery repository")
	return &groceryRepository{
		DB:     db,
		logger: logger,
	}
}

// ListItems returns the grocery list of userID, unchecked items first.
func (g *groceryRepository) ListItems(ctx context.Context, userID int64) ([]models.GroceryItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListGroceryItemsQuery(g.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "groceryRepository.ListItems").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var items []models.GroceryItem
	err = g.retry(ctx, "groceryRepository.ListItems", func() error {
		var queryErr error
		items, queryErr = g.queryItems(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "groceryRepository.ListItems").
			Int64("user_id", userID).
			Msg("failed to list grocery items")
		return nil, err
	}

	return items, nil
}

// AddItems inserts all items in one transaction and returns them with their
// ids assigned.
func (g *groceryRepository) AddItems(ctx context.Context, items ...models.GroceryItem) ([]models.GroceryItem, error) {
	log := logger.FromContext(ctx)

	if len(items) == 0 {
		return []models.GroceryItem{}, nil
	}

	// begin transaction
	tx, err := g.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "groceryRepository.AddItems").Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	saved := make([]models.GroceryItem, 0, len(items))
	for i, item := range items {
		query, args, buildErr := buildAddGroceryItemQuery(g.builder, item)
		if buildErr != nil {
			log.Err(buildErr).Str("func", "groceryRepository.AddItems").Msg("failed to build query")
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if scanErr := tx.QueryRowContext(ctx, query, args...).Scan(&item.ID, timestamp{&item.CreatedAt}); scanErr != nil {
			log.Err(scanErr).
				Str("func", "groceryRepository.AddItems").
				Int64("user_id", item.UserID).
				Int("iteration", i).
				Msg("failed to insert grocery item")
			return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
		}
		saved = append(saved, item)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "groceryRepository.AddItems").Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return saved, nil
}

// UpdateItem applies the non-nil fields of update and returns the stored item.
func (g *groceryRepository) UpdateItem(ctx context.Context, update models.GroceryItemUpdate) (models.GroceryItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateGroceryItemQuery(g.builder, update)
	if err != nil {
		log.Err(err).Str("func", "groceryRepository.UpdateItem").Msg("failed to build query")
		return models.GroceryItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanGroceryItem(g.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.GroceryItem{}, ErrGroceryItemNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "groceryRepository.UpdateItem").
			Int64("item_id", update.ID).
			Msg("failed to update grocery item")
		return models.GroceryItem{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return item, nil
}

func (g *groceryRepository) DeleteItem(ctx context.Context, userID, itemID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteGroceryItemQuery(g.builder, userID, itemID)
	if err != nil {
		log.Err(err).Str("func", "groceryRepository.DeleteItem").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := g.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "groceryRepository.DeleteItem").
			Int64("item_id", itemID).
			Msg("failed to delete grocery item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		return ErrGroceryItemNotFound
	}

	return nil
}

// DeleteChecked removes all checked items of userID and returns how many
// were removed.
func (g *groceryRepository) DeleteChecked(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCheckedQuery(g.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "groceryRepository.DeleteChecked").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := g.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "groceryRepository.DeleteChecked").
			Int64("user_id", userID).
			Msg("failed to delete checked grocery items")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	removed, _ := result.RowsAffected()
	return removed, nil
}

func (g *groceryRepository) queryItems(ctx context.Context, query string, args ...any) ([]models.GroceryItem, error) {
	rows, err := g.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.GroceryItem, 0, 32)
	for rows.Next() {
		item, scanErr := scanGroceryItem(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}
