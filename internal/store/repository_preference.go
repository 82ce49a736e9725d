package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type preferenceRepository struct {
	*DB
	logger *logger.Logger
}

func NewPreferenceRepository(db *DB, logger *logger.Logger) PreferenceRepository {
	logger.Debug().Msg("creating preference repository")
	return &preferenceRepository{
		DB:     db,
		logger: logger,
	}
}

// ListPreferences returns the stored category preferences of userID.
func (p *preferenceRepository) ListPreferences(ctx context.Context, userID int64) ([]models.UserPreference, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPreferencesQuery(p.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "preferenceRepository.ListPreferences").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var prefs []models.UserPreference
	err = p.retry(ctx, "preferenceRepository.ListPreferences", func() error {
		var queryErr error
		prefs, queryErr = p.queryPreferences(ctx, userID, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "preferenceRepository.ListPreferences").
			Int64("user_id", userID).
			Msg("failed to list preferences")
		return nil, err
	}

	return prefs, nil
}

// SavePreferences upserts all prefs in a single transaction, keyed by
// (user, category id). Either all of them are stored or none.
func (p *preferenceRepository) SavePreferences(ctx context.Context, userID int64, prefs ...models.UserPreference) error {
	log := logger.FromContext(ctx)

	if len(prefs) == 0 {
		return nil
	}

	// begin transaction
	tx, err := p.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "preferenceRepository.SavePreferences").
			Int64("user_id", userID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for i, pref := range prefs {
		if pref.CategoryID == nil {
			return ErrPreferenceWithoutCategory
		}

		query, args, buildErr := buildUpsertPreferenceQuery(p.builder, userID, pref)
		if buildErr != nil {
			log.Err(buildErr).Str("func", "preferenceRepository.SavePreferences").Msg("failed to build query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			log.Err(execErr).
				Str("func", "preferenceRepository.SavePreferences").
				Int64("user_id", userID).
				Int64("category_id", *pref.CategoryID).
				Int("iteration", i).
				Msg("failed to upsert preference")
			if p.errorClassificator.IsForeignKeyViolation(execErr) {
				return ErrCategoryNotFound
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "preferenceRepository.SavePreferences").
			Int64("user_id", userID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// DeletePreferences removes the preference of userID for categoryID.
// Deleting a missing preference is not an error.
func (p *preferenceRepository) DeletePreferences(ctx context.Context, userID, categoryID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePreferencesQuery(p.builder, userID, categoryID)
	if err != nil {
		log.Err(err).Str("func", "preferenceRepository.DeletePreferences").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "preferenceRepository.DeletePreferences").
			Int64("user_id", userID).
			Int64("category_id", categoryID).
			Msg("failed to delete preferences")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (p *preferenceRepository) queryPreferences(ctx context.Context, userID int64, query string, args ...any) ([]models.UserPreference, error) {
	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	prefs := make([]models.UserPreference, 0, 16)
	for rows.Next() {
		pref, scanErr := scanPreference(rows, userID)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		prefs = append(prefs, pref)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return prefs, nil
}
