package workers

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// TranslationWorker periodically fills missing per-locale labels of
// categories using the configured [adapter.Translator].
type TranslationWorker struct {
	categories store.CategoryRepository
	translator adapter.Translator

	locales       []string
	defaultLocale string
	interval      time.Duration
	batchSize     int

	// cursor is the last category id of the previous batch
	cursor int64

	logger *logger.Logger
}

func NewTranslationWorker(categories store.CategoryRepository, translator adapter.Translator, cfg config.StructuredConfig, logger *logger.Logger) *TranslationWorker {
	return &TranslationWorker{
		categories:    categories,
		translator:    translator,
		locales:       cfg.App.SupportedLocales,
		defaultLocale: cfg.App.DefaultLocale,
		interval:      cfg.Workers.TranslationInterval,
		batchSize:     cfg.Workers.TranslationBatchSize,
		logger:        logger,
	}
}

// Run translates once immediately and then on every tick until ctx is done.
func (w *TranslationWorker) Run(ctx context.Context) error {
	if w.interval <= 0 || len(w.locales) < 2 {
		w.logger.Info().Msg("translation worker disabled")
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if err := w.RunOnce(ctx); errors.Is(err, adapter.ErrTranslatorDisabled) {
			w.logger.Info().Msg("translator is not configured, translation worker stopped")
			<-ctx.Done()
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// RunOnce handles the next batch of categories with missing labels.
// Per-category failures are logged and skipped; the next call continues
// after the batch, and a pass over all categories starts again once a short
// batch is returned. RunOnce must not be called concurrently.
func (w *TranslationWorker) RunOnce(ctx context.Context) error {
	categories, err := w.categories.ListUntranslated(ctx, w.locales, w.cursor, w.batchSize)
	if err != nil {
		w.logger.Err(err).Str("func", "TranslationWorker.RunOnce").Msg("error listing untranslated categories")
		return err
	}

	if len(categories) == 0 || len(categories) < w.batchSize {
		w.cursor = 0
	} else {
		w.cursor = categories[len(categories)-1].ID
	}

	updated := 0
	for _, category := range categories {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		translations, changed, err := w.translate(ctx, category)
		if errors.Is(err, adapter.ErrTranslatorDisabled) {
			return err
		}
		if err != nil {
			w.logger.Err(err).Int64("category_id", category.ID).Msg("error translating category")
		}
		if !changed {
			continue
		}

		if err = w.categories.UpdateTranslations(ctx, category.ID, translations); err != nil {
			w.logger.Err(err).Int64("category_id", category.ID).Msg("error saving category translations")
			continue
		}
		updated++
	}

	if len(categories) > 0 {
		w.logger.Info().Int("found", len(categories)).Int("updated", updated).Msg("category translations filled")
	}
	return nil
}

// translate returns the category labels with every missing locale filled.
// A partial result is returned together with the first translation error.
func (w *TranslationWorker) translate(ctx context.Context, category models.Category) (models.Translations, bool, error) {
	source, text := w.sourceLabel(category)

	translations := make(models.Translations, len(w.locales))
	for locale, label := range category.Translated {
		translations[locale] = label
	}

	changed := false
	var firstErr error
	for _, locale := range w.locales {
		if translations.Label(locale) != "" {
			continue
		}

		if source == "" {
			// name is the canonical fallback for the default locale
			if locale == w.defaultLocale {
				translations[locale] = text
				changed = true
			}
			continue
		}

		label, err := w.translator.Translate(ctx, text, source, locale)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if errors.Is(err, adapter.ErrTranslatorDisabled) {
				break
			}
			continue
		}
		translations[locale] = label
		changed = true
	}

	return translations, changed, firstErr
}

// sourceLabel picks the label to translate from. The default locale is
// preferred, then the first supported locale that has a label. When no label
// exists the canonical name is returned with an empty source locale.
func (w *TranslationWorker) sourceLabel(category models.Category) (string, string) {
	if label := category.Translated.Label(w.defaultLocale); label != "" {
		return w.defaultLocale, label
	}
	for _, locale := range w.locales {
		if label := category.Translated.Label(locale); label != "" {
			return locale, label
		}
	}

	// labels in unsupported locales are still usable as a source
	keys := make([]string, 0, len(category.Translated))
	for locale, label := range category.Translated {
		if label != "" {
			keys = append(keys, locale)
		}
	}
	if len(keys) > 0 {
		slices.Sort(keys)
		return keys[0], category.Translated[keys[0]]
	}

	return "", category.Name
}
