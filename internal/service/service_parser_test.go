package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/mock"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestParserService(t *testing.T) (ParserService, *mock.MockRecipeExtractor, *mock.MockPageFetcher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	extractor := mock.NewMockRecipeExtractor(ctrl)
	fetcher := mock.NewMockPageFetcher(ctrl)

	return NewParserService(extractor, fetcher, config.App{DefaultLocale: "en"}, logger.Nop()), extractor, fetcher
}

func TestParserService_ParseText(t *testing.T) {
	svc, extractor, _ := newTestParserService(t)

	extractor.EXPECT().Extract(gomock.Any(), "2 eggs, fry", "de").
		Return(models.ParsedRecipe{Title: "Spiegelei"}, nil)

	got, err := svc.ParseText(context.Background(), models.ParseRequest{
		Text:   "2 eggs, fry",
		URL:    "https://ignored.example",
		Locale: "de-CH",
	})
	require.NoError(t, err)
	assert.Equal(t, "Spiegelei", got.Title)
}

func TestParserService_ParseText_DefaultLocale(t *testing.T) {
	svc, extractor, _ := newTestParserService(t)

	extractor.EXPECT().Extract(gomock.Any(), "toast", "en").Return(models.ParsedRecipe{Title: "Toast"}, nil)

	_, err := svc.ParseText(context.Background(), models.ParseRequest{Text: "toast"})
	require.NoError(t, err)
}

func TestParserService_ParseText_Empty(t *testing.T) {
	svc, _, _ := newTestParserService(t)

	_, err := svc.ParseText(context.Background(), models.ParseRequest{Text: "   "})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrParseSource)
}

func TestParserService_ParseURL(t *testing.T) {
	svc, extractor, fetcher := newTestParserService(t)

	fetcher.EXPECT().Fetch(gomock.Any(), "https://example.com/pie").Return("Apple pie\nBake it", nil)
	extractor.EXPECT().Extract(gomock.Any(), "Apple pie\nBake it", "en").
		Return(models.ParsedRecipe{Title: "Apple pie"}, nil)

	got, err := svc.ParseURL(context.Background(), models.ParseRequest{URL: " https://example.com/pie "})
	require.NoError(t, err)
	assert.Equal(t, "Apple pie", got.Title)
	assert.Equal(t, "https://example.com/pie", got.SourceURL)
}

func TestParserService_ParseURL_FetchFails(t *testing.T) {
	svc, _, fetcher := newTestParserService(t)

	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return("", adapter.ErrEmptyPage)

	_, err := svc.ParseURL(context.Background(), models.ParseRequest{URL: "https://example.com/empty"})
	assert.ErrorIs(t, err, adapter.ErrEmptyPage)
}

func TestParserService_ParseURL_InvalidURL(t *testing.T) {
	svc, _, _ := newTestParserService(t)

	_, err := svc.ParseURL(context.Background(), models.ParseRequest{URL: "ftp://example.com/pie"})
	assert.ErrorIs(t, err, validators.ErrInvalidURL)
}

func TestParserService_ParseURL_ExtractionFails(t *testing.T) {
	svc, extractor, fetcher := newTestParserService(t)

	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return("just a blog post", nil)
	extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.ParsedRecipe{}, adapter.ErrExtractionFailed)

	_, err := svc.ParseURL(context.Background(), models.ParseRequest{URL: "https://example.com/blog"})
	assert.ErrorIs(t, err, adapter.ErrExtractionFailed)
}
