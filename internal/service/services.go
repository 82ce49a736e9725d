package service

import (
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type Services struct {
	AuthService       AuthService
	CategoryService   CategoryService
	PreferenceService PreferenceService
	RecipeService     RecipeService
	GroceryService    GroceryService
	ParserService     ParserService
	AppInfoService    AppInfoService
}

// Adapters groups the external clients services depend on.
type Adapters struct {
	Extractor  adapter.RecipeExtractor
	Fetcher    adapter.PageFetcher
	Translator adapter.Translator
}

func NewServices(storages *store.Storages, adapters Adapters, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg.App, logger),
		CategoryService:   NewCategoryService(storages, adapters.Translator, cfg.App, logger),
		PreferenceService: NewPreferenceService(storages, logger),
		RecipeService:     NewRecipeValidationService().Wrap(NewRecipeService(storages, logger)),
		GroceryService:    NewGroceryValidationService().Wrap(NewGroceryService(storages, logger)),
		ParserService:     NewParserService(adapters.Extractor, adapters.Fetcher, cfg.App, logger),
		AppInfoService:    appInfoService,
	}, nil
}
