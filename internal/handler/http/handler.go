package http

import (
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
)

// maxBodyBytes bounds JSON request bodies. Parse requests carry pasted
// recipe text, so the limit is generous.
const maxBodyBytes = 1 << 20

// IDGenerator produces request trace IDs.
type IDGenerator interface {
	Generate() string
}

type Handler struct {
	services *service.Services

	traceIDs     IDGenerator
	parseLimiter *rateLimiter
	locales      *utils.LocaleMatcher
	timeout      time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		traceIDs:     utils.NewUUIDGenerator(),
		parseLimiter: newRateLimiter(cfg.RateLimit.ParsePerMinute, cfg.RateLimit.ParseBurst),
		locales:      utils.NewLocaleMatcher(cfg.App.DefaultLocale, cfg.App.SupportedLocales),
		timeout:      cfg.Server.RequestTimeout,
		logger:       logger,
	}
}
