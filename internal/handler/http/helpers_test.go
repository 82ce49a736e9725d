package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/mock"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"go.uber.org/mock/gomock"
)

const (
	testUserID     = int64(7)
	validToken     = "valid-token"
	bearerValidTok = "Bearer " + validToken
)

type serviceMocks struct {
	auth        *mock.MockAuthService
	categories  *mock.MockCategoryService
	preferences *mock.MockPreferenceService
	recipes     *mock.MockRecipeService
	grocery     *mock.MockGroceryService
	parser      *mock.MockParserService
	appInfo     *mock.MockAppInfoService
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App:       config.App{DefaultLocale: "en", SupportedLocales: []string{"en", "de"}},
		RateLimit: config.RateLimit{ParsePerMinute: 60, ParseBurst: 2},
	}
}

// newTestHandler builds a Handler over gomock services. validToken is
// accepted as user testUserID; any other token is rejected.
func newTestHandler(t *testing.T) (*Handler, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		auth:        mock.NewMockAuthService(ctrl),
		categories:  mock.NewMockCategoryService(ctrl),
		preferences: mock.NewMockPreferenceService(ctrl),
		recipes:     mock.NewMockRecipeService(ctrl),
		grocery:     mock.NewMockGroceryService(ctrl),
		parser:      mock.NewMockParserService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}
	m.auth.EXPECT().ParseToken(gomock.Any(), validToken).Return(models.Token{UserID: testUserID}, nil).AnyTimes()
	m.auth.EXPECT().ParseToken(gomock.Any(), gomock.Not(validToken)).Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid).AnyTimes()

	services := &service.Services{
		AuthService:       m.auth,
		CategoryService:   m.categories,
		PreferenceService: m.preferences,
		RecipeService:     m.recipes,
		GroceryService:    m.grocery,
		ParserService:     m.parser,
		AppInfoService:    m.appInfo,
	}

	return NewHandler(services, testConfig(), logger.Nop()), m
}

// do sends a request through the full router. Requests are authenticated
// unless headers override Authorization.
func do(t *testing.T, router http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", bearerValidTok)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func ptr[T any](v T) *T { return &v }

var gomockAny = gomock.Any()

type stubIDs struct{ id string }

func (s stubIDs) Generate() string { return s.id }
