package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func resolvedFixture() []models.ResolvedCategory {
	return []models.ResolvedCategory{
		{Value: "all", Label: "Alle Rezepte", IsSystem: true},
		{Value: "dinner", Label: "Abendessen", IsSystem: true, IsVisible: ptr(true), Order: ptr(0), ID: ptr(int64(3))},
	}
}

// ── GET /api/categories ──────────────────────────────────────────────────────

func TestListCategories_Locale(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		headers    []string
		wantLocale string
	}{
		{name: "query parameter", target: "/api/categories?locale=de", wantLocale: "de"},
		{name: "query parameter with region", target: "/api/categories?locale=de-AT", wantLocale: "de"},
		{name: "accept-language", target: "/api/categories", headers: []string{"Accept-Language", "de-CH,de;q=0.9,en;q=0.5"}, wantLocale: "de"},
		{name: "query wins over header", target: "/api/categories?locale=en", headers: []string{"Accept-Language", "de"}, wantLocale: "en"},
		{name: "accept-language weights", target: "/api/categories", headers: []string{"Accept-Language", "en;q=0.1, de;q=0.9"}, wantLocale: "de"},
		{name: "unsupported query parameter", target: "/api/categories?locale=fr", wantLocale: "en"},
		{name: "server default", target: "/api/categories", wantLocale: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.categories.EXPECT().GetCategories(gomock.Any(), testUserID, tt.wantLocale).Return(resolvedFixture(), nil)

			rr := do(t, h.Init(), http.MethodGet, tt.target, "", tt.headers...)
			require.Equal(t, http.StatusOK, rr.Code)

			var got []models.ResolvedCategory
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, resolvedFixture(), got)
		})
	}
}

func TestListCategories_WireFormat(t *testing.T) {
	h, m := newTestHandler(t)
	m.categories.EXPECT().GetCategories(gomock.Any(), testUserID, "de").Return(resolvedFixture(), nil)

	rr := do(t, h.Init(), http.MethodGet, "/api/categories?locale=de", "")
	require.Equal(t, http.StatusOK, rr.Code)

	assert.JSONEq(t, `[
		{"value":"all","label":"Alle Rezepte","isSystem":true},
		{"value":"dinner","label":"Abendessen","isSystem":true,"isVisible":true,"order":0,"id":3}
	]`, rr.Body.String())
}

func TestListManagedCategories(t *testing.T) {
	h, m := newTestHandler(t)
	m.categories.EXPECT().GetManagedCategories(gomock.Any(), testUserID, "en").Return(resolvedFixture(), nil)

	rr := do(t, h.Init(), http.MethodGet, "/api/categories/manage", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

// ── POST /api/categories ─────────────────────────────────────────────────────

func TestCreateCategory(t *testing.T) {
	h, m := newTestHandler(t)

	m.categories.EXPECT().
		CreateCategory(gomock.Any(), models.CategoryCreateRequest{UserID: testUserID, Name: "Suppen", Locale: "de"}).
		Return(models.Category{ID: 11, UserID: ptr(testUserID), Name: "suppen", Translated: models.Translations{"de": "Suppen"}}, nil)

	rr := do(t, h.Init(), http.MethodPost, "/api/categories", `{"name":"Suppen"}`, "Accept-Language", "de")
	require.Equal(t, http.StatusCreated, rr.Code)

	var got models.Category
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, int64(11), got.ID)
	assert.Equal(t, "suppen", got.Name)
}

func TestCreateCategory_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"duplicate", store.ErrCategoryAlreadyExists, http.StatusConflict},
		{"invalid", service.ErrInvalidDataProvided, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.categories.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).Return(models.Category{}, tt.err)

			rr := do(t, h.Init(), http.MethodPost, "/api/categories", `{"name":"x"}`)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestCreateCategory_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := do(t, h.Init(), http.MethodPost, "/api/categories", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, h.Init(), http.MethodPost, "/api/categories", `{"title":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code, "unknown fields are rejected")
}

// ── DELETE /api/categories/{id} ──────────────────────────────────────────────

func TestDeleteCategory(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		err        error
		callsSvc   bool
		wantStatus int
	}{
		{name: "deleted", path: "/api/categories/10", callsSvc: true, wantStatus: http.StatusNoContent},
		{name: "system category", path: "/api/categories/1", err: service.ErrSystemCategoryImmutable, callsSvc: true, wantStatus: http.StatusForbidden},
		{name: "missing", path: "/api/categories/99", err: store.ErrCategoryNotFound, callsSvc: true, wantStatus: http.StatusNotFound},
		{name: "non-numeric id", path: "/api/categories/soups", wantStatus: http.StatusBadRequest},
		{name: "zero id", path: "/api/categories/0", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.callsSvc {
				m.categories.EXPECT().DeleteCategory(gomock.Any(), testUserID, gomock.Any()).Return(tt.err)
			}

			rr := do(t, h.Init(), http.MethodDelete, tt.path, "")
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// ── preferences ──────────────────────────────────────────────────────────────

func TestSavePreferences(t *testing.T) {
	h, m := newTestHandler(t)

	m.preferences.EXPECT().SavePreferences(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, _ int64, prefs ...models.UserPreference) error {
			require.Len(t, prefs, 2)
			assert.Equal(t, int64(3), *prefs[0].CategoryID)
			assert.Equal(t, "soups", *prefs[1].CategoryValue)
			assert.False(t, prefs[1].IsVisible)
			return nil
		},
	)

	body := `[
		{"category_id":3,"is_visible":true,"display_order":0},
		{"category_value":"soups","is_visible":false,"display_order":1}
	]`
	rr := do(t, h.Init(), http.MethodPut, "/api/preferences", body)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestSavePreferences_UnknownCategory(t *testing.T) {
	h, m := newTestHandler(t)
	m.preferences.EXPECT().SavePreferences(gomock.Any(), testUserID, gomock.Any()).Return(service.ErrUnknownCategory)

	rr := do(t, h.Init(), http.MethodPut, "/api/preferences", `[{"category_value":"brunch"}]`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestReorderCategories(t *testing.T) {
	h, m := newTestHandler(t)
	m.preferences.EXPECT().ReorderCategories(gomock.Any(), testUserID, []string{"soups", "dinner"}).Return(nil)

	rr := do(t, h.Init(), http.MethodPut, "/api/preferences/order", `{"categories":["soups","dinner"]}`)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestSetVisibility(t *testing.T) {
	h, m := newTestHandler(t)
	m.preferences.EXPECT().SetVisibility(gomock.Any(), testUserID, int64(3), false).Return(nil)
	m.preferences.EXPECT().SetVisibility(gomock.Any(), testUserID, int64(99), true).Return(store.ErrCategoryNotFound)

	router := h.Init()

	rr := do(t, router, http.MethodPatch, "/api/preferences/3/visibility", `{"is_visible":false}`)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = do(t, router, http.MethodPatch, "/api/preferences/99/visibility", `{"is_visible":true}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
