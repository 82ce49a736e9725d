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

func TestListGroceryItems(t *testing.T) {
	h, m := newTestHandler(t)
	m.grocery.EXPECT().ListItems(gomock.Any(), testUserID).Return([]models.GroceryItem{}, nil)

	rr := do(t, h.Init(), http.MethodGet, "/api/grocery", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestAddGroceryItems(t *testing.T) {
	h, m := newTestHandler(t)

	m.grocery.EXPECT().AddItems(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, _ int64, items ...models.GroceryItem) ([]models.GroceryItem, error) {
			assert.Equal(t, "milk", items[0].Name)
			assert.Equal(t, "bread", items[1].Name)
			return items, nil
		},
	)

	rr := do(t, h.Init(), http.MethodPost, "/api/grocery", `[{"name":"milk","quantity":1,"unit":"l"},{"name":"bread"}]`)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestAddGroceryItemsFromRecipe(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"added", nil, http.StatusCreated},
		{"recipe missing", store.ErrRecipeNotFound, http.StatusNotFound},
		{"recipe without ingredients", service.ErrRecipeHasNoIngredients, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.grocery.EXPECT().AddFromRecipe(gomock.Any(), testUserID, int64(4)).Return([]models.GroceryItem{{ID: 1}}, tt.err)

			rr := do(t, h.Init(), http.MethodPost, "/api/grocery/from-recipe/4", "")
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestUpdateGroceryItem(t *testing.T) {
	h, m := newTestHandler(t)

	m.grocery.EXPECT().UpdateItem(gomock.Any(), models.GroceryItemUpdate{ID: 3, UserID: testUserID, Checked: ptr(true)}).
		Return(models.GroceryItem{ID: 3, Name: "milk", Checked: true}, nil)

	rr := do(t, h.Init(), http.MethodPatch, "/api/grocery/3", `{"checked":true}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var got models.GroceryItem
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.True(t, got.Checked)
}

func TestDeleteGroceryItem(t *testing.T) {
	h, m := newTestHandler(t)
	m.grocery.EXPECT().DeleteItem(gomock.Any(), testUserID, int64(3)).Return(store.ErrGroceryItemNotFound)

	rr := do(t, h.Init(), http.MethodDelete, "/api/grocery/3", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestClearCheckedGroceryItems(t *testing.T) {
	h, m := newTestHandler(t)
	m.grocery.EXPECT().ClearChecked(gomock.Any(), testUserID).Return(int64(3), nil)

	rr := do(t, h.Init(), http.MethodDelete, "/api/grocery/checked", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"removed":3}`, rr.Body.String())
}
