package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

type clearCheckedResponse struct {
	Removed int64 `json:"removed"`
}

func (h *Handler) listGroceryItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(w, r)
	if !ok {
		return
	}

	items, err := h.services.GroceryService.ListItems(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "listing grocery items failed")
		return
	}

	writeJSON(w, r, items, http.StatusOK)
}

// addGroceryItems accepts a JSON array of items.
func (h *Handler) addGroceryItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(w, r)
	if !ok {
		return
	}

	var items []models.GroceryItem
	if !readJSON(w, r, &items) {
		return
	}

	added, err := h.services.GroceryService.AddItems(r.Context(), userID, items...)
	if err != nil {
		writeServiceError(w, r, err, "adding grocery items failed")
		return
	}

	writeJSON(w, r, added, http.StatusCreated)
}

func (h *Handler) addGroceryItemsFromRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(w, r)
	if !ok {
		return
	}
	recipeID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	added, err := h.services.GroceryService.AddFromRecipe(r.Context(), userID, recipeID)
	if err != nil {
		writeServiceError(w, r, err, "adding recipe ingredients failed")
		return
	}

	writeJSON(w, r, added, http.StatusCreated)
}

func (h *Handler) updateGroceryItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(w, r)
	if !ok {
		return
	}
	itemID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var update models.GroceryItemUpdate
	if !readJSON(w, r, &update) {
		return
	}
	update.ID = itemID
	update.UserID = userID

	item, err := h.services.GroceryService.UpdateItem(r.Context(), update)
	if err != nil {
		writeServiceError(w, r, err, "grocery item update failed")
		return
	}

	writeJSON(w, r, item, http.StatusOK)
}

func (h *Handler) deleteGroceryItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(w, r)
	if !ok {
		return
	}
	itemID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.services.GroceryService.DeleteItem(r.Context(), userID, itemID); err != nil {
		writeServiceError(w, r, err, "grocery item deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearCheckedGroceryItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(w, r)
	if !ok {
		return
	}

	removed, err := h.services.GroceryService.ClearChecked(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "clearing checked grocery items failed")
		return
	}

	writeJSON(w, r, clearCheckedResponse{Removed: removed}, http.StatusOK)
}
