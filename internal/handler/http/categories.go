package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// listCategories answers with the visible categories in display order,
// headed by the "all" entry and labelled for the request locale.
func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(w, r)
	if !ok {
		return
	}

	categories, err := h.services.CategoryService.GetCategories(r.Context(), userID, h.locale(r))
	if err != nil {
		writeServiceError(w, r, err, "listing categories failed")
		return
	}

	writeJSON(w, r, categories, http.StatusOK)
}

// listManagedCategories is listCategories including hidden categories.
func (h *Handler) listManagedCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(w, r)
	if !ok {
		return
	}

	categories, err := h.services.CategoryService.GetManagedCategories(r.Context(), userID, h.locale(r))
	if err != nil {
		writeServiceError(w, r, err, "listing managed categories failed")
		return
	}

	writeJSON(w, r, categories, http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(w, r)
	if !ok {
		return
	}

	var request models.CategoryCreateRequest
	if !readJSON(w, r, &request) {
		return
	}
	request.UserID = userID
	if request.Locale == "" {
		request.Locale = h.locale(r)
	}

	category, err := h.services.CategoryService.CreateCategory(r.Context(), request)
	if err != nil {
		writeServiceError(w, r, err, "category creation failed")
		return
	}

	writeJSON(w, r, category, http.StatusCreated)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(w, r)
	if !ok {
		return
	}
	categoryID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.services.CategoryService.DeleteCategory(r.Context(), userID, categoryID); err != nil {
		writeServiceError(w, r, err, "category deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) savePreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(w, r)
	if !ok {
		return
	}

	var preferences []models.UserPreference
	if !readJSON(w, r, &preferences) {
		return
	}

	if err := h.services.PreferenceService.SavePreferences(r.Context(), userID, preferences...); err != nil {
		writeServiceError(w, r, err, "saving preferences failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) reorderCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(w, r)
	if !ok {
		return
	}

	var request models.ReorderRequest
	if !readJSON(w, r, &request) {
		return
	}

	if err := h.services.PreferenceService.ReorderCategories(r.Context(), userID, request.Categories); err != nil {
		writeServiceError(w, r, err, "reordering categories failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setVisibility(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(w, r)
	if !ok {
		return
	}
	categoryID, ok := pathID(w, r, "categoryID")
	if !ok {
		return
	}

	var request models.VisibilityRequest
	if !readJSON(w, r, &request) {
		return
	}

	if err := h.services.PreferenceService.SetVisibility(r.Context(), userID, categoryID, request.IsVisible); err != nil {
		writeServiceError(w, r, err, "changing category visibility failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
