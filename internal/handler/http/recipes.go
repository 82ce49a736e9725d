package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// listRecipes answers with one page of recipes.
//
// Query parameters: category (canonical name, "all" or empty for every
// category), q (title search), page and page_size.
func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(w, r)
	if !ok {
		return
	}

	page, err := queryInt(r, "page")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	pageSize, err := queryInt(r, "page_size")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	query := r.URL.Query()
	result, err := h.services.RecipeService.ListRecipes(r.Context(), models.RecipeFilter{
		UserID:   userID,
		Category: query.Get("category"),
		Search:   strings.TrimSpace(query.Get("q")),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		writeServiceError(w, r, err, "listing recipes failed")
		return
	}

	writeJSON(w, r, result, http.StatusOK)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(w, r)
	if !ok {
		return
	}
	recipeID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	recipe, err := h.services.RecipeService.GetRecipe(r.Context(), userID, recipeID)
	if err != nil {
		writeServiceError(w, r, err, "recipe lookup failed")
		return
	}

	writeJSON(w, r, recipe, http.StatusOK)
}

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(w, r)
	if !ok {
		return
	}

	var recipe models.Recipe
	if !readJSON(w, r, &recipe) {
		return
	}
	recipe.ID = 0
	recipe.UserID = userID

	created, err := h.services.RecipeService.CreateRecipe(r.Context(), recipe)
	if err != nil {
		writeServiceError(w, r, err, "recipe creation failed")
		return
	}

	writeJSON(w, r, created, http.StatusCreated)
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(w, r)
	if !ok {
		return
	}
	recipeID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var recipe models.Recipe
	if !readJSON(w, r, &recipe) {
		return
	}
	recipe.ID = recipeID
	recipe.UserID = userID

	updated, err := h.services.RecipeService.UpdateRecipe(r.Context(), recipe)
	if err != nil {
		writeServiceError(w, r, err, "recipe update failed")
		return
	}

	writeJSON(w, r, updated, http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(w, r)
	if !ok {
		return
	}
	recipeID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.services.RecipeService.DeleteRecipe(r.Context(), userID, recipeID); err != nil {
		writeServiceError(w, r, err, "recipe deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
