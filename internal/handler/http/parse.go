package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// parseText extracts a recipe from pasted text. Nothing is stored; the client
// reviews the result and saves it through POST /api/recipes.
func (h *Handler) parseText(w http.ResponseWriter, r *http.Request) {
	h.parse(w, r, h.services.ParserService.ParseText)
}

// parseURL downloads a recipe page and extracts a recipe from it.
func (h *Handler) parseURL(w http.ResponseWriter, r *http.Request) {
	h.parse(w, r, h.services.ParserService.ParseURL)
}

func (h *Handler) parse(w http.ResponseWriter, r *http.Request, parse func(context.Context, models.ParseRequest) (models.ParsedRecipe, error)) {
	if _, ok := authUserID(w, r); !ok {
		return
	}

	var request models.ParseRequest
	if !readJSON(w, r, &request) {
		return
	}
	if request.Locale == "" {
		request.Locale = h.locale(r)
	}

	parsed, err := parse(r.Context(), request)
	if err != nil {
		writeServiceError(w, r, err, "recipe parsing failed")
		return
	}

	writeJSON(w, r, parsed, http.StatusOK)
}
