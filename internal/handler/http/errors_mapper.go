package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// errorStatuses is checked in order; the first match wins. Validation
// errors come first because they wrap more specific causes.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrUnknownCategory, http.StatusBadRequest},
	{service.ErrRecipeHasNoIngredients, http.StatusUnprocessableEntity},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrSystemCategoryImmutable, http.StatusForbidden},

	{store.ErrLoginAlreadyExists, http.StatusConflict},
	{store.ErrCategoryAlreadyExists, http.StatusConflict},
	{store.ErrNoUserWasFound, http.StatusUnauthorized},
	{store.ErrCategoryNotFound, http.StatusNotFound},
	{store.ErrRecipeNotFound, http.StatusNotFound},
	{store.ErrGroceryItemNotFound, http.StatusNotFound},

	{adapter.ErrInvalidPageURL, http.StatusBadRequest},
	{adapter.ErrEmptyPage, http.StatusUnprocessableEntity},
	{adapter.ErrExtractionFailed, http.StatusUnprocessableEntity},
	{adapter.ErrTooManyRequests, http.StatusServiceUnavailable},
	{adapter.ErrBadRequest, http.StatusBadGateway},
	{adapter.ErrUnauthorized, http.StatusBadGateway},
	{adapter.ErrForbidden, http.StatusBadGateway},
	{adapter.ErrNotFound, http.StatusBadGateway},
	{adapter.ErrConflict, http.StatusBadGateway},
	{adapter.ErrBadGateway, http.StatusBadGateway},
	{adapter.ErrInternalServerError, http.StatusBadGateway},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with its mapped status. Messages of
// 5xx responses are replaced by the status text.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
		writeError(w, r, status, http.StatusText(status))
		return
	}

	log.Warn().Err(err).Int("status", status).Msg(msg)
	writeError(w, r, status, err.Error())
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if _, err := utils.WriteJSON(w, models.ErrorResponse{Error: message}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error response was not written")
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("response was not written")
	}
}
