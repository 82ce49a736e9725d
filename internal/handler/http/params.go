package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

// authUserID reads the authenticated user. It writes a 401 and returns false when
// the auth middleware did not run.
func authUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok || id <= 0 {
		writeError(w, r, http.StatusUnauthorized, ErrNoUserInContext.Error())
		return 0, false
	}
	return id, true
}

// pathID parses the positive int64 URL parameter name. It writes a 400 and
// returns false otherwise.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("%s: %q", ErrInvalidPathParam, raw))
		return 0, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter; absent means 0.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidQueryParam, name, raw)
	}
	return v, nil
}

func (h *Handler) locale(r *http.Request) string {
	return h.locales.FromRequest(r)
}

// readJSON decodes the request body into dst and writes a 400 on failure.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := utils.ReadJSON(r, dst, maxBodyBytes); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("invalid JSON was passed")
		if errors.Is(err, utils.ErrBodyTooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, err.Error())
			return false
		}
		writeError(w, r, http.StatusBadRequest, "invalid JSON was passed")
		return false
	}
	return true
}
