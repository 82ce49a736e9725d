package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	ErrEmptyBody     = errors.New("request body is empty")
	ErrBodyTooLarge  = errors.New("request body is too large")
	ErrTrailingData  = errors.New("request body must contain a single JSON value")
	ErrMalformedJSON = errors.New("request body is not valid JSON")
)

// WriteJSON encodes data as the response body with the given status.
// HTML characters are not escaped so recipe text stays readable. When
// encoding fails nothing has been written yet and a 500 is sent instead.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	return w.Write(buf.Bytes())
}

// ReadJSON decodes exactly one JSON value from the request body into dst.
// Unknown fields are rejected. The returned error wraps one of
// ErrEmptyBody, ErrBodyTooLarge, ErrTrailingData or ErrMalformedJSON.
func ReadJSON(r *http.Request, dst any, maxBytes int64) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return classifyDecodeError(err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return ErrBodyTooLarge
		}
		return ErrTrailingData
	}
	return nil
}

func classifyDecodeError(err error) error {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return ErrEmptyBody
	case errors.As(err, &tooLarge):
		return ErrBodyTooLarge
	default:
		return fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
}
