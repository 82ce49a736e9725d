package adapter

import "errors"

// Transport errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	ErrInvalidBaseURL     = errors.New("invalid base url")
	ErrInvalidPageURL     = errors.New("invalid page url")
	ErrEmptyPage          = errors.New("page has no readable text")
	ErrExtractionFailed   = errors.New("recipe extraction failed")
	ErrTranslationFailed  = errors.New("translation failed")
	ErrTranslatorDisabled = errors.New("translator is not configured")
)
