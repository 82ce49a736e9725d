package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBodyLen keeps whole HTML error pages out of error messages.
const maxErrorBodyLen = 512

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusGone:                ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError converts a non-2xx upstream response into one of the package
// sentinels. 5xx codes without their own sentinel become ErrBadGateway.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp.Body())
	if detail == "" {
		detail = http.StatusText(code)
	}

	if target, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", target, detail)
	}
	if code >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", ErrBadGateway, code, detail)
	}
	return fmt.Errorf("http %d: %s", code, detail)
}

// errorDetail pulls a message out of the common JSON error envelopes
// ({"error":"..."}, {"error":{"message":"..."}}, {"message":"..."}) and
// falls back to the truncated raw body.
func errorDetail(body []byte) string {
	var envelope struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if json.Unmarshal(body, &envelope) == nil {
		var text string
		var nested struct {
			Message string `json:"message"`
		}
		switch {
		case json.Unmarshal(envelope.Error, &text) == nil && text != "":
			return truncate(text)
		case json.Unmarshal(envelope.Error, &nested) == nil && nested.Message != "":
			return truncate(nested.Message)
		case envelope.Message != "":
			return truncate(envelope.Message)
		}
	}

	return truncate(strings.TrimSpace(string(body)))
}

func truncate(s string) string {
	if len(s) > maxErrorBodyLen {
		return s[:maxErrorBodyLen]
	}
	return s
}
