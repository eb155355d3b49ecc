package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrSessionExpired is returned when the refresh protocol cannot
// recover: the refresh token is missing, rejected or expired. The
// client has already cleared the stored session by the time callers
// see this error.
var ErrSessionExpired = errors.New("session expired, please sign in again")

// Error is a server-reported failure: a response that arrived but
// carried success=false or a 4xx/5xx status.
type Error struct {
	StatusCode int
	Message    string // envelope "message" field
	Reason     string // envelope "error" field
}

func (e *Error) Error() string {
	switch {
	case e.Reason != "":
		return e.Reason
	case e.Message != "":
		return e.Message
	default:
		return fmt.Sprintf("request failed with status %d (%s)", e.StatusCode, http.StatusText(e.StatusCode))
	}
}

// ErrorMessage normalizes any failure into a single human-readable
// string, in priority order: server error field, server message field,
// transport message, generic fallback.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		if apiErr.Reason != "" {
			return apiErr.Reason
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}

	if msg := err.Error(); msg != "" {
		return msg
	}

	return "An unknown error occurred"
}
