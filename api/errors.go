package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is a backend rejection carried back to the caller. Message is
// taken from the backend's error payload when present so the UI can show
// it verbatim.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend error (%d): %s", e.Status, e.Message)
}

// IsUnauthorized reports whether err is a 401 rejection.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// UserMessage extracts a human-readable message from err, falling back
// to the given default for unexpected failures (network, decode).
func UserMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// newError decodes the backend's error payload. The backend answers with
// {"message": "..."} on expected failures; older endpoints use "error".
func newError(status int, body []byte, fallback string) *Error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := fallback
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			msg = payload.Message
		} else if payload.Error != "" {
			msg = payload.Error
		}
	}
	return &Error{Status: status, Message: msg}
}
