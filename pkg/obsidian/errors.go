package obsidian

import (
	"errors"
	"net/http"
	"strconv"
)

// ErrMissingAPIKey is returned by NewClient when no token is supplied.
var ErrMissingAPIKey = errors.New("obsidian: API key is required")

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	// Message is the response body, or the status text when the body is empty.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return "obsidian: API error (status=" + strconv.Itoa(e.StatusCode) + ")"
	}
	return e.Message
}

func newAPIError(status int, body []byte) *APIError {
	msg := string(body)
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{StatusCode: status, Message: msg}
}
