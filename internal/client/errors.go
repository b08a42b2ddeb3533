package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the backend could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the backend rejected the session. Observing it
	// anywhere clears the stored token as a side effect.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx backend response, surfaced verbatim: Message is the
// general-purpose message from the response body, suitable for the error
// banner.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend error (%d): %s", e.Status, e.Message)
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Message    string `json:"message"`
	Err        string `json:"error,omitempty"`
	StatusCode int    `json:"statusCode,omitempty"`
}
