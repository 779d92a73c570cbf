package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport wraps network failures and timeouts
	ErrTransport = errors.New("transport failure")

	// ErrMalformed marks a payload that could not be shaped into the expected value
	ErrMalformed = errors.New("malformed payload")
)

// StatusError is returned for non-2xx responses
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
}

// FailError is returned when the backend answers with a FAIL envelope,
// which it does even with HTTP 200
type FailError struct {
	StatusCode int
	Message    string
}

func (e *FailError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend reported failure (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("backend reported failure (status %d): %s", e.StatusCode, e.Message)
}

// IsRetryable reports whether a failed call may succeed when repeated.
// Transport failures and 5xx responses qualify.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTransport) {
		return true
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode >= http.StatusInternalServerError
	}
	return false
}
