package feedhttp

import (
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the feed API.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("feed api %d %s: %s", e.StatusCode, e.Code, e.Message)
	}

	return fmt.Sprintf("feed api %d: %s", e.StatusCode, e.Message)
}

// Temporary reports whether the call may be retried: rate limiting and
// server-side failures are transient, everything else is a logical error
// that must surface to the caller.
func (e *APIError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// TransportError is a network-level failure before any response arrived.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Temporary() bool { return true }
