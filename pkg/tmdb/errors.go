package tmdb

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned by every call when no API key is configured.
	ErrMissingAPIKey = errors.New("TMDB_API_KEY not set")

	// ErrRequestFailed wraps transport failures and timeouts.
	ErrRequestFailed = errors.New("tmdb request failed")

	// ErrUnavailable is returned while the circuit breaker is open.
	ErrUnavailable = errors.New("tmdb temporarily unavailable")
)

// APIError is a non-2xx response from the API. Status and Body are the
// upstream values, unmodified.
type APIError struct {
	Endpoint string
	Status   int
	Body     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tmdb %s: unexpected status %d", e.Endpoint, e.Status)
}
