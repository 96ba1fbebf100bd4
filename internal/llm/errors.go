package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrDisabled is returned by DisabledClient.
	ErrDisabled = errors.New("text generation is disabled")
	// ErrNoModelSucceeded is returned when no model candidate was tried.
	ErrNoModelSucceeded = errors.New("no available model succeeded")
)

// ModelUnavailableError means the named model does not exist or the caller
// lacks access to it. The next candidate model should be tried.
type ModelUnavailableError struct {
	Model string
	Cause error
}

func (e *ModelUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model %s unavailable: %v", e.Model, e.Cause)
	}
	return fmt.Sprintf("model %s unavailable", e.Model)
}

func (e *ModelUnavailableError) Unwrap() error {
	return e.Cause
}

// IsModelUnavailable reports whether err is, or wraps, a ModelUnavailableError.
func IsModelUnavailable(err error) bool {
	var target *ModelUnavailableError
	return errors.As(err, &target)
}

// APIError is a non-success HTTP response from an OpenAI-compatible endpoint.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("API error (HTTP %d, %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("API error (HTTP %d): %s", e.StatusCode, e.Message)
}

// rateLimitError is returned on HTTP 429.
type rateLimitError struct {
	status int
}

func (e *rateLimitError) Error() string {
	return fmt.Sprintf("rate limited (HTTP %d)", e.status)
}

func isRateLimit(err error) bool {
	var target *rateLimitError
	return errors.As(err, &target)
}
