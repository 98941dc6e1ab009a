package llm

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingCredential indicates no API key was supplied for the call.
	ErrMissingCredential = errors.New("llm credential missing")

	// ErrUnavailable indicates the remote service is unreachable.
	ErrUnavailable = errors.New("llm service unavailable")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrEmptyResponse indicates the service answered without any text.
	ErrEmptyResponse = errors.New("llm response was empty")

	// ErrInvalidOutput indicates the LLM response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)

// StatusError is a non-2xx answer from the remote service.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("llm service returned status %d: %s", e.StatusCode, e.Body)
}

// Client errors other than rate limiting will not improve on retry.
func (e *StatusError) retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}
