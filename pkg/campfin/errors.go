package campfin

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents a failed call to the campaign finance API. The API
// reports failures as a list of message strings in the response envelope;
// they are joined with "; " for the error text.
type APIError struct {
	StatusCode int      `json:"status_code" yaml:"status_code"`
	Messages   []string `json:"messages"    yaml:"messages"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("API error (status %d)", e.StatusCode)
	}

	return strings.Join(e.Messages, "; ")
}

// NotFoundError is the error kind for 404 responses.
type NotFoundError struct {
	APIError
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrAPIKeyRequired       = errors.New("API key is required")
	ErrEmptyResults         = errors.New("response contains no results")
	ErrCacheDisabled        = errors.New("cache disabled")
	ErrCacheKeyNotFound     = errors.New("key not found")
	ErrCacheEntryExpired    = errors.New("cache entry expired")
	ErrUnsupportedCacheType = errors.New("unsupported cache type")
	ErrNATSConfigRequired   = errors.New("NATS configuration required for NATS cache")
	ErrKeyNotFound          = errors.New("key not found in any cache")
	ErrChamberRequired      = errors.New("chamber is required when a district is given")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	notFound := &NotFoundError{}

	return errors.As(err, &notFound)
}

// IsAPIError checks if the error originated from an API failure response of
// any kind, including not found.
func IsAPIError(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return true
	}

	return IsNotFound(err)
}

// ErrorFromResponse builds the typed error for a non-success status code
// from the raw response body. A 404 produces a *NotFoundError, anything else
// a generic *APIError. A body whose errors field is absent or undecodable
// yields an error with no messages rather than masking the status code.
func ErrorFromResponse(statusCode int, body []byte) error {
	var envelope struct {
		Errors []string `json:"errors"`
	}

	_ = json.Unmarshal(body, &envelope)

	apiErr := APIError{
		StatusCode: statusCode,
		Messages:   envelope.Errors,
	}

	if statusCode == http.StatusNotFound {
		return &NotFoundError{APIError: apiErr}
	}

	return &apiErr
}
