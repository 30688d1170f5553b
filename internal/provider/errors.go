// internal/provider/errors.go
package provider

import (
	"errors"
	"fmt"
	"net/http"
)

// Common provider errors
var (
	ErrDeepLinkNotFound = errors.New("deep_preload_link not found")
	ErrMissingAPIKey    = errors.New("search API key is not set")
	ErrEmptyTerm        = errors.New("search term is empty")
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	ErrCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrCodeNetworkError      ErrorCode = "NETWORK_ERROR"
	ErrCodeHTTPStatus        ErrorCode = "HTTP_STATUS"
	ErrCodeDecodeError       ErrorCode = "DECODE_ERROR"
	ErrCodeParseError        ErrorCode = "PARSE_ERROR"
	ErrCodeMissingCredential ErrorCode = "MISSING_CREDENTIAL"
	ErrCodeValidation        ErrorCode = "VALIDATION"
)

// ProviderError wraps errors with additional context
type ProviderError struct {
	Code       ErrorCode
	Message    string
	Underlying error
	Details    map[string]interface{}
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *ProviderError) Unwrap() error {
	return e.Underlying
}

// Is matches another ProviderError by code, or the wrapped error
func (e *ProviderError) Is(target error) bool {
	if t, ok := target.(*ProviderError); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.Underlying, target)
}

// NewProviderError creates a new ProviderError
func NewProviderError(code ErrorCode, message string, err error) *ProviderError {
	return &ProviderError{
		Code:       code,
		Message:    message,
		Underlying: err,
		Details:    make(map[string]interface{}),
	}
}

// WithDetail adds a detail to the error
func (e *ProviderError) WithDetail(key string, value interface{}) *ProviderError {
	e.Details[key] = value
	return e
}

// StatusError describes a non-2xx HTTP response
type StatusError struct {
	Code   int
	Status string
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s (%s)", e.Code, e.Status, e.URL)
}

// StatusCode returns the HTTP status code
func (e *StatusError) StatusCode() int {
	return e.Code
}

// CheckStatus returns a StatusError for any non-2xx response
func CheckStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return &StatusError{
		Code:   resp.StatusCode,
		Status: http.StatusText(resp.StatusCode),
		URL:    resp.Request.URL.String(),
	}
}
