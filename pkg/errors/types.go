package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a structured error code
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigRequired ErrorCode = "CONFIG_REQUIRED"

	// Session errors
	ErrCodeSessionNotFound ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeDatabaseQuery   ErrorCode = "DATABASE_QUERY"

	// Validation errors
	ErrCodeValidation   ErrorCode = "VALIDATION"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Search outcome errors
	ErrCodeNetworkFailure   ErrorCode = "NETWORK_FAILURE"
	ErrCodeParseFailure     ErrorCode = "PARSE_FAILURE"
	ErrCodeRemoteError      ErrorCode = "REMOTE_ERROR"
	ErrCodeZeroResults      ErrorCode = "ZERO_RESULTS"
	ErrCodeSearchInProgress ErrorCode = "SEARCH_IN_PROGRESS"
	ErrCodeAPITimeout       ErrorCode = "API_TIMEOUT"
	ErrCodeAPIRateLimit     ErrorCode = "API_RATE_LIMIT"

	// Internal errors
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// AppError represents a structured application error
type AppError struct {
	Code     ErrorCode      `json:"code"`
	Message  string         `json:"message"`
	Details  map[string]any `json:"details,omitempty"`
	Cause    error          `json:"-"`
	HTTPCode int            `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// GetHTTPCode returns the appropriate HTTP status code
func (e *AppError) GetHTTPCode() int {
	if e.HTTPCode != 0 {
		return e.HTTPCode
	}
	return getDefaultHTTPCode(e.Code)
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// Wrap wraps an existing error with an AppError
func Wrap(cause error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Cause:    cause,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

func getDefaultHTTPCode(code ErrorCode) int {
	switch code {
	case ErrCodeSessionNotFound:
		return http.StatusNotFound
	case ErrCodeSearchInProgress:
		return http.StatusConflict
	case ErrCodeValidation, ErrCodeInvalidInput:
		return http.StatusBadRequest
	case ErrCodeAPIRateLimit:
		return http.StatusTooManyRequests
	case ErrCodeAPITimeout:
		return http.StatusGatewayTimeout
	case ErrCodeNetworkFailure, ErrCodeParseFailure, ErrCodeRemoteError:
		return http.StatusBadGateway
	case ErrCodeZeroResults:
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}

// Common error constructors

// ValidationError creates a validation error
func ValidationError(field string, reason string) *AppError {
	return New(ErrCodeValidation, fmt.Sprintf("validation failed for field '%s': %s", field, reason)).
		WithDetail("field", field).
		WithDetail("reason", reason)
}

// DatabaseError creates a database error
func DatabaseError(operation string, cause error) *AppError {
	return Wrap(cause, ErrCodeDatabaseQuery, fmt.Sprintf("database %s failed", operation)).
		WithDetail("operation", operation)
}

// NetworkError reports a failed round trip to an external service
func NetworkError(service string, cause error) *AppError {
	return Wrap(cause, ErrCodeNetworkFailure, fmt.Sprintf("request to '%s' failed", service)).
		WithDetail("service", service)
}

// ParseError reports a response body that could not be decoded
func ParseError(service string, cause error) *AppError {
	return Wrap(cause, ErrCodeParseFailure, fmt.Sprintf("could not decode response from '%s'", service)).
		WithDetail("service", service)
}

// RemoteError reports an error object returned in a response body
func RemoteError(service, remoteCode, remoteMessage string) *AppError {
	return New(ErrCodeRemoteError, fmt.Sprintf("'%s' returned an error: %s", service, remoteMessage)).
		WithDetail("service", service).
		WithDetail("remote_code", remoteCode)
}

// ConfigError creates a configuration error
func ConfigError(key string, reason string) *AppError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("configuration error for '%s': %s", key, reason)).
		WithDetail("key", key).
		WithDetail("reason", reason)
}

// ConfigRequiredError reports a setting that must be present
func ConfigRequiredError(key string) *AppError {
	return New(ErrCodeConfigRequired, fmt.Sprintf("configuration value '%s' is required", key)).
		WithDetail("key", key)
}

// RateLimitError creates a rate limit error
func RateLimitError(resource string, limit string) *AppError {
	return New(ErrCodeAPIRateLimit, fmt.Sprintf("rate limit exceeded for '%s': %s", resource, limit)).
		WithDetail("resource", resource).
		WithDetail("limit", limit)
}

// Is checks if an error is of a specific type
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// GetHTTPCode extracts the HTTP status code from an error
func GetHTTPCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.GetHTTPCode()
	}
	return http.StatusInternalServerError
}
