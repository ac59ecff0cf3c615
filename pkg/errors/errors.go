package errors

import (
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeLoad            ErrorType = "load_error"
	ErrorTypeExtraction      ErrorType = "extraction_error"
	ErrorTypeNetwork         ErrorType = "network_error"
	ErrorTypeServer          ErrorType = "server_error"
	ErrorTypeInvalidResponse ErrorType = "invalid_response"
	ErrorTypeValidation      ErrorType = "validation_error"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewLoadError reports a document that could not be opened (corrupt bytes,
// unsupported container format).
func NewLoadError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeLoad,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Cause:      cause,
	}
}

// NewExtractionError reports a document that opened fine but yielded no
// usable text (e.g. a scanned page with no text layer).
func NewExtractionError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeExtraction,
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
		Cause:      cause,
	}
}

// NewNetworkError reports a transport failure reaching the generation service.
func NewNetworkError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeNetwork,
		Message:    message,
		StatusCode: http.StatusServiceUnavailable,
		Cause:      cause,
	}
}

// NewServerError reports a non-2xx response from the generation service.
func NewServerError(message string, upstreamStatus int) *AppError {
	return &AppError{
		Type:       ErrorTypeServer,
		Message:    message,
		Details:    fmt.Sprintf("upstream status %d", upstreamStatus),
		StatusCode: http.StatusBadGateway,
	}
}

// NewInvalidResponseError reports a success response whose body could not be
// decoded.
func NewInvalidResponseError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInvalidResponse,
		Message:    message,
		StatusCode: http.StatusBadGateway,
		Cause:      cause,
	}
}

// NewValidationError reports a well-formed payload that is semantically
// invalid (empty card list, out-of-range answer index).
func NewValidationError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		Details:    detail,
		StatusCode: http.StatusBadGateway,
	}
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	if appErr, ok := err.(*AppError); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
