// Package errors provides the portal error taxonomy shared by the client and
// the server: credential failures, transport timeouts, network failures,
// non-2xx status errors, and the usual server-side kinds.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeTimeout            ErrorType = "timeout"
	ErrorTypeNetwork            ErrorType = "network"
	ErrorTypeHTTPStatus         ErrorType = "http_status"
	ErrorTypeUnknown            ErrorType = "unknown"

	ErrorTypeValidation   ErrorType = "validation_error"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeInternal     ErrorType = "internal_error"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// NewInvalidCredentialsError creates a credential rejection error. The message
// is user-facing and localized by the caller.
func NewInvalidCredentialsError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidCredentials,
		Message: message,
		Code:    http.StatusUnauthorized,
	}
}

// NewTimeoutError creates an error for a call that exceeded its deadline
func NewTimeoutError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeTimeout,
		Message: message,
		Code:    http.StatusGatewayTimeout,
	}
}

// NewNetworkError creates a connectivity error. The message should name the
// target address to aid diagnosis.
func NewNetworkError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeNetwork,
		Message: message,
		Code:    http.StatusBadGateway,
		Details: detail,
	}
}

// NewHTTPStatusError creates an error for a response with a non-2xx status
func NewHTTPStatusError(code int, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeHTTPStatus,
		Message: message,
		Code:    code,
	}
}

// NewUnknownError wraps an unexpected failure without classifying it further
func NewUnknownError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeUnknown,
		Message: message,
		Code:    http.StatusInternalServerError,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    http.StatusBadRequest,
		Details: detail,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
		Code:    http.StatusNotFound,
		Details: detail,
	}
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeUnauthorized,
		Message: message,
		Code:    http.StatusUnauthorized,
		Details: detail,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Code:    http.StatusInternalServerError,
		Details: detail,
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsInvalidCredentialsError checks if the error is a credential rejection
func IsInvalidCredentialsError(err error) bool {
	return isType(err, ErrorTypeInvalidCredentials)
}

// IsTimeoutError checks if the error is a timeout error
func IsTimeoutError(err error) bool {
	return isType(err, ErrorTypeTimeout)
}

// IsNetworkError checks if the error is a connectivity error
func IsNetworkError(err error) bool {
	return isType(err, ErrorTypeNetwork)
}

// IsHTTPStatusError checks if the error carries a non-2xx response status
func IsHTTPStatusError(err error) bool {
	return isType(err, ErrorTypeHTTPStatus)
}

// HTTPStatusCode returns the status code carried by an http_status error,
// or 0 when the error is of any other kind.
func HTTPStatusCode(err error) int {
	appErr := GetAppError(err)
	if appErr == nil || appErr.Type != ErrorTypeHTTPStatus {
		return 0
	}
	return appErr.Code
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}
