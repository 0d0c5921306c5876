// Package errors defines stable error codes for mmscan failure modes.
// The scan core itself has no fallible paths; these codes cover the
// surrounding plumbing (request decoding, rule overlays, serving).
package errors

import (
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// RequestInvalid indicates a malformed request body or parameter
	RequestInvalid ErrorCode = "REQUEST_INVALID"
	// UnitTooLarge indicates a unit's code exceeds the configured size limit
	UnitTooLarge ErrorCode = "UNIT_TOO_LARGE"
	// RulesInvalid indicates a rule overlay file could not be loaded
	RulesInvalid ErrorCode = "RULES_INVALID"
	// Unauthorized indicates a missing or invalid API token
	Unauthorized ErrorCode = "UNAUTHORIZED"
	// InternalError indicates an unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// ScanError represents an mmscan error with a stable code and message
type ScanError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	cause   error       // Underlying error (not exported to JSON)
}

// New creates a new ScanError
func New(code ErrorCode, message string, cause error) *ScanError {
	return &ScanError{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *ScanError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *ScanError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *ScanError) WithDetails(details interface{}) *ScanError {
	e.Details = details
	return e
}
