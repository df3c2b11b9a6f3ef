// Package errors provides standardized error handling for the chatbot API.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeDatasetLoadFailed  ErrorCode = "DATASET_LOAD_FAILED"
	ErrCodeDatasetUnavailable ErrorCode = "DATASET_UNAVAILABLE"

	ErrCodeGenAIUnavailable ErrorCode = "GENAI_UNAVAILABLE"
	ErrCodeGenAITimeout     ErrorCode = "GENAI_TIMEOUT"
	ErrCodeGenAICallFailed  ErrorCode = "GENAI_CALL_FAILED"

	ErrCodeInvalidMessage ErrorCode = "INVALID_MESSAGE"
	ErrCodeCacheFailed    ErrorCode = "CACHE_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewDatasetLoadFailedError creates a fatal dataset load error. Startup
// aborts on this; it is never surfaced per-request.
func NewDatasetLoadFailedError(resource string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatasetLoadFailed,
		Message:   "Dataset resource could not be loaded",
		Details:   fmt.Sprintf("resource: %s, error: %s", resource, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewGenAIUnavailableError creates a non-retryable configuration error.
func NewGenAIUnavailableError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeGenAIUnavailable,
		Message:   "Generation service is not configured",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewGenAITimeoutError creates a retryable generation timeout error.
func NewGenAITimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeGenAITimeout,
		Message:   "Generation API timeout",
		Details:   "API call exceeded timeout threshold",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewGenAICallFailedError creates a retryable generation API error.
func NewGenAICallFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeGenAICallFailed,
		Message:   "Generation API error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidMessageError creates a non-retryable request validation error.
func NewInvalidMessageError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidMessage,
		Message:   "Invalid message",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// GetRetryCount returns the recommended retry count per error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeGenAICallFailed:
		return 3
	case ErrCodeGenAITimeout:
		return 1
	default:
		return 0
	}
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}
