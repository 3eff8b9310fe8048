package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified loader error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if a later load attempt may succeed.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Loader Error Constructors ---

// Configuration creates a new AppError for an unsupported provider identifier.
func Configuration(provider string) *AppError {
	return &AppError{
		Code: ErrCodeConfiguration, Message: fmt.Sprintf("unsupported provider %q", provider),
		Retryable: false,
		Details:   map[string]any{"provider": provider},
	}
}

// Validation creates a new AppError for invalid caller-supplied input.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeConfiguration, Message: message,
		Retryable: false,
	}
}

// ArtifactNotFound creates a new AppError for a missing engine binary.
func ArtifactNotFound(provider, path string) *AppError {
	return &AppError{
		Code: ErrCodeArtifactNotFound, Message: fmt.Sprintf("engine artifact for provider %q not found at %s", provider, path),
		Retryable: true,
		Details:   map[string]any{"provider": provider, "path": path},
	}
}

// ModuleLink creates a new AppError for a compile or instantiation failure.
func ModuleLink(provider string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeModuleLink, Message: fmt.Sprintf("failed to link engine module for provider %q", provider),
		Retryable: true, Cause: cause,
		Details: map[string]any{"provider": provider},
	}
}

// ModuleInit creates a new AppError for a failed start export.
func ModuleInit(provider string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeModuleInit, Message: fmt.Sprintf("engine initialization failed for provider %q", provider),
		Retryable: true, Cause: cause,
		Details: map[string]any{"provider": provider},
	}
}

// Internal creates a new AppError for a loader invariant violation.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "internal loader error",
		Retryable: false, Cause: cause,
	}
}

// --- Inspection Helpers ---

// AsAppError extracts an AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err carries the given error code.
func HasCode(err error, code ErrorCode) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// IsRetryable reports whether err is worth re-attempting. Errors outside
// the AppError taxonomy are treated as non-retryable.
func IsRetryable(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Retryable
	}
	return false
}
