package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Resolution errors (permanent)
const (
	// ErrCodeConfiguration indicates an unknown or unsupported provider
	// identifier. Raised before any I/O is performed.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION"
)

// Load errors (retryable — the provider stays non-ready and a later
// call may attempt the load again)
const (
	// ErrCodeArtifactNotFound indicates the engine binary is missing on disk.
	ErrCodeArtifactNotFound ErrorCode = "ARTIFACT_NOT_FOUND"
	// ErrCodeModuleLink indicates the binary failed to compile or its
	// imports/exports did not match the glue layer at instantiation time.
	ErrCodeModuleLink ErrorCode = "MODULE_LINK"
	// ErrCodeModuleInit indicates the engine's start export failed.
	ErrCodeModuleInit ErrorCode = "MODULE_INIT"
)

// Internal errors
const (
	// ErrCodeInternal indicates a loader invariant was violated.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeArtifactNotFound: true,
	ErrCodeModuleLink:       true,
	ErrCodeModuleInit:       true,
	ErrCodeConfiguration:    false,
	ErrCodeInternal:         false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
