// Package errors provides unified error handling for the engine loader.
// It implements structured error types with machine-readable codes and
// retryable detection, so callers can tell a permanent configuration
// mistake apart from a load failure that is worth re-attempting.
package errors
