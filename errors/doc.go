// Package errors provides the unified error type used across regkit.
//
// Errors carry a machine-readable code, a retryable hint, structured details,
// and an optional cause that participates in errors.Is/As unwrapping:
//
//	err := errors.TransportFailure("register", cause)
//	if errors.IsRetryable(err) { ... }
package errors
