package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Availability errors (retryable).
const (
	// ErrCodeComponentUnavailable indicates a required collaborator is not wired.
	ErrCodeComponentUnavailable ErrorCode = "COMPONENT_UNAVAILABLE"
	// ErrCodeTransport indicates a registry call did not complete or returned
	// a non-success status.
	ErrCodeTransport ErrorCode = "TRANSPORT_FAILURE"
	// ErrCodeTimeout indicates the call timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Resource errors.
const (
	// ErrCodeNotFound indicates the requested service or record was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeAlreadyExists indicates the resource already exists.
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
)

// Validation errors.
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Internal errors.
const (
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTransport: true,
	ErrCodeTimeout:   true,
}

// IsRetryableCode reports whether the code marks a retryable condition.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
