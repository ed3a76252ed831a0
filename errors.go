package relay

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a tool schema or completion request failed validation.
	ErrValidation = errors.New("validation error")

	// ErrMalformedCall indicates an invocation envelope was found but its
	// payload could not be decoded. Callers treat this as "no call present"
	// after logging it.
	ErrMalformedCall = errors.New("malformed tool call")
)
