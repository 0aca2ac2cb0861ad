package domain

import "errors"

// Sentinel errors for the generation pipeline. Callers classify failures
// with errors.Is; every error produced by this feature wraps one of these.
var (
	// ErrInvalidInput marks caller-supplied fields that are missing, empty,
	// or outside their declared bounds. Raised before any backend call.
	ErrInvalidInput = errors.New("invalid input")

	// ErrBackendUnavailable marks a transport-level failure reaching the
	// text-generation backend, or a response that carried no usable text.
	ErrBackendUnavailable = errors.New("generation backend unavailable")

	// ErrOutputSchemaViolation marks a structured response that does not
	// conform to the declared output schema. Distinct from
	// ErrBackendUnavailable: the backend did respond, but non-conformantly.
	ErrOutputSchemaViolation = errors.New("output does not conform to schema")

	// ErrTimeout marks an outbound call that exceeded its allotted duration.
	ErrTimeout = errors.New("generation backend timed out")
)
