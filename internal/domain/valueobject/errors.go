package valueobject

import "errors"

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

// Error taxonomy for the request lifecycle. Callers classify failures with
// errors.Is; the wrapped message carries the specific cause.
var (
	// ErrValidationFailed marks malformed or missing input. Surfaced before
	// any mutation, never partially applied.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidTransition marks a status change that is not in the legal
	// transition table.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrPreconditionFailed marks a legal transition whose guard is unmet,
	// e.g. approving while a required document is not valid.
	ErrPreconditionFailed = errors.New("transition precondition not met")

	// ErrConflict marks an optimistic-concurrency version mismatch. The
	// caller is expected to re-read and retry.
	ErrConflict = errors.New("concurrent modification conflict")

	// ErrNotFound marks a missing request or sub-entity.
	ErrNotFound = errors.New("not found")

	// ErrExternalDependency marks a failed downstream call (document
	// validation, notification delivery). The request itself is untouched.
	ErrExternalDependency = errors.New("external dependency failure")
)
