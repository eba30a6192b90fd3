package coerce

import "errors"

// Failure kinds. Every error returned by [As] wraps exactly one of these,
// so callers can branch with errors.Is while treating any non-nil error as
// "no result".
var (
	// ErrNoCandidate means no balanced or repairable JSON-like span, and no
	// usable scalar token, exists in the text at all.
	ErrNoCandidate = errors.New("no candidate found")

	// ErrMalformed means a delimiter-balanced span exists but could not be
	// made valid by the repair heuristics.
	ErrMalformed = errors.New("candidate malformed after repair")

	// ErrShapeMismatch means a valid JSON value was found but it does not
	// fit the requested target shape.
	ErrShapeMismatch = errors.New("candidate does not match target shape")

	// ErrDeserialize means the JSON deserializer rejected the candidate for
	// a reason other than shape, such as a bad escape or number overflow.
	ErrDeserialize = errors.New("candidate failed to deserialize")
)
