package types

import "errors"

// Domain errors shared across sources and the gateway
var (
	// ErrUnknownFramework signals a framework filter outside the recognized
	// set. Reported to the caller rather than swallowed: it indicates the
	// caller is misusing the filter, not that a source is unhealthy.
	ErrUnknownFramework = errors.New("unknown framework")

	// ErrNotFound signals a document path absent from a source.
	ErrNotFound = errors.New("document not found")

	// ErrDocsRootNotFound signals that no local docs directory could be
	// configured or discovered. This is the only startup-fatal condition.
	ErrDocsRootNotFound = errors.New("docs root not found")

	// Result validation errors
	ErrMissingDocument = errors.New("document reference is required")
	ErrInvalidScore    = errors.New("score must be > 0")
	ErrInvalidSource   = errors.New("source must be local or remote")
)
