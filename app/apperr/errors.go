// Package apperr defines the closed error taxonomy of the API. Services wrap
// these sentinels with context; controllers pattern-match with errors.Is to
// pick the HTTP status, so no consumer ever probes error shapes.
package apperr

import "errors"

var (
	// ErrInvalidCredentials covers any login mismatch. It deliberately does
	// not distinguish wrong email from wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation marks rejected input. The wrapping message carries the
	// joined field complaints.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an id that does not resolve to a row.
	ErrNotFound = errors.New("not found")

	// ErrUpstream marks a failed call to the external generation service.
	// Never retried.
	ErrUpstream = errors.New("upstream service error")

	// ErrStore marks a database fault. Surfaced as a generic 500; the cause
	// is logged server-side only.
	ErrStore = errors.New("store unavailable")
)
