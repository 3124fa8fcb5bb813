// Package storeerr holds the sentinel errors shared by the store layer.
//
// Not-found is deliberately absent: point lookups report a missing
// document as a nil result, never as an error. Underlying driver
// failures are passed through to callers unwrapped.
package storeerr

import "errors"

var (
	// ErrNotSupported is returned by operations that are intentionally
	// unimplemented. They fail loudly so callers can tell "this feature
	// doesn't exist" apart from "this input was bad".
	ErrNotSupported = errors.New("operation not supported")

	// ErrDisposed is returned by any call made after Close.
	ErrDisposed = errors.New("store has been closed")

	// ErrNilUser is returned when a user argument is nil.
	ErrNilUser = errors.New("user is required")

	// ErrNilEntity is returned when an entity argument is nil.
	ErrNilEntity = errors.New("entity is required")

	// ErrNoID is returned when an entity does not expose a document id.
	ErrNoID = errors.New("entity does not carry a document id")

	// ErrInvalidPage is returned for negative page index or size.
	ErrInvalidPage = errors.New("page index and page size must be non-negative")

	// ErrNoLockoutDate is returned when a lockout end date is read from
	// a user that never had one set.
	ErrNoLockoutDate = errors.New("lockout end date has not been set")
)
