// Package apperr defines the error kinds shared between the service and
// controller layers. Lower-level failures are reclassified into one of these
// before they cross into HTTP handlers; callers use errors.Is to pick the
// user-facing message.
package apperr

import "errors"

var (
	// ErrConfiguration means a required credential or setting is missing.
	// Fatal to the feature that needs it, not to the process.
	ErrConfiguration = errors.New("configuration error")

	// ErrUpstream means a remote call failed or returned a non-success status.
	ErrUpstream = errors.New("upstream error")

	// ErrParse means a remote reply did not match the expected shape.
	ErrParse = errors.New("parse error")

	// ErrValidation means the caller's input was malformed.
	ErrValidation = errors.New("validation error")

	// ErrStorage means a persisted blob could not be read or written.
	// Reads degrade to defaults instead of surfacing this.
	ErrStorage = errors.New("storage error")
)
