// Package apperr defines the error taxonomy shared by services and handlers.
// Services return these sentinels (possibly wrapped); handlers map them to
// HTTP status codes with errors.Is. Anything else is treated as internal.
package apperr

import "errors"

var (
	// ErrUnauthorized indicates a missing, malformed, or expired credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden indicates an authenticated caller acting on a resource it does not own.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput indicates a payload missing required fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound indicates no document matched the request.
	ErrNotFound = errors.New("not found")
)
