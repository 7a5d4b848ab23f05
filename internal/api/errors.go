package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure cases the view layer branches on.
var (
	// ErrUnauthorized is returned when the catalog API answers 401. The
	// product list redirects to the login screen on this error.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is the base error for 404 responses. Use errors.Is to
	// test for it; the wrapped variants carry the resource name.
	ErrNotFound = errors.New("not found")

	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
	ErrBrandNotFound   = fmt.Errorf("brand %w", ErrNotFound)

	// ErrInvalidCredentials is returned when the login endpoint answers
	// with any non-success status.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// RequestError is a request that failed with a non-success status outside the
// special-cased ones. Message is the server-provided message when the
// response body carried one, or a generic fallback otherwise.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string { return e.Message }
