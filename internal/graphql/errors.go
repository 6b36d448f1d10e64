package graphql

import (
	"errors"
	"fmt"
)

var (
	// ErrServiceUnavailable means no response was obtained from the API at
	// all (connection refused, timeout, DNS failure).
	ErrServiceUnavailable = errors.New("api unavailable")
	// ErrInvalidToken means the API rejected the bearer token. The caller
	// should drop the stored token and retry as anonymous.
	ErrInvalidToken = errors.New("invalid token")
	// ErrNotFound means a node lookup resolved to null.
	ErrNotFound = errors.New("not found")
	// ErrMalformedID means a global id or cursor did not decode.
	ErrMalformedID = errors.New("malformed id")
)

// Error carries the raw error list of a GraphQL response that executed but
// failed at the field level. The list is kept verbatim so an outer layer can
// log it.
type Error struct {
	Errors []any
}

func (e *Error) Error() string {
	return fmt.Sprintf("graphql: %v", e.Errors)
}
