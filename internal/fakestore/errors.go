package fakestore

import "fmt"

// Op identifies which client operation failed. The catalog views use it to
// pick an operation-specific message, so the four kinds stay distinct.
type Op string

const (
	OpList   Op = "list"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// APIError reports a failed round trip against the store API. Status is the
// HTTP status code when the server answered, zero when the transport failed
// before a response arrived.
type APIError struct {
	Op     Op
	Status int
	Err    error
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s products: server returned status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s products: %v", e.Op, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
