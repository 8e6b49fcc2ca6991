package apperr

import "fmt"

// ValidationError covers bad client input: malformed payloads, missing or
// non-numeric query parameters, unknown class levels.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Validation builds a ValidationError from a format string.
func Validation(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError marks a referenced document that does not exist.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// NotFound builds a NotFoundError for the given resource and lookup key.
func NotFound(resource, key string) error {
	return &NotFoundError{Resource: resource, Key: key}
}

// StorageError wraps a failed read or write against the document store.
// Whether it aborts the request or is logged and swallowed is decided at the
// call site, not here.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Storage wraps err as a StorageError for operation op.
func Storage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
