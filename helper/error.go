package helper

import "fmt"

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Operation string
	Err       error
}

// NewError creates a new operation-scoped error.
func NewError(operation string, err error) *Error {
	return &Error{
		Operation: operation,
		Err:       err,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("error in %v: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As matching.
func (e *Error) Unwrap() error {
	return e.Err
}
