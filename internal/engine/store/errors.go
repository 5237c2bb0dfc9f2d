package store

import (
	"errors"
	"fmt"
)

// ErrEmptyStore is returned when a character is requested from a side that
// does not hold it.
var ErrEmptyStore = errors.New("store side is empty")

// InvariantError describes a broken structural invariant. It is only ever
// delivered through panic.
type InvariantError struct {
	Op     string // Operation that detected the violation
	Detail string // Human readable description
	Err    error  // Underlying error, if any
}

func (e *InvariantError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invariant violation in %s: %s: %v", e.Op, e.Detail, e.Err)
	}
	return fmt.Sprintf("invariant violation in %s: %s", e.Op, e.Detail)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}

// Violate panics with an *InvariantError.
func Violate(op string, err error, format string, args ...any) {
	panic(&InvariantError{
		Op:     op,
		Detail: fmt.Sprintf(format, args...),
		Err:    err,
	})
}
