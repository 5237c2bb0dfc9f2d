package script

import (
	"errors"
	"fmt"
)

// Errors for script execution.
var (
	// ErrClosed is returned when running code on a closed Runner.
	ErrClosed = errors.New("script runner is closed")

	// ErrTimeout is returned when a script runs past its deadline.
	ErrTimeout = errors.New("script execution timeout")
)

// Error wraps a failure raised while running a script.
type Error struct {
	Source string // File path or "<string>"
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("script %s: %v", e.Source, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
