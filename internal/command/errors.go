package command

import "errors"

// Errors returned by Parse.
var (
	// ErrEmptyCommand indicates a line with no command letter.
	ErrEmptyCommand = errors.New("empty command")

	// ErrUnknownCommand indicates an unrecognized command letter.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingArgument indicates a command that needs an argument got none.
	ErrMissingArgument = errors.New("missing argument")

	// ErrInvalidCount indicates a zero or out-of-range repeat count.
	ErrInvalidCount = errors.New("invalid repeat count")
)
