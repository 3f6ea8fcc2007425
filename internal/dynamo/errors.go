package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for solver operations.
var (
	// ErrInvalidInput indicates a zero step size, a non-finite parameter or
	// a target that cannot be reached in the direction of the step.
	ErrInvalidInput = errors.New("dynamo: invalid input")

	// ErrNotSolved indicates a result was queried before Solve ran.
	ErrNotSolved = errors.New("dynamo: method has not been solved yet")

	// ErrNotConfigured indicates Solve was called before Configure succeeded.
	ErrNotConfigured = errors.New("dynamo: method has not been configured")

	// ErrNoExact indicates an operation needs an exact solution and none was supplied.
	ErrNoExact = errors.New("dynamo: no exact solution available")

	// ErrFileWrite indicates an export destination could not be written.
	ErrFileWrite = errors.New("dynamo: failed to write file")
)

// ParamError reports which parameter set was rejected and why.
type ParamError struct {
	Params Params
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s (x0=%g, y0=%g, target=%g, h=%g)",
		ErrInvalidInput, e.Reason, e.Params.X0, e.Params.Y0, e.Params.XTarget, e.Params.H)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidInput
}

// FileError wraps an I/O failure on an export destination.
type FileError struct {
	Path    string
	Wrapped error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrFileWrite, e.Path, e.Wrapped)
}

func (e *FileError) Unwrap() []error {
	return []error{ErrFileWrite, e.Wrapped}
}
