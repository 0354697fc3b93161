package handler

import (
	"errors"
	"fmt"
)

var (
	// ErrPanic is wrapped around a value recovered from a panicking stage.
	ErrPanic = errors.New("handler: panic recovered")

	// ErrNilFunc is returned by an endpoint built from a nil handler function.
	ErrNilFunc = errors.New("handler: nil handler function")
)

// Stage identifies the pipeline step that produced a failure.
type Stage string

const (
	// StageValidation marks failures of the input schema.
	StageValidation Stage = "validation"
	// StageMiddleware marks failures of a middleware step; Error.Index tells which.
	StageMiddleware Stage = "middleware"
	// StageHandler marks failures of the handler function or of the context copy.
	StageHandler Stage = "handler"
)

// Error is the failure reported in a Result. It tags the raw error with the
// stage that produced it; Unwrap exposes the raw error unchanged.
type Error struct {
	Stage Stage
	// Index is the position of the failing middleware, -1 for other stages.
	Index int
	Err   error
}

func (e *Error) Error() string {
	if e.Stage == StageMiddleware {
		return fmt.Sprintf("%s #%d: %v", e.Stage, e.Index, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newStageError(stage Stage, index int, err error) *Error {
	if stage != StageMiddleware {
		index = -1
	}
	return &Error{Stage: stage, Index: index, Err: err}
}

// StageOf returns the stage tag of err, or an empty Stage when err was not
// produced by an endpoint.
func StageOf(err error) Stage {
	var e *Error
	if errors.As(err, &e) {
		return e.Stage
	}
	return ""
}

// IsValidationError reports whether err was raised by the input schema.
func IsValidationError(err error) bool { return StageOf(err) == StageValidation }

// IsMiddlewareError reports whether err was raised by a middleware step.
func IsMiddlewareError(err error) bool { return StageOf(err) == StageMiddleware }

// IsHandlerError reports whether err was raised by the final handler function.
func IsHandlerError(err error) bool { return StageOf(err) == StageHandler }
