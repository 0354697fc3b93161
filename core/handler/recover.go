package handler

import "fmt"

// recoverInto converts a panic in the calling stage into an error wrapping ErrPanic.
func recoverInto(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok {
			*err = fmt.Errorf("%w: %w", ErrPanic, e)
			return
		}
		*err = fmt.Errorf("%w: %v", ErrPanic, r)
	}
}
