package async

import "errors"

var (
	// ErrTimeout is returned when AwaitWithTimeout gives up before the future completes.
	ErrTimeout = errors.New("async: timeout waiting for future")

	// ErrNoFutures is returned when WaitAny is called without futures.
	ErrNoFutures = errors.New("async: no futures to wait for")
)
