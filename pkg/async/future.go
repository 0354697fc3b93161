package async

import (
	"context"
	"time"
)

// Future holds the outcome of a computation running on its own goroutine.
type Future[T any] struct {
	value T
	err   error
	done  chan struct{}
}

// Async runs fn with param on a new goroutine and returns a Future for its result.
// If ctx is already done, fn is not called and the future completes with ctx.Err().
func Async[P, T any](ctx context.Context, param P, fn func(context.Context, P) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		f.value, f.err = fn(ctx, param)
	}()

	return f
}

// Await blocks until the computation completes.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.value, f.err
}

// AwaitContext blocks until the computation completes or ctx is done.
func (f *Future[T]) AwaitContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// AwaitWithTimeout blocks for at most timeout, returning ErrTimeout if the
// computation has not finished by then.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.value, f.err
	case <-timer.C:
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// WaitAll waits for every future in order and returns their values.
// It stops at the first error.
func WaitAll[T any](futures ...*Future[T]) ([]T, error) {
	results := make([]T, 0, len(futures))
	for _, f := range futures {
		v, err := f.Await()
		if err != nil {
			return results, err
		}
		results = append(results, v)
	}
	return results, nil
}

// WaitAny returns the index and outcome of the first future to complete.
func WaitAny[T any](futures ...*Future[T]) (int, T, error) {
	if len(futures) == 0 {
		var zero T
		return -1, zero, ErrNoFutures
	}

	type outcome struct {
		index int
		value T
		err   error
	}

	// Buffered so the losing goroutines never block after the winner is read.
	done := make(chan outcome, len(futures))
	for i, f := range futures {
		go func(index int, f *Future[T]) {
			v, err := f.Await()
			done <- outcome{index: index, value: v, err: err}
		}(i, f)
	}

	res := <-done
	return res.index, res.value, res.err
}
