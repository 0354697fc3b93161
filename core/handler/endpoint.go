package handler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/handlerkit/core/logger"
	"github.com/dmitrymomot/handlerkit/pkg/async"
)

// Func is the final step of an endpoint.
type Func[I, C, O any] func(ctx context.Context, p Props[I, C]) (O, error)

// Endpoint runs one invocation of the pipeline. input may be nil. Every
// outcome, including a panic in any stage, is reported through the Result.
type Endpoint[O any] func(ctx context.Context, input any) Result[O]

// Go runs the invocation on its own goroutine. The future's error is always
// nil; failures, including a ctx cancelled before the goroutine starts, are
// carried by the Result.
func (e Endpoint[O]) Go(ctx context.Context, input any) *async.Future[Result[O]] {
	if ctx == nil {
		ctx = context.Background()
	}
	return async.Async(context.WithoutCancel(ctx), input, func(_ context.Context, in any) (Result[O], error) {
		return e(ctx, in), nil
	})
}

// Execute builds an endpoint from h and fn. Each invocation validates input
// against the schema, runs the middleware registered at that moment in
// insertion order, then calls fn. Without a schema the input argument is
// ignored, fn receives the zero I, and middleware are skipped unless the
// handler was created with RunMiddlewareWithoutSchema.
func Execute[I, C, O any](h *Handler[I, C], fn Func[I, C, O]) Endpoint[O] {
	return func(ctx context.Context, input any) Result[O] {
		if ctx == nil {
			ctx = context.Background()
		}

		start := time.Now()
		id := uuid.NewString()

		out, err := run(ctx, h, fn, input)
		if err != nil {
			h.logger().ErrorContext(ctx, "endpoint failed",
				logger.Handler(h.name),
				logger.InvocationID(id),
				logger.Stage(string(err.Stage)),
				logger.Index(err.Index),
				logger.Duration(time.Since(start)),
				logger.Error(err.Err),
			)
			return failure[O](err)
		}

		h.logger().DebugContext(ctx, "endpoint completed",
			logger.Handler(h.name),
			logger.InvocationID(id),
			logger.Duration(time.Since(start)),
		)
		return success(out)
	}
}

func run[I, C, O any](ctx context.Context, h *Handler[I, C], fn Func[I, C, O], raw any) (O, *Error) {
	var (
		zero      O
		processed I
	)

	if fn == nil {
		return zero, newStageError(StageHandler, -1, ErrNilFunc)
	}

	if h.schema != nil {
		if err := ctx.Err(); err != nil {
			return zero, newStageError(StageValidation, -1, err)
		}
		in, err := parseInput(ctx, h.schema, raw)
		if err != nil {
			return zero, newStageError(StageValidation, -1, err)
		}
		processed = in
	}

	// A failing context copy is reported as a handler-stage error.
	shared, err := copyContext(h.container)
	if err != nil {
		return zero, newStageError(StageHandler, -1, err)
	}

	if h.schema != nil || h.alwaysMW {
		in, idx, err := runChain(ctx, h.snapshot(), processed, shared)
		if err != nil {
			return zero, newStageError(StageMiddleware, idx, err)
		}
		processed = in
	}

	if err := ctx.Err(); err != nil {
		return zero, newStageError(StageHandler, -1, err)
	}
	out, err := callFunc(ctx, fn, Props[I, C]{Input: processed, Context: shared})
	if err != nil {
		return zero, newStageError(StageHandler, -1, err)
	}
	return out, nil
}

func copyContext[C any](c *Container[C]) (shared C, err error) {
	defer recoverInto(&err)
	return c.invocationContext(), nil
}

func callFunc[I, C, O any](ctx context.Context, fn Func[I, C, O], p Props[I, C]) (out O, err error) {
	defer recoverInto(&err)
	return fn(ctx, p)
}
