package handler

import "context"

// Props is what middleware and the final handler function receive.
type Props[I, C any] struct {
	Input   I
	Context C
}

// Middleware rewrites the input before the next step. Only the returned
// Input is passed on; the returned Context is ignored, so middleware can read
// the shared context but not replace it.
type Middleware[I, C any] func(ctx context.Context, p Props[I, C]) (Props[I, C], error)

// Transform adapts an input-only function to a Middleware.
func Transform[I, C any](fn func(ctx context.Context, input I) (I, error)) Middleware[I, C] {
	return func(ctx context.Context, p Props[I, C]) (Props[I, C], error) {
		in, err := fn(ctx, p.Input)
		if err != nil {
			return p, err
		}
		p.Input = in
		return p, nil
	}
}

// Tap runs fn for its side effects and passes the input through unchanged.
func Tap[I, C any](fn func(ctx context.Context, p Props[I, C]) error) Middleware[I, C] {
	return func(ctx context.Context, p Props[I, C]) (Props[I, C], error) {
		if err := fn(ctx, p); err != nil {
			return p, err
		}
		return p, nil
	}
}

// runChain threads input through mws in order. On failure it reports the
// index of the failing middleware.
func runChain[I, C any](ctx context.Context, mws []Middleware[I, C], input I, shared C) (I, int, error) {
	for i, mw := range mws {
		if err := ctx.Err(); err != nil {
			return input, i, err
		}

		out, err := callMiddleware(ctx, mw, Props[I, C]{Input: input, Context: shared})
		if err != nil {
			return input, i, err
		}
		input = out.Input
	}
	return input, -1, nil
}

func callMiddleware[I, C any](ctx context.Context, mw Middleware[I, C], p Props[I, C]) (out Props[I, C], err error) {
	defer recoverInto(&err)
	return mw(ctx, p)
}
