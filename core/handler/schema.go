package handler

import "context"

// Schema validates raw endpoint input and converts it to I. A failure is
// reported through the returned error, ideally carrying structured details.
type Schema[I any] interface {
	Parse(ctx context.Context, raw any) (I, error)
}

// SchemaFunc adapts a function to Schema.
type SchemaFunc[I any] func(ctx context.Context, raw any) (I, error)

// Parse calls f.
func (f SchemaFunc[I]) Parse(ctx context.Context, raw any) (I, error) {
	return f(ctx, raw)
}

func parseInput[I any](ctx context.Context, s Schema[I], raw any) (out I, err error) {
	defer recoverInto(&err)
	return s.Parse(ctx, raw)
}
