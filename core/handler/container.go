package handler

import "log/slog"

// Container binds a shared context value and creates Handlers that use it.
//
// The value is stored as given. When C is a map or a pointer, every handler,
// middleware and handler function derived from the container sees the same
// underlying data; the container does not synchronise access to it.
type Container[C any] struct {
	ctx    C
	logger *slog.Logger
	copyFn func(C) C
}

// ContainerOption configures a Container.
type ContainerOption[C any] func(*Container[C])

// WithLogger sets the logger that receives every captured endpoint error.
// Defaults to slog.Default().
func WithLogger[C any](l *slog.Logger) ContainerOption[C] {
	return func(c *Container[C]) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithContextCopy makes every endpoint invocation receive fn(shared) instead of
// the shared value itself, isolating invocations that mutate the context.
func WithContextCopy[C any](fn func(C) C) ContainerOption[C] {
	return func(c *Container[C]) {
		c.copyFn = fn
	}
}

// NewContainer creates a Container bound to ctx.
func NewContainer[C any](ctx C, opts ...ContainerOption[C]) *Container[C] {
	c := &Container[C]{
		ctx:    ctx,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Context returns the bound context value.
func (c *Container[C]) Context() C {
	return c.ctx
}

// Logger returns the container's logger.
func (c *Container[C]) Logger() *slog.Logger {
	return c.logger
}

// invocationContext returns the value handed to one endpoint invocation.
func (c *Container[C]) invocationContext() C {
	if c.copyFn != nil {
		return c.copyFn(c.ctx)
	}
	return c.ctx
}
