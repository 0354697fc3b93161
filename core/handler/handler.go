package handler

import (
	"log/slog"
	"slices"
	"sync"
)

// Handler accumulates middleware for one input schema and produces endpoints.
type Handler[I, C any] struct {
	container *Container[C]
	schema    Schema[I]
	name      string
	alwaysMW  bool

	mu          sync.RWMutex
	middlewares []Middleware[I, C]
}

// HandlerOption configures a Handler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	name     string
	alwaysMW bool
}

// WithName labels the handler in log records.
func WithName(name string) HandlerOption {
	return func(c *handlerConfig) {
		c.name = name
	}
}

// RunMiddlewareWithoutSchema makes a handler created without a schema run its
// middleware on the zero input. By default such handlers skip middleware.
func RunMiddlewareWithoutSchema() HandlerOption {
	return func(c *handlerConfig) {
		c.alwaysMW = true
	}
}

// Create returns a new Handler bound to the container's context. schema may
// be nil, in which case the handler function always receives the zero I.
// Each call returns a handler with its own empty middleware list.
func Create[I, C any](c *Container[C], schema Schema[I], opts ...HandlerOption) *Handler[I, C] {
	cfg := handlerConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Handler[I, C]{
		container:   c,
		schema:      schema,
		name:        cfg.name,
		alwaysMW:    cfg.alwaysMW,
		middlewares: []Middleware[I, C]{},
	}
}

// Use appends middleware in order and returns the handler for chaining.
// Duplicates are allowed; nil entries are skipped. Endpoints already produced
// by Execute see middleware added later.
func (h *Handler[I, C]) Use(mws ...Middleware[I, C]) *Handler[I, C] {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, mw := range mws {
		if mw != nil {
			h.middlewares = append(h.middlewares, mw)
		}
	}
	return h
}

// Len returns the number of registered middleware.
func (h *Handler[I, C]) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.middlewares)
}

// Context returns the shared context of the handler's container.
func (h *Handler[I, C]) Context() C {
	return h.container.Context()
}

// HasSchema reports whether the handler validates its input.
func (h *Handler[I, C]) HasSchema() bool {
	return h.schema != nil
}

func (h *Handler[I, C]) snapshot() []Middleware[I, C] {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.middlewares)
}

func (h *Handler[I, C]) logger() *slog.Logger {
	return h.container.logger
}
