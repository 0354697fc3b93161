package sanitizer

import (
	"context"
	"reflect"

	"github.com/dmitrymomot/handlerkit/core/handler"
)

// Middleware sanitizes struct inputs by their `sanitize` tags. Pointer inputs
// are copied first, so the caller's value is left untouched. Inputs that are
// not structs pass through unchanged.
//
// The copy is shallow: string slices and nested pointers are sanitized in
// place and callers sharing them with the input will observe the change.
func Middleware[I, C any]() handler.Middleware[I, C] {
	return func(_ context.Context, p handler.Props[I, C]) (handler.Props[I, C], error) {
		rv := reflect.ValueOf(&p.Input).Elem()

		switch {
		case rv.Kind() == reflect.Struct:
			sanitizeStruct(rv)
		case rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct:
			clone := reflect.New(rv.Elem().Type())
			clone.Elem().Set(rv.Elem())
			sanitizeStruct(clone.Elem())
			rv.Set(clone)
		}
		return p, nil
	}
}

// String returns a middleware applying the comma separated sanitizers of tag
// to a string input.
func String[C any](tag string) handler.Middleware[string, C] {
	return handler.Transform[string, C](func(_ context.Context, s string) (string, error) {
		return Apply(s, tag), nil
	})
}
