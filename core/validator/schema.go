package validator

import (
	"context"
	"reflect"

	"github.com/dmitrymomot/handlerkit/core/handler"
)

var _ handler.Schema[struct{}] = (*Schema[struct{}])(nil)

// Schema decodes raw input into T and validates it. Struct types are checked
// through their `validate` tags, then refinements run in registration order.
// The first failing step ends parsing.
type Schema[T any] struct {
	refinements []func(context.Context, T) error
}

// SchemaOption configures a Schema.
type SchemaOption[T any] func(*Schema[T])

// WithRefine adds a custom check run after tag validation. Returning
// ValidationError or ValidationErrors keeps the failure structured.
func WithRefine[T any](fn func(ctx context.Context, v T) error) SchemaOption[T] {
	return func(s *Schema[T]) {
		if fn != nil {
			s.refinements = append(s.refinements, fn)
		}
	}
}

// WithCheck adds a predicate reported as a single ValidationError on field
// with the given message when it returns false.
func WithCheck[T any](field, message string, fn func(v T) bool) SchemaOption[T] {
	return WithRefine(func(_ context.Context, v T) error {
		if fn(v) {
			return nil
		}
		return ValidationErrors{{
			Field:          field,
			Rule:           "check",
			Message:        message,
			TranslationKey: "validation.check",
		}}
	})
}

// NewSchema creates a Schema for T.
func NewSchema[T any](opts ...SchemaOption[T]) *Schema[T] {
	s := &Schema[T]{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Parse implements handler.Schema.
func (s *Schema[T]) Parse(ctx context.Context, raw any) (T, error) {
	var zero T

	v, err := Decode[T](raw)
	if err != nil {
		return zero, err
	}

	if err := validateTags(&v); err != nil {
		return zero, err
	}

	for _, fn := range s.refinements {
		if err := fn(ctx, v); err != nil {
			return zero, err
		}
	}
	return v, nil
}

// validateTags runs ValidateStruct when ptr points to a struct or to a
// non-nil struct pointer. Other types have no tags to check.
func validateTags(ptr any) error {
	rv := reflect.ValueOf(ptr).Elem()
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	if !rv.CanAddr() {
		return nil
	}
	return ValidateStruct(rv.Addr().Interface())
}
