package playground

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	govalidator "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/handlerkit/core/handler"
	"github.com/dmitrymomot/handlerkit/core/validator"
)

var _ handler.Schema[struct{}] = (*Schema[struct{}])(nil)

// Schema validates decoded input with go-playground/validator struct tags.
type Schema[T any] struct {
	validate *govalidator.Validate
	messages map[string]string
}

// Option configures a Schema.
type Option func(*config)

type config struct {
	validate *govalidator.Validate
	messages map[string]string
}

// WithValidate uses a preconfigured validator instance, e.g. one with custom
// rules registered.
func WithValidate(v *govalidator.Validate) Option {
	return func(c *config) {
		if v != nil {
			c.validate = v
		}
	}
}

// WithMessage sets the message reported for a failing tag.
func WithMessage(tag, message string) Option {
	return func(c *config) {
		c.messages[tag] = message
	}
}

// NewSchema creates a Schema for T. Field names in errors follow json tags.
func NewSchema[T any](opts ...Option) *Schema[T] {
	cfg := &config{messages: map[string]string{}}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.validate == nil {
		cfg.validate = govalidator.New(govalidator.WithRequiredStructEnabled())
		cfg.validate.RegisterTagNameFunc(jsonName)
	}
	return &Schema[T]{validate: cfg.validate, messages: cfg.messages}
}

// Parse implements handler.Schema.
func (s *Schema[T]) Parse(ctx context.Context, raw any) (T, error) {
	var zero T

	v, err := validator.Decode[T](raw)
	if err != nil {
		return zero, err
	}

	target := reflect.ValueOf(&v).Elem()
	if target.Kind() == reflect.Pointer {
		if target.IsNil() {
			return v, nil
		}
		target = target.Elem()
	}
	if target.Kind() != reflect.Struct {
		return v, nil
	}

	if err := s.validate.StructCtx(ctx, target.Addr().Interface()); err != nil {
		return zero, s.convert(err)
	}
	return v, nil
}

func (s *Schema[T]) convert(err error) error {
	var fieldErrs govalidator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(validator.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out.Add(validator.ValidationError{
			Field:          fieldPath(fe.Namespace()),
			Rule:           fe.Tag(),
			Message:        s.message(fe),
			TranslationKey: "validation." + fe.Tag(),
			TranslationValues: map[string]any{
				"field": fe.Field(),
				"param": fe.Param(),
			},
		})
	}
	return out
}

func (s *Schema[T]) message(fe govalidator.FieldError) string {
	if msg, ok := s.messages[fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return fmt.Sprintf("failed on %q", fe.Tag())
	}
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func jsonName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return sf.Name
	}
	return name
}
