package playground_test

import (
	"context"
	"reflect"
	"testing"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/handlerkit/core/handler"
	"github.com/dmitrymomot/handlerkit/core/logger"
	"github.com/dmitrymomot/handlerkit/core/validator"
	"github.com/dmitrymomot/handlerkit/integration/validation/playground"
)

type address struct {
	City string `json:"city" validate:"required"`
}

type registration struct {
	Username string  `json:"username" validate:"required,min=3"`
	Email    string  `json:"email" validate:"required,email"`
	Plan     string  `json:"plan" validate:"oneof=free pro"`
	Address  address `json:"address"`
}

func TestSchema_Parse(t *testing.T) {
	t.Parallel()

	schema := playground.NewSchema[registration]()

	t.Run("valid map input", func(t *testing.T) {
		t.Parallel()

		got, err := schema.Parse(context.Background(), map[string]any{
			"username": "alice",
			"email":    "alice@example.com",
			"plan":     "pro",
			"address":  map[string]any{"city": "Oslo"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Oslo", got.Address.City)
	})

	t.Run("field errors are converted", func(t *testing.T) {
		t.Parallel()

		_, err := schema.Parse(context.Background(), registration{Username: "jo", Email: "nope", Plan: "team"})
		errs, ok := validator.AsValidationErrors(err)
		require.True(t, ok)

		assert.Equal(t, []string{"username", "email", "plan", "address.city"}, errs.Fields())
		assert.Equal(t, "min", errs[0].Rule)
		assert.Equal(t, "must be at least 3 characters", errs[0].Message)
		assert.Equal(t, "must be one of: free, pro", errs[2].Message)
	})
}

func TestSchema_CustomMessagesAndValidator(t *testing.T) {
	t.Parallel()

	v := govalidator.New()
	require.NoError(t, v.RegisterValidation("even", func(fl govalidator.FieldLevel) bool {
		return fl.Field().Int()%2 == 0
	}))
	v.RegisterTagNameFunc(func(sf reflect.StructField) string { return sf.Name })

	type payload struct {
		N int `validate:"even"`
	}

	schema := playground.NewSchema[payload](
		playground.WithValidate(v),
		playground.WithMessage("even", "N must be even"),
	)

	_, err := schema.Parse(context.Background(), payload{N: 3})
	errs, ok := validator.AsValidationErrors(err)
	require.True(t, ok)
	assert.Equal(t, "N", errs[0].Field)
	assert.Equal(t, "N must be even", errs[0].Message)

	got, err := schema.Parse(context.Background(), map[string]any{"N": "4"})
	require.NoError(t, err)
	assert.Equal(t, 4, got.N)
}

func TestSchema_WithHandler(t *testing.T) {
	t.Parallel()

	c := handler.NewContainer(map[string]any{"env": "test"}, handler.WithLogger[map[string]any](logger.Discard()))
	h := handler.Create[registration](c, playground.NewSchema[registration]())
	endpoint := handler.Execute(h, func(_ context.Context, p handler.Props[registration, map[string]any]) (string, error) {
		return p.Input.Username + "@" + p.Context["env"].(string), nil
	})

	ok := endpoint(context.Background(), []byte(`{"username":"alice","email":"a@b.io","plan":"free","address":{"city":"Rome"}}`))
	require.True(t, ok.OK)
	assert.Equal(t, "alice@test", ok.Data)

	failed := endpoint(context.Background(), nil)
	assert.True(t, handler.IsValidationError(failed.Err))
}

func TestSchema_NonStruct(t *testing.T) {
	t.Parallel()

	got, err := playground.NewSchema[string]().Parse(context.Background(), "plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", got)
}
