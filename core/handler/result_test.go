package handler_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/handlerkit/core/handler"
	"github.com/dmitrymomot/handlerkit/core/validator"
)

func TestResult_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		b, err := handler.Result[int]{OK: true, Data: 10}.MarshalJSON()
		require.NoError(t, err)
		assert.JSONEq(t, `{"ok":true,"data":10,"error":null}`, string(b))
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()

		res := handler.Result[int]{Err: &handler.Error{Stage: handler.StageHandler, Index: -1, Err: errors.New("boom")}}
		b, err := res.MarshalJSON()
		require.NoError(t, err)
		assert.JSONEq(t, `{"ok":false,"data":null,"error":"handler: boom"}`, string(b))
	})

	t.Run("validation failure carries field details", func(t *testing.T) {
		t.Parallel()

		errs := validator.ValidationErrors{
			{Field: "username", Rule: "min", Message: "Username must be at least 3 characters"},
		}
		res := handler.Result[string]{Err: &handler.Error{Stage: handler.StageValidation, Index: -1, Err: errs}}
		b, err := res.MarshalJSON()
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"ok": false,
			"data": null,
			"error": "validation: validation failed: username: Username must be at least 3 characters",
			"details": [{"field":"username","rule":"min","message":"Username must be at least 3 characters"}]
		}`, string(b))
	})
}

func TestResult_CauseWithoutStage(t *testing.T) {
	t.Parallel()

	raw := errors.New("raw")
	res := handler.Result[string]{Err: raw}
	assert.Equal(t, raw, res.Cause())
	assert.Equal(t, handler.Stage(""), res.Stage())
	assert.Equal(t, handler.Stage(""), handler.StageOf(nil))
}
