package handler

import (
	"errors"

	"github.com/goccy/go-json"
)

// Result is the envelope returned by every endpoint invocation.
// OK is true iff Err is nil; on failure Data holds the zero value of O.
// When O is a pointer, map, slice or interface and the handler function
// returns nil, a successful Result carries a nil Data as well as a nil Err.
type Result[O any] struct {
	OK   bool
	Data O
	Err  error
}

func success[O any](data O) Result[O] {
	return Result[O]{OK: true, Data: data}
}

func failure[O any](err error) Result[O] {
	return Result[O]{Err: err}
}

// Unwrap returns the data and the error as a regular Go return pair.
func (r Result[O]) Unwrap() (O, error) {
	return r.Data, r.Err
}

// Stage returns the stage that failed, or an empty Stage on success.
func (r Result[O]) Stage() Stage {
	return StageOf(r.Err)
}

// Cause returns the raw error raised by the schema, a middleware, or the
// handler function, without the stage tag.
func (r Result[O]) Cause() error {
	var e *Error
	if errors.As(r.Err, &e) {
		return e.Err
	}
	return r.Err
}

type resultJSON struct {
	OK      bool            `json:"ok"`
	Data    any             `json:"data"`
	Error   *string         `json:"error"`
	Details json.RawMessage `json:"details,omitempty"`
}

// MarshalJSON renders {"ok":..,"data":..,"error":..}. On failure, when an
// error in the chain implements json.Marshaler (validator.ValidationErrors
// does), its JSON form is added under "details".
func (r Result[O]) MarshalJSON() ([]byte, error) {
	out := resultJSON{OK: r.OK}
	if r.OK {
		out.Data = r.Data
	} else if r.Err != nil {
		msg := r.Err.Error()
		out.Error = &msg

		var m json.Marshaler
		if errors.As(r.Err, &m) {
			details, err := m.MarshalJSON()
			if err != nil {
				return nil, err
			}
			out.Details = details
		}
	}
	return json.Marshal(out)
}
