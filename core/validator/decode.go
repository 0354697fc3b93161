package validator

import (
	"fmt"
	"reflect"

	"github.com/goccy/go-json"
	"github.com/mitchellh/mapstructure"
)

// Decode converts raw endpoint input into T.
//
// A T or *T is used as is. JSON held in []byte is unmarshalled, as is JSON held
// in a string unless T is itself a string kind. Anything else (typically a
// map[string]any) goes through mapstructure with weak typing, so "5" coerces
// to 5 and json tags name the keys. A nil raw value yields the zero T.
func Decode[T any](raw any) (T, error) {
	var out T

	switch v := raw.(type) {
	case nil:
		return out, nil
	case T:
		return v, nil
	case *T:
		if v != nil {
			out = *v
		}
		return out, nil
	}

	kind := reflect.TypeFor[T]().Kind()

	switch v := raw.(type) {
	case []byte:
		if kind != reflect.Slice {
			if err := json.Unmarshal(v, &out); err != nil {
				return out, fmt.Errorf("%w: %w", ErrDecode, err)
			}
			return out, nil
		}
	case string:
		if kind != reflect.String {
			if err := json.Unmarshal([]byte(v), &out); err != nil {
				return out, fmt.Errorf("%w: %w", ErrDecode, err)
			}
			return out, nil
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc("2006-01-02T15:04:05Z07:00"),
		),
	})
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := dec.Decode(raw); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return out, nil
}
