package validator

import (
	"errors"
	"strings"

	"github.com/goccy/go-json"
)

var (
	// ErrNotStructPointer is returned by ValidateStruct for anything but a pointer to struct.
	ErrNotStructPointer = errors.New("validator: must pass a pointer to struct")

	// ErrDecode wraps failures to convert raw input into the schema type.
	ErrDecode = errors.New("validator: cannot decode input")
)

// ValidationError describes one failed rule on one field.
type ValidationError struct {
	Field             string         `json:"field"`
	Rule              string         `json:"rule"`
	Message           string         `json:"message"`
	TranslationKey    string         `json:"-"`
	TranslationValues map[string]any `json:"-"`
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationErrors is the structured failure returned by validation. Entries
// keep field declaration order, then rule order within a field.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// MarshalJSON renders the failures as an array of {field, rule, message}.
func (e ValidationErrors) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]ValidationError(e))
}

// Add appends a failure.
func (e *ValidationErrors) Add(err ValidationError) {
	*e = append(*e, err)
}

// IsEmpty reports whether no failures were recorded.
func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}

// First returns the first failure. ok is false when there are none.
func (e ValidationErrors) First() (ValidationError, bool) {
	if len(e) == 0 {
		return ValidationError{}, false
	}
	return e[0], true
}

// Has reports whether field has at least one failure.
func (e ValidationErrors) Has(field string) bool {
	for _, ve := range e {
		if ve.Field == field {
			return true
		}
	}
	return false
}

// Fields returns the distinct failing fields in order of first appearance.
func (e ValidationErrors) Fields() []string {
	seen := make(map[string]struct{}, len(e))
	fields := make([]string, 0, len(e))
	for _, ve := range e {
		if _, ok := seen[ve.Field]; ok {
			continue
		}
		seen[ve.Field] = struct{}{}
		fields = append(fields, ve.Field)
	}
	return fields
}

// ByField groups messages by field.
func (e ValidationErrors) ByField() map[string][]string {
	out := make(map[string][]string, len(e))
	for _, ve := range e {
		out[ve.Field] = append(out[ve.Field], ve.Message)
	}
	return out
}

// AsValidationErrors extracts ValidationErrors from err's chain.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
