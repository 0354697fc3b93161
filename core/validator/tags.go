package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Rule is a deferred check together with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// ValidatorFunc builds a Rule for one field value and the rule's parameters.
type ValidatorFunc func(field string, value reflect.Value, params []string) Rule

var (
	registryMu sync.RWMutex
	registry   = map[string]ValidatorFunc{
		"required": requiredValidator,
		"min":      minValidator,
		"max":      maxValidator,
		"len":      lenValidator,
		"email":    emailValidator,
		"alphanum": alphanumValidator,
		"numeric":  numericValidator,
		"in":       inValidator,
		"prefix":   prefixValidator,
		"regex":    regexValidator,
		"positive": positiveValidator,
	}

	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

var pass = Rule{Check: func() bool { return true }}

// RegisterValidator adds or replaces a rule in the registry.
func RegisterValidator(name string, fn ValidatorFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// ValidateStruct validates a struct through its `validate` tags.
//
// Rules are separated by semicolons and take comma separated parameters after
// a colon: `validate:"required;min:3;in:a,b,c"`. Fields are reported by their
// json name when one is set. A `message` tag replaces the message of every
// failing rule on that field.
func ValidateStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}

	var errs ValidationErrors
	validateStruct(rv.Elem(), "", &errs)

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func validateStruct(rv reflect.Value, prefix string, errs *ValidationErrors) {
	rt := rv.Type()

	for i := range rv.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get("validate")
		if tag == "-" {
			continue
		}

		path := fieldName(sf)
		if prefix != "" {
			path = prefix + "." + path
		}

		field := rv.Field(i)
		if field.Kind() == reflect.Pointer && !field.IsNil() {
			field = field.Elem()
		}

		if field.Kind() == reflect.Struct && tag == "" {
			validateStruct(field, path, errs)
			continue
		}
		if tag == "" {
			continue
		}

		validateField(path, field, tag, sf.Tag.Get("message"), errs)
	}
}

func validateField(path string, field reflect.Value, tag, message string, errs *ValidationErrors) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for raw := range strings.SplitSeq(tag, ";") {
		name, paramStr, _ := strings.Cut(strings.TrimSpace(raw), ":")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		fn, ok := registry[name]
		if !ok {
			continue
		}

		var params []string
		if paramStr = strings.TrimSpace(paramStr); paramStr != "" {
			params = strings.Split(paramStr, ",")
			for i := range params {
				params[i] = strings.TrimSpace(params[i])
			}
		}

		rule := fn(path, field, params)
		if rule.Check() {
			continue
		}

		ve := rule.Error
		ve.Field = path
		ve.Rule = name
		if message != "" {
			ve.Message = message
		}
		errs.Add(ve)
	}
}

func fieldName(sf reflect.StructField) string {
	if name, _, _ := strings.Cut(sf.Tag.Get("json"), ","); name != "" && name != "-" {
		return name
	}
	return sf.Name
}

func newError(field, key, msg string, values map[string]any) ValidationError {
	if values == nil {
		values = map[string]any{}
	}
	values["field"] = field
	return ValidationError{
		Field:             field,
		Message:           msg,
		TranslationKey:    "validation." + key,
		TranslationValues: values,
	}
}

func requiredValidator(field string, value reflect.Value, _ []string) Rule {
	return Rule{
		Check: func() bool {
			if !value.IsValid() {
				return false
			}
			switch value.Kind() {
			case reflect.String:
				return strings.TrimSpace(value.String()) != ""
			case reflect.Slice, reflect.Map, reflect.Array:
				return value.Len() > 0
			case reflect.Pointer, reflect.Interface:
				return !value.IsNil()
			default:
				return !value.IsZero()
			}
		},
		Error: newError(field, "required", "field is required", nil),
	}
}

// sizeOf returns the measure compared by min, max and len: rune count for
// strings, length for collections, the value itself for numbers.
func sizeOf(value reflect.Value) (float64, string, bool) {
	switch value.Kind() {
	case reflect.String:
		return float64(utf8.RuneCountInString(value.String())), "characters", true
	case reflect.Slice, reflect.Array, reflect.Map:
		return float64(value.Len()), "items", true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(value.Int()), "", true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(value.Uint()), "", true
	case reflect.Float32, reflect.Float64:
		return value.Float(), "", true
	default:
		return 0, "", false
	}
}

func boundValidator(key, verb string, cmp func(size, bound float64) bool) ValidatorFunc {
	return func(field string, value reflect.Value, params []string) Rule {
		if len(params) < 1 {
			return pass
		}
		bound, err := strconv.ParseFloat(params[0], 64)
		if err != nil {
			return pass
		}
		size, unit, ok := sizeOf(value)
		if !ok {
			return pass
		}

		msg := fmt.Sprintf("must be %s %s", verb, params[0])
		if unit != "" {
			msg += " " + unit
		}
		return Rule{
			Check: func() bool { return cmp(size, bound) },
			Error: newError(field, key, msg, map[string]any{key: bound}),
		}
	}
}

var (
	minValidator = boundValidator("min", "at least", func(s, b float64) bool { return s >= b })
	maxValidator = boundValidator("max", "at most", func(s, b float64) bool { return s <= b })
	lenValidator = boundValidator("len", "exactly", func(s, b float64) bool { return s == b })
)

func stringRule(field string, value reflect.Value, key, msg string, check func(string) bool) Rule {
	if value.Kind() != reflect.String {
		return pass
	}
	s := value.String()
	return Rule{
		Check: func() bool { return s == "" || check(s) },
		Error: newError(field, key, msg, nil),
	}
}

func emailValidator(field string, value reflect.Value, _ []string) Rule {
	return stringRule(field, value, "email", "must be a valid email address", emailRe.MatchString)
}

func alphanumValidator(field string, value reflect.Value, _ []string) Rule {
	return stringRule(field, value, "alphanum", "must contain only letters and digits", func(s string) bool {
		for _, r := range s {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return false
			}
		}
		return true
	})
}

func numericValidator(field string, value reflect.Value, _ []string) Rule {
	return stringRule(field, value, "numeric", "must be numeric", func(s string) bool {
		_, err := strconv.ParseFloat(s, 64)
		return err == nil
	})
}

func prefixValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 {
		return pass
	}
	return stringRule(field, value, "prefix", "must start with "+params[0], func(s string) bool {
		return strings.HasPrefix(s, params[0])
	})
}

func regexValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 {
		return pass
	}
	// Patterns may contain commas, which the tag parser splits on.
	re, err := regexp.Compile(strings.Join(params, ","))
	if err != nil {
		return pass
	}
	return stringRule(field, value, "regex", "has invalid format", re.MatchString)
}

func inValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) == 0 || !value.IsValid() {
		return pass
	}
	actual := fmt.Sprint(value.Interface())
	return Rule{
		Check: func() bool { return slices.Contains(params, actual) },
		Error: newError(field, "in", "must be one of: "+strings.Join(params, ", "),
			map[string]any{"values": params}),
	}
}

func positiveValidator(field string, value reflect.Value, _ []string) Rule {
	size, unit, ok := sizeOf(value)
	if !ok || unit != "" {
		return pass
	}
	return Rule{
		Check: func() bool { return size > 0 },
		Error: newError(field, "positive", "must be positive", nil),
	}
}
