package sanitizer

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// ErrNotStructPointer is returned by SanitizeStruct for anything but a pointer to struct.
var ErrNotStructPointer = errors.New("sanitizer: must pass a pointer to struct")

var (
	registryMu sync.RWMutex
	registry   = map[string]func(string) string{
		"trim":        Trim,
		"lower":       ToLower,
		"upper":       ToUpper,
		"title":       ToTitle,
		"single_line": SingleLine,
		"no_spaces":   RemoveExtraWhitespace,
		"no_control":  RemoveControlChars,
		"strip_html":  StripHTML,
		"alphanum":    KeepAlphanumeric,
		"digits":      KeepDigits,
		"email":       NormalizeEmail,

		"username": func(s string) string {
			return strings.ReplaceAll(KeepAlphanumeric(ToLower(Trim(s))), " ", "")
		},
		"name": func(s string) string {
			return ToTitle(RemoveExtraWhitespace(s))
		},
		"text": func(s string) string {
			return RemoveExtraWhitespace(RemoveControlChars(s))
		},
	}
)

// RegisterSanitizer adds or replaces a named sanitizer.
func RegisterSanitizer(name string, fn func(string) string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// Apply runs the comma separated sanitizers of tag on s, left to right.
// "max:N" truncates to N runes. Unknown names are ignored.
func Apply(s, tag string) string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for name := range strings.SplitSeq(tag, ",") {
		name = strings.TrimSpace(name)
		if n, ok := strings.CutPrefix(name, "max:"); ok {
			if maxLen, err := strconv.Atoi(n); err == nil && maxLen > 0 {
				s = MaxLength(s, maxLen)
			}
			continue
		}
		if fn, ok := registry[name]; ok {
			s = fn(s)
		}
	}
	return s
}

// SanitizeStruct rewrites string fields of the struct pointed to by v
// according to their `sanitize:"trim,lower"` tags. Nested structs, struct
// pointers and string pointers and slices are handled.
func SanitizeStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}
	sanitizeStruct(rv.Elem())
	return nil
}

func sanitizeStruct(rv reflect.Value) {
	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		tag := rt.Field(i).Tag.Get("sanitize")
		if tag == "-" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				continue
			}
			field = field.Elem()
		}

		switch field.Kind() {
		case reflect.String:
			if tag != "" {
				field.SetString(Apply(field.String(), tag))
			}
		case reflect.Struct:
			sanitizeStruct(field)
		case reflect.Slice:
			if tag != "" && field.Type().Elem().Kind() == reflect.String {
				for j := range field.Len() {
					elem := field.Index(j)
					elem.SetString(Apply(elem.String(), tag))
				}
			}
		}
	}
}
