// Package validator provides struct tag validation with structured errors and
// a Schema type that plugs into handler endpoints.
//
// # Tag Validation
//
//	type Signup struct {
//		Username string `json:"username" validate:"required;min:3;alphanum" message:"Username must be at least 3 characters"`
//		Email    string `json:"email" validate:"required;email"`
//		Plan     string `json:"plan" validate:"in:free,pro"`
//		Age      int    `json:"age" validate:"positive;max:150"`
//	}
//
//	err := validator.ValidateStruct(&signup)
//	if errs, ok := validator.AsValidationErrors(err); ok {
//		for _, e := range errs {
//			fmt.Println(e.Field, e.Rule, e.Message)
//		}
//	}
//
// Rules are separated by ";" and take comma separated parameters after ":".
// Built-in rules: required, min, max, len, email, alphanum, numeric, in,
// prefix, regex, positive. For strings min/max/len count runes, for
// collections they count items, for numbers they compare the value. Format
// rules (email, alphanum, numeric, prefix, regex) skip empty strings, so
// combine them with required when the field is mandatory.
//
// Fields are reported by their json name when present. A `message` tag
// replaces the default message of every failing rule on that field.
// Custom rules are added with RegisterValidator.
//
// # Schemas
//
// Schema decodes raw endpoint input (a T, *T, JSON bytes, or a map) into T,
// validates tags, then runs refinements:
//
//	schema := validator.NewSchema[Signup](
//		validator.WithCheck("email", "Corporate addresses only", func(s Signup) bool {
//			return !strings.HasSuffix(s.Email, "@gmail.com")
//		}),
//	)
//
//	h := handler.Create(container, schema)
//
// Maps are decoded with weak typing, so {"age": "42"} fills an int field.
package validator
