// Package playground adapts github.com/go-playground/validator/v10 to the
// handler.Schema interface. Input is decoded with validator.Decode and the
// library's field errors are converted to validator.ValidationErrors, so
// callers inspect failures the same way regardless of the schema backend.
//
//	schema := playground.NewSchema[Signup](playground.WithMessage("min", "is too short"))
//	h := handler.Create[Signup](c, schema)
package playground
