// Package sanitizer cleans user input: string helpers, tag driven struct
// sanitization, and handler middleware that applies both.
//
//	type Signup struct {
//		Username string   `sanitize:"username"`
//		Email    string   `sanitize:"email"`
//		Name     string   `sanitize:"name,max:64"`
//		Tags     []string `sanitize:"trim,lower"`
//	}
//
//	_ = sanitizer.SanitizeStruct(&signup)
//
// As a pipeline step, typically registered before business middleware:
//
//	h := handler.Create[Signup](c, schema).
//		Use(sanitizer.Middleware[Signup, *Deps]())
//
// Custom sanitizers are added with RegisterSanitizer.
package sanitizer
