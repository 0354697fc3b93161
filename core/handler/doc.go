// Package handler composes validated, middleware-driven endpoints around a
// shared context value.
//
// # Features
//
//   - Container binding one context value to every handler it creates
//   - Optional input schema validated before anything else runs
//   - Ordered, append-only middleware chain that rewrites the input
//   - Uniform Result envelope for every invocation
//   - Stage-tagged errors (validation, middleware, handler)
//   - Panic recovery and structured error logging through log/slog
//
// # Core Types
//
//	// Shared context holder and handler factory
//	type Container[C any] struct{ ... }
//
//	// Optional validator for raw input
//	type Schema[I any] interface {
//		Parse(ctx context.Context, raw any) (I, error)
//	}
//
//	// Input rewriting step
//	type Middleware[I, C any] func(ctx context.Context, p Props[I, C]) (Props[I, C], error)
//
//	// Final function
//	type Func[I, C, O any] func(ctx context.Context, p Props[I, C]) (O, error)
//
//	// Callable produced by Execute
//	type Endpoint[O any] func(ctx context.Context, input any) Result[O]
//
// # Basic Usage
//
//	type Deps struct {
//		Org string
//		DB  *sql.DB
//	}
//
//	type Signup struct {
//		Username string `json:"username" validate:"required;min:3"`
//		Email    string `json:"email" validate:"required;email"`
//	}
//
//	c := handler.NewContainer(&Deps{Org: "Acme"}, handler.WithLogger[*Deps](log))
//
//	h := handler.Create[Signup](c, validator.NewSchema[Signup]()).
//		Use(handler.Transform[Signup, *Deps](func(_ context.Context, in Signup) (Signup, error) {
//			in.Email = strings.ToLower(in.Email)
//			return in, nil
//		}))
//
//	signup := handler.Execute(h, func(ctx context.Context, p handler.Props[Signup, *Deps]) (string, error) {
//		return "User " + p.Input.Username + " registered", nil
//	})
//
//	res := signup(ctx, map[string]any{"username": "john_doe", "email": "JOHN@example.com"})
//	if !res.OK {
//		// inspect res.Err
//	}
//
// # Invocation Pipeline
//
// Each call of an endpoint goes through these stages and stops at the first
// failure:
//
//  1. validation: schema.Parse(raw input). Skipped without a schema; the
//     input argument is then ignored and the zero I is used.
//  2. middleware: each registered middleware in insertion order. Middleware N+1
//     receives the Input returned by middleware N. The Context handed to every
//     middleware is the container's value; a Context returned by middleware is
//     discarded. Handlers without a schema skip this stage unless created with
//     RunMiddlewareWithoutSchema.
//  3. handler: the function passed to Execute.
//
// Success yields Result{OK: true, Data: out}. Any failure, including a
// recovered panic, is logged at error level and yields Result{OK: false, Err: err}
// where err is an *Error tagged with the stage. The raw error stays reachable:
//
//	res := signup(ctx, input)
//	switch {
//	case handler.IsValidationError(res.Err):
//		errs, _ := validator.AsValidationErrors(res.Err)
//		// per-field messages
//	case errors.Is(res.Err, ErrDuplicateEmail):
//		// raised by a middleware or the handler function
//	}
//
// Result marshals to {"ok":..,"data":..,"error":..}. Validation failures add
// their per-field entries under "details".
//
// # Shared Context
//
// The container's value is shared, not copied. If C is a pointer or a map,
// writes made by one invocation are visible to all others and concurrent
// invocations may race on it. Use WithContextCopy to give every invocation
// its own copy:
//
//	c := handler.NewContainer(map[string]any{"tenant": "acme"},
//		handler.WithContextCopy(maps.Clone[map[string]any]),
//	)
//
// The copy is taken after validation. A panic in the copy function fails the
// invocation with a handler-stage error.
//
// # Concurrency
//
// Endpoints are safe for concurrent use. Use may be called while endpoints
// run; an invocation works on the middleware list as it was when the
// invocation started, and endpoints created earlier see middleware added
// later. The context.Context passed to an endpoint is forwarded to every
// stage and checked before each one; there is no built-in timeout or retry.
//
// Endpoint.Go runs an invocation in the background using package async:
//
//	future := signup.Go(ctx, input)
//	res, _ := future.Await()
package handler
