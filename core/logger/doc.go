// Package logger builds structured loggers on top of log/slog and provides
// attribute helpers used across the module.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/handlerkit/core/logger"
//
//	// Colored output for local development
//	log := logger.New(logger.WithDevelopment("billing"))
//
//	// JSON output at info level
//	log := logger.New(logger.WithProduction("billing"))
//
//	// From LOG_LEVEL, LOG_FORMAT and LOG_COMPONENT
//	log, err := logger.FromEnv()
//
// The dev format uses github.com/lmittmann/tint and turns colors off when the
// output is not a terminal.
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for zero values, so they can be passed
// unconditionally:
//
//	log.ErrorContext(ctx, "endpoint failed",
//		logger.Handler("signup"),
//		logger.InvocationID(id),
//		logger.Stage("validation"),
//		logger.Index(-1), // dropped
//		logger.Error(err),
//	)
package logger
