package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Format selects the slog handler used by New.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	// FormatDev renders colored, human-friendly records via tint.
	FormatDev Format = "dev"
)

type options struct {
	level  slog.Leveler
	output io.Writer
	format Format
	attrs  []slog.Attr
}

// Option configures New.
type Option func(*options)

// WithLevel sets the minimum level. Pass a *slog.LevelVar to change it at runtime.
func WithLevel(level slog.Leveler) Option {
	return func(o *options) {
		if level != nil {
			o.level = level
		}
	}
}

// WithOutput sets the destination writer. Defaults to os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithFormat selects the output format.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithJSONFormatter is a shortcut for WithFormat(FormatJSON).
func WithJSONFormatter() Option {
	return WithFormat(FormatJSON)
}

// WithAttr adds attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// WithComponent tags every record with a component name.
func WithComponent(name string) Option {
	return func(o *options) {
		if name != "" {
			o.attrs = append(o.attrs, Component(name))
		}
	}
}

// WithDevelopment configures colored debug output for local work.
func WithDevelopment(component string) Option {
	return func(o *options) {
		o.level = slog.LevelDebug
		o.format = FormatDev
		WithComponent(component)(o)
	}
}

// WithProduction configures JSON output at info level.
func WithProduction(component string) Option {
	return func(o *options) {
		o.level = slog.LevelInfo
		o.format = FormatJSON
		WithComponent(component)(o)
	}
}

// New builds a *slog.Logger. Without options it writes text records at info
// level to os.Stderr.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		output: os.Stderr,
		format: FormatText,
	}
	for _, opt := range opts {
		opt(o)
	}

	var h slog.Handler
	switch o.format {
	case FormatJSON:
		h = slog.NewJSONHandler(o.output, &slog.HandlerOptions{Level: o.level})
	case FormatDev:
		h = tint.NewHandler(o.output, &tint.Options{
			Level:      o.level,
			NoColor:    !isTerminal(o.output),
			TimeFormat: time.TimeOnly,
		})
	default:
		h = slog.NewTextHandler(o.output, &slog.HandlerOptions{Level: o.level})
	}

	if len(o.attrs) > 0 {
		h = h.WithAttrs(o.attrs)
	}
	return slog.New(h)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// ParseLevel converts a level name to slog.Level. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
