package logger

import (
	"log/slog"

	"github.com/dmitrymomot/handlerkit/core/config"
)

// Config holds logger settings read from the environment.
type Config struct {
	Level     string `env:"LOG_LEVEL" envDefault:"info"`
	Format    string `env:"LOG_FORMAT" envDefault:"text"`
	Component string `env:"LOG_COMPONENT"`
}

// Options converts the config into New options.
func (c Config) Options() []Option {
	return []Option{
		WithLevel(ParseLevel(c.Level)),
		WithFormat(Format(c.Format)),
		WithComponent(c.Component),
	}
}

// FromEnv builds a logger from LOG_* environment variables. Extra options
// are applied after the environment settings.
func FromEnv(opts ...Option) (*slog.Logger, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return New(append(cfg.Options(), opts...)...), nil
}
