package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Config describes how the service logger is built.
type Config struct {
	Level       string `validate:"oneof=trace debug info warn error"`
	Format      string `validate:"oneof=json console"`
	Env         string `validate:"oneof=dev staging prod"`
	ServiceName string
	WithCaller  bool
}

// New builds a logger writing to stdout.
func New(cfg Config) (zerolog.Logger, error) {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter builds a logger writing to w. Console format wraps w in a
// human readable writer; json writes one event per line.
func NewWithWriter(cfg Config, w io.Writer) (zerolog.Logger, error) {
	cfg.setDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return zerolog.Nop(), fmt.Errorf("logger config validation error: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := w
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("env", cfg.Env)
	if cfg.WithCaller {
		ctx = ctx.Caller()
	}
	return ctx.Logger(), nil
}

func (c *Config) setDefaults() {
	if c.Env == "" {
		c.Env = "prod"
	}
	if c.Level == "" {
		if c.Env == "dev" {
			c.Level = "debug"
		} else {
			c.Level = "info"
		}
	}
	if c.Format == "" {
		if c.Env == "dev" {
			c.Format = "console"
		} else {
			c.Format = "json"
		}
	}
	if c.ServiceName == "" {
		c.ServiceName = "movies-api"
	}
	if !c.WithCaller && c.Env == "dev" {
		c.WithCaller = true
	}
}
