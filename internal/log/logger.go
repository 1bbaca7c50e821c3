// Package log owns the process-wide zerolog instance. The CLI configures it
// once at startup; library code obtains component loggers and never touches
// global state directly.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for the global logger. Zero values fall back to
// the EPPW_LOG_LEVEL environment variable, info level, and stderr.
type Config struct {
	Level  string
	Output io.Writer
}

var (
	once sync.Once
	base zerolog.Logger
)

// Configure initialises the global logger exactly once. Later calls are
// no-ops, so the first caller (normally the CLI) wins and test packages can
// safely call it too.
func Configure(cfg Config) {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339
		zerolog.SetGlobalLevel(resolveLevel(cfg.Level))

		writer := cfg.Output
		if writer == nil {
			writer = os.Stderr
		}
		base = zerolog.New(writer).With().
			Timestamp().
			Str("service", "eppwire").
			Logger()
	})
}

func resolveLevel(level string) zerolog.Level {
	if level == "" {
		level = os.Getenv("EPPW_LOG_LEVEL")
	}
	if level != "" {
		if parsed, err := zerolog.ParseLevel(level); err == nil {
			return parsed
		}
	}
	return zerolog.InfoLevel
}

// Base returns the configured base logger.
func Base() zerolog.Logger {
	Configure(Config{})
	return base
}

// WithComponent returns a child logger annotated with the component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}
