// Package logging configures the process-wide zerolog logger and hands out
// component loggers tagged with a "component" field.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Output formats
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// DefaultLevel is used when no level or an unknown level is configured
const DefaultLevel = zerolog.InfoLevel

// Config controls logger construction
type Config struct {
	Level        string
	Format       string
	EnableCaller bool
	Output       io.Writer
}

var (
	mu   sync.RWMutex
	base = zerolog.Nop()
)

// Init replaces the process-wide logger
func Init(cfg Config) zerolog.Logger {
	logger := New(cfg)

	mu.Lock()
	base = logger
	mu.Unlock()

	return logger
}

// New builds a logger from cfg without touching the process-wide one
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	if !strings.EqualFold(cfg.Format, FormatJSON) {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: cfg.Output != nil}
	}

	ctx := zerolog.New(out).Level(ParseLevel(cfg.Level)).With().Timestamp()
	if cfg.EnableCaller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// ParseLevel converts a level name, falling back to DefaultLevel
func ParseLevel(level string) zerolog.Level {
	if strings.TrimSpace(level) == "" {
		return DefaultLevel
	}
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		return DefaultLevel
	}
	return parsed
}

// Component returns the process-wide logger tagged with a component name
func Component(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With().Str("component", name).Logger()
}
