// Package logging provides structured logging for rulegen using slog.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// Level aliases for convenience.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Environment variables read by DefaultOptions.
const (
	EnvLevel  = "RULEGEN_LOG_LEVEL"
	EnvFormat = "RULEGEN_LOG_FORMAT"
)

var defaultLogger atomic.Pointer[slog.Logger]

// Options configures the logger behavior.
type Options struct {
	// Level sets the minimum log level. Defaults to LevelWarn so that a plain
	// run only prints the generation summary.
	Level slog.Level
	// Output sets the output destination. Defaults to os.Stderr.
	Output io.Writer
	// JSON enables JSON output format.
	JSON bool
	// AddSource includes source file and line in log output.
	AddSource bool
}

// DefaultOptions returns options for CLI usage. RULEGEN_LOG_LEVEL and
// RULEGEN_LOG_FORMAT=json adjust them; an unparsable level is ignored.
func DefaultOptions() Options {
	opts := Options{
		Level:  LevelWarn,
		Output: os.Stderr,
	}
	if v := os.Getenv(EnvLevel); v != "" {
		if level, err := ParseLevel(v); err == nil {
			opts.Level = level
		}
	}
	opts.JSON = strings.EqualFold(strings.TrimSpace(os.Getenv(EnvFormat)), "json")
	return opts
}

// ParseLevel accepts debug, info, warn (or warning) and error in any case.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelWarn, fmt.Errorf("unknown log level %q", s)
}

// New creates a new logger with the given options.
func New(opts Options) *slog.Logger {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     opts.Level,
		AddSource: opts.AddSource,
	}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}
	return slog.New(handler)
}

// Default returns the default logger, creating it from DefaultOptions on
// first use.
func Default() *slog.Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	defaultLogger.CompareAndSwap(nil, New(DefaultOptions()))
	return defaultLogger.Load()
}

// SetDefault replaces the default logger and installs it as slog's default.
func SetDefault(logger *slog.Logger) {
	defaultLogger.Store(logger)
	slog.SetDefault(logger)
}

// With returns a logger that includes the given attributes in every output.
func With(args ...any) *slog.Logger {
	return Default().With(args...)
}

// Debug logs at debug level using the default logger.
func Debug(msg string, args ...any) {
	Default().Debug(msg, args...)
}

// Info logs at info level using the default logger.
func Info(msg string, args ...any) {
	Default().Info(msg, args...)
}

// Warn logs at warn level using the default logger.
func Warn(msg string, args ...any) {
	Default().Warn(msg, args...)
}

// Error logs at error level using the default logger.
func Error(msg string, args ...any) {
	Default().Error(msg, args...)
}

type loggerKey struct{}

// NewContext returns a context with the logger attached.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger attached to ctx, or the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return l
		}
	}
	return Default()
}

// Common attribute keys.
const (
	KeyFormat    = "format"
	KeyRule      = "rule"
	KeyPath      = "path"
	KeyOperation = "operation"
	KeyCount     = "count"
	KeyBytes     = "bytes"
	KeyError     = "error"
)

// Format returns an attribute naming a target format.
func Format(id string) slog.Attr {
	return slog.String(KeyFormat, id)
}

// Rule returns an attribute naming a rule.
func Rule(name string) slog.Attr {
	return slog.String(KeyRule, name)
}

// Path returns an attribute for a file path.
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// Operation returns an attribute for the operation being performed.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Err returns an attribute for an error. A nil error yields an empty attribute.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any(KeyError, err)
}

// Bytes returns an attribute for a written size.
func Bytes(n int) slog.Attr {
	return slog.Int(KeyBytes, n)
}

// Count returns an attribute for item counts.
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}
