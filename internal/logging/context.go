package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// contextKey is the unexported type for this package's context keys.
type contextKey struct{}

// loggerKey carries the per-run logger across config loading and lint
// execution.
//
//nolint:gochecknoglobals // Package-level context key is idiomatic
var loggerKey = contextKey{}

// FromContext returns the logger attached to ctx, falling back to the
// default logger so callers never receive nil.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// WithLogger returns a child context carrying logger, for handing a
// preconfigured logger down to the loader and runner.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, logger)
}
