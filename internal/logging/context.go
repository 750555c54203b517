package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// ctxKey keys the logger attached to a command context.
type ctxKey struct{}

//nolint:gochecknoglobals // context key must be package-level
var loggerCtxKey = ctxKey{}

// WithLogger attaches a logger to the context. The CLI attaches its
// per-invocation logger here so engine collaborators, image resolution in
// particular, log to the command's error stream.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// FromContext returns the logger attached to the context, falling back to
// the package default.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerCtxKey).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}
