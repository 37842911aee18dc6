// Package logging carries a zap logger through a context.
package logging

import (
	"context"

	"github.com/yuseferi/zax"
	"go.uber.org/zap"
)

// With returns a copy of ctx that carries logger.
func With(ctx context.Context, logger *zap.Logger) context.Context {
	return zax.Set(ctx, logger, []zap.Field{})
}

// From returns the logger carried by ctx, or a no-op logger so callers
// never need to check.
func From(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return zap.NewNop()
	}
	if logger := zax.Get(ctx); logger != nil {
		return logger
	}
	return zap.NewNop()
}
