// Package logger wraps zap with a context-scoped logger. Scan runs attach
// their identifiers with WithFields so every line of a run is correlated.
package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment configures a human-readable debug logger.
	DevelopmentEnvironment = "development"
	// ProductionEnvironment configures a JSON logger.
	ProductionEnvironment = "production"
)

var defaultLogger = zap.NewNop() //nolint: gochecknoglobals

// Setup initializes the default logger for the environment. A non-empty level
// ("debug", "info", "warn", "error") overrides the environment default.
func Setup(environment string, level ...string) {
	cfg := zap.NewDevelopmentConfig()
	if environment == ProductionEnvironment {
		cfg = zap.NewProductionConfig()
	}

	if len(level) > 0 && level[0] != "" {
		if lvl, err := zapcore.ParseLevel(level[0]); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	l, err := cfg.Build()
	if err != nil {
		return
	}
	defaultLogger = l
}

type key struct{}

// Get returns the logger stored in ctx, or the default logger.
func Get(ctx context.Context) *zap.Logger {
	if logger, _ := ctx.Value(key{}).(*zap.Logger); logger != nil {
		return logger
	}

	return defaultLogger
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// WithFields returns a copy of ctx whose logger includes fields.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// IsDebug reports whether the logger in ctx is at debug level.
func IsDebug(ctx context.Context) bool {
	return Get(ctx).Level() == zap.DebugLevel
}

func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}
