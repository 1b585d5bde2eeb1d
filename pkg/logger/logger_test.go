package logger_test

import (
	"context"
	"pkidiscovery/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		debug       bool
	}{
		{name: "development defaults to debug", environment: logger.DevelopmentEnvironment, debug: true},
		{name: "production defaults to info", environment: logger.ProductionEnvironment, debug: false},
		{name: "level override", environment: logger.DevelopmentEnvironment, level: "warn", debug: false},
		{name: "invalid level is ignored", environment: logger.ProductionEnvironment, level: "loud", debug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(tt.environment, tt.level)
			})
			require.NotNil(t, logger.Get(context.Background()))
			require.Equal(t, tt.debug, logger.IsDebug(context.Background()))
		})
	}
}

func TestWithLogger(t *testing.T) {
	custom, _ := zap.NewDevelopment()
	ctx := logger.WithLogger(context.Background(), custom)
	require.Equal(t, custom, logger.Get(ctx))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.WithFields(ctx, zap.String("discoveryID", "d-1"))

	logger.Debug(ctx, "probing")
	logger.Info(ctx, "resolved")
	logger.Warn(ctx, "unresolved")
	logger.Error(ctx, "failed")

	entries := logs.All()
	require.Len(t, entries, 4)
	for _, e := range entries {
		require.Equal(t, "d-1", e.ContextMap()["discoveryID"])
	}
	require.Equal(t, zapcore.WarnLevel, entries[2].Level)
}
