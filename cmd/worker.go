package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"pkidiscovery/internal/api"
	"pkidiscovery/internal/config"
	"pkidiscovery/internal/worker"
	"pkidiscovery/pkg/controller"
	"pkidiscovery/pkg/logger"
	"pkidiscovery/pkg/metrics"
	"pkidiscovery/pkg/storage/postgres"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL) func(ctx context.Context) {
	server := api.NewServer(api.Deps{
		Gatherer: prometheus.DefaultGatherer,
		Checks: map[string]controller.HealthCheck{
			"postgres": strg.Ping,
		},
	}, api.NewOptions(cfg))

	go func() {
		logger.Info(ctx, "starting ops webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupMetrics(ctx context.Context) (*metrics.Recorder, func(ctx context.Context)) {
	meterProvider, err := api.NewMeterProvider(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}
	otel.SetMeterProvider(meterProvider)

	recorder, err := metrics.NewRecorder(meterProvider)
	if err != nil {
		logger.Fatal(ctx, "could not create metrics recorder", zap.Error(err))
	}

	return recorder, func(ctx context.Context) {
		if err := meterProvider.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not stop meter provider", zap.Error(err))
		}
	}
}

func workerCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Starts discovery scan workers, the due scan sweep and the ops server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			recorder, stopMetrics := setupMetrics(ctx)

			discoveryScanner, err := newScanner(cfg, strg, recorder)
			if err != nil {
				logger.Fatal(ctx, "could not create discovery scanner", zap.Error(err))
			}

			riverClient, err := worker.Start(ctx, strg.Pool, discoveryScanner, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}
			logger.Info(ctx, "discovery workers started")

			stopWebserver := setupServer(ctx, cfg, strg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "workers did not stop gracefully, cancelling running scans", zap.Error(err))
				cancelCtx, cancelStop := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
				if err := riverClient.StopAndCancel(cancelCtx); err != nil {
					logger.Error(cancelCtx, "could not stop workers", zap.Error(err))
				}
				cancelStop()
			}
			stopWebserver(shutdownCtx)
			stopMetrics(shutdownCtx)
		},
	}

	return cmd
}
