// Package worker runs discovery scans as River jobs.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"pkidiscovery/internal/config"
	"pkidiscovery/internal/scanner"
	"pkidiscovery/pkg/logger"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the River client.
type Options struct {
	// MaxWorkers is the number of scans run concurrently by this process.
	MaxWorkers int
	// JobTimeout bounds a single scan, zero or less disables it.
	JobTimeout time.Duration
	// SweepInterval is how often due automatic scans are enqueued.
	SweepInterval time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:    cfg.Worker.MaxWorkers,
		JobTimeout:    cfg.Worker.JobTimeout,
		SweepInterval: cfg.Worker.SweepInterval,
	}
}

// Workers registers the discovery workers.
func Workers(scanner scanner.Scanner, options Options) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewDiscoveryScanWorker(scanner, options.JobTimeout))
	river.AddWorker(workers, NewDueSweepWorker(scanner))

	return workers
}

// Start creates and starts a River client that executes discovery scans and
// periodically sweeps for due automatic scans.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	discoveryScanner scanner.Scanner,
	options Options) (*river.Client[pgx.Tx], error) {
	if options.MaxWorkers <= 0 {
		options.MaxWorkers = 10
	}
	if options.SweepInterval <= 0 {
		options.SweepInterval = 24 * time.Hour
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers: Workers(discoveryScanner, options),
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(options.SweepInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return scanner.SweepJobArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		},
		Logger: slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
