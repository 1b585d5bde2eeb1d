package worker

import (
	"context"
	"errors"
	"fmt"
	"pkidiscovery/internal/scanner"
	"pkidiscovery/pkg/domain"
	"pkidiscovery/pkg/logger"
	"pkidiscovery/pkg/serrors"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// conflictSnooze is how long a scan job waits when another scan of the
// project still holds the scan slot.
const conflictSnooze = time.Minute

// DiscoveryScanWorker is a River worker that executes discovery scans.
//
// Errors are mapped to River actions: a discovery that no longer exists, is
// misconfigured or needs an unavailable gateway is cancelled, a busy project
// snoozes the job, anything else is returned so River retries it.
type DiscoveryScanWorker struct {
	river.WorkerDefaults[scanner.JobArgs]

	scanner scanner.Scanner
	timeout time.Duration
}

// NewDiscoveryScanWorker constructs a DiscoveryScanWorker. A non-positive
// timeout disables River's job timeout.
func NewDiscoveryScanWorker(scanner scanner.Scanner, timeout time.Duration) *DiscoveryScanWorker {
	if timeout <= 0 {
		timeout = -1
	}

	return &DiscoveryScanWorker{
		scanner: scanner,
		timeout: timeout,
	}
}

// Timeout overrides River's default job timeout, scans of large ranges
// routinely run longer than a minute.
func (w *DiscoveryScanWorker) Timeout(*river.Job[scanner.JobArgs]) time.Duration {
	return w.timeout
}

// Work executes a single discovery scan.
func (w *DiscoveryScanWorker) Work(ctx context.Context, job *river.Job[scanner.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.String("discoveryID", job.Args.DiscoveryID))

	id, err := uuid.Parse(job.Args.DiscoveryID)
	if err != nil {
		logger.Error(ctx, "invalid discovery id in job", zap.Error(err))

		return river.JobCancel(fmt.Errorf("invalid discovery id: %w", err)) //nolint: wrapcheck
	}

	if err := w.scanner.Execute(ctx, domain.DiscoveryID(id)); err != nil {
		switch {
		case errors.Is(err, serrors.ErrNotFound),
			errors.Is(err, serrors.ErrBadRequest),
			errors.Is(err, serrors.ErrUnavailable):
			logger.Warn(ctx, "cancelling discovery scan", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		case errors.Is(err, serrors.ErrConflict):
			logger.Info(ctx, "project is busy, snoozing discovery scan", zap.Error(err))

			return river.JobSnooze(conflictSnooze) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in discovery scan", zap.Error(err))

		return fmt.Errorf("could not execute discovery scan: %w", err)
	}

	return nil
}
