package worker

import (
	"context"
	"fmt"
	"pkidiscovery/internal/scanner"
	"pkidiscovery/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// DueSweepWorker enqueues the automatic scans that are due. It runs as a
// River periodic job.
type DueSweepWorker struct {
	river.WorkerDefaults[scanner.SweepJobArgs]

	scanner scanner.Scanner
}

func NewDueSweepWorker(scanner scanner.Scanner) *DueSweepWorker {
	return &DueSweepWorker{scanner: scanner}
}

func (w *DueSweepWorker) Work(ctx context.Context, job *river.Job[scanner.SweepJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	n, err := w.scanner.EnqueueDue(ctx)
	if err != nil {
		return fmt.Errorf("could not enqueue due scans (%d enqueued): %w", n, err)
	}
	logger.Debug(ctx, "due scan sweep finished", zap.Int("enqueued", n))

	return nil
}
