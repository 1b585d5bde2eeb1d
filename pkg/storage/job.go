package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs.
type JobStorage interface {
	// AddJob enqueues a job. Inside a transaction the job only becomes visible
	// on commit. It reports false when a unique job with the same arguments
	// already exists.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
