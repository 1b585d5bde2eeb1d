package scanner

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments for a discovery scan job submitted to River.
type JobArgs struct {
	// DiscoveryID is the discovery to scan. It is marked as unique so River
	// keeps at most one unfinished job per discovery.
	DiscoveryID string `json:"discoveryId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the scan worker.
func (args JobArgs) Kind() string { return "discovery_scan" }

// InsertOpts returns the River options that control how the job is enqueued.
// Completed jobs are left out of the unique states so a discovery can be
// scanned again once its previous job finished.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// SweepJobArgs is the periodic job that enqueues due automatic scans.
type SweepJobArgs struct{}

func (SweepJobArgs) Kind() string { return "discovery_due_sweep" }

func (SweepJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
