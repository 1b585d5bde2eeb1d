package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJob inserts a River job. Inside a transaction the insert joins it, so the
// job only becomes visible to workers once the surrounding writes commit.
// It reports false when River skipped the insert as a unique duplicate.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)

	switch db := p.DB.(type) {
	case *sql.Tx:
		client, cErr := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
		if cErr != nil {
			return false, fmt.Errorf("could not create river queue client: %w", cErr)
		}
		res, err = client.InsertTx(ctx, db, args, opts)
	case *sql.DB:
		client, cErr := river.NewClient(riverdatabasesql.New(db), &river.Config{})
		if cErr != nil {
			return false, fmt.Errorf("could not create river queue client: %w", cErr)
		}
		res, err = client.Insert(ctx, args, opts)
	default:
		return false, fmt.Errorf("could not insert job: unsupported db handle %T", p.DB)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert job: %w", err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
