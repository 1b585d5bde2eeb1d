package postgres

import (
	"errors"
	"fmt"
	"pkidiscovery/pkg/storage"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// mapError translates constraint violations into storage sentinel errors,
// keeping the driver error in the chain.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", storage.ErrUniqueViolation, err)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %w", storage.ErrForeignKeyViolation, err)
	default:
		return err
	}
}
