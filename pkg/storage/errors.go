package storage

import "errors"

var (
	// ErrAlreadyInTx is returned when a transaction is started from a
	// transactional handle.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when Commit or Rollback is called outside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrUniqueViolation is returned when a write collides with a unique
	// constraint, e.g. a certificate fingerprint inserted concurrently.
	// The surrounding transaction, if any, is aborted.
	ErrUniqueViolation = errors.New("unique violation")
	// ErrForeignKeyViolation is returned when a referenced row disappeared,
	// e.g. a discovery deleted while its scan was persisting results.
	// The surrounding transaction, if any, is aborted.
	ErrForeignKeyViolation = errors.New("foreign key violation")
)
