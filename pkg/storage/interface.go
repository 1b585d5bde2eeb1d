// Package storage defines the persistence interfaces of the discovery engine
// and the transaction management around them. pkg/storage/postgres provides
// the implementation.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage groups every domain storage capability. It is what callbacks of
// WithTx receive.
type AllStorage interface {
	DiscoveryStorage
	ScanHistoryStorage
	CertificateStorage
	InstallationStorage
	JobStorage
}

// TxStorage is a storage handle bound to a database transaction.
// It becomes unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is a non-transactional storage handle able to start transactions.
type Storage interface {
	AllStorage

	// Close releases the underlying connection pool.
	Close() error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
