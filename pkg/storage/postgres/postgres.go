package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"pkidiscovery/pkg/storage"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

const (
	dialect                = "postgres"
	defaultApplicationName = "pkidiscovery"
)

// Options configures the connection pool shared by discovery storage and the
// River job queue.
type Options struct {
	Username string
	Password string
	Host     string
	Port     int
	Database string
	// SslMode is a libpq sslmode value, e.g. "disable" or "verify-full".
	SslMode string
	// ApplicationName is reported in pg_stat_activity, defaults to "pkidiscovery".
	ApplicationName string

	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	MaxOpenConnections int
	// MaxIdleConnections is kept open as the pool's minimum size.
	MaxIdleConnections int
}

// DB is the part of database/sql shared by *sql.DB and *sql.Tx. Storage
// methods run against it so they behave the same inside and outside a
// transaction.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Builder is the part of goqu used to build queries, implemented by both
// *goqu.Database and *goqu.TxDatabase.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Update(table interface{}) *goqu.UpdateDataset
	Delete(table interface{}) *goqu.DeleteDataset
}

// PgSQL is the PostgreSQL implementation of storage.Storage and
// storage.TxStorage.
type PgSQL struct {
	// DB is a *sql.DB, or a *sql.Tx for a handle returned by Begin.
	DB DB
	// Builder builds queries bound to DB.
	Builder Builder
	// Pool is shared by every handle derived from the same New call. River
	// workers use it directly.
	Pool *pgxpool.Pool
}

var (
	_ storage.Storage   = (*PgSQL)(nil)
	_ storage.TxStorage = (*PgSQL)(nil)
)

// quote escapes a value for a keyword/value connection string.
func quote(v string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v) + "'"
}

// poolConfig turns options into a pgxpool configuration.
func poolConfig(options Options) (*pgxpool.Config, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s",
		quote(options.Host),
		options.Port,
		quote(options.Username),
		quote(options.Database),
		quote(options.Password))
	if options.SslMode != "" {
		dsn += " sslmode=" + quote(options.SslMode)
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}

	appName := options.ApplicationName
	if appName == "" {
		appName = defaultApplicationName
	}
	cfg.ConnConfig.RuntimeParams["application_name"] = appName

	if options.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(options.MaxOpenConnections) //nolint: gosec
	}
	if options.MaxIdleConnections > 0 {
		cfg.MinConns = min(int32(options.MaxIdleConnections), cfg.MaxConns) //nolint: gosec
	}
	if options.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = options.ConnMaxLifetime
	}
	if options.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = options.ConnMaxIdleTime
	}

	return cfg, nil
}

// New opens a pgx pool and wraps it with database/sql for goqu and goose.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	cfg, err := poolConfig(options)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx Pool: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	return &PgSQL{
		DB:      sqlDB,
		Builder: goqu.Dialect(dialect).DB(sqlDB),
		Pool:    pool,
	}, nil
}

// Ping checks that the database is reachable. It backs the postgres health check.
func (p *PgSQL) Ping(ctx context.Context) error {
	if err := p.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("could not ping postgres: %w", err)
	}

	return nil
}

// Close closes the database/sql wrapper and the pool. Calling it on a
// transactional handle is a no-op.
func (p *PgSQL) Close() error {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil
	}

	err := db.Close()
	p.Pool.Close()
	if err != nil {
		return fmt.Errorf("could not close db: %w", err)
	}

	return nil
}

func (p *PgSQL) tx() (*sql.Tx, error) {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return nil, storage.ErrNotInTx
	}

	return tx, nil
}

// Commit commits the transaction, or returns storage.ErrNotInTx.
func (p *PgSQL) Commit() error {
	tx, err := p.tx()
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback aborts the transaction, or returns storage.ErrNotInTx.
func (p *PgSQL) Rollback() error {
	tx, err := p.tx()
	if err != nil {
		return err
	}
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin opens a transaction. Nested transactions are not supported and
// return storage.ErrAlreadyInTx.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{
		DB:      tx,
		Builder: goqu.NewTx(dialect, tx),
		Pool:    p.Pool,
	}, nil
}

// WithTx runs cb in a transaction. The transaction commits when cb returns
// nil and is rolled back when cb fails or panics.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) (err error) {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			err = errors.Join(err, rbErr)
		}
	}()

	if err = cb(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return err //nolint: wrapcheck
	}
	committed = true

	return nil
}
