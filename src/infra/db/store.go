package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"contactbook/src/infra/config"
	"contactbook/src/infra/logger"
)

// Querier is satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is the explicit handle repositories are built from.
// It owns the connection pool; there is no package-level session.
type Store struct {
	DB      *sql.DB
	Dialect Dialect

	// pool is set only for postgres; migrations need a native pgx connection.
	pool *pgxpool.Pool
	log  *slog.Logger
}

// New opens the store selected by cfg.Driver and verifies it is reachable.
func New(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return openSQLite(ctx, cfg, log)
	case config.DriverPostgres, "":
		return openPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// NewFromDB wraps an already opened *sql.DB. Tests use it with sqlmock.
func NewFromDB(sqlDB *sql.DB, dialect Dialect, log *slog.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{DB: sqlDB, Dialect: dialect, log: log}
}

// Tx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back when fn returns an error or panics. Errors from
// the store are returned as-is.
func (s *Store) Tx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			s.log.Warn("transaction rollback failed", "error", rbErr)
		}
		return err
	}

	return tx.Commit()
}

// Health checks if the store is reachable.
func (s *Store) Health(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Close releases the connection pool. Call this during graceful shutdown.
func (s *Store) Close() {
	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			s.log.Warn("closing database handle", "error", err)
		}
	}
	if s.pool != nil {
		s.pool.Close()
	}
	s.log.Info("database connection closed", "dialect", s.Dialect)
}
