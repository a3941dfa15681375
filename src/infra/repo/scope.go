package repo

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"contactbook/src/infra/db"
)

// scope decides where a repository call runs: on the store with a fresh
// transaction per mutation, or inside a transaction the caller owns.
type scope struct {
	store *db.Store
	tx    *sql.Tx
}

// reader returns the handle for read-only queries.
func (s scope) reader() db.Querier {
	if s.tx != nil {
		return s.tx
	}
	return s.store.DB
}

// write runs fn atomically. A borrowed transaction is never committed or
// rolled back here.
func (s scope) write(ctx context.Context, fn func(q db.Querier) error) error {
	if s.tx != nil {
		return fn(s.tx)
	}
	return s.store.Tx(ctx, func(tx *sql.Tx) error {
		return fn(tx)
	})
}

func (s scope) rebind(query string) string {
	return s.store.Dialect.Rebind(query)
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
