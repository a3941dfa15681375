package db

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	tern "github.com/jackc/tern/v2/migrate"
)

//go:embed migrations
var migrations embed.FS

const versionTable = "schema_version"

// Migrate brings the schema up to date. Postgres is versioned through tern;
// the SQLite scripts are idempotent and simply replayed in order.
func (s *Store) Migrate(ctx context.Context) error {
	switch s.Dialect {
	case Postgres:
		return s.migratePostgres(ctx)
	case SQLite:
		return s.migrateSQLite(ctx)
	default:
		return fmt.Errorf("no migrations for dialect %q", s.Dialect)
	}
}

func (s *Store) migratePostgres(ctx context.Context) error {
	if s.pool == nil {
		return errors.New("postgres migrations need a pgx pool")
	}

	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquiring migration connection: %w", err)
	}
	defer conn.Release()

	m, err := tern.NewMigrator(ctx, conn.Conn(), versionTable)
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations/postgres")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return err
	}

	if from == int32(len(m.Migrations)) {
		s.log.Info("database schema up to date", "version", len(m.Migrations))
	} else {
		s.log.Info("migrated database schema", "from", from, "to", len(m.Migrations))
	}
	return nil
}

func (s *Store) migrateSQLite(ctx context.Context) error {
	entries, err := fs.ReadDir(migrations, "migrations/sqlite")
	if err != nil {
		return fmt.Errorf("reading sqlite migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		script, err := fs.ReadFile(migrations, "migrations/sqlite/"+name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.DB.ExecContext(ctx, string(script)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
	}

	s.log.Info("database schema up to date", "dialect", s.Dialect, "scripts", len(names))
	return nil
}
