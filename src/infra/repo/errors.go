package repo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"contactbook/src/core/domain"
)

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

// uniqueColumn extracts the offending column from a unique violation.
// Postgres names the constraint <table>_<column>_key; SQLite reports
// "UNIQUE constraint failed: <table>.<column>".
func uniqueColumn(err error, table string) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		name := strings.TrimPrefix(pgErr.ConstraintName, table+"_")
		return strings.TrimSuffix(name, "_key")
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		msg := liteErr.Error()
		if i := strings.Index(msg, table+"."); i >= 0 {
			if f := strings.Fields(msg[i+len(table)+1:]); len(f) > 0 {
				return strings.TrimRight(f[0], ",")
			}
		}
	}
	return ""
}

func conflictError(err error, table string) *domain.DomainError {
	column := uniqueColumn(err, table)
	if column == "" {
		return domain.NewConflictError("", "record already exists")
	}
	return domain.NewConflictError(column, fmt.Sprintf("%s already registered", humanize(column)))
}

// humanize turns snake_case identifiers into Title Case: "phone_number" -> "Phone Number".
func humanize(text string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}
