// Package db provides the store handle shared by the repositories.
//
// This package is responsible for:
//   - Opening PostgreSQL (pgxpool bridged to database/sql) or SQLite
//   - Applying the embedded schema migrations
//   - Transaction scoping via Store.Tx
//   - Connection health checks
//
// Example usage:
//
//	store, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	err = store.Tx(ctx, func(tx *sql.Tx) error {
//	    _, err := contacts.WithTx(tx).Create(ctx, in)
//	    return err
//	})
package db
