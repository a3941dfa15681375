// Package repo contains the database/sql implementations of the repository
// ports in src/core/ports.
//
// Naming convention:
//   - Files: <entity>_repo.go (contact_repo.go, user_repo.go)
//   - Types: <Entity>Repository (ContactRepository, UserRepository)
//
// Repositories receive the *db.Store via constructor injection. Each
// mutating call runs in its own transaction and commits before returning,
// unless the repository was bound to a caller-owned transaction with WithTx.
// Queries are written with '?' placeholders and rebound for the store's
// dialect once, in the constructor.
package repo
