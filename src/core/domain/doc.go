// Package domain contains the core domain model for the contacts service.
//
// This package defines:
//   - Entities: Contact and User, materialized from the store
//   - Domain Errors: sentinel errors plus DomainError for context
//   - Defaults: paging bounds shared by the HTTP layer and the services
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
package domain
