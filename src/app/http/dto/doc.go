// Package dto contains HTTP-only request shapes: query strings and small
// action bodies that never reach the repositories as-is.
//
// Contact and user bodies are bound straight into the schema package types
// and checked with schema.Validate. The types here use gin's `binding` tags
// and are validated during binding.
//
// Naming convention:
//   - Query types: <Action><Resource>Query (e.g., ListContactsQuery)
//   - Body types: <Action><Resource>Request (e.g., UpdateAvatarRequest)
package dto
