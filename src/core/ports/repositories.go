package ports

import (
	"context"

	"contactbook/src/core/domain"
	"contactbook/src/core/schema"
)

// ContactRepository persists contacts.
//
// Lookups and identity-targeted mutations return (nil, nil) when the contact
// does not exist. Store errors are returned unchanged.
type ContactRepository interface {
	// List returns up to limit contacts after skipping offset, in id order.
	List(ctx context.Context, limit, offset int) ([]domain.Contact, error)

	Get(ctx context.Context, id int64) (*domain.Contact, error)

	// Create inserts only the fields set on in and returns the stored row.
	Create(ctx context.Context, in schema.ContactSchema) (*domain.Contact, error)

	// Update overwrites every mutable field with the values in in.
	Update(ctx context.Context, id int64, in schema.ContactUpdateSchema) (*domain.Contact, error)

	// Delete removes the contact and returns its last stored state.
	Delete(ctx context.Context, id int64) (*domain.Contact, error)
}

// UserRepository persists user accounts, keyed by email.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Create stores a new account. in.Password must already be hashed.
	// A duplicate email yields domain.ErrConflict.
	Create(ctx context.Context, in schema.UserSchema) (*domain.User, error)

	// ConfirmEmail marks the account confirmed. Idempotent.
	ConfirmEmail(ctx context.Context, email string) (*domain.User, error)

	UpdateAvatar(ctx context.Context, email, url string) (*domain.User, error)
}
