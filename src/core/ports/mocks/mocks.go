// Package mocks provides testify mocks of the repository and service ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"contactbook/src/core/domain"
	"contactbook/src/core/ports"
	"contactbook/src/core/schema"
)

// ContactRepository is a mock implementation of ports.ContactRepository.
type ContactRepository struct {
	mock.Mock
}

var _ ports.ContactRepository = (*ContactRepository)(nil)

func (m *ContactRepository) List(ctx context.Context, limit, offset int) ([]domain.Contact, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

func (m *ContactRepository) Get(ctx context.Context, id int64) (*domain.Contact, error) {
	args := m.Called(ctx, id)
	return contact(args.Get(0)), args.Error(1)
}

func (m *ContactRepository) Create(ctx context.Context, in schema.ContactSchema) (*domain.Contact, error) {
	args := m.Called(ctx, in)
	return contact(args.Get(0)), args.Error(1)
}

func (m *ContactRepository) Update(ctx context.Context, id int64, in schema.ContactUpdateSchema) (*domain.Contact, error) {
	args := m.Called(ctx, id, in)
	return contact(args.Get(0)), args.Error(1)
}

func (m *ContactRepository) Delete(ctx context.Context, id int64) (*domain.Contact, error) {
	args := m.Called(ctx, id)
	return contact(args.Get(0)), args.Error(1)
}

// UserRepository is a mock implementation of ports.UserRepository.
type UserRepository struct {
	mock.Mock
}

var _ ports.UserRepository = (*UserRepository)(nil)

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	return user(args.Get(0)), args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, in schema.UserSchema) (*domain.User, error) {
	args := m.Called(ctx, in)
	return user(args.Get(0)), args.Error(1)
}

func (m *UserRepository) ConfirmEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	return user(args.Get(0)), args.Error(1)
}

func (m *UserRepository) UpdateAvatar(ctx context.Context, email, url string) (*domain.User, error) {
	args := m.Called(ctx, email, url)
	return user(args.Get(0)), args.Error(1)
}

// PasswordHasher is a mock implementation of ports.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

var _ ports.PasswordHasher = (*PasswordHasher)(nil)

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Compare(hash, password string) error {
	return m.Called(hash, password).Error(0)
}

// ExternalService is a mock implementation of ports.ExternalService.
type ExternalService struct {
	mock.Mock
}

var _ ports.ExternalService = (*ExternalService)(nil)

func (m *ExternalService) Health(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func contact(v any) *domain.Contact {
	if v == nil {
		return nil
	}
	return v.(*domain.Contact)
}

func user(v any) *domain.User {
	if v == nil {
		return nil
	}
	return v.(*domain.User)
}
