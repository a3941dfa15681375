package usecase

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"contactbook/src/core/domain"
	"contactbook/src/core/ports"
	"contactbook/src/core/schema"
)

// UserService handles account flows: sign-up, lookup, confirmation, avatar.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	log    *slog.Logger
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, log *slog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, log: log}
}

// Signup registers a new account. The password is hashed before it is
// stored, and a Gravatar URL is used when no avatar is supplied.
func (s *UserService) Signup(ctx context.Context, in schema.UserSchema) (*domain.User, error) {
	existing, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewConflictError("email", "Email already registered")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	in.Password = hash

	if in.Avatar == nil {
		avatar := GravatarURL(in.Email)
		in.Avatar = &avatar
	}

	u, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.log.Info("user signed up", "user_id", u.ID)
	return u, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NewNotFoundError("user")
	}
	return u, nil
}

func (s *UserService) ConfirmEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.repo.ConfirmEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NewNotFoundError("user")
	}
	s.log.Info("email confirmed", "user_id", u.ID)
	return u, nil
}

func (s *UserService) UpdateAvatar(ctx context.Context, email, url string) (*domain.User, error) {
	u, err := s.repo.UpdateAvatar(ctx, email, url)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NewNotFoundError("user")
	}
	return u, nil
}

// GravatarURL returns the identicon-backed Gravatar image for email.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?d=identicon"
}
