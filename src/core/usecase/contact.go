package usecase

import (
	"context"
	"log/slog"

	"contactbook/src/core/domain"
	"contactbook/src/core/ports"
	"contactbook/src/core/schema"
)

// ContactService handles address-book flows.
type ContactService struct {
	repo ports.ContactRepository
	log  *slog.Logger
}

func NewContactService(repo ports.ContactRepository, log *slog.Logger) *ContactService {
	return &ContactService{repo: repo, log: log}
}

// List returns one page of contacts. A zero limit yields an empty page.
func (s *ContactService) List(ctx context.Context, limit, offset int) ([]domain.Contact, error) {
	if limit < 0 || limit > domain.MaxListLimit {
		return nil, domain.NewValidationError("limit", "must be between 0 and 500")
	}
	if offset < 0 {
		return nil, domain.NewValidationError("offset", "must not be negative")
	}
	return s.repo.List(ctx, limit, offset)
}

func (s *ContactService) Get(ctx context.Context, id int64) (*domain.Contact, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NewNotFoundError("contact")
	}
	return c, nil
}

func (s *ContactService) Create(ctx context.Context, in schema.ContactSchema) (*domain.Contact, error) {
	c, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.log.Info("contact created", "contact_id", c.ID)
	return c, nil
}

func (s *ContactService) Update(ctx context.Context, id int64, in schema.ContactUpdateSchema) (*domain.Contact, error) {
	c, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NewNotFoundError("contact")
	}
	s.log.Info("contact updated", "contact_id", id)
	return c, nil
}

// Delete removes a contact and returns what was stored.
func (s *ContactService) Delete(ctx context.Context, id int64) (*domain.Contact, error) {
	c, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NewNotFoundError("contact")
	}
	s.log.Info("contact deleted", "contact_id", id)
	return c, nil
}
