package schema

import (
	"time"

	"contactbook/src/core/domain"
)

// ContactSchema is the input for creating a contact.
// Optional dates left out of the request stay unset and are not written.
type ContactSchema struct {
	FirstName      string `json:"first_name" validate:"required,min=1,max=50"`
	LastName       string `json:"last_name" validate:"required,min=1,max=50"`
	Email          string `json:"email" validate:"required,email,max=255"`
	PhoneNumber    string `json:"phone_number" validate:"required,min=3,max=20"`
	Birthday       *Date  `json:"birthday,omitempty"`
	AdditionalData *Date  `json:"additional_data,omitempty"`
}

// ContactUpdateSchema is the input for replacing a contact. Every field is
// written; an omitted date clears the stored value.
type ContactUpdateSchema struct {
	FirstName      string `json:"first_name" validate:"required,min=1,max=50"`
	LastName       string `json:"last_name" validate:"required,min=1,max=50"`
	Email          string `json:"email" validate:"required,email,max=255"`
	PhoneNumber    string `json:"phone_number" validate:"required,min=3,max=20"`
	Birthday       *Date  `json:"birthday,omitempty"`
	AdditionalData *Date  `json:"additional_data,omitempty"`
}

// ContactResponse is the outward projection of a stored contact.
type ContactResponse struct {
	ID             int64     `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phone_number"`
	Birthday       *Date     `json:"birthday"`
	AdditionalData *Date     `json:"additional_data"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewContactResponse projects a domain contact.
func NewContactResponse(c *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:             c.ID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Email:          c.Email,
		PhoneNumber:    c.PhoneNumber,
		Birthday:       DateFromTime(c.Birthday),
		AdditionalData: DateFromTime(c.AdditionalData),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// NewContactResponses projects a page of contacts. The result is never nil.
func NewContactResponses(contacts []domain.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(contacts))
	for i := range contacts {
		out = append(out, NewContactResponse(&contacts[i]))
	}
	return out
}
