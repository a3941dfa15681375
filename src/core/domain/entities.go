package domain

import "time"

// Contact is a person in the address book.
//
// Birthday and AdditionalData are calendar dates; nil means the value was
// never recorded.
type Contact struct {
	ID             int64
	FirstName      string
	LastName       string
	Email          string
	PhoneNumber    string
	Birthday       *time.Time
	AdditionalData *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName joins first and last name.
func (c *Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// User is an account holder. Password is always a hash by the time a User
// is materialized.
type User struct {
	ID        int64
	Username  string
	Email     string
	Password  string
	Confirmed bool
	Avatar    *string
	CreatedAt time.Time
}
