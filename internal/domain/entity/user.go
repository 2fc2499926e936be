package entity

import (
	"slices"
	"time"

	"storefront/internal/domain/validation"

	"github.com/google/uuid"
)

// User is a storefront account. Carts, orders, wishlists and reviews reference it.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Avatar       string     `json:"avatar"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email"` // Unique login identifier.
	BirthDate    *time.Time `json:"birth_date"`
	PasswordHash string     `json:"-"` // bcrypt hash; never serialised.
	PhoneNumber  string     `json:"phone_number"`
	Roles        Roles      `json:"roles"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// UserParams carries the fields accepted on registration. The password is
// already hashed; an empty hash means no password was supplied.
type UserParams struct {
	Avatar       string
	FirstName    string
	LastName     string
	Email        string
	BirthDate    *time.Time
	PasswordHash string
	PhoneNumber  string
	Roles        Roles
}

// UserPatch carries the profile fields a caller may override on update.
type UserPatch struct {
	Avatar      *string
	FirstName   *string
	LastName    *string
	BirthDate   *time.Time
	PhoneNumber *string
	Roles       *Roles
}

// NewUser validates params and builds a user. Users without roles get RoleUser.
func NewUser(p UserParams, now time.Time) (*User, error) {
	roles := slices.Clone(p.Roles)
	if len(roles) == 0 {
		roles = Roles{RoleUser}
	}

	u := &User{
		Avatar:       p.Avatar,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		BirthDate:    p.BirthDate,
		PasswordHash: p.PasswordHash,
		PhoneNumber:  p.PhoneNumber,
		Roles:        roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate checks required identity fields and that the birth date is not
// after the user's last modification time.
func (u *User) Validate() error {
	return validation.Check(
		validation.NotBlank("firstName", "first name", u.FirstName),
		validation.NotBlank("lastName", "last name", u.LastName),
		validation.NotBlank("email", "email", u.Email),
		validation.NotBlank("password", "password", u.PasswordHash),
		validation.Must("birthDate", "birth date", "cannot be in the future",
			u.BirthDate == nil || !u.BirthDate.After(u.UpdatedAt)),
	)
}

// Apply returns a copy of u with the patch overlaid.
func (u User) Apply(p UserPatch, now time.Time) User {
	next := u
	next.Avatar = Override(u.Avatar, p.Avatar)
	next.FirstName = Override(u.FirstName, p.FirstName)
	next.LastName = Override(u.LastName, p.LastName)
	if p.BirthDate != nil {
		birth := *p.BirthDate
		next.BirthDate = &birth
	}
	next.PhoneNumber = Override(u.PhoneNumber, p.PhoneNumber)
	next.Roles = slices.Clone(Override(u.Roles, p.Roles))
	next.UpdatedAt = now

	return next
}
