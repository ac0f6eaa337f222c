package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	name         string
	email        Email
	passwordHash string
	phone        *string
	role         Role
	isActive     bool
	createdAt    time.Time
}

// NewUser registers a new account. Self-registration always yields a customer;
// staff and admin accounts are provisioned out of band.
func NewUser(name string, email Email, passwordHash string, phone *string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		phone:        phone,
		role:         RoleCustomer,
		isActive:     true,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	name string,
	email Email,
	passwordHash string,
	phone *string,
	role Role,
	isActive bool,
	createdAt time.Time,
) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		phone:        phone,
		role:         role,
		isActive:     isActive,
		createdAt:    createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Phone() *string       { return u.phone }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
