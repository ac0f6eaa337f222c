//go:build unit || e2e

package builder

import (
	"time"

	"food-preorder/internal/domain/user"
	"food-preorder/internal/infra/db"
	"food-preorder/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	Name         string
	Email        string
	PasswordHash string
	Phone        *string
	Role         string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:         "Taro Tester",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "customer",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.Phone = &phone
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	return user.NewUser(u.Name, email, u.PasswordHash, u.Phone)
}

func (u *UserBuilder) BuildInfra() db.Users {
	now := time.Now()
	var phone pgtype.Text
	if u.Phone != nil {
		phone = pgtype.Text{String: *u.Phone, Valid: true}
	}

	return db.Users{
		ID:           uuid.New(),
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Phone:        phone,
		Role:         u.Role,
		IsActive:     u.IsActive,
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (u *UserBuilder) BuildReadModel() *readmodel.AuthorizedUserRM {
	return &readmodel.AuthorizedUserRM{
		ID:       uuid.New(),
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}
