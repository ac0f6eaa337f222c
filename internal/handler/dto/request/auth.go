package request

import (
	"strings"

	"food-preorder/internal/domain/user"
)

type RegisterRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Phone    *string `json:"phone,omitempty"`
}

func (r RegisterRequest) GetPhone() *string {
	if r.Phone == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Phone)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r RegisterRequest) ToDomain(passwordHash string) (*user.User, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(strings.TrimSpace(r.Name), email, passwordHash, r.GetPhone())
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required,len=6"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}
