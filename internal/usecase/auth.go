package usecase

import (
	"context"
	"errors"
	"time"

	"food-preorder/internal/domain/user"
	reqdto "food-preorder/internal/handler/dto/request"
	"food-preorder/internal/infra"
	"food-preorder/internal/pkg/clock"
	"food-preorder/internal/pkg/config"
	"food-preorder/internal/pkg/errs"
	"food-preorder/internal/pkg/jwt"
	"food-preorder/internal/pkg/otp"
	"food-preorder/internal/pkg/password"
	"food-preorder/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
	ErrInvalidOTP         = errors.New("invalid reset code")
	ErrOTPExpired         = errors.New("reset code has expired")

	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*readmodel.UserRM, error)
	FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.UserRM, error)
	FindResetChallenge(ctx context.Context, email user.Email) (*string, *time.Time, error)
	SetResetOTP(ctx context.Context, email user.Email, otp string, expiresAt time.Time) error
	ResetPassword(ctx context.Context, email user.Email, passwordHash string) error
}

type AuthUseCase interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*readmodel.UserRM, error)
	Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.UserRM, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req reqdto.ResetPasswordRequest) error
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
	mailer     Mailer
	clock      clock.Clock
	cfg        config.OrderConfig
}

func NewAuthUseCase(
	userRepo UserRepository,
	jwtService *jwt.Service,
	mailer Mailer,
	clock clock.Clock,
	cfg config.OrderConfig,
) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		mailer:     mailer,
		clock:      clock,
		cfg:        cfg,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*readmodel.UserRM, error) {
	pw, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	entity, err := req.ToDomain(hash)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	created, err := a.userRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	a.mailer.SendWelcome(created.Email, created.Name)

	return created, nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error) {
	rm, hashedPassword, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !rm.IsActive {
		return "", nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(rm.Role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	token, err := a.jwtService.GenerateToken(rm.ID, role, rm.Name)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, rm, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.UserRM, error) {
	rm, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if !rm.IsActive {
		return nil, ErrUserInactive
	}

	return rm, nil
}

func (a *authUseCaseImpl) ForgotPassword(ctx context.Context, rawEmail string) error {
	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return errs.Mark(err, ErrDomainValidationFailed)
	}

	rm, _, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	code, err := otp.Generate()
	if err != nil {
		return errs.Wrap(err, "failed to generate reset code")
	}

	expiresAt := a.clock.Now().Add(a.cfg.OTPExpiry)
	if err := a.userRepo.SetResetOTP(ctx, email, code, expiresAt); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	a.mailer.SendPasswordResetOTP(rm.Email, rm.Name, code, a.cfg.OTPExpiry)

	return nil
}

func (a *authUseCaseImpl) ResetPassword(ctx context.Context, req reqdto.ResetPasswordRequest) error {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return errs.Mark(err, ErrDomainValidationFailed)
	}

	pw, err := user.NewPassword(req.NewPassword)
	if err != nil {
		return errs.Mark(err, ErrDomainValidationFailed)
	}

	storedOTP, expiresAt, err := a.userRepo.FindResetChallenge(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if storedOTP == nil || *storedOTP != req.OTP {
		return ErrInvalidOTP
	}
	if expiresAt == nil || a.clock.Now().After(*expiresAt) {
		return ErrOTPExpired
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return errs.Wrap(err, "failed to hash password")
	}

	if err := a.userRepo.ResetPassword(ctx, email, hash); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}
