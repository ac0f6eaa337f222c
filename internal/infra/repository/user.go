package repository

import (
	"context"
	"time"

	"food-preorder/internal/domain/user"
	"food-preorder/internal/infra"
	"food-preorder/internal/infra/db"
	"food-preorder/internal/infra/repository/converter"
	"food-preorder/internal/pkg/pgconv"
	"food-preorder/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserQueries interface {
	CreateUser(ctx context.Context, db db.DBTX, arg db.CreateUserParams) (db.Users, error)
	FindUserByEmail(ctx context.Context, db db.DBTX, email string) (db.Users, error)
	FindUserByID(ctx context.Context, db db.DBTX, id uuid.UUID) (db.Users, error)
	SetUserResetOTP(ctx context.Context, db db.DBTX, arg db.SetUserResetOTPParams) (int64, error)
	ResetUserPassword(ctx context.Context, db db.DBTX, arg db.ResetUserPasswordParams) (int64, error)
}

type UserRepository struct {
	queries UserQueries
	db      db.DBTX
}

func NewUserRepository(queries *db.Queries, pool db.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      pool,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*readmodel.UserRM, error) {
	row, err := r.queries.CreateUser(ctx, r.db, converter.UserToCreateParams(u))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create user", err)
	}
	return toUserRM(row), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email.Value())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return toAuthorizedUserRM(row), row.PasswordHash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.UserRM, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserRM(row), nil
}

// FindResetChallenge returns the stored OTP and its expiry for the address.
func (r *UserRepository) FindResetChallenge(ctx context.Context, email user.Email) (*string, *time.Time, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email.Value())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return pgconv.StringPtrFromPgtype(row.ResetOtp), pgconv.TimePtrFromPgtype(row.ResetOtpExpires), nil
}

func (r *UserRepository) SetResetOTP(ctx context.Context, email user.Email, otp string, expiresAt time.Time) error {
	affected, err := r.queries.SetUserResetOTP(ctx, r.db, db.SetUserResetOTPParams{
		Email:           email.Value(),
		ResetOtp:        pgconv.StringToPgtype(otp),
		ResetOtpExpires: pgconv.TimeToPgtype(expiresAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to set reset OTP", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) ResetPassword(ctx context.Context, email user.Email, passwordHash string) error {
	affected, err := r.queries.ResetUserPassword(ctx, r.db, db.ResetUserPasswordParams{
		Email:        email.Value(),
		PasswordHash: passwordHash,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to reset password", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func toAuthorizedUserRM(row db.Users) *readmodel.AuthorizedUserRM {
	return &readmodel.AuthorizedUserRM{
		ID:       row.ID,
		Name:     row.Name,
		Email:    row.Email,
		Role:     row.Role,
		IsActive: row.IsActive,
	}
}

func toUserRM(row db.Users) *readmodel.UserRM {
	return &readmodel.UserRM{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Phone:     pgconv.StringPtrFromPgtype(row.Phone),
		Role:      row.Role,
		IsActive:  row.IsActive,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
