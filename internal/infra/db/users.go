package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, name, email, password_hash, phone, role, reset_otp, reset_otp_expires, is_active, created_at`

func scanUser(row interface{ Scan(dest ...any) error }) (Users, error) {
	var u Users
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Phone,
		&u.Role,
		&u.ResetOtp,
		&u.ResetOtpExpires,
		&u.IsActive,
		&u.CreatedAt,
	)
	return u, err
}

type CreateUserParams struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Phone        pgtype.Text
	Role         string
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (Users, error) {
	row := db.QueryRow(ctx, `
		INSERT INTO users (id, name, email, password_hash, phone, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, true)
		RETURNING `+userColumns,
		arg.ID, arg.Name, arg.Email, arg.PasswordHash, arg.Phone, arg.Role,
	)
	return scanUser(row)
}

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (Users, error) {
	row := db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1 AND is_active = true`,
		email,
	)
	return scanUser(row)
}

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	row := db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1`,
		id,
	)
	return scanUser(row)
}

type SetUserResetOTPParams struct {
	Email           string
	ResetOtp        pgtype.Text
	ResetOtpExpires pgtype.Timestamptz
}

func (q *Queries) SetUserResetOTP(ctx context.Context, db DBTX, arg SetUserResetOTPParams) (int64, error) {
	tag, err := db.Exec(ctx, `
		UPDATE users
		SET reset_otp = $2, reset_otp_expires = $3
		WHERE email = $1 AND is_active = true`,
		arg.Email, arg.ResetOtp, arg.ResetOtpExpires,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type ResetUserPasswordParams struct {
	Email        string
	PasswordHash string
}

func (q *Queries) ResetUserPassword(ctx context.Context, db DBTX, arg ResetUserPasswordParams) (int64, error) {
	tag, err := db.Exec(ctx, `
		UPDATE users
		SET password_hash = $2, reset_otp = NULL, reset_otp_expires = NULL
		WHERE email = $1 AND is_active = true`,
		arg.Email, arg.PasswordHash,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
