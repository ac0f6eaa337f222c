package converter

import (
	"food-preorder/internal/domain/user"
	"food-preorder/internal/infra/db"
	"food-preorder/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) db.CreateUserParams {
	return db.CreateUserParams{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Phone:        pgconv.StringPtrToPgtype(u.Phone()),
		Role:         u.Role().String(),
	}
}
