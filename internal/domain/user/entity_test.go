//go:build unit

package user_test

import (
	"testing"

	"food-preorder/internal/domain/user"
	"food-preorder/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		expected, err := user.NewUser("Taro Tester", email, "hashed_password", nil)
		require.NoError(t, err)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Equal(t, user.RoleCustomer, actual.Role())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("名前検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "名前有りOK",
				mutate: func(b *builder.UserBuilder) { b.WithName("Hanako") },
			},
			{
				name:   "空の名前NG",
				mutate: func(b *builder.UserBuilder) { b.WithName("") },
				errIs:  user.ErrEmptyName,
			},
		})
	})

	t.Run("電話番号検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "電話番号有りOK",
				mutate: func(b *builder.UserBuilder) { b.WithPhone("090-1234-5678") },
			},
			{
				name:   "電話番号無しOK",
				mutate: func(b *builder.UserBuilder) { /* デフォルトはnil */ },
			},
		})
	})
}

func TestRole(t *testing.T) {
	t.Run("ロール検証", func(t *testing.T) {
		for _, valid := range []string{"customer", "staff", "admin"} {
			role, err := user.NewRole(valid)
			require.NoError(t, err)
			assert.Equal(t, valid, role.String())
		}

		_, err := user.NewRole("manager")
		require.ErrorIs(t, err, user.ErrInvalidRole)

		_, err = user.NewRole("")
		require.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("キッチン権限", func(t *testing.T) {
		assert.False(t, user.RoleCustomer.IsKitchen())
		assert.True(t, user.RoleStaff.IsKitchen())
		assert.True(t, user.RoleAdmin.IsKitchen())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
