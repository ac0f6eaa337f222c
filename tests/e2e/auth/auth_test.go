//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	reqdto "food-preorder/internal/handler/dto/request"
	resdto "food-preorder/internal/handler/dto/response"
	"food-preorder/tests/common/authtest"
	"food-preorder/tests/common/dbtest"
	"food-preorder/tests/common/httptest"
	"food-preorder/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	meURL       = "/api/auth/me"
	forgotURL   = "/api/auth/forgot-password"
	resetURL    = "/api/auth/reset-password"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "customer@example.com", "customer")
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", "customer")

	_, err := s.DB.Exec(s.T().Context(),
		"UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestRegister() {
	tests := []struct {
		name           string
		body           reqdto.RegisterRequest
		expectedStatus int
	}{
		{
			name: "正常な登録",
			body: reqdto.RegisterRequest{
				Name: "Taro", Email: "new@example.com", Password: "password123",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "既存メールアドレスは409",
			body: reqdto.RegisterRequest{
				Name: "Taro", Email: "customer@example.com", Password: "password123",
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "短すぎるパスワードは400",
			body: reqdto.RegisterRequest{
				Name: "Taro", Email: "short@example.com", Password: "short",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "不正なメールアドレスは400",
			body: reqdto.RegisterRequest{
				Name: "Taro", Email: "not-an-email", Password: "password123",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, tt.body, "")
			require.Equal(s.T(), tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "正常なログイン",
			email:          "customer@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "間違ったパスワード",
			email:          "customer@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "非アクティブユーザー",
			email:          "inactive@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			body := reqdto.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, body, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var loginRes resdto.LoginResponse
				httptest.DecodeResponseBody(t, w.Body, &loginRes)
				require.NotEmpty(t, loginRes.AccessToken)
				require.NotNil(t, loginRes.User)
				require.Equal(t, tt.email, loginRes.User.Email)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("認証済みユーザーの情報取得", func() {
		token := authtest.LoginUser(s.T(), s.Router, "customer@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "customer@example.com")
		s.NotContains(w.Body.String(), "password")
	})

	s.Run("無効なトークンは401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "invalid-token")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("トークンなしは401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestPasswordReset() {
	s.Run("OTPで新しいパスワードに変更できる", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, forgotURL,
			reqdto.ForgotPasswordRequest{Email: "customer@example.com"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		// 発行されたOTPをDBから取り出す
		var otp string
		err := s.DB.QueryRow(t.Context(),
			"SELECT reset_otp FROM users WHERE email = 'customer@example.com'").Scan(&otp)
		require.NoError(t, err)
		require.Len(t, otp, 6)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, resetURL,
			reqdto.ResetPasswordRequest{
				Email: "customer@example.com", OTP: otp, NewPassword: "newpassword456",
			}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// 新しいパスワードでログインできる
		token := authtest.LoginUser(t, s.Router, "customer@example.com", "newpassword456")
		require.NotEmpty(t, token)
	})

	s.Run("間違ったOTPは401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, forgotURL,
			reqdto.ForgotPasswordRequest{Email: "customer@example.com"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, resetURL,
			reqdto.ResetPasswordRequest{
				Email: "customer@example.com", OTP: "000000", NewPassword: "newpassword456",
			}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("存在しないメールアドレスでも200を返す", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, forgotURL,
			reqdto.ForgotPasswordRequest{Email: "nobody@example.com"}, "")
		s.Equal(http.StatusOK, w.Code)
	})
}
