//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"food-preorder/internal/handler/dto/request"
	"food-preorder/internal/handler/dto/response"
	"food-preorder/tests/common/dbtest"
	"food-preorder/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp response.LoginResponse
	httptest.DecodeResponseBody(t, w.Body, &resp)
	require.NotEmpty(t, resp.AccessToken, "Access token missing from login response")

	return resp.AccessToken
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, dbtest.TestPassword)
}
