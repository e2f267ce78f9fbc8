//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"little-lemon/internal/handler/dto/request"
	"little-lemon/tests/common/dbtest"
	"little-lemon/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/token",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token, "token missing in response")

	return body.Token
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, username string, roles ...string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, username, roles...)
	return LoginUser(t, router, username, dbtest.TestPassword)
}
