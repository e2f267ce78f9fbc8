//go:build unit

package middleware_test

import (
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"little-lemon/internal/domain/auth"
	"little-lemon/internal/domain/user"
	"little-lemon/internal/handler/middleware"
	"little-lemon/internal/pkg/errs"
	"little-lemon/internal/usecase"
	"little-lemon/tests/common/httptest"
	usecasemock "little-lemon/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	mw := middleware.NewAuthMiddleware(s.mockValidator, slog.New(slog.DiscardHandler))

	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"detail": "ok"}) }
	s.router.GET("/auth", mw.RequireAuth(), ok)
	s.router.GET("/manager", mw.RequireAuth(), mw.RequireManager(), ok)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	guest := &auth.Principal{UserID: uuid.New(), Username: "guest"}

	s.Run("bearer scheme", func() {
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "abc").Return(guest, nil).Times(1)

		rec := httptest.PerformRequestWithAuthorization(s.T(), s.router, http.MethodGet, "/auth", nil, "Bearer abc")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("token scheme", func() {
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "abc").Return(guest, nil).Times(1)

		rec := httptest.PerformRequestWithAuthorization(s.T(), s.router, http.MethodGet, "/auth", nil, "Token abc")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("missing or unknown scheme is 403", func() {
		for _, header := range []string{"", "Basic abc", "Bearer "} {
			rec := httptest.PerformRequestWithAuthorization(s.T(), s.router, http.MethodGet, "/auth", nil, header)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, middleware.DetailNotAuthenticated)
		}
	})

	s.Run("invalid token is 403", func() {
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "bad").
			Return(nil, errs.Mark(errors.New("signature is invalid"), usecase.ErrUnauthenticated)).Times(1)

		rec := httptest.PerformRequestWithAuthorization(s.T(), s.router, http.MethodGet, "/auth", nil, "Bearer bad")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, middleware.DetailInvalidToken)
	})

	s.Run("lookup failure is 500", func() {
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "abc").Return(nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequestWithAuthorization(s.T(), s.router, http.MethodGet, "/auth", nil, "Bearer abc")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "A server error occurred.")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireManager() {
	s.Run("manager passes", func() {
		manager := &auth.Principal{UserID: uuid.New(), Username: "chef", Roles: user.Roles{user.RoleManager}}
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "abc").Return(manager, nil).Times(1)

		rec := httptest.PerformRequestWithAuthorization(s.T(), s.router, http.MethodGet, "/manager", nil, "Bearer abc")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("other roles are 403", func() {
		crew := &auth.Principal{UserID: uuid.New(), Username: "rider", Roles: user.Roles{"Delivery crew"}}
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "abc").Return(crew, nil).Times(1)

		rec := httptest.PerformRequestWithAuthorization(s.T(), s.router, http.MethodGet, "/manager", nil, "Bearer abc")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, middleware.DetailManagerOnly)
	})
}
