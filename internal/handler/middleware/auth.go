package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"little-lemon/internal/domain/auth"
	"little-lemon/internal/handler/httperr"
	"little-lemon/internal/pkg/errs"
	"little-lemon/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	logger         *slog.Logger
}

const (
	ctxUserIDKey    = "user_id"
	ctxPrincipalKey = "principal"
	ctxClaimsKey    = "jwt_claims"
)

const (
	DetailNotAuthenticated = "Authentication credentials were not provided."
	DetailInvalidToken     = "Invalid token."
	DetailManagerOnly      = "Only managers are allowed to access this endpoint"
)

// both schemes are accepted for the same token
var authSchemes = []string{"Bearer ", "Token "}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		logger:         logger,
	}
}

// RequireAuth rejects anonymous and invalid callers with 403.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c.GetHeader("Authorization"))
		if token == "" {
			httperr.AbortWithError(c, http.StatusForbidden, nil, DetailNotAuthenticated, nil)
			return
		}

		principal, err := m.tokenValidator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			if errs.Is(err, usecase.ErrUnauthenticated) {
				m.logger.Warn("Token validation failed in auth middleware", "error", err.Error())
				httperr.AbortWithError(c, http.StatusForbidden, err, DetailInvalidToken, nil)
				return
			}
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "A server error occurred.", nil)
			return
		}

		SetPrincipal(c, principal)
		c.Next()
	}
}

// RequireManager must run after RequireAuth. Roles come from this request's lookup.
func (m *AuthMiddleware) RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusForbidden, nil, DetailNotAuthenticated, nil)
			return
		}

		if !principal.IsManager() {
			httperr.AbortWithError(c, http.StatusForbidden, nil, DetailManagerOnly, nil)
			return
		}

		c.Next()
	}
}

func extractToken(header string) string {
	for _, scheme := range authSchemes {
		if strings.HasPrefix(header, scheme) {
			return strings.TrimSpace(header[len(scheme):])
		}
	}
	return ""
}

func SetPrincipal(c *gin.Context, p *auth.Principal) {
	c.Set(ctxPrincipalKey, p)
	c.Set(ctxUserIDKey, p.UserID)
	c.Set(ctxClaimsKey, map[string]any{
		"user_id": p.UserID.String(),
		"manager": p.IsManager(),
	})
}

func GetPrincipal(c *gin.Context) (*auth.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return nil, false
	}

	p, ok := v.(*auth.Principal)
	return p, ok && p != nil
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}
