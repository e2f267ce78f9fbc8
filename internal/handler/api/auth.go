package api

import (
	"net/http"

	"little-lemon/internal/domain"
	reqdto "little-lemon/internal/handler/dto/request"
	resdto "little-lemon/internal/handler/dto/response"
	"little-lemon/internal/handler/httperr"
	"little-lemon/internal/handler/middleware"
	"little-lemon/internal/pkg/errs"
	"little-lemon/internal/usecase/commands"
	"little-lemon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const detailBadCredentials = "Unable to log in with provided credentials."

type AuthHandler struct {
	cmds commands.AuthCommands
	q    queries.UserQueries
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries) *AuthHandler {
	return &AuthHandler{cmds: cmds, q: q}
}

// @Summary Register user
// @Description Create an account that can obtain a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Router /users [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", reqdto.FieldErrors(err))
		return
	}

	result, err := h.cmds.Register(c.Request.Context(), req.ToCommand())
	if err != nil {
		var verr *domain.ValidationError
		if errs.As(err, &verr) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", verr.Fields)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, detailInternal, nil)
		return
	}

	user, err := h.q.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, detailInternal, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUserView(user))
}

// @Summary Obtain token
// @Description Exchange username and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} httperr.Response
// @Router /token [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", reqdto.FieldErrors(err))
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials), errs.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusBadRequest, err, detailBadCredentials, nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, detailInternal, nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.TokenResponse{Token: result.Token})
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 403 {object} httperr.Response
// @Router /users/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusForbidden, nil, middleware.DetailNotAuthenticated, nil)
		return
	}

	user, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrUserNotFound), errs.Is(err, queries.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, middleware.DetailInvalidToken, nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, detailInternal, nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(user))
}
