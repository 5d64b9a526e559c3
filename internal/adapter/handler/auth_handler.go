package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/boardline/boardline-backend/internal/adapter/handler/dto/request"
	"github.com/boardline/boardline-backend/internal/adapter/handler/dto/response"
	"github.com/boardline/boardline-backend/internal/domain"
	"github.com/boardline/boardline-backend/internal/pkg/httputil"
	"github.com/boardline/boardline-backend/internal/usecase/auth"
)

type AuthHandler struct {
	authSvc AuthService
}

func NewAuthHandler(authSvc AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	tokens, admin, err := h.authSvc.Login(c.Request.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			httputil.ErrorWithCode(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.LoginFromResult(tokens, admin))
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req request.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	tokens, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenExpired):
			httputil.ErrorWithCode(c, http.StatusUnauthorized, "TOKEN_EXPIRED", "refresh token expired")
		case errors.Is(err, domain.ErrTokenRevoked):
			httputil.ErrorWithCode(c, http.StatusUnauthorized, "TOKEN_REVOKED", "refresh token revoked")
		case errors.Is(err, domain.ErrTokenInvalid):
			httputil.ErrorWithCode(c, http.StatusUnauthorized, "TOKEN_INVALID", "invalid refresh token")
		default:
			httputil.InternalError(c)
		}
		return
	}

	httputil.OK(c, response.TokensFromPair(tokens))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	adminID := httputil.GetAdminID(c)

	if err := h.authSvc.Logout(c.Request.Context(), adminID); err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.NoContent(c)
}
