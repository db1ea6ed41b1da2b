package handlers

import (
	"github.com/gin-gonic/gin"

	"bogenliga/internal/core/apperror"
	appctx "bogenliga/internal/core/context"
	"bogenliga/internal/domain/auth"
	"bogenliga/internal/infrastructure/http/v1/dto"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	*BaseHandler
	service *auth.Service
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(base *BaseHandler, service *auth.Service) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		service:     service,
	}
}

// SignIn handles POST /v1/user/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.service.SignIn(c.Request.Context(), req.ToCredentials())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromSignIn(result))
}

// Me handles GET /v1/user/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := appctx.GetUser(c.Request.Context())
	if user == nil {
		h.Error(c, apperror.NewUnauthorized("not authenticated"))
		return
	}
	h.OK(c, dto.FromUserContext(user))
}
