package controllers

import (
	"net/http"

	"github.com/admitly/counselor/internal/app/models/dto"
	"github.com/admitly/counselor/internal/app/services"
	"github.com/admitly/counselor/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthController handles admin authentication
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login exchanges admin credentials for an access token
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	c.logger.Debug().Msg("Login endpoint called")

	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, token)
}
