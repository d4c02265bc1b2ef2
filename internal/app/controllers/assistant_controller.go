package controllers

import (
	"net/http"

	"github.com/admitly/counselor/internal/app/services"
	"github.com/admitly/counselor/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AssistantController serves the voice assistant definition
type AssistantController struct {
	assistantService *services.AssistantService
}

// NewAssistantController creates a new AssistantController
func NewAssistantController(assistantService *services.AssistantService) *AssistantController {
	return &AssistantController{assistantService: assistantService}
}

// GetConfig returns the inline assistant configuration
// @Router /assistant/config [get]
func (c *AssistantController) GetConfig(ctx *gin.Context) {
	cfg, err := c.assistantService.AssistantConfig(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIErrorWithMessage(ctx, err, "Failed to build assistant config")
		return
	}
	ctx.JSON(http.StatusOK, cfg)
}
