package controllers

import (
	"net/http"

	"github.com/admitly/counselor/internal/app/models/dto"
	"github.com/admitly/counselor/internal/app/services"
	"github.com/admitly/counselor/internal/middleware"
	"github.com/gin-gonic/gin"
)

// VoiceLogController exposes recorded voice calls
type VoiceLogController struct {
	voiceLogService *services.VoiceLogService
}

// NewVoiceLogController creates a new VoiceLogController
func NewVoiceLogController(voiceLogService *services.VoiceLogService) *VoiceLogController {
	return &VoiceLogController{voiceLogService: voiceLogService}
}

// GetLogsBySession lists the logs of the sessionId query parameter
// @Router /voice-logs [get]
func (c *VoiceLogController) GetLogsBySession(ctx *gin.Context) {
	logs, err := c.voiceLogService.GetLogsBySessionID(ctx.Request.Context(), ctx.Query("sessionId"))
	if err != nil {
		middleware.HandleAPIErrorWithMessage(ctx, err, "Failed to fetch voice logs")
		return
	}
	ctx.JSON(http.StatusOK, logs)
}

// GetLogByID retrieves a single log entry
// @Router /voice-logs/{id} [get]
func (c *VoiceLogController) GetLogByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid log ID")))
		return
	}

	entry, err := c.voiceLogService.GetLog(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIErrorWithMessage(ctx, err, "Failed to fetch voice logs")
		return
	}
	ctx.JSON(http.StatusOK, entry)
}
