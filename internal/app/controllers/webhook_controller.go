package controllers

import (
	"net/http"

	"github.com/admitly/counselor/internal/app/models/dto"
	"github.com/admitly/counselor/internal/app/services"
	"github.com/admitly/counselor/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// WebhookController receives events from the voice service
type WebhookController struct {
	webhookService *services.WebhookService
	logger         zerolog.Logger
}

// NewWebhookController creates a new WebhookController
func NewWebhookController(webhookService *services.WebhookService, logger zerolog.Logger) *WebhookController {
	return &WebhookController{
		webhookService: webhookService,
		logger:         logger,
	}
}

// HandleWebhook answers function calls with {result} and acknowledges every
// other event with {success:true}
// @Router /vapi/webhook [post]
func (c *WebhookController) HandleWebhook(ctx *gin.Context) {
	var req dto.WebhookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Unreadable webhook payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	reply, err := c.webhookService.HandleEvent(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Error().Err(err).Str("type", req.Type).Msg("Vapi webhook error")
		middleware.HandleAPIErrorWithMessage(ctx, err, "Webhook processing failed")
		return
	}

	if reply.HasResult {
		ctx.JSON(http.StatusOK, dto.WebhookResultResponse{Result: reply.Result})
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// GetCallStatus reports the tracked state of a call
// @Router /calls/{sessionId}/status [get]
func (c *WebhookController) GetCallStatus(ctx *gin.Context) {
	sessionID := ctx.Param("sessionId")
	status, known := c.webhookService.CallStatus(sessionID)
	ctx.JSON(http.StatusOK, dto.CallStatusResponse{
		SessionID: sessionID,
		Status:    string(status),
		Known:     known,
	})
}
