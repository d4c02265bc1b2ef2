package controllers

import (
	"net/http"

	"github.com/admitly/counselor/internal/app/models/dto"
	"github.com/admitly/counselor/internal/app/services"
	"github.com/admitly/counselor/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ScholarshipController handles scholarship calculations
type ScholarshipController struct {
	scholarshipService *services.ScholarshipService
}

// NewScholarshipController creates a new ScholarshipController
func NewScholarshipController(scholarshipService *services.ScholarshipService) *ScholarshipController {
	return &ScholarshipController{scholarshipService: scholarshipService}
}

// Calculate returns the fee breakdown for a course
// @Router /scholarship/calculate [post]
func (c *ScholarshipController) Calculate(ctx *gin.Context) {
	var req dto.CalculateScholarshipRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	calc, err := c.scholarshipService.Calculate(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIErrorWithMessage(ctx, err, "Failed to calculate scholarship")
		return
	}
	ctx.JSON(http.StatusOK, calc)
}
