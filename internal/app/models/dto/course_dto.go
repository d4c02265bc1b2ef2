package dto

import "github.com/admitly/counselor/internal/app/models"

// CreateCourseRequest is the body of POST /api/courses.
type CreateCourseRequest struct {
	Name        string  `json:"name" binding:"required"`
	Duration    string  `json:"duration" binding:"required"`
	AnnualFee   *int64  `json:"annualFee" binding:"required,min=0"`
	Category    string  `json:"category" binding:"required"`
	Description *string `json:"description"`
}

// ToModel converts the request to a course ready for insertion.
func (r *CreateCourseRequest) ToModel() *models.Course {
	var fee int64
	if r.AnnualFee != nil {
		fee = *r.AnnualFee
	}
	return &models.Course{
		Name:        r.Name,
		Duration:    r.Duration,
		AnnualFee:   fee,
		Category:    r.Category,
		Description: r.Description,
	}
}
