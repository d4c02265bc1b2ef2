package dto

// CalculateScholarshipRequest is the body of POST /api/scholarship/calculate.
// Duration overrides the course's own duration when set. A missing
// percentage falls back to the configured default.
type CalculateScholarshipRequest struct {
	CourseName            string `json:"courseName" binding:"required"`
	Duration              string `json:"duration"`
	ScholarshipPercentage *int   `json:"scholarshipPercentage" binding:"omitempty,min=0,max=100"`
}
