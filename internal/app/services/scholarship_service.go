package services

import (
	"context"
	"strings"

	"github.com/admitly/counselor/internal/app/models"
	"github.com/admitly/counselor/internal/app/models/dto"
	"github.com/admitly/counselor/internal/app/repositories"
	"github.com/admitly/counselor/internal/pkg/apperrors"
	"github.com/admitly/counselor/internal/pkg/scholarship"
)

// ScholarshipService computes discounted fees for catalog courses
type ScholarshipService struct {
	courseRepo        *repositories.CourseRepository
	defaultPercentage int
}

// NewScholarshipService creates a new scholarship service. An out of range
// default falls back to scholarship.DefaultPercentage.
func NewScholarshipService(courseRepo *repositories.CourseRepository, defaultPercentage int) *ScholarshipService {
	if !scholarship.ValidPercentage(defaultPercentage) {
		defaultPercentage = scholarship.DefaultPercentage
	}
	return &ScholarshipService{
		courseRepo:        courseRepo,
		defaultPercentage: defaultPercentage,
	}
}

// DefaultPercentage returns the percentage applied when none is requested.
func (s *ScholarshipService) DefaultPercentage() int {
	return s.defaultPercentage
}

// Calculate looks up the requested course and returns its fee breakdown.
// A duration in the request replaces the course's own term.
func (s *ScholarshipService) Calculate(ctx context.Context, req *dto.CalculateScholarshipRequest) (*models.ScholarshipCalculation, error) {
	pct := s.defaultPercentage
	if req.ScholarshipPercentage != nil {
		pct = *req.ScholarshipPercentage
	}
	if !scholarship.ValidPercentage(pct) {
		return nil, apperrors.ErrInvalidPercentage
	}

	name := strings.TrimSpace(req.CourseName)
	if name == "" {
		return nil, apperrors.ErrCourseNotFound
	}
	course, err := s.courseRepo.GetCourseByName(ctx, name)
	if err != nil {
		return nil, err
	}

	term := course.Term
	if d := strings.TrimSpace(req.Duration); d != "" {
		term = scholarship.ParseTerm(d)
	}

	calc := scholarship.CalculateForTerm(course.AnnualFee, term, pct)
	return &calc, nil
}
