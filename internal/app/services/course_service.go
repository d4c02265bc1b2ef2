package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/admitly/counselor/internal/app/models"
	"github.com/admitly/counselor/internal/app/repositories"
	"github.com/admitly/counselor/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// CourseService handles catalog operations
type CourseService struct {
	courseRepo *repositories.CourseRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository, logger zerolog.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// validateCourse validates course data before insertion
func (s *CourseService) validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.Duration) == "" {
		return fmt.Errorf("%w: duration cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.Category) == "" {
		return fmt.Errorf("%w: category cannot be empty", apperrors.ErrValidationFailed)
	}
	if course.AnnualFee < 0 {
		return fmt.Errorf("%w: annual fee cannot be negative", apperrors.ErrValidationFailed)
	}
	return nil
}

// GetAllCourses returns the whole catalog
func (s *CourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAllCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

// GetCourseByID retrieves a course by id
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetCourseByID(ctx, id)
}

// GetCourseByName retrieves the first course whose name contains name
func (s *CourseService) GetCourseByName(ctx context.Context, name string) (*models.Course, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.ErrCourseNotFound
	}
	return s.courseRepo.GetCourseByName(ctx, strings.TrimSpace(name))
}

// SearchCourses matches query against course names and categories
func (s *CourseService) SearchCourses(ctx context.Context, query string) ([]*models.Course, error) {
	if query == "" {
		return nil, apperrors.ErrMissingSearchQuery
	}
	courses, err := s.courseRepo.SearchCourses(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search courses: %w", err)
	}
	return courses, nil
}

// GetCoursesByCategory lists the courses of a category
func (s *CourseService) GetCoursesByCategory(ctx context.Context, category string) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetCoursesByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to filter courses: %w", err)
	}
	return courses, nil
}

// CreateCourse validates and stores a new course
func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if err := s.validateCourse(course); err != nil {
		return nil, err
	}

	created, err := s.courseRepo.CreateCourse(ctx, course)
	if err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	s.logger.Info().
		Int64("courseID", created.ID).
		Str("name", created.Name).
		Msg("Course created")
	return created, nil
}
