package repositories

import (
	"context"
	"strings"
	"sync"

	"github.com/admitly/counselor/internal/app/models"
	"github.com/admitly/counselor/internal/pkg/apperrors"
	"github.com/admitly/counselor/internal/pkg/catalog"
	"github.com/admitly/counselor/internal/pkg/scholarship"
)

// CourseRepository is the in-memory course catalog.
type CourseRepository struct {
	mu      sync.RWMutex
	courses []*models.Course // insertion order
	byID    map[int64]*models.Course
	nextID  int64
}

// NewCourseRepository creates an empty catalog whose first id is 1.
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{
		byID:   make(map[int64]*models.Course),
		nextID: 1,
	}
}

// CreateCourse assigns the next id to course, stores a copy and returns it.
// Term and Tags are derived from Duration and Name unless a term was given.
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if course == nil {
		return nil, apperrors.NewBadRequestError("course is nil")
	}
	stored := course.Clone()
	stored.Name = strings.TrimSpace(stored.Name)
	if stored.Term.TotalYears() == 0 {
		stored.Term = scholarship.ParseTerm(stored.Duration)
	}
	stored.Tags = catalog.DeriveTags(stored.Name)

	r.mu.Lock()
	stored.ID = r.nextID
	r.nextID++
	r.courses = append(r.courses, stored)
	r.byID[stored.ID] = stored
	r.mu.Unlock()

	return stored.Clone(), nil
}

// GetCourseByID returns the course with id or ErrCourseNotFound.
func (r *CourseRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return c.Clone(), nil
}

// GetCourseByName returns the first course whose name contains name,
// ignoring case.
func (r *CourseRepository) GetCourseByName(ctx context.Context, name string) (*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := catalog.FindByName(r.courses, name)
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return c.Clone(), nil
}

// GetAllCourses returns every course in insertion order.
func (r *CourseRepository) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return r.snapshot(), nil
}

// SearchCourses returns courses whose name or category contains query.
func (r *CourseRepository) SearchCourses(ctx context.Context, query string) ([]*models.Course, error) {
	return catalog.Search(r.snapshot(), query), nil
}

// GetCoursesByCategory returns courses in category, including the derived
// "all" and "it" groupings.
func (r *CourseRepository) GetCoursesByCategory(ctx context.Context, category string) ([]*models.Course, error) {
	return catalog.FilterByCategory(r.snapshot(), category), nil
}

// Count returns the number of courses in the catalog.
func (r *CourseRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.courses)
}

// snapshot copies the catalog so callers can filter it without holding the lock.
func (r *CourseRepository) snapshot() []*models.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Course, len(r.courses))
	for i, c := range r.courses {
		out[i] = c.Clone()
	}
	return out
}
