// Package catalog holds the pure query functions run over the course list.
package catalog

import (
	"strings"

	"github.com/admitly/counselor/internal/app/models"
)

// itKeywords mark a course as part of the "IT & Computer Science" grouping.
var itKeywords = []string{"computer", "it", "bca", "mca"}

// DeriveTags computes the pseudo-categories for a course name. Repositories
// call it once at insert.
func DeriveTags(name string) []string {
	lower := strings.ToLower(name)
	var tags []string
	for _, kw := range itKeywords {
		if strings.Contains(lower, kw) {
			tags = append(tags, models.CategoryIT)
			break
		}
	}
	return tags
}

// Search returns the courses whose name or category contains query,
// ignoring case. Catalog order is preserved.
func Search(courses []*models.Course, query string) []*models.Course {
	q := strings.ToLower(query)
	result := make([]*models.Course, 0)
	for _, c := range courses {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Category), q) {
			result = append(result, c)
		}
	}
	return result
}

// FilterByCategory returns the courses in category. "all" returns the input
// as is and "it" selects the derived IT grouping regardless of the stored
// category. Any other value is compared case-insensitively.
func FilterByCategory(courses []*models.Course, category string) []*models.Course {
	switch category {
	case models.CategoryAll:
		return courses
	case models.CategoryIT:
		result := make([]*models.Course, 0)
		for _, c := range courses {
			if c.HasTag(models.CategoryIT) {
				result = append(result, c)
			}
		}
		return result
	}

	result := make([]*models.Course, 0)
	for _, c := range courses {
		if strings.EqualFold(c.Category, category) {
			result = append(result, c)
		}
	}
	return result
}

// FindByName returns the first course whose name contains name, ignoring
// case. Callers pass partial names as spoken aloud.
func FindByName(courses []*models.Course, name string) (*models.Course, bool) {
	n := strings.ToLower(name)
	for _, c := range courses {
		if strings.Contains(strings.ToLower(c.Name), n) {
			return c, true
		}
	}
	return nil, false
}
