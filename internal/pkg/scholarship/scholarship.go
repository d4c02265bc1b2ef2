// Package scholarship computes discounted fees for catalog courses.
package scholarship

import (
	"math"
	"strings"

	"github.com/admitly/counselor/internal/app/models"
)

// DefaultPercentage is the discount applied uniformly across courses.
const DefaultPercentage = 20

// ParseTerm reads a free-text duration such as "3 yrs" or "3 + 1 yrs".
// "3 + 1" must be checked before "3" since it contains both. Anything
// unrecognised counts as a single year.
func ParseTerm(duration string) models.Term {
	switch {
	case strings.Contains(duration, "3 + 1"):
		return models.Term{Years: 3, ExtraYears: 1}
	case strings.Contains(duration, "3"):
		return models.Term{Years: 3}
	case strings.Contains(duration, "2"):
		return models.Term{Years: 2}
	default:
		return models.Term{Years: 1}
	}
}

// ValidPercentage reports whether pct is usable as a scholarship percentage.
func ValidPercentage(pct int) bool {
	return pct >= 0 && pct <= 100
}

// Calculate returns the fee breakdown for course at pct percent. The course
// term decides how many years the savings accumulate over.
func Calculate(course *models.Course, pct int) models.ScholarshipCalculation {
	return CalculateForTerm(course.AnnualFee, course.Term, pct)
}

// CalculateForTerm is Calculate for an explicit fee and term.
func CalculateForTerm(annualFee int64, term models.Term, pct int) models.ScholarshipCalculation {
	years := term.TotalYears()
	if years <= 0 {
		years = 1
	}

	fee := float64(annualFee)
	after := math.Round(fee * (1 - float64(pct)/100))
	savings := math.Round(fee - after)
	total := math.Round(savings * float64(years))

	return models.ScholarshipCalculation{
		OriginalFee:           annualFee,
		FeeAfterScholarship:   int64(after),
		AnnualSavings:         int64(savings),
		TotalSavings:          int64(total),
		ScholarshipPercentage: pct,
		Duration:              years,
	}
}
