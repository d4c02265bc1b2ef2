package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/admitly/counselor/internal/app/models"
	"github.com/admitly/counselor/internal/app/repositories"
	"github.com/admitly/counselor/internal/pkg/apperrors"
	"github.com/admitly/counselor/internal/pkg/auth"
)

// DefaultCourses is the catalog loaded at process start, in display order.
var DefaultCourses = []models.Course{
	{Name: "BBA (with industry certificates)", Duration: "3 yrs", AnnualFee: 112000, Category: models.CategoryUndergraduate},
	{Name: "BSc IT", Duration: "3 yrs", AnnualFee: 120000, Category: models.CategoryUndergraduate},
	{Name: "BCA", Duration: "3 yrs", AnnualFee: 110000, Category: models.CategoryUndergraduate},
	{Name: "BSc Computer Science", Duration: "3 yrs", AnnualFee: 115000, Category: models.CategoryUndergraduate},
	{Name: "BSc Mathematics", Duration: "3 yrs", AnnualFee: 105000, Category: models.CategoryUndergraduate},
	{Name: "BSc Physics", Duration: "3 yrs", AnnualFee: 108000, Category: models.CategoryUndergraduate},
	{Name: "MSc Computer Science", Duration: "2 yrs", AnnualFee: 140000, Category: models.CategoryPostgraduate},
	{Name: "MSc IT", Duration: "2 yrs", AnnualFee: 135000, Category: models.CategoryPostgraduate},
	{Name: "MSc Mathematics", Duration: "2 yrs", AnnualFee: 125000, Category: models.CategoryPostgraduate},
	{Name: "MSc Physics", Duration: "2 yrs", AnnualFee: 130000, Category: models.CategoryPostgraduate},
	{Name: "MCA", Duration: "3 + 1 yrs", AnnualFee: 145000, Category: models.CategoryPostgraduate},
	{Name: "MBA (Digital Marketing)", Duration: "2 yrs", AnnualFee: 180000, Category: models.CategoryPostgraduate},
	{Name: "Certificate in Web Development", Duration: "6 months", AnnualFee: 50000, Category: models.CategoryCertificate},
	{Name: "Certificate in Data Science", Duration: "8 months", AnnualFee: 60000, Category: models.CategoryCertificate},
	{Name: "Certificate in AI/ML", Duration: "10 months", AnnualFee: 70000, Category: models.CategoryCertificate},
}

// Courses inserts DefaultCourses into an empty catalog. A catalog that
// already holds courses is left alone.
func Courses(ctx context.Context, repo *repositories.CourseRepository, lgr zerolog.Logger) error {
	if repo.Count() > 0 {
		lgr.Debug().Int("count", repo.Count()).Msg("Course catalog already populated, skipping seed")
		return nil
	}

	for i := range DefaultCourses {
		if _, err := repo.CreateCourse(ctx, &DefaultCourses[i]); err != nil {
			return fmt.Errorf("seeding course %q: %w", DefaultCourses[i].Name, err)
		}
	}
	lgr.Info().Int("count", len(DefaultCourses)).Msg("Course catalog seeded")
	return nil
}

// AdminUser creates the back-office account when a password is configured.
// Without a password no admin exists and course creation stays closed.
func AdminUser(ctx context.Context, repo *repositories.UserRepository, username, password string, lgr zerolog.Logger) error {
	if password == "" {
		lgr.Warn().Msg("No admin password configured, course creation endpoint is disabled")
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	_, err = repo.Create(ctx, &models.User{Username: username, Password: hash})
	if err != nil && !errors.Is(err, apperrors.ErrUsernameTaken) {
		return fmt.Errorf("creating admin user: %w", err)
	}
	lgr.Info().Str("username", username).Msg("Admin user ready")
	return nil
}

// CreateDefaultData loads the catalog and the admin account.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories, adminUser, adminPassword string, lgr zerolog.Logger) error {
	var finalErr error
	if err := Courses(ctx, repos.CourseRepository, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error seeding courses")
		finalErr = errors.Join(finalErr, err)
	}
	if err := AdminUser(ctx, repos.UserRepository, adminUser, adminPassword, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error seeding admin user")
		finalErr = errors.Join(finalErr, err)
	}
	return finalErr
}
