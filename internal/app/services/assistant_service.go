package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/admitly/counselor/internal/app/models"
	"github.com/admitly/counselor/internal/app/models/dto"
	"github.com/admitly/counselor/internal/app/repositories"
	"github.com/admitly/counselor/internal/pkg/currency"
	"github.com/admitly/counselor/internal/pkg/scholarship"
	"github.com/rs/zerolog"
)

// Functions the assistant can call.
const (
	FunctionGetCourseInfo      = "getCourseInfo"
	FunctionSearchCourses      = "searchCourses"
	FunctionGetScholarshipInfo = "getScholarshipInfo"
)

// Sentences spoken when a function has nothing to report.
const (
	courseInfoFallback   = "I'm afraid I don't have that information yet, but I can pass your query to our human counselor."
	searchFallback       = "I couldn't find any courses in that category. Let me check what other options we have available."
	scholarshipFallback  = "I need more information about which course you're interested in to calculate the scholarship details."
	unknownFunctionReply = "I'm not sure how to help with that. Could you please rephrase your question?"
)

// FunctionResult is the spoken answer to a function call plus what the
// call touched, for the session's call log.
type FunctionResult struct {
	Result                string
	Found                 bool
	CoursesDiscussed      []string
	ScholarshipCalculated bool
}

// AssistantService turns the assistant's function calls into sentences and
// builds the assistant definition served to the browser.
type AssistantService struct {
	courseRepo *repositories.CourseRepository
	percentage int
	settings   AssistantSettings
	logger     zerolog.Logger
}

// NewAssistantService creates a new AssistantService
func NewAssistantService(courseRepo *repositories.CourseRepository, percentage int, settings AssistantSettings, logger zerolog.Logger) *AssistantService {
	if !scholarship.ValidPercentage(percentage) {
		percentage = scholarship.DefaultPercentage
	}
	return &AssistantService{
		courseRepo: courseRepo,
		percentage: percentage,
		settings:   settings,
		logger:     logger,
	}
}

// HandleFunctionCall answers a single function call. It never fails: lookup
// errors and malformed arguments produce the function's fallback sentence.
func (s *AssistantService) HandleFunctionCall(ctx context.Context, call *dto.FunctionCall) FunctionResult {
	if call == nil {
		return FunctionResult{Result: unknownFunctionReply}
	}
	args := call.DecodeArguments()

	switch call.Name {
	case FunctionGetCourseInfo:
		return s.courseInfo(ctx, args.CourseName)
	case FunctionSearchCourses:
		return s.searchCourses(ctx, args.Category)
	case FunctionGetScholarshipInfo:
		return s.scholarshipInfo(ctx, args.CourseName)
	default:
		s.logger.Warn().Str("function", call.Name).Msg("Unknown assistant function")
		return FunctionResult{Result: unknownFunctionReply}
	}
}

func (s *AssistantService) lookup(ctx context.Context, name string) (*models.Course, bool) {
	if name == "" {
		return nil, false
	}
	course, err := s.courseRepo.GetCourseByName(ctx, name)
	if err != nil {
		s.logger.Debug().Err(err).Str("courseName", name).Msg("Course lookup missed")
		return nil, false
	}
	return course, true
}

func (s *AssistantService) courseInfo(ctx context.Context, name string) FunctionResult {
	course, ok := s.lookup(ctx, name)
	if !ok {
		return FunctionResult{Result: courseInfoFallback}
	}
	calc := scholarship.Calculate(course, s.percentage)
	return FunctionResult{
		Result: fmt.Sprintf(
			"I found information about %s. It's a %s program with an annual fee of %s. With our %d%% scholarship, you'll pay %s per year, saving %s annually.",
			course.Name, course.Duration,
			currency.Format(calc.OriginalFee), s.percentage,
			currency.Format(calc.FeeAfterScholarship), currency.Format(calc.AnnualSavings),
		),
		Found:            true,
		CoursesDiscussed: []string{course.Name},
	}
}

func (s *AssistantService) searchCourses(ctx context.Context, category string) FunctionResult {
	if category == "" {
		return FunctionResult{Result: searchFallback}
	}
	courses, err := s.courseRepo.GetCoursesByCategory(ctx, category)
	if err != nil || len(courses) == 0 {
		return FunctionResult{Result: searchFallback}
	}

	listed := make([]string, len(courses))
	for i, c := range courses {
		listed[i] = fmt.Sprintf("%s (%s)", c.Name, c.Duration)
	}
	return FunctionResult{
		Result: fmt.Sprintf(
			"Here are the available %s courses: %s. Would you like more details about any specific course?",
			category, strings.Join(listed, ", "),
		),
		Found: true,
	}
}

func (s *AssistantService) scholarshipInfo(ctx context.Context, name string) FunctionResult {
	course, ok := s.lookup(ctx, name)
	if !ok {
		return FunctionResult{Result: scholarshipFallback}
	}
	calc := scholarship.Calculate(course, s.percentage)
	return FunctionResult{
		Result: fmt.Sprintf(
			"For %s, the original annual fee is %s. With our %d%% scholarship, you'll pay %s per year, saving %s annually.",
			course.Name, currency.Format(calc.OriginalFee), s.percentage,
			currency.Format(calc.FeeAfterScholarship), currency.Format(calc.AnnualSavings),
		),
		Found:                 true,
		CoursesDiscussed:      []string{course.Name},
		ScholarshipCalculated: true,
	}
}
