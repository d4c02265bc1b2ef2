// Package services holds the business logic between the HTTP controllers
// and the in-memory repositories.
//
// Services defined in this package:
//   - CourseService: catalog listing, lookup, search and admin creation
//   - ScholarshipService: discounted fee breakdowns
//   - VoiceLogService: call-log recording and lookup
//   - AssistantService: answers the voice assistant's function calls
//   - WebhookService: dispatches voice service events
//   - AuthService: admin login
package services

import (
	"github.com/admitly/counselor/internal/app/repositories"
	"github.com/admitly/counselor/internal/pkg/auth"
	"github.com/admitly/counselor/internal/pkg/callstate"
	"github.com/admitly/counselor/internal/pkg/metrics"
	"github.com/rs/zerolog"
)

// Services bundles every service the controllers depend on.
type Services struct {
	CourseService      *CourseService
	ScholarshipService *ScholarshipService
	VoiceLogService    *VoiceLogService
	AssistantService   *AssistantService
	WebhookService     *WebhookService
	AuthService        *AuthService
}

// Options carries the settings services need from configuration.
type Options struct {
	ScholarshipPercentage int
	Assistant             AssistantSettings
}

// NewServices wires the services together over repos.
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	tracker *callstate.Tracker,
	webhookMetrics *metrics.WebhookMetrics,
	opts Options,
	logger zerolog.Logger,
) *Services {
	scholarshipService := NewScholarshipService(repos.CourseRepository, opts.ScholarshipPercentage)
	voiceLogService := NewVoiceLogService(repos.VoiceCallLogRepository, logger)
	assistantService := NewAssistantService(repos.CourseRepository, opts.ScholarshipPercentage, opts.Assistant, logger)

	return &Services{
		CourseService:      NewCourseService(repos.CourseRepository, logger),
		ScholarshipService: scholarshipService,
		VoiceLogService:    voiceLogService,
		AssistantService:   assistantService,
		WebhookService:     NewWebhookService(assistantService, voiceLogService, tracker, webhookMetrics, logger),
		AuthService:        NewAuthService(repos.UserRepository, jwtService, logger),
	}
}
