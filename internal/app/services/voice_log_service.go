package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/admitly/counselor/internal/app/models"
	"github.com/admitly/counselor/internal/app/repositories"
	"github.com/admitly/counselor/internal/pkg/apperrors"
	"github.com/admitly/counselor/internal/pkg/helpers"
	"github.com/rs/zerolog"
)

// VoiceLogService records and reads completed voice calls
type VoiceLogService struct {
	logRepo *repositories.VoiceCallLogRepository
	logger  zerolog.Logger
}

// NewVoiceLogService creates a new voice log service
func NewVoiceLogService(logRepo *repositories.VoiceCallLogRepository, logger zerolog.Logger) *VoiceLogService {
	return &VoiceLogService{
		logRepo: logRepo,
		logger:  logger,
	}
}

// RecordCall stores entry, stamping it with the current time when it has none.
func (s *VoiceLogService) RecordCall(ctx context.Context, entry *models.VoiceCallLog) (*models.VoiceCallLog, error) {
	if entry == nil {
		return nil, fmt.Errorf("%w: log entry is nil", apperrors.ErrValidationFailed)
	}
	if entry.Timestamp == "" {
		entry.Timestamp = helpers.NowTimestamp()
	}
	if entry.CoursesDiscussed == nil {
		entry.CoursesDiscussed = []string{}
	}

	created, err := s.logRepo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to record voice call: %w", err)
	}

	s.logger.Info().
		Int64("logID", created.ID).
		Str("sessionID", created.SessionID).
		Int("duration", created.Duration).
		Int("coursesDiscussed", len(created.CoursesDiscussed)).
		Msg("Voice call recorded")
	return created, nil
}

// GetLog retrieves a single log entry by id
func (s *VoiceLogService) GetLog(ctx context.Context, id int64) (*models.VoiceCallLog, error) {
	return s.logRepo.GetByID(ctx, id)
}

// GetLogsBySessionID returns every log recorded for sessionID
func (s *VoiceLogService) GetLogsBySessionID(ctx context.Context, sessionID string) ([]*models.VoiceCallLog, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, apperrors.ErrMissingSessionID
	}
	logs, err := s.logRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch voice logs: %w", err)
	}
	return logs, nil
}
