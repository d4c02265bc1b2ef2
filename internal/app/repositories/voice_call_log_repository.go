package repositories

import (
	"context"
	"sync"

	"github.com/admitly/counselor/internal/app/models"
	"github.com/admitly/counselor/internal/pkg/apperrors"
)

// VoiceCallLogRepository is the append-only store of completed calls.
type VoiceCallLogRepository struct {
	mu     sync.RWMutex
	logs   []*models.VoiceCallLog
	nextID int64
}

// NewVoiceCallLogRepository creates an empty log store.
func NewVoiceCallLogRepository() *VoiceCallLogRepository {
	return &VoiceCallLogRepository{nextID: 1}
}

// Create stores a copy of entry under the next id and returns it.
func (r *VoiceCallLogRepository) Create(ctx context.Context, entry *models.VoiceCallLog) (*models.VoiceCallLog, error) {
	if entry == nil {
		return nil, apperrors.NewBadRequestError("voice call log is nil")
	}
	stored := entry.Clone()

	r.mu.Lock()
	stored.ID = r.nextID
	r.nextID++
	r.logs = append(r.logs, stored)
	r.mu.Unlock()

	return stored.Clone(), nil
}

// GetByID returns the log with id or ErrVoiceLogNotFound.
func (r *VoiceCallLogRepository) GetByID(ctx context.Context, id int64) (*models.VoiceCallLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Ids are dense and start at 1.
	if id < 1 || id > int64(len(r.logs)) {
		return nil, apperrors.ErrVoiceLogNotFound
	}
	return r.logs[id-1].Clone(), nil
}

// GetBySessionID returns every log recorded for sessionID in insertion order.
func (r *VoiceCallLogRepository) GetBySessionID(ctx context.Context, sessionID string) ([]*models.VoiceCallLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.VoiceCallLog, 0)
	for _, l := range r.logs {
		if l.SessionID == sessionID {
			result = append(result, l.Clone())
		}
	}
	return result, nil
}

// Count returns the number of stored logs.
func (r *VoiceCallLogRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.logs)
}
