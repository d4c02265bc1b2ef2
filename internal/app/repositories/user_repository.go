package repositories

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/admitly/counselor/internal/app/models"
	"github.com/admitly/counselor/internal/pkg/apperrors"
)

// UserRepository stores back-office accounts.
type UserRepository struct {
	mu         sync.RWMutex
	byID       map[int64]*models.User
	byUsername map[string]*models.User
	nextID     int64
}

// NewUserRepository creates an empty user store.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:       make(map[int64]*models.User),
		byUsername: make(map[string]*models.User),
		nextID:     1,
	}
}

// Create stores user, whose Password must already be hashed.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	key := strings.ToLower(user.Username)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[key]; exists {
		return nil, apperrors.ErrUsernameTaken
	}
	stored := *user
	stored.ID = r.nextID
	stored.CreatedAt = time.Now().UTC()
	r.nextID++
	r.byID[stored.ID] = &stored
	r.byUsername[key] = &stored

	out := stored
	return &out, nil
}

// GetByID returns the user with id or ErrUserNotFound.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

// GetByUsername looks a user up by username, ignoring case.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byUsername[strings.ToLower(username)]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	out := *u
	return &out, nil
}
