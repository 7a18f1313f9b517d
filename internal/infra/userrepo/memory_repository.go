package userrepo

import (
	"context"
	"sync"
	"time"

	"github.com/anvitha/outfit-advisor/internal/domain/auth"
)

// MemoryRepository provides an in-memory user store for tests/dev.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]auth.User
}

// NewMemoryRepository constructs a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]auth.User)}
}

// Create stores the user record.
func (r *MemoryRepository) Create(_ context.Context, username, passwordHash string, prefs auth.Preferences) (auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[username]; exists {
		return auth.User{}, auth.ErrUserExists
	}
	user := auth.User{
		Username:     username,
		PasswordHash: passwordHash,
		Preferences:  prefs,
		CreatedAt:    time.Now().UTC(),
	}
	r.users[username] = user
	return user, nil
}

// GetByUsername returns a user by username.
func (r *MemoryRepository) GetByUsername(_ context.Context, username string) (auth.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[username]
	return user, ok, nil
}

// UpdatePreferences replaces the stored profile attributes.
func (r *MemoryRepository) UpdatePreferences(_ context.Context, username string, prefs auth.Preferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[username]
	if !ok {
		return nil
	}
	user.Preferences = prefs
	r.users[username] = user
	return nil
}

var _ auth.Repository = (*MemoryRepository)(nil)
