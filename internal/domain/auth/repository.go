package auth

import "context"

// Repository abstracts user persistence.
type Repository interface {
	Create(ctx context.Context, username, passwordHash string, prefs Preferences) (User, error)
	GetByUsername(ctx context.Context, username string) (User, bool, error)
	UpdatePreferences(ctx context.Context, username string, prefs Preferences) error
}
