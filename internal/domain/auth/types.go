package auth

import "time"

// Config drives authentication behavior.
type Config struct {
	Secret   string
	TokenTTL time.Duration
}

// Preferences is the profile record stored alongside the credentials.
type Preferences struct {
	AgeGroup string `json:"age_group"`
	Gender   string `json:"gender"`
}

// User represents a persisted account.
type User struct {
	Username     string      `json:"username"`
	PasswordHash string      `json:"-"`
	Preferences  Preferences `json:"preferences"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// RegisterRequest captures the registration payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	AgeGroup string `json:"age_group"`
	Gender   string `json:"gender"`
}

// LoginRequest captures login details.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse returns the signed token.
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// UserView trims sensitive fields.
type UserView struct {
	Username    string      `json:"username"`
	Preferences Preferences `json:"preferences"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Claims are extracted from the JWT token.
type Claims struct {
	Username  string
	ExpiresAt time.Time
}
