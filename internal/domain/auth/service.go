package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/anvitha/outfit-advisor/pkg/errors"
)

// Service exposes the credential store workflows. The recommendation
// engine never touches this directly; it only receives a resolved profile.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (UserView, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Authenticate(ctx context.Context, username, password string) error
	ValidateToken(ctx context.Context, token string) (Claims, error)
	Preferences(ctx context.Context, username string) (Preferences, error)
	SetPreferences(ctx context.Context, username string, prefs Preferences) error
}

var validAgeGroups = map[string]struct{}{
	"toddler": {}, "teen": {}, "adult": {}, "senior": {},
}

var validGenders = map[string]struct{}{
	"male": {}, "female": {}, "unisex": {},
}

type service struct {
	cfg    Config
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a Service instance.
func NewService(cfg Config, repo Repository, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		repo:   repo,
		logger: logger.With("component", "auth.service"),
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (UserView, error) {
	username, err := normalizeUsername(req.Username)
	if err != nil {
		return UserView{}, apperrors.Wrap("invalid_input", err.Error(), nil)
	}
	if err := validatePassword(req.Password); err != nil {
		return UserView{}, apperrors.Wrap("invalid_input", err.Error(), nil)
	}
	prefs, err := normalizePreferences(Preferences{AgeGroup: req.AgeGroup, Gender: req.Gender})
	if err != nil {
		return UserView{}, apperrors.Wrap("invalid_input", err.Error(), nil)
	}
	_, exists, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return UserView{}, apperrors.Wrap("auth_error", "failed to check user", err)
	}
	if exists {
		return UserView{}, apperrors.Wrap("user_exists", "username already registered", nil)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserView{}, apperrors.Wrap("auth_error", "failed to hash password", err)
	}
	user, err := s.repo.Create(ctx, username, string(hashed), prefs)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			return UserView{}, apperrors.Wrap("user_exists", "username already registered", err)
		}
		return UserView{}, apperrors.Wrap("auth_error", "failed to create user", err)
	}
	return toView(user), nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	username, err := normalizeUsername(req.Username)
	if err != nil {
		return LoginResponse{}, apperrors.Wrap("invalid_input", err.Error(), nil)
	}
	if strings.TrimSpace(req.Password) == "" {
		return LoginResponse{}, apperrors.Wrap("invalid_input", "password cannot be empty", nil)
	}
	user, found, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return LoginResponse{}, apperrors.Wrap("auth_error", "failed to fetch user", err)
	}
	if !found {
		return LoginResponse{}, apperrors.Wrap("invalid_credentials", "invalid username or password", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return LoginResponse{}, apperrors.Wrap("invalid_credentials", "invalid username or password", nil)
	}
	token, err := s.generateToken(user)
	if err != nil {
		return LoginResponse{}, err
	}
	return LoginResponse{Token: token, User: toView(user)}, nil
}

// Authenticate checks a username/password pair without issuing a token.
// The HTML form flow uses this directly.
func (s *service) Authenticate(ctx context.Context, username, password string) error {
	_, err := s.Login(ctx, LoginRequest{Username: username, Password: password})
	return err
}

func (s *service) ValidateToken(ctx context.Context, token string) (Claims, error) {
	if strings.TrimSpace(token) == "" {
		return Claims{}, apperrors.Wrap("invalid_token", "token missing", nil)
	}
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Claims{}, apperrors.Wrap("invalid_token", "token validation failed", err)
	}
	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return Claims{}, apperrors.Wrap("invalid_token", "token invalid", nil)
	}
	if claims.ExpiresAt == nil {
		return Claims{}, apperrors.Wrap("invalid_token", "token missing expiry", nil)
	}
	if claims.ExpiresAt.Time.Before(time.Now()) {
		return Claims{}, apperrors.Wrap("invalid_token", "token expired", nil)
	}
	return Claims{Username: claims.Username, ExpiresAt: claims.ExpiresAt.Time}, nil
}

func (s *service) Preferences(ctx context.Context, username string) (Preferences, error) {
	user, found, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return Preferences{}, apperrors.Wrap("auth_error", "failed to load profile", err)
	}
	if !found {
		return Preferences{}, apperrors.Wrap("user_not_found", "user not found", nil)
	}
	return user.Preferences, nil
}

func (s *service) SetPreferences(ctx context.Context, username string, prefs Preferences) error {
	normalized, err := normalizePreferences(prefs)
	if err != nil {
		return apperrors.Wrap("invalid_input", err.Error(), nil)
	}
	_, found, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return apperrors.Wrap("auth_error", "failed to load user", err)
	}
	if !found {
		return apperrors.Wrap("user_not_found", "user not found", nil)
	}
	if err := s.repo.UpdatePreferences(ctx, username, normalized); err != nil {
		return apperrors.Wrap("auth_error", "failed to update preferences", err)
	}
	return nil
}

func (s *service) generateToken(user User) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", apperrors.Wrap("auth_error", "failed to sign token", err)
	}
	return signed, nil
}

func toView(user User) UserView {
	return UserView{
		Username:    user.Username,
		Preferences: user.Preferences,
		CreatedAt:   user.CreatedAt,
	}
}

func normalizeUsername(raw string) (string, error) {
	username := strings.TrimSpace(strings.ToLower(raw))
	if username == "" {
		return "", errors.New("username cannot be empty")
	}
	if len(username) > 32 {
		return "", errors.New("username cannot exceed 32 characters")
	}
	return username, nil
}

// normalizePreferences lower-cases and validates the profile attributes,
// defaulting to adult/unisex when unset.
func normalizePreferences(prefs Preferences) (Preferences, error) {
	prefs.AgeGroup = strings.TrimSpace(strings.ToLower(prefs.AgeGroup))
	prefs.Gender = strings.TrimSpace(strings.ToLower(prefs.Gender))
	if prefs.AgeGroup == "" {
		prefs.AgeGroup = "adult"
	}
	if prefs.Gender == "" {
		prefs.Gender = "unisex"
	}
	if _, ok := validAgeGroups[prefs.AgeGroup]; !ok {
		return Preferences{}, fmt.Errorf("unknown age group %q", prefs.AgeGroup)
	}
	if _, ok := validGenders[prefs.Gender]; !ok {
		return Preferences{}, fmt.Errorf("unknown gender %q", prefs.Gender)
	}
	return prefs, nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}
