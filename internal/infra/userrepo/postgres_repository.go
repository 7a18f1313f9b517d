package userrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anvitha/outfit-advisor/internal/domain/auth"
)

// PostgresRepository persists users in Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create inserts a new user row.
func (r *PostgresRepository) Create(ctx context.Context, username, passwordHash string, prefs auth.Preferences) (auth.User, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, password_hash, age_group, gender)
		VALUES ($1, $2, $3, $4)
		RETURNING username, password_hash, age_group, gender, created_at
	`, username, passwordHash, prefs.AgeGroup, prefs.Gender)
	user, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 is unique_violation.
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return auth.User{}, auth.ErrUserExists
		}
		return auth.User{}, err
	}
	return user, nil
}

// GetByUsername fetches a user by username.
func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (auth.User, bool, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT username, password_hash, age_group, gender, created_at
		FROM users
		WHERE username = $1
		LIMIT 1
	`, username)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.User{}, false, nil
		}
		return auth.User{}, false, err
	}
	return user, true, nil
}

// UpdatePreferences updates the stored profile attributes.
func (r *PostgresRepository) UpdatePreferences(ctx context.Context, username string, prefs auth.Preferences) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users
		SET age_group = $2, gender = $3
		WHERE username = $1
	`, username, prefs.AgeGroup, prefs.Gender)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (auth.User, error) {
	var user auth.User
	var created time.Time
	if err := row.Scan(&user.Username, &user.PasswordHash, &user.Preferences.AgeGroup, &user.Preferences.Gender, &created); err != nil {
		return auth.User{}, err
	}
	user.CreatedAt = created.UTC()
	return user, nil
}

var _ auth.Repository = (*PostgresRepository)(nil)
