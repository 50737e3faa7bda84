package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/velaris/seoforge/internal/models"
)

// Default operator account created on an empty database.
const (
	bootstrapUsername = "admin"
	bootstrapPassword = "password"
)

// PostgresStore handles user persistence against PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate creates the users table if it doesn't exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username   VARCHAR(50)  UNIQUE NOT NULL,
			password   VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ  DEFAULT NOW()
		)
	`)
	return err
}

// Bootstrap inserts the default admin user when no such user exists yet.
// The password is bcrypt-hashed before it ever touches the database.
func (s *PostgresStore) Bootstrap(ctx context.Context) error {
	existing, err := s.GetUserByUsername(ctx, bootstrapUsername)
	if err != nil {
		return fmt.Errorf("bootstrap lookup: %w", err)
	}
	if existing != nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(bootstrapPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("bootstrap hash: %w", err)
	}
	if _, err := s.CreateUser(ctx, bootstrapUsername, string(hashed)); err != nil {
		return fmt.Errorf("bootstrap insert: %w", err)
	}
	log.Info().Str("username", bootstrapUsername).Msg("default admin user created")
	return nil
}

func (s *PostgresStore) CreateUser(ctx context.Context, username, hashedPassword string) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (username, password)
		 VALUES ($1, $2)
		 RETURNING id, username, created_at`,
		username, hashedPassword,
	).Scan(&u.ID, &u.Username, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}

// GetUserByUsername returns (nil, nil) when the user does not exist.
func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, password, created_at FROM users WHERE username = $1`, username,
	).Scan(&u.ID, &u.Username, &u.Password, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByID returns (nil, nil) when the user does not exist.
func (s *PostgresStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, password, created_at FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Username, &u.Password, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdatePassword replaces the stored bcrypt hash for a user.
func (s *PostgresStore) UpdatePassword(ctx context.Context, id, hashedPassword string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE users SET password = $1 WHERE id = $2`, hashedPassword, id,
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// Ping reports database liveness for the health endpoint.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
