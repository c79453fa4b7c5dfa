package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/tallyapp/tally/internal/auth"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectUserColumns = `id, email, name, password_hash, role, family_id, created_at, updated_at`

func (s *Store) CreateUser(ctx context.Context, u *auth.User) error {
	query := `
		INSERT INTO users (email, name, password_hash, role, family_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		u.Email,
		u.Name,
		u.PasswordHash,
		u.Role,
		u.FamilyID,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE id = $1`
	return s.scanUser(s.db.QueryRowContext(ctx, query, id))
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE email = $1`
	return s.scanUser(s.db.QueryRowContext(ctx, query, email))
}

func (s *Store) scanUser(row *sql.Row) (*auth.User, error) {
	var u auth.User

	var role string

	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &role, &u.FamilyID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, auth.ErrUserNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	u.Role = auth.Role(role)

	return &u, nil
}
