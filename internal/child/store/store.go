package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/tallyapp/tally/internal/auth"
	"github.com/tallyapp/tally/internal/child"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanChild(s scanner) (*child.Child, error) {
	var c child.Child

	var goals []byte

	if err := s.Scan(
		&c.ID, &c.Name, &c.Age, &c.PINHash, &c.TotalPoints, &c.CurrentLevel,
		&goals, &c.OwnerID, &c.FamilyID, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(goals, &c.Goals); err != nil {
		return nil, fmt.Errorf("decoding goals: %w", err)
	}

	return &c, nil
}

const selectChildColumns = `
	c.id, c.name, c.age, c.pin_hash, c.total_points, c.current_level, c.goals,
	c.owner_id, c.family_id, c.active, c.created_at, c.updated_at
`

func (s *Store) CreateChild(ctx context.Context, c *child.Child) error {
	goals, err := json.Marshal(c.Goals)
	if err != nil {
		return fmt.Errorf("encoding goals: %w", err)
	}

	query := `
		INSERT INTO children (name, age, pin_hash, total_points, current_level, goals, owner_id, family_id, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	err = s.db.QueryRowContext(ctx, query,
		c.Name,
		c.Age,
		c.PINHash,
		c.TotalPoints,
		c.CurrentLevel,
		goals,
		c.OwnerID,
		c.FamilyID,
		c.Active,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating child: %w", err)
	}

	return nil
}

func (s *Store) GetChild(ctx context.Context, id uuid.UUID) (*child.Child, error) {
	query := `SELECT ` + selectChildColumns + `
		FROM children c
		WHERE c.id = $1`

	c, err := scanChild(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, child.ErrNotFound
		}

		return nil, fmt.Errorf("getting child: %w", err)
	}

	return c, nil
}

func (s *Store) ListChildren(ctx context.Context, ownerID uuid.UUID) ([]*child.Child, error) {
	query := `SELECT ` + selectChildColumns + `
		FROM children c
		WHERE c.owner_id = $1 AND c.active
		ORDER BY c.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing children: %w", err)
	}
	defer rows.Close()

	var children []*child.Child

	for rows.Next() {
		c, err := scanChild(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning child: %w", err)
		}

		children = append(children, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating child rows: %w", err)
	}

	return children, nil
}

func (s *Store) UpdateChild(ctx context.Context, c *child.Child) error {
	goals, err := json.Marshal(c.Goals)
	if err != nil {
		return fmt.Errorf("encoding goals: %w", err)
	}

	query := `
		UPDATE children
		SET name = $1, age = $2, pin_hash = $3, total_points = $4, current_level = $5,
		    goals = $6, active = $7, updated_at = NOW()
		WHERE id = $8
	`

	if _, err := s.db.ExecContext(ctx, query,
		c.Name,
		c.Age,
		c.PINHash,
		c.TotalPoints,
		c.CurrentLevel,
		goals,
		c.Active,
		c.ID,
	); err != nil {
		return fmt.Errorf("updating child: %w", err)
	}

	return nil
}

// DeleteChild hard-deletes the row. The service purges the child's ledger
// first; the schema's ON DELETE CASCADE backstops it.
func (s *Store) DeleteChild(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM children WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting child: %w", err)
	}

	return nil
}

// ChildCredential backs PIN login for the auth service.
func (s *Store) ChildCredential(ctx context.Context, id uuid.UUID) (*auth.ChildCredential, error) {
	query := `SELECT id, pin_hash, family_id, active FROM children WHERE id = $1`

	var cred auth.ChildCredential
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&cred.ID, &cred.PINHash, &cred.FamilyID, &cred.Active); err != nil {
		if err == sql.ErrNoRows {
			return nil, child.ErrNotFound
		}

		return nil, fmt.Errorf("getting child credential: %w", err)
	}

	return &cred, nil
}
