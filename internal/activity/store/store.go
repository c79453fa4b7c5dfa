package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/tallyapp/tally/internal/activity"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanActivity(s scanner) (*activity.Activity, error) {
	var a activity.Activity

	if err := s.Scan(
		&a.ID, &a.Name, &a.Description, &a.Points, &a.OwnerID, &a.Active,
		&a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &a, nil
}

const selectActivityColumns = `id, name, description, points, owner_id, active, created_at, updated_at`

func (s *Store) CreateActivity(ctx context.Context, a *activity.Activity) error {
	query := `
		INSERT INTO activities (name, description, points, owner_id, active, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		a.Name,
		a.Description,
		a.Points,
		a.OwnerID,
		a.Active,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating activity: %w", err)
	}

	return nil
}

// GetActivity returns the row regardless of the active flag: deactivated
// activities stay readable to their owner so an update can reactivate them.
// Award resolution checks the flag itself.
func (s *Store) GetActivity(ctx context.Context, id uuid.UUID) (*activity.Activity, error) {
	query := `SELECT ` + selectActivityColumns + ` FROM activities WHERE id = $1`

	a, err := scanActivity(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, activity.ErrNotFound
		}

		return nil, fmt.Errorf("getting activity: %w", err)
	}

	return a, nil
}

func (s *Store) ListActivities(ctx context.Context, ownerID uuid.UUID) ([]*activity.Activity, error) {
	query := `SELECT ` + selectActivityColumns + `
		FROM activities
		WHERE owner_id = $1 AND active
		ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var activities []*activity.Activity

	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}

		activities = append(activities, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity rows: %w", err)
	}

	return activities, nil
}

func (s *Store) UpdateActivity(ctx context.Context, a *activity.Activity) error {
	query := `
		UPDATE activities
		SET name = $1, description = $2, points = $3, active = $4, updated_at = NOW()
		WHERE id = $5
	`

	if _, err := s.db.ExecContext(ctx, query, a.Name, a.Description, a.Points, a.Active, a.ID); err != nil {
		return fmt.Errorf("updating activity: %w", err)
	}

	return nil
}

// DeleteActivity deactivates rather than deletes so historical ledger
// entries keep a valid reference.
func (s *Store) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE activities
		SET active = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}

	return nil
}
