package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tallyapp/tally/internal/message"
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

func scanMessage(s scanner) (*message.Message, error) {
	var m message.Message

	var kind string

	if err := s.Scan(
		&m.ID, &m.FamilyID, &m.SenderID, &m.RecipientID, &kind, &m.Body,
		&m.RemindAt, &m.ReadAt, &m.CreatedAt,
	); err != nil {
		return nil, err
	}

	m.Kind = message.Kind(kind)

	return &m, nil
}

const selectMessageColumns = `id, family_id, sender_id, recipient_id, kind, body, remind_at, read_at, created_at`

func (s *Store) CreateMessage(ctx context.Context, m *message.Message) error {
	query := `
		INSERT INTO messages (family_id, sender_id, recipient_id, kind, body, remind_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		m.FamilyID,
		m.SenderID,
		m.RecipientID,
		m.Kind,
		m.Body,
		m.RemindAt,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating message: %w", err)
	}

	return nil
}

func (s *Store) GetMessage(ctx context.Context, id uuid.UUID) (*message.Message, error) {
	query := `SELECT ` + selectMessageColumns + ` FROM messages WHERE id = $1`

	m, err := scanMessage(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, message.ErrNotFound
		}

		return nil, fmt.Errorf("getting message: %w", err)
	}

	return m, nil
}

func (s *Store) ListForFamily(ctx context.Context, familyID uuid.UUID) ([]*message.Message, error) {
	query := `SELECT ` + selectMessageColumns + `
		FROM messages
		WHERE family_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, familyID)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	defer rows.Close()

	var messages []*message.Message

	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}

		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating message rows: %w", err)
	}

	return messages, nil
}

func (s *Store) MarkRead(ctx context.Context, id uuid.UUID, at time.Time) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE messages SET read_at = $1 WHERE id = $2`, at, id); err != nil {
		return fmt.Errorf("marking message read: %w", err)
	}

	return nil
}

func (s *Store) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM messages WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting message: %w", err)
	}

	return nil
}
