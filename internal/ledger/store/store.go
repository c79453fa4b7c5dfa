package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"

	"github.com/tallyapp/tally/internal/child"
	"github.com/tallyapp/tally/internal/ledger"
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

// scanEntry reads a ledger row from the scanner.
// Expected column order: id, child_id, activity_id, points, direction, date, reason, notes, awarded_by, active, created_at, updated_at
func scanEntry(s scanner) (*ledger.Entry, error) {
	var e ledger.Entry

	var direction string

	if err := s.Scan(
		&e.ID, &e.ChildID, &e.ActivityID, &e.Points, &direction, &e.Date,
		&e.Reason, &e.Notes, &e.AwardedBy, &e.Active,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	e.Direction = ledger.Direction(direction)

	return &e, nil
}

const selectEntryColumns = `
	e.id, e.child_id, e.activity_id, e.points, e.direction, e.date,
	e.reason, e.notes, e.awarded_by, e.active, e.created_at, e.updated_at
`

func (s *Store) GetEntry(ctx context.Context, id uuid.UUID) (*ledger.Entry, error) {
	query := `SELECT ` + selectEntryColumns + `
		FROM ledger_entries e
		WHERE e.id = $1 AND e.active`

	e, err := scanEntry(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrEntryNotFound
		}

		return nil, fmt.Errorf("getting entry: %w", err)
	}

	return e, nil
}

func (s *Store) ListForChild(ctx context.Context, childID uuid.UUID, page ledger.Page) ([]*ledger.Entry, error) {
	// Secondary order by id keeps paging stable when entries share a date.
	query := `SELECT ` + selectEntryColumns + `
		FROM ledger_entries e
		WHERE e.child_id = $1 AND e.active
		ORDER BY e.date DESC, e.id DESC
		LIMIT $2 OFFSET $3`

	rows, err := s.db.QueryContext(ctx, query, childID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	var entries []*ledger.Entry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entry rows: %w", err)
	}

	return entries, nil
}

func (s *Store) PurgeForChild(ctx context.Context, childID uuid.UUID) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM ledger_entries WHERE child_id = $1`, childID)
	if err != nil {
		return 0, fmt.Errorf("purging entries: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting purged entries: %w", err)
	}

	return n, nil
}

// childLockKey derives the advisory lock key that serializes balance
// mutations for one child.
func childLockKey(childID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write(childID[:])

	return int64(h.Sum64())
}

type awardTx struct {
	tx      *sql.Tx
	childID uuid.UUID
}

// BeginAward opens a transaction and takes the per-child advisory lock, so
// two concurrent awards for the same child cannot interleave their
// read-modify-write of the balance.
func (s *Store) BeginAward(ctx context.Context, childID uuid.UUID) (ledger.AwardTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning award tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", childLockKey(childID)); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring child lock: %w", err)
	}

	return &awardTx{tx: dbTx, childID: childID}, nil
}

func (t *awardTx) Commit() error   { return t.tx.Commit() }
func (t *awardTx) Rollback() error { return t.tx.Rollback() }

func (t *awardTx) Child(ctx context.Context) (*child.Child, error) {
	query := `
		SELECT id, name, age, pin_hash, total_points, current_level, goals,
		       owner_id, family_id, active, created_at, updated_at
		FROM children
		WHERE id = $1`

	var c child.Child

	var goals []byte

	err := t.tx.QueryRowContext(ctx, query, t.childID).Scan(
		&c.ID, &c.Name, &c.Age, &c.PINHash, &c.TotalPoints, &c.CurrentLevel,
		&goals, &c.OwnerID, &c.FamilyID, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, child.ErrNotFound
		}

		return nil, fmt.Errorf("getting child: %w", err)
	}

	if err := json.Unmarshal(goals, &c.Goals); err != nil {
		return nil, fmt.Errorf("decoding goals: %w", err)
	}

	return &c, nil
}

func (t *awardTx) InsertEntry(ctx context.Context, e *ledger.Entry) error {
	query := `
		INSERT INTO ledger_entries (child_id, activity_id, points, direction, date, reason, notes, awarded_by, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	err := t.tx.QueryRowContext(ctx, query,
		e.ChildID,
		e.ActivityID,
		e.Points,
		e.Direction,
		e.Date,
		e.Reason,
		e.Notes,
		e.AwardedBy,
		e.Active,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting entry: %w", err)
	}

	return nil
}

func (t *awardTx) SaveChild(ctx context.Context, c *child.Child) error {
	goals, err := json.Marshal(c.Goals)
	if err != nil {
		return fmt.Errorf("encoding goals: %w", err)
	}

	query := `
		UPDATE children
		SET total_points = $1, current_level = $2, goals = $3, updated_at = NOW()
		WHERE id = $4
	`

	if _, err := t.tx.ExecContext(ctx, query, c.TotalPoints, c.CurrentLevel, goals, c.ID); err != nil {
		return fmt.Errorf("saving child balance: %w", err)
	}

	return nil
}

func (t *awardTx) SumActive(ctx context.Context) (int, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN direction = 'add' THEN points ELSE -points END), 0)
		FROM ledger_entries
		WHERE child_id = $1 AND active
	`

	var total int
	if err := t.tx.QueryRowContext(ctx, query, t.childID).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing entries: %w", err)
	}

	return total, nil
}

func (t *awardTx) DeactivateEntry(ctx context.Context, entryID uuid.UUID) error {
	query := `
		UPDATE ledger_entries
		SET active = FALSE, updated_at = NOW()
		WHERE id = $1 AND child_id = $2
	`

	res, err := t.tx.ExecContext(ctx, query, entryID, t.childID)
	if err != nil {
		return fmt.Errorf("deactivating entry: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("counting deactivated entries: %w", err)
	}

	if n == 0 {
		return ledger.ErrEntryNotFound
	}

	return nil
}

func (t *awardTx) DeactivateEntries(ctx context.Context) (int64, error) {
	query := `
		UPDATE ledger_entries
		SET active = FALSE, updated_at = NOW()
		WHERE child_id = $1 AND active
	`

	res, err := t.tx.ExecContext(ctx, query, t.childID)
	if err != nil {
		return 0, fmt.Errorf("deactivating entries: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deactivated entries: %w", err)
	}

	return n, nil
}

func (t *awardTx) PurgeEntries(ctx context.Context) (int64, error) {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM ledger_entries WHERE child_id = $1`, t.childID)
	if err != nil {
		return 0, fmt.Errorf("purging entries: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting purged entries: %w", err)
	}

	return n, nil
}
