package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tallyapp/tally/internal/activity"
	"github.com/tallyapp/tally/internal/auth"
	"github.com/tallyapp/tally/internal/child"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	GetEntry(ctx context.Context, id uuid.UUID) (*Entry, error)
	ListForChild(ctx context.Context, childID uuid.UUID, page Page) ([]*Entry, error)
	PurgeForChild(ctx context.Context, childID uuid.UUID) (int64, error)

	// BeginAward opens a transaction that serializes all balance mutations
	// for one child: entry insert, balance write, and goal writes commit or
	// roll back together.
	BeginAward(ctx context.Context, childID uuid.UUID) (AwardTx, error)
}

// AwardTx is a per-child serialized unit of work. Concurrent awards for the
// same child queue behind each other; different children never block.
type AwardTx interface {
	Child(ctx context.Context) (*child.Child, error)
	InsertEntry(ctx context.Context, e *Entry) error
	SaveChild(ctx context.Context, c *child.Child) error

	// SumActive aggregates the child's active entries: +points for add,
	// -points for remove. The authoritative balance.
	SumActive(ctx context.Context) (int, error)

	DeactivateEntry(ctx context.Context, entryID uuid.UUID) error
	DeactivateEntries(ctx context.Context) (int64, error)
	PurgeEntries(ctx context.Context) (int64, error)

	Commit() error
	Rollback() error
}

// ActivityCatalog resolves activity references to configured point values.
type ActivityCatalog interface {
	GetActivity(ctx context.Context, id uuid.UUID) (*activity.Activity, error)
}

// ChildDirectory is the read-side view of children the service needs for
// scoping checks and bulk operations. Satisfied by the child store.
type ChildDirectory interface {
	GetChild(ctx context.Context, id uuid.UUID) (*child.Child, error)
	ListChildren(ctx context.Context, ownerID uuid.UUID) ([]*child.Child, error)
}

// Service orchestrates point awards: validate, resolve the magnitude,
// persist the entry, project the balance, update goals, respond. Validation
// failures happen before any write; the transactional store makes the write
// steps atomic per child.
type Service struct {
	repo       Repository
	activities ActivityCatalog
	children   ChildDirectory
	now        func() time.Time
}

func NewService(repo Repository, activities ActivityCatalog, children ChildDirectory) *Service {
	return &Service{
		repo:       repo,
		activities: activities,
		children:   children,
		now:        time.Now,
	}
}

type AwardParams struct {
	ChildID uuid.UUID
	Source  Source
	Reason  string
	Notes   string
}

// Award is what every balance mutation hands back: the ledger entry that
// recorded it and the child with its reprojected balance.
type Award struct {
	Entry *Entry
	Child *child.Child
}

func (s *Service) AddPoints(ctx context.Context, actor auth.Actor, params AwardParams) (*Award, error) {
	return s.award(ctx, actor, params, DirectionAdd)
}

func (s *Service) RemovePoints(ctx context.Context, actor auth.Actor, params AwardParams) (*Award, error) {
	return s.award(ctx, actor, params, DirectionRemove)
}

func (s *Service) award(ctx context.Context, actor auth.Actor, params AwardParams, dir Direction) (*Award, error) {
	// Resolve the magnitude before touching storage so an invalid request
	// never writes anything.
	points, activityID, err := s.resolve(ctx, actor, params.Source)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginAward(ctx, params.ChildID)
	if err != nil {
		return nil, fmt.Errorf("begin award: %w", err)
	}
	defer tx.Rollback()

	c, err := tx.Child(ctx)
	if err != nil {
		return nil, err
	}

	if !c.Active {
		return nil, child.ErrNotFound
	}

	if !actor.CanManage(c.OwnerID) {
		return nil, ErrForbidden
	}

	now := s.now()

	entry := &Entry{
		ChildID:    c.ID,
		ActivityID: activityID,
		Points:     points,
		Direction:  dir,
		Date:       now,
		Reason:     params.Reason,
		Notes:      params.Notes,
		AwardedBy:  actor.ID,
		Active:     true,
	}
	if err := tx.InsertEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("persist entry: %w", err)
	}

	c.ApplyDelta(points * dir.Sign())

	// Goals only track cumulative positive effort; removals never touch
	// their accumulators.
	if dir == DirectionAdd {
		c.AccrueGoals(points, now)
	}

	if err := tx.SaveChild(ctx, c); err != nil {
		return nil, fmt.Errorf("project balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit award: %w", err)
	}

	return &Award{Entry: entry, Child: c}, nil
}

func (s *Service) resolve(ctx context.Context, actor auth.Actor, src Source) (int, *uuid.UUID, error) {
	switch src.kind {
	case sourceExplicit:
		if src.points < 1 {
			return 0, nil, ErrInvalidMagnitude
		}

		return src.points, nil, nil

	case sourceActivity:
		a, err := s.activities.GetActivity(ctx, src.activityID)
		if err != nil {
			return 0, nil, err
		}

		// Another family's activity reads as missing, and deactivated
		// activities no longer resolve.
		if !a.Active || !actor.CanManage(a.OwnerID) {
			return 0, nil, activity.ErrNotFound
		}

		if a.Points < 1 {
			return 0, nil, ErrInvalidMagnitude
		}

		id := a.ID

		return a.Points, &id, nil

	default:
		return 0, nil, ErrNoMagnitude
	}
}

// DeleteEntry soft-deletes one ledger entry and rebuilds the child's balance
// from the remaining active entries. The full rebuild, not an incremental
// adjustment, is what guarantees the entry's contribution is excluded
// exactly once.
func (s *Service) DeleteEntry(ctx context.Context, actor auth.Actor, entryID uuid.UUID) (*child.Child, error) {
	entry, err := s.repo.GetEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginAward(ctx, entry.ChildID)
	if err != nil {
		return nil, fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback()

	c, err := tx.Child(ctx)
	if err != nil {
		return nil, err
	}

	if !actor.CanManage(c.OwnerID) {
		return nil, ErrForbidden
	}

	if err := tx.DeactivateEntry(ctx, entryID); err != nil {
		return nil, fmt.Errorf("deactivating entry: %w", err)
	}

	if err := s.rebuild(ctx, tx, c); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit delete: %w", err)
	}

	return c, nil
}

// Recompute is the explicit repair operation: rebuild one child's balance
// from ledger truth. It exists because an award that fails between the
// entry write and the projection write leaves the balance stale.
func (s *Service) Recompute(ctx context.Context, actor auth.Actor, childID uuid.UUID) (*child.Child, error) {
	tx, err := s.repo.BeginAward(ctx, childID)
	if err != nil {
		return nil, fmt.Errorf("begin recompute: %w", err)
	}
	defer tx.Rollback()

	c, err := tx.Child(ctx)
	if err != nil {
		return nil, err
	}

	if !actor.CanManage(c.OwnerID) {
		return nil, ErrForbidden
	}

	if err := s.rebuild(ctx, tx, c); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit recompute: %w", err)
	}

	return c, nil
}

func (s *Service) rebuild(ctx context.Context, tx AwardTx, c *child.Child) error {
	total, err := tx.SumActive(ctx)
	if err != nil {
		return fmt.Errorf("summing ledger: %w", err)
	}

	c.SetBalance(total)

	if err := tx.SaveChild(ctx, c); err != nil {
		return fmt.Errorf("saving balance: %w", err)
	}

	return nil
}

// History lists a child's active entries, newest first. Children may read
// their own history; parents and admins read children they manage.
func (s *Service) History(ctx context.Context, actor auth.Actor, childID uuid.UUID, page Page) ([]*Entry, error) {
	c, err := s.children.GetChild(ctx, childID)
	if err != nil {
		return nil, err
	}

	if actor.Role == auth.RoleChild {
		if actor.ID != c.ID {
			return nil, child.ErrNotFound
		}
	} else if !actor.CanManage(c.OwnerID) {
		return nil, ErrForbidden
	}

	return s.repo.ListForChild(ctx, childID, page.normalize())
}

// WipeResult reports how far a bulk wipe got. Wipes are atomic per child
// but not across children: a failure part-way leaves earlier children
// already reset.
type WipeResult struct {
	Children int
	Entries  int64
}

// WipeAllPoints soft-deletes every owned child's entries and zeroes their
// balances. History stays recoverable in storage.
func (s *Service) WipeAllPoints(ctx context.Context, actor auth.Actor) (WipeResult, error) {
	return s.wipe(ctx, actor, false)
}

// WipeAllHistory hard-deletes every owned child's entries and zeroes their
// balances. Irreversible.
func (s *Service) WipeAllHistory(ctx context.Context, actor auth.Actor) (WipeResult, error) {
	return s.wipe(ctx, actor, true)
}

func (s *Service) wipe(ctx context.Context, actor auth.Actor, purge bool) (WipeResult, error) {
	if actor.Role == auth.RoleChild {
		return WipeResult{}, ErrForbidden
	}

	children, err := s.children.ListChildren(ctx, actor.ID)
	if err != nil {
		return WipeResult{}, fmt.Errorf("listing children: %w", err)
	}

	var result WipeResult

	for _, c := range children {
		n, err := s.wipeChild(ctx, c.ID, purge)
		if err != nil {
			return result, fmt.Errorf("wiping child %s after %d of %d: %w", c.ID, result.Children, len(children), err)
		}

		result.Children++
		result.Entries += n
	}

	return result, nil
}

func (s *Service) wipeChild(ctx context.Context, childID uuid.UUID, purge bool) (int64, error) {
	tx, err := s.repo.BeginAward(ctx, childID)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	c, err := tx.Child(ctx)
	if err != nil {
		return 0, err
	}

	var n int64
	if purge {
		n, err = tx.PurgeEntries(ctx)
	} else {
		n, err = tx.DeactivateEntries(ctx)
	}

	if err != nil {
		return 0, err
	}

	c.SetBalance(0)

	if err := tx.SaveChild(ctx, c); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return n, nil
}
