package child

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/tallyapp/tally/internal/auth"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=child
type Repository interface {
	CreateChild(ctx context.Context, c *Child) error
	GetChild(ctx context.Context, id uuid.UUID) (*Child, error)
	ListChildren(ctx context.Context, ownerID uuid.UUID) ([]*Child, error)
	UpdateChild(ctx context.Context, c *Child) error
	DeleteChild(ctx context.Context, id uuid.UUID) error
}

// LedgerPurger hard-deletes a child's point history. Satisfied by the ledger
// store; kept as a narrow interface so the child package stays ignorant of
// ledger internals.
type LedgerPurger interface {
	PurgeForChild(ctx context.Context, childID uuid.UUID) (int64, error)
}

type Service struct {
	repo   Repository
	ledger LedgerPurger
}

func NewService(repo Repository, ledger LedgerPurger) *Service {
	return &Service{repo: repo, ledger: ledger}
}

var pinPattern = regexp.MustCompile(`^\d{4}$`)

var ErrInvalidPIN = fmt.Errorf("%w: pin must be exactly 4 digits", ErrInvalidArgument)

type CreateParams struct {
	Name     string
	Age      int
	PIN      string
	FamilyID *uuid.UUID
}

func (s *Service) Create(ctx context.Context, actor auth.Actor, params CreateParams) (*Child, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}

	if !pinPattern.MatchString(params.PIN) {
		return nil, ErrInvalidPIN
	}

	pinHash, err := auth.HashSecret(params.PIN)
	if err != nil {
		return nil, err
	}

	familyID := params.FamilyID
	if familyID == nil {
		familyID = actor.FamilyID
	}

	c := &Child{
		Name:         params.Name,
		Age:          params.Age,
		PINHash:      pinHash,
		TotalPoints:  0,
		CurrentLevel: Level(0),
		Goals:        []Goal{},
		OwnerID:      actor.ID,
		FamilyID:     familyID,
		Active:       true,
	}
	if err := s.repo.CreateChild(ctx, c); err != nil {
		return nil, fmt.Errorf("creating child: %w", err)
	}

	return c, nil
}

// Get returns a child visible to the actor. Children may read themselves;
// parents and admins read children they manage.
func (s *Service) Get(ctx context.Context, actor auth.Actor, id uuid.UUID) (*Child, error) {
	c, err := s.repo.GetChild(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor.Role == auth.RoleChild {
		if actor.ID != c.ID {
			return nil, ErrNotFound
		}

		return c, nil
	}

	if !actor.CanManage(c.OwnerID) {
		return nil, ErrNotFound
	}

	return c, nil
}

func (s *Service) List(ctx context.Context, actor auth.Actor) ([]*Child, error) {
	return s.repo.ListChildren(ctx, actor.ID)
}

type UpdateParams struct {
	Name   *string
	Age    *int
	PIN    *string
	Active *bool
}

func (s *Service) Update(ctx context.Context, actor auth.Actor, id uuid.UUID, params UpdateParams) (*Child, error) {
	c, err := s.ownedChild(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		c.Name = *params.Name
	}

	if params.Age != nil {
		c.Age = *params.Age
	}

	if params.PIN != nil {
		if !pinPattern.MatchString(*params.PIN) {
			return nil, ErrInvalidPIN
		}

		pinHash, err := auth.HashSecret(*params.PIN)
		if err != nil {
			return nil, err
		}

		c.PINHash = pinHash
	}

	if params.Active != nil {
		c.Active = *params.Active
	}

	if err := s.repo.UpdateChild(ctx, c); err != nil {
		return nil, fmt.Errorf("updating child: %w", err)
	}

	return c, nil
}

// Delete removes a child and its entire point history. The ledger purge runs
// first so a failure leaves the child (and a consistent history) in place.
func (s *Service) Delete(ctx context.Context, actor auth.Actor, id uuid.UUID) error {
	c, err := s.ownedChild(ctx, actor, id)
	if err != nil {
		return err
	}

	if _, err := s.ledger.PurgeForChild(ctx, c.ID); err != nil {
		return fmt.Errorf("purging ledger: %w", err)
	}

	if err := s.repo.DeleteChild(ctx, c.ID); err != nil {
		return fmt.Errorf("deleting child: %w", err)
	}

	return nil
}

type GoalParams struct {
	Title        string
	Description  string
	TargetPoints int
	Deadline     *time.Time
}

func (s *Service) AddGoal(ctx context.Context, actor auth.Actor, childID uuid.UUID, params GoalParams) (*Child, error) {
	if params.Title == "" || params.TargetPoints < 1 {
		return nil, fmt.Errorf("%w: goal needs a title and a target of at least 1 point", ErrInvalidArgument)
	}

	c, err := s.ownedChild(ctx, actor, childID)
	if err != nil {
		return nil, err
	}

	c.Goals = append(c.Goals, Goal{
		ID:           uuid.New(),
		Title:        params.Title,
		Description:  params.Description,
		TargetPoints: params.TargetPoints,
		Deadline:     params.Deadline,
	})

	if err := s.repo.UpdateChild(ctx, c); err != nil {
		return nil, fmt.Errorf("saving goal: %w", err)
	}

	return c, nil
}

type GoalUpdateParams struct {
	Title         *string
	Description   *string
	TargetPoints  *int
	Deadline      *time.Time
	ClearDeadline bool
}

func (s *Service) UpdateGoal(ctx context.Context, actor auth.Actor, childID, goalID uuid.UUID, params GoalUpdateParams) (*Child, error) {
	c, err := s.ownedChild(ctx, actor, childID)
	if err != nil {
		return nil, err
	}

	g := c.Goal(goalID)
	if g == nil {
		return nil, ErrGoalNotFound
	}

	if params.Title != nil {
		g.Title = *params.Title
	}

	if params.Description != nil {
		g.Description = *params.Description
	}

	if params.TargetPoints != nil {
		if *params.TargetPoints < 1 {
			return nil, fmt.Errorf("%w: goal target must be at least 1 point", ErrInvalidArgument)
		}

		g.TargetPoints = *params.TargetPoints

		// Raising a target never un-completes a goal; completion latches.
		if !g.IsCompleted && g.CurrentPoints >= g.TargetPoints {
			now := time.Now()
			g.IsCompleted = true
			g.CompletedAt = &now
		}
	}

	if params.ClearDeadline {
		g.Deadline = nil
	} else if params.Deadline != nil {
		g.Deadline = params.Deadline
	}

	if err := s.repo.UpdateChild(ctx, c); err != nil {
		return nil, fmt.Errorf("saving goal: %w", err)
	}

	return c, nil
}

func (s *Service) RemoveGoal(ctx context.Context, actor auth.Actor, childID, goalID uuid.UUID) (*Child, error) {
	c, err := s.ownedChild(ctx, actor, childID)
	if err != nil {
		return nil, err
	}

	if !c.removeGoal(goalID) {
		return nil, ErrGoalNotFound
	}

	if err := s.repo.UpdateChild(ctx, c); err != nil {
		return nil, fmt.Errorf("removing goal: %w", err)
	}

	return c, nil
}

func (s *Service) ownedChild(ctx context.Context, actor auth.Actor, id uuid.UUID) (*Child, error) {
	c, err := s.repo.GetChild(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.CanManage(c.OwnerID) {
		return nil, ErrForbidden
	}

	return c, nil
}
