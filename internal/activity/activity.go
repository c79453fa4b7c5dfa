package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tallyapp/tally/internal/auth"
)

var (
	ErrNotFound        = errors.New("activity not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Activity is an award template: a named behavior with a configured point
// value, so parents don't type magnitudes for routine chores.
type Activity struct {
	ID          uuid.UUID
	Name        string
	Description string
	Points      int
	OwnerID     uuid.UUID
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

//go:generate mockgen -source=activity.go -destination=repository_mock.go -package=activity
type Repository interface {
	CreateActivity(ctx context.Context, a *Activity) error
	GetActivity(ctx context.Context, id uuid.UUID) (*Activity, error)
	ListActivities(ctx context.Context, ownerID uuid.UUID) ([]*Activity, error)
	UpdateActivity(ctx context.Context, a *Activity) error
	DeleteActivity(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name        string
	Description string
	Points      int
}

func (s *Service) Create(ctx context.Context, actor auth.Actor, params CreateParams) (*Activity, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}

	if params.Points < 1 {
		return nil, fmt.Errorf("%w: points must be at least 1", ErrInvalidArgument)
	}

	a := &Activity{
		Name:        params.Name,
		Description: params.Description,
		Points:      params.Points,
		OwnerID:     actor.ID,
		Active:      true,
	}
	if err := s.repo.CreateActivity(ctx, a); err != nil {
		return nil, fmt.Errorf("creating activity: %w", err)
	}

	return a, nil
}

func (s *Service) Get(ctx context.Context, actor auth.Actor, id uuid.UUID) (*Activity, error) {
	a, err := s.repo.GetActivity(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.CanManage(a.OwnerID) {
		return nil, ErrNotFound
	}

	return a, nil
}

func (s *Service) List(ctx context.Context, actor auth.Actor) ([]*Activity, error) {
	return s.repo.ListActivities(ctx, actor.ID)
}

type UpdateParams struct {
	Name        *string
	Description *string
	Points      *int
	Active      *bool
}

func (s *Service) Update(ctx context.Context, actor auth.Actor, id uuid.UUID, params UpdateParams) (*Activity, error) {
	a, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		a.Name = *params.Name
	}

	if params.Description != nil {
		a.Description = *params.Description
	}

	if params.Points != nil {
		if *params.Points < 1 {
			return nil, fmt.Errorf("%w: points must be at least 1", ErrInvalidArgument)
		}

		a.Points = *params.Points
	}

	if params.Active != nil {
		a.Active = *params.Active
	}

	if err := s.repo.UpdateActivity(ctx, a); err != nil {
		return nil, fmt.Errorf("updating activity: %w", err)
	}

	return a, nil
}

func (s *Service) Delete(ctx context.Context, actor auth.Actor, id uuid.UUID) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}

	if err := s.repo.DeleteActivity(ctx, id); err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}

	return nil
}
