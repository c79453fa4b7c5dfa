package message

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tallyapp/tally/internal/auth"
)

var (
	ErrNotFound        = errors.New("message not found")
	ErrNoFamily        = errors.New("actor has no family")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Kind distinguishes plain notes from timed reminders.
type Kind string

const (
	KindNote     Kind = "note"
	KindReminder Kind = "reminder"
)

// Message is a note or reminder exchanged inside one family. A nil
// RecipientID broadcasts to the whole family.
type Message struct {
	ID          uuid.UUID
	FamilyID    uuid.UUID
	SenderID    uuid.UUID
	RecipientID *uuid.UUID
	Kind        Kind
	Body        string
	RemindAt    *time.Time
	ReadAt      *time.Time
	CreatedAt   time.Time
}

//go:generate mockgen -source=message.go -destination=repository_mock.go -package=message
type Repository interface {
	CreateMessage(ctx context.Context, m *Message) error
	GetMessage(ctx context.Context, id uuid.UUID) (*Message, error)
	ListForFamily(ctx context.Context, familyID uuid.UUID) ([]*Message, error)
	MarkRead(ctx context.Context, id uuid.UUID, at time.Time) error
	DeleteMessage(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type SendParams struct {
	RecipientID *uuid.UUID
	Kind        Kind
	Body        string
	RemindAt    *time.Time
}

func (s *Service) Send(ctx context.Context, actor auth.Actor, params SendParams) (*Message, error) {
	if actor.FamilyID == nil {
		return nil, ErrNoFamily
	}

	if params.Body == "" {
		return nil, fmt.Errorf("%w: body is required", ErrInvalidArgument)
	}

	kind := params.Kind
	if kind == "" {
		kind = KindNote
	}

	if kind != KindNote && kind != KindReminder {
		return nil, fmt.Errorf("%w: unknown message kind %q", ErrInvalidArgument, kind)
	}

	m := &Message{
		FamilyID:    *actor.FamilyID,
		SenderID:    actor.ID,
		RecipientID: params.RecipientID,
		Kind:        kind,
		Body:        params.Body,
		RemindAt:    params.RemindAt,
	}
	if err := s.repo.CreateMessage(ctx, m); err != nil {
		return nil, fmt.Errorf("creating message: %w", err)
	}

	return m, nil
}

// List returns the actor's family feed: broadcasts plus messages addressed
// to or sent by the actor.
func (s *Service) List(ctx context.Context, actor auth.Actor) ([]*Message, error) {
	if actor.FamilyID == nil {
		return nil, ErrNoFamily
	}

	all, err := s.repo.ListForFamily(ctx, *actor.FamilyID)
	if err != nil {
		return nil, err
	}

	var visible []*Message

	for _, m := range all {
		if m.RecipientID == nil || *m.RecipientID == actor.ID || m.SenderID == actor.ID {
			visible = append(visible, m)
		}
	}

	return visible, nil
}

func (s *Service) MarkRead(ctx context.Context, actor auth.Actor, id uuid.UUID) error {
	m, err := s.scoped(ctx, actor, id)
	if err != nil {
		return err
	}

	if m.ReadAt != nil {
		return nil
	}

	if err := s.repo.MarkRead(ctx, id, time.Now()); err != nil {
		return fmt.Errorf("marking read: %w", err)
	}

	return nil
}

// Delete removes a message the actor sent; admins may remove any family
// message.
func (s *Service) Delete(ctx context.Context, actor auth.Actor, id uuid.UUID) error {
	m, err := s.scoped(ctx, actor, id)
	if err != nil {
		return err
	}

	if actor.Role != auth.RoleAdmin && m.SenderID != actor.ID {
		return ErrNotFound
	}

	if err := s.repo.DeleteMessage(ctx, id); err != nil {
		return fmt.Errorf("deleting message: %w", err)
	}

	return nil
}

func (s *Service) scoped(ctx context.Context, actor auth.Actor, id uuid.UUID) (*Message, error) {
	if actor.FamilyID == nil {
		return nil, ErrNoFamily
	}

	m, err := s.repo.GetMessage(ctx, id)
	if err != nil {
		return nil, err
	}

	if m.FamilyID != *actor.FamilyID {
		return nil, ErrNotFound
	}

	return m, nil
}
