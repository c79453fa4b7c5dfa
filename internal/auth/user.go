package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrBadCredentials = errors.New("bad credentials")
)

// User is a parent or admin account. Children authenticate separately with
// their PIN and never get a row here.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	FamilyID     uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

//go:generate mockgen -source=user.go -destination=repository_mock.go -package=auth
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}

// ChildCredential is the slice of a child record that PIN login needs.
type ChildCredential struct {
	ID       uuid.UUID
	PINHash  string
	FamilyID *uuid.UUID
	Active   bool
}

// ChildDirectory is satisfied by the child store.
type ChildDirectory interface {
	ChildCredential(ctx context.Context, id uuid.UUID) (*ChildCredential, error)
}

type Service struct {
	repo     Repository
	children ChildDirectory
	tokens   *Authenticator
}

func NewService(repo Repository, children ChildDirectory, tokens *Authenticator) *Service {
	return &Service{repo: repo, children: children, tokens: tokens}
}

type RegisterParams struct {
	Email    string
	Name     string
	Password string
}

// Session is what every login hands back to the HTTP layer.
type Session struct {
	Token string
	Actor Actor
	User  *User
}

// Register creates a parent account. Each registration starts a fresh
// family; children and invited members inherit the family id later.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(params.Email))
	if email == "" || params.Password == "" {
		return nil, ErrBadCredentials
	}

	if _, err := s.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	hash, err := HashSecret(params.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Email:        email,
		Name:         params.Name,
		PasswordHash: hash,
		Role:         RoleParent,
		FamilyID:     uuid.New(),
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return s.sessionFor(u)
}

func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	u, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrBadCredentials
		}

		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !CheckSecret(u.PasswordHash, password) {
		return nil, ErrBadCredentials
	}

	return s.sessionFor(u)
}

// ChildLogin exchanges a child id plus 4-digit PIN for a child-role token.
func (s *Service) ChildLogin(ctx context.Context, childID uuid.UUID, pin string) (*Session, error) {
	cred, err := s.children.ChildCredential(ctx, childID)
	if err != nil {
		return nil, ErrBadCredentials
	}

	if !cred.Active || !CheckSecret(cred.PINHash, pin) {
		return nil, ErrBadCredentials
	}

	actor := Actor{ID: cred.ID, Role: RoleChild, FamilyID: cred.FamilyID}

	token, err := s.tokens.IssueToken(actor)
	if err != nil {
		return nil, err
	}

	return &Session{Token: token, Actor: actor}, nil
}

func (s *Service) sessionFor(u *User) (*Session, error) {
	familyID := u.FamilyID
	actor := Actor{ID: u.ID, Role: u.Role, FamilyID: &familyID}

	token, err := s.tokens.IssueToken(actor)
	if err != nil {
		return nil, err
	}

	return &Session{Token: token, Actor: actor, User: u}, nil
}
