package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Role is the coarse permission tier carried by every token.
type Role string

const (
	RoleParent Role = "parent"
	RoleAdmin  Role = "admin"
	RoleChild  Role = "child"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Actor is the authenticated identity attached to a request. Ownership
// checks throughout the services trust this identity; credentials are
// verified only at login.
type Actor struct {
	ID       uuid.UUID
	Role     Role
	FamilyID *uuid.UUID
}

// CanManage reports whether the actor may mutate resources owned by ownerID.
// Admins manage everything; everyone else only their own.
func (a Actor) CanManage(ownerID uuid.UUID) bool {
	return a.Role == RoleAdmin || a.ID == ownerID
}

type claims struct {
	Role     string `json:"role"`
	FamilyID string `json:"family_id,omitempty"`
	jwt.RegisteredClaims
}

// Authenticator issues and parses the HS256 tokens used by the API.
type Authenticator struct {
	secret []byte
	ttl    time.Duration
}

func NewAuthenticator(secret string, ttl time.Duration) *Authenticator {
	return &Authenticator{secret: []byte(secret), ttl: ttl}
}

func (a *Authenticator) IssueToken(actor Actor) (string, error) {
	now := time.Now()

	c := claims{
		Role: string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}
	if actor.FamilyID != nil {
		c.FamilyID = actor.FamilyID.String()
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return token, nil
}

func (a *Authenticator) ParseToken(raw string) (Actor, error) {
	var c claims

	token, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}

		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return Actor{}, ErrInvalidToken
	}

	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return Actor{}, ErrInvalidToken
	}

	actor := Actor{ID: id, Role: Role(c.Role)}

	if c.FamilyID != "" {
		familyID, err := uuid.Parse(c.FamilyID)
		if err != nil {
			return Actor{}, ErrInvalidToken
		}

		actor.FamilyID = &familyID
	}

	return actor, nil
}

// HashSecret hashes a password or PIN for storage.
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing secret: %w", err)
	}

	return string(hash), nil
}

// CheckSecret compares a stored hash against a candidate secret.
func CheckSecret(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

type contextKey struct{}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, contextKey{}, actor)
}

func ActorFrom(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(contextKey{}).(Actor)
	return actor, ok
}
