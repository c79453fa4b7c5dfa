package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tallyapp/tally/internal/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	a := auth.NewAuthenticator("test-secret", time.Hour)

	familyID := uuid.New()
	actor := auth.Actor{ID: uuid.New(), Role: auth.RoleParent, FamilyID: &familyID}

	token, err := a.IssueToken(actor)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := a.ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, actor.ID, parsed.ID)
	assert.Equal(t, auth.RoleParent, parsed.Role)
	require.NotNil(t, parsed.FamilyID)
	assert.Equal(t, familyID, *parsed.FamilyID)
}

func TestParseToken_Rejects(t *testing.T) {
	a := auth.NewAuthenticator("test-secret", time.Hour)

	t.Run("WrongSecret", func(t *testing.T) {
		other := auth.NewAuthenticator("other-secret", time.Hour)

		token, err := other.IssueToken(auth.Actor{ID: uuid.New(), Role: auth.RoleParent})
		require.NoError(t, err)

		_, err = a.ParseToken(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := auth.NewAuthenticator("test-secret", -time.Minute)

		token, err := expired.IssueToken(auth.Actor{ID: uuid.New(), Role: auth.RoleParent})
		require.NoError(t, err)

		_, err = a.ParseToken(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := a.ParseToken("not.a.token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestCanManage(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name  string
		actor auth.Actor
		want  bool
	}{
		{"OwnerManagesOwn", auth.Actor{ID: ownerID, Role: auth.RoleParent}, true},
		{"StrangerDenied", auth.Actor{ID: uuid.New(), Role: auth.RoleParent}, false},
		{"AdminManagesAll", auth.Actor{ID: uuid.New(), Role: auth.RoleAdmin}, true},
		{"ChildDenied", auth.Actor{ID: uuid.New(), Role: auth.RoleChild}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.actor.CanManage(ownerID))
		})
	}
}

func TestHashSecret(t *testing.T) {
	hash, err := auth.HashSecret("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	assert.True(t, auth.CheckSecret(hash, "s3cret"))
	assert.False(t, auth.CheckSecret(hash, "wrong"))
}

func TestActorContext(t *testing.T) {
	_, ok := auth.ActorFrom(context.Background())
	assert.False(t, ok)

	actor := auth.Actor{ID: uuid.New(), Role: auth.RoleParent}
	ctx := auth.WithActor(context.Background(), actor)

	got, ok := auth.ActorFrom(ctx)
	require.True(t, ok)
	assert.Equal(t, actor, got)
}

type serviceFixture struct {
	repo     *auth.MockRepository
	children *auth.MockChildDirectory
	tokens   *auth.Authenticator
	svc      *auth.Service
}

func newServiceFixture(t *testing.T) *serviceFixture {
	ctrl := gomock.NewController(t)

	f := &serviceFixture{
		repo:     auth.NewMockRepository(ctrl),
		children: auth.NewMockChildDirectory(ctrl),
		tokens:   auth.NewAuthenticator("test-secret", time.Hour),
	}
	f.svc = auth.NewService(f.repo, f.children, f.tokens)

	return f
}

func TestService_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newServiceFixture(t)

		f.repo.EXPECT().GetUserByEmail(gomock.Any(), "parent@example.com").Return(nil, auth.ErrUserNotFound)
		f.repo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *auth.User) error {
				u.ID = uuid.New()
				return nil
			})

		session, err := f.svc.Register(context.Background(), auth.RegisterParams{
			Email:    "  Parent@Example.com ",
			Name:     "Pat",
			Password: "hunter2",
		})

		require.NoError(t, err)
		require.NotNil(t, session.User)

		assert.Equal(t, "parent@example.com", session.User.Email)
		assert.Equal(t, auth.RoleParent, session.User.Role)
		assert.NotEqual(t, uuid.Nil, session.User.FamilyID)
		assert.NotEqual(t, "hunter2", session.User.PasswordHash)
		assert.NotEmpty(t, session.Token)

		actor, err := f.tokens.ParseToken(session.Token)
		require.NoError(t, err)
		assert.Equal(t, session.User.ID, actor.ID)
	})

	t.Run("EmailTaken", func(t *testing.T) {
		f := newServiceFixture(t)

		f.repo.EXPECT().
			GetUserByEmail(gomock.Any(), "taken@example.com").
			Return(&auth.User{ID: uuid.New()}, nil)

		_, err := f.svc.Register(context.Background(), auth.RegisterParams{
			Email:    "taken@example.com",
			Password: "hunter2",
		})

		assert.ErrorIs(t, err, auth.ErrEmailTaken)
	})

	t.Run("EmptyCredentials", func(t *testing.T) {
		f := newServiceFixture(t)

		_, err := f.svc.Register(context.Background(), auth.RegisterParams{Email: "  "})

		assert.ErrorIs(t, err, auth.ErrBadCredentials)
	})
}

func TestService_Login(t *testing.T) {
	hash, err := auth.HashSecret("hunter2")
	require.NoError(t, err)

	user := &auth.User{
		ID:           uuid.New(),
		Email:        "parent@example.com",
		PasswordHash: hash,
		Role:         auth.RoleParent,
		FamilyID:     uuid.New(),
	}

	t.Run("Success", func(t *testing.T) {
		f := newServiceFixture(t)

		f.repo.EXPECT().GetUserByEmail(gomock.Any(), "parent@example.com").Return(user, nil)

		session, err := f.svc.Login(context.Background(), "Parent@Example.com", "hunter2")

		require.NoError(t, err)
		assert.Equal(t, user.ID, session.Actor.ID)
		require.NotNil(t, session.Actor.FamilyID)
		assert.Equal(t, user.FamilyID, *session.Actor.FamilyID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		f := newServiceFixture(t)

		f.repo.EXPECT().GetUserByEmail(gomock.Any(), "parent@example.com").Return(user, nil)

		_, err := f.svc.Login(context.Background(), "parent@example.com", "wrong")

		assert.ErrorIs(t, err, auth.ErrBadCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		f := newServiceFixture(t)

		f.repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, auth.ErrUserNotFound)

		_, err := f.svc.Login(context.Background(), "nobody@example.com", "hunter2")

		assert.ErrorIs(t, err, auth.ErrBadCredentials)
	})
}

func TestService_ChildLogin(t *testing.T) {
	pinHash, err := auth.HashSecret("1234")
	require.NoError(t, err)

	familyID := uuid.New()
	cred := &auth.ChildCredential{ID: uuid.New(), PINHash: pinHash, FamilyID: &familyID, Active: true}

	t.Run("Success", func(t *testing.T) {
		f := newServiceFixture(t)

		f.children.EXPECT().ChildCredential(gomock.Any(), cred.ID).Return(cred, nil)

		session, err := f.svc.ChildLogin(context.Background(), cred.ID, "1234")

		require.NoError(t, err)
		assert.Equal(t, auth.RoleChild, session.Actor.Role)
		assert.Equal(t, cred.ID, session.Actor.ID)
		assert.Nil(t, session.User)
	})

	t.Run("WrongPIN", func(t *testing.T) {
		f := newServiceFixture(t)

		f.children.EXPECT().ChildCredential(gomock.Any(), cred.ID).Return(cred, nil)

		_, err := f.svc.ChildLogin(context.Background(), cred.ID, "0000")

		assert.ErrorIs(t, err, auth.ErrBadCredentials)
	})

	t.Run("InactiveChild", func(t *testing.T) {
		f := newServiceFixture(t)

		inactive := *cred
		inactive.Active = false

		f.children.EXPECT().ChildCredential(gomock.Any(), cred.ID).Return(&inactive, nil)

		_, err := f.svc.ChildLogin(context.Background(), cred.ID, "1234")

		assert.ErrorIs(t, err, auth.ErrBadCredentials)
	})

	t.Run("UnknownChild", func(t *testing.T) {
		f := newServiceFixture(t)

		f.children.EXPECT().ChildCredential(gomock.Any(), gomock.Any()).Return(nil, errors.New("not found"))

		_, err := f.svc.ChildLogin(context.Background(), uuid.New(), "1234")

		assert.ErrorIs(t, err, auth.ErrBadCredentials)
	})
}
