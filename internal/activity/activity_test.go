package activity_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tallyapp/tally/internal/activity"
	"github.com/tallyapp/tally/internal/auth"
)

func newService(t *testing.T) (*activity.MockRepository, *activity.Service) {
	repo := activity.NewMockRepository(gomock.NewController(t))
	return repo, activity.NewService(repo)
}

func TestService_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, svc := newService(t)
		actor := auth.Actor{ID: uuid.New(), Role: auth.RoleParent}

		repo.EXPECT().
			CreateActivity(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *activity.Activity) error {
				a.ID = uuid.New()
				return nil
			})

		a, err := svc.Create(context.Background(), actor, activity.CreateParams{
			Name:   "Walk the dog",
			Points: 25,
		})

		require.NoError(t, err)
		assert.Equal(t, "Walk the dog", a.Name)
		assert.Equal(t, 25, a.Points)
		assert.Equal(t, actor.ID, a.OwnerID)
		assert.True(t, a.Active)
	})

	t.Run("Validation", func(t *testing.T) {
		_, svc := newService(t)
		actor := auth.Actor{ID: uuid.New(), Role: auth.RoleParent}

		_, err := svc.Create(context.Background(), actor, activity.CreateParams{Points: 25})
		assert.ErrorIs(t, err, activity.ErrInvalidArgument)

		_, err = svc.Create(context.Background(), actor, activity.CreateParams{Name: "Walk the dog"})
		assert.ErrorIs(t, err, activity.ErrInvalidArgument)
	})
}

func TestService_Get(t *testing.T) {
	repo, svc := newService(t)
	owner := auth.Actor{ID: uuid.New(), Role: auth.RoleParent}
	a := &activity.Activity{ID: uuid.New(), Name: "Walk the dog", Points: 25, OwnerID: owner.ID, Active: true}

	repo.EXPECT().GetActivity(gomock.Any(), a.ID).Return(a, nil).Times(2)

	got, err := svc.Get(context.Background(), owner, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)

	// Another parent's catalog entry reads as missing, not forbidden.
	stranger := auth.Actor{ID: uuid.New(), Role: auth.RoleParent}
	_, err = svc.Get(context.Background(), stranger, a.ID)
	assert.ErrorIs(t, err, activity.ErrNotFound)
}

func TestService_Update(t *testing.T) {
	t.Run("PatchesFields", func(t *testing.T) {
		repo, svc := newService(t)
		owner := auth.Actor{ID: uuid.New(), Role: auth.RoleParent}
		a := &activity.Activity{ID: uuid.New(), Name: "Walk the dog", Points: 25, OwnerID: owner.ID, Active: true}

		repo.EXPECT().GetActivity(gomock.Any(), a.ID).Return(a, nil)
		repo.EXPECT().UpdateActivity(gomock.Any(), a).Return(nil)

		points := 40
		got, err := svc.Update(context.Background(), owner, a.ID, activity.UpdateParams{Points: &points})

		require.NoError(t, err)
		assert.Equal(t, 40, got.Points)
		assert.Equal(t, "Walk the dog", got.Name)
	})

	t.Run("ReactivatesDeactivated", func(t *testing.T) {
		repo, svc := newService(t)
		owner := auth.Actor{ID: uuid.New(), Role: auth.RoleParent}
		a := &activity.Activity{ID: uuid.New(), Name: "Walk the dog", Points: 25, OwnerID: owner.ID, Active: false}

		repo.EXPECT().GetActivity(gomock.Any(), a.ID).Return(a, nil)
		repo.EXPECT().UpdateActivity(gomock.Any(), a).Return(nil)

		active := true
		got, err := svc.Update(context.Background(), owner, a.ID, activity.UpdateParams{Active: &active})

		require.NoError(t, err)
		assert.True(t, got.Active)
	})

	t.Run("RejectsZeroPoints", func(t *testing.T) {
		repo, svc := newService(t)
		owner := auth.Actor{ID: uuid.New(), Role: auth.RoleParent}
		a := &activity.Activity{ID: uuid.New(), Name: "Walk the dog", Points: 25, OwnerID: owner.ID, Active: true}

		repo.EXPECT().GetActivity(gomock.Any(), a.ID).Return(a, nil)

		points := 0
		_, err := svc.Update(context.Background(), owner, a.ID, activity.UpdateParams{Points: &points})

		assert.ErrorIs(t, err, activity.ErrInvalidArgument)
	})
}

func TestService_Delete(t *testing.T) {
	repo, svc := newService(t)
	owner := auth.Actor{ID: uuid.New(), Role: auth.RoleParent}
	a := &activity.Activity{ID: uuid.New(), Name: "Walk the dog", Points: 25, OwnerID: owner.ID, Active: true}

	repo.EXPECT().GetActivity(gomock.Any(), a.ID).Return(a, nil)
	repo.EXPECT().DeleteActivity(gomock.Any(), a.ID).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), owner, a.ID))
}
