package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tallyapp/tally/internal/activity"
	"github.com/tallyapp/tally/internal/auth"
	"github.com/tallyapp/tally/internal/child"
	"github.com/tallyapp/tally/internal/ledger"
)

type fixture struct {
	repo       *ledger.MockRepository
	tx         *ledger.MockAwardTx
	activities *ledger.MockActivityCatalog
	children   *ledger.MockChildDirectory
	svc        *ledger.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:       ledger.NewMockRepository(ctrl),
		tx:         ledger.NewMockAwardTx(ctrl),
		activities: ledger.NewMockActivityCatalog(ctrl),
		children:   ledger.NewMockChildDirectory(ctrl),
	}
	f.svc = ledger.NewService(f.repo, f.activities, f.children)

	return f
}

func parentActor() (auth.Actor, uuid.UUID) {
	id := uuid.New()
	return auth.Actor{ID: id, Role: auth.RoleParent}, id
}

func ownedChild(ownerID uuid.UUID) *child.Child {
	return &child.Child{
		ID:           uuid.New(),
		Name:         "Sam",
		TotalPoints:  0,
		CurrentLevel: 1,
		Goals:        []child.Goal{{ID: uuid.New(), Title: "Read a book", TargetPoints: 20}},
		OwnerID:      ownerID,
		Active:       true,
	}
}

func TestService_AddPoints(t *testing.T) {
	t.Run("ExplicitPoints", func(t *testing.T) {
		f := newFixture(t)
		actor, ownerID := parentActor()
		c := ownedChild(ownerID)

		f.repo.EXPECT().BeginAward(gomock.Any(), c.ID).Return(f.tx, nil)
		f.tx.EXPECT().Child(gomock.Any()).Return(c, nil)
		f.tx.EXPECT().
			InsertEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *ledger.Entry) error {
				e.ID = uuid.New()
				e.CreatedAt = time.Now()
				return nil
			})
		f.tx.EXPECT().SaveChild(gomock.Any(), c).Return(nil)
		f.tx.EXPECT().Commit().Return(nil)
		f.tx.EXPECT().Rollback().Return(nil).AnyTimes()

		award, err := f.svc.AddPoints(context.Background(), actor, ledger.AwardParams{
			ChildID: c.ID,
			Source:  ledger.ExplicitSource(10),
			Reason:  "helped with dishes",
		})

		require.NoError(t, err)
		require.NotNil(t, award)

		assert.Equal(t, 10, award.Entry.Points)
		assert.Equal(t, ledger.DirectionAdd, award.Entry.Direction)
		assert.Nil(t, award.Entry.ActivityID)
		assert.Equal(t, actor.ID, award.Entry.AwardedBy)
		assert.True(t, award.Entry.Active)

		assert.Equal(t, 10, award.Child.TotalPoints)
		assert.Equal(t, 1, award.Child.CurrentLevel)

		// The open goal accrues alongside the balance.
		assert.Equal(t, 10, award.Child.Goals[0].CurrentPoints)
		assert.False(t, award.Child.Goals[0].IsCompleted)
	})

	t.Run("ActivitySource", func(t *testing.T) {
		f := newFixture(t)
		actor, ownerID := parentActor()
		c := ownedChild(ownerID)

		act := &activity.Activity{ID: uuid.New(), Name: "Walk the dog", Points: 25, OwnerID: ownerID, Active: true}

		f.activities.EXPECT().GetActivity(gomock.Any(), act.ID).Return(act, nil)
		f.repo.EXPECT().BeginAward(gomock.Any(), c.ID).Return(f.tx, nil)
		f.tx.EXPECT().Child(gomock.Any()).Return(c, nil)
		f.tx.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).Return(nil)
		f.tx.EXPECT().SaveChild(gomock.Any(), c).Return(nil)
		f.tx.EXPECT().Commit().Return(nil)
		f.tx.EXPECT().Rollback().Return(nil).AnyTimes()

		award, err := f.svc.AddPoints(context.Background(), actor, ledger.AwardParams{
			ChildID: c.ID,
			Source:  ledger.ActivitySource(act.ID),
		})

		require.NoError(t, err)
		assert.Equal(t, 25, award.Entry.Points)
		require.NotNil(t, award.Entry.ActivityID)
		assert.Equal(t, act.ID, *award.Entry.ActivityID)
		assert.Equal(t, 25, award.Child.TotalPoints)
	})

	t.Run("NoSourceFailsBeforeAnyWrite", func(t *testing.T) {
		f := newFixture(t)
		actor, _ := parentActor()

		_, err := f.svc.AddPoints(context.Background(), actor, ledger.AwardParams{
			ChildID: uuid.New(),
			Source:  ledger.Source{},
		})

		assert.ErrorIs(t, err, ledger.ErrNoMagnitude)
	})

	t.Run("ZeroMagnitudeRejected", func(t *testing.T) {
		f := newFixture(t)
		actor, _ := parentActor()

		_, err := f.svc.AddPoints(context.Background(), actor, ledger.AwardParams{
			ChildID: uuid.New(),
			Source:  ledger.ExplicitSource(0),
		})

		assert.ErrorIs(t, err, ledger.ErrInvalidMagnitude)
	})

	t.Run("ForeignActivityHidden", func(t *testing.T) {
		f := newFixture(t)
		actor, _ := parentActor()

		// Belongs to another family; resolution must reject it before any
		// write, so no transaction is ever opened.
		act := &activity.Activity{ID: uuid.New(), Name: "Mow the lawn", Points: 999, OwnerID: uuid.New(), Active: true}

		f.activities.EXPECT().GetActivity(gomock.Any(), act.ID).Return(act, nil)

		_, err := f.svc.AddPoints(context.Background(), actor, ledger.AwardParams{
			ChildID: uuid.New(),
			Source:  ledger.ActivitySource(act.ID),
		})

		assert.ErrorIs(t, err, activity.ErrNotFound)
	})

	t.Run("DeactivatedActivityDoesNotResolve", func(t *testing.T) {
		f := newFixture(t)
		actor, ownerID := parentActor()

		act := &activity.Activity{ID: uuid.New(), Name: "Walk the dog", Points: 25, OwnerID: ownerID, Active: false}

		f.activities.EXPECT().GetActivity(gomock.Any(), act.ID).Return(act, nil)

		_, err := f.svc.AddPoints(context.Background(), actor, ledger.AwardParams{
			ChildID: uuid.New(),
			Source:  ledger.ActivitySource(act.ID),
		})

		assert.ErrorIs(t, err, activity.ErrNotFound)
	})

	t.Run("UnknownActivity", func(t *testing.T) {
		f := newFixture(t)
		actor, _ := parentActor()
		actID := uuid.New()

		f.activities.EXPECT().GetActivity(gomock.Any(), actID).Return(nil, activity.ErrNotFound)

		_, err := f.svc.AddPoints(context.Background(), actor, ledger.AwardParams{
			ChildID: uuid.New(),
			Source:  ledger.ActivitySource(actID),
		})

		assert.ErrorIs(t, err, activity.ErrNotFound)
	})

	t.Run("InactiveChild", func(t *testing.T) {
		f := newFixture(t)
		actor, ownerID := parentActor()
		c := ownedChild(ownerID)
		c.Active = false

		f.repo.EXPECT().BeginAward(gomock.Any(), c.ID).Return(f.tx, nil)
		f.tx.EXPECT().Child(gomock.Any()).Return(c, nil)
		f.tx.EXPECT().Rollback().Return(nil)

		_, err := f.svc.AddPoints(context.Background(), actor, ledger.AwardParams{
			ChildID: c.ID,
			Source:  ledger.ExplicitSource(5),
		})

		assert.ErrorIs(t, err, child.ErrNotFound)
	})

	t.Run("ForeignChildForbidden", func(t *testing.T) {
		f := newFixture(t)
		actor, _ := parentActor()
		c := ownedChild(uuid.New())

		f.repo.EXPECT().BeginAward(gomock.Any(), c.ID).Return(f.tx, nil)
		f.tx.EXPECT().Child(gomock.Any()).Return(c, nil)
		f.tx.EXPECT().Rollback().Return(nil)

		_, err := f.svc.AddPoints(context.Background(), actor, ledger.AwardParams{
			ChildID: c.ID,
			Source:  ledger.ExplicitSource(5),
		})

		assert.ErrorIs(t, err, ledger.ErrForbidden)
	})
}

func TestService_RemovePoints(t *testing.T) {
	f := newFixture(t)
	actor, ownerID := parentActor()
	c := ownedChild(ownerID)
	c.TotalPoints = 505
	c.CurrentLevel = 2
	c.Goals[0].CurrentPoints = 25
	c.Goals[0].IsCompleted = true

	f.repo.EXPECT().BeginAward(gomock.Any(), c.ID).Return(f.tx, nil)
	f.tx.EXPECT().Child(gomock.Any()).Return(c, nil)
	f.tx.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).Return(nil)
	f.tx.EXPECT().SaveChild(gomock.Any(), c).Return(nil)
	f.tx.EXPECT().Commit().Return(nil)
	f.tx.EXPECT().Rollback().Return(nil).AnyTimes()

	award, err := f.svc.RemovePoints(context.Background(), actor, ledger.AwardParams{
		ChildID: c.ID,
		Source:  ledger.ExplicitSource(600),
		Reason:  "broke curfew",
	})

	require.NoError(t, err)
	assert.Equal(t, ledger.DirectionRemove, award.Entry.Direction)

	// Balance goes into deficit; level floors at 1.
	assert.Equal(t, -95, award.Child.TotalPoints)
	assert.Equal(t, 1, award.Child.CurrentLevel)

	// Removal never touches goal accumulators or completion.
	assert.Equal(t, 25, award.Child.Goals[0].CurrentPoints)
	assert.True(t, award.Child.Goals[0].IsCompleted)
}

func TestService_DeleteEntry(t *testing.T) {
	t.Run("SoftDeleteThenRebuild", func(t *testing.T) {
		f := newFixture(t)
		actor, ownerID := parentActor()
		c := ownedChild(ownerID)
		c.TotalPoints = 110
		c.CurrentLevel = 1

		entry := &ledger.Entry{ID: uuid.New(), ChildID: c.ID, Points: 100, Direction: ledger.DirectionAdd, Active: true}

		f.repo.EXPECT().GetEntry(gomock.Any(), entry.ID).Return(entry, nil)
		f.repo.EXPECT().BeginAward(gomock.Any(), c.ID).Return(f.tx, nil)
		f.tx.EXPECT().Child(gomock.Any()).Return(c, nil)
		f.tx.EXPECT().DeactivateEntry(gomock.Any(), entry.ID).Return(nil)
		f.tx.EXPECT().SumActive(gomock.Any()).Return(10, nil)
		f.tx.EXPECT().SaveChild(gomock.Any(), c).Return(nil)
		f.tx.EXPECT().Commit().Return(nil)
		f.tx.EXPECT().Rollback().Return(nil).AnyTimes()

		got, err := f.svc.DeleteEntry(context.Background(), actor, entry.ID)

		require.NoError(t, err)
		assert.Equal(t, 10, got.TotalPoints)
		assert.Equal(t, 1, got.CurrentLevel)
	})

	t.Run("MissingEntry", func(t *testing.T) {
		f := newFixture(t)
		actor, _ := parentActor()
		id := uuid.New()

		f.repo.EXPECT().GetEntry(gomock.Any(), id).Return(nil, ledger.ErrEntryNotFound)

		_, err := f.svc.DeleteEntry(context.Background(), actor, id)

		assert.ErrorIs(t, err, ledger.ErrEntryNotFound)
	})
}

func TestService_Recompute(t *testing.T) {
	f := newFixture(t)
	actor, ownerID := parentActor()
	c := ownedChild(ownerID)
	c.TotalPoints = 9999 // drifted projection

	f.repo.EXPECT().BeginAward(gomock.Any(), c.ID).Return(f.tx, nil)
	f.tx.EXPECT().Child(gomock.Any()).Return(c, nil)
	f.tx.EXPECT().SumActive(gomock.Any()).Return(505, nil)
	f.tx.EXPECT().SaveChild(gomock.Any(), c).Return(nil)
	f.tx.EXPECT().Commit().Return(nil)
	f.tx.EXPECT().Rollback().Return(nil).AnyTimes()

	got, err := f.svc.Recompute(context.Background(), actor, c.ID)

	require.NoError(t, err)
	assert.Equal(t, 505, got.TotalPoints)
	assert.Equal(t, 2, got.CurrentLevel)
}

func TestService_History(t *testing.T) {
	t.Run("NormalizesPage", func(t *testing.T) {
		f := newFixture(t)
		actor, ownerID := parentActor()
		c := ownedChild(ownerID)

		f.children.EXPECT().GetChild(gomock.Any(), c.ID).Return(c, nil)
		f.repo.EXPECT().
			ListForChild(gomock.Any(), c.ID, ledger.Page{Limit: 50, Offset: 0}).
			Return([]*ledger.Entry{{ID: uuid.New()}}, nil)

		entries, err := f.svc.History(context.Background(), actor, c.ID, ledger.Page{})

		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("ChildReadsOwnHistory", func(t *testing.T) {
		f := newFixture(t)
		c := ownedChild(uuid.New())
		actor := auth.Actor{ID: c.ID, Role: auth.RoleChild}

		f.children.EXPECT().GetChild(gomock.Any(), c.ID).Return(c, nil)
		f.repo.EXPECT().ListForChild(gomock.Any(), c.ID, gomock.Any()).Return(nil, nil)

		_, err := f.svc.History(context.Background(), actor, c.ID, ledger.Page{})

		assert.NoError(t, err)
	})

	t.Run("ChildCannotReadSibling", func(t *testing.T) {
		f := newFixture(t)
		c := ownedChild(uuid.New())
		actor := auth.Actor{ID: uuid.New(), Role: auth.RoleChild}

		f.children.EXPECT().GetChild(gomock.Any(), c.ID).Return(c, nil)

		_, err := f.svc.History(context.Background(), actor, c.ID, ledger.Page{})

		assert.ErrorIs(t, err, child.ErrNotFound)
	})
}

func TestService_Wipes(t *testing.T) {
	t.Run("WipeAllPointsSoftDeletes", func(t *testing.T) {
		f := newFixture(t)
		actor, ownerID := parentActor()
		c1 := ownedChild(ownerID)
		c2 := ownedChild(ownerID)
		c1.TotalPoints = 250
		c2.TotalPoints = 700
		c2.CurrentLevel = 2

		f.children.EXPECT().ListChildren(gomock.Any(), ownerID).Return([]*child.Child{c1, c2}, nil)

		for _, c := range []*child.Child{c1, c2} {
			tx := ledger.NewMockAwardTx(gomock.NewController(t))
			f.repo.EXPECT().BeginAward(gomock.Any(), c.ID).Return(tx, nil)
			tx.EXPECT().Child(gomock.Any()).Return(c, nil)
			tx.EXPECT().DeactivateEntries(gomock.Any()).Return(int64(3), nil)
			tx.EXPECT().SaveChild(gomock.Any(), c).Return(nil)
			tx.EXPECT().Commit().Return(nil)
			tx.EXPECT().Rollback().Return(nil).AnyTimes()
		}

		result, err := f.svc.WipeAllPoints(context.Background(), actor)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Children)
		assert.Equal(t, int64(6), result.Entries)

		assert.Equal(t, 0, c1.TotalPoints)
		assert.Equal(t, 0, c2.TotalPoints)
		assert.Equal(t, 1, c2.CurrentLevel)
	})

	t.Run("WipeAllHistoryHardDeletes", func(t *testing.T) {
		f := newFixture(t)
		actor, ownerID := parentActor()
		c := ownedChild(ownerID)
		c.TotalPoints = 42

		f.children.EXPECT().ListChildren(gomock.Any(), ownerID).Return([]*child.Child{c}, nil)
		f.repo.EXPECT().BeginAward(gomock.Any(), c.ID).Return(f.tx, nil)
		f.tx.EXPECT().Child(gomock.Any()).Return(c, nil)
		f.tx.EXPECT().PurgeEntries(gomock.Any()).Return(int64(5), nil)
		f.tx.EXPECT().SaveChild(gomock.Any(), c).Return(nil)
		f.tx.EXPECT().Commit().Return(nil)
		f.tx.EXPECT().Rollback().Return(nil).AnyTimes()

		result, err := f.svc.WipeAllHistory(context.Background(), actor)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Children)
		assert.Equal(t, int64(5), result.Entries)
		assert.Equal(t, 0, c.TotalPoints)
	})

	t.Run("ChildCannotWipe", func(t *testing.T) {
		f := newFixture(t)
		actor := auth.Actor{ID: uuid.New(), Role: auth.RoleChild}

		_, err := f.svc.WipeAllPoints(context.Background(), actor)

		assert.ErrorIs(t, err, ledger.ErrForbidden)
	})

	t.Run("PartialFailureReportsProgress", func(t *testing.T) {
		f := newFixture(t)
		actor, ownerID := parentActor()
		c1 := ownedChild(ownerID)
		c2 := ownedChild(ownerID)

		f.children.EXPECT().ListChildren(gomock.Any(), ownerID).Return([]*child.Child{c1, c2}, nil)

		tx1 := ledger.NewMockAwardTx(gomock.NewController(t))
		f.repo.EXPECT().BeginAward(gomock.Any(), c1.ID).Return(tx1, nil)
		tx1.EXPECT().Child(gomock.Any()).Return(c1, nil)
		tx1.EXPECT().DeactivateEntries(gomock.Any()).Return(int64(2), nil)
		tx1.EXPECT().SaveChild(gomock.Any(), c1).Return(nil)
		tx1.EXPECT().Commit().Return(nil)
		tx1.EXPECT().Rollback().Return(nil).AnyTimes()

		f.repo.EXPECT().BeginAward(gomock.Any(), c2.ID).Return(nil, errors.New("db down"))

		result, err := f.svc.WipeAllPoints(context.Background(), actor)

		require.Error(t, err)
		assert.Equal(t, 1, result.Children)
		assert.Equal(t, int64(2), result.Entries)
	})
}

// Incremental projection and full rebuild must agree: replay a mixed
// add/remove sequence through ApplyDelta and check it equals the pure sum
// the recompute path would produce.
func TestIncrementalMatchesRebuild(t *testing.T) {
	deltas := []int{10, 495, -600, 42, -7, 500}

	c := &child.Child{CurrentLevel: 1}

	sum := 0
	for _, d := range deltas {
		c.ApplyDelta(d)
		sum += d
	}

	rebuilt := &child.Child{CurrentLevel: 1}
	rebuilt.SetBalance(sum)

	assert.Equal(t, rebuilt.TotalPoints, c.TotalPoints)
	assert.Equal(t, rebuilt.CurrentLevel, c.CurrentLevel)
}
