package child_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyapp/tally/internal/child"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name        string
		totalPoints int
		want        int
	}{
		{name: "Zero", totalPoints: 0, want: 1},
		{name: "BelowFirstStep", totalPoints: 499, want: 1},
		{name: "ExactStep", totalPoints: 500, want: 2},
		{name: "MidSecondLevel", totalPoints: 505, want: 2},
		{name: "TwoSteps", totalPoints: 1000, want: 3},
		{name: "NegativeFloorsAtOne", totalPoints: -95, want: 1},
		{name: "ExactNegativeStep", totalPoints: -500, want: 1},
		{name: "DeeplyNegative", totalPoints: -10000, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, child.Level(tt.totalPoints))
		})
	}
}

// The running balance example: 0 → +10 → +495 → -600 must pass through
// levels 1, 1, 2, 1 with the total ending at -95.
func TestApplyDelta(t *testing.T) {
	c := &child.Child{TotalPoints: 0, CurrentLevel: 1}

	c.ApplyDelta(10)
	assert.Equal(t, 10, c.TotalPoints)
	assert.Equal(t, 1, c.CurrentLevel)

	c.ApplyDelta(495)
	assert.Equal(t, 505, c.TotalPoints)
	assert.Equal(t, 2, c.CurrentLevel)

	c.ApplyDelta(-600)
	assert.Equal(t, -95, c.TotalPoints)
	assert.Equal(t, 1, c.CurrentLevel)
}

func TestSetBalance(t *testing.T) {
	c := &child.Child{TotalPoints: 505, CurrentLevel: 2}

	c.SetBalance(-95)

	assert.Equal(t, -95, c.TotalPoints)
	assert.Equal(t, 1, c.CurrentLevel)
}

func TestAccrueGoals(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("AccruesAndCompletes", func(t *testing.T) {
		c := &child.Child{Goals: []child.Goal{{ID: uuid.New(), Title: "Read a book", TargetPoints: 20}}}

		c.AccrueGoals(10, now)

		g := c.Goals[0]
		assert.Equal(t, 10, g.CurrentPoints)
		assert.False(t, g.IsCompleted)

		c.AccrueGoals(15, now)

		g = c.Goals[0]
		assert.Equal(t, 25, g.CurrentPoints)
		assert.True(t, g.IsCompleted)
		require.NotNil(t, g.CompletedAt)
		assert.Equal(t, now, *g.CompletedAt)
	})

	t.Run("CompletedGoalStopsAccruing", func(t *testing.T) {
		completedAt := now.Add(-time.Hour)
		c := &child.Child{Goals: []child.Goal{{
			ID:            uuid.New(),
			TargetPoints:  20,
			CurrentPoints: 25,
			IsCompleted:   true,
			CompletedAt:   &completedAt,
		}}}

		c.AccrueGoals(5, now)

		g := c.Goals[0]
		assert.Equal(t, 25, g.CurrentPoints)
		assert.True(t, g.IsCompleted)
		assert.Equal(t, completedAt, *g.CompletedAt)
	})

	t.Run("ExpiredDeadlineSkipped", func(t *testing.T) {
		expired := now.Add(-time.Minute)
		c := &child.Child{Goals: []child.Goal{{ID: uuid.New(), TargetPoints: 20, Deadline: &expired}}}

		c.AccrueGoals(10, now)

		assert.Equal(t, 0, c.Goals[0].CurrentPoints)
	})

	t.Run("DeadlineBoundaryInclusive", func(t *testing.T) {
		deadline := now
		c := &child.Child{Goals: []child.Goal{{ID: uuid.New(), TargetPoints: 20, Deadline: &deadline}}}

		c.AccrueGoals(10, now)

		assert.Equal(t, 10, c.Goals[0].CurrentPoints)
	})

	t.Run("ExactTargetCompletes", func(t *testing.T) {
		c := &child.Child{Goals: []child.Goal{{ID: uuid.New(), TargetPoints: 10}}}

		c.AccrueGoals(10, now)

		assert.True(t, c.Goals[0].IsCompleted)
	})

	t.Run("AllOpenGoalsAccrue", func(t *testing.T) {
		c := &child.Child{Goals: []child.Goal{
			{ID: uuid.New(), TargetPoints: 100},
			{ID: uuid.New(), TargetPoints: 50},
		}}

		c.AccrueGoals(30, now)

		assert.Equal(t, 30, c.Goals[0].CurrentPoints)
		assert.Equal(t, 30, c.Goals[1].CurrentPoints)
	})
}
