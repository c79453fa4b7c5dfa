package child

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("child not found")
	ErrGoalNotFound    = errors.New("goal not found")
	ErrForbidden       = errors.New("child belongs to another family")
	ErrInvalidArgument = errors.New("invalid argument")
)

// levelStep is the point span of one level.
const levelStep = 500

// Goal is an objective embedded in a Child. Goals have stable ids but no
// identity outside their child; all mutation goes through the aggregate.
type Goal struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	TargetPoints  int        `json:"target_points"`
	CurrentPoints int        `json:"current_points"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	IsCompleted   bool       `json:"is_completed"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// Child is the aggregate the points economy revolves around. TotalPoints and
// CurrentLevel are a projection over the ledger, not independent truth:
// every balance mutation reprojects the level, and a full rebuild from the
// active ledger entries must land on the same numbers.
type Child struct {
	ID           uuid.UUID
	Name         string
	Age          int
	PINHash      string
	TotalPoints  int
	CurrentLevel int
	Goals        []Goal
	OwnerID      uuid.UUID
	FamilyID     *uuid.UUID
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// Level projects the level for a running total: one level per 500 points,
// floored at 1. Totals may be negative, so the division has to floor rather
// than truncate toward zero.
func Level(totalPoints int) int {
	steps := totalPoints / levelStep
	if totalPoints < 0 && totalPoints%levelStep != 0 {
		steps--
	}

	if lvl := steps + 1; lvl > 1 {
		return lvl
	}

	return 1
}

// ApplyDelta moves the running total by delta (negative for removals) and
// reprojects the level. Totals may go arbitrarily negative.
func (c *Child) ApplyDelta(delta int) {
	c.TotalPoints += delta
	c.CurrentLevel = Level(c.TotalPoints)
}

// SetBalance overwrites the running total with a recomputed value and
// reprojects the level. Used by the recompute-from-ledger repair path.
func (c *Child) SetBalance(totalPoints int) {
	c.TotalPoints = totalPoints
	c.CurrentLevel = Level(totalPoints)
}

// AccrueGoals feeds an award into every goal that is still open: not yet
// completed, and either without a deadline or awarded at or before it.
// Completion latches; once IsCompleted is set it never reverts and the goal
// stops accruing. Point removals never reach this method, so goal progress
// only ever grows.
func (c *Child) AccrueGoals(points int, now time.Time) {
	for i := range c.Goals {
		g := &c.Goals[i]
		if g.IsCompleted {
			continue
		}

		if g.Deadline != nil && now.After(*g.Deadline) {
			continue
		}

		g.CurrentPoints += points

		if g.CurrentPoints >= g.TargetPoints {
			completedAt := now
			g.IsCompleted = true
			g.CompletedAt = &completedAt
		}
	}
}

// Goal returns a pointer into the child's goal list, or nil if absent.
func (c *Child) Goal(goalID uuid.UUID) *Goal {
	for i := range c.Goals {
		if c.Goals[i].ID == goalID {
			return &c.Goals[i]
		}
	}

	return nil
}

func (c *Child) removeGoal(goalID uuid.UUID) bool {
	for i := range c.Goals {
		if c.Goals[i].ID == goalID {
			c.Goals = append(c.Goals[:i], c.Goals[i+1:]...)
			return true
		}
	}

	return false
}
