package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEntryNotFound    = errors.New("ledger entry not found")
	ErrNoMagnitude      = errors.New("no activity or explicit points supplied")
	ErrInvalidMagnitude = errors.New("points must be at least 1")
	ErrForbidden        = errors.New("actor cannot manage this child")
)

// Direction is the side of the ledger an entry lands on.
type Direction string

const (
	DirectionAdd    Direction = "add"
	DirectionRemove Direction = "remove"
)

// Sign is the multiplier a direction applies to an entry's magnitude when
// it is summed into a balance.
func (d Direction) Sign() int {
	if d == DirectionRemove {
		return -1
	}

	return 1
}

// Entry is one point event. Entries are append-mostly: after creation the
// only mutation is the soft-delete flag (or a bulk purge); balances are a
// projection over the active set.
type Entry struct {
	ID         uuid.UUID
	ChildID    uuid.UUID
	ActivityID *uuid.UUID
	Points     int
	Direction  Direction
	Date       time.Time
	Reason     string
	Notes      string
	AwardedBy  uuid.UUID
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// Source says where an award's magnitude comes from: a catalog activity or
// an explicit point count ("loose points"). The zero Source resolves to
// nothing. Resolution happens exactly once, at the service boundary.
type Source struct {
	activityID uuid.UUID
	points     int
	kind       sourceKind
}

type sourceKind int

const (
	sourceNone sourceKind = iota
	sourceActivity
	sourceExplicit
)

func ActivitySource(id uuid.UUID) Source {
	return Source{activityID: id, kind: sourceActivity}
}

func ExplicitSource(points int) Source {
	return Source{points: points, kind: sourceExplicit}
}

// Page bounds a history listing. The service normalizes zero and oversized
// values before the store sees them.
type Page struct {
	Limit  int
	Offset int
}

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

func (p Page) normalize() Page {
	if p.Limit <= 0 {
		p.Limit = defaultPageSize
	}

	if p.Limit > maxPageSize {
		p.Limit = maxPageSize
	}

	if p.Offset < 0 {
		p.Offset = 0
	}

	return p
}
