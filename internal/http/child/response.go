package child

import (
	"time"

	"github.com/google/uuid"

	"github.com/tallyapp/tally/internal/child"
)

// Response is the wire shape of a child. The PIN hash never leaves the
// server.
type Response struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Age          int          `json:"age"`
	TotalPoints  int          `json:"total_points"`
	CurrentLevel int          `json:"current_level"`
	Goals        []child.Goal `json:"goals"`
	OwnerID      uuid.UUID    `json:"owner_id"`
	FamilyID     *uuid.UUID   `json:"family_id,omitempty"`
	Active       bool         `json:"active"`
	CreatedAt    time.Time    `json:"created_at"`
}

func ToResponse(c *child.Child) Response {
	goals := c.Goals
	if goals == nil {
		goals = []child.Goal{}
	}

	return Response{
		ID:           c.ID,
		Name:         c.Name,
		Age:          c.Age,
		TotalPoints:  c.TotalPoints,
		CurrentLevel: c.CurrentLevel,
		Goals:        goals,
		OwnerID:      c.OwnerID,
		FamilyID:     c.FamilyID,
		Active:       c.Active,
		CreatedAt:    c.CreatedAt,
	}
}

func toResponseList(children []*child.Child) []Response {
	out := make([]Response, len(children))
	for i, c := range children {
		out[i] = ToResponse(c)
	}

	return out
}
