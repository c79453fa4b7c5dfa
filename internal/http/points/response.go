package points

import (
	"time"

	"github.com/google/uuid"

	childapi "github.com/tallyapp/tally/internal/http/child"
	"github.com/tallyapp/tally/internal/ledger"
)

type entryResponse struct {
	ID         uuid.UUID        `json:"id"`
	ChildID    uuid.UUID        `json:"child_id"`
	ActivityID *uuid.UUID       `json:"activity_id,omitempty"`
	Points     int              `json:"points"`
	Direction  ledger.Direction `json:"direction"`
	Date       time.Time        `json:"date"`
	Reason     string           `json:"reason,omitempty"`
	Notes      string           `json:"notes,omitempty"`
	AwardedBy  uuid.UUID        `json:"awarded_by"`
}

func toEntryResponse(e *ledger.Entry) entryResponse {
	return entryResponse{
		ID:         e.ID,
		ChildID:    e.ChildID,
		ActivityID: e.ActivityID,
		Points:     e.Points,
		Direction:  e.Direction,
		Date:       e.Date,
		Reason:     e.Reason,
		Notes:      e.Notes,
		AwardedBy:  e.AwardedBy,
	}
}

func toEntryResponseList(entries []*ledger.Entry) []entryResponse {
	out := make([]entryResponse, len(entries))
	for i, e := range entries {
		out[i] = toEntryResponse(e)
	}

	return out
}

type awardResponse struct {
	Entry entryResponse     `json:"entry"`
	Child childapi.Response `json:"child"`
}

func toAwardResponse(a *ledger.Award) awardResponse {
	return awardResponse{
		Entry: toEntryResponse(a.Entry),
		Child: childapi.ToResponse(a.Child),
	}
}

type wipeResponse struct {
	Children int   `json:"children"`
	Entries  int64 `json:"entries"`
}
