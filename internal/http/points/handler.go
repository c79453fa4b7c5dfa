package points

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tallyapp/tally/internal/activity"
	"github.com/tallyapp/tally/internal/auth"
	"github.com/tallyapp/tally/internal/child"
	childapi "github.com/tallyapp/tally/internal/http/child"
	"github.com/tallyapp/tally/internal/http/respond"
	"github.com/tallyapp/tally/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/add", h.add)
	r.Post("/remove", h.remove)
	r.Get("/history/{childID}", h.history)
	r.Delete("/entries/{id}", h.deleteEntry)
	r.Post("/recompute/{childID}", h.recompute)
	r.Post("/reset", h.wipePoints)
	r.Delete("/history", h.wipeHistory)
}

type awardRequest struct {
	ChildID    uuid.UUID  `json:"child_id"`
	ActivityID *uuid.UUID `json:"activity_id,omitempty"`
	Points     *int       `json:"points,omitempty"`
	Reason     string     `json:"reason"`
	Notes      string     `json:"notes"`
}

// source builds the tagged union once, at the boundary. An explicit point
// count wins over an activity reference when a client sends both.
func (r awardRequest) source() ledger.Source {
	if r.Points != nil {
		return ledger.ExplicitSource(*r.Points)
	}

	if r.ActivityID != nil {
		return ledger.ActivitySource(*r.ActivityID)
	}

	return ledger.Source{}
}

type awardOp func(ctx context.Context, actor auth.Actor, params ledger.AwardParams) (*ledger.Award, error)

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	h.handleAward(w, r, h.svc.AddPoints, "points added")
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	h.handleAward(w, r, h.svc.RemovePoints, "points removed")
}

func (h *Handler) handleAward(w http.ResponseWriter, r *http.Request, op awardOp, message string) {
	actor, ok := auth.ActorFrom(r.Context())
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req awardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.ChildID == uuid.Nil {
		respond.Fail(w, http.StatusBadRequest, "child_id is required")
		return
	}

	award, err := op(r.Context(), actor, ledger.AwardParams{
		ChildID: req.ChildID,
		Source:  req.source(),
		Reason:  req.Reason,
		Notes:   req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	respond.OK(w, http.StatusCreated, message, toAwardResponse(award))
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFrom(r.Context())
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	childID, err := uuid.Parse(chi.URLParam(r, "childID"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid child id")
		return
	}

	var page ledger.Page

	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			page.Limit = n
		}
	}

	if s := r.URL.Query().Get("offset"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			page.Offset = n
		}
	}

	entries, err := h.svc.History(r.Context(), actor, childID, page)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.OK(w, http.StatusOK, "history", toEntryResponseList(entries))
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFrom(r.Context())
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid id")
		return
	}

	c, err := h.svc.DeleteEntry(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.OK(w, http.StatusOK, "entry deleted and balance recomputed", childapi.ToResponse(c))
}

func (h *Handler) recompute(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFrom(r.Context())
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	childID, err := uuid.Parse(chi.URLParam(r, "childID"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid child id")
		return
	}

	c, err := h.svc.Recompute(r.Context(), actor, childID)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.OK(w, http.StatusOK, "balance recomputed from ledger", childapi.ToResponse(c))
}

func (h *Handler) wipePoints(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFrom(r.Context())
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	result, err := h.svc.WipeAllPoints(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.OK(w, http.StatusOK, "all points reset", wipeResponse{Children: result.Children, Entries: result.Entries})
}

func (h *Handler) wipeHistory(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFrom(r.Context())
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	result, err := h.svc.WipeAllHistory(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.OK(w, http.StatusOK, "all history wiped", wipeResponse{Children: result.Children, Entries: result.Entries})
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, child.ErrNotFound),
		errors.Is(err, ledger.ErrEntryNotFound),
		errors.Is(err, activity.ErrNotFound):
		respond.Fail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ledger.ErrForbidden):
		respond.Fail(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ledger.ErrNoMagnitude), errors.Is(err, ledger.ErrInvalidMagnitude):
		respond.Fail(w, http.StatusBadRequest, err.Error())
	default:
		respond.Fail(w, http.StatusInternalServerError, "internal error")
	}
}
