package child

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tallyapp/tally/internal/auth"
	"github.com/tallyapp/tally/internal/child"
	"github.com/tallyapp/tally/internal/http/respond"
)

type Handler struct {
	svc *child.Service
}

func NewHandler(svc *child.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)

	r.Post("/{id}/goals", h.addGoal)
	r.Patch("/{id}/goals/{goalID}", h.updateGoal)
	r.Delete("/{id}/goals/{goalID}", h.removeGoal)
}

type createChildRequest struct {
	Name     string     `json:"name"`
	Age      int        `json:"age"`
	PIN      string     `json:"pin"`
	FamilyID *uuid.UUID `json:"family_id,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFrom(r.Context())
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createChildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	c, err := h.svc.Create(r.Context(), actor, child.CreateParams{
		Name:     req.Name,
		Age:      req.Age,
		PIN:      req.PIN,
		FamilyID: req.FamilyID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	respond.OK(w, http.StatusCreated, "child created", ToResponse(c))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFrom(r.Context())
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	children, err := h.svc.List(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.OK(w, http.StatusOK, "children", toResponseList(children))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
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

	c, err := h.svc.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.OK(w, http.StatusOK, "child", ToResponse(c))
}

type updateChildRequest struct {
	Name   *string `json:"name,omitempty"`
	Age    *int    `json:"age,omitempty"`
	PIN    *string `json:"pin,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
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

	var req updateChildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	c, err := h.svc.Update(r.Context(), actor, id, child.UpdateParams{
		Name:   req.Name,
		Age:    req.Age,
		PIN:    req.PIN,
		Active: req.Active,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	respond.OK(w, http.StatusOK, "child updated", ToResponse(c))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Delete(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}

	respond.OK(w, http.StatusOK, "child and history deleted", nil)
}

type goalRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	TargetPoints int        `json:"target_points"`
	Deadline     *time.Time `json:"deadline,omitempty"`
}

func (h *Handler) addGoal(w http.ResponseWriter, r *http.Request) {
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

	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	c, err := h.svc.AddGoal(r.Context(), actor, id, child.GoalParams{
		Title:        req.Title,
		Description:  req.Description,
		TargetPoints: req.TargetPoints,
		Deadline:     req.Deadline,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	respond.OK(w, http.StatusCreated, "goal added", ToResponse(c))
}

type updateGoalRequest struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	TargetPoints  *int       `json:"target_points,omitempty"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	ClearDeadline bool       `json:"clear_deadline,omitempty"`
}

func (h *Handler) updateGoal(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFrom(r.Context())
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	childID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid id")
		return
	}

	goalID, err := uuid.Parse(chi.URLParam(r, "goalID"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid goal id")
		return
	}

	var req updateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	c, err := h.svc.UpdateGoal(r.Context(), actor, childID, goalID, child.GoalUpdateParams{
		Title:         req.Title,
		Description:   req.Description,
		TargetPoints:  req.TargetPoints,
		Deadline:      req.Deadline,
		ClearDeadline: req.ClearDeadline,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	respond.OK(w, http.StatusOK, "goal updated", ToResponse(c))
}

func (h *Handler) removeGoal(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFrom(r.Context())
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	childID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid id")
		return
	}

	goalID, err := uuid.Parse(chi.URLParam(r, "goalID"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid goal id")
		return
	}

	c, err := h.svc.RemoveGoal(r.Context(), actor, childID, goalID)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.OK(w, http.StatusOK, "goal removed", ToResponse(c))
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, child.ErrNotFound), errors.Is(err, child.ErrGoalNotFound):
		respond.Fail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, child.ErrForbidden):
		respond.Fail(w, http.StatusForbidden, err.Error())
	case errors.Is(err, child.ErrInvalidArgument):
		respond.Fail(w, http.StatusBadRequest, err.Error())
	default:
		respond.Fail(w, http.StatusInternalServerError, "internal error")
	}
}
