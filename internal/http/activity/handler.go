package activity

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tallyapp/tally/internal/activity"
	"github.com/tallyapp/tally/internal/auth"
	"github.com/tallyapp/tally/internal/http/respond"
)

type Handler struct {
	svc *activity.Service
}

func NewHandler(svc *activity.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type activityResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Points      int       `json:"points"`
	CreatedAt   time.Time `json:"created_at"`
}

func toResponse(a *activity.Activity) activityResponse {
	return activityResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Points:      a.Points,
		CreatedAt:   a.CreatedAt,
	}
}

type createActivityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFrom(r.Context())
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	a, err := h.svc.Create(r.Context(), actor, activity.CreateParams{
		Name:        req.Name,
		Description: req.Description,
		Points:      req.Points,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	respond.OK(w, http.StatusCreated, "activity created", toResponse(a))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFrom(r.Context())
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	activities, err := h.svc.List(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]activityResponse, len(activities))
	for i, a := range activities {
		out[i] = toResponse(a)
	}

	respond.OK(w, http.StatusOK, "activities", out)
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

	a, err := h.svc.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.OK(w, http.StatusOK, "activity", toResponse(a))
}

type updateActivityRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Points      *int    `json:"points,omitempty"`
	Active      *bool   `json:"active,omitempty"`
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

	var req updateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	a, err := h.svc.Update(r.Context(), actor, id, activity.UpdateParams{
		Name:        req.Name,
		Description: req.Description,
		Points:      req.Points,
		Active:      req.Active,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	respond.OK(w, http.StatusOK, "activity updated", toResponse(a))
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

	respond.OK(w, http.StatusOK, "activity deleted", nil)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, activity.ErrNotFound):
		respond.Fail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, activity.ErrInvalidArgument):
		respond.Fail(w, http.StatusBadRequest, err.Error())
	default:
		respond.Fail(w, http.StatusInternalServerError, "internal error")
	}
}
