package message

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tallyapp/tally/internal/auth"
	"github.com/tallyapp/tally/internal/http/respond"
	"github.com/tallyapp/tally/internal/message"
)

type Handler struct {
	svc *message.Service
}

func NewHandler(svc *message.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.send)
	r.Get("/", h.list)
	r.Patch("/{id}/read", h.markRead)
	r.Delete("/{id}", h.delete)
}

type messageResponse struct {
	ID          uuid.UUID    `json:"id"`
	SenderID    uuid.UUID    `json:"sender_id"`
	RecipientID *uuid.UUID   `json:"recipient_id,omitempty"`
	Kind        message.Kind `json:"kind"`
	Body        string       `json:"body"`
	RemindAt    *time.Time   `json:"remind_at,omitempty"`
	ReadAt      *time.Time   `json:"read_at,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

func toResponse(m *message.Message) messageResponse {
	return messageResponse{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Kind:        m.Kind,
		Body:        m.Body,
		RemindAt:    m.RemindAt,
		ReadAt:      m.ReadAt,
		CreatedAt:   m.CreatedAt,
	}
}

type sendRequest struct {
	RecipientID *uuid.UUID   `json:"recipient_id,omitempty"`
	Kind        message.Kind `json:"kind"`
	Body        string       `json:"body"`
	RemindAt    *time.Time   `json:"remind_at,omitempty"`
}

func (h *Handler) send(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFrom(r.Context())
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	m, err := h.svc.Send(r.Context(), actor, message.SendParams{
		RecipientID: req.RecipientID,
		Kind:        req.Kind,
		Body:        req.Body,
		RemindAt:    req.RemindAt,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	respond.OK(w, http.StatusCreated, "message sent", toResponse(m))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFrom(r.Context())
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	messages, err := h.svc.List(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]messageResponse, len(messages))
	for i, m := range messages {
		out[i] = toResponse(m)
	}

	respond.OK(w, http.StatusOK, "messages", out)
}

func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.MarkRead(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}

	respond.OK(w, http.StatusOK, "message read", nil)
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

	respond.OK(w, http.StatusOK, "message deleted", nil)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, message.ErrNotFound):
		respond.Fail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, message.ErrNoFamily), errors.Is(err, message.ErrInvalidArgument):
		respond.Fail(w, http.StatusBadRequest, err.Error())
	default:
		respond.Fail(w, http.StatusInternalServerError, "internal error")
	}
}
