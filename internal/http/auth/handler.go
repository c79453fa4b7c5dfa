package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tallyapp/tally/internal/auth"
	"github.com/tallyapp/tally/internal/http/respond"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
	r.Post("/child-login", h.childLogin)
}

type sessionResponse struct {
	Token    string     `json:"token"`
	ActorID  uuid.UUID  `json:"actor_id"`
	Role     auth.Role  `json:"role"`
	FamilyID *uuid.UUID `json:"family_id,omitempty"`
}

func toSessionResponse(s *auth.Session) sessionResponse {
	return sessionResponse{
		Token:    s.Token,
		ActorID:  s.Actor.ID,
		Role:     s.Actor.Role,
		FamilyID: s.Actor.FamilyID,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	session, err := h.svc.Register(r.Context(), auth.RegisterParams{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	respond.OK(w, http.StatusCreated, "registered", toSessionResponse(session))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	session, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.OK(w, http.StatusOK, "logged in", toSessionResponse(session))
}

type childLoginRequest struct {
	ChildID uuid.UUID `json:"child_id"`
	PIN     string    `json:"pin"`
}

func (h *Handler) childLogin(w http.ResponseWriter, r *http.Request) {
	var req childLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	session, err := h.svc.ChildLogin(r.Context(), req.ChildID, req.PIN)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.OK(w, http.StatusOK, "logged in", toSessionResponse(session))
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrBadCredentials):
		respond.Fail(w, http.StatusUnauthorized, "bad credentials")
	case errors.Is(err, auth.ErrEmailTaken):
		respond.Fail(w, http.StatusConflict, err.Error())
	default:
		respond.Fail(w, http.StatusInternalServerError, "internal error")
	}
}
