package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/xenking/spud-shack/internal/domain/user"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp creates an account with the welcome bonus. Duplicate emails return
// 409 without touching the existing account.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	u, err := h.users.SignUp(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			respondError(w, http.StatusConflict, "email already registered")
			return
		}
		internalError(w, r, err)
		return
	}
	h.respondUser(w, http.StatusCreated, u)
}

// Login authenticates by email and password.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		internalError(w, r, err)
		return
	}
	h.respondUser(w, http.StatusOK, u)
}

// Guest returns the session-only guest pseudo-account.
func (h *Handler) Guest(w http.ResponseWriter, _ *http.Request) {
	h.respondUser(w, http.StatusOK, h.users.Guest())
}

func (h *Handler) respondUser(w http.ResponseWriter, status int, u *user.User) {
	e := &jx.Encoder{}
	encUser(e, u)
	respond(w, status, e)
}
