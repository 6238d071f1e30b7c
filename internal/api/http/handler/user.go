package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/storefront/server/internal/logger"
	"github.com/storefront/server/internal/model"
)

// UserService defines business operations for user management.
type UserService interface {
	Create(ctx context.Context, params model.CreateUserParams) (model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateUserParams) (model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// User handles HTTP endpoints for users.
type User struct {
	userService UserService
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

type createUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type updateUserRequest struct {
	Email *string `json:"email"`
	Name  *string `json:"name"`
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, model.NewValidation("id", "must be a valid uuid")
	}
	return id, nil
}

func (h *User) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, model.NewValidation("", "invalid json body"))
		return
	}

	user, err := h.userService.Create(r.Context(), model.CreateUserParams{Email: req.Email, Name: req.Name})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *User) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *User) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *User) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, model.NewValidation("", "invalid json body"))
		return
	}

	user, err := h.userService.Update(r.Context(), id, model.UpdateUserParams{Email: req.Email, Name: req.Name})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *User) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
