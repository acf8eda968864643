package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hbnb-evolution/backend/internal/api/middleware"
	"github.com/hbnb-evolution/backend/internal/application/services"
	"github.com/hbnb-evolution/backend/internal/domain/entities"
)

// UserService defines the user operations used by the handler.
type UserService interface {
	CreateUser(ctx context.Context, input services.CreateUserInput) (*entities.User, error)
	GetUser(ctx context.Context, id string) (*entities.User, error)
	GetAllUsers(ctx context.Context) ([]*entities.User, error)
	UpdateUser(ctx context.Context, id string, input services.UpdateUserInput) (*entities.User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
}

// UserHandler handles user endpoints.
type UserHandler struct {
	service UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /api/v1/users. Registration is open; the admin flag
// can only be granted by an admin caller.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input services.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if input.IsAdmin {
		identity, ok := middleware.IdentityFromContext(r.Context())
		if !ok || !identity.IsAdmin {
			respondWithError(w, http.StatusForbidden, "only admins can create admin accounts")
			return
		}
	}

	user, err := h.service.CreateUser(r.Context(), input)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, user)
}

// ListUsers handles GET /api/v1/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers(r.Context())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}

// GetUser handles GET /api/v1/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// UpdateUser handles PUT /api/v1/users/{id}. Callers may only update their
// own profile unless they are admins, and only admins may change email or
// password through this endpoint.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id := r.PathValue("id")
	if id != identity.UserID && !identity.IsAdmin {
		respondWithError(w, http.StatusForbidden, "unauthorized action")
		return
	}

	var input services.UpdateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if (input.Email != nil || input.Password != nil) && !identity.IsAdmin {
		respondWithError(w, http.StatusBadRequest, "you cannot modify email or password")
		return
	}

	user, err := h.service.UpdateUser(r.Context(), id, input)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /api/v1/users/{id}. Admin only; routing enforces
// the admin check.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.DeleteUser(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if !deleted {
		respondWithError(w, http.StatusNotFound, "user not found")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "user deleted"})
}
