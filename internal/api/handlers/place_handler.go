package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hbnb-evolution/backend/internal/api/middleware"
	"github.com/hbnb-evolution/backend/internal/application/services"
	"github.com/hbnb-evolution/backend/internal/domain/entities"
)

// PlaceService defines the place operations used by the handler.
type PlaceService interface {
	CreatePlace(ctx context.Context, input services.CreatePlaceInput) (*entities.Place, error)
	GetPlace(ctx context.Context, id string) (*entities.Place, error)
	GetAllPlaces(ctx context.Context) ([]*entities.Place, error)
	UpdatePlace(ctx context.Context, id string, input services.UpdatePlaceInput) (*entities.Place, error)
	DeletePlace(ctx context.Context, id string) (bool, error)
}

// PlaceHandler handles place endpoints.
type PlaceHandler struct {
	service PlaceService
}

// NewPlaceHandler creates a new place handler.
func NewPlaceHandler(service PlaceService) *PlaceHandler {
	return &PlaceHandler{service: service}
}

// CreatePlace handles POST /api/v1/places. The caller becomes the owner;
// admins may list a place on behalf of another user by passing owner_id.
func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var input services.CreatePlaceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if input.OwnerID == "" || !identity.IsAdmin {
		input.OwnerID = identity.UserID
	}

	place, err := h.service.CreatePlace(r.Context(), input)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, place)
}

// ListPlaces handles GET /api/v1/places
func (h *PlaceHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.service.GetAllPlaces(r.Context())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, places)
}

// GetPlace handles GET /api/v1/places/{id}
func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	place, err := h.service.GetPlace(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, place)
}

// UpdatePlace handles PUT /api/v1/places/{id}. Owner or admin only.
func (h *PlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id := r.PathValue("id")

	place, err := h.service.GetPlace(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if place.OwnerID != identity.UserID && !identity.IsAdmin {
		respondWithError(w, http.StatusForbidden, "unauthorized action")
		return
	}

	var input services.UpdatePlaceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	updated, err := h.service.UpdatePlace(r.Context(), id, input)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

// DeletePlace handles DELETE /api/v1/places/{id}. Owner or admin only.
func (h *PlaceHandler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id := r.PathValue("id")

	place, err := h.service.GetPlace(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if place.OwnerID != identity.UserID && !identity.IsAdmin {
		respondWithError(w, http.StatusForbidden, "unauthorized action")
		return
	}

	deleted, err := h.service.DeletePlace(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if !deleted {
		respondWithError(w, http.StatusNotFound, "place not found")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "place deleted"})
}
