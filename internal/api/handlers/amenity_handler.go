package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hbnb-evolution/backend/internal/application/services"
	"github.com/hbnb-evolution/backend/internal/domain/entities"
)

// AmenityService defines the amenity operations used by the handler.
type AmenityService interface {
	CreateAmenity(ctx context.Context, input services.CreateAmenityInput) (*entities.Amenity, error)
	GetAmenity(ctx context.Context, id string) (*entities.Amenity, error)
	GetAllAmenities(ctx context.Context) ([]*entities.Amenity, error)
	UpdateAmenity(ctx context.Context, id string, input services.UpdateAmenityInput) (*entities.Amenity, error)
	DeleteAmenity(ctx context.Context, id string) (bool, error)
}

// AmenityHandler handles amenity endpoints. Mutations are admin-only;
// routing enforces the admin check.
type AmenityHandler struct {
	service AmenityService
}

// NewAmenityHandler creates a new amenity handler.
func NewAmenityHandler(service AmenityService) *AmenityHandler {
	return &AmenityHandler{service: service}
}

// CreateAmenity handles POST /api/v1/amenities
func (h *AmenityHandler) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	var input services.CreateAmenityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	amenity, err := h.service.CreateAmenity(r.Context(), input)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, amenity)
}

// ListAmenities handles GET /api/v1/amenities
func (h *AmenityHandler) ListAmenities(w http.ResponseWriter, r *http.Request) {
	amenities, err := h.service.GetAllAmenities(r.Context())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, amenities)
}

// GetAmenity handles GET /api/v1/amenities/{id}
func (h *AmenityHandler) GetAmenity(w http.ResponseWriter, r *http.Request) {
	amenity, err := h.service.GetAmenity(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, amenity)
}

// UpdateAmenity handles PUT /api/v1/amenities/{id}
func (h *AmenityHandler) UpdateAmenity(w http.ResponseWriter, r *http.Request) {
	var input services.UpdateAmenityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	amenity, err := h.service.UpdateAmenity(r.Context(), r.PathValue("id"), input)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, amenity)
}

// DeleteAmenity handles DELETE /api/v1/amenities/{id}
func (h *AmenityHandler) DeleteAmenity(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.DeleteAmenity(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if !deleted {
		respondWithError(w, http.StatusNotFound, "amenity not found")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "amenity deleted"})
}
