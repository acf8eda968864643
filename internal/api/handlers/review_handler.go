package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hbnb-evolution/backend/internal/api/middleware"
	"github.com/hbnb-evolution/backend/internal/application/services"
	"github.com/hbnb-evolution/backend/internal/domain/entities"
)

// ReviewService defines the review operations used by the handler.
type ReviewService interface {
	CreateReview(ctx context.Context, input services.CreateReviewInput) (*entities.Review, error)
	GetReview(ctx context.Context, id string) (*entities.Review, error)
	GetAllReviews(ctx context.Context) ([]*entities.Review, error)
	GetReviewsByPlace(ctx context.Context, placeID string) ([]*entities.Review, error)
	UpdateReview(ctx context.Context, id string, input services.UpdateReviewInput) (*entities.Review, error)
	DeleteReview(ctx context.Context, id string) (bool, error)
}

// ReviewHandler handles review endpoints.
type ReviewHandler struct {
	service ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(service ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// CreateReview handles POST /api/v1/reviews. The author is always the
// caller; the ownership and double-review rules live in the facade.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var input services.CreateReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	input.UserID = identity.UserID

	review, err := h.service.CreateReview(r.Context(), input)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, review)
}

// ListReviews handles GET /api/v1/reviews
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.GetAllReviews(r.Context())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, reviews)
}

// GetReview handles GET /api/v1/reviews/{id}
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	review, err := h.service.GetReview(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, review)
}

// ListReviewsByPlace handles GET /api/v1/places/{id}/reviews
func (h *ReviewHandler) ListReviewsByPlace(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.GetReviewsByPlace(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, reviews)
}

// UpdateReview handles PUT /api/v1/reviews/{id}. Author or admin only.
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id := r.PathValue("id")

	review, err := h.service.GetReview(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if review.UserID != identity.UserID && !identity.IsAdmin {
		respondWithError(w, http.StatusForbidden, "unauthorized action")
		return
	}

	var input services.UpdateReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	updated, err := h.service.UpdateReview(r.Context(), id, input)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

// DeleteReview handles DELETE /api/v1/reviews/{id}. Author or admin only.
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id := r.PathValue("id")

	review, err := h.service.GetReview(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if review.UserID != identity.UserID && !identity.IsAdmin {
		respondWithError(w, http.StatusForbidden, "unauthorized action")
		return
	}

	deleted, err := h.service.DeleteReview(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if !deleted {
		respondWithError(w, http.StatusNotFound, "review not found")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "review deleted"})
}
