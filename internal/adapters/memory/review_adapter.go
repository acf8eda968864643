package memory

import (
	"context"

	"github.com/hbnb-evolution/backend/internal/domain/entities"
	"github.com/hbnb-evolution/backend/internal/domain/repositories"
	apperrors "github.com/hbnb-evolution/backend/pkg/errors"
)

// ReviewAdapter implements the ReviewRepository interface in process memory
type ReviewAdapter struct {
	store *store[*entities.Review]
}

// NewReviewAdapter creates a new in-memory review repository
func NewReviewAdapter() repositories.ReviewRepository {
	return &ReviewAdapter{store: newStore[*entities.Review]()}
}

// Create inserts a new review
func (a *ReviewAdapter) Create(_ context.Context, review *entities.Review) error {
	if !a.store.add(review.ID, review) {
		return apperrors.NewConflictError("review already exists")
	}
	return nil
}

// GetByID retrieves a review by ID
func (a *ReviewAdapter) GetByID(_ context.Context, id string) (*entities.Review, error) {
	review, ok := a.store.get(id)
	if !ok {
		return nil, apperrors.NewNotFoundError("review not found")
	}
	return review, nil
}

// GetAll retrieves all reviews in insertion order
func (a *ReviewAdapter) GetAll(_ context.Context) ([]*entities.Review, error) {
	return a.store.all(), nil
}

// ListByPlace retrieves the reviews of one place in creation order. A linear
// scan is fine at this scale.
func (a *ReviewAdapter) ListByPlace(_ context.Context, placeID string) ([]*entities.Review, error) {
	var out []*entities.Review
	for _, review := range a.store.all() {
		if review.PlaceID == placeID {
			out = append(out, review)
		}
	}
	return out, nil
}

// Update replaces a stored review
func (a *ReviewAdapter) Update(_ context.Context, review *entities.Review) error {
	if !a.store.update(review.ID, review) {
		return apperrors.NewNotFoundError("review not found")
	}
	return nil
}

// Delete removes a review, reporting whether it existed
func (a *ReviewAdapter) Delete(_ context.Context, id string) (bool, error) {
	return a.store.delete(id), nil
}
