package memory

import (
	"context"

	"github.com/hbnb-evolution/backend/internal/domain/entities"
	"github.com/hbnb-evolution/backend/internal/domain/repositories"
	apperrors "github.com/hbnb-evolution/backend/pkg/errors"
)

// AmenityAdapter implements the AmenityRepository interface in process memory
type AmenityAdapter struct {
	store *store[*entities.Amenity]
}

// NewAmenityAdapter creates a new in-memory amenity repository
func NewAmenityAdapter() repositories.AmenityRepository {
	return &AmenityAdapter{store: newStore[*entities.Amenity]()}
}

// Create inserts a new amenity
func (a *AmenityAdapter) Create(_ context.Context, amenity *entities.Amenity) error {
	if !a.store.add(amenity.ID, amenity) {
		return apperrors.NewConflictError("amenity already exists")
	}
	return nil
}

// GetByID retrieves an amenity by ID
func (a *AmenityAdapter) GetByID(_ context.Context, id string) (*entities.Amenity, error) {
	amenity, ok := a.store.get(id)
	if !ok {
		return nil, apperrors.NewNotFoundError("amenity not found")
	}
	return amenity, nil
}

// GetAll retrieves all amenities in insertion order
func (a *AmenityAdapter) GetAll(_ context.Context) ([]*entities.Amenity, error) {
	return a.store.all(), nil
}

// Update replaces a stored amenity
func (a *AmenityAdapter) Update(_ context.Context, amenity *entities.Amenity) error {
	if !a.store.update(amenity.ID, amenity) {
		return apperrors.NewNotFoundError("amenity not found")
	}
	return nil
}

// Delete removes an amenity, reporting whether it existed
func (a *AmenityAdapter) Delete(_ context.Context, id string) (bool, error) {
	return a.store.delete(id), nil
}
