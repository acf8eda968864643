package memory

import (
	"context"

	"github.com/hbnb-evolution/backend/internal/domain/entities"
	"github.com/hbnb-evolution/backend/internal/domain/repositories"
	apperrors "github.com/hbnb-evolution/backend/pkg/errors"
)

// PlaceAdapter implements the PlaceRepository interface in process memory
type PlaceAdapter struct {
	store *store[*entities.Place]
}

// NewPlaceAdapter creates a new in-memory place repository
func NewPlaceAdapter() repositories.PlaceRepository {
	return &PlaceAdapter{store: newStore[*entities.Place]()}
}

// Create inserts a new place
func (a *PlaceAdapter) Create(_ context.Context, place *entities.Place) error {
	if !a.store.add(place.ID, place) {
		return apperrors.NewConflictError("place already exists")
	}
	return nil
}

// GetByID retrieves a place by ID
func (a *PlaceAdapter) GetByID(_ context.Context, id string) (*entities.Place, error) {
	place, ok := a.store.get(id)
	if !ok {
		return nil, apperrors.NewNotFoundError("place not found")
	}
	return place, nil
}

// GetAll retrieves all places in insertion order
func (a *PlaceAdapter) GetAll(_ context.Context) ([]*entities.Place, error) {
	return a.store.all(), nil
}

// Update replaces a stored place
func (a *PlaceAdapter) Update(_ context.Context, place *entities.Place) error {
	if !a.store.update(place.ID, place) {
		return apperrors.NewNotFoundError("place not found")
	}
	return nil
}

// Delete removes a place, reporting whether it existed
func (a *PlaceAdapter) Delete(_ context.Context, id string) (bool, error) {
	return a.store.delete(id), nil
}
