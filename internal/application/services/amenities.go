package services

import (
	"context"
	"strings"

	"github.com/hbnb-evolution/backend/internal/domain/entities"
	apperrors "github.com/hbnb-evolution/backend/pkg/errors"
)

// CreateAmenityInput carries the fields for registering an amenity.
type CreateAmenityInput struct {
	Name string `json:"name"`
}

// UpdateAmenityInput is a partial update of an amenity.
type UpdateAmenityInput struct {
	Name *string `json:"name"`
}

// CreateAmenity registers a new amenity. No cross-entity checks apply.
func (f *Facade) CreateAmenity(ctx context.Context, input CreateAmenityInput) (*entities.Amenity, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("name is required")
	}

	amenity := entities.NewAmenity(input.Name)
	if err := f.amenityRepo.Create(ctx, amenity); err != nil {
		return nil, err
	}
	return amenity, nil
}

// GetAmenity retrieves an amenity by id.
func (f *Facade) GetAmenity(ctx context.Context, id string) (*entities.Amenity, error) {
	return f.amenityRepo.GetByID(ctx, id)
}

// GetAllAmenities retrieves every amenity in creation order.
func (f *Facade) GetAllAmenities(ctx context.Context) ([]*entities.Amenity, error) {
	return f.amenityRepo.GetAll(ctx)
}

// UpdateAmenity applies a partial update.
func (f *Facade) UpdateAmenity(ctx context.Context, id string, input UpdateAmenityInput) (*entities.Amenity, error) {
	amenity, err := f.amenityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, apperrors.NewValidationError("name must not be empty")
		}
		amenity.Name = *input.Name
	}
	amenity.Touch()

	if err := f.amenityRepo.Update(ctx, amenity); err != nil {
		return nil, err
	}
	return amenity, nil
}

// DeleteAmenity removes an amenity and drops it from every place's amenity
// set. Deleting an unknown id is a no-op.
func (f *Facade) DeleteAmenity(ctx context.Context, id string) (bool, error) {
	if _, err := f.amenityRepo.GetByID(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	places, err := f.placeRepo.GetAll(ctx)
	if err != nil {
		return false, err
	}
	for _, place := range places {
		before := len(place.Amenities)
		place.RemoveAmenity(id)
		if len(place.Amenities) != before {
			if err := f.placeRepo.Update(ctx, place); err != nil {
				return false, err
			}
		}
	}

	return f.amenityRepo.Delete(ctx, id)
}
