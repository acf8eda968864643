package services

import (
	"context"
	"strings"

	"github.com/hbnb-evolution/backend/internal/domain/entities"
	apperrors "github.com/hbnb-evolution/backend/pkg/errors"
)

// CreatePlaceInput carries the fields for listing a place.
type CreatePlaceInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	OwnerID     string   `json:"owner_id"`
	Amenities   []string `json:"amenities"`
}

// UpdatePlaceInput is a partial update. A non-nil Amenities field replaces
// the whole amenity set rather than merging into it.
type UpdatePlaceInput struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Amenities   *[]string `json:"amenities"`
}

// CreatePlace lists a new place. The owner must exist; amenity ids that do
// not resolve are silently dropped. The new place is registered on the
// owner's back-reference collection.
func (f *Facade) CreatePlace(ctx context.Context, input CreatePlaceInput) (*entities.Place, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.NewValidationError("title is required")
	}
	if err := validatePlaceFields(input.Price, input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	owner, err := f.userRepo.GetByID(ctx, input.OwnerID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFoundError("owner not found")
		}
		return nil, err
	}

	place := entities.NewPlace(input.Title, input.Description, input.Price, input.Latitude, input.Longitude, owner.ID)
	f.resolveAmenities(ctx, place, input.Amenities)

	if err := f.placeRepo.Create(ctx, place); err != nil {
		return nil, err
	}

	owner.AddPlace(place.ID)
	if err := f.userRepo.Update(ctx, owner); err != nil {
		return nil, err
	}

	return place, nil
}

// GetPlace retrieves a place by id.
func (f *Facade) GetPlace(ctx context.Context, id string) (*entities.Place, error) {
	return f.placeRepo.GetByID(ctx, id)
}

// GetAllPlaces retrieves every place in creation order.
func (f *Facade) GetAllPlaces(ctx context.Context) ([]*entities.Place, error) {
	return f.placeRepo.GetAll(ctx)
}

// UpdatePlace applies a partial update. When the amenities field is present
// the full set is replaced: cleared, then rebuilt from the resolvable ids.
func (f *Facade) UpdatePlace(ctx context.Context, id string, input UpdatePlaceInput) (*entities.Place, error) {
	place, err := f.placeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, apperrors.NewValidationError("title must not be empty")
	}
	price := place.Price
	latitude := place.Latitude
	longitude := place.Longitude
	if input.Price != nil {
		price = *input.Price
	}
	if input.Latitude != nil {
		latitude = *input.Latitude
	}
	if input.Longitude != nil {
		longitude = *input.Longitude
	}
	if err := validatePlaceFields(price, latitude, longitude); err != nil {
		return nil, err
	}

	if input.Title != nil {
		place.Title = *input.Title
	}
	if input.Description != nil {
		place.Description = *input.Description
	}
	place.Price = price
	place.Latitude = latitude
	place.Longitude = longitude
	if input.Amenities != nil {
		place.ClearAmenities()
		f.resolveAmenities(ctx, place, *input.Amenities)
	}
	place.Touch()

	if err := f.placeRepo.Update(ctx, place); err != nil {
		return nil, err
	}
	return place, nil
}

// DeletePlace removes a place, its reviews, and the back-references held by
// the owner and the review authors. Deleting an unknown id is a no-op.
func (f *Facade) DeletePlace(ctx context.Context, id string) (bool, error) {
	place, err := f.placeRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	reviews, err := f.reviewRepo.ListByPlace(ctx, id)
	if err != nil {
		return false, err
	}
	for _, review := range reviews {
		if _, err := f.reviewRepo.Delete(ctx, review.ID); err != nil {
			return false, err
		}
		f.dropUserReviewRef(ctx, review.UserID, review.ID)
	}

	// The owner may already be gone when cascading from a user delete.
	if owner, err := f.userRepo.GetByID(ctx, place.OwnerID); err == nil {
		owner.RemovePlace(place.ID)
		if err := f.userRepo.Update(ctx, owner); err != nil {
			return false, err
		}
	}

	return f.placeRepo.Delete(ctx, id)
}

// resolveAmenities adds every amenity id that resolves to an existing
// amenity; unresolvable ids are dropped. The place's set semantics absorb
// duplicates.
func (f *Facade) resolveAmenities(ctx context.Context, place *entities.Place, amenityIDs []string) {
	for _, amenityID := range amenityIDs {
		if _, err := f.amenityRepo.GetByID(ctx, amenityID); err == nil {
			place.AddAmenity(amenityID)
		}
	}
}

func validatePlaceFields(price, latitude, longitude float64) error {
	if price < 0 {
		return apperrors.NewValidationError("price must be non-negative")
	}
	if latitude < -90 || latitude > 90 {
		return apperrors.NewValidationError("latitude must be between -90 and 90")
	}
	if longitude < -180 || longitude > 180 {
		return apperrors.NewValidationError("longitude must be between -180 and 180")
	}
	return nil
}
