package services

import (
	"context"
	"strings"

	"github.com/hbnb-evolution/backend/internal/domain/entities"
	apperrors "github.com/hbnb-evolution/backend/pkg/errors"
)

// CreateReviewInput carries the fields for reviewing a place.
type CreateReviewInput struct {
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	PlaceID string `json:"place_id"`
	UserID  string `json:"user_id"`
}

// UpdateReviewInput is a partial update of a review's text or rating.
type UpdateReviewInput struct {
	Text   *string `json:"text"`
	Rating *int    `json:"rating"`
}

// CreateReview records a review. Both the author and the place must exist, a
// user may not review their own place, and a user may review a given place
// at most once. On success the review id is registered on both the place's
// and the author's back-reference collections.
func (f *Facade) CreateReview(ctx context.Context, input CreateReviewInput) (*entities.Review, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, apperrors.NewValidationError("text is required")
	}
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}

	user, err := f.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	place, err := f.placeRepo.GetByID(ctx, input.PlaceID)
	if err != nil {
		return nil, err
	}

	if place.OwnerID == user.ID {
		return nil, apperrors.NewValidationError("you cannot review your own place")
	}

	existing, err := f.reviewRepo.ListByPlace(ctx, place.ID)
	if err != nil {
		return nil, err
	}
	for _, review := range existing {
		if review.UserID == user.ID {
			return nil, apperrors.NewValidationError("you have already reviewed this place")
		}
	}

	review := entities.NewReview(input.Text, input.Rating, place.ID, user.ID)
	if err := f.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	place.AddReview(review.ID)
	if err := f.placeRepo.Update(ctx, place); err != nil {
		return nil, err
	}
	user.AddReview(review.ID)
	if err := f.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return review, nil
}

// GetReview retrieves a review by id.
func (f *Facade) GetReview(ctx context.Context, id string) (*entities.Review, error) {
	return f.reviewRepo.GetByID(ctx, id)
}

// GetAllReviews retrieves every review in creation order.
func (f *Facade) GetAllReviews(ctx context.Context) ([]*entities.Review, error) {
	return f.reviewRepo.GetAll(ctx)
}

// GetReviewsByPlace retrieves the reviews of one place in creation order.
// The place must exist.
func (f *Facade) GetReviewsByPlace(ctx context.Context, placeID string) ([]*entities.Review, error) {
	if _, err := f.placeRepo.GetByID(ctx, placeID); err != nil {
		return nil, err
	}
	return f.reviewRepo.ListByPlace(ctx, placeID)
}

// UpdateReview applies a partial update.
func (f *Facade) UpdateReview(ctx context.Context, id string, input UpdateReviewInput) (*entities.Review, error) {
	review, err := f.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Text != nil && strings.TrimSpace(*input.Text) == "" {
		return nil, apperrors.NewValidationError("text must not be empty")
	}
	if input.Rating != nil {
		if err := validateRating(*input.Rating); err != nil {
			return nil, err
		}
	}

	if input.Text != nil {
		review.Text = *input.Text
	}
	if input.Rating != nil {
		review.Rating = *input.Rating
	}
	review.Touch()

	if err := f.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview removes a review and the back-references pointing at it.
// Deleting an unknown id is a no-op.
func (f *Facade) DeleteReview(ctx context.Context, id string) (bool, error) {
	review, err := f.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	if place, err := f.placeRepo.GetByID(ctx, review.PlaceID); err == nil {
		place.RemoveReview(review.ID)
		if err := f.placeRepo.Update(ctx, place); err != nil {
			return false, err
		}
	}
	f.dropUserReviewRef(ctx, review.UserID, review.ID)

	return f.reviewRepo.Delete(ctx, id)
}

// dropUserReviewRef removes a review back-reference from its author,
// tolerating an author that is already gone.
func (f *Facade) dropUserReviewRef(ctx context.Context, userID, reviewID string) {
	user, err := f.userRepo.GetByID(ctx, userID)
	if err != nil {
		return
	}
	user.RemoveReview(reviewID)
	_ = f.userRepo.Update(ctx, user)
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return apperrors.NewValidationError("rating must be between 1 and 5")
	}
	return nil
}
