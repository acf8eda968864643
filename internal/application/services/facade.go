package services

import (
	"github.com/hbnb-evolution/backend/internal/domain/repositories"
	"github.com/hbnb-evolution/backend/pkg/auth"
)

// Facade is the single coordination point for business rules spanning more
// than one entity kind: email uniqueness, ownership checks, referential
// integrity between users, places, reviews and amenities. It is the only
// component allowed to touch multiple repositories in one operation; the
// repositories themselves stay pure storage.
type Facade struct {
	userRepo    repositories.UserRepository
	placeRepo   repositories.PlaceRepository
	reviewRepo  repositories.ReviewRepository
	amenityRepo repositories.AmenityRepository
	hasher      *auth.Hasher
}

// NewFacade creates the facade over the four entity repositories.
func NewFacade(
	userRepo repositories.UserRepository,
	placeRepo repositories.PlaceRepository,
	reviewRepo repositories.ReviewRepository,
	amenityRepo repositories.AmenityRepository,
	hasher *auth.Hasher,
) *Facade {
	return &Facade{
		userRepo:    userRepo,
		placeRepo:   placeRepo,
		reviewRepo:  reviewRepo,
		amenityRepo: amenityRepo,
		hasher:      hasher,
	}
}
