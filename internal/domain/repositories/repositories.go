package repositories

import (
	"context"

	"github.com/hbnb-evolution/backend/internal/domain/entities"
)

// UserRepository defines the interface for user storage
type UserRepository interface {
	// Create inserts a new user; fails with a conflict if the id exists
	Create(ctx context.Context, user *entities.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// GetByEmail retrieves a user by normalized email
	GetByEmail(ctx context.Context, email string) (*entities.User, error)

	// GetAll retrieves all users in insertion order
	GetAll(ctx context.Context) ([]*entities.User, error)

	// Update replaces a stored user
	Update(ctx context.Context, user *entities.User) error

	// Delete removes a user, reporting whether it existed
	Delete(ctx context.Context, id string) (bool, error)
}

// PlaceRepository defines the interface for place storage
type PlaceRepository interface {
	Create(ctx context.Context, place *entities.Place) error
	GetByID(ctx context.Context, id string) (*entities.Place, error)
	GetAll(ctx context.Context) ([]*entities.Place, error)
	Update(ctx context.Context, place *entities.Place) error
	Delete(ctx context.Context, id string) (bool, error)
}

// ReviewRepository defines the interface for review storage
type ReviewRepository interface {
	Create(ctx context.Context, review *entities.Review) error
	GetByID(ctx context.Context, id string) (*entities.Review, error)
	GetAll(ctx context.Context) ([]*entities.Review, error)

	// ListByPlace retrieves the reviews of one place in creation order
	ListByPlace(ctx context.Context, placeID string) ([]*entities.Review, error)

	Update(ctx context.Context, review *entities.Review) error
	Delete(ctx context.Context, id string) (bool, error)
}

// AmenityRepository defines the interface for amenity storage
type AmenityRepository interface {
	Create(ctx context.Context, amenity *entities.Amenity) error
	GetByID(ctx context.Context, id string) (*entities.Amenity, error)
	GetAll(ctx context.Context) ([]*entities.Amenity, error)
	Update(ctx context.Context, amenity *entities.Amenity) error
	Delete(ctx context.Context, id string) (bool, error)
}
