package memory

import (
	"context"

	"github.com/hbnb-evolution/backend/internal/domain/entities"
	"github.com/hbnb-evolution/backend/internal/domain/repositories"
	apperrors "github.com/hbnb-evolution/backend/pkg/errors"
)

// UserAdapter implements the UserRepository interface in process memory
type UserAdapter struct {
	store *store[*entities.User]
}

// NewUserAdapter creates a new in-memory user repository
func NewUserAdapter() repositories.UserRepository {
	return &UserAdapter{store: newStore[*entities.User]()}
}

// Create inserts a new user
func (a *UserAdapter) Create(_ context.Context, user *entities.User) error {
	if !a.store.add(user.ID, user) {
		return apperrors.NewConflictError("user already exists")
	}
	return nil
}

// GetByID retrieves a user by ID
func (a *UserAdapter) GetByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := a.store.get(id)
	if !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	return user, nil
}

// GetByEmail retrieves a user by normalized email
func (a *UserAdapter) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	normalized := entities.NormalizeEmail(email)
	for _, user := range a.store.all() {
		if user.Email == normalized {
			return user, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

// GetAll retrieves all users in insertion order
func (a *UserAdapter) GetAll(_ context.Context) ([]*entities.User, error) {
	return a.store.all(), nil
}

// Update replaces a stored user
func (a *UserAdapter) Update(_ context.Context, user *entities.User) error {
	if !a.store.update(user.ID, user) {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}

// Delete removes a user, reporting whether it existed
func (a *UserAdapter) Delete(_ context.Context, id string) (bool, error) {
	return a.store.delete(id), nil
}
