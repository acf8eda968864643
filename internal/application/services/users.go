package services

import (
	"context"
	"strings"

	"github.com/hbnb-evolution/backend/internal/domain/entities"
	apperrors "github.com/hbnb-evolution/backend/pkg/errors"
)

// CreateUserInput carries the fields for registering a user.
type CreateUserInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	IsAdmin   bool   `json:"is_admin"`
}

// UpdateUserInput is a partial update. Nil fields are left untouched, which
// gives a deterministic allow-list of updatable fields. Whether email or
// password changes are permitted for a given caller is route policy; the
// facade performs the object-level update and re-checks uniqueness.
type UpdateUserInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

// CreateUser registers a new user. The email is normalized before the
// uniqueness check and the password is hashed before storage.
func (f *Facade) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	if strings.TrimSpace(input.FirstName) == "" {
		return nil, apperrors.NewValidationError("first_name is required")
	}
	if strings.TrimSpace(input.LastName) == "" {
		return nil, apperrors.NewValidationError("last_name is required")
	}
	email := entities.NormalizeEmail(input.Email)
	if email == "" {
		return nil, apperrors.NewValidationError("email is required")
	}
	if input.Password == "" {
		return nil, apperrors.NewValidationError("password is required")
	}

	if err := f.checkEmailAvailable(ctx, email, ""); err != nil {
		return nil, err
	}

	hashed, err := f.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}

	user := entities.NewUser(input.FirstName, input.LastName, email, hashed, input.IsAdmin)
	if err := f.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser retrieves a user by id.
func (f *Facade) GetUser(ctx context.Context, id string) (*entities.User, error) {
	return f.userRepo.GetByID(ctx, id)
}

// GetUserByEmail retrieves a user by email, using the same normalization as
// creation.
func (f *Facade) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return f.userRepo.GetByEmail(ctx, email)
}

// GetAllUsers retrieves every user in creation order.
func (f *Facade) GetAllUsers(ctx context.Context) ([]*entities.User, error) {
	return f.userRepo.GetAll(ctx)
}

// UpdateUser applies a partial update. An email change is re-checked for
// uniqueness against all other users before anything is applied; the first
// violated invariant aborts the whole update.
func (f *Facade) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*entities.User, error) {
	user, err := f.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var email string
	if input.Email != nil {
		email = entities.NormalizeEmail(*input.Email)
		if email == "" {
			return nil, apperrors.NewValidationError("email must not be empty")
		}
		if err := f.checkEmailAvailable(ctx, email, id); err != nil {
			return nil, err
		}
	}
	if input.FirstName != nil && strings.TrimSpace(*input.FirstName) == "" {
		return nil, apperrors.NewValidationError("first_name must not be empty")
	}
	if input.LastName != nil && strings.TrimSpace(*input.LastName) == "" {
		return nil, apperrors.NewValidationError("last_name must not be empty")
	}

	var hashed string
	if input.Password != nil {
		if *input.Password == "" {
			return nil, apperrors.NewValidationError("password must not be empty")
		}
		hashed, err = f.hasher.Hash(*input.Password)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to hash password", err)
		}
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil {
		user.Email = email
	}
	if input.Password != nil {
		user.Password = hashed
	}
	user.Touch()

	if err := f.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user together with the places they own and the
// reviews they authored. Deleting an unknown id is a no-op.
func (f *Facade) DeleteUser(ctx context.Context, id string) (bool, error) {
	user, err := f.userRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	for _, reviewID := range user.Reviews {
		if _, err := f.DeleteReview(ctx, reviewID); err != nil {
			return false, err
		}
	}
	for _, placeID := range user.Places {
		if _, err := f.DeletePlace(ctx, placeID); err != nil {
			return false, err
		}
	}

	return f.userRepo.Delete(ctx, id)
}

// Authenticate verifies a user's credentials and returns the account. The
// caller mints the access token; the facade never sees one.
func (f *Facade) Authenticate(ctx context.Context, email, password string) (*entities.User, error) {
	user, err := f.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}
	if !f.hasher.Verify(user.Password, password) {
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}
	return user, nil
}

// checkEmailAvailable rejects with a conflict when any user other than
// excludeID already holds the normalized email.
func (f *Facade) checkEmailAvailable(ctx context.Context, email, excludeID string) error {
	existing, err := f.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != excludeID {
		return apperrors.NewConflictError("email already exists")
	}
	return nil
}
