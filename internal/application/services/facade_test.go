package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hbnb-evolution/backend/internal/adapters/memory"
	"github.com/hbnb-evolution/backend/internal/application/services"
	"github.com/hbnb-evolution/backend/internal/domain/entities"
	"github.com/hbnb-evolution/backend/pkg/auth"
)

// newTestFacade wires the facade over fresh in-memory repositories, the same
// adapters production uses. Bcrypt runs at its cheapest cost to keep the
// suite fast.
func newTestFacade() *services.Facade {
	return services.NewFacade(
		memory.NewUserAdapter(),
		memory.NewPlaceAdapter(),
		memory.NewReviewAdapter(),
		memory.NewAmenityAdapter(),
		auth.NewHasher(4),
	)
}

func mustCreateUser(t *testing.T, f *services.Facade, email string) *entities.User {
	t.Helper()
	user, err := f.CreateUser(context.Background(), services.CreateUserInput{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "secret123",
	})
	require.NoError(t, err)
	return user
}

func mustCreatePlace(t *testing.T, f *services.Facade, ownerID string, amenities ...string) *entities.Place {
	t.Helper()
	place, err := f.CreatePlace(context.Background(), services.CreatePlaceInput{
		Title:     "Cozy Loft",
		Price:     80,
		Latitude:  48.85,
		Longitude: 2.35,
		OwnerID:   ownerID,
		Amenities: amenities,
	})
	require.NoError(t, err)
	return place
}

func mustCreateAmenity(t *testing.T, f *services.Facade, name string) *entities.Amenity {
	t.Helper()
	amenity, err := f.CreateAmenity(context.Background(), services.CreateAmenityInput{Name: name})
	require.NoError(t, err)
	return amenity
}

func strPtr(s string) *string       { return &s }
func intPtr(i int) *int             { return &i }
func floatPtr(v float64) *float64   { return &v }
func idsPtr(ids []string) *[]string { return &ids }
