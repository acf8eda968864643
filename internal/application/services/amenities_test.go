package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbnb-evolution/backend/internal/application/services"
	apperrors "github.com/hbnb-evolution/backend/pkg/errors"
)

func TestCreateAmenity_RequiresName(t *testing.T) {
	f := newTestFacade()

	_, err := f.CreateAmenity(context.Background(), services.CreateAmenityInput{Name: "  "})
	assert.True(t, apperrors.IsValidation(err))
}

func TestAmenity_CRUD(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	amenity := mustCreateAmenity(t, f, "WiFi")

	got, err := f.GetAmenity(ctx, amenity.ID)
	require.NoError(t, err)
	assert.Equal(t, "WiFi", got.Name)

	updated, err := f.UpdateAmenity(ctx, amenity.ID, services.UpdateAmenityInput{Name: strPtr("Fast WiFi")})
	require.NoError(t, err)
	assert.Equal(t, "Fast WiFi", updated.Name)
	assert.Equal(t, amenity.ID, updated.ID)
	assert.Equal(t, amenity.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(amenity.UpdatedAt))

	all, err := f.GetAllAmenities(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	ok, err := f.DeleteAmenity(ctx, amenity.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.DeleteAmenity(ctx, amenity.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateAmenity_UnknownIDNotFound(t *testing.T) {
	f := newTestFacade()

	_, err := f.UpdateAmenity(context.Background(), "missing", services.UpdateAmenityInput{Name: strPtr("x")})
	assert.True(t, apperrors.IsNotFound(err))
}
