package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbnb-evolution/backend/internal/adapters/memory"
	"github.com/hbnb-evolution/backend/internal/domain/entities"
	apperrors "github.com/hbnb-evolution/backend/pkg/errors"
)

func TestUserAdapter_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserAdapter()

	user := entities.NewUser("Jane", "Doe", "jane@example.com", "hash", false)
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	got, err = repo.GetByEmail(ctx, " JANE@example.com ")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestUserAdapter_CreateDuplicateIDConflicts(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserAdapter()

	user := entities.NewUser("Jane", "Doe", "jane@example.com", "hash", false)
	require.NoError(t, repo.Create(ctx, user))

	err := repo.Create(ctx, user)
	assert.True(t, apperrors.IsConflict(err))
}

func TestUserAdapter_GetByIDNotFound(t *testing.T) {
	repo := memory.NewUserAdapter()

	_, err := repo.GetByID(context.Background(), "missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUserAdapter_GetAllPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserAdapter()

	first := entities.NewUser("A", "A", "a@example.com", "hash", false)
	second := entities.NewUser("B", "B", "b@example.com", "hash", false)
	third := entities.NewUser("C", "C", "c@example.com", "hash", false)
	for _, u := range []*entities.User{first, second, third} {
		require.NoError(t, repo.Create(ctx, u))
	}

	ok, err := repo.Delete(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, third.ID, all[1].ID)
}

func TestUserAdapter_SnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserAdapter()

	user := entities.NewUser("Jane", "Doe", "jane@example.com", "hash", false)
	user.AddPlace("place-1")
	require.NoError(t, repo.Create(ctx, user))

	snapshot, err := repo.GetAll(ctx)
	require.NoError(t, err)

	updated := user.Clone()
	updated.FirstName = "Janet"
	updated.AddPlace("place-2")
	require.NoError(t, repo.Update(ctx, updated))

	assert.Equal(t, "Jane", snapshot[0].FirstName)
	assert.Equal(t, []string{"place-1"}, snapshot[0].Places)
}

func TestUserAdapter_UpdateUnknownIDNotFound(t *testing.T) {
	repo := memory.NewUserAdapter()

	user := entities.NewUser("Jane", "Doe", "jane@example.com", "hash", false)
	err := repo.Update(context.Background(), user)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUserAdapter_DeleteReportsRemoval(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserAdapter()

	user := entities.NewUser("Jane", "Doe", "jane@example.com", "hash", false)
	require.NoError(t, repo.Create(ctx, user))

	ok, err := repo.Delete(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.GetByID(ctx, user.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestReviewAdapter_ListByPlace(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewReviewAdapter()

	first := entities.NewReview("great", 5, "place-1", "user-1")
	other := entities.NewReview("meh", 2, "place-2", "user-1")
	second := entities.NewReview("nice", 4, "place-1", "user-2")
	for _, r := range []*entities.Review{first, other, second} {
		require.NoError(t, repo.Create(ctx, r))
	}

	reviews, err := repo.ListByPlace(ctx, "place-1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, first.ID, reviews[0].ID)
	assert.Equal(t, second.ID, reviews[1].ID)
}

func TestAmenityAdapter_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAmenityAdapter()

	amenity := entities.NewAmenity("WiFi")
	require.NoError(t, repo.Create(ctx, amenity))

	got, err := repo.GetByID(ctx, amenity.ID)
	require.NoError(t, err)
	assert.Equal(t, "WiFi", got.Name)

	got.Name = "Fast WiFi"
	got.Touch()
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByID(ctx, amenity.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fast WiFi", updated.Name)
	assert.True(t, updated.UpdatedAt.After(amenity.UpdatedAt))
}
