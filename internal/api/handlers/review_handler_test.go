package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbnb-evolution/backend/internal/api/handlers"
	"github.com/hbnb-evolution/backend/internal/application/services"
	"github.com/hbnb-evolution/backend/internal/domain/entities"
)

func TestReviewHandler_CreateReview_AuthorIsCaller(t *testing.T) {
	facade := newTestFacade()
	ownerID := registerUser(t, facade, "owner@example.com", false)
	guestID := registerUser(t, facade, "guest@example.com", false)
	placeID := createPlace(t, facade, ownerID)
	handler := handlers.NewReviewHandler(facade)

	body := `{"text":"Great stay","rating":5,"place_id":"` + placeID + `","user_id":"spoofed"}`
	req := httptest.NewRequest("POST", "/api/v1/reviews", strings.NewReader(body))
	req = asUser(req, guestID, false)
	w := httptest.NewRecorder()

	handler.CreateReview(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var review entities.Review
	require.NoError(t, json.NewDecoder(w.Body).Decode(&review))
	assert.Equal(t, guestID, review.UserID)
	assert.Equal(t, placeID, review.PlaceID)
}

func TestReviewHandler_CreateReview_OwnPlaceRejected(t *testing.T) {
	facade := newTestFacade()
	ownerID := registerUser(t, facade, "owner@example.com", false)
	placeID := createPlace(t, facade, ownerID)
	handler := handlers.NewReviewHandler(facade)

	body := `{"text":"Lovely","rating":5,"place_id":"` + placeID + `"}`
	req := httptest.NewRequest("POST", "/api/v1/reviews", strings.NewReader(body))
	req = asUser(req, ownerID, false)
	w := httptest.NewRecorder()

	handler.CreateReview(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewHandler_UpdateReview_AuthorOnly(t *testing.T) {
	facade := newTestFacade()
	ownerID := registerUser(t, facade, "owner@example.com", false)
	guestID := registerUser(t, facade, "guest@example.com", false)
	otherID := registerUser(t, facade, "other@example.com", false)
	placeID := createPlace(t, facade, ownerID)

	review, err := facade.CreateReview(context.Background(), services.CreateReviewInput{
		Text:    "Nice",
		Rating:  4,
		PlaceID: placeID,
		UserID:  guestID,
	})
	require.NoError(t, err)

	handler := handlers.NewReviewHandler(facade)

	req := httptest.NewRequest("PUT", "/api/v1/reviews/"+review.ID, strings.NewReader(`{"rating":1}`))
	req.SetPathValue("id", review.ID)
	req = asUser(req, otherID, false)
	w := httptest.NewRecorder()

	handler.UpdateReview(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest("PUT", "/api/v1/reviews/"+review.ID, strings.NewReader(`{"rating":1}`))
	req.SetPathValue("id", review.ID)
	req = asUser(req, guestID, false)
	w = httptest.NewRecorder()

	handler.UpdateReview(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var updated entities.Review
	require.NoError(t, json.NewDecoder(w.Body).Decode(&updated))
	assert.Equal(t, 1, updated.Rating)
}

func TestReviewHandler_DeleteReview_AdminOverride(t *testing.T) {
	facade := newTestFacade()
	ownerID := registerUser(t, facade, "owner@example.com", false)
	guestID := registerUser(t, facade, "guest@example.com", false)
	adminID := registerUser(t, facade, "admin@example.com", true)
	placeID := createPlace(t, facade, ownerID)

	review, err := facade.CreateReview(context.Background(), services.CreateReviewInput{
		Text:    "Nice",
		Rating:  4,
		PlaceID: placeID,
		UserID:  guestID,
	})
	require.NoError(t, err)

	handler := handlers.NewReviewHandler(facade)

	req := httptest.NewRequest("DELETE", "/api/v1/reviews/"+review.ID, nil)
	req.SetPathValue("id", review.ID)
	req = asUser(req, adminID, true)
	w := httptest.NewRecorder()

	handler.DeleteReview(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReviewHandler_ListReviewsByPlace(t *testing.T) {
	facade := newTestFacade()
	ownerID := registerUser(t, facade, "owner@example.com", false)
	guestID := registerUser(t, facade, "guest@example.com", false)
	placeID := createPlace(t, facade, ownerID)

	_, err := facade.CreateReview(context.Background(), services.CreateReviewInput{
		Text:    "Nice",
		Rating:  4,
		PlaceID: placeID,
		UserID:  guestID,
	})
	require.NoError(t, err)

	handler := handlers.NewReviewHandler(facade)

	req := httptest.NewRequest("GET", "/api/v1/places/"+placeID+"/reviews", nil)
	req.SetPathValue("id", placeID)
	w := httptest.NewRecorder()

	handler.ListReviewsByPlace(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var reviews []*entities.Review
	require.NoError(t, json.NewDecoder(w.Body).Decode(&reviews))
	assert.Len(t, reviews, 1)

	req = httptest.NewRequest("GET", "/api/v1/places/missing/reviews", nil)
	req.SetPathValue("id", "missing")
	w = httptest.NewRecorder()

	handler.ListReviewsByPlace(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
