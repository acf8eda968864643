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

func createPlace(t *testing.T, facade *services.Facade, ownerID string) string {
	t.Helper()
	place, err := facade.CreatePlace(context.Background(), services.CreatePlaceInput{
		Title:   "Loft",
		Price:   120,
		OwnerID: ownerID,
	})
	require.NoError(t, err)
	return place.ID
}

func TestPlaceHandler_CreatePlace_CallerBecomesOwner(t *testing.T) {
	facade := newTestFacade()
	janeID := registerUser(t, facade, "jane@example.com", false)
	handler := handlers.NewPlaceHandler(facade)

	body := `{"title":"Loft","price":120,"latitude":48.85,"longitude":2.35,"owner_id":"someone-else"}`
	req := httptest.NewRequest("POST", "/api/v1/places", strings.NewReader(body))
	req = asUser(req, janeID, false)
	w := httptest.NewRecorder()

	handler.CreatePlace(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var place entities.Place
	require.NoError(t, json.NewDecoder(w.Body).Decode(&place))
	assert.Equal(t, janeID, place.OwnerID)
}

func TestPlaceHandler_CreatePlace_RequiresAuth(t *testing.T) {
	handler := handlers.NewPlaceHandler(newTestFacade())

	req := httptest.NewRequest("POST", "/api/v1/places", strings.NewReader(`{"title":"Loft"}`))
	w := httptest.NewRecorder()

	handler.CreatePlace(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPlaceHandler_CreatePlace_AdminMayAssignOwner(t *testing.T) {
	facade := newTestFacade()
	janeID := registerUser(t, facade, "jane@example.com", false)
	adminID := registerUser(t, facade, "admin@example.com", true)
	handler := handlers.NewPlaceHandler(facade)

	body := `{"title":"Loft","price":120,"owner_id":"` + janeID + `"}`
	req := httptest.NewRequest("POST", "/api/v1/places", strings.NewReader(body))
	req = asUser(req, adminID, true)
	w := httptest.NewRecorder()

	handler.CreatePlace(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var place entities.Place
	require.NoError(t, json.NewDecoder(w.Body).Decode(&place))
	assert.Equal(t, janeID, place.OwnerID)
}

func TestPlaceHandler_UpdatePlace_OwnerOrAdmin(t *testing.T) {
	facade := newTestFacade()
	janeID := registerUser(t, facade, "jane@example.com", false)
	bobID := registerUser(t, facade, "bob@example.com", false)
	placeID := createPlace(t, facade, janeID)
	handler := handlers.NewPlaceHandler(facade)

	req := httptest.NewRequest("PUT", "/api/v1/places/"+placeID, strings.NewReader(`{"title":"New"}`))
	req.SetPathValue("id", placeID)
	req = asUser(req, bobID, false)
	w := httptest.NewRecorder()

	handler.UpdatePlace(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest("PUT", "/api/v1/places/"+placeID, strings.NewReader(`{"title":"New"}`))
	req.SetPathValue("id", placeID)
	req = asUser(req, janeID, false)
	w = httptest.NewRecorder()

	handler.UpdatePlace(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var place entities.Place
	require.NoError(t, json.NewDecoder(w.Body).Decode(&place))
	assert.Equal(t, "New", place.Title)
}

func TestPlaceHandler_DeletePlace_NonOwnerForbidden(t *testing.T) {
	facade := newTestFacade()
	janeID := registerUser(t, facade, "jane@example.com", false)
	bobID := registerUser(t, facade, "bob@example.com", false)
	placeID := createPlace(t, facade, janeID)
	handler := handlers.NewPlaceHandler(facade)

	req := httptest.NewRequest("DELETE", "/api/v1/places/"+placeID, nil)
	req.SetPathValue("id", placeID)
	req = asUser(req, bobID, false)
	w := httptest.NewRecorder()

	handler.DeletePlace(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest("DELETE", "/api/v1/places/"+placeID, nil)
	req.SetPathValue("id", placeID)
	req = asUser(req, janeID, false)
	w = httptest.NewRecorder()

	handler.DeletePlace(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPlaceHandler_GetPlace_NotFound(t *testing.T) {
	handler := handlers.NewPlaceHandler(newTestFacade())

	req := httptest.NewRequest("GET", "/api/v1/places/missing", nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()

	handler.GetPlace(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
