package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbnb-evolution/backend/internal/api/handlers"
	"github.com/hbnb-evolution/backend/internal/domain/entities"
)

func TestAmenityHandler_CreateAndGet(t *testing.T) {
	handler := handlers.NewAmenityHandler(newTestFacade())

	req := httptest.NewRequest("POST", "/api/v1/amenities", strings.NewReader(`{"name":"WiFi"}`))
	w := httptest.NewRecorder()

	handler.CreateAmenity(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var amenity entities.Amenity
	require.NoError(t, json.NewDecoder(w.Body).Decode(&amenity))
	assert.Equal(t, "WiFi", amenity.Name)

	req = httptest.NewRequest("GET", "/api/v1/amenities/"+amenity.ID, nil)
	req.SetPathValue("id", amenity.ID)
	w = httptest.NewRecorder()

	handler.GetAmenity(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAmenityHandler_CreateAmenity_NameRequired(t *testing.T) {
	handler := handlers.NewAmenityHandler(newTestFacade())

	req := httptest.NewRequest("POST", "/api/v1/amenities", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	handler.CreateAmenity(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAmenityHandler_DeleteAmenity_NotFound(t *testing.T) {
	handler := handlers.NewAmenityHandler(newTestFacade())

	req := httptest.NewRequest("DELETE", "/api/v1/amenities/missing", nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()

	handler.DeleteAmenity(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
