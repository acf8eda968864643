package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hbnb-evolution/backend/internal/infrastructure/observability"
	apperrors "github.com/hbnb-evolution/backend/pkg/errors"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithAppError maps the facade's error taxonomy onto HTTP statuses:
// NotFound 404, Validation 400, Conflict 409, Unauthorized 401, anything
// else 500 with the detail kept out of the response.
func respondWithAppError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case apperrors.IsNotFound(err):
		respondWithError(w, http.StatusNotFound, errorMessage(err))
	case apperrors.IsValidation(err):
		respondWithError(w, http.StatusBadRequest, errorMessage(err))
	case apperrors.IsConflict(err):
		respondWithError(w, http.StatusConflict, errorMessage(err))
	case apperrors.IsUnauthorized(err):
		respondWithError(w, http.StatusUnauthorized, errorMessage(err))
	default:
		observability.LoggerFromContext(r.Context()).Error().Err(err).Msg("unhandled error")
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

func errorMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
