package routes

import (
	"net/http"

	"github.com/hbnb-evolution/backend/internal/api/handlers"
	"github.com/hbnb-evolution/backend/internal/api/middleware"
	"github.com/hbnb-evolution/backend/internal/infrastructure/observability"
	"github.com/hbnb-evolution/backend/pkg/auth"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	authHandler    *handlers.AuthHandler
	userHandler    *handlers.UserHandler
	placeHandler   *handlers.PlaceHandler
	reviewHandler  *handlers.ReviewHandler
	amenityHandler *handlers.AmenityHandler

	tokens  *auth.TokenManager
	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	placeHandler *handlers.PlaceHandler,
	reviewHandler *handlers.ReviewHandler,
	amenityHandler *handlers.AmenityHandler,
	tokens *auth.TokenManager,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:            http.NewServeMux(),
		authHandler:    authHandler,
		userHandler:    userHandler,
		placeHandler:   placeHandler,
		reviewHandler:  reviewHandler,
		amenityHandler: amenityHandler,
		tokens:         tokens,
		metrics:        metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	authRequired := middleware.JWTAuth(r.tokens)
	authOptional := middleware.OptionalJWTAuth(r.tokens)
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return authRequired(middleware.RequireAdmin(h))
	}

	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Auth endpoints
	r.mux.HandleFunc("POST /api/v1/auth/login", r.authHandler.Login)

	// User endpoints
	r.mux.Handle("POST /api/v1/users", authOptional(http.HandlerFunc(r.userHandler.Register)))
	r.mux.HandleFunc("GET /api/v1/users", r.userHandler.ListUsers)
	r.mux.HandleFunc("GET /api/v1/users/{id}", r.userHandler.GetUser)
	r.mux.Handle("PUT /api/v1/users/{id}", authRequired(http.HandlerFunc(r.userHandler.UpdateUser)))
	r.mux.Handle("DELETE /api/v1/users/{id}", adminOnly(r.userHandler.DeleteUser))

	// Place endpoints
	r.mux.Handle("POST /api/v1/places", authRequired(http.HandlerFunc(r.placeHandler.CreatePlace)))
	r.mux.HandleFunc("GET /api/v1/places", r.placeHandler.ListPlaces)
	r.mux.HandleFunc("GET /api/v1/places/{id}", r.placeHandler.GetPlace)
	r.mux.HandleFunc("GET /api/v1/places/{id}/reviews", r.reviewHandler.ListReviewsByPlace)
	r.mux.Handle("PUT /api/v1/places/{id}", authRequired(http.HandlerFunc(r.placeHandler.UpdatePlace)))
	r.mux.Handle("DELETE /api/v1/places/{id}", authRequired(http.HandlerFunc(r.placeHandler.DeletePlace)))

	// Review endpoints
	r.mux.Handle("POST /api/v1/reviews", authRequired(http.HandlerFunc(r.reviewHandler.CreateReview)))
	r.mux.HandleFunc("GET /api/v1/reviews", r.reviewHandler.ListReviews)
	r.mux.HandleFunc("GET /api/v1/reviews/{id}", r.reviewHandler.GetReview)
	r.mux.Handle("PUT /api/v1/reviews/{id}", authRequired(http.HandlerFunc(r.reviewHandler.UpdateReview)))
	r.mux.Handle("DELETE /api/v1/reviews/{id}", authRequired(http.HandlerFunc(r.reviewHandler.DeleteReview)))

	// Amenity endpoints
	r.mux.Handle("POST /api/v1/amenities", adminOnly(r.amenityHandler.CreateAmenity))
	r.mux.HandleFunc("GET /api/v1/amenities", r.amenityHandler.ListAmenities)
	r.mux.HandleFunc("GET /api/v1/amenities/{id}", r.amenityHandler.GetAmenity)
	r.mux.Handle("PUT /api/v1/amenities/{id}", adminOnly(r.amenityHandler.UpdateAmenity))
	r.mux.Handle("DELETE /api/v1/amenities/{id}", adminOnly(r.amenityHandler.DeleteAmenity))

	var handler http.Handler = r.mux
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.CORSMiddleware(handler)
	return handler
}
