package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/hbnb-evolution/backend/internal/domain/entities"
	"github.com/hbnb-evolution/backend/internal/domain/providers"
	"github.com/hbnb-evolution/backend/internal/infrastructure/observability"
	"github.com/hbnb-evolution/backend/pkg/auth"
	apperrors "github.com/hbnb-evolution/backend/pkg/errors"
)

const (
	loginRateLimit  = 10
	loginRateWindow = 15 * time.Minute
)

// AuthService defines the credential check used by the handler.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*entities.User, error)
}

// AuthHandler handles login and token issuance.
type AuthHandler struct {
	service AuthService
	tokens  *auth.TokenManager
	store   providers.RateLimitStore
	local   *localRateLimiter
	metrics *observability.Metrics
}

// NewAuthHandler creates a new auth handler. The store is optional; without
// it rate limiting falls back to per-process state.
func NewAuthHandler(service AuthService, tokens *auth.TokenManager, store providers.RateLimitStore, metrics *observability.Metrics) *AuthHandler {
	return &AuthHandler{
		service: service,
		tokens:  tokens,
		store:   store,
		local:   newLocalRateLimiter(),
		metrics: metrics,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.Email == "" || payload.Password == "" {
		respondWithError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	key := "login:rate:" + clientIP(r)
	allowed, retryAfter := h.allowRequest(r.Context(), key)
	if !allowed {
		w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
		respondWithError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	user, err := h.service.Authenticate(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			observability.RecordLoginFailure(r.Context(), h.metrics)
			respondWithError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		respondWithAppError(w, r, err)
		return
	}

	token, err := h.tokens.Generate(user.ID, user.IsAdmin)
	if err != nil {
		respondWithAppError(w, r, apperrors.NewInternalError("failed to issue token", err))
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"access_token": token,
	})
}

func (h *AuthHandler) allowRequest(ctx context.Context, key string) (bool, time.Duration) {
	if h.store == nil {
		return h.local.allow(key, loginRateLimit, loginRateWindow)
	}

	count, err := h.store.Increment(ctx, key, loginRateWindow)
	if err != nil {
		// Shared state is unavailable; degrade to per-process limiting.
		return h.local.allow(key, loginRateLimit, loginRateWindow)
	}
	if count > loginRateLimit {
		retryAfter := loginRateWindow
		if ttl, err := h.store.TTL(ctx, key); err == nil && ttl > 0 {
			retryAfter = ttl
		}
		return false, retryAfter
	}
	return true, loginRateWindow
}

type localRateLimiter struct {
	mu     sync.Mutex
	states map[string]*localRateState
}

type localRateState struct {
	count   int
	resetAt time.Time
}

func newLocalRateLimiter() *localRateLimiter {
	return &localRateLimiter{
		states: make(map[string]*localRateState),
	}
}

func (l *localRateLimiter) allow(key string, limit int, window time.Duration) (bool, time.Duration) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.states[key]
	if !ok || now.After(state.resetAt) {
		state = &localRateState{count: 0, resetAt: now.Add(window)}
		l.states[key] = state
	}

	if state.count >= limit {
		retryAfter := time.Until(state.resetAt)
		if retryAfter < 0 {
			retryAfter = window
		}
		return false, retryAfter
	}

	state.count++
	return true, window
}
