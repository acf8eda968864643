package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hbnb-evolution/backend/internal/adapters/cache"
	"github.com/hbnb-evolution/backend/internal/adapters/memory"
	"github.com/hbnb-evolution/backend/internal/api/handlers"
	"github.com/hbnb-evolution/backend/internal/api/routes"
	"github.com/hbnb-evolution/backend/internal/application/services"
	"github.com/hbnb-evolution/backend/internal/domain/providers"
	"github.com/hbnb-evolution/backend/internal/infrastructure/observability"
	"github.com/hbnb-evolution/backend/pkg/auth"
	"github.com/hbnb-evolution/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env, cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Redis is optional: without it login rate limiting degrades to
	// per-process state.
	var limiter providers.RateLimitStore
	if redisLimiter, err := cache.NewRedisLimiter(ctx, &cfg.Redis); err != nil {
		log.Warn().Err(err).Msg("running without Redis")
	} else {
		defer redisLimiter.Close()
		limiter = redisLimiter
		log.Info().Msg("Redis rate-limit store initialized")
	}

	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	facade := services.NewFacade(
		memory.NewUserAdapter(),
		memory.NewPlaceAdapter(),
		memory.NewReviewAdapter(),
		memory.NewAmenityAdapter(),
		hasher,
	)

	if err := seedAdmin(ctx, facade, cfg.Admin); err != nil {
		log.Warn().Err(err).Msg("admin bootstrap failed")
	}

	router := routes.NewRouter(
		handlers.NewAuthHandler(facade, tokens, limiter, metrics),
		handlers.NewUserHandler(facade),
		handlers.NewPlaceHandler(facade),
		handlers.NewReviewHandler(facade),
		handlers.NewAmenityHandler(facade),
		tokens,
		metrics,
	)

	server := &http.Server{
		Addr:         cfg.Server.ServerAddr(),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}

// seedAdmin creates the bootstrap admin account when credentials are
// configured and the account does not exist yet. All data is in-memory, so
// this runs on every start.
func seedAdmin(ctx context.Context, facade *services.Facade, admin config.Admin) error {
	if admin.Email == "" || admin.Password == "" {
		return nil
	}
	if _, err := facade.GetUserByEmail(ctx, admin.Email); err == nil {
		return nil
	}
	_, err := facade.CreateUser(ctx, services.CreateUserInput{
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Email:     admin.Email,
		Password:  admin.Password,
		IsAdmin:   true,
	})
	if err != nil {
		return err
	}
	log.Info().Str("email", admin.Email).Msg("admin account created")
	return nil
}
