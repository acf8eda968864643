package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   Server
	Redis    Redis
	Auth     Auth
	Admin    Admin
	OTEL     OTEL
	Env      string
	LogLevel string
}

// Server holds HTTP server configuration
type Server struct {
	Host string
	Port int
}

// Redis holds Redis configuration
type Redis struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Auth holds authentication configuration
type Auth struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

// Admin holds the bootstrap admin account seeded at startup
type Admin struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// OTEL holds OpenTelemetry configuration
type OTEL struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: Server{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Redis: Redis{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Auth: Auth{
			JWTSecret:  getEnv("JWT_SECRET", "dev-secret-key-change-in-production"),
			TokenTTL:   getEnvAsDuration("JWT_TOKEN_TTL", 24*time.Hour),
			BcryptCost: getEnvAsInt("BCRYPT_COST", 10),
		},
		Admin: Admin{
			FirstName: getEnv("ADMIN_FIRST_NAME", "Admin"),
			LastName:  getEnv("ADMIN_LAST_NAME", "User"),
			Email:     getEnv("ADMIN_EMAIL", "admin@hbnb.com"),
			Password:  getEnv("ADMIN_PASSWORD", ""),
		},
		OTEL: OTEL{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "hbnb-api"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if cfg.Env == "production" && cfg.Auth.JWTSecret == "dev-secret-key-change-in-production" {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	return cfg, nil
}

// RedisAddr returns the Redis address
func (c *Redis) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ServerAddr returns the HTTP listen address
func (c *Server) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
