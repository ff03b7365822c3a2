package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string        `env:"PORT,      default=8080"`
	Env      string        `env:"ENV,       default=development"`
	LogLevel string        `env:"LOG_LEVEL, default=info"`
	TokenTTL time.Duration `env:"TOKEN_TTL, default=24h"`

	// JWTSecret signs session tokens. Its absence is a startup-fatal
	// misconfiguration, not a runtime error.
	JWTSecret string `env:"JWT_SECRET, required"`

	Mongo    MongoConfig
	Redis    RedisConfig
	External ExternalConfig
	Admin    AdminConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=freelancer_toolkit"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// ExternalConfig holds credentials for the third-party lookup providers.
// Base URLs are overridable for tests.
type ExternalConfig struct {
	ExchangeAPIKey  string `env:"EXCHANGE_API_KEY"`
	ExchangeBaseURL string `env:"EXCHANGE_BASE_URL"`
	PlacesAPIKey    string `env:"PLACES_API_KEY"`
	PlacesBaseURL   string `env:"PLACES_BASE_URL"`
	TimezoneAPIKey  string `env:"TIMEZONE_API_KEY"`
	TimezoneBaseURL string `env:"TIMEZONE_BASE_URL"`
}

// AdminConfig seeds the initial admin account when both fields are set.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
