package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// devFallbackSecret signs tokens when JWT_SECRET is unset outside
// production. Tokens signed with it are forgeable; production refuses to
// start without an explicit secret.
const devFallbackSecret = "dev-only-insecure-secret"

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL, default=24h"`

	ClientOrigin   string        `env:"CLIENT_ORIGIN,   default=http://localhost:4200"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT, default=30s"`
	StatsCacheTTL  time.Duration `env:"STATS_CACHE_TTL, default=5m"`

	Mongo     MongoConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig

	usingDevSecret bool
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=job_board"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// RateLimitConfig sets the fixed-window budgets per route class. Auth and
// sensitive routes get stricter budgets than the global one.
type RateLimitConfig struct {
	Window       time.Duration `env:"RATE_LIMIT_WINDOW,        default=15m"`
	Max          int           `env:"RATE_LIMIT_MAX,           default=100"`
	AuthMax      int           `env:"RATE_LIMIT_AUTH_MAX,      default=5"`
	SensitiveMax int           `env:"RATE_LIMIT_SENSITIVE_MAX, default=10"`
}

// Load reads configuration from environment variables using go-envconfig.
// A missing JWT_SECRET is fatal in production; elsewhere the dev fallback
// secret is substituted and UsingDevSecret reports it so startup can warn.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			panic("config: JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = devFallbackSecret
		cfg.usingDevSecret = true
	}

	return &cfg
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// UsingDevSecret reports whether the insecure development signing secret is
// in use.
func (c *Config) UsingDevSecret() bool {
	return c.usingDevSecret
}
