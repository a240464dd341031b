package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string        `env:"PORT,           default=8080"`
	Env           string        `env:"ENV,            default=development"`
	LogLevel      string        `env:"LOG_LEVEL,      default=info"`
	JWTSecret     string        `env:"JWT_SECRET"`
	TokenTTL      time.Duration `env:"TOKEN_TTL,      default=24h"`
	AdminIdentity string        `env:"ADMIN_IDENTITY, default=owner.com"`
	SubmitTimeout time.Duration `env:"SUBMIT_TIMEOUT, default=15s"`
	SubmitWorkers int           `env:"SUBMIT_WORKERS, default=4"`

	Upstream UpstreamConfig
	Redis    RedisConfig
}

// UpstreamConfig locates the marketplace backend APIs this gateway fronts.
type UpstreamConfig struct {
	CatalogURL string        `env:"UPSTREAM_CATALOG_URL, default=http://localhost:5000"`
	BookingURL string        `env:"UPSTREAM_BOOKING_URL, default=http://localhost:5000"`
	AuthURL    string        `env:"UPSTREAM_AUTH_URL,    default=http://localhost:5000"`
	AdminURL   string        `env:"UPSTREAM_ADMIN_URL,   default=http://localhost:5000"`
	Timeout    time.Duration `env:"UPSTREAM_TIMEOUT,     default=10s"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
