package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// APIBaseURL is the remote CMS API root, including the /api prefix.
	// Read once at startup; not reactive to change.
	APIBaseURL string `env:"API_BASE_URL, default=http://localhost:3000/api"`
	// AssetBaseURL is where uploaded media is served from.
	AssetBaseURL string `env:"ASSET_BASE_URL, default=http://localhost:3000"`

	// SessionSecret signs the browser session cookie.
	SessionSecret string `env:"SESSION_SECRET"`
	// SessionTTL bounds the signed cookie lifetime. Matches the token
	// cache expiry so neither outlives the other.
	SessionTTL time.Duration `env:"SESSION_TTL, default=168h"`

	// TokenCacheDir holds the secondary (file) token store backend.
	TokenCacheDir string `env:"TOKEN_CACHE_DIR, default=./.tokencache"`

	Redis RedisConfig
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
