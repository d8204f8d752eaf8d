package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Secret holds a sensitive value and redacts itself when printed or
// serialized. The raw value is only reachable through Value().
type Secret string

const redacted = "[REDACTED]"

func (s Secret) String() string   { return redacted }
func (s Secret) GoString() string { return redacted }

func (s Secret) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// Value returns the underlying secret. Call it only where the raw value is
// actually needed, e.g. signing or upstream headers.
func (s Secret) Value() string { return string(s) }

// Config is built once at startup and never mutated afterwards.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret Secret        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`

	// PublicBaseURL is prepended to store-relative file URLs in responses.
	PublicBaseURL string `env:"PUBLIC_BASE_URL, default=http://localhost:8080"`
	UploadDir     string `env:"UPLOAD_DIR,      default=uploads"`
	DownloadDir   string `env:"DOWNLOAD_DIR,    default=downloads"`

	Supabase SupabaseConfig
	Redis    RedisConfig
}

// SupabaseConfig locates the external record store (PostgREST API).
type SupabaseConfig struct {
	URL string `env:"SUPABASE_URL, required"`
	Key Secret `env:"SUPABASE_KEY, required"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
