package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Media backends.
const (
	MediaBackendLocal = "local"
	MediaBackendS3    = "s3"
)

// Config is the complete application configuration, built once at startup
// and passed to constructors.
type Config struct {
	App       App
	DB        DB
	JWT       JWT
	Media     Media
	S3        S3
	Redis     Redis
	Kafka     Kafka
	CORS      CORS
	RateLimit RateLimit
}

// App holds HTTP listener and logging settings.
type App struct {
	Host     string `env:"APP_HOST" envDefault:"localhost"`
	Port     string `env:"APP_PORT" envDefault:"8080"`
	LogLevel string `env:"APP_LOG_LEVEL" envDefault:"info"`
}

// Addr returns the host:port the HTTP server listens on.
func (a App) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// DB holds PostgreSQL connection settings.
type DB struct {
	URL          string `env:"DATABASE_URL"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"16"`
	MaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" envDefault:"8"`
}

// JWT holds the token signing secret and lifetime. A zero Expiration issues
// tokens without an exp claim.
type JWT struct {
	SecretKey  string        `env:"JWT_SECRET_KEY"`
	Expiration time.Duration `env:"JWT_EXPIRATION" envDefault:"24h"`
}

// Media selects and configures the upload backend.
type Media struct {
	Backend        string `env:"MEDIA_BACKEND" envDefault:"local"`
	LocalDir       string `env:"MEDIA_LOCAL_DIR" envDefault:"uploads"`
	URLPrefix      string `env:"MEDIA_URL_PREFIX" envDefault:"/uploads"`
	MaxFiles       int    `env:"MEDIA_MAX_FILES" envDefault:"10"`
	MaxUploadBytes int64  `env:"MEDIA_MAX_UPLOAD_BYTES" envDefault:"33554432"`
}

// S3 configures the S3-compatible object store used when Media.Backend is "s3".
type S3 struct {
	Endpoint  string `env:"S3_ENDPOINT"`
	AccessKey string `env:"S3_ACCESS_KEY"`
	SecretKey string `env:"S3_SECRET_KEY"`
	Bucket    string `env:"S3_BUCKET"`
	UseSSL    bool   `env:"S3_USE_SSL" envDefault:"true"`
	PublicURL string `env:"S3_PUBLIC_URL"`
}

// Redis configures the destination read cache. An empty Addr disables it.
type Redis struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL time.Duration `env:"REDIS_CACHE_TTL" envDefault:"5m"`
}

// Kafka configures activity event publishing. No brokers disables it.
type Kafka struct {
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	Topic   string   `env:"KAFKA_TOPIC" envDefault:"travel-activity"`

	BatchTimeout   time.Duration `env:"KAFKA_BATCH_TIMEOUT" envDefault:"10ms"`
	PublishTimeout time.Duration `env:"KAFKA_PUBLISH_TIMEOUT" envDefault:"500ms"`
}

// CORS lists the origins allowed to call the API.
type CORS struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// RateLimit throttles the unauthenticated auth routes per client IP.
type RateLimit struct {
	RPS   float64 `env:"AUTH_RATE_LIMIT_RPS" envDefault:"5"`
	Burst int     `env:"AUTH_RATE_LIMIT_BURST" envDefault:"10"`
}

// Load reads the optional env file at path, then parses the environment.
// Variables already set in the environment win over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that required settings are present and consistent.
func (c *Config) Validate() error {
	var errs []error
	if c.DB.URL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if c.JWT.SecretKey == "" {
		errs = append(errs, errors.New("JWT_SECRET_KEY is required"))
	}
	if c.JWT.Expiration < 0 {
		errs = append(errs, errors.New("JWT_EXPIRATION must not be negative"))
	}
	if c.Kafka.PublishTimeout <= 0 {
		errs = append(errs, errors.New("KAFKA_PUBLISH_TIMEOUT must be positive"))
	}
	if c.Media.MaxFiles <= 0 {
		errs = append(errs, errors.New("MEDIA_MAX_FILES must be positive"))
	}
	if c.Media.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("MEDIA_MAX_UPLOAD_BYTES must be positive"))
	}

	switch c.Media.Backend {
	case MediaBackendLocal:
		if c.Media.LocalDir == "" {
			errs = append(errs, errors.New("MEDIA_LOCAL_DIR is required for the local media backend"))
		}
	case MediaBackendS3:
		if c.S3.Endpoint == "" || c.S3.Bucket == "" || c.S3.PublicURL == "" {
			errs = append(errs, errors.New("S3_ENDPOINT, S3_BUCKET and S3_PUBLIC_URL are required for the s3 media backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown MEDIA_BACKEND %q", c.Media.Backend))
	}

	return errors.Join(errs...)
}
