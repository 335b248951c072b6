// Package config loads process configuration from the environment.
// A .env file in the working directory is read first when present; real
// environment variables win over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"onutec/pkg/platform/sqldb"
)

// Config is the full process configuration.
type Config struct {
	Environment string `env:"ONUTEC_ENV" envDefault:"development"`

	Server   Server
	Log      Log
	Database Database
	Admin    Admin
	Cache    Cache
	Audit    Audit
	Tracing  Tracing
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string        `env:"ONUTEC_ADDR" envDefault:":8080"`
	RequestTimeout time.Duration `env:"ONUTEC_REQUEST_TIMEOUT" envDefault:"10s"`
	ReadTimeout    time.Duration `env:"ONUTEC_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout   time.Duration `env:"ONUTEC_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout    time.Duration `env:"ONUTEC_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownGrace  time.Duration `env:"ONUTEC_SHUTDOWN_GRACE" envDefault:"10s"`
}

type Log struct {
	Level  string `env:"ONUTEC_LOG_LEVEL" envDefault:"info"`
	Format string `env:"ONUTEC_LOG_FORMAT" envDefault:"json"`
}

// Database selects the backend. Postgres is the production store; SQLite
// serves development and tests.
type Database struct {
	Driver       string        `env:"ONUTEC_DB_DRIVER" envDefault:"sqlite"`
	DSN          string        `env:"ONUTEC_DB_DSN" envDefault:"onutec.db"`
	TxTimeout    time.Duration `env:"ONUTEC_DB_TX_TIMEOUT" envDefault:"5s"`
	LockTimeout  time.Duration `env:"ONUTEC_DB_LOCK_TIMEOUT" envDefault:"2s"`
	MaxOpenConns int           `env:"ONUTEC_DB_MAX_OPEN_CONNS" envDefault:"10"`
	AutoMigrate  bool          `env:"ONUTEC_DB_AUTO_MIGRATE" envDefault:"true"`
}

// Dialect parses Driver.
func (d Database) Dialect() (sqldb.Dialect, error) {
	return sqldb.ParseDialect(d.Driver)
}

// Admin holds the organiser credentials and token settings.
type Admin struct {
	Username string `env:"ONUTEC_ADMIN_USER" envDefault:"admin"`
	// PasswordHash is a bcrypt hash. Password is accepted in development only.
	PasswordHash  string        `env:"ONUTEC_ADMIN_PASSWORD_HASH"`
	Password      string        `env:"ONUTEC_ADMIN_PASSWORD"`
	JWTSigningKey string        `env:"ONUTEC_JWT_SIGNING_KEY"`
	JWTIssuer     string        `env:"ONUTEC_JWT_ISSUER" envDefault:"onutec"`
	TokenTTL      time.Duration `env:"ONUTEC_ADMIN_TOKEN_TTL" envDefault:"8h"`
	// Failed logins per username and IP before the pair is locked out for LockoutWindow.
	LockoutAttempts int           `env:"ONUTEC_ADMIN_LOCKOUT_ATTEMPTS" envDefault:"5"`
	LockoutWindow   time.Duration `env:"ONUTEC_ADMIN_LOCKOUT_WINDOW" envDefault:"15m"`
}

// Cache configures the availability read cache. A zero TTL disables it;
// an empty RedisURL keeps it in process.
type Cache struct {
	TTL   time.Duration `env:"ONUTEC_CACHE_TTL" envDefault:"3s"`
	Redis RedisConfig
}

// RedisConfig holds connection settings for the shared cache.
type RedisConfig struct {
	URL          string        `env:"ONUTEC_REDIS_URL"`
	PoolSize     int           `env:"ONUTEC_REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"ONUTEC_REDIS_MIN_IDLE_CONNS" envDefault:"1"`
	DialTimeout  time.Duration `env:"ONUTEC_REDIS_DIAL_TIMEOUT" envDefault:"2s"`
	ReadTimeout  time.Duration `env:"ONUTEC_REDIS_READ_TIMEOUT" envDefault:"500ms"`
	WriteTimeout time.Duration `env:"ONUTEC_REDIS_WRITE_TIMEOUT" envDefault:"500ms"`
}

// Audit configures the outbox relay. Without brokers events are relayed to the log.
type Audit struct {
	KafkaBrokers  []string      `env:"ONUTEC_KAFKA_BROKERS" envSeparator:","`
	TopicPrefix   string        `env:"ONUTEC_KAFKA_TOPIC_PREFIX" envDefault:"onutec.audit"`
	RelayInterval time.Duration `env:"ONUTEC_AUDIT_RELAY_INTERVAL" envDefault:"1s"`
	RelayBatch    int           `env:"ONUTEC_AUDIT_RELAY_BATCH" envDefault:"100"`
	RelayEnabled  bool          `env:"ONUTEC_AUDIT_RELAY_ENABLED" envDefault:"true"`
}

type Tracing struct {
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"onutec"`
}

// IsProduction reports whether development fallbacks must be refused.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// Load reads an optional .env file and parses the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse builds a Config from the current environment and validates it.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations that cannot run.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.Database.Dialect(); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(c.Database.DSN) == "" {
		errs = append(errs, errors.New("ONUTEC_DB_DSN is required"))
	}
	if c.Database.TxTimeout <= 0 {
		errs = append(errs, errors.New("ONUTEC_DB_TX_TIMEOUT must be positive"))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("ONUTEC_LOG_FORMAT must be json or text, got %q", c.Log.Format))
	}
	if c.Cache.TTL < 0 {
		errs = append(errs, errors.New("ONUTEC_CACHE_TTL must not be negative"))
	}
	if c.IsProduction() {
		if c.Admin.JWTSigningKey == "" {
			errs = append(errs, errors.New("ONUTEC_JWT_SIGNING_KEY is required in production"))
		}
		if c.Admin.PasswordHash == "" {
			errs = append(errs, errors.New("ONUTEC_ADMIN_PASSWORD_HASH is required in production"))
		}
		if c.Admin.Password != "" {
			errs = append(errs, errors.New("ONUTEC_ADMIN_PASSWORD is not accepted in production"))
		}
	}
	return errors.Join(errs...)
}
