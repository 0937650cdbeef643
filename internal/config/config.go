package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string `env:"HOST"`
	Port               string `env:"PORT" env-default:"5432"`
	User               string `env:"USER"`
	Password           string `env:"PASSWORD"`
	Name               string `env:"NAME"`
	SSLMode            string `env:"SSLMODE" env-default:"disable"`
	MaxOpenConns       int    `env:"MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns       int    `env:"MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetimeSec int    `env:"CONN_MAX_LIFETIME_SEC" env-default:"300"`
}

// SecurityConfig holds password hashing and token settings.
type SecurityConfig struct {
	// HashComplement is appended to every password before hashing and doubles as the argon2 salt.
	HashComplement string        `env:"HASH_STRING_COMPLEMENT" env-required:"true"`
	ArgonTime      uint32        `env:"HASH_ARGON_TIME" env-default:"1"`
	ArgonMemoryKB  uint32        `env:"HASH_ARGON_MEMORY_KB" env-default:"19456"`
	ArgonThreads   uint8         `env:"HASH_ARGON_THREADS" env-default:"1"`
	TokenTTL       time.Duration `env:"TOKEN_TTL" env-default:"1h"`
}

// MinIOConfig holds object storage settings for MinIO. Storage is optional: an empty
// endpoint disables the document scan endpoints.
type MinIOConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	Bucket    string `env:"MINIO_BUCKET" env-default:"student-documents"`
	UseSSL    bool   `env:"MINIO_USE_SSL" env-default:"false"`
}

// ScanConfig limits document scan uploads and downloads.
type ScanConfig struct {
	MaxBytes int64         `env:"SCAN_MAX_BYTES" env-default:"5242880"`
	LinkTTL  time.Duration `env:"SCAN_LINK_TTL" env-default:"15m"`
}

// TracingConfig holds OpenTelemetry settings not covered by the standard OTEL_* variables.
type TracingConfig struct {
	ServiceName string `env:"OTEL_SERVICE_NAME" env-default:"studentapi"`
	Disabled    bool   `env:"OTEL_SDK_DISABLED" env-default:"false"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated once from environment variables and treated as read-only afterwards.
type AppConfig struct {
	Env           string `env:"APP_ENV" env-default:"development"`
	AppHost       string `env:"APP_HOST" env-default:"localhost:8080"`
	Port          string `env:"PORT" env-default:"8080"`
	StorageDriver string `env:"STORAGE_DRIVER" env-default:"postgres"`

	Database         DatabaseConfig `env-prefix:"DB_"`
	ReadOnlyDatabase DatabaseConfig `env-prefix:"DB_RO_"`

	Security SecurityConfig
	MinIO    MinIOConfig
	Scans    ScanConfig
	Tracing  TracingConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ReadDatabase returns the settings for the read-only pool. Without a DB_RO_HOST the
// read-write settings are reused.
func (c *AppConfig) ReadDatabase() DatabaseConfig {
	if c.ReadOnlyDatabase.Host == "" {
		return c.Database
	}
	return c.ReadOnlyDatabase
}

// ScansEnabled reports whether object storage is configured.
func (c *AppConfig) ScansEnabled() bool {
	return c.MinIO.Endpoint != ""
}

func (c *AppConfig) validate() error {
	switch c.StorageDriver {
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("invalid STORAGE_DRIVER %q: expected %q or %q", c.StorageDriver, DriverPostgres, DriverMemory)
	}
	if c.Security.HashComplement == "" {
		return fmt.Errorf("HASH_STRING_COMPLEMENT is required")
	}
	if c.Security.TokenTTL <= 0 {
		return fmt.Errorf("invalid TOKEN_TTL %s: must be positive", c.Security.TokenTTL)
	}
	return nil
}
