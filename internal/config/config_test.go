package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("HASH_STRING_COMPLEMENT", "pepper")
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("TOKEN_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, 30*time.Minute, cfg.Security.TokenTTL)
	assert.Equal(t, "pepper", cfg.Security.HashComplement)
	assert.Equal(t, DriverPostgres, cfg.StorageDriver)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HASH_STRING_COMPLEMENT", "pepper")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, time.Hour, cfg.Security.TokenTTL)
	assert.Equal(t, int64(5242880), cfg.Scans.MaxBytes)
	assert.Equal(t, 15*time.Minute, cfg.Scans.LinkTTL)
	assert.False(t, cfg.ScansEnabled())
}

func TestLoad_MissingHashComplement(t *testing.T) {
	t.Setenv("HASH_STRING_COMPLEMENT", "")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidDriver(t *testing.T) {
	t.Setenv("HASH_STRING_COMPLEMENT", "pepper")
	t.Setenv("STORAGE_DRIVER", "sqlite")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_DRIVER")
	assert.Nil(t, cfg)
}

func TestReadDatabase(t *testing.T) {
	cfg := &AppConfig{
		Database: DatabaseConfig{Host: "primary", Port: "5432"},
	}
	assert.Equal(t, "primary", cfg.ReadDatabase().Host)

	cfg.ReadOnlyDatabase = DatabaseConfig{Host: "replica", Port: "5433"}
	assert.Equal(t, "replica", cfg.ReadDatabase().Host)
	assert.Equal(t, "5433", cfg.ReadDatabase().Port)
}
