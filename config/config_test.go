package config_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleksiiaisolutions/hr-vacation-tracker/config"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"VACATION_PORT", "VACATION_STORE", "VACATION_DB", "VACATION_REDIS_ADDR", "VACATION_SEED", "VACATION_CORS_ORIGINS"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("server", nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, config.StoreSQLite, cfg.Store)
	assert.Equal(t, "vacation.db", cfg.DBPath)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.True(t, cfg.Seed)
	assert.Empty(t, cfg.Date)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:8080"}, cfg.Origins)
}

func TestLoad_EnvThenFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("VACATION_PORT", "9090")
	t.Setenv("VACATION_STORE", "Redis")
	t.Setenv("VACATION_SEED", "false")

	cfg, err := config.Load("server", []string{"-port=3000", "-date=2024-02-15"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port, "flag wins over env")
	assert.Equal(t, config.StoreRedis, cfg.Store)
	assert.False(t, cfg.Seed)
	assert.Equal(t, "2024-02-15", cfg.Date)
}

func TestLoad_Origins(t *testing.T) {
	clearEnv(t)
	t.Setenv("VACATION_CORS_ORIGINS", "https://hr.example.com, ,https://admin.example.com")

	cfg, err := config.Load("server", nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://hr.example.com", "https://admin.example.com"}, cfg.Origins)

	cfg, err = config.Load("server", []string{"-cors=https://only.example.com"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://only.example.com"}, cfg.Origins)
}

func TestLoad_InvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("VACATION_PORT", "abc")
	t.Setenv("VACATION_SEED", "maybe")

	_, err := config.Load("server", nil, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VACATION_PORT")
	assert.Contains(t, err.Error(), "VACATION_SEED")
}

func TestLoad_UnknownStore(t *testing.T) {
	clearEnv(t)

	_, err := config.Load("server", []string{"-store=postgres"}, io.Discard)
	assert.Error(t, err)
}

func TestLoad_BadFlag(t *testing.T) {
	clearEnv(t)

	_, err := config.Load("server", []string{"-nope"}, io.Discard)
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv("VACATION_DB"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("VACATION_DB=/tmp/from-dotenv.db\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("VACATION_DB") })

	require.NoError(t, config.LoadDotEnv(path))
	cfg, err := config.Load("server", nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-dotenv.db", cfg.DBPath)

	// Missing file is fine
	assert.NoError(t, config.LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
