package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutEnvFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := load(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpiry)
	assert.Equal(t, "appointments", cfg.Kafka.AppointmentTopic)
	assert.Equal(t, 30*time.Second, cfg.Dashboard.CacheTTL)
	assert.Equal(t, float64(5), cfg.RateLimit.RPS)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadSplitsCORSOrigins(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://admin.hospital.com, http://localhost:3000,,")

	cfg, err := load(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Equal(t, []string{"https://admin.hospital.com", "http://localhost:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoadReadsEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "JWT_SECRET=from-file\nAPP_PORT=9090\nDASHBOARD_CACHE_TTL=0s\nDB_AUTO_MIGRATE=true\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg, err := load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.JWT.Secret)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, time.Duration(0), cfg.Dashboard.CacheTTL)
	assert.True(t, cfg.DB.AutoMigrate)
}

func TestEnvironmentOverridesEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("JWT_SECRET=from-file\nAPP_PORT=9090\n"), 0o600))
	t.Setenv("APP_PORT", "7070")

	cfg, err := load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.App.Port)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := load(filepath.Join(t.TempDir(), ".env"))
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestMalformedDurationFallsBack(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("JWT_ACCESS_EXPIRY", "soon")

	cfg, err := load(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
}

func TestLoadRejectsUnknownTimeZone(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_TIMEZONE", "Mars/Olympus_Mons")

	_, err := load(filepath.Join(t.TempDir(), ".env"))
	assert.Error(t, err)
}

func TestDBLocation(t *testing.T) {
	assert.Equal(t, time.UTC, DBConfig{}.Location())
	assert.Equal(t, time.UTC, DBConfig{TimeZone: "UTC"}.Location())
	assert.Equal(t, time.UTC, DBConfig{TimeZone: "Mars/Olympus_Mons"}.Location())
}
