package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/RMahshie/arhl/internal/engine"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves the test into an empty directory so no stray .env file is read
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "dev", cfg.Server.Env)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, zerolog.InfoLevel, cfg.Log.Level)
	assert.Equal(t, engine.Male, cfg.Defaults.Sex)
	assert.Equal(t, 50.0, cfg.Defaults.Age)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://arhl.example.com, ,http://localhost:5173")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("DEFAULT_SEX", "f")
	t.Setenv("DEFAULT_AGE", "65")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://arhl.example.com", "http://localhost:5173"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, zerolog.DebugLevel, cfg.Log.Level)
	assert.Equal(t, engine.Female, cfg.Defaults.Sex)
	assert.Equal(t, 65.0, cfg.Defaults.Age)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := chdir(t)
	t.Setenv("ENVIRONMENT", "staging")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.staging"), []byte("PORT=7000\nDEFAULT_AGE=72\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, 72.0, cfg.Defaults.Age)
}

func TestLoad_Invalid(t *testing.T) {
	chdir(t)

	t.Setenv("DEFAULT_SEX", "unknown")
	_, err := Load()
	assert.ErrorIs(t, err, engine.ErrUnknownSex)

	t.Setenv("DEFAULT_SEX", "male")
	t.Setenv("LOG_LEVEL", "loud")
	_, err = Load()
	assert.Error(t, err)
}
