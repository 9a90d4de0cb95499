package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(Options{EnvFile: filepath.Join(t.TempDir(), "absent.env")})
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "data/registry", cfg.Store.Path)
	assert.Empty(t, cfg.Build.ExcludedCategories)
}

func TestLoad_FlagBeatsEnv(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := Load(Options{Port: "7070", EnvFile: filepath.Join(t.TempDir(), "absent.env")})
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
}

func TestLoad_EnvBeatsDefault(t *testing.T) {
	t.Setenv("STORE_PATH", "/tmp/reg")

	cfg, err := Load(Options{EnvFile: filepath.Join(t.TempDir(), "absent.env")})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/reg", cfg.Store.Path)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("# comment\nLOG_LEVEL=debug\n"), 0o600))

	// The env file must not override a variable that is already set.
	t.Setenv("LOG_LEVEL", "")
	cfg, err := Load(Options{EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoad_ExcludedCategoriesList(t *testing.T) {
	cfg, err := Load(Options{
		Excluded: "Literature, History,  ,Economics",
		EnvFile:  filepath.Join(t.TempDir(), "absent.env"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Literature", "History", "Economics"}, cfg.Build.ExcludedCategories)
}
