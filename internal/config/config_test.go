package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"REEL_THEME", "REEL_SEED", "REEL_LOG", "REEL_CATEGORY"} {
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { os.Setenv(k, v) })
		}
		// unset rather than empty so godotenv may fill it
		os.Unsetenv(k)
		t.Cleanup(func() { os.Unsetenv(k) })
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *cfg)
	assert.Equal(t, "all", cfg.Category)
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "reel.yaml")
	require.NoError(t, os.WriteFile(p, []byte("theme: neon\nseed: films.json\ncategory: Drama\n"), 0o644))

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, "films.json", cfg.SeedPath)
	assert.Equal(t, "Drama", cfg.Category)

	t.Setenv("REEL_THEME", "mono")
	t.Setenv("REEL_LOG", "reel.log")
	cfg, err = Load(p)
	require.NoError(t, err)
	assert.Equal(t, "mono", cfg.Theme)
	assert.Equal(t, "reel.log", cfg.LogPath)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("REEL_CATEGORY=Action\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Action", cfg.Category)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	p := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(p, []byte("theme: [neon\n"), 0o644))
	_, err = Load(p)
	assert.ErrorContains(t, err, "parse config")
}

func TestLoadLeavesValidationToCaller(t *testing.T) {
	clearEnv(t)
	t.Setenv("REEL_THEME", "solarized")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "solarized", cfg.Theme)
	assert.ErrorContains(t, cfg.Validate(), "unknown theme")

	cfg.Theme = "mono"
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"defaults", Defaults(), ""},
		{"theme case insensitive", Config{Theme: "NEON", Category: "all"}, ""},
		{"unknown theme", Config{Theme: "solarized", Category: "all"}, "unknown theme"},
		{"blank category", Config{Theme: "classic", Category: "  "}, "category must not be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
