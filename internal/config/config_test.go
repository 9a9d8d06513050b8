package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tcgsim.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
game {
  decks_file = "my/decks.yaml"
  deck2      = "Water"
  seed       = 42
}

ui {
  theme = "dark"
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "my/decks.yaml", cfg.Game.DecksFile)
	assert.Equal(t, "1", cfg.Game.Deck1)
	assert.Equal(t, "Water", cfg.Game.Deck2)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, ":8080", cfg.Web.Addr)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, "warn", cfg.UI.LogLevel)
	assert.Equal(t, 8, cfg.UI.EventRows)
}

func TestLoadRejectsBadHCL(t *testing.T) {
	_, err := Load(writeConfig(t, "game {\n  seed = \n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "game {\n  unknown_field = 1\n}\n"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvSeed:     "1234",
		EnvDecks:    "other.yaml",
		EnvLogLevel: "debug",
		EnvAddr:     "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, int64(1234), cfg.Game.Seed)
	assert.Equal(t, "other.yaml", cfg.Game.DecksFile)
	assert.Equal(t, "debug", cfg.UI.LogLevel)
	assert.Equal(t, ":8080", cfg.Web.Addr, "empty value keeps the setting")

	env[EnvSeed] = "many"
	assert.Error(t, cfg.ApplyEnv(lookup))
}

func TestLoadDotEnv(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TCGSIM_TEST_DOTENV=7\n"), 0o644))
	t.Setenv("TCGSIM_TEST_DOTENV", "")
	os.Unsetenv("TCGSIM_TEST_DOTENV")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "7", os.Getenv("TCGSIM_TEST_DOTENV"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"missing deck", func(c *Config) { c.Game.Deck2 = "" }},
		{"missing addr", func(c *Config) { c.Web.Addr = "" }},
		{"bad log level", func(c *Config) { c.UI.LogLevel = "loud" }},
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }},
		{"no event rows", func(c *Config) { c.UI.EventRows = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
