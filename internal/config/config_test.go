package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blackjack.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
player {
  name     = "Alice"
  bankroll = 1000
}

table {
  decks = 6
  seats = 2
}

ui {
  dealer_delay_ms = 250
  log_level       = "debug"
  log_file        = "bj.log"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Alice", cfg.Player.Name)
	assert.Equal(t, 1000, cfg.Player.Bankroll)
	assert.Equal(t, 6, cfg.Table.Decks)
	assert.Equal(t, 2, cfg.Table.Seats)
	assert.Equal(t, 250, cfg.UI.DealerDelayMs)
	assert.Equal(t, "debug", cfg.UI.LogLevel)
	assert.Equal(t, "bj.log", cfg.UI.LogFile)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
player {
  name = "Alice"
}

table {}

ui {}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Player.Bankroll)
	assert.Equal(t, 1, cfg.Table.Decks)
	assert.Equal(t, 1, cfg.Table.Seats)
	assert.Equal(t, 600, cfg.UI.DealerDelayMs)
	assert.Equal(t, "warn", cfg.UI.LogLevel)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, `player {`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(c *Config) {}, ""},
		{"zero bankroll", func(c *Config) { c.Player.Bankroll = 0 }, "bankroll"},
		{"too many decks", func(c *Config) { c.Table.Decks = 9 }, "decks"},
		{"no seats", func(c *Config) { c.Table.Seats = 0 }, "seats"},
		{"negative delay", func(c *Config) { c.UI.DealerDelayMs = -1 }, "delay"},
		{"bad log level", func(c *Config) { c.UI.LogLevel = "loud" }, "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
