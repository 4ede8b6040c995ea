package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete file configuration. Flags on the command line
// override anything loaded here.
type Config struct {
	Player PlayerSettings `hcl:"player,block"`
	Table  TableSettings  `hcl:"table,block"`
	UI     UISettings     `hcl:"ui,block"`
}

// PlayerSettings contains player-specific settings
type PlayerSettings struct {
	Name     string `hcl:"name,optional"`
	Bankroll int    `hcl:"bankroll,optional"`
}

// TableSettings contains table-specific settings
type TableSettings struct {
	Decks int `hcl:"decks,optional"`
	Seats int `hcl:"seats,optional"`
}

// UISettings contains user interface settings
type UISettings struct {
	DealerDelayMs int    `hcl:"dealer_delay_ms,optional"`
	LogLevel      string `hcl:"log_level,optional"`
	LogFile       string `hcl:"log_file,optional"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Player: PlayerSettings{
			Name:     "Player 1",
			Bankroll: 500,
		},
		Table: TableSettings{
			Decks: 1,
			Seats: 1,
		},
		UI: UISettings{
			DealerDelayMs: 600,
			LogLevel:      "warn",
			LogFile:       "blackjack.log",
		},
	}
}

// Load loads configuration from an HCL file, returning defaults when the
// file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := Default()

	if config.Player.Name == "" {
		config.Player.Name = defaults.Player.Name
	}
	if config.Player.Bankroll == 0 {
		config.Player.Bankroll = defaults.Player.Bankroll
	}
	if config.Table.Decks == 0 {
		config.Table.Decks = defaults.Table.Decks
	}
	if config.Table.Seats == 0 {
		config.Table.Seats = defaults.Table.Seats
	}
	if config.UI.DealerDelayMs == 0 {
		config.UI.DealerDelayMs = defaults.UI.DealerDelayMs
	}
	if config.UI.LogLevel == "" {
		config.UI.LogLevel = defaults.UI.LogLevel
	}
	if config.UI.LogFile == "" {
		config.UI.LogFile = defaults.UI.LogFile
	}

	return &config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Player.Bankroll <= 0 {
		return fmt.Errorf("bankroll must be positive")
	}

	if c.Table.Decks < 1 || c.Table.Decks > 8 {
		return fmt.Errorf("decks must be between 1 and 8, got %d", c.Table.Decks)
	}

	if c.Table.Seats < 1 {
		return fmt.Errorf("seats must be at least 1, got %d", c.Table.Seats)
	}

	if c.UI.DealerDelayMs < 0 {
		return fmt.Errorf("dealer delay cannot be negative")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	return nil
}
