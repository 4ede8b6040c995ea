package game

import "fmt"

const defaultBankroll = 500

// Settings is the immutable game configuration, read once at construction.
type Settings struct {
	PlayerName  string
	DeckCount   int
	PlayerCount int
	Bankroll    int
}

// Validate checks the settings before a game is constructed.
func (s Settings) Validate() error {
	if s.PlayerName == "" {
		return fmt.Errorf("player name is required")
	}
	if s.DeckCount < 1 {
		return fmt.Errorf("deck count must be at least 1, got %d", s.DeckCount)
	}
	if s.PlayerCount < 1 {
		return fmt.Errorf("player count must be at least 1, got %d", s.PlayerCount)
	}
	if s.Bankroll < 0 {
		return fmt.Errorf("bankroll cannot be negative, got %d", s.Bankroll)
	}
	return nil
}

func (s Settings) withDefaults() Settings {
	if s.PlayerCount == 0 {
		s.PlayerCount = 1
	}
	if s.DeckCount == 0 {
		s.DeckCount = 1
	}
	if s.Bankroll == 0 {
		s.Bankroll = defaultBankroll
	}
	return s
}
