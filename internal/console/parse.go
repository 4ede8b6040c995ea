package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/blackjack/internal/game"
)

// ParseAction maps a typed token to a player action: single letters or full
// words, case-insensitive, surrounding whitespace ignored. Unrecognized
// tokens error and are re-prompted, never forwarded to the engine.
func ParseAction(s string) (game.Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "hit":
		return game.Hit, nil
	case "s", "stand":
		return game.Stand, nil
	case "d", "double":
		return game.Double, nil
	case "p", "split":
		return game.Split, nil
	default:
		return 0, fmt.Errorf("unrecognized action %q", strings.TrimSpace(s))
	}
}

// ParseBet parses a bet amount in whole units.
func ParseBet(s string) (int, error) {
	s = strings.TrimSpace(s)
	amount, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bet must be a whole number, got %q", s)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("bet must be positive, got %d", amount)
	}
	return amount, nil
}
