package simulator

import (
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// Strategy picks the next action for a live hand given the dealer's up card.
// It is only consulted while the hand is undecided, and must not return
// Double or Split unless the hand snapshot allows them.
type Strategy func(hand game.HandSnapshot, upcard deck.Card) game.Action

// Mimic plays the dealer's own rule: hit below seventeen, stand otherwise,
// never double or split. Useful as a baseline; the mimic-the-dealer edge is
// a known quantity.
func Mimic(hand game.HandSnapshot, _ deck.Card) game.Action {
	if hand.Total >= 17 {
		return game.Stand
	}
	return game.Hit
}

// Basic is a simplified basic strategy: always split aces and eights, double
// hard ten and eleven against a weaker up card, and stand on stiff totals
// when the dealer shows a bust card.
func Basic(hand game.HandSnapshot, upcard deck.Card) game.Action {
	up := upcard.Value()

	if hand.CanSplit {
		switch hand.Cards[0].Rank {
		case deck.Ace, deck.Eight:
			return game.Split
		}
	}

	if hand.CanDouble && !hand.Soft {
		switch hand.Total {
		case 11:
			if up < 11 {
				return game.Double
			}
		case 10:
			if up < 10 {
				return game.Double
			}
		}
	}

	if hand.Soft {
		if hand.Total >= 18 {
			return game.Stand
		}
		return game.Hit
	}

	switch {
	case hand.Total >= 17:
		return game.Stand
	case hand.Total >= 13 && up <= 6:
		return game.Stand
	case hand.Total == 12 && up >= 4 && up <= 6:
		return game.Stand
	default:
		return game.Hit
	}
}

// StrategyByName resolves a strategy flag value.
func StrategyByName(name string) (Strategy, bool) {
	switch name {
	case "basic":
		return Basic, true
	case "mimic":
		return Mimic, true
	}
	return nil, false
}
