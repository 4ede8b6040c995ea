package game

import "errors"

// Recoverable validation failures. The state machine does not advance when
// one of these is returned; the presentation layer re-prompts. Match with
// errors.Is since they come back wrapped with context.
var (
	// ErrInvalidBet is returned for a zero or negative bet amount.
	ErrInvalidBet = errors.New("invalid bet")

	// ErrInsufficientFunds is returned when a bet, double, or split would
	// take a bankroll below zero. Distinct from ErrInvalidBet so callers can
	// message it differently.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAction is returned when the requested action is not in the
	// active hand's legal move set.
	ErrInvalidAction = errors.New("invalid action")
)
