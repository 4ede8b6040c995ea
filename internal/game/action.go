package game

// Action is a player decision during their turn.
type Action int

const (
	Hit Action = iota
	Stand
	Double
	Split
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Double:
		return "double"
	case Split:
		return "split"
	default:
		return "unknown"
	}
}

// Phase is the current stage of the round state machine.
type Phase int

const (
	WaitingForBet Phase = iota
	WaitingToDeal
	PlayerTurn
	DealerTurn
	RoundComplete
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case WaitingForBet:
		return "waiting-for-bet"
	case WaitingToDeal:
		return "waiting-to-deal"
	case PlayerTurn:
		return "player-turn"
	case DealerTurn:
		return "dealer-turn"
	case RoundComplete:
		return "round-complete"
	default:
		return "unknown"
	}
}
