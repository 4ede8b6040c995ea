package game

// Player owns a bankroll and the hands wagered against it. Extra hands exist
// only after a split; the bankroll is mutated exclusively by the state
// machine's transitions, never by hands.
type Player struct {
	Name     string
	Bankroll int
	Hands    []*Hand
}

// NewPlayer creates a player with the given starting bankroll.
func NewPlayer(name string, bankroll int) *Player {
	return &Player{Name: name, Bankroll: bankroll}
}

// reserve deducts the stake for a bet, double, or split. It fails without
// mutating when the stake exceeds the bankroll, keeping the bankroll >= 0
// invariant.
func (p *Player) reserve(amount int) error {
	if amount > p.Bankroll {
		return ErrInsufficientFunds
	}
	p.Bankroll -= amount
	return nil
}

func (p *Player) clearHands() {
	p.Hands = nil
}
