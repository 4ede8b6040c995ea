package game

import "github.com/lox/blackjack/internal/deck"

// Snapshot is a read-only view of the game for presentation layers. Every
// slice is a copy; mutating a snapshot never affects game state.
type Snapshot struct {
	Phase Phase

	// DealerCards holds only the visible dealer cards: the up-card before
	// the reveal, the full hand afterwards. DealerTotal is zero until the
	// hole card is revealed.
	DealerCards    []deck.Card
	DealerRevealed bool
	DealerTotal    int
	DealerBust     bool

	Players []PlayerSnapshot

	// AwaitingBet is the seat whose bet is pending during WaitingForBet,
	// otherwise -1. ActivePlayer/ActiveHand locate the hand awaiting a
	// decision during PlayerTurn, otherwise -1.
	AwaitingBet  int
	ActivePlayer int
	ActiveHand   int
}

// PlayerSnapshot is a player's visible state.
type PlayerSnapshot struct {
	Name     string
	Bankroll int
	Hands    []HandSnapshot
}

// HandSnapshot is a hand's visible state, including its settled outcome.
type HandSnapshot struct {
	Cards     []deck.Card
	Bet       int
	Total     int
	Soft      bool
	Bust      bool
	Blackjack bool
	Stood     bool
	Doubled   bool
	Split     bool
	CanDouble bool
	CanSplit  bool

	Settled bool
	Outcome Outcome
	Payout  int
}

// Snapshot returns the current phase and the data needed to render it.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:        g.phase,
		AwaitingBet:  -1,
		ActivePlayer: -1,
		ActiveHand:   -1,
		Players:      make([]PlayerSnapshot, len(g.players)),
	}

	if g.phase == WaitingForBet {
		snap.AwaitingBet = g.betsPlaced
	}
	if g.phase == PlayerTurn {
		snap.ActivePlayer = g.activePlayer
		snap.ActiveHand = g.activeHand
	}

	if g.dealer != nil {
		if g.dealerRevealed {
			snap.DealerCards = g.dealer.Cards()
			snap.DealerRevealed = true
			snap.DealerTotal = g.dealer.Total()
			snap.DealerBust = g.dealer.IsBust()
		} else {
			snap.DealerCards = g.dealer.Cards()[:1]
		}
	}

	for i, p := range g.players {
		ps := PlayerSnapshot{
			Name:     p.Name,
			Bankroll: p.Bankroll,
			Hands:    make([]HandSnapshot, len(p.Hands)),
		}
		for j, h := range p.Hands {
			outcome, payout, settled := h.Outcome()
			ps.Hands[j] = HandSnapshot{
				Cards:     h.Cards(),
				Bet:       h.Bet(),
				Total:     h.Total(),
				Soft:      h.IsSoft(),
				Bust:      h.IsBust(),
				Blackjack: h.IsBlackjack(),
				Stood:     h.Stood(),
				Doubled:   h.Doubled(),
				Split:     h.IsSplit(),
				CanDouble: h.CanDouble(),
				CanSplit:  h.CanSplit(),
				Settled:   settled,
				Outcome:   outcome,
				Payout:    payout,
			}
		}
		snap.Players[i] = ps
	}

	return snap
}
