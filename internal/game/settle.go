package game

// Outcome classifies a settled hand against the dealer.
type Outcome int

const (
	PlayerWin Outcome = iota
	DealerWin
	Push
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case PlayerWin:
		return "win"
	case DealerWin:
		return "loss"
	case Push:
		return "push"
	default:
		return "unknown"
	}
}

// Settle compares a finished player hand against the dealer hand and returns
// the outcome plus the payout: the amount credited back to the bankroll, the
// stake having been deducted when the bet was placed. A loss credits nothing,
// a push returns the stake, a win returns the stake plus even money, and a
// natural returns the stake plus three to two.
//
// Order matters: a player bust loses even when the dealer also busts (the
// player busts first under standard rules), and a natural beats a drawn 21,
// so both natural checks run before the total comparison.
func Settle(player, dealer *Hand) (Outcome, int) {
	bet := player.Bet()

	switch {
	case player.IsBust():
		return DealerWin, 0
	case player.IsBlackjack() && dealer.IsBlackjack():
		return Push, bet
	case player.IsBlackjack():
		return PlayerWin, bet + bet*3/2
	case dealer.IsBlackjack():
		return DealerWin, 0
	case dealer.IsBust():
		return PlayerWin, bet * 2
	case player.Total() > dealer.Total():
		return PlayerWin, bet * 2
	case player.Total() < dealer.Total():
		return DealerWin, 0
	default:
		return Push, bet
	}
}
