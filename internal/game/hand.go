package game

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// Hand is an ordered sequence of cards plus a wager. Totals are computed from
// the cards on every read so they can never go stale; only the wager, the
// action flags, and the post-settlement outcome are stored.
type Hand struct {
	cards   []deck.Card
	bet     int
	stood   bool
	doubled bool
	split   bool
	hit     bool

	settled bool
	outcome Outcome
	payout  int
}

// NewHand creates an empty hand with the given wager.
func NewHand(bet int) *Hand {
	return &Hand{bet: bet}
}

// AddCard appends a card in draw order.
func (h *Hand) AddCard(c deck.Card) {
	h.cards = append(h.cards, c)
}

// Cards returns a copy of the cards in draw order.
func (h *Hand) Cards() []deck.Card {
	return append([]deck.Card(nil), h.cards...)
}

// Bet returns the current wager on the hand.
func (h *Hand) Bet() int {
	return h.bet
}

// HardTotal returns the hand value with every ace counted as one.
func (h *Hand) HardTotal() int {
	total := 0
	for _, c := range h.cards {
		if c.IsAce() {
			total++
		} else {
			total += c.Value()
		}
	}
	return total
}

// Total returns the best usable total: aces count eleven unless that busts
// the hand, reduced one at a time until the total fits or all count one.
func (h *Hand) Total() int {
	total, _ := h.total()
	return total
}

// IsSoft reports whether the best total counts an ace as eleven.
func (h *Hand) IsSoft() bool {
	_, soft := h.total()
	return soft
}

func (h *Hand) total() (int, bool) {
	total := 0
	aces := 0
	for _, c := range h.cards {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces > 0
}

// IsBust reports whether the hand is over 21 even with all aces counted as one.
func (h *Hand) IsBust() bool {
	return h.HardTotal() > 21
}

// IsBlackjack reports whether the hand is a natural: exactly two cards
// totalling 21 on a hand that did not come from a split.
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Total() == 21 && !h.split
}

// CanSplit reports whether the hand may be split: exactly two cards of equal
// rank on a hand not already produced by a split. Re-splitting is not
// supported.
func (h *Hand) CanSplit() bool {
	return len(h.cards) == 2 && h.cards[0].Rank == h.cards[1].Rank && !h.split
}

// CanDouble reports whether the hand may double down: exactly two cards and
// no hit taken yet.
func (h *Hand) CanDouble() bool {
	return len(h.cards) == 2 && !h.hit && !h.stood
}

// Done reports whether the hand takes no further player decisions.
func (h *Hand) Done() bool {
	return h.stood || h.IsBust() || h.IsBlackjack()
}

// Stood reports whether the hand has stood (including after a double).
func (h *Hand) Stood() bool {
	return h.stood
}

// Doubled reports whether the wager was doubled for a single final card.
func (h *Hand) Doubled() bool {
	return h.doubled
}

// IsSplit reports whether the hand came from a split.
func (h *Hand) IsSplit() bool {
	return h.split
}

// Outcome returns the settled outcome and the amount credited back to the
// bankroll. The boolean is false until the hand has been settled.
func (h *Hand) Outcome() (Outcome, int, bool) {
	return h.outcome, h.payout, h.settled
}

// String returns a debug representation like "T♣ 7♦ (17)".
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return fmt.Sprintf("%s (%d)", strings.Join(parts, " "), h.Total())
}

func (h *Hand) stand() {
	h.stood = true
}

func (h *Hand) markHit() {
	h.hit = true
}

func (h *Hand) markDoubled() {
	h.doubled = true
	h.bet *= 2
	h.stood = true
}

// splitOff moves the hand's second card onto a new sibling hand carrying the
// same wager. Both hands are marked as split so neither can be a natural or
// split again.
func (h *Hand) splitOff() *Hand {
	sibling := &Hand{
		cards: []deck.Card{h.cards[1]},
		bet:   h.bet,
		split: true,
	}
	h.cards = h.cards[:1]
	h.split = true
	return sibling
}

func (h *Hand) settle(outcome Outcome, payout int) {
	h.settled = true
	h.outcome = outcome
	h.payout = payout
}
