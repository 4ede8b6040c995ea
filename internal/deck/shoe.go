package deck

import (
	rand "math/rand/v2"
)

// Shoe is the drawable card sequence for a session of rounds, built from one
// or more standard 52-card decks. Drawing from an empty shoe is a caller bug:
// callers check Remaining and Reset between rounds, never mid-hand.
type Shoe struct {
	cards     []Card
	deckCount int
	rng       *rand.Rand
}

// NewShoe builds deckCount concatenated 52-card decks in order, unshuffled.
// Shuffle must be called before the first draw.
func NewShoe(deckCount int, rng *rand.Rand) *Shoe {
	if deckCount < 1 {
		panic("deck: shoe requires at least one deck")
	}

	s := &Shoe{
		cards:     make([]Card, 0, 52*deckCount),
		deckCount: deckCount,
		rng:       rng,
	}
	s.fill()
	return s
}

// NewStackedShoe builds a shoe that deals the given cards front to back.
// Used by tests to rig known deals; Shuffle and Reset are caller bugs here.
func NewStackedShoe(cards ...Card) *Shoe {
	return &Shoe{cards: append([]Card(nil), cards...)}
}

func (s *Shoe) fill() {
	s.cards = s.cards[:0]
	for d := 0; d < s.deckCount; d++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}
}

// Shuffle randomly permutes the remaining cards in place (Fisher-Yates).
func (s *Shoe) Shuffle() {
	if s.rng == nil {
		panic("deck: shuffle on a stacked shoe")
	}
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Draw removes and returns the front card. It panics on an empty shoe;
// running out mid-hand means the caller skipped its Reset check.
func (s *Shoe) Draw() Card {
	if len(s.cards) == 0 {
		panic("deck: draw from empty shoe")
	}
	card := s.cards[0]
	s.cards = s.cards[1:]
	return card
}

// Remaining returns the number of cards left to draw.
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// Resettable reports whether the shoe can be rebuilt. Stacked shoes cannot:
// they are finite fixtures and drain to empty.
func (s *Shoe) Resettable() bool {
	return s.rng != nil
}

// Reset restores the shoe to its full complement of decks and shuffles.
// Called between rounds once Remaining drops below the caller's threshold.
func (s *Shoe) Reset() {
	if s.rng == nil {
		panic("deck: reset on a stacked shoe")
	}
	s.fill()
	s.Shuffle()
}
