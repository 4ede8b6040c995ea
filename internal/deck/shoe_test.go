package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/randutil"
)

func TestShoeSize(t *testing.T) {
	for _, decks := range []int{1, 2, 6, 8} {
		s := NewShoe(decks, randutil.New(42))
		assert.Equal(t, 52*decks, s.Remaining())

		s.Shuffle()
		assert.Equal(t, 52*decks, s.Remaining(), "shuffle must not change card count")
	}
}

func TestShoeDrawDecrements(t *testing.T) {
	s := NewShoe(2, randutil.New(42))
	s.Shuffle()

	for k := 1; k <= 104; k++ {
		s.Draw()
		assert.Equal(t, 104-k, s.Remaining())
	}
}

func TestShoeDrawEmptyPanics(t *testing.T) {
	s := NewStackedShoe(MustParseCards("As")...)
	s.Draw()
	assert.Panics(t, func() { s.Draw() })
}

func TestShoeContainsFullDecks(t *testing.T) {
	s := NewShoe(2, randutil.New(7))
	s.Shuffle()

	counts := make(map[Card]int)
	for s.Remaining() > 0 {
		counts[s.Draw()]++
	}

	require.Len(t, counts, 52)
	for card, n := range counts {
		assert.Equal(t, 2, n, "card %s", card)
	}
}

func TestShoeShuffleDeterministic(t *testing.T) {
	a := NewShoe(1, randutil.New(99))
	b := NewShoe(1, randutil.New(99))
	a.Shuffle()
	b.Shuffle()

	for a.Remaining() > 0 {
		assert.Equal(t, a.Draw(), b.Draw())
	}
}

func TestShoeShuffleChangesOrder(t *testing.T) {
	s := NewShoe(1, randutil.New(1))
	unshuffled := NewShoe(1, randutil.New(1))
	s.Shuffle()

	same := true
	for s.Remaining() > 0 {
		if s.Draw() != unshuffled.Draw() {
			same = false
			break
		}
	}
	assert.False(t, same, "shuffle left the shoe in new-deck order")
}

func TestShoeReset(t *testing.T) {
	s := NewShoe(1, randutil.New(3))
	s.Shuffle()
	for i := 0; i < 40; i++ {
		s.Draw()
	}
	require.Equal(t, 12, s.Remaining())

	s.Reset()
	assert.Equal(t, 52, s.Remaining())
}

func TestStackedShoeDealsInOrder(t *testing.T) {
	cards := MustParseCards("TcAd7h")
	s := NewStackedShoe(cards...)

	assert.Equal(t, cards[0], s.Draw())
	assert.Equal(t, cards[1], s.Draw())
	assert.Equal(t, cards[2], s.Draw())
	assert.Equal(t, 0, s.Remaining())
}

func TestStackedShoeShufflePanics(t *testing.T) {
	s := NewStackedShoe(MustParseCards("AsAd")...)
	assert.Panics(t, func() { s.Shuffle() })
	assert.Panics(t, func() { s.Reset() })
}
