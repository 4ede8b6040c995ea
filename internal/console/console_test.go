package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

func newScriptedConsole(t *testing.T, cards, input string) (*Console, *strings.Builder) {
	t.Helper()
	g, err := game.New(
		game.Settings{PlayerName: "Alice", DeckCount: 1, PlayerCount: 1, Bankroll: 100},
		game.WithShoe(deck.NewStackedShoe(deck.MustParseCards(cards)...)),
	)
	require.NoError(t, err)

	out := &strings.Builder{}
	c := New(g, Options{
		In:  strings.NewReader(input),
		Out: out,
		// Zero delay: dealer steps render back to back in tests.
		DealerDelay: 0,
	})
	return c, out
}

func TestConsolePlaysARound(t *testing.T) {
	// Player stands on 19; dealer reveals 17 and stands.
	c, out := newScriptedConsole(t, "TcTh9d7h", "10\ns\nn\n")

	require.NoError(t, c.Run())

	text := out.String()
	assert.Contains(t, text, "Welcome, Alice!")
	assert.Contains(t, text, "place your bet")
	assert.Contains(t, text, "??", "hole card hidden during the player turn")
	assert.Contains(t, text, "Alice wins 10!")
	assert.Contains(t, text, "bankroll 110")
	assert.Contains(t, text, "Thanks for playing!")
}

func TestConsoleRepromptsOnBadInput(t *testing.T) {
	c, out := newScriptedConsole(t, "TcTh9d7h", "zero\n0\n200\n10\nx\ns\nn\n")

	require.NoError(t, c.Run())

	text := out.String()
	assert.Contains(t, text, "bet must be a whole number")
	assert.Contains(t, text, "bet must be positive")
	assert.Contains(t, text, "You only have 100 to bet")
	assert.Contains(t, text, `unrecognized action "x"`)
	assert.Contains(t, text, "Alice wins 10!")
}

func TestConsoleRejectsIllegalDouble(t *testing.T) {
	// Hit first, then try to double the three-card hand.
	c, out := newScriptedConsole(t, "5cTh6d7h2c", "10\nh\nd\ns\nn\n")

	require.NoError(t, c.Run())
	assert.Contains(t, out.String(), "You can't double this hand")
}

func TestConsoleQuitsAtBetPrompt(t *testing.T) {
	c, out := newScriptedConsole(t, "TcTh9d7h", "q\n")

	require.NoError(t, c.Run())
	assert.Contains(t, out.String(), "Thanks for playing!")
}

func TestConsoleEOFQuits(t *testing.T) {
	c, _ := newScriptedConsole(t, "TcTh9d7h", "")
	require.NoError(t, c.Run())
}
