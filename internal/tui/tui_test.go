package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

func newTestModel(t *testing.T, cards string) *Model {
	t.Helper()
	g, err := game.New(
		game.Settings{PlayerName: "Alice", DeckCount: 1, PlayerCount: 1, Bankroll: 100},
		game.WithShoe(deck.NewStackedShoe(deck.MustParseCards(cards)...)),
	)
	require.NoError(t, err)
	return NewModel(g, nil, 0)
}

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeString(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// drainDealer delivers dealer step messages until the round completes.
func drainDealer(t *testing.T, m *Model) {
	t.Helper()
	for i := 0; m.game.Phase() == game.DealerTurn; i++ {
		require.Less(t, i, 20, "dealer turn did not terminate")
		m.Update(dealerStepMsg{})
	}
}

func TestModelPlaysARound(t *testing.T) {
	m := newTestModel(t, "TcTh9d7h")

	view := m.View()
	assert.Contains(t, view, "place your bet")

	typeString(m, "10")
	m.Update(keyMsg("enter"))
	require.Equal(t, game.PlayerTurn, m.game.Phase())

	view = m.View()
	assert.Contains(t, view, "??", "hole card hidden during the player turn")
	assert.Contains(t, view, "h hit • s stand")

	m.Update(keyMsg("s"))
	drainDealer(t, m)
	require.Equal(t, game.RoundComplete, m.game.Phase())

	view = m.View()
	assert.Contains(t, view, "Alice wins 10!")
	assert.Contains(t, view, "play another round?")
}

func TestModelRejectsBadBet(t *testing.T) {
	m := newTestModel(t, "TcTh9d7h")

	typeString(m, "200")
	m.Update(keyMsg("enter"))

	assert.Equal(t, game.WaitingForBet, m.game.Phase())
	assert.Contains(t, m.View(), "insufficient funds")
}

func TestModelShowsIllegalActionStatus(t *testing.T) {
	m := newTestModel(t, "5cTh6d7h2c")

	typeString(m, "10")
	m.Update(keyMsg("enter"))

	m.Update(keyMsg("h")) // three cards now
	m.Update(keyMsg("d"))

	assert.Equal(t, game.PlayerTurn, m.game.Phase())
	assert.Contains(t, m.View(), "invalid action")
}

func TestModelNextRound(t *testing.T) {
	m := newTestModel(t, "TcTh9d7h5c9s7d5h8c")

	typeString(m, "10")
	m.Update(keyMsg("enter"))
	m.Update(keyMsg("s"))
	drainDealer(t, m)
	require.Equal(t, game.RoundComplete, m.game.Phase())

	m.Update(keyMsg("y"))
	assert.Equal(t, game.WaitingForBet, m.game.Phase())
	assert.Contains(t, m.View(), "place your bet")
}

func TestModelQuitKeys(t *testing.T) {
	m := newTestModel(t, "TcTh9d7h")

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Thanks for playing!")
}
