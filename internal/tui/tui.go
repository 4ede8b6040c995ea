// Package tui is the Bubble Tea presentation layer for the blackjack engine.
// Like the console front end it only polls snapshots and feeds commands back;
// the two are interchangeable over the same engine.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/console"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// dealerStepMsg paces the dealer's reveal-and-draw steps.
type dealerStepMsg struct{}

// Model is the Bubble Tea model for an interactive blackjack session.
type Model struct {
	game   *game.Game
	logger *log.Logger

	betInput textinput.Model
	status   string
	delay    time.Duration
	quitting bool
}

// NewModel creates a model bound to the given game. delay paces the
// dealer's steps; zero plays them out on consecutive frames.
func NewModel(g *game.Game, logger *log.Logger, delay time.Duration) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.Placeholder = "bet amount"
	ti.Focus()
	ti.CharLimit = 10
	ti.Width = 20
	ti.Prompt = "> "

	return &Model{
		game:     g,
		logger:   logger.WithPrefix("tui"),
		betInput: ti,
		delay:    delay,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dealerStepMsg:
		if m.game.Phase() != game.DealerTurn {
			return m, nil
		}
		m.game.NextDealerStep()
		if m.game.Phase() == game.DealerTurn {
			return m, m.scheduleDealerStep()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "esc" {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.game.Phase() {
	case game.WaitingForBet:
		if msg.String() == "q" && m.betInput.Value() == "" {
			m.quitting = true
			return m, tea.Quit
		}
		if msg.String() == "enter" {
			return m.placeBet()
		}
		var cmd tea.Cmd
		m.betInput, cmd = m.betInput.Update(msg)
		return m, cmd

	case game.PlayerTurn:
		action, err := console.ParseAction(msg.String())
		if err != nil {
			return m, nil // ignore unbound keys
		}
		if err := m.game.PlayerAction(action); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = ""
		if m.game.Phase() == game.DealerTurn {
			return m, m.scheduleDealerStep()
		}
		return m, nil

	case game.RoundComplete:
		switch msg.String() {
		case "y", "enter":
			return m, m.startNextRound()
		case "n", "q":
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *Model) placeBet() (tea.Model, tea.Cmd) {
	amount, err := console.ParseBet(m.betInput.Value())
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	if err := m.game.PlaceBet(amount); err != nil {
		m.status = err.Error()
		return m, nil
	}

	m.status = ""
	m.betInput.Reset()

	if m.game.Phase() == game.WaitingToDeal {
		m.game.Deal()
		if m.game.Phase() == game.DealerTurn {
			return m, m.scheduleDealerStep()
		}
	}
	return m, nil
}

func (m *Model) startNextRound() tea.Cmd {
	snap := m.game.Snapshot()
	for _, p := range snap.Players {
		if p.Bankroll == 0 {
			m.quitting = true
			return tea.Quit
		}
	}
	m.game.NextRound()
	m.status = ""
	m.betInput.Focus()
	return nil
}

func (m *Model) scheduleDealerStep() tea.Cmd {
	if m.delay <= 0 {
		return func() tea.Msg { return dealerStepMsg{} }
	}
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return dealerStepMsg{} })
}

// View renders the current phase
func (m *Model) View() string {
	if m.quitting {
		return "Thanks for playing!\n"
	}

	snap := m.game.Snapshot()
	var b strings.Builder

	b.WriteString(HeaderStyle.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	b.WriteString("\n\n")

	if len(snap.DealerCards) > 0 {
		b.WriteString(DealerStyle.Render("Dealer  "))
		b.WriteString(renderCards(snap.DealerCards, !snap.DealerRevealed))
		if snap.DealerRevealed {
			b.WriteString(fmt.Sprintf(" (%d)", snap.DealerTotal))
			if snap.DealerBust {
				b.WriteString(LossStyle.Render(" BUST"))
			}
		}
		b.WriteString("\n\n")
	}

	for pi, p := range snap.Players {
		for hi, hand := range p.Hands {
			name := p.Name
			if len(p.Hands) > 1 {
				name = fmt.Sprintf("%s #%d", p.Name, hi+1)
			}
			if pi == snap.ActivePlayer && hi == snap.ActiveHand {
				b.WriteString(ActiveHandStyle.Render("▶ " + name + "  "))
			} else {
				b.WriteString("  " + name + "  ")
			}
			b.WriteString(renderCards(hand.Cards, false))
			b.WriteString(fmt.Sprintf(" (%d) bet %d", hand.Total, hand.Bet))
			b.WriteString(handBadge(hand))
			b.WriteString("\n")
		}
		b.WriteString(HelpStyle.Render(fmt.Sprintf("  bankroll %d", p.Bankroll)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch snap.Phase {
	case game.WaitingForBet:
		p := snap.Players[snap.AwaitingBet]
		b.WriteString(fmt.Sprintf("%s, place your bet:\n%s\n", p.Name, m.betInput.View()))
		b.WriteString(HelpStyle.Render("enter to confirm • q to quit"))
	case game.PlayerTurn:
		hand := snap.Players[snap.ActivePlayer].Hands[snap.ActiveHand]
		b.WriteString(HelpStyle.Render(keyHelp(hand)))
	case game.DealerTurn:
		b.WriteString(HelpStyle.Render("dealer is playing..."))
	case game.RoundComplete:
		b.WriteString(renderOutcomes(snap))
		b.WriteString(HelpStyle.Render("\nplay another round? y/n"))
	}

	if m.status != "" {
		b.WriteString("\n" + LossStyle.Render(m.status))
	}
	b.WriteString("\n")

	return b.String()
}

func keyHelp(hand game.HandSnapshot) string {
	keys := []string{"h hit", "s stand"}
	if hand.CanDouble {
		keys = append(keys, "d double")
	}
	if hand.CanSplit {
		keys = append(keys, "p split")
	}
	return strings.Join(keys, " • ")
}

func handBadge(hand game.HandSnapshot) string {
	switch {
	case hand.Blackjack:
		return WinStyle.Render(" BLACKJACK")
	case hand.Bust:
		return LossStyle.Render(" BUST")
	case hand.Doubled:
		return PushStyle.Render(" DOUBLED")
	default:
		return ""
	}
}

func renderOutcomes(snap game.Snapshot) string {
	var b strings.Builder
	for _, p := range snap.Players {
		for _, hand := range p.Hands {
			if !hand.Settled {
				continue
			}
			switch hand.Outcome {
			case game.PlayerWin:
				b.WriteString(WinStyle.Render(fmt.Sprintf("%s wins %d!", p.Name, hand.Payout-hand.Bet)))
			case game.DealerWin:
				b.WriteString(LossStyle.Render(fmt.Sprintf("%s loses %d", p.Name, hand.Bet)))
			case game.Push:
				b.WriteString(PushStyle.Render(fmt.Sprintf("%s pushes", p.Name)))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderCards(cards []deck.Card, hideHole bool) string {
	parts := make([]string, 0, len(cards)+1)
	for _, card := range cards {
		style := BlackCardStyle
		if card.IsRed() {
			style = RedCardStyle
		}
		parts = append(parts, style.Render(card.String()))
	}
	if hideHole {
		parts = append(parts, BlackCardStyle.Render("??"))
	}
	return strings.Join(parts, " ")
}

// Run starts the TUI and blocks until the player quits.
func Run(g *game.Game, logger *log.Logger, delay time.Duration) error {
	p := tea.NewProgram(NewModel(g, logger, delay), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
