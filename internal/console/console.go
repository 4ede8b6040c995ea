// Package console is the plain-terminal presentation layer for the blackjack
// engine. It polls the engine's snapshots, renders them, and feeds typed
// bets and actions back in; all game rules live in the engine.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1A7A4C")).
			Padding(0, 1).
			Bold(true)

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	pushStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))
)

// Options configures a Console.
type Options struct {
	In          io.Reader
	Out         io.Writer
	Clock       quartz.Clock
	DealerDelay time.Duration
	ClearScreen bool
	Logger      *log.Logger
}

// Console drives an interactive session against a Game on a plain terminal.
type Console struct {
	game   *game.Game
	in     *bufio.Scanner
	out    io.Writer
	screen *termenv.Output
	clock  quartz.Clock
	delay  time.Duration
	clear  bool
	logger *log.Logger
}

// New creates a console bound to the given game.
func New(g *game.Game, opts Options) *Console {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return &Console{
		game:   g,
		in:     bufio.NewScanner(opts.In),
		out:    opts.Out,
		screen: termenv.NewOutput(opts.Out),
		clock:  opts.Clock,
		delay:  opts.DealerDelay,
		clear:  opts.ClearScreen,
		logger: opts.Logger.WithPrefix("console"),
	}
}

// Run plays rounds until the player quits, declines another round, or goes
// broke. Each loop iteration handles exactly one phase of the engine.
func (c *Console) Run() error {
	settings := c.game.Settings()
	fmt.Fprintln(c.out, titleStyle.Render(fmt.Sprintf(" ♠ ♥ Blackjack ♦ ♣  Welcome, %s! ", settings.PlayerName)))
	fmt.Fprintf(c.out, "Starting a game with %d player(s) and %d deck(s)\n\n", settings.PlayerCount, settings.DeckCount)

	for {
		switch c.game.Phase() {
		case game.WaitingForBet:
			quit, err := c.promptBet()
			if err != nil {
				return err
			}
			if quit {
				fmt.Fprintln(c.out, "Thanks for playing!")
				return nil
			}

		case game.WaitingToDeal:
			c.game.Deal()
			c.renderTable()

		case game.PlayerTurn:
			quit, err := c.promptAction()
			if err != nil {
				return err
			}
			if quit {
				fmt.Fprintln(c.out, "Thanks for playing!")
				return nil
			}
			c.renderTable()

		case game.DealerTurn:
			c.game.NextDealerStep()
			c.renderTable()
			c.pause()

		case game.RoundComplete:
			c.renderResults()
			quit, err := c.promptNextRound()
			if err != nil {
				return err
			}
			if quit {
				fmt.Fprintln(c.out, "Thanks for playing!")
				return nil
			}
			c.game.NextRound()
		}
	}
}

func (c *Console) promptBet() (quit bool, err error) {
	snap := c.game.Snapshot()
	p := snap.Players[snap.AwaitingBet]
	if p.Bankroll == 0 {
		fmt.Fprintf(c.out, "%s is out of money. Game over!\n", p.Name)
		return true, nil
	}

	for {
		fmt.Fprint(c.out, promptStyle.Render(fmt.Sprintf("%s, place your bet (bankroll %d, q to quit): ", p.Name, p.Bankroll)))
		line, ok := c.readLine()
		if !ok {
			return true, nil
		}
		if isQuit(line) {
			return true, nil
		}

		amount, err := ParseBet(line)
		if err != nil {
			fmt.Fprintln(c.out, lossStyle.Render(err.Error()))
			continue
		}

		if err := c.game.PlaceBet(amount); err != nil {
			switch {
			case errors.Is(err, game.ErrInsufficientFunds):
				fmt.Fprintln(c.out, lossStyle.Render(fmt.Sprintf("You only have %d to bet", p.Bankroll)))
			default:
				fmt.Fprintln(c.out, lossStyle.Render(err.Error()))
			}
			continue
		}
		return false, nil
	}
}

func (c *Console) promptAction() (quit bool, err error) {
	snap := c.game.Snapshot()
	player := snap.Players[snap.ActivePlayer]
	hand := player.Hands[snap.ActiveHand]

	for {
		fmt.Fprint(c.out, promptStyle.Render(fmt.Sprintf("%s %s: %s? ", player.Name, handLabel(snap, snap.ActiveHand), legalMoves(hand))))
		line, ok := c.readLine()
		if !ok {
			return true, nil
		}
		if isQuit(line) {
			return true, nil
		}

		action, err := ParseAction(line)
		if err != nil {
			fmt.Fprintln(c.out, lossStyle.Render(err.Error()))
			continue
		}

		if err := c.game.PlayerAction(action); err != nil {
			switch {
			case errors.Is(err, game.ErrInsufficientFunds):
				fmt.Fprintln(c.out, lossStyle.Render("Not enough in the bankroll for that"))
			case errors.Is(err, game.ErrInvalidAction):
				fmt.Fprintln(c.out, lossStyle.Render(fmt.Sprintf("You can't %s this hand", action)))
			default:
				fmt.Fprintln(c.out, lossStyle.Render(err.Error()))
			}
			continue
		}
		return false, nil
	}
}

func (c *Console) promptNextRound() (quit bool, err error) {
	fmt.Fprint(c.out, promptStyle.Render("\nWould you like to play another round? (y/n) "))
	line, ok := c.readLine()
	if !ok {
		return true, nil
	}
	return strings.ToLower(strings.TrimSpace(line)) != "y", nil
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func isQuit(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "q" || s == "quit"
}

func legalMoves(hand game.HandSnapshot) string {
	moves := []string{"(h)it", "(s)tand"}
	if hand.CanDouble {
		moves = append(moves, "(d)ouble")
	}
	if hand.CanSplit {
		moves = append(moves, "s(p)lit")
	}
	return strings.Join(moves, ", ")
}

func handLabel(snap game.Snapshot, idx int) string {
	if len(snap.Players[snap.ActivePlayer].Hands) == 1 {
		return ""
	}
	return fmt.Sprintf("hand %d", idx+1)
}

func (c *Console) renderTable() {
	if c.clear {
		c.screen.ClearScreen()
	}
	snap := c.game.Snapshot()

	fmt.Fprintf(c.out, "\nDealer: %s", renderCards(snap.DealerCards, !snap.DealerRevealed))
	if snap.DealerRevealed {
		fmt.Fprintf(c.out, " (%d)", snap.DealerTotal)
		if snap.DealerBust {
			fmt.Fprint(c.out, lossStyle.Render(" BUST"))
		}
	}
	fmt.Fprintln(c.out)

	for pi, p := range snap.Players {
		for hi, hand := range p.Hands {
			marker := "  "
			if pi == snap.ActivePlayer && hi == snap.ActiveHand {
				marker = "> "
			}
			fmt.Fprintf(c.out, "%s%s: %s (%d) bet %d", marker, p.Name, renderCards(hand.Cards, false), hand.Total, hand.Bet)
			switch {
			case hand.Blackjack:
				fmt.Fprint(c.out, winStyle.Render(" BLACKJACK"))
			case hand.Bust:
				fmt.Fprint(c.out, lossStyle.Render(" BUST"))
			}
			fmt.Fprintln(c.out)
		}
	}
	fmt.Fprintln(c.out)
}

func (c *Console) renderResults() {
	snap := c.game.Snapshot()
	for _, p := range snap.Players {
		for _, hand := range p.Hands {
			if !hand.Settled {
				continue
			}
			var verdict string
			switch hand.Outcome {
			case game.PlayerWin:
				verdict = winStyle.Render(fmt.Sprintf("%s wins %d!", p.Name, hand.Payout-hand.Bet))
			case game.DealerWin:
				verdict = lossStyle.Render(fmt.Sprintf("%s loses %d", p.Name, hand.Bet))
			case game.Push:
				verdict = pushStyle.Render(fmt.Sprintf("%s pushes", p.Name))
			}
			fmt.Fprintf(c.out, "%s  %s  bankroll %d\n", verdict, renderCards(hand.Cards, false), p.Bankroll)
		}
	}
}

func renderCards(cards []deck.Card, hideHole bool) string {
	parts := make([]string, 0, len(cards)+1)
	for _, card := range cards {
		style := blackCardStyle
		if card.IsRed() {
			style = redCardStyle
		}
		parts = append(parts, style.Render(card.String()))
	}
	if hideHole {
		parts = append(parts, blackCardStyle.Render("??"))
	}
	return strings.Join(parts, " ")
}

// pause waits between dealer reveals so the play-out reads like a deal, not
// a dump. The clock is injectable so tests never sleep.
func (c *Console) pause() {
	if c.delay <= 0 {
		return
	}
	fired := make(chan struct{})
	timer := c.clock.AfterFunc(c.delay, func() { close(fired) })
	defer timer.Stop()
	<-fired
}
