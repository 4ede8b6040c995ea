package game

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
)

// Dealer draws to any total below 17 and stands on all 17s, soft included.
const dealerStandsAt = 17

// Cards the shoe must hold per wagered hand slot before a round starts;
// beyond the worst realistic draw depth, so the shoe can never run dry
// mid-hand. NextRound resets the shoe below this reserve.
const cardsPerSeat = 12

// Game drives one or more players' hands and the dealer's hand through the
// round lifecycle. It owns the shoe and the bankrolls, exposes the current
// phase as a read-only Snapshot, and accepts a small set of commands. All
// control flow is the caller's: the engine never blocks and never spawns
// goroutines.
type Game struct {
	settings Settings
	shoe     *deck.Shoe
	players  []*Player
	dealer   *Hand
	phase    Phase
	logger   *log.Logger

	betsPlaced     int
	activePlayer   int
	activeHand     int
	dealerRevealed bool
}

// Option configures a Game at construction.
type Option func(*Game)

// WithRNG injects the random source used to shuffle the shoe. Production
// seeds from system entropy; tests seed deterministically via randutil.
func WithRNG(rng *rand.Rand) Option {
	return func(g *Game) {
		g.shoe = deck.NewShoe(g.settings.DeckCount, rng)
		g.shoe.Shuffle()
	}
}

// WithShoe injects a pre-built shoe, typically a stacked one for rigged
// deals in tests. The shoe is used as-is, without an initial shuffle.
func WithShoe(shoe *deck.Shoe) Option {
	return func(g *Game) {
		g.shoe = shoe
	}
}

// WithLogger injects a logger for engine debug output.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger.WithPrefix("game")
	}
}

// New creates a game in the WaitingForBet phase. The shoe is built from
// settings.DeckCount decks and shuffled once here; afterwards it is only
// reshuffled between rounds when it runs low.
func New(settings Settings, opts ...Option) (*Game, error) {
	settings = settings.withDefaults()
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	g := &Game{
		settings: settings,
		phase:    WaitingForBet,
		logger:   log.New(io.Discard),
	}

	g.players = make([]*Player, settings.PlayerCount)
	g.players[0] = NewPlayer(settings.PlayerName, settings.Bankroll)
	for i := 1; i < settings.PlayerCount; i++ {
		g.players[i] = NewPlayer(fmt.Sprintf("Player %d", i+1), settings.Bankroll)
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.shoe == nil {
		WithRNG(randutil.New(time.Now().UnixNano()))(g)
	}

	return g, nil
}

// Phase returns the current phase of the round.
func (g *Game) Phase() Phase {
	return g.phase
}

// Settings returns the immutable game configuration.
func (g *Game) Settings() Settings {
	return g.settings
}

// PlaceBet places the pending player's bet for the round. Bets are collected
// in seat order; once every player has bet, the phase advances to
// WaitingToDeal. The stake is deducted immediately so the bankroll reflects
// exposure for the rest of the round.
func (g *Game) PlaceBet(amount int) error {
	g.mustPhase("PlaceBet", WaitingForBet)

	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %d", ErrInvalidBet, amount)
	}

	p := g.players[g.betsPlaced]
	if err := p.reserve(amount); err != nil {
		return fmt.Errorf("%w: bet %d exceeds bankroll %d", ErrInsufficientFunds, amount, p.Bankroll)
	}

	p.Hands = []*Hand{NewHand(amount)}
	g.logger.Debug("bet placed", "player", p.Name, "amount", amount, "bankroll", p.Bankroll)

	g.betsPlaced++
	if g.betsPlaced == len(g.players) {
		g.phase = WaitingToDeal
	}
	return nil
}

// Deal deals two cards to every player hand and two to the dealer, the
// second dealer card face down. Naturals are settled immediately: a dealer
// natural ends the round for everyone, and a player natural wins three to
// two on the spot. If no undecided hand remains the round completes without
// a player turn.
func (g *Game) Deal() {
	g.mustPhase("Deal", WaitingToDeal)

	g.dealer = NewHand(0)
	for pass := 0; pass < 2; pass++ {
		for _, p := range g.players {
			p.Hands[0].AddCard(g.shoe.Draw())
		}
		g.dealer.AddCard(g.shoe.Draw())
	}

	g.logger.Debug("dealt", "upcard", g.dealer.Cards()[0], "remaining", g.shoe.Remaining())

	// Dealer peek: a dealer natural settles every hand at once.
	if g.dealer.IsBlackjack() {
		g.finishRound()
		return
	}

	for _, p := range g.players {
		hand := p.Hands[0]
		if hand.IsBlackjack() {
			outcome, payout := Settle(hand, g.dealer)
			hand.settle(outcome, payout)
			p.Bankroll += payout
			g.logger.Debug("natural", "player", p.Name, "outcome", outcome, "payout", payout)
		}
	}

	g.activePlayer, g.activeHand = 0, 0
	if !g.advance(0, 0) {
		g.finishRound()
		return
	}
	g.phase = PlayerTurn
}

// PlayerAction applies one decision to the active hand. Hit and Stand are
// always legal for a live hand; Double and Split additionally require the
// hand to qualify and the bankroll to cover the extra stake. On an error the
// state does not advance and the caller re-prompts.
func (g *Game) PlayerAction(action Action) error {
	g.mustPhase("PlayerAction", PlayerTurn)

	p := g.players[g.activePlayer]
	hand := p.Hands[g.activeHand]

	switch action {
	case Hit:
		hand.markHit()
		hand.AddCard(g.shoe.Draw())
		g.logger.Debug("hit", "player", p.Name, "hand", hand.String())

	case Stand:
		hand.stand()
		g.logger.Debug("stand", "player", p.Name, "hand", hand.String())

	case Double:
		if !hand.CanDouble() {
			return fmt.Errorf("%w: double requires an untouched two-card hand", ErrInvalidAction)
		}
		if err := p.reserve(hand.Bet()); err != nil {
			return fmt.Errorf("%w: double needs %d more, bankroll %d", ErrInsufficientFunds, hand.Bet(), p.Bankroll)
		}
		hand.markDoubled()
		hand.AddCard(g.shoe.Draw())
		g.logger.Debug("double", "player", p.Name, "hand", hand.String(), "bet", hand.Bet())

	case Split:
		if !hand.CanSplit() {
			return fmt.Errorf("%w: split requires a two-card pair", ErrInvalidAction)
		}
		if err := p.reserve(hand.Bet()); err != nil {
			return fmt.Errorf("%w: split needs %d more, bankroll %d", ErrInsufficientFunds, hand.Bet(), p.Bankroll)
		}
		sibling := hand.splitOff()
		hand.AddCard(g.shoe.Draw())
		sibling.AddCard(g.shoe.Draw())

		// The sibling joins the rotation directly after the active hand.
		p.Hands = append(p.Hands, nil)
		copy(p.Hands[g.activeHand+2:], p.Hands[g.activeHand+1:])
		p.Hands[g.activeHand+1] = sibling
		g.logger.Debug("split", "player", p.Name, "hands", len(p.Hands))

		// The active hand is two cards again and still live.
		return nil

	default:
		return fmt.Errorf("%w: unknown action %d", ErrInvalidAction, action)
	}

	if hand.Done() {
		if !g.advance(g.activePlayer, g.activeHand+1) {
			g.phase = DealerTurn
			g.dealerRevealed = false
		}
	}
	return nil
}

// advance moves the active cursor to the next live hand at or after the
// given position, returning false when none remains.
func (g *Game) advance(fromPlayer, fromHand int) bool {
	for pi := fromPlayer; pi < len(g.players); pi++ {
		hands := g.players[pi].Hands
		hi := 0
		if pi == fromPlayer {
			hi = fromHand
		}
		for ; hi < len(hands); hi++ {
			if !hands[hi].Done() && !g.settled(hands[hi]) {
				g.activePlayer, g.activeHand = pi, hi
				return true
			}
		}
	}
	return false
}

func (g *Game) settled(h *Hand) bool {
	_, _, settled := h.Outcome()
	return settled
}

// NextDealerStep advances the dealer exactly one step: first the hole-card
// reveal, then one draw per call while the total is below 17, then the final
// stand, which settles the round. One step per call lets the presentation
// layer pace the reveals. The dealer plays out fully even when every player
// hand has already busted.
func (g *Game) NextDealerStep() {
	g.mustPhase("NextDealerStep", DealerTurn)

	if !g.dealerRevealed {
		g.dealerRevealed = true
		g.logger.Debug("dealer reveals", "hand", g.dealer.String())
		return
	}

	if g.dealer.Total() < dealerStandsAt {
		g.dealer.AddCard(g.shoe.Draw())
		g.logger.Debug("dealer draws", "hand", g.dealer.String())
		if g.dealer.IsBust() {
			g.finishRound()
		}
		return
	}

	g.logger.Debug("dealer stands", "hand", g.dealer.String())
	g.finishRound()
}

// finishRound settles every unsettled hand against the dealer, credits
// payouts, and enters RoundComplete.
func (g *Game) finishRound() {
	g.dealerRevealed = true
	for _, p := range g.players {
		for _, hand := range p.Hands {
			if g.settled(hand) {
				continue
			}
			outcome, payout := Settle(hand, g.dealer)
			hand.settle(outcome, payout)
			p.Bankroll += payout
			g.logger.Debug("settled", "player", p.Name, "hand", hand.String(),
				"outcome", outcome, "payout", payout, "bankroll", p.Bankroll)
		}
	}
	g.phase = RoundComplete
}

// NextRound clears the round's hands and bets, keeps bankrolls, resets the
// shoe only when it is running low, and returns to WaitingForBet.
func (g *Game) NextRound() {
	g.mustPhase("NextRound", RoundComplete)

	for _, p := range g.players {
		p.clearHands()
	}
	g.dealer = nil
	g.betsPlaced = 0
	g.dealerRevealed = false

	// Two hand slots per player covers a split at every seat. Stacked test
	// shoes are left alone; they carry exactly the cards the test dealt.
	reserve := (len(g.players)*2 + 1) * cardsPerSeat
	if g.shoe.Remaining() < reserve && g.shoe.Resettable() {
		g.shoe.Reset()
		g.logger.Debug("shoe reset", "remaining", g.shoe.Remaining())
	}

	g.phase = WaitingForBet
}

func (g *Game) mustPhase(op string, want Phase) {
	if g.phase != want {
		panic(fmt.Sprintf("game: %s called in phase %s, want %s", op, g.phase, want))
	}
}
