// Package simulator plays unattended blackjack rounds in parallel and
// aggregates the results, mainly to estimate the house edge of a strategy.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
)

// Rounds of base-bet cover per table. Workers rebuild the table with a fresh
// bankroll when it runs low, so the bankroll never distorts the strategy.
const bankrollCover = 1000

// Config holds configuration for running simulations.
type Config struct {
	Rounds   int
	Workers  int
	Seed     int64
	Bet      int
	Decks    int
	Strategy Strategy
	Logger   *log.Logger
}

// Simulator runs blackjack round simulations.
type Simulator struct {
	config Config
}

// New creates a simulator, filling in defaults for zero-valued fields.
func New(config Config) *Simulator {
	if config.Rounds <= 0 {
		config.Rounds = 10000
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	if config.Bet <= 0 {
		config.Bet = 10
	}
	if config.Decks <= 0 {
		config.Decks = 6
	}
	if config.Strategy == nil {
		config.Strategy = Basic
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

// Run plays the configured number of rounds across parallel workers, each on
// its own independently seeded table, and returns the merged statistics. The
// same seed always produces the same results for a given worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	workers := s.config.Workers
	if workers > s.config.Rounds {
		workers = s.config.Rounds
	}

	perWorker := s.config.Rounds / workers
	remainder := s.config.Rounds % workers

	// Master RNG hands each worker an independent seed.
	master := randutil.New(s.config.Seed)

	eg, ctx := errgroup.WithContext(ctx)
	results := make(chan *statistics.Statistics, workers)

	for w := 0; w < workers; w++ {
		workerRounds := perWorker
		if w < remainder {
			workerRounds++
		}
		workerSeed := master.Int64()

		eg.Go(func() error {
			shard, err := s.runWorker(ctx, workerRounds, workerSeed)
			if err != nil {
				return err
			}
			select {
			case results <- shard:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	close(results)

	stats := &statistics.Statistics{}
	for shard := range results {
		stats.Merge(shard)
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

func (s *Simulator) runWorker(ctx context.Context, rounds int, seed int64) (*statistics.Statistics, error) {
	stats := &statistics.Statistics{}
	rng := randutil.New(seed)

	g, err := s.newGame(rng.Int64())
	if err != nil {
		return nil, err
	}

	for i := 0; i < rounds; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		// A split plus two doubles needs four bets of cover; rebuild the
		// table before the bankroll falls below the worst case.
		if g.Snapshot().Players[0].Bankroll < 4*s.config.Bet {
			if g, err = s.newGame(rng.Int64()); err != nil {
				return nil, err
			}
		}

		result, err := s.playRound(g, seed)
		if err != nil {
			return nil, err
		}
		stats.Add(result)
	}
	return stats, nil
}

func (s *Simulator) newGame(seed int64) (*game.Game, error) {
	return game.New(game.Settings{
		PlayerName:  "sim",
		DeckCount:   s.config.Decks,
		PlayerCount: 1,
		Bankroll:    s.config.Bet * bankrollCover,
	}, game.WithRNG(randutil.New(seed)), game.WithLogger(s.config.Logger))
}

// playRound drives the game through one full round with the configured
// strategy and reports the result in units of the base bet.
func (s *Simulator) playRound(g *game.Game, seed int64) (statistics.RoundResult, error) {
	before := g.Snapshot().Players[0].Bankroll

	if err := g.PlaceBet(s.config.Bet); err != nil {
		return statistics.RoundResult{}, fmt.Errorf("placing bet: %w", err)
	}
	g.Deal()

	for g.Phase() == game.PlayerTurn {
		snap := g.Snapshot()
		hand := snap.Players[0].Hands[snap.ActiveHand]
		upcard := snap.DealerCards[0]

		if err := g.PlayerAction(s.config.Strategy(hand, upcard)); err != nil {
			// The bankroll could not cover a double or split; replay the
			// decision with those options masked off.
			hand.CanDouble, hand.CanSplit = false, false
			if err := g.PlayerAction(s.config.Strategy(hand, upcard)); err != nil {
				return statistics.RoundResult{}, fmt.Errorf("applying action: %w", err)
			}
		}
	}

	for g.Phase() == game.DealerTurn {
		g.NextDealerStep()
	}

	snap := g.Snapshot()
	after := snap.Players[0].Bankroll

	result := statistics.RoundResult{
		NetUnits: float64(after-before) / float64(s.config.Bet),
		Seed:     seed,
	}

	hands := snap.Players[0].Hands
	result.Hands = len(hands)
	result.Splits = len(hands) - 1
	for _, hand := range hands {
		switch hand.Outcome {
		case game.PlayerWin:
			result.Wins++
		case game.DealerWin:
			result.Losses++
		case game.Push:
			result.Pushes++
		}
		if hand.Blackjack {
			result.Naturals++
		}
		if hand.Doubled {
			result.Doubles++
		}
	}

	g.NextRound()
	return result, nil
}
