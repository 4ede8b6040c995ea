package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/lox/blackjack/internal/simulator"
	"github.com/lox/blackjack/internal/statistics"
)

type SimulateCmd struct {
	Rounds   int    `default:"100000" help:"Number of rounds to simulate"`
	Workers  int    `help:"Parallel workers (default: GOMAXPROCS)"`
	Seed     int64  `help:"RNG seed (0 seeds from the clock)"`
	Bet      int    `default:"10" help:"Base bet per round"`
	Decks    int    `default:"6" help:"Decks in the shoe"`
	Strategy string `default:"basic" enum:"basic,mimic" help:"Playing strategy"`
	Debug    bool   `help:"Verbose logging"`
}

func (cmd *SimulateCmd) Run() error {
	strategy, ok := simulator.StrategyByName(cmd.Strategy)
	if !ok {
		return fmt.Errorf("unknown strategy %q", cmd.Strategy)
	}

	logger, closeLog, err := setupLogger("warn", cmd.Debug, false, "")
	if err != nil {
		return err
	}
	defer closeLog()

	seed := cmd.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Simulating %d rounds of %s strategy (seed %d)\n", cmd.Rounds, cmd.Strategy, seed)

	sim := simulator.New(simulator.Config{
		Rounds:   cmd.Rounds,
		Workers:  cmd.Workers,
		Seed:     seed,
		Bet:      cmd.Bet,
		Decks:    cmd.Decks,
		Strategy: strategy,
		Logger:   logger,
	})

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	printResults(stats, cmd.Strategy, time.Since(start))
	return nil
}

func printResults(stats *statistics.Statistics, strategy string, duration time.Duration) {
	mean := stats.Mean()
	low, high := stats.ConfidenceInterval95()
	roundsPerSec := float64(stats.Rounds) / duration.Seconds()

	fmt.Printf("\n=== RESULTS (%s strategy) ===\n", strategy)
	fmt.Printf("Rounds: %d in %v (%.0f rounds/sec)\n", stats.Rounds, duration.Round(time.Millisecond), roundsPerSec)
	fmt.Printf("Mean: %+.4f units/round\n", mean)
	fmt.Printf("House edge: %.2f%%\n", stats.EdgePercent())
	fmt.Printf("Std Dev: %.4f units, Std Error: %.4f units\n", stats.StdDev(), stats.StdError())
	fmt.Printf("95%% CI: [%+.4f, %+.4f] units/round\n", low, high)
	fmt.Printf("Median: %+.2f, P5=%+.2f, P95=%+.2f\n",
		stats.Median(), stats.Percentile(0.05), stats.Percentile(0.95))

	fmt.Printf("\n=== HAND BREAKDOWN ===\n")
	fmt.Printf("Hands: %d (wins %d, losses %d, pushes %d)\n",
		stats.Hands, stats.Wins, stats.Losses, stats.Pushes)
	fmt.Printf("Naturals: %d (%.2f%% of hands)\n",
		stats.Naturals, pct(stats.Naturals, stats.Hands))
	fmt.Printf("Doubles: %d, Splits: %d\n", stats.Doubles, stats.Splits)
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
