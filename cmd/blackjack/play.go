package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/console"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/tui"
)

type PlayCmd struct {
	Name     string `short:"n" help:"Player name"`
	Decks    int    `short:"d" name:"deck-count" help:"Number of decks in the shoe"`
	Players  int    `short:"p" name:"player-count" help:"Number of seats at the table"`
	Bankroll int    `help:"Starting bankroll per player"`
	Seed     int64  `help:"Shuffle seed (0 seeds from the clock)"`
	Config   string `short:"c" default:"blackjack.hcl" help:"Path to an HCL config file"`
	TUI      bool   `help:"Full-screen interface instead of line-based prompts"`
	Clear    bool   `help:"Clear the screen between deals (line-based mode)"`
	Debug    bool   `help:"Verbose logging"`
}

func (cmd *PlayCmd) Run() error {
	cfg, err := config.Load(cmd.Config)
	if err != nil {
		return err
	}

	// Flags override whatever the file says.
	if cmd.Name != "" {
		cfg.Player.Name = cmd.Name
	}
	if cmd.Decks > 0 {
		cfg.Table.Decks = cmd.Decks
	}
	if cmd.Players > 0 {
		cfg.Table.Seats = cmd.Players
	}
	if cmd.Bankroll > 0 {
		cfg.Player.Bankroll = cmd.Bankroll
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closeLog, err := setupLogger(cfg.UI.LogLevel, cmd.Debug, cmd.TUI, cfg.UI.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := cmd.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("starting session", "seed", seed, "decks", cfg.Table.Decks, "seats", cfg.Table.Seats)

	g, err := game.New(game.Settings{
		PlayerName:  cfg.Player.Name,
		DeckCount:   cfg.Table.Decks,
		PlayerCount: cfg.Table.Seats,
		Bankroll:    cfg.Player.Bankroll,
	}, game.WithRNG(randutil.New(seed)), game.WithLogger(logger))
	if err != nil {
		return err
	}

	delay := time.Duration(cfg.UI.DealerDelayMs) * time.Millisecond
	if cmd.TUI {
		return tui.Run(g, logger, delay)
	}

	c := console.New(g, console.Options{
		In:          os.Stdin,
		Out:         os.Stdout,
		DealerDelay: delay,
		ClearScreen: cmd.Clear,
		Logger:      logger,
	})
	return c.Run()
}
