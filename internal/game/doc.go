// Package game implements the core blackjack round engine.
//
// The main type is Game, a caller-driven state machine that walks one or more
// player hands and the dealer's hand through a round: bets, the initial deal,
// player decisions, the dealer's paced play-out, and settlement. The engine
// never blocks, spawns no goroutines, and renders nothing; presentation layers
// poll Snapshot, show it however they like, and feed commands back in.
//
// # Basic Usage
//
//	g, err := game.New(game.Settings{PlayerName: "Alice", DeckCount: 1, PlayerCount: 1, Bankroll: 500})
//	g.PlaceBet(10)
//	g.Deal()
//	for g.Phase() == game.PlayerTurn {
//	    g.PlayerAction(game.Hit)
//	}
//	for g.Phase() == game.DealerTurn {
//	    g.NextDealerStep()
//	}
//	// Phase() == game.RoundComplete: outcomes are on the hands
//	g.NextRound()
//
// # Deterministic Testing
//
// Inject a seeded RNG or a pre-stacked shoe for complete control of the deal:
//
//	g, err := game.New(settings, game.WithRNG(randutil.New(42)))
//	g, err := game.New(settings, game.WithShoe(deck.NewStackedShoe(cards...)))
//
// # Failure Semantics
//
// Player mistakes (bad bet, illegal action, insufficient funds) return
// sentinel errors and leave the state untouched so callers can re-prompt.
// Calling a command in the wrong phase, or exhausting the shoe mid-hand,
// is a caller bug and panics.
package game
