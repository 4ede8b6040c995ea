package simulator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

func TestSimulatorAccounting(t *testing.T) {
	sim := New(Config{Rounds: 500, Workers: 4, Seed: 42, Bet: 10, Decks: 6})

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 500, stats.Rounds)
	assert.GreaterOrEqual(t, stats.Hands, stats.Rounds, "splits only add hands")
	assert.Equal(t, stats.Hands, stats.Wins+stats.Losses+stats.Pushes)
	assert.NoError(t, stats.Validate())
}

func TestSimulatorDeterministic(t *testing.T) {
	cfg := Config{Rounds: 300, Workers: 3, Seed: 7, Bet: 10, Decks: 2}

	a, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	b, err := New(cfg).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a.Sum, b.Sum)
	assert.Equal(t, a.Wins, b.Wins)
	assert.Equal(t, a.Losses, b.Losses)
	assert.Equal(t, a.Pushes, b.Pushes)
	assert.Equal(t, a.Splits, b.Splits)
}

func TestSimulatorMimicLosesToHouse(t *testing.T) {
	sim := New(Config{Rounds: 10000, Workers: 4, Seed: 99, Strategy: Mimic})

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)

	// Mimicking the dealer concedes several percent to the house; even with
	// sampling noise the mean return stays clearly negative at this volume.
	assert.Negative(t, stats.Mean())
	assert.Positive(t, stats.EdgePercent())
}

func TestSimulatorCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := New(Config{Rounds: 1000, Workers: 2, Seed: 1})
	_, err := sim.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBasicStrategy(t *testing.T) {
	up := func(s string) deck.Card { return deck.MustParseCards(s)[0] }

	tests := []struct {
		name   string
		hand   game.HandSnapshot
		upcard deck.Card
		want   game.Action
	}{
		{
			name:   "splits eights",
			hand:   game.HandSnapshot{Cards: deck.MustParseCards("8c8d"), Total: 16, CanSplit: true, CanDouble: true},
			upcard: up("Th"),
			want:   game.Split,
		},
		{
			name:   "splits aces",
			hand:   game.HandSnapshot{Cards: deck.MustParseCards("AcAd"), Total: 12, Soft: true, CanSplit: true, CanDouble: true},
			upcard: up("6h"),
			want:   game.Split,
		},
		{
			name:   "keeps tens together",
			hand:   game.HandSnapshot{Cards: deck.MustParseCards("TcTd"), Total: 20, CanSplit: true, CanDouble: true},
			upcard: up("6h"),
			want:   game.Stand,
		},
		{
			name:   "doubles eleven",
			hand:   game.HandSnapshot{Cards: deck.MustParseCards("6c5d"), Total: 11, CanDouble: true},
			upcard: up("9h"),
			want:   game.Double,
		},
		{
			name:   "hits eleven against an ace",
			hand:   game.HandSnapshot{Cards: deck.MustParseCards("6c5d"), Total: 11, CanDouble: true},
			upcard: up("Ah"),
			want:   game.Hit,
		},
		{
			name:   "doubles ten against a nine",
			hand:   game.HandSnapshot{Cards: deck.MustParseCards("6c4d"), Total: 10, CanDouble: true},
			upcard: up("9h"),
			want:   game.Double,
		},
		{
			name:   "hits ten against a ten",
			hand:   game.HandSnapshot{Cards: deck.MustParseCards("6c4d"), Total: 10, CanDouble: true},
			upcard: up("Th"),
			want:   game.Hit,
		},
		{
			name:   "stands stiff against a bust card",
			hand:   game.HandSnapshot{Cards: deck.MustParseCards("9c4d"), Total: 13},
			upcard: up("6h"),
			want:   game.Stand,
		},
		{
			name:   "hits stiff against a strong card",
			hand:   game.HandSnapshot{Cards: deck.MustParseCards("9c7d"), Total: 16},
			upcard: up("Th"),
			want:   game.Hit,
		},
		{
			name:   "stands twelve against a five",
			hand:   game.HandSnapshot{Cards: deck.MustParseCards("8c4d"), Total: 12},
			upcard: up("5h"),
			want:   game.Stand,
		},
		{
			name:   "hits twelve against a two",
			hand:   game.HandSnapshot{Cards: deck.MustParseCards("8c4d"), Total: 12},
			upcard: up("2h"),
			want:   game.Hit,
		},
		{
			name:   "hits soft seventeen",
			hand:   game.HandSnapshot{Cards: deck.MustParseCards("Ac6d"), Total: 17, Soft: true, CanDouble: true},
			upcard: up("Th"),
			want:   game.Hit,
		},
		{
			name:   "stands soft eighteen",
			hand:   game.HandSnapshot{Cards: deck.MustParseCards("Ac7d"), Total: 18, Soft: true, CanDouble: true},
			upcard: up("6h"),
			want:   game.Stand,
		},
		{
			name:   "stands hard seventeen",
			hand:   game.HandSnapshot{Cards: deck.MustParseCards("Tc7d"), Total: 17},
			upcard: up("Ah"),
			want:   game.Stand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Basic(tt.hand, tt.upcard))
		})
	}
}

func TestMimicStrategy(t *testing.T) {
	up := deck.MustParseCards("2h")[0]

	hit := game.HandSnapshot{Cards: deck.MustParseCards("9c7d"), Total: 16, CanDouble: true}
	assert.Equal(t, game.Hit, Mimic(hit, up))

	stand := game.HandSnapshot{Cards: deck.MustParseCards("Tc7d"), Total: 17}
	assert.Equal(t, game.Stand, Mimic(stand, up))
}

func TestStrategyByName(t *testing.T) {
	_, ok := StrategyByName("basic")
	assert.True(t, ok)
	_, ok = StrategyByName("mimic")
	assert.True(t, ok)
	_, ok = StrategyByName("martingale")
	assert.False(t, ok)
}
