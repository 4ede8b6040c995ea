package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/game"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected game.Action
		wantErr  bool
	}{
		{"h", game.Hit, false},
		{"hit", game.Hit, false},
		{"HIT", game.Hit, false},
		{"  h  ", game.Hit, false},
		{"s", game.Stand, false},
		{"stand", game.Stand, false},
		{"d", game.Double, false},
		{"double", game.Double, false},
		{"p", game.Split, false},
		{"split", game.Split, false},
		{"SPLIT", game.Split, false},
		{"x", 0, true},
		{"hitt", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			action, err := ParseAction(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, action)
		})
	}
}

func TestParseBet(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		wantErr  bool
	}{
		{"10", 10, false},
		{" 25 ", 25, false},
		{"1", 1, false},
		{"0", 0, true},
		{"-5", 0, true},
		{"ten", 0, true},
		{"1.5", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			amount, err := ParseBet(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, amount)
		})
	}
}
