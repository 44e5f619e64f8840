package rps

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osmundr/GielinorBot_Go/internal/domain"
)

func TestPlayAcceptsMoveSpellings(t *testing.T) {
	svc := NewService()

	tests := []struct {
		input    string
		expected domain.RPSMove
	}{
		{"rock", domain.RPSRock},
		{"ROCK", domain.RPSRock},
		{"r", domain.RPSRock},
		{" paper ", domain.RPSPaper},
		{"P", domain.RPSPaper},
		{"scissors", domain.RPSScissors},
		{"s", domain.RPSScissors},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := svc.Play(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.PlayerMove)
		})
	}
}

func TestPlayRejectsUnknownMove(t *testing.T) {
	svc := NewService()

	for _, input := range []string{"", "lizard", "spock", "rocks"} {
		_, err := svc.Play(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrInvalidMove, "input %q", input)
	}
}

func TestPlayOutcomeConsistency(t *testing.T) {
	svc := NewService()

	outcomes := map[domain.RPSOutcome]int{}
	for i := 0; i < 300; i++ {
		result, err := svc.Play(context.Background(), "rock")
		require.NoError(t, err)

		// Outcome must agree with the two moves
		switch result.BotMove {
		case domain.RPSScissors:
			assert.Equal(t, domain.RPSWin, result.Outcome)
		case domain.RPSPaper:
			assert.Equal(t, domain.RPSLoss, result.Outcome)
		case domain.RPSRock:
			assert.Equal(t, domain.RPSDraw, result.Outcome)
		}
		outcomes[result.Outcome]++
	}

	// With 300 rounds every outcome should show up
	assert.Len(t, outcomes, 3)
}
