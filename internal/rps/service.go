package rps

import (
	"context"
	"fmt"
	"strings"

	"github.com/osmundr/GielinorBot_Go/internal/domain"
	"github.com/osmundr/GielinorBot_Go/internal/logger"
	"github.com/osmundr/GielinorBot_Go/internal/metrics"
	"github.com/osmundr/GielinorBot_Go/internal/utils"
)

// Service plays rock-paper-scissors against the bot.
type Service interface {
	Play(ctx context.Context, playerMove string) (*domain.RPSResult, error)
}

type service struct{}

// NewService creates a new RPS service
func NewService() Service {
	return &service{}
}

var moves = []domain.RPSMove{domain.RPSRock, domain.RPSPaper, domain.RPSScissors}

// beats maps each move to the move it defeats.
var beats = map[domain.RPSMove]domain.RPSMove{
	domain.RPSRock:     domain.RPSScissors,
	domain.RPSPaper:    domain.RPSRock,
	domain.RPSScissors: domain.RPSPaper,
}

// Play resolves one round. The player move is case-insensitive and accepts
// single-letter shorthand.
func (s *service) Play(ctx context.Context, playerMove string) (*domain.RPSResult, error) {
	log := logger.FromContext(ctx)

	move, err := parseMove(playerMove)
	if err != nil {
		return nil, err
	}

	botMove := moves[utils.RandomInt(0, len(moves)-1)]

	outcome := domain.RPSDraw
	switch {
	case beats[move] == botMove:
		outcome = domain.RPSWin
	case beats[botMove] == move:
		outcome = domain.RPSLoss
	}

	metrics.RecordRPSGame(string(outcome))
	log.Info("RPS round played", "player", move, "bot", botMove, "outcome", outcome)

	return &domain.RPSResult{
		PlayerMove: move,
		BotMove:    botMove,
		Outcome:    outcome,
	}, nil
}

func parseMove(raw string) (domain.RPSMove, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "rock", "r":
		return domain.RPSRock, nil
	case "paper", "p":
		return domain.RPSPaper, nil
	case "scissors", "s":
		return domain.RPSScissors, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidMove, raw)
}
