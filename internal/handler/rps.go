package handler

import (
	"net/http"

	"github.com/osmundr/GielinorBot_Go/internal/logger"
	"github.com/osmundr/GielinorBot_Go/internal/rps"
)

// RPSHandler exposes the rock-paper-scissors game
type RPSHandler struct {
	service rps.Service
}

// NewRPSHandler creates a new RPS handler
func NewRPSHandler(service rps.Service) *RPSHandler {
	return &RPSHandler{service: service}
}

// RPSRequest represents a rock-paper-scissors play request
type RPSRequest struct {
	Move string `json:"move" validate:"required,rpsmove"`
}

// HandlePlay plays a round of rock-paper-scissors against the bot
// @Summary Play rock-paper-scissors
// @Description Plays one round against a random bot move
// @Tags games
// @Accept json
// @Produce json
// @Success 200 {object} domain.RPSResult
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/rps [post]
func (h *RPSHandler) HandlePlay(w http.ResponseWriter, r *http.Request) {
	var req RPSRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Play RPS"); err != nil {
		return
	}

	result, err := h.service.Play(r.Context(), req.Move)
	if err != nil {
		respondServiceError(w, r, ErrMsgPlayRPSFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("RPS round played",
		"player_move", result.PlayerMove,
		"bot_move", result.BotMove,
		"outcome", result.Outcome)

	respondJSON(w, http.StatusOK, result)
}
