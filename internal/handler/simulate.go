package handler

import (
	"net/http"

	"github.com/osmundr/GielinorBot_Go/internal/droptable"
	"github.com/osmundr/GielinorBot_Go/internal/logger"
)

// SimulateHandler exposes drop table lookups and loot simulations
type SimulateHandler struct {
	service droptable.Service
}

// NewSimulateHandler creates a new simulation handler
func NewSimulateHandler(service droptable.Service) *SimulateHandler {
	return &SimulateHandler{service: service}
}

// SimulateRequest represents a loot simulation request
type SimulateRequest struct {
	Monster   string `json:"monster" validate:"required,max=100"`
	KillCount int    `json:"kill_count" validate:"required,min=1,max=10000"`
}

// HandleSimulate runs a loot simulation for a monster
// @Summary Simulate kills
// @Description Simulates killing a monster N times and returns aggregated loot
// @Tags simulation
// @Accept json
// @Produce json
// @Success 200 {object} domain.SimulationResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/simulate [post]
func (h *SimulateHandler) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Simulate kills"); err != nil {
		return
	}

	log := logger.FromContext(r.Context())
	LogRequestFields(log, "monster", req.Monster, "kill_count", req.KillCount)

	result, err := h.service.SimulateKills(r.Context(), req.Monster, req.KillCount)
	if err != nil {
		respondServiceError(w, r, ErrMsgSimulateFailed, err)
		return
	}

	log.Info("Simulation completed",
		"monster", result.MonsterName,
		"kill_count", result.KillCount,
		"distinct_items", len(result.Loot),
		"unique_drops", len(result.UniqueDrops))

	respondJSON(w, http.StatusOK, result)
}

// HandleGetDropTable fetches a monster's parsed drop table
// @Summary Get drop table
// @Description Returns the parsed drop table for a monster
// @Tags simulation
// @Produce json
// @Success 200 {object} domain.DropTable
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/droptable [get]
func (h *SimulateHandler) HandleGetDropTable(w http.ResponseWriter, r *http.Request) {
	monster, ok := GetQueryParam(r, w, "monster")
	if !ok {
		return
	}

	table, err := h.service.GetDropTable(r.Context(), monster)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetDropTableFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, table)
}
