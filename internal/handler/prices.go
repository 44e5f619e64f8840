package handler

import (
	"net/http"

	"github.com/osmundr/GielinorBot_Go/internal/logger"
	"github.com/osmundr/GielinorBot_Go/internal/prices"
)

// PricesHandler exposes Grand Exchange price lookups
type PricesHandler struct {
	service prices.Service
}

// NewPricesHandler creates a new prices handler
func NewPricesHandler(service prices.Service) *PricesHandler {
	return &PricesHandler{service: service}
}

// HandleGetPrice returns the latest price quote for an item
// @Summary Get item price
// @Description Get the latest Grand Exchange price for an item
// @Tags economy
// @Produce json
// @Success 200 {object} domain.ItemPrice
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/prices [get]
func (h *PricesHandler) HandleGetPrice(w http.ResponseWriter, r *http.Request) {
	itemName, ok := GetQueryParam(r, w, "item")
	if !ok {
		return
	}

	price, err := h.service.GetPrice(r.Context(), itemName)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetPriceFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Price retrieved",
		"item", price.ItemName,
		"high", price.High,
		"low", price.Low)

	respondJSON(w, http.StatusOK, price)
}
