package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/minhdao/rebalancer/internal/services"
)

type PriceHandler struct {
	service services.PriceService
}

func NewPriceHandler(service services.PriceService) *PriceHandler {
	return &PriceHandler{service: service}
}

type updatePriceRequest struct {
	Price uint64 `json:"price"`
}

// HandleUpdatePrice handles PUT /api/prices/{slot}
// @Summary Update an asset price
// @Description Write the latest unit price for a slot. Oracle only.
// @Tags prices
// @Accept json
// @Produce json
// @Param X-Admin-Token header string true "Oracle credential"
// @Param slot path int true "Asset slot"
// @Param body body updatePriceRequest true "New unit price"
// @Success 200 {object} models.AssetPrice
// @Failure 400 {string} string "Bad request"
// @Failure 403 {string} string "Not authorized"
// @Router /prices/{slot} [put]
func (h *PriceHandler) HandleUpdatePrice(w http.ResponseWriter, r *http.Request) {
	slot, ok := slotFromRequest(w, r)
	if !ok {
		return
	}

	var req updatePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	price, err := h.service.UpdatePrice(r.Context(), r.Header.Get(HeaderAdminToken), slot, req.Price)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, price)
}

// HandleGetPrice handles GET /api/prices/{slot}
// @Summary Get an asset price
// @Tags prices
// @Produce json
// @Param slot path int true "Asset slot"
// @Success 200 {object} models.AssetPrice
// @Failure 404 {string} string "Price not found"
// @Router /prices/{slot} [get]
func (h *PriceHandler) HandleGetPrice(w http.ResponseWriter, r *http.Request) {
	slot, ok := slotFromRequest(w, r)
	if !ok {
		return
	}

	price, err := h.service.GetPrice(r.Context(), slot)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, price)
}
