package handlers

import (
	"net/http"

	"github.com/minhdao/rebalancer/internal/services"
)

type RebalanceHandler struct {
	drift     services.DriftService
	rebalance services.RebalanceService
}

func NewRebalanceHandler(drift services.DriftService, rebalance services.RebalanceService) *RebalanceHandler {
	return &RebalanceHandler{drift: drift, rebalance: rebalance}
}

type needsRebalanceResponse struct {
	NeedsRebalance bool `json:"needs_rebalance"`
}

// HandleCheck handles GET /api/rebalance/check
// @Summary Check whether the portfolio needs rebalancing
// @Tags rebalance
// @Produce json
// @Param X-Owner header string true "Owner identity"
// @Success 200 {object} needsRebalanceResponse
// @Failure 404 {string} string "Portfolio not found"
// @Router /rebalance/check [get]
func (h *RebalanceHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	needed, err := h.drift.NeedsRebalance(r.Context(), owner)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, needsRebalanceResponse{NeedsRebalance: needed})
}

// HandleExecute handles POST /api/rebalance/execute
// @Summary Execute a rebalance
// @Description Recompute every priced holding's amount to match its target allocation
// @Tags rebalance
// @Produce json
// @Param X-Owner header string true "Owner identity"
// @Success 200 {object} models.RebalanceResult
// @Failure 403 {string} string "Auto-rebalance disabled"
// @Failure 404 {string} string "Portfolio not found"
// @Failure 409 {string} string "Rebalance not needed"
// @Router /rebalance/execute [post]
func (h *RebalanceHandler) HandleExecute(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	result, err := h.rebalance.ExecuteRebalance(r.Context(), owner)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
