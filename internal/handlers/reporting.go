package handlers

import (
	"net/http"

	"github.com/minhdao/rebalancer/internal/services"
)

type ReportingHandler struct {
	valuation services.ValuationService
}

func NewReportingHandler(valuation services.ValuationService) *ReportingHandler {
	return &ReportingHandler{valuation: valuation}
}

// HandleAllocations handles GET /api/allocations
// @Summary Get current allocations
// @Description List the caller's allocation records ordered by slot; unpriced or unheld slots are omitted
// @Tags reporting
// @Produce json
// @Param X-Owner header string true "Owner identity"
// @Success 200 {array} models.AllocationRecord
// @Failure 500 {string} string "Internal server error"
// @Router /allocations [get]
func (h *ReportingHandler) HandleAllocations(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	records, err := h.valuation.CurrentAllocations(r.Context(), owner)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}
