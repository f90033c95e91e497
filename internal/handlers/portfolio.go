package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/minhdao/rebalancer/internal/services"
)

type PortfolioHandler struct {
	service services.PortfolioService
}

func NewPortfolioHandler(service services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{service: service}
}

type createPortfolioRequest struct {
	RebalanceThreshold uint32 `json:"rebalance_threshold"`
}

type updateThresholdRequest struct {
	RebalanceThreshold uint32 `json:"rebalance_threshold"`
}

type autoRebalanceRequest struct {
	Enabled bool `json:"enabled"`
}

// HandleCreatePortfolio handles POST /api/portfolios
// @Summary Create portfolio
// @Description Create the caller's portfolio with a drift threshold in basis points
// @Tags portfolios
// @Accept json
// @Produce json
// @Param X-Owner header string true "Owner identity"
// @Param body body createPortfolioRequest true "Portfolio configuration"
// @Success 201 {object} models.Portfolio
// @Failure 400 {string} string "Bad request"
// @Failure 409 {string} string "Portfolio already exists"
// @Router /portfolios [post]
func (h *PortfolioHandler) HandleCreatePortfolio(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	var req createPortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	portfolio, err := h.service.CreatePortfolio(r.Context(), owner, req.RebalanceThreshold)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, portfolio)
}

// HandleGetPortfolio handles GET /api/portfolios/me
// @Summary Get portfolio
// @Description Get the caller's portfolio configuration and bookkeeping
// @Tags portfolios
// @Produce json
// @Param X-Owner header string true "Owner identity"
// @Success 200 {object} models.Portfolio
// @Failure 404 {string} string "Portfolio not found"
// @Router /portfolios/me [get]
func (h *PortfolioHandler) HandleGetPortfolio(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	portfolio, err := h.service.GetPortfolio(r.Context(), owner)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, portfolio)
}

// HandleUpdateThreshold handles PUT /api/portfolios/me/threshold
// @Summary Update rebalance threshold
// @Tags portfolios
// @Accept json
// @Param X-Owner header string true "Owner identity"
// @Param body body updateThresholdRequest true "New threshold in basis points"
// @Success 204
// @Failure 400 {string} string "Bad request"
// @Failure 404 {string} string "Portfolio not found"
// @Router /portfolios/me/threshold [put]
func (h *PortfolioHandler) HandleUpdateThreshold(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	var req updateThresholdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateThreshold(r.Context(), owner, req.RebalanceThreshold); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAutoRebalance handles PUT /api/portfolios/me/auto-rebalance
// @Summary Enable or disable auto-rebalancing
// @Tags portfolios
// @Accept json
// @Param X-Owner header string true "Owner identity"
// @Param body body autoRebalanceRequest true "Auto-rebalance flag"
// @Success 204
// @Failure 404 {string} string "Portfolio not found"
// @Router /portfolios/me/auto-rebalance [put]
func (h *PortfolioHandler) HandleAutoRebalance(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	var req autoRebalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.SetAutoRebalance(r.Context(), owner, req.Enabled); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
