package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/minhdao/rebalancer/internal/services"
)

type AssetHandler struct {
	service services.AssetService
}

func NewAssetHandler(service services.AssetService) *AssetHandler {
	return &AssetHandler{service: service}
}

type addAssetRequest struct {
	Slot             int    `json:"slot"`
	AssetName        string `json:"asset_name"`
	CurrentAmount    uint64 `json:"current_amount"`
	TargetAllocation uint32 `json:"target_allocation"`
}

type updateTargetRequest struct {
	AssetName        string `json:"asset_name,omitempty"`
	TargetAllocation uint32 `json:"target_allocation"`
}

func slotFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	slot, err := strconv.Atoi(mux.Vars(r)["slot"])
	if err != nil || slot <= 0 {
		http.Error(w, "invalid slot", http.StatusBadRequest)
		return 0, false
	}
	return slot, true
}

// HandleAddAsset handles POST /api/assets
// @Summary Add an asset holding
// @Description Add an asset to the caller's portfolio at a free slot
// @Tags assets
// @Accept json
// @Produce json
// @Param X-Owner header string true "Owner identity"
// @Param body body addAssetRequest true "Asset holding"
// @Success 201 {object} models.Holding
// @Failure 400 {string} string "Bad request"
// @Failure 404 {string} string "Portfolio not found"
// @Failure 409 {string} string "Asset already exists for slot"
// @Router /assets [post]
func (h *AssetHandler) HandleAddAsset(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	var req addAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	holding, err := h.service.AddAsset(r.Context(), owner, req.Slot, req.AssetName, req.CurrentAmount, req.TargetAllocation)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, holding)
}

// HandleGetAsset handles GET /api/assets/{slot}
// @Summary Get an asset holding
// @Tags assets
// @Produce json
// @Param X-Owner header string true "Owner identity"
// @Param slot path int true "Asset slot"
// @Success 200 {object} models.Holding
// @Failure 404 {string} string "Holding not found"
// @Router /assets/{slot} [get]
func (h *AssetHandler) HandleGetAsset(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}
	slot, ok := slotFromRequest(w, r)
	if !ok {
		return
	}

	holding, err := h.service.GetAsset(r.Context(), owner, slot)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, holding)
}

// HandleUpdateTarget handles PUT /api/assets/{slot}/target
// @Summary Reconfigure a holding's target allocation
// @Tags assets
// @Accept json
// @Produce json
// @Param X-Owner header string true "Owner identity"
// @Param slot path int true "Asset slot"
// @Param body body updateTargetRequest true "New target allocation"
// @Success 200 {object} models.Holding
// @Failure 400 {string} string "Bad request"
// @Failure 404 {string} string "Holding not found"
// @Router /assets/{slot}/target [put]
func (h *AssetHandler) HandleUpdateTarget(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}
	slot, ok := slotFromRequest(w, r)
	if !ok {
		return
	}

	var req updateTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	holding, err := h.service.UpdateTarget(r.Context(), owner, slot, req.AssetName, req.TargetAllocation)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, holding)
}
