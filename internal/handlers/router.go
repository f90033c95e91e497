package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/minhdao/rebalancer/internal/services"
)

// RouterConfig bundles the services behind the HTTP surface.
type RouterConfig struct {
	Portfolios services.PortfolioService
	Assets     services.AssetService
	Prices     services.PriceService
	Valuation  services.ValuationService
	Drift      services.DriftService
	Rebalance  services.RebalanceService
}

// NewRouter builds the API router. Middleware (logging, CORS) is applied by
// the caller.
func NewRouter(cfg RouterConfig) *mux.Router {
	portfolioHandler := NewPortfolioHandler(cfg.Portfolios)
	assetHandler := NewAssetHandler(cfg.Assets)
	priceHandler := NewPriceHandler(cfg.Prices)
	rebalanceHandler := NewRebalanceHandler(cfg.Drift, cfg.Rebalance)
	reportingHandler := NewReportingHandler(cfg.Valuation)

	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "healthy",
			"service": "rebalancer",
		})
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/portfolios", portfolioHandler.HandleCreatePortfolio).Methods(http.MethodPost)
	api.HandleFunc("/portfolios/me", portfolioHandler.HandleGetPortfolio).Methods(http.MethodGet)
	api.HandleFunc("/portfolios/me/threshold", portfolioHandler.HandleUpdateThreshold).Methods(http.MethodPut)
	api.HandleFunc("/portfolios/me/auto-rebalance", portfolioHandler.HandleAutoRebalance).Methods(http.MethodPut)

	api.HandleFunc("/assets", assetHandler.HandleAddAsset).Methods(http.MethodPost)
	api.HandleFunc("/assets/{slot}", assetHandler.HandleGetAsset).Methods(http.MethodGet)
	api.HandleFunc("/assets/{slot}/target", assetHandler.HandleUpdateTarget).Methods(http.MethodPut)

	api.HandleFunc("/prices/{slot}", priceHandler.HandleUpdatePrice).Methods(http.MethodPut)
	api.HandleFunc("/prices/{slot}", priceHandler.HandleGetPrice).Methods(http.MethodGet)

	api.HandleFunc("/rebalance/check", rebalanceHandler.HandleCheck).Methods(http.MethodGet)
	api.HandleFunc("/rebalance/execute", rebalanceHandler.HandleExecute).Methods(http.MethodPost)

	api.HandleFunc("/allocations", reportingHandler.HandleAllocations).Methods(http.MethodGet)

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	return router
}
