package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	_ "github.com/minhdao/rebalancer/docs"
	"github.com/minhdao/rebalancer/internal/auth"
	"github.com/minhdao/rebalancer/internal/config"
	"github.com/minhdao/rebalancer/internal/db"
	"github.com/minhdao/rebalancer/internal/handlers"
	"github.com/minhdao/rebalancer/internal/logger"
	"github.com/minhdao/rebalancer/internal/services"
	"github.com/minhdao/rebalancer/internal/store"
	"github.com/minhdao/rebalancer/internal/store/memory"
	"github.com/minhdao/rebalancer/internal/store/postgres"
)

// @title Rebalancer API
// @version 1.0
// @description Portfolio valuation, drift detection and rebalancing service.
// @BasePath /api
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := config.New()

	var st store.Store
	switch cfg.StoreBackend {
	case "memory":
		st = memory.New()
		log.Info("using in-memory store")
	default:
		dbConfig := db.NewConfig()
		database, err := db.Connect(dbConfig)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		defer database.Close()

		if err := database.Health(); err != nil {
			log.Fatal("database health check failed", zap.Error(err))
		}
		log.Info("database connection established", zap.String("driver", dbConfig.Driver))

		dbStore := postgres.New(database)
		if err := dbStore.Migrate(); err != nil {
			log.Fatal("failed to migrate database", zap.Error(err))
		}
		st = dbStore
	}

	// Initialize services
	locks := services.NewOwnerLocks()
	valuation := services.NewValuationService(st)
	drift := services.NewDriftService(st, valuation)

	router := handlers.NewRouter(handlers.RouterConfig{
		Portfolios: services.NewPortfolioService(st, locks),
		Assets:     services.NewAssetService(st, locks, cfg.MaxSlots),
		Prices:     services.NewPriceService(st, auth.NewStaticAuthorizer(cfg.AdminToken)),
		Valuation:  valuation,
		Drift:      drift,
		Rebalance:  services.NewRebalanceService(st, valuation, drift, locks),
	})

	// CORS middleware
	corsHandler := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Owner, X-Admin-Token")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}

	handler := corsHandler(handlers.RequestLogger(log)(router))

	log.Info("server starting", zap.String("port", cfg.ServerPort), zap.Int("max_slots", cfg.MaxSlots))
	if err := http.ListenAndServe(":"+cfg.ServerPort, handler); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
