// Seeds a demo portfolio for local development: 10 BTC, 100 ETH and 1000 USDC
// at targets 50/30/20% with prices that leave the portfolio well past its
// drift threshold. Run against the database configured in the environment:
//
//	go run scripts/seed_demo.go -owner demo
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/minhdao/rebalancer/internal/db"
	"github.com/minhdao/rebalancer/internal/models"
	"github.com/minhdao/rebalancer/internal/store/postgres"
)

func main() {
	owner := flag.String("owner", "demo", "owner identity to seed")
	flag.Parse()

	database, err := db.Connect(db.NewConfig())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	st := postgres.New(database)
	if err := st.Migrate(); err != nil {
		log.Fatal("Failed to migrate:", err)
	}

	ctx := context.Background()

	if err := st.SavePortfolio(ctx, &models.Portfolio{
		Owner:                *owner,
		RebalanceThreshold:   500,
		AutoRebalanceEnabled: true,
	}); err != nil {
		log.Fatal("Failed to seed portfolio:", err)
	}

	holdings := []models.Holding{
		{Owner: *owner, Slot: 1, AssetName: "BTC", CurrentAmount: 10, TargetAllocation: 5000},
		{Owner: *owner, Slot: 2, AssetName: "ETH", CurrentAmount: 100, TargetAllocation: 3000},
		{Owner: *owner, Slot: 3, AssetName: "USDC", CurrentAmount: 1000, TargetAllocation: 2000},
	}
	for i := range holdings {
		if err := st.SaveHolding(ctx, &holdings[i]); err != nil {
			log.Fatal("Failed to seed holding:", err)
		}
	}

	now := time.Now().UTC()
	prices := []models.AssetPrice{
		{Slot: 1, Price: 50000, LastUpdated: now},
		{Slot: 2, Price: 3000, LastUpdated: now},
		{Slot: 3, Price: 1, LastUpdated: now},
	}
	for i := range prices {
		if err := st.SavePrice(ctx, &prices[i]); err != nil {
			log.Fatal("Failed to seed price:", err)
		}
	}

	log.Printf("Seeded portfolio for owner %q (value 801000, drift well above threshold)", *owner)
}
