package services

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/minhdao/rebalancer/internal/models"
	"github.com/minhdao/rebalancer/internal/store/memory"
)

// seedScenario loads the reference portfolio: 10 BTC at 50000, 100 ETH at
// 3000, 1000 USDC at 1, targets 50/30/20%, total value 801000.
func seedScenario(t *testing.T, s *memory.Store, owner string) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, s.SavePortfolio(ctx, &models.Portfolio{
		Owner:                owner,
		RebalanceThreshold:   500,
		AutoRebalanceEnabled: true,
	}))

	holdings := []models.Holding{
		{Owner: owner, Slot: 1, AssetName: "BTC", CurrentAmount: 10, TargetAllocation: 5000},
		{Owner: owner, Slot: 2, AssetName: "ETH", CurrentAmount: 100, TargetAllocation: 3000},
		{Owner: owner, Slot: 3, AssetName: "USDC", CurrentAmount: 1000, TargetAllocation: 2000},
	}
	for i := range holdings {
		require.NoError(t, s.SaveHolding(ctx, &holdings[i]))
	}

	prices := []models.AssetPrice{
		{Slot: 1, Price: 50000, LastUpdated: time.Now()},
		{Slot: 2, Price: 3000, LastUpdated: time.Now()},
		{Slot: 3, Price: 1, LastUpdated: time.Now()},
	}
	for i := range prices {
		require.NoError(t, s.SavePrice(ctx, &prices[i]))
	}
}

func TestPortfolioValue(t *testing.T) {
	s := memory.New()
	seedScenario(t, s, "alice")
	valuation := NewValuationService(s)
	ctx := context.Background()

	value, err := valuation.PortfolioValue(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, uint64(801000), value)
}

func TestPortfolioValue_EmptyPortfolio(t *testing.T) {
	s := memory.New()
	valuation := NewValuationService(s)

	value, err := valuation.PortfolioValue(context.Background(), "nobody")
	require.NoError(t, err)
	require.Equal(t, uint64(0), value)
}

func TestPortfolioValue_ExcludesUnpricedAsset(t *testing.T) {
	s := memory.New()
	seedScenario(t, s, "alice")
	ctx := context.Background()

	// A fourth holding with no price record contributes nothing.
	require.NoError(t, s.SaveHolding(ctx, &models.Holding{
		Owner: "alice", Slot: 4, AssetName: "DOGE", CurrentAmount: 1000000, TargetAllocation: 0,
	}))

	valuation := NewValuationService(s)
	value, err := valuation.PortfolioValue(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, uint64(801000), value)
}

func TestPortfolioValue_SaturatesInsteadOfWrapping(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	require.NoError(t, s.SavePortfolio(ctx, &models.Portfolio{Owner: "whale", RebalanceThreshold: 500}))
	holdings := []models.Holding{
		{Owner: "whale", Slot: 1, AssetName: "BTC", CurrentAmount: math.MaxUint64, TargetAllocation: 5000},
		{Owner: "whale", Slot: 2, AssetName: "ETH", CurrentAmount: math.MaxUint64, TargetAllocation: 5000},
	}
	for i := range holdings {
		require.NoError(t, s.SaveHolding(ctx, &holdings[i]))
	}
	for slot := 1; slot <= 2; slot++ {
		require.NoError(t, s.SavePrice(ctx, &models.AssetPrice{Slot: slot, Price: 2, LastUpdated: time.Now()}))
	}

	valuation := NewValuationService(s)
	value, err := valuation.PortfolioValue(ctx, "whale")
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), value)
}

func TestAssetAllocation(t *testing.T) {
	s := memory.New()
	seedScenario(t, s, "alice")
	valuation := NewValuationService(s)
	ctx := context.Background()

	record, err := valuation.AssetAllocation(ctx, "alice", 1, 801000)
	require.NoError(t, err)
	require.Equal(t, "BTC", record.AssetName)
	require.Equal(t, uint64(10), record.CurrentAmount)
	require.Equal(t, uint64(500000), record.Value)
	require.Equal(t, uint32(6242), record.CurrentAllocation)
	require.Equal(t, uint32(5000), record.TargetAllocation)
	require.Equal(t, "62.42", record.Percentage.String())
}

func TestAssetAllocation_Placeholders(t *testing.T) {
	s := memory.New()
	seedScenario(t, s, "alice")
	valuation := NewValuationService(s)
	ctx := context.Background()

	// Zero total value.
	record, err := valuation.AssetAllocation(ctx, "alice", 1, 0)
	require.NoError(t, err)
	require.True(t, record.IsPlaceholder())

	// Unheld slot.
	record, err = valuation.AssetAllocation(ctx, "alice", 5, 801000)
	require.NoError(t, err)
	require.True(t, record.IsPlaceholder())

	// Held but unpriced slot.
	require.NoError(t, s.SaveHolding(ctx, &models.Holding{
		Owner: "alice", Slot: 4, AssetName: "DOGE", CurrentAmount: 10, TargetAllocation: 100,
	}))
	record, err = valuation.AssetAllocation(ctx, "alice", 4, 801000)
	require.NoError(t, err)
	require.True(t, record.IsPlaceholder())
}

func TestCurrentAllocations(t *testing.T) {
	s := memory.New()
	seedScenario(t, s, "alice")
	ctx := context.Background()

	// Unpriced holding must be omitted from the listing, not faulted on.
	require.NoError(t, s.SaveHolding(ctx, &models.Holding{
		Owner: "alice", Slot: 4, AssetName: "DOGE", CurrentAmount: 10, TargetAllocation: 100,
	}))

	valuation := NewValuationService(s)
	records, err := valuation.CurrentAllocations(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, records, 3)

	require.Equal(t, 1, records[0].Slot)
	require.Equal(t, 2, records[1].Slot)
	require.Equal(t, 3, records[2].Slot)
	require.Equal(t, uint32(6242), records[0].CurrentAllocation)
	require.Equal(t, uint32(3745), records[1].CurrentAllocation)
	require.Equal(t, uint32(12), records[2].CurrentAllocation)

	// Floor truncation: shares need not sum to exactly 10000.
	var sum uint32
	for _, r := range records {
		sum += r.CurrentAllocation
	}
	require.LessOrEqual(t, sum, uint32(10000))
}

func TestCurrentAllocations_ZeroValuePortfolio(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	require.NoError(t, s.SavePortfolio(ctx, &models.Portfolio{Owner: "alice", RebalanceThreshold: 500}))
	require.NoError(t, s.SaveHolding(ctx, &models.Holding{
		Owner: "alice", Slot: 1, AssetName: "BTC", CurrentAmount: 10, TargetAllocation: 5000,
	}))

	valuation := NewValuationService(s)
	records, err := valuation.CurrentAllocations(ctx, "alice")
	require.NoError(t, err)
	require.Empty(t, records)
}
