package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/minhdao/rebalancer/internal/errors"
	"github.com/minhdao/rebalancer/internal/models"
	"github.com/minhdao/rebalancer/internal/store/memory"
)

func newRebalanceFixture(s *memory.Store, now Clock) (RebalanceService, DriftService) {
	valuation := NewValuationService(s)
	drift := NewDriftService(s, valuation)
	locks := NewOwnerLocks()
	return NewRebalanceServiceWithClock(s, valuation, drift, locks, now), drift
}

func TestExecuteRebalance(t *testing.T) {
	s := memory.New()
	seedScenario(t, s, "alice")
	fixed := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	rebalance, drift := newRebalanceFixture(s, func() time.Time { return fixed })
	ctx := context.Background()

	result, err := rebalance.ExecuteRebalance(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, uint64(801000), result.TotalValue)
	require.Len(t, result.Adjusted, 3)
	require.Empty(t, result.Skipped)

	// floor(801000 × target / 10000) / price, floored.
	wantAmounts := map[int]uint64{1: 8, 2: 80, 3: 160200}
	for _, adjusted := range result.Adjusted {
		require.Equal(t, wantAmounts[adjusted.Slot], adjusted.CurrentAmount, "slot %d", adjusted.Slot)
		require.Equal(t, adjusted.TargetAllocation, adjusted.CurrentAllocation, "slot %d", adjusted.Slot)
	}

	// Portfolio bookkeeping landed.
	portfolio, err := s.GetPortfolio(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, uint64(801000), portfolio.TotalValue)
	require.Equal(t, fixed, portfolio.LastRebalance)

	// Allocations are set equal to targets by construction, exactly.
	for slot, want := range map[int]uint32{1: 5000, 2: 3000, 3: 2000} {
		holding, err := s.GetHolding(ctx, "alice", slot)
		require.NoError(t, err)
		require.Equal(t, want, holding.CurrentAllocation)
		require.Equal(t, want, holding.TargetAllocation)
	}

	// Recomputed drift after rebalancing stays within any reasonable
	// threshold: the truncated amounts introduce only value-level rounding.
	value, err := NewValuationService(s).PortfolioValue(ctx, "alice")
	require.NoError(t, err)
	for slot := 1; slot <= 3; slot++ {
		d, err := drift.SingleAssetDrift(ctx, "alice", slot, value)
		require.NoError(t, err)
		require.LessOrEqual(t, d, uint32(2))
	}

	// A second immediate execute finds drift within threshold.
	_, err = rebalance.ExecuteRebalance(ctx, "alice")
	require.ErrorIs(t, err, apperrors.ErrRebalanceNotNeeded)
}

func TestExecuteRebalance_PreconditionOrder(t *testing.T) {
	s := memory.New()
	rebalance, _ := newRebalanceFixture(s, time.Now)
	ctx := context.Background()

	// No portfolio at all.
	_, err := rebalance.ExecuteRebalance(ctx, "alice")
	require.ErrorIs(t, err, apperrors.ErrPortfolioNotFound)

	// Portfolio exists but auto-rebalance is disabled; must fail before the
	// drift check even though drift would also be within threshold.
	require.NoError(t, s.SavePortfolio(ctx, &models.Portfolio{
		Owner: "alice", RebalanceThreshold: 500, AutoRebalanceEnabled: false,
	}))
	_, err = rebalance.ExecuteRebalance(ctx, "alice")
	require.ErrorIs(t, err, apperrors.ErrNotAuthorized)

	// Enabled but empty: zero value never needs rebalancing.
	require.NoError(t, s.SavePortfolio(ctx, &models.Portfolio{
		Owner: "alice", RebalanceThreshold: 500, AutoRebalanceEnabled: true,
	}))
	_, err = rebalance.ExecuteRebalance(ctx, "alice")
	require.ErrorIs(t, err, apperrors.ErrRebalanceNotNeeded)
}

func TestExecuteRebalance_DisabledFreezesCycleWithoutMutation(t *testing.T) {
	s := memory.New()
	seedScenario(t, s, "alice")
	ctx := context.Background()

	portfolio, err := s.GetPortfolio(ctx, "alice")
	require.NoError(t, err)
	portfolio.AutoRebalanceEnabled = false
	require.NoError(t, s.SavePortfolio(ctx, portfolio))

	rebalance, _ := newRebalanceFixture(s, time.Now)
	_, err = rebalance.ExecuteRebalance(ctx, "alice")
	require.ErrorIs(t, err, apperrors.ErrNotAuthorized)

	// Nothing was mutated.
	holding, err := s.GetHolding(ctx, "alice", 1)
	require.NoError(t, err)
	require.Equal(t, uint64(10), holding.CurrentAmount)

	portfolio, err = s.GetPortfolio(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, uint64(0), portfolio.TotalValue)
	require.True(t, portfolio.LastRebalance.IsZero())
}

func TestExecuteRebalance_SkipsUnpricedSlot(t *testing.T) {
	s := memory.New()
	seedScenario(t, s, "alice")
	ctx := context.Background()

	require.NoError(t, s.SaveHolding(ctx, &models.Holding{
		Owner: "alice", Slot: 4, AssetName: "DOGE", CurrentAmount: 123, TargetAllocation: 0,
	}))

	rebalance, _ := newRebalanceFixture(s, time.Now)
	result, err := rebalance.ExecuteRebalance(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, []int{4}, result.Skipped)

	// The unpriced holding is left untouched.
	holding, err := s.GetHolding(ctx, "alice", 4)
	require.NoError(t, err)
	require.Equal(t, uint64(123), holding.CurrentAmount)
}

func TestExecuteRebalance_SkipsZeroPriceSlot(t *testing.T) {
	s := memory.New()
	seedScenario(t, s, "alice")
	ctx := context.Background()

	require.NoError(t, s.SaveHolding(ctx, &models.Holding{
		Owner: "alice", Slot: 4, AssetName: "RUG", CurrentAmount: 50, TargetAllocation: 0,
	}))
	require.NoError(t, s.SavePrice(ctx, &models.AssetPrice{Slot: 4, Price: 0, LastUpdated: time.Now()}))

	rebalance, _ := newRebalanceFixture(s, time.Now)
	result, err := rebalance.ExecuteRebalance(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, []int{4}, result.Skipped)

	holding, err := s.GetHolding(ctx, "alice", 4)
	require.NoError(t, err)
	require.Equal(t, uint64(50), holding.CurrentAmount)
}

// Owners share the price table but never each other's records: concurrent
// rebalances across two owners must leave both portfolios consistent.
func TestExecuteRebalance_MultiOwnerIsolation(t *testing.T) {
	s := memory.New()
	seedScenario(t, s, "alice")
	ctx := context.Background()

	// Bob holds the same priced slots with different amounts and targets.
	require.NoError(t, s.SavePortfolio(ctx, &models.Portfolio{
		Owner: "bob", RebalanceThreshold: 100, AutoRebalanceEnabled: true,
	}))
	require.NoError(t, s.SaveHolding(ctx, &models.Holding{
		Owner: "bob", Slot: 1, AssetName: "BTC", CurrentAmount: 2, TargetAllocation: 8000,
	}))
	require.NoError(t, s.SaveHolding(ctx, &models.Holding{
		Owner: "bob", Slot: 2, AssetName: "ETH", CurrentAmount: 50, TargetAllocation: 2000,
	}))

	valuation := NewValuationService(s)
	drift := NewDriftService(s, valuation)
	locks := NewOwnerLocks()
	rebalance := NewRebalanceService(s, valuation, drift, locks)

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for _, owner := range []string{"alice", "bob"} {
		owner := owner
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := rebalance.ExecuteRebalance(ctx, owner)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	// Alice's records are untouched by Bob's rebalance and vice versa.
	aliceBTC, err := s.GetHolding(ctx, "alice", 1)
	require.NoError(t, err)
	require.Equal(t, uint64(8), aliceBTC.CurrentAmount)
	require.Equal(t, uint32(5000), aliceBTC.CurrentAllocation)

	// Bob: value = 2×50000 + 50×3000 = 250000.
	bobBTC, err := s.GetHolding(ctx, "bob", 1)
	require.NoError(t, err)
	require.Equal(t, uint64(4), bobBTC.CurrentAmount) // floor(250000×0.8/50000)
	require.Equal(t, uint32(8000), bobBTC.CurrentAllocation)

	bobETH, err := s.GetHolding(ctx, "bob", 2)
	require.NoError(t, err)
	require.Equal(t, uint64(16), bobETH.CurrentAmount) // floor(250000×0.2/3000)
	require.Equal(t, uint32(2000), bobETH.CurrentAllocation)
}
