package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/minhdao/rebalancer/internal/errors"
	"github.com/minhdao/rebalancer/internal/models"
	"github.com/minhdao/rebalancer/internal/store/memory"
)

func newDriftService(s *memory.Store) DriftService {
	return NewDriftService(s, NewValuationService(s))
}

func TestSingleAssetDrift(t *testing.T) {
	s := memory.New()
	seedScenario(t, s, "alice")
	drift := newDriftService(s)
	ctx := context.Background()

	d, err := drift.SingleAssetDrift(ctx, "alice", 1, 801000)
	require.NoError(t, err)
	require.Equal(t, uint32(1242), d) // 6242 current vs 5000 target

	d, err = drift.SingleAssetDrift(ctx, "alice", 3, 801000)
	require.NoError(t, err)
	require.Equal(t, uint32(1988), d) // 12 current vs 2000 target

	// Unheld slot.
	d, err = drift.SingleAssetDrift(ctx, "alice", 5, 801000)
	require.NoError(t, err)
	require.Equal(t, uint32(0), d)
}

func TestSingleAssetDrift_UnpricedSlot(t *testing.T) {
	s := memory.New()
	seedScenario(t, s, "alice")
	ctx := context.Background()
	require.NoError(t, s.SaveHolding(ctx, &models.Holding{
		Owner: "alice", Slot: 4, AssetName: "DOGE", CurrentAmount: 10, TargetAllocation: 4000,
	}))

	d, err := newDriftService(s).SingleAssetDrift(ctx, "alice", 4, 801000)
	require.NoError(t, err)
	require.Equal(t, uint32(0), d)
}

func TestNeedsRebalance(t *testing.T) {
	s := memory.New()
	seedScenario(t, s, "alice")

	needed, err := newDriftService(s).NeedsRebalance(context.Background(), "alice")
	require.NoError(t, err)
	require.True(t, needed) // max drift ~1988 bp > 500 bp threshold
}

func TestNeedsRebalance_PortfolioNotFound(t *testing.T) {
	s := memory.New()

	_, err := newDriftService(s).NeedsRebalance(context.Background(), "nobody")
	require.ErrorIs(t, err, apperrors.ErrPortfolioNotFound)
}

func TestNeedsRebalance_ZeroValuePortfolio(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	// Holdings without prices: value is zero, so rebalancing is never needed
	// no matter the threshold.
	require.NoError(t, s.SavePortfolio(ctx, &models.Portfolio{Owner: "alice", RebalanceThreshold: 0}))
	require.NoError(t, s.SaveHolding(ctx, &models.Holding{
		Owner: "alice", Slot: 1, AssetName: "BTC", CurrentAmount: 10, TargetAllocation: 5000,
	}))

	needed, err := newDriftService(s).NeedsRebalance(ctx, "alice")
	require.NoError(t, err)
	require.False(t, needed)
}

// Drift exactly equal to the threshold must not trigger; one basis point above
// must.
func TestNeedsRebalance_ThresholdBoundary(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	// Two assets valued 600 and 400 of a 1000 total: current allocations are
	// exactly 6000 and 4000 bp against 5000/5000 targets, so drift is 1000 bp.
	require.NoError(t, s.SaveHolding(ctx, &models.Holding{
		Owner: "alice", Slot: 1, AssetName: "A", CurrentAmount: 600, TargetAllocation: 5000,
	}))
	require.NoError(t, s.SaveHolding(ctx, &models.Holding{
		Owner: "alice", Slot: 2, AssetName: "B", CurrentAmount: 400, TargetAllocation: 5000,
	}))
	require.NoError(t, s.SavePrice(ctx, &models.AssetPrice{Slot: 1, Price: 1}))
	require.NoError(t, s.SavePrice(ctx, &models.AssetPrice{Slot: 2, Price: 1}))

	drift := newDriftService(s)

	require.NoError(t, s.SavePortfolio(ctx, &models.Portfolio{Owner: "alice", RebalanceThreshold: 1000}))
	needed, err := drift.NeedsRebalance(ctx, "alice")
	require.NoError(t, err)
	require.False(t, needed)

	require.NoError(t, s.SavePortfolio(ctx, &models.Portfolio{Owner: "alice", RebalanceThreshold: 999}))
	needed, err = drift.NeedsRebalance(ctx, "alice")
	require.NoError(t, err)
	require.True(t, needed)
}
