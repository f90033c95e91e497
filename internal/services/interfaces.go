package services

import (
	"context"
	"time"

	"github.com/minhdao/rebalancer/internal/models"
)

// Clock supplies timestamps for rebalance and price bookkeeping. Injected so
// tests can pin time; defaults to time.Now.
type Clock func() time.Time

// Authorizer supplies the administrator check that gates price writes.
type Authorizer interface {
	IsAdmin(ctx context.Context, caller string) bool
}

// ValuationService computes portfolio value and per-asset allocations from the
// asset ledger and the price table. All methods are read-only.
type ValuationService interface {
	// PortfolioValue sums amount × price over every held slot. Slots without a
	// holding or without a price contribute zero.
	PortfolioValue(ctx context.Context, owner string) (uint64, error)
	// AssetAllocation returns the allocation record for one slot. When
	// totalValue is zero or the slot is unheld or unpriced it returns a
	// zero-filled placeholder instead of failing.
	AssetAllocation(ctx context.Context, owner string, slot int, totalValue uint64) (*models.AllocationRecord, error)
	// CurrentAllocations returns the owner's allocation records ordered by
	// slot, with placeholders filtered out.
	CurrentAllocations(ctx context.Context, owner string) ([]*models.AllocationRecord, error)
}

// DriftService decides whether a portfolio has drifted past its threshold.
type DriftService interface {
	// SingleAssetDrift returns |current − target| in basis points for one
	// slot, recomputing the current allocation from amount × price. Unheld or
	// unpriced slots have zero drift.
	SingleAssetDrift(ctx context.Context, owner string, slot int, totalValue uint64) (uint32, error)
	// NeedsRebalance reports whether the maximum drift over all slots strictly
	// exceeds the portfolio's threshold. A zero-value portfolio never needs
	// rebalancing.
	NeedsRebalance(ctx context.Context, owner string) (bool, error)
}

// RebalanceService restores a portfolio to its target allocations.
type RebalanceService interface {
	ExecuteRebalance(ctx context.Context, owner string) (*models.RebalanceResult, error)
}

// PortfolioService covers portfolio-level configuration writes.
type PortfolioService interface {
	CreatePortfolio(ctx context.Context, owner string, thresholdBP uint32) (*models.Portfolio, error)
	GetPortfolio(ctx context.Context, owner string) (*models.Portfolio, error)
	UpdateThreshold(ctx context.Context, owner string, thresholdBP uint32) error
	SetAutoRebalance(ctx context.Context, owner string, enabled bool) error
}

// AssetService covers asset-slot configuration writes.
type AssetService interface {
	AddAsset(ctx context.Context, owner string, slot int, name string, amount uint64, targetBP uint32) (*models.Holding, error)
	GetAsset(ctx context.Context, owner string, slot int) (*models.Holding, error)
	// UpdateTarget is the explicit reconfiguration path for a holding's target
	// allocation and display name.
	UpdateTarget(ctx context.Context, owner string, slot int, name string, targetBP uint32) (*models.Holding, error)
}

// PriceService covers the oracle-gated global price table.
type PriceService interface {
	// UpdatePrice writes a slot price. Only administrators may call it.
	UpdatePrice(ctx context.Context, caller string, slot int, price uint64) (*models.AssetPrice, error)
	GetPrice(ctx context.Context, slot int) (*models.AssetPrice, error)
}
