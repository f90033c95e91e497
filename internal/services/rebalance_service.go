package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/minhdao/rebalancer/internal/bps"
	apperrors "github.com/minhdao/rebalancer/internal/errors"
	"github.com/minhdao/rebalancer/internal/models"
	"github.com/minhdao/rebalancer/internal/store"
)

// rebalanceService implements the RebalanceService interface
type rebalanceService struct {
	store     store.Store
	valuation ValuationService
	drift     DriftService
	locks     *OwnerLocks
	now       Clock
}

// NewRebalanceService creates a new rebalance service
func NewRebalanceService(st store.Store, valuation ValuationService, drift DriftService, locks *OwnerLocks) RebalanceService {
	return NewRebalanceServiceWithClock(st, valuation, drift, locks, time.Now)
}

// NewRebalanceServiceWithClock creates a rebalance service with an injected clock
func NewRebalanceServiceWithClock(st store.Store, valuation ValuationService, drift DriftService, locks *OwnerLocks, now Clock) RebalanceService {
	return &rebalanceService{store: st, valuation: valuation, drift: drift, locks: locks, now: now}
}

// ExecuteRebalance recomputes every priced holding's amount so its allocation
// matches its target. Preconditions are checked in order before any mutation:
// the portfolio must exist, auto-rebalancing must be enabled, and drift must
// strictly exceed the threshold.
func (s *rebalanceService) ExecuteRebalance(ctx context.Context, owner string) (*models.RebalanceResult, error) {
	unlock := s.locks.Lock(owner)
	defer unlock()

	portfolio, err := s.store.GetPortfolio(ctx, owner)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperrors.ErrPortfolioNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}

	if !portfolio.AutoRebalanceEnabled {
		return nil, apperrors.ErrNotAuthorized
	}

	needed, err := s.drift.NeedsRebalance(ctx, owner)
	if err != nil {
		return nil, err
	}
	if !needed {
		return nil, apperrors.ErrRebalanceNotNeeded
	}

	totalValue, err := s.valuation.PortfolioValue(ctx, owner)
	if err != nil {
		return nil, err
	}

	portfolio.TotalValue = totalValue
	portfolio.LastRebalance = s.now()
	if err := s.store.SavePortfolio(ctx, portfolio); err != nil {
		return nil, fmt.Errorf("failed to save portfolio: %w", err)
	}

	holdings, err := s.store.ListHoldings(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}

	result := &models.RebalanceResult{Owner: owner, TotalValue: totalValue}
	for _, holding := range holdings {
		price, err := s.store.GetPrice(ctx, holding.Slot)
		if errors.Is(err, store.ErrNotFound) || (err == nil && price.Price == 0) {
			// Unpriced slots are skipped, not rolled back; the rebalance as a
			// whole still succeeds.
			result.Skipped = append(result.Skipped, holding.Slot)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get price for slot %d: %w", holding.Slot, err)
		}

		targetValue := bps.Share(totalValue, holding.TargetAllocation)
		holding.CurrentAmount = targetValue / price.Price
		// Post-rebalance allocation is defined to equal the target exactly,
		// not re-derived from the truncated amount.
		holding.CurrentAllocation = holding.TargetAllocation
		if err := s.store.SaveHolding(ctx, holding); err != nil {
			return nil, fmt.Errorf("failed to save holding for slot %d: %w", holding.Slot, err)
		}

		result.Adjusted = append(result.Adjusted, models.AllocationRecord{
			Slot:              holding.Slot,
			AssetName:         holding.AssetName,
			CurrentAmount:     holding.CurrentAmount,
			Value:             holding.Value(price.Price),
			CurrentAllocation: holding.CurrentAllocation,
			TargetAllocation:  holding.TargetAllocation,
			Percentage:        decimal.NewFromInt(int64(holding.CurrentAllocation)).Div(decimal.NewFromInt(100)),
		})
	}

	return result, nil
}
