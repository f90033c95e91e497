package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/minhdao/rebalancer/internal/bps"
	apperrors "github.com/minhdao/rebalancer/internal/errors"
	"github.com/minhdao/rebalancer/internal/store"
)

// driftService implements the DriftService interface
type driftService struct {
	store     store.Store
	valuation ValuationService
}

// NewDriftService creates a new drift service
func NewDriftService(st store.Store, valuation ValuationService) DriftService {
	return &driftService{store: st, valuation: valuation}
}

func (s *driftService) SingleAssetDrift(ctx context.Context, owner string, slot int, totalValue uint64) (uint32, error) {
	holding, err := s.store.GetHolding(ctx, owner, slot)
	if errors.Is(err, store.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get holding: %w", err)
	}

	price, err := s.store.GetPrice(ctx, slot)
	if errors.Is(err, store.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get price: %w", err)
	}

	// Always recompute from amount × price; the cached current_allocation on
	// the holding is informational only.
	current := holding.Allocation(price.Price, totalValue)
	return bps.Drift(current, holding.TargetAllocation), nil
}

func (s *driftService) NeedsRebalance(ctx context.Context, owner string) (bool, error) {
	portfolio, err := s.store.GetPortfolio(ctx, owner)
	if errors.Is(err, store.ErrNotFound) {
		return false, apperrors.ErrPortfolioNotFound
	}
	if err != nil {
		return false, fmt.Errorf("failed to get portfolio: %w", err)
	}

	totalValue, err := s.valuation.PortfolioValue(ctx, owner)
	if err != nil {
		return false, err
	}
	// An empty or unpriced portfolio never needs rebalancing.
	if totalValue == 0 {
		return false, nil
	}

	holdings, err := s.store.ListHoldings(ctx, owner)
	if err != nil {
		return false, fmt.Errorf("failed to list holdings: %w", err)
	}

	var maxDrift uint32
	for _, holding := range holdings {
		drift, err := s.SingleAssetDrift(ctx, owner, holding.Slot, totalValue)
		if err != nil {
			return false, err
		}
		if drift > maxDrift {
			maxDrift = drift
		}
	}

	// Strict inequality: drift exactly at the threshold does not trigger.
	return maxDrift > portfolio.RebalanceThreshold, nil
}
