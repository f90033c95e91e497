package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/minhdao/rebalancer/internal/models"
	"github.com/minhdao/rebalancer/internal/store"
)

// valuationService implements the ValuationService interface
type valuationService struct {
	store store.Store
}

// NewValuationService creates a new valuation service
func NewValuationService(st store.Store) ValuationService {
	return &valuationService{store: st}
}

func (s *valuationService) PortfolioValue(ctx context.Context, owner string) (uint64, error) {
	holdings, err := s.store.ListHoldings(ctx, owner)
	if err != nil {
		return 0, fmt.Errorf("failed to list holdings: %w", err)
	}

	var total uint64
	for _, holding := range holdings {
		price, err := s.store.GetPrice(ctx, holding.Slot)
		if errors.Is(err, store.ErrNotFound) {
			// Priceless slots contribute zero.
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("failed to get price for slot %d: %w", holding.Slot, err)
		}
		value := holding.Value(price.Price)
		if value > math.MaxUint64-total {
			// Saturate rather than wrap.
			total = math.MaxUint64
			continue
		}
		total += value
	}
	return total, nil
}

func (s *valuationService) AssetAllocation(ctx context.Context, owner string, slot int, totalValue uint64) (*models.AllocationRecord, error) {
	record := &models.AllocationRecord{Slot: slot, Percentage: decimal.Zero}
	if totalValue == 0 {
		return record, nil
	}

	holding, err := s.store.GetHolding(ctx, owner, slot)
	if errors.Is(err, store.ErrNotFound) {
		return record, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get holding: %w", err)
	}

	price, err := s.store.GetPrice(ctx, slot)
	if errors.Is(err, store.ErrNotFound) {
		return record, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get price: %w", err)
	}

	record.AssetName = holding.AssetName
	record.CurrentAmount = holding.CurrentAmount
	record.Value = holding.Value(price.Price)
	record.CurrentAllocation = holding.Allocation(price.Price, totalValue)
	record.TargetAllocation = holding.TargetAllocation
	record.Percentage = decimal.NewFromInt(int64(record.CurrentAllocation)).Div(decimal.NewFromInt(100))
	return record, nil
}

func (s *valuationService) CurrentAllocations(ctx context.Context, owner string) ([]*models.AllocationRecord, error) {
	totalValue, err := s.PortfolioValue(ctx, owner)
	if err != nil {
		return nil, err
	}

	holdings, err := s.store.ListHoldings(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}

	records := make([]*models.AllocationRecord, 0, len(holdings))
	for _, holding := range holdings {
		record, err := s.AssetAllocation(ctx, owner, holding.Slot, totalValue)
		if err != nil {
			return nil, err
		}
		if record.IsPlaceholder() {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}
