package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/minhdao/rebalancer/internal/bps"
	apperrors "github.com/minhdao/rebalancer/internal/errors"
	"github.com/minhdao/rebalancer/internal/models"
	"github.com/minhdao/rebalancer/internal/store"
)

// assetService implements the AssetService interface
type assetService struct {
	store    store.Store
	locks    *OwnerLocks
	maxSlots int
}

// NewAssetService creates a new asset service. maxSlots bounds the slot range
// (1..maxSlots) so every engine operation stays bounded-time.
func NewAssetService(st store.Store, locks *OwnerLocks, maxSlots int) AssetService {
	return &assetService{store: st, locks: locks, maxSlots: maxSlots}
}

func (s *assetService) validSlot(slot int) bool {
	return slot >= 1 && slot <= s.maxSlots
}

func (s *assetService) AddAsset(ctx context.Context, owner string, slot int, name string, amount uint64, targetBP uint32) (*models.Holding, error) {
	if !s.validSlot(slot) {
		return nil, &apperrors.ErrValidation{Field: "slot", Message: fmt.Sprintf("must be between 1 and %d", s.maxSlots)}
	}
	if !bps.Valid(targetBP) {
		return nil, apperrors.ErrInvalidAllocation
	}

	unlock := s.locks.Lock(owner)
	defer unlock()

	if _, err := s.store.GetPortfolio(ctx, owner); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrPortfolioNotFound
		}
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}

	exists, err := s.store.HoldingExists(ctx, owner, slot)
	if err != nil {
		return nil, fmt.Errorf("failed to check holding existence: %w", err)
	}
	if exists {
		return nil, apperrors.ErrAssetExists
	}

	holding := &models.Holding{
		Owner:            owner,
		Slot:             slot,
		AssetName:        name,
		CurrentAmount:    amount,
		TargetAllocation: targetBP,
	}
	if err := holding.Validate(); err != nil {
		return nil, &apperrors.ErrValidation{Field: "holding", Message: err.Error()}
	}
	if err := s.store.SaveHolding(ctx, holding); err != nil {
		return nil, fmt.Errorf("failed to save holding: %w", err)
	}
	return holding, nil
}

func (s *assetService) GetAsset(ctx context.Context, owner string, slot int) (*models.Holding, error) {
	holding, err := s.store.GetHolding(ctx, owner, slot)
	if errors.Is(err, store.ErrNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get holding: %w", err)
	}
	return holding, nil
}

func (s *assetService) UpdateTarget(ctx context.Context, owner string, slot int, name string, targetBP uint32) (*models.Holding, error) {
	if !bps.Valid(targetBP) {
		return nil, apperrors.ErrInvalidAllocation
	}

	unlock := s.locks.Lock(owner)
	defer unlock()

	holding, err := s.store.GetHolding(ctx, owner, slot)
	if errors.Is(err, store.ErrNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get holding: %w", err)
	}

	holding.TargetAllocation = targetBP
	if name != "" {
		holding.AssetName = name
	}
	if err := s.store.SaveHolding(ctx, holding); err != nil {
		return nil, fmt.Errorf("failed to save holding: %w", err)
	}
	return holding, nil
}
