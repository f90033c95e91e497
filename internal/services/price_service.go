package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/minhdao/rebalancer/internal/errors"
	"github.com/minhdao/rebalancer/internal/models"
	"github.com/minhdao/rebalancer/internal/store"
)

// priceService implements the PriceService interface
type priceService struct {
	store store.Store
	auth  Authorizer
	now   Clock
}

// NewPriceService creates a new price service
func NewPriceService(st store.Store, auth Authorizer) PriceService {
	return NewPriceServiceWithClock(st, auth, time.Now)
}

// NewPriceServiceWithClock creates a price service with an injected clock
func NewPriceServiceWithClock(st store.Store, auth Authorizer, now Clock) PriceService {
	return &priceService{store: st, auth: auth, now: now}
}

func (s *priceService) UpdatePrice(ctx context.Context, caller string, slot int, price uint64) (*models.AssetPrice, error) {
	if !s.auth.IsAdmin(ctx, caller) {
		return nil, apperrors.ErrNotAuthorized
	}

	record := &models.AssetPrice{
		Slot:        slot,
		Price:       price,
		LastUpdated: s.now(),
	}
	if err := record.Validate(); err != nil {
		return nil, &apperrors.ErrValidation{Field: "price", Message: err.Error()}
	}
	if err := s.store.SavePrice(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save price: %w", err)
	}
	return record, nil
}

func (s *priceService) GetPrice(ctx context.Context, slot int) (*models.AssetPrice, error) {
	record, err := s.store.GetPrice(ctx, slot)
	if errors.Is(err, store.ErrNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get price: %w", err)
	}
	return record, nil
}
