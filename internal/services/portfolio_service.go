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

// portfolioService implements the PortfolioService interface
type portfolioService struct {
	store store.Store
	locks *OwnerLocks
}

// NewPortfolioService creates a new portfolio service
func NewPortfolioService(st store.Store, locks *OwnerLocks) PortfolioService {
	return &portfolioService{store: st, locks: locks}
}

func (s *portfolioService) CreatePortfolio(ctx context.Context, owner string, thresholdBP uint32) (*models.Portfolio, error) {
	if !bps.Valid(thresholdBP) {
		return nil, apperrors.ErrInvalidAllocation
	}

	unlock := s.locks.Lock(owner)
	defer unlock()

	exists, err := s.store.PortfolioExists(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to check portfolio existence: %w", err)
	}
	if exists {
		return nil, apperrors.ErrPortfolioExists
	}

	portfolio := &models.Portfolio{
		Owner:                owner,
		RebalanceThreshold:   thresholdBP,
		AutoRebalanceEnabled: true,
	}
	if err := portfolio.Validate(); err != nil {
		return nil, &apperrors.ErrValidation{Field: "portfolio", Message: err.Error()}
	}
	if err := s.store.SavePortfolio(ctx, portfolio); err != nil {
		return nil, fmt.Errorf("failed to save portfolio: %w", err)
	}
	return portfolio, nil
}

func (s *portfolioService) GetPortfolio(ctx context.Context, owner string) (*models.Portfolio, error) {
	portfolio, err := s.store.GetPortfolio(ctx, owner)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperrors.ErrPortfolioNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}
	return portfolio, nil
}

func (s *portfolioService) UpdateThreshold(ctx context.Context, owner string, thresholdBP uint32) error {
	if !bps.Valid(thresholdBP) {
		return apperrors.ErrInvalidAllocation
	}

	unlock := s.locks.Lock(owner)
	defer unlock()

	portfolio, err := s.store.GetPortfolio(ctx, owner)
	if errors.Is(err, store.ErrNotFound) {
		return apperrors.ErrPortfolioNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get portfolio: %w", err)
	}

	portfolio.RebalanceThreshold = thresholdBP
	if err := s.store.SavePortfolio(ctx, portfolio); err != nil {
		return fmt.Errorf("failed to save portfolio: %w", err)
	}
	return nil
}

func (s *portfolioService) SetAutoRebalance(ctx context.Context, owner string, enabled bool) error {
	unlock := s.locks.Lock(owner)
	defer unlock()

	portfolio, err := s.store.GetPortfolio(ctx, owner)
	if errors.Is(err, store.ErrNotFound) {
		return apperrors.ErrPortfolioNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get portfolio: %w", err)
	}

	portfolio.AutoRebalanceEnabled = enabled
	if err := s.store.SavePortfolio(ctx, portfolio); err != nil {
		return fmt.Errorf("failed to save portfolio: %w", err)
	}
	return nil
}
