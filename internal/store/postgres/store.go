// Package postgres provides the GORM-backed store.Store used in production.
// Despite the name it also drives the sqlite dialector for single-file
// deployments; the queries are dialect-neutral.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/minhdao/rebalancer/internal/db"
	"github.com/minhdao/rebalancer/internal/models"
	"github.com/minhdao/rebalancer/internal/store"
)

type Store struct {
	db *db.DB
}

// New creates a store on an established database connection.
func New(database *db.DB) *Store {
	return &Store{db: database}
}

// Migrate creates or updates the backing tables.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&models.Portfolio{}, &models.Holding{}, &models.AssetPrice{})
}

func (s *Store) GetPortfolio(ctx context.Context, owner string) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := s.db.WithContext(ctx).Where("owner = ?", owner).First(&portfolio).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}
	return &portfolio, nil
}

func (s *Store) SavePortfolio(ctx context.Context, portfolio *models.Portfolio) error {
	if err := s.db.WithContext(ctx).Save(portfolio).Error; err != nil {
		return fmt.Errorf("failed to save portfolio: %w", err)
	}
	return nil
}

func (s *Store) PortfolioExists(ctx context.Context, owner string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Portfolio{}).Where("owner = ?", owner).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check portfolio existence: %w", err)
	}
	return count > 0, nil
}

func (s *Store) GetHolding(ctx context.Context, owner string, slot int) (*models.Holding, error) {
	var holding models.Holding
	err := s.db.WithContext(ctx).Where("owner = ? AND slot = ?", owner, slot).First(&holding).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get holding: %w", err)
	}
	return &holding, nil
}

func (s *Store) SaveHolding(ctx context.Context, holding *models.Holding) error {
	if err := s.db.WithContext(ctx).Save(holding).Error; err != nil {
		return fmt.Errorf("failed to save holding: %w", err)
	}
	return nil
}

func (s *Store) HoldingExists(ctx context.Context, owner string, slot int) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Holding{}).Where("owner = ? AND slot = ?", owner, slot).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check holding existence: %w", err)
	}
	return count > 0, nil
}

func (s *Store) ListHoldings(ctx context.Context, owner string) ([]*models.Holding, error) {
	var holdings []*models.Holding
	err := s.db.WithContext(ctx).Where("owner = ?", owner).Order("slot ASC").Find(&holdings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}
	return holdings, nil
}

func (s *Store) GetPrice(ctx context.Context, slot int) (*models.AssetPrice, error) {
	var price models.AssetPrice
	err := s.db.WithContext(ctx).Where("slot = ?", slot).First(&price).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get price: %w", err)
	}
	return &price, nil
}

func (s *Store) SavePrice(ctx context.Context, price *models.AssetPrice) error {
	if err := s.db.WithContext(ctx).Save(price).Error; err != nil {
		return fmt.Errorf("failed to save price: %w", err)
	}
	return nil
}
