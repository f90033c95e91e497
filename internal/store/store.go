// Package store defines the narrow persistence interfaces the engine depends
// on. Implementations live in subpackages: memory (tests, single process) and
// postgres (GORM-backed, production).
package store

import (
	"context"
	"errors"

	"github.com/minhdao/rebalancer/internal/models"
)

// ErrNotFound is returned by Get operations when no record exists for the
// given key. Services translate it into the domain error taxonomy.
var ErrNotFound = errors.New("record not found")

// PortfolioStore persists per-owner portfolio configuration.
type PortfolioStore interface {
	GetPortfolio(ctx context.Context, owner string) (*models.Portfolio, error)
	SavePortfolio(ctx context.Context, portfolio *models.Portfolio) error
	PortfolioExists(ctx context.Context, owner string) (bool, error)
}

// HoldingStore persists (owner, slot) asset positions.
type HoldingStore interface {
	GetHolding(ctx context.Context, owner string, slot int) (*models.Holding, error)
	SaveHolding(ctx context.Context, holding *models.Holding) error
	HoldingExists(ctx context.Context, owner string, slot int) (bool, error)
	// ListHoldings returns the owner's holdings ordered by ascending slot.
	ListHoldings(ctx context.Context, owner string) ([]*models.Holding, error)
}

// PriceStore persists the global per-slot price table.
type PriceStore interface {
	GetPrice(ctx context.Context, slot int) (*models.AssetPrice, error)
	SavePrice(ctx context.Context, price *models.AssetPrice) error
}

// Store combines the three record stores behind one wiring point.
type Store interface {
	PortfolioStore
	HoldingStore
	PriceStore
}
