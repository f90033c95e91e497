// Package memory provides an in-memory store.Store for tests and
// single-process deployments.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/minhdao/rebalancer/internal/models"
	"github.com/minhdao/rebalancer/internal/store"
)

type holdingKey struct {
	owner string
	slot  int
}

// Store keeps all records in maps. Records are copied on the way in and out so
// callers never share memory with the store; a reader can not observe a torn
// write from another operation.
type Store struct {
	mu         sync.RWMutex
	portfolios map[string]models.Portfolio
	holdings   map[holdingKey]models.Holding
	prices     map[int]models.AssetPrice
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		portfolios: make(map[string]models.Portfolio),
		holdings:   make(map[holdingKey]models.Holding),
		prices:     make(map[int]models.AssetPrice),
	}
}

func (s *Store) GetPortfolio(ctx context.Context, owner string) (*models.Portfolio, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.portfolios[owner]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (s *Store) SavePortfolio(ctx context.Context, portfolio *models.Portfolio) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.portfolios[portfolio.Owner] = *portfolio
	return nil
}

func (s *Store) PortfolioExists(ctx context.Context, owner string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.portfolios[owner]
	return ok, nil
}

func (s *Store) GetHolding(ctx context.Context, owner string, slot int) (*models.Holding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.holdings[holdingKey{owner, slot}]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &h, nil
}

func (s *Store) SaveHolding(ctx context.Context, holding *models.Holding) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.holdings[holdingKey{holding.Owner, holding.Slot}] = *holding
	return nil
}

func (s *Store) HoldingExists(ctx context.Context, owner string, slot int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.holdings[holdingKey{owner, slot}]
	return ok, nil
}

func (s *Store) ListHoldings(ctx context.Context, owner string) ([]*models.Holding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var holdings []*models.Holding
	for key, h := range s.holdings {
		if key.owner != owner {
			continue
		}
		copied := h
		holdings = append(holdings, &copied)
	}
	sort.Slice(holdings, func(i, j int) bool { return holdings[i].Slot < holdings[j].Slot })
	return holdings, nil
}

func (s *Store) GetPrice(ctx context.Context, slot int) (*models.AssetPrice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.prices[slot]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (s *Store) SavePrice(ctx context.Context, price *models.AssetPrice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prices[price.Slot] = *price
	return nil
}
