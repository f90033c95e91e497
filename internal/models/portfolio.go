package models

import (
	"errors"
	"time"

	"github.com/minhdao/rebalancer/internal/bps"
)

// Portfolio holds the per-owner rebalancing configuration and bookkeeping.
// There is at most one portfolio per owner and it is never deleted.
type Portfolio struct {
	Owner string `json:"owner" gorm:"primaryKey;column:owner;type:varchar(255)"`

	// TotalValue is the aggregate value recorded by the last rebalance, in the
	// same unit as price × amount.
	TotalValue uint64 `json:"total_value" gorm:"column:total_value;not null;default:0"`

	// RebalanceThreshold is the drift tolerance in basis points. Drift must be
	// strictly greater than the threshold for a rebalance to be eligible.
	RebalanceThreshold uint32 `json:"rebalance_threshold" gorm:"column:rebalance_threshold;not null;default:0"`

	// AutoRebalanceEnabled gates ExecuteRebalance. When false the rebalance
	// cycle is frozen regardless of drift.
	AutoRebalanceEnabled bool `json:"auto_rebalance_enabled" gorm:"column:auto_rebalance_enabled;not null;default:false"`

	LastRebalance time.Time `json:"last_rebalance" gorm:"column:last_rebalance;type:timestamptz"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at;type:timestamptz;autoUpdateTime"`
}

// TableName returns the table name for the Portfolio model
func (Portfolio) TableName() string {
	return "portfolios"
}

// Validate validates the portfolio data
func (p *Portfolio) Validate() error {
	if p.Owner == "" {
		return errors.New("owner is required")
	}
	if !bps.Valid(p.RebalanceThreshold) {
		return errors.New("rebalance threshold must be between 0 and 10000 basis points")
	}
	return nil
}
