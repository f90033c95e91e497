package models

import (
	"errors"
	"math"
	"math/bits"
	"time"

	"github.com/minhdao/rebalancer/internal/bps"
)

// Holding represents one asset position within an owner's portfolio, keyed by
// (owner, slot). Slots are stable small integers in 1..MaxSlots.
type Holding struct {
	Owner string `json:"owner" gorm:"primaryKey;column:owner;type:varchar(255)"`
	Slot  int    `json:"slot" gorm:"primaryKey;column:slot"`

	AssetName string `json:"asset_name" gorm:"column:asset_name;type:varchar(50);not null"`

	// CurrentAmount is the quantity held. Only the rebalance executor rewrites
	// it after creation.
	CurrentAmount uint64 `json:"current_amount" gorm:"column:current_amount;not null;default:0"`

	// TargetAllocation is the desired share of portfolio value in basis points.
	TargetAllocation uint32 `json:"target_allocation" gorm:"column:target_allocation;not null;default:0"`

	// CurrentAllocation is the last computed share in basis points. Cached for
	// display only; valuation and drift always recompute from amount × price.
	CurrentAllocation uint32 `json:"current_allocation" gorm:"column:current_allocation;not null;default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;type:timestamptz;autoUpdateTime"`
}

// TableName returns the table name for the Holding model
func (Holding) TableName() string {
	return "holdings"
}

// Validate validates the holding data
func (h *Holding) Validate() error {
	if h.Owner == "" {
		return errors.New("owner is required")
	}
	if h.Slot <= 0 {
		return errors.New("slot must be positive")
	}
	if h.AssetName == "" {
		return errors.New("asset name is required")
	}
	if !bps.Valid(h.TargetAllocation) {
		return errors.New("target allocation must be between 0 and 10000 basis points")
	}
	return nil
}

// Value returns the holding's contribution to portfolio value at the given
// unit price. Saturates at the uint64 maximum instead of wrapping.
func (h *Holding) Value(price uint64) uint64 {
	hi, lo := bits.Mul64(h.CurrentAmount, price)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

// Allocation returns the holding's current share of totalValue in basis
// points, recomputed from amount × price. Returns 0 when totalValue is 0.
func (h *Holding) Allocation(price, totalValue uint64) uint32 {
	return bps.Allocation(h.Value(price), totalValue)
}
