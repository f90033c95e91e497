package models

import (
	"errors"
	"time"
)

// AssetPrice is the latest known unit price for an asset slot. Prices are
// global, shared read-only across all owners' valuations; only the price
// oracle (an administrator) writes them. A slot with no price record values
// every holding in it at zero.
type AssetPrice struct {
	Slot        int       `json:"slot" gorm:"primaryKey;column:slot"`
	Price       uint64    `json:"price" gorm:"column:price;not null;default:0"`
	LastUpdated time.Time `json:"last_updated" gorm:"column:last_updated;type:timestamptz;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at;type:timestamptz;autoUpdateTime"`
}

// TableName returns the table name for the AssetPrice model
func (AssetPrice) TableName() string {
	return "asset_prices"
}

// Validate validates the asset price data
func (p *AssetPrice) Validate() error {
	if p.Slot <= 0 {
		return errors.New("slot must be positive")
	}
	return nil
}
