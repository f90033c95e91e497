package models

import "github.com/shopspring/decimal"

// AllocationRecord is one row of a portfolio's current-allocation report. The
// basis-point fields are authoritative; Value and Percentage are derived for
// display.
type AllocationRecord struct {
	Slot              int             `json:"slot"`
	AssetName         string          `json:"asset_name"`
	CurrentAmount     uint64          `json:"current_amount"`
	Value             uint64          `json:"value"`
	CurrentAllocation uint32          `json:"current_allocation"`
	TargetAllocation  uint32          `json:"target_allocation"`
	Percentage        decimal.Decimal `json:"percentage"`
}

// IsPlaceholder reports whether the record is the zero-filled placeholder
// returned for a slot that is unheld, unpriced, or part of a zero-value
// portfolio. Placeholders are filtered out of allocation listings.
func (r *AllocationRecord) IsPlaceholder() bool {
	return r.AssetName == "" && r.CurrentAmount == 0 && r.CurrentAllocation == 0 && r.TargetAllocation == 0
}

// RebalanceResult summarizes a successful rebalance execution.
type RebalanceResult struct {
	Owner      string             `json:"owner"`
	TotalValue uint64             `json:"total_value"`
	Adjusted   []AllocationRecord `json:"adjusted"`
	Skipped    []int              `json:"skipped_slots,omitempty"`
}
