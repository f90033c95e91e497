package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHolding_Validate(t *testing.T) {
	h := &Holding{Owner: "alice", Slot: 1, AssetName: "BTC", CurrentAmount: 10, TargetAllocation: 5000}
	require.NoError(t, h.Validate())

	bad := *h
	bad.Owner = ""
	require.Error(t, bad.Validate())

	bad = *h
	bad.Slot = 0
	require.Error(t, bad.Validate())

	bad = *h
	bad.AssetName = ""
	require.Error(t, bad.Validate())

	bad = *h
	bad.TargetAllocation = 10001
	require.Error(t, bad.Validate())
}

func TestHolding_Value(t *testing.T) {
	h := &Holding{Owner: "alice", Slot: 1, AssetName: "BTC", CurrentAmount: 10}
	require.Equal(t, uint64(500000), h.Value(50000))
	require.Equal(t, uint64(0), h.Value(0))
}

func TestHolding_ValueSaturates(t *testing.T) {
	h := &Holding{Owner: "alice", Slot: 1, AssetName: "BTC", CurrentAmount: math.MaxUint64}
	require.Equal(t, uint64(math.MaxUint64), h.Value(2))
	require.Equal(t, uint64(math.MaxUint64), h.Value(1))
	require.Equal(t, uint64(0), h.Value(0))

	h.CurrentAmount = 1 << 32
	require.Equal(t, uint64(math.MaxUint64), h.Value(1<<33))
}

func TestHolding_Allocation(t *testing.T) {
	h := &Holding{Owner: "alice", Slot: 1, AssetName: "BTC", CurrentAmount: 10}
	require.Equal(t, uint32(6242), h.Allocation(50000, 801000))
	require.Equal(t, uint32(0), h.Allocation(50000, 0))
}

func TestPortfolio_Validate(t *testing.T) {
	p := &Portfolio{Owner: "alice", RebalanceThreshold: 500}
	require.NoError(t, p.Validate())

	p.RebalanceThreshold = 10000
	require.NoError(t, p.Validate())

	p.RebalanceThreshold = 10001
	require.Error(t, p.Validate())

	p.RebalanceThreshold = 500
	p.Owner = ""
	require.Error(t, p.Validate())
}

func TestAssetPrice_Validate(t *testing.T) {
	require.NoError(t, (&AssetPrice{Slot: 3, Price: 50000}).Validate())
	require.NoError(t, (&AssetPrice{Slot: 3, Price: 0}).Validate())
	require.Error(t, (&AssetPrice{Slot: 0, Price: 1}).Validate())
}

func TestAllocationRecord_IsPlaceholder(t *testing.T) {
	var r AllocationRecord
	require.True(t, r.IsPlaceholder())

	r.AssetName = "BTC"
	require.False(t, r.IsPlaceholder())
}
