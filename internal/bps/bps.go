// Package bps provides fixed-point percentage arithmetic on integer basis
// points, where 10000 basis points equal 100%. All divisions floor.
package bps

import "math/bits"

// Scale is the number of basis points in 100%.
const Scale = 10000

// Valid reports whether v is a representable percentage (at most 100%).
func Valid(v uint32) bool {
	return v <= Scale
}

// Allocation returns floor(value × Scale / total) — the share of total that
// value represents, in basis points. Returns 0 when total is 0. The
// intermediate product is computed in 128 bits so large portfolio values
// cannot overflow.
func Allocation(value, total uint64) uint32 {
	if total == 0 {
		return 0
	}
	hi, lo := bits.Mul64(value, Scale)
	q, _ := bits.Div64(hi, lo, total)
	return uint32(q)
}

// Share returns floor(total × allocation / Scale) — the absolute value a given
// basis-point allocation represents out of total.
func Share(total uint64, allocation uint32) uint64 {
	hi, lo := bits.Mul64(total, uint64(allocation))
	q, _ := bits.Div64(hi, lo, Scale)
	return q
}

// Drift returns |current − target| in basis points.
func Drift(current, target uint32) uint32 {
	if current > target {
		return current - target
	}
	return target - current
}
