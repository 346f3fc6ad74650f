// Package scoring implements the TalentIQ formulas: attrition risk, strategy
// decisions, lifecycle stability, hiring simulators and scenario projection.
//
// Every function here is pure. Rounding matches JavaScript's Math.round, where
// halves round toward positive infinity, so -2.5 becomes -2 rather than -3.
package scoring

import "math"

// Round rounds half up.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// clamp bounds v to [lo,hi].
func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func clampInt(v, lo, hi int) int {
	return min(hi, max(lo, v))
}
