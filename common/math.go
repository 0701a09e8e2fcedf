package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Round3 rounds to 3 decimal places. Every committed world coordinate goes
// through this so saved levels and ledger records stay deterministic.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
