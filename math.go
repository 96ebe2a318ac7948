package descent

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	deg2rad = math.Pi / 180
)

// Deg2rad converts degrees to radians. Unlike a heading conversion, the sign is kept.
func Deg2rad(a float64) float64 {
	return a * deg2rad
}

// Rad2deg converts radians to degrees, keeping the sign.
func Rad2deg(a float64) float64 {
	return a / deg2rad
}

// clamp returns v limited to [lo, hi].
func clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// isFinite returns false for NaN and both infinities.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// negate flips the sign without producing a negative zero.
func negate(v float64) float64 {
	if v == 0 {
		return 0
	}
	return -v
}
