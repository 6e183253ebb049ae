package math

import (
	gomath "math"

	"golang.org/x/exp/constraints"
)

// Clamp returns f limited to the range [low, high].
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Lerp interpolates linearly between a and b. t is not clamped.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// Sign returns -1, 0 or 1.
func Sign[T constraints.Signed | constraints.Float](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// WrapDegrees maps an angle onto [-180, 180).
func WrapDegrees[T constraints.Float](deg T) T {
	d := T(gomath.Mod(float64(deg)+180, 360))
	if d < 0 {
		d += 360
	}
	return d - 180
}
