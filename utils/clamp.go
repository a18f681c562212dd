package utils

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp limits t to [min, max]. If min > max the bounds are swapped.
func Clamp[T constraints.Ordered](t, min, max T) T {
	if max < min {
		min, max = max, min
	}
	if t < min {
		return min
	}
	if t > max {
		return max
	}
	return t
}

// Abs returns the absolute value of a signed integer.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// TruncInt64 truncates x toward zero, saturating at the int64 bounds. NaN is 0.
func TruncInt64(x float64) int64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= math.MaxInt64:
		return math.MaxInt64
	case x <= math.MinInt64:
		return math.MinInt64
	}
	return int64(x)
}
