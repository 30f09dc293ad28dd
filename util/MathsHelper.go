package util

import (
	"cmp"
)

// MinMax scans values once for the smallest and largest entries, ignoring NaNs.
// nans is how many were skipped. lo and hi are zero if nothing is left to compare.
func MinMax[T cmp.Ordered](values []T) (lo T, hi T, nans int) {
	seen := false
	for _, v := range values {
		if isNan(v) {
			nans++
			continue
		}
		if !seen {
			lo, hi, seen = v, v, true
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi, nans
}

// Clamp restricts v to [lo, hi]. NaN comes back as lo.
func Clamp[T cmp.Ordered](v T, lo T, hi T) T {
	if isNan(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isNan[T comparable](arg T) bool {
	return arg != arg
}
