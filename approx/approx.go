// SPDX-License-Identifier: MIT

// Package approx: global tolerance policy.
// Every float comparison in the module goes through these helpers so that
// "equal", "zero" and ordering decisions are consistent everywhere.

package approx

import "math"

// Epsilon is the global absolute tolerance. Geometry at puzzle scale keeps
// coordinates within a few orders of magnitude of 1, so a single absolute
// tolerance is sufficient; relative tolerances are intentionally avoided.
const Epsilon = 1e-9

// Eq reports whether a and b coincide within Epsilon.
func Eq(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// Zero reports whether x is within Epsilon of zero.
func Zero(x float64) bool {
	return math.Abs(x) <= Epsilon
}

// Nonzero reports whether x is NOT within Epsilon of zero.
func Nonzero(x float64) bool {
	return math.Abs(x) > Epsilon
}

// Cmp compares a and b with tolerance: 0 when Eq(a, b), otherwise -1 or +1.
func Cmp(a, b float64) int {
	switch {
	case Eq(a, b):
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}
