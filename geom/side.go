// SPDX-License-Identifier: MIT

// Package geom: orientation signs and point classification results.

package geom

import "github.com/polytopal/hedra/approx"

// Sign is an orientation: +1 or -1. The zero value is invalid; all
// constructors produce Pos or Neg.
type Sign int8

const (
	// Pos is the canonical orientation.
	Pos Sign = 1
	// Neg is the reversed orientation.
	Neg Sign = -1
)

// Mul returns the product of two signs.
func (s Sign) Mul(o Sign) Sign { return s * o }

// Negate returns the opposite sign.
func (s Sign) Negate() Sign { return -s }

// SignOf returns Neg for negative x and Pos otherwise.
func SignOf(x float64) Sign {
	if x < 0 {
		return Neg
	}
	return Pos
}

// Side classifies a point against an oriented manifold.
type Side uint8

const (
	// SideInside is the negative half: the side a plane's normal points
	// away from, or the interior of a sphere.
	SideInside Side = iota
	// SideOn is the manifold itself, within tolerance.
	SideOn
	// SideOutside is the positive half.
	SideOutside
)

// Negate swaps inside and outside; On is self-inverse.
func (s Side) Negate() Side {
	switch s {
	case SideInside:
		return SideOutside
	case SideOutside:
		return SideInside
	default:
		return SideOn
	}
}

// Under reorients the classification by sign: Pos keeps it, Neg flips it.
func (s Side) Under(sign Sign) Side {
	if sign == Neg {
		return s.Negate()
	}
	return s
}

// String renders the side for logs and error messages.
func (s Side) String() string {
	switch s {
	case SideInside:
		return "inside"
	case SideOn:
		return "on"
	case SideOutside:
		return "outside"
	default:
		return "invalid"
	}
}

// sideOfDistance maps a signed distance to a Side with tolerance.
func sideOfDistance(d float64) Side {
	switch approx.Cmp(d, 0) {
	case -1:
		return SideInside
	case 1:
		return SideOutside
	default:
		return SideOn
	}
}
