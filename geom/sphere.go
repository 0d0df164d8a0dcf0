// SPDX-License-Identifier: MIT

// Package geom: oriented spheres.
// A positive radius means the inside is the open ball; a negative radius
// is the same surface with reversed orientation (the inside is everything
// outside the ball). Canonicalize factors the sign out.

package geom

import (
	"fmt"
	"math"

	"github.com/polytopal/hedra/approx"
)

// Sphere is an oriented hypersphere.
type Sphere struct {
	center Vector
	radius float64
}

// NewSphere builds a sphere; the radius may be negative (reversed
// orientation) but not zero within tolerance.
func NewSphere(center Vector, radius float64) (Sphere, error) {
	if approx.Zero(radius) {
		return Sphere{}, ErrBadRadius
	}
	return Sphere{center: center.Clone(), radius: radius}, nil
}

// Center returns the sphere's center.
func (s Sphere) Center() Vector { return s.center }

// Radius returns the signed radius.
func (s Sphere) Radius() float64 { return s.radius }

// SignedDistance returns the oriented distance from p to the surface:
// negative inside, positive outside, honoring the radius sign.
func (s Sphere) SignedDistance(p Vector) float64 {
	d := p.Sub(s.center).Mag() - math.Abs(s.radius)
	if s.radius < 0 {
		return -d
	}
	return d
}

// Side classifies p against the sphere with tolerance.
func (s Sphere) Side(p Vector) Side {
	return sideOfDistance(s.SignedDistance(p))
}

// String renders the sphere for debugging output.
func (s Sphere) String() string {
	return fmt.Sprintf("sphere{c=%s, r=%g}", s.center, s.radius)
}
