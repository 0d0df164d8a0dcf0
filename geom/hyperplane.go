// SPDX-License-Identifier: MIT

// Package geom: oriented hyperplanes.
// A Hyperplane is the point set { x : normal·x = distance } with a unit
// normal. The normal is outward: SideInside is the half-space the normal
// points away from.

package geom

import (
	"fmt"

	"github.com/polytopal/hedra/approx"
)

// Hyperplane is an oriented affine hyperplane with unit normal.
type Hyperplane struct {
	normal   Vector
	distance float64
}

// NewHyperplane builds the plane { x : normal·x = distance }. The normal
// need not be unit; both it and the distance are rescaled. Returns
// ErrZeroVector for a degenerate normal.
func NewHyperplane(normal Vector, distance float64) (Hyperplane, error) {
	m := normal.Mag()
	if approx.Zero(m) {
		return Hyperplane{}, ErrZeroVector
	}
	return Hyperplane{normal: normal.Scale(1 / m), distance: distance / m}, nil
}

// FromPole builds the plane whose closest point to the origin is pole.
// Returns ErrZeroVector when the pole is at the origin.
func FromPole(pole Vector) (Hyperplane, error) {
	m := pole.Mag()
	if approx.Zero(m) {
		return Hyperplane{}, ErrZeroVector
	}
	return Hyperplane{normal: pole.Scale(1 / m), distance: m}, nil
}

// ThroughPoint builds the plane with the given normal passing through p.
func ThroughPoint(normal, p Vector) (Hyperplane, error) {
	n, err := normal.Normalize()
	if err != nil {
		return Hyperplane{}, err
	}
	return Hyperplane{normal: n, distance: n.Dot(p)}, nil
}

// Normal returns the unit normal.
func (h Hyperplane) Normal() Vector { return h.normal }

// Distance returns the offset of the plane along its normal.
func (h Hyperplane) Distance() float64 { return h.distance }

// Pole returns the point on the plane closest to the origin.
func (h Hyperplane) Pole() Vector { return h.normal.Scale(h.distance) }

// Flip returns the same plane with reversed orientation.
func (h Hyperplane) Flip() Hyperplane {
	return Hyperplane{normal: h.normal.Neg(), distance: -h.distance}
}

// SignedDistance returns normal·p - distance: negative inside, positive
// outside.
func (h Hyperplane) SignedDistance(p Vector) float64 {
	return h.normal.Dot(p) - h.distance
}

// Side classifies p against the plane with tolerance.
func (h Hyperplane) Side(p Vector) Side {
	return sideOfDistance(h.SignedDistance(p))
}

// IntersectSegment returns the point where the open segment (a, b)
// crosses the plane, given that a and b lie strictly on opposite sides.
func (h Hyperplane) IntersectSegment(a, b Vector) Vector {
	ha := h.SignedDistance(a)
	hb := h.SignedDistance(b)
	return a.Scale(hb).Sub(b.Scale(ha)).Scale(1 / (hb - ha))
}

// AppendHash encodes the unit normal and offset.
func (h Hyperplane) AppendHash(b *approx.KeyBuilder) {
	h.normal.AppendHash(b)
	b.WriteFloat(h.distance)
}

// String renders the plane for debugging output.
func (h Hyperplane) String() string {
	return fmt.Sprintf("plane{n=%s, d=%g}", h.normal, h.distance)
}
