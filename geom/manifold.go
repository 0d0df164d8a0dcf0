// SPDX-License-Identifier: MIT

// Package geom: the closed manifold union.
// A Manifold is either a hyperplane or a sphere. The union is closed on
// purpose: the cut engine dispatches on Kind and a new surface type is a
// change to this package, not a new implementation of an interface.

package geom

import (
	"math"

	"github.com/polytopal/hedra/approx"
)

// ManifoldKind discriminates the Manifold union.
type ManifoldKind uint8

const (
	// KindPlane tags a Hyperplane payload.
	KindPlane ManifoldKind = iota
	// KindSphere tags a Sphere payload.
	KindSphere
)

// Manifold is a plane or a sphere, used as a cutting surface.
type Manifold struct {
	Kind   ManifoldKind
	Plane  Hyperplane
	Sphere Sphere
}

// PlaneManifold wraps a hyperplane.
func PlaneManifold(h Hyperplane) Manifold {
	return Manifold{Kind: KindPlane, Plane: h}
}

// SphereManifold wraps a sphere.
func SphereManifold(s Sphere) Manifold {
	return Manifold{Kind: KindSphere, Sphere: s}
}

// SignedDistance returns the oriented distance from p to the surface.
func (m Manifold) SignedDistance(p Vector) float64 {
	if m.Kind == KindPlane {
		return m.Plane.SignedDistance(p)
	}
	return m.Sphere.SignedDistance(p)
}

// Side classifies p against the manifold with tolerance.
func (m Manifold) Side(p Vector) Side {
	return sideOfDistance(m.SignedDistance(p))
}

// Canonicalize returns the canonical form of the manifold and the sign
// relating it to the input. Canonical planes have their first significant
// normal component positive; canonical spheres have positive radius. A
// manifold and its reversal therefore canonicalize to the same value with
// opposite signs and share one interned entry.
func (m Manifold) Canonicalize() (Manifold, Sign) {
	switch m.Kind {
	case KindPlane:
		for _, x := range m.Plane.normal {
			if approx.Nonzero(x) {
				if x < 0 {
					return PlaneManifold(m.Plane.Flip()), Neg
				}
				break
			}
		}
		return m, Pos
	default:
		if m.Sphere.radius < 0 {
			flipped := Sphere{center: m.Sphere.center, radius: -m.Sphere.radius}
			return SphereManifold(flipped), Neg
		}
		return m, Pos
	}
}

// SegmentCrossings returns the parameters t in (0, 1) at which the open
// segment a+t*(b-a) crosses the surface, strictly between the endpoints
// (crossings within tolerance of an endpoint are excluded; endpoint
// contact shows up as SideOn instead). Results are sorted ascending. A
// plane yields at most one crossing, a sphere at most two.
func (m Manifold) SegmentCrossings(a, b Vector) []float64 {
	d := b.Sub(a)
	seg := d.Mag()
	if approx.Zero(seg) {
		return nil
	}

	var roots []float64
	switch m.Kind {
	case KindPlane:
		ha := m.Plane.SignedDistance(a)
		hb := m.Plane.SignedDistance(b)
		if sideOfDistance(ha) == SideOn || sideOfDistance(hb) == SideOn {
			return nil
		}
		if (ha < 0) == (hb < 0) {
			return nil
		}
		roots = []float64{ha / (ha - hb)}

	default:
		// |(a-c) + t*d|^2 = r^2, solved as a quadratic in t.
		w := a.Sub(m.Sphere.center)
		r := math.Abs(m.Sphere.radius)
		qa := d.Mag2()
		qb := 2 * w.Dot(d)
		qc := w.Mag2() - r*r
		disc := qb*qb - 4*qa*qc
		if disc <= 0 {
			return nil
		}
		sq := math.Sqrt(disc)
		roots = []float64{(-qb - sq) / (2 * qa), (-qb + sq) / (2 * qa)}
	}

	// Keep roots strictly interior to the segment, measured in distance.
	out := roots[:0]
	for _, t := range roots {
		if t*seg > approx.Epsilon && (1-t)*seg > approx.Epsilon {
			out = append(out, t)
		}
	}
	return out
}

// AppendHash encodes the kind tag and the payload, so coincident
// manifolds of either kind intern to one entry.
func (m Manifold) AppendHash(b *approx.KeyBuilder) {
	b.WriteInt(int(m.Kind))
	if m.Kind == KindPlane {
		m.Plane.AppendHash(b)
		return
	}
	m.Sphere.center.AppendHash(b)
	b.WriteFloat(m.Sphere.radius)
}

// String renders the manifold for debugging output.
func (m Manifold) String() string {
	if m.Kind == KindPlane {
		return m.Plane.String()
	}
	return m.Sphere.String()
}
