// Package geom provides the low-dimensional geometric primitives the
// construction engine is built on: dense vectors, hyperplanes, spheres,
// the closed Manifold union over both, and origin-fixing isometries.
//
// The geom package provides:
//
//   - Vector: dense N-dimensional vectors with implicit zero-padding, so
//     vectors of different lengths interoperate without resizing.
//   - Hyperplane: a unit normal plus an offset along it. The "inside" of a
//     hyperplane is the side its normal points away from.
//   - Sphere: center plus positive radius; the inside is the open ball.
//   - Manifold: a closed tagged union of Plane and Sphere with the shared
//     classification operations (SignedDistance, Side, SegmentCrossings)
//     and a Canonicalize step that factors orientation out into a Sign.
//   - Isometry: an orthogonal matrix built from reflections and plane
//     rotations, composable and applicable to points, planes and
//     manifolds.
//
// All comparisons use the approx package's global tolerance. Every type
// here implements approx.Hashable, so geometrically coincident values
// deduplicate in approximate maps regardless of padding.
package geom
