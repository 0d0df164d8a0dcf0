// Package hedra is a construction kit for N-dimensional twisty-puzzle
// geometry: build convex shapes by cutting space with planes and
// spheres, generate their symmetry groups, and triangulate the pieces.
//
// 🚀 What is hedra?
//
//	A deterministic, CPU-only geometry engine that brings together:
//		• Tolerant numerics: epsilon-compared floats, interned coordinates
//		• Flat primitives: vectors, hyperplanes, spheres, isometries
//		• Groups: Schläfli symbols, Coxeter mirror generators, orbits,
//		  group actions, stabilizers
//		• The space arena: memoized polytopes cut by oriented manifolds
//		• Simplicial complexes: triangulation and centroids of the pieces
//
// ✨ Why choose hedra?
//
//   - Deterministic — the same construction script always yields the same
//     element IDs, in any dimension from 1 through 7
//   - Memoized all the way down — vertices, manifolds and polytopes are
//     interned, so repeating a cut is free and pieces keep their identity
//   - Explicit failure — degenerate cuts, unbounded shapes and group
//     overflows are sentinel errors, never silent corruption
//
// Everything is organized under five subpackages:
//
//	approx/     — tolerant float comparison, interning, hash keys
//	geom/       — vectors, hyperplanes, spheres, manifolds, isometries
//	group/      — abstract groups, Schläfli symbols, orbits & actions
//	space/      — the polytope arena and the cut engine
//	simplicial/ — triangulation and centroids
//
// Quick sketch of a 2×2×2 puzzle's geometry:
//
//	s, _ := space.New(3)
//	cube, _ := s.AddPrimordialCube(4)
//	pieces := []space.ElementID{cube}
//	for ax := 0; ax < 3; ax++ {
//		hi, _ := s.AddPlane(geom.Unit(3, ax), 1)
//		lo, _ := s.AddPlane(geom.Unit(3, ax).Scale(-1), 1)
//		pieces, _ = s.Carve(pieces, hi)
//		pieces, _ = s.Carve(pieces, lo)
//		mid, _ := s.AddPlane(geom.Unit(3, ax), 0)
//		pieces, _ = s.Slice(pieces, mid)
//	}
//	// pieces now holds the eight cubies.
//
//	go get github.com/polytopal/hedra
package hedra
