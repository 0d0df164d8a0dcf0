// Package space implements the polytope arena and the cut engine: the
// construction core that turns a primordial bounding cube and a sequence
// of carve/slice operations into the cell complex of a puzzle.
//
// The space package provides:
//
//   - Space: an append-only arena of vertices, manifolds and polytopes.
//     Vertices intern by approximate position, manifolds canonicalize and
//     intern as signed references (a surface and its reversal share one
//     entry), polytopes intern by structural identity. Nothing is ever
//     mutated or deleted; construction history stays valid forever.
//   - PolytopeData: a vertex, or a rank-k element whose boundary is a set
//     of signed references to rank-(k-1) elements.
//   - AddPrimordialCube: the bounding cube every construction starts
//     from, built as a 3^ndim lattice walk. Its elements are flagged
//     primordial; a finished shape that still touches one is unbounded.
//   - Cut: a memoized recursive cut of elements by a manifold, with
//     carve (keep inside) and slice (keep both) parameterizations. When
//     an element splits, the inside and outside pieces share the flush
//     facet as the same element with opposite signs. Re-applying a cut,
//     or a cut with an approximately identical divider, is idempotent.
//   - Structural validation: rank consistency and boundary closure
//     checks, run on every intern in strict mode (panicking, for puzzle
//     development) or on demand via CheckElement (returning errors).
//
// Curved cells are represented by their flat vertex skeleton: sphere
// dividers classify and split exactly where crossings land on existing
// edges, and a segment crossing a sphere twice is a degenerate cut.
//
// A Space is single-threaded; independent constructions each own their
// Space and may run on separate goroutines.
package space
