// Package approx centralizes the numeric tolerance policy and provides
// approximate hashing for float-valued composite keys.
//
// The approx package provides:
//
//   - A single global tolerance (Epsilon) shared by every comparison in the
//     module. There are no per-call epsilons: two components of the system
//     must never disagree about whether two values coincide.
//   - Float comparisons (Eq, Zero, Nonzero, Cmp) expressed against Epsilon.
//   - An Interner that buckets floats into 16-bit tokens so that values
//     within Epsilon of an existing bucket reuse its token.
//   - Map and Set containers keyed by approximate equality of composite
//     values (vectors, planes, transforms) via the Hashable interface.
//
// Bucketing is order-dependent by construction: a chain of values, each
// within Epsilon of its neighbor but spanning more than Epsilon overall,
// may or may not share tokens depending on insertion order. Callers rely
// on this exact behavior; it must not be "fixed" by widening buckets or
// re-bucketing on insert.
package approx
