// Package group implements the finite symmetry groups that drive puzzle
// construction: abstract group tables, concrete isometry groups generated
// by reflections and rotations, Schlafli symbols, orbits, group actions on
// reference point sets, subgroups and pointwise stabilizers.
//
// The group package provides:
//
//   - AbstractGroup: successor/predecessor tables over dense element and
//     generator IDs, shortest factorizations and inverses. ElementID(0) is
//     always the identity; elements 1..N are the generators.
//   - Builder: incremental table construction with structural sanity
//     checks at Build time.
//   - IsometryGroup: closure of a finite generator set of isometries,
//     deduplicated by approximate hashing. Groups are capped at 65,536
//     elements; exceeding the cap is a fatal ErrGroupOverflow, never a
//     silent wrap.
//   - Schlafli: integer Schlafli symbols ("4,3"), their mirror normals in
//     closed form, and the Coxeter group they generate.
//   - Orbit: generic worklist expansion of an object under generators,
//     recording the generator word and accumulated transform per result.
//   - Action, Subgroup: a group acting on a finite reference point set,
//     pointwise stabilizers and per-point orbit deorbiters.
//
// Construction is single-threaded: a build owns its group values and no
// type here carries locks. Independent builds may run on separate
// goroutines.
package group
