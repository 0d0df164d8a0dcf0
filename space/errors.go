// SPDX-License-Identifier: MIT

// Package space: sentinel error set.
// Every message is prefixed with "space: ..." and matched via errors.Is.
// Cut errors wrap these sentinels with the offending element; strict-mode
// invariant violations panic instead (programmer error during puzzle
// development).

package space

import "errors"

var (
	// ErrBadDimension is returned when a Space is created outside the
	// supported 1..7 dimension range.
	ErrBadDimension = errors.New("space: dimension out of range")

	// ErrBadRank is returned when a boundary element's rank does not sit
	// exactly one below its parent, or an operation is applied to an
	// element of the wrong rank.
	ErrBadRank = errors.New("space: rank mismatch")

	// ErrBadBoundary is returned when an element's boundary violates
	// closure: a (k-2)-cell not covered an even number of times, or a
	// polygon vertex not shared by exactly two edges.
	ErrBadBoundary = errors.New("space: boundary violates closure")

	// ErrPrimordialExists is returned by AddPrimordialCube when the Space
	// already has its primordial cube.
	ErrPrimordialExists = errors.New("space: primordial cube already exists")

	// ErrInfiniteShape is returned when a shape still touches the
	// primordial cube's boundary after construction, meaning the cuts
	// never bounded it.
	ErrInfiniteShape = errors.New("space: shape is unbounded")

	// ErrDegenerateCut is returned when a cut produces geometry the vertex
	// model cannot represent, e.g. a segment crossing a sphere twice. The
	// construction can be retried with a different divider.
	ErrDegenerateCut = errors.New("space: degenerate cut")
)
