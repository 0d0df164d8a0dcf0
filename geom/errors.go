// SPDX-License-Identifier: MIT

// Package geom: sentinel error set.
// Every message is prefixed with "geom: ..." and matched via errors.Is.
// Constructors return these for degenerate user input; panics are reserved
// for programmer errors (out-of-range axes and the like).

package geom

import "errors"

var (
	// ErrZeroVector is returned when a direction is required but the input
	// vector is zero within tolerance (Normalize, Reflection, FromPole).
	ErrZeroVector = errors.New("geom: vector is zero within tolerance")

	// ErrBadRadius is returned for spheres whose radius is zero within
	// tolerance; a sign-flipped radius is legal and means an inverted sphere.
	ErrBadRadius = errors.New("geom: sphere radius is zero within tolerance")

	// ErrBadAxis is returned when a rotation plane is specified with
	// out-of-range or coincident axes.
	ErrBadAxis = errors.New("geom: invalid rotation axes")
)
