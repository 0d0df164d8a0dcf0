// SPDX-License-Identifier: MIT

// Package group: sentinel error set.
// Every message is prefixed with "group: ..." and matched via errors.Is.
// Capacity errors are fatal for the build that hit them; the caller is
// expected to abort, not retry.

package group

import "errors"

var (
	// ErrGroupOverflow is returned when a group closure exceeds the 65,536
	// element capacity. IDs never wrap; the whole construction fails.
	ErrGroupOverflow = errors.New("group: element capacity exceeded")

	// ErrTooManyGenerators is returned when more than 255 generators are
	// supplied.
	ErrTooManyGenerators = errors.New("group: too many generators")

	// ErrInvalidGenerator is returned for generators that cannot generate a
	// finite group structure, e.g. the identity.
	ErrInvalidGenerator = errors.New("group: invalid generator")

	// ErrIncompleteGroup is returned by Build when some element/generator
	// product was never defined.
	ErrIncompleteGroup = errors.New("group: incomplete group structure")

	// ErrBadGroupStructure is returned when the successor tables violate
	// group axioms (fixed points, non-uniform occurrence counts).
	ErrBadGroupStructure = errors.New("group: inconsistent group structure")

	// ErrBadInverse is returned when the inverse property does not hold for
	// some element.
	ErrBadInverse = errors.New("group: inverse of inverse is not the element")

	// ErrBadSchlafli is returned for unparsable or out-of-range Schlafli
	// symbols (every index must be an integer >= 2).
	ErrBadSchlafli = errors.New("group: invalid schlafli symbol")

	// ErrMirrorAngle is returned when a Schlafli symbol's mirror angles do
	// not describe a spherical (finite) symmetry.
	ErrMirrorAngle = errors.New("group: mirror angles are not spherical")

	// ErrBadAction is returned when a group element does not permute the
	// reference point set of an action.
	ErrBadAction = errors.New("group: element does not permute the reference points")
)
