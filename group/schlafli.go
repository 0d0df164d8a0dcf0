// SPDX-License-Identifier: MIT

// Package group: Schlafli symbols.
// The mirror normals of an integer Schlafli symbol form a band matrix:
// each mirror is perpendicular to all others except its neighbors, so
// every next mirror is determined by the previous one and the required
// dihedral angle pi/index.

package group

import (
	"math"
	"strconv"
	"strings"

	"github.com/polytopal/hedra/approx"
	"github.com/polytopal/hedra/geom"
)

// Schlafli is an integer Schlafli symbol such as {4,3}.
type Schlafli struct {
	indices []int
}

// NewSchlafli builds a symbol from indices. Every index must be >= 2.
func NewSchlafli(indices ...int) (Schlafli, error) {
	for _, p := range indices {
		if p < 2 {
			return Schlafli{}, ErrBadSchlafli
		}
	}
	return Schlafli{indices: indices}, nil
}

// ParseSchlafli parses a comma-separated symbol such as "4,3".
func ParseSchlafli(s string) (Schlafli, error) {
	parts := strings.Split(s, ",")
	indices := make([]int, len(parts))
	for i, part := range parts {
		p, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Schlafli{}, ErrBadSchlafli
		}
		indices[i] = p
	}
	return NewSchlafli(indices...)
}

// Indices returns the symbol's indices.
func (s Schlafli) Indices() []int { return s.indices }

// Ndim reports the dimension of the polytope the symbol describes.
func (s Schlafli) Ndim() int { return len(s.indices) + 1 }

// Mirrors returns the unit mirror normals. Adjacent mirrors meet at the
// angle pi/index; non-adjacent mirrors are perpendicular, so the normals
// form a band matrix and each one follows from the previous in closed
// form. ErrMirrorAngle is returned when the required angles cannot be
// realized by a spherical symmetry.
func (s Schlafli) Mirrors() ([]geom.Vector, error) {
	ndim := s.Ndim()
	mirrors := make([]geom.Vector, 0, ndim)
	last := geom.Unit(ndim, 0)
	for i, p := range s.indices {
		mirrors = append(mirrors, last)
		// Only the axis shared with the previous mirror affects the dot
		// product; the component after it restores unit length.
		q := last.At(i)
		dot := -math.Cos(math.Pi / float64(p))
		y := dot / q
		z2 := 1 - y*y
		if z2 <= 0 || math.IsNaN(z2) {
			return nil, ErrMirrorAngle
		}
		last = geom.ZeroVector(ndim)
		last[i] = y
		last[i+1] = math.Sqrt(z2)
	}
	return append(mirrors, last), nil
}

// Generators returns the mirror reflections.
func (s Schlafli) Generators() ([]geom.Isometry, error) {
	mirrors, err := s.Mirrors()
	if err != nil {
		return nil, err
	}
	gens := make([]geom.Isometry, len(mirrors))
	for i, m := range mirrors {
		gens[i], err = geom.Reflection(m)
		if err != nil {
			return nil, err
		}
	}
	return gens, nil
}

// Group constructs the Coxeter group the symbol describes.
func (s Schlafli) Group(opts ...Option) (*IsometryGroup, error) {
	gens, err := s.Generators()
	if err != nil {
		return nil, err
	}
	return FromGenerators(gens, opts...)
}

// MirrorBasis returns the columns of the matrix mapping mirror-basis
// coordinates (distance from each mirror plane) into the base space: the
// inverse of the matrix whose rows are the mirror normals. ErrBadSchlafli
// is returned when that matrix is singular.
func (s Schlafli) MirrorBasis() ([]geom.Vector, error) {
	mirrors, err := s.Mirrors()
	if err != nil {
		return nil, err
	}
	n := s.Ndim()

	// Gauss-Jordan on [M | I] where M's rows are the mirror normals.
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, 2*n)
		for j := 0; j < n; j++ {
			a[i][j] = mirrors[i].At(j)
		}
		a[i][n+i] = 1
	}
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if approx.Zero(a[pivot][col]) {
			return nil, ErrBadSchlafli
		}
		a[col], a[pivot] = a[pivot], a[col]
		inv := 1 / a[col][col]
		for j := 0; j < 2*n; j++ {
			a[col][j] *= inv
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			f := a[r][col]
			for j := 0; j < 2*n; j++ {
				a[r][j] -= f * a[col][j]
			}
		}
	}

	cols := make([]geom.Vector, n)
	for j := 0; j < n; j++ {
		col := make(geom.Vector, n)
		for i := 0; i < n; i++ {
			col[i] = a[i][n+j]
		}
		cols[j] = col
	}
	return cols, nil
}

// String renders the symbol in its conventional comma form.
func (s Schlafli) String() string {
	parts := make([]string, len(s.indices))
	for i, p := range s.indices {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}
