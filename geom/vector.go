// SPDX-License-Identifier: MIT

// Package geom: dense vectors with implicit zero-padding.
// A Vector of length k represents a point/direction whose components
// beyond k are zero. Binary operations therefore never require matching
// lengths; results take the longer operand's length.

package geom

import (
	"fmt"
	"math"
	"strings"

	"github.com/polytopal/hedra/approx"
)

// Vector is a dense N-dimensional vector. Components past len are zero.
type Vector []float64

// ZeroVector returns the zero vector of the given dimension.
func ZeroVector(ndim int) Vector { return make(Vector, ndim) }

// Unit returns the unit vector along axis in ndim dimensions.
func Unit(ndim, axis int) Vector {
	v := make(Vector, ndim)
	v[axis] = 1
	return v
}

// At returns component i, treating components past the stored length as 0.
func (v Vector) At(i int) float64 {
	if i < len(v) {
		return v[i]
	}
	return 0
}

// Ndim reports the stored length.
func (v Vector) Ndim() int { return len(v) }

// Clone returns an independent copy.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Resize returns a copy of v with exactly ndim components, padding with
// zeros or truncating.
func (v Vector) Resize(ndim int) Vector {
	out := make(Vector, ndim)
	copy(out, v)
	return out
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	out := v.Resize(max(len(v), len(w)))
	for i, x := range w {
		out[i] += x
	}
	return out
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	out := v.Resize(max(len(v), len(w)))
	for i, x := range w {
		out[i] -= x
	}
	return out
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = -x
	}
	return out
}

// Scale returns v * s.
func (v Vector) Scale(s float64) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = x * s
	}
	return out
}

// Dot returns the inner product, honoring implicit zero-padding.
func (v Vector) Dot(w Vector) float64 {
	n := min(len(v), len(w))
	var sum float64
	for i := 0; i < n; i++ {
		sum += v[i] * w[i]
	}
	return sum
}

// Mag2 returns the squared magnitude.
func (v Vector) Mag2() float64 { return v.Dot(v) }

// Mag returns the magnitude.
func (v Vector) Mag() float64 { return math.Sqrt(v.Mag2()) }

// Normalize returns v scaled to unit length, or ErrZeroVector when v is
// zero within tolerance.
func (v Vector) Normalize() (Vector, error) {
	m := v.Mag()
	if approx.Zero(m) {
		return nil, ErrZeroVector
	}
	return v.Scale(1 / m), nil
}

// RejectedFrom returns the component of v perpendicular to w, or
// ErrZeroVector when w is zero within tolerance.
func (v Vector) RejectedFrom(w Vector) (Vector, error) {
	m2 := w.Mag2()
	if approx.Zero(m2) {
		return nil, ErrZeroVector
	}
	return v.Sub(w.Scale(v.Dot(w) / m2)), nil
}

// IsZero reports whether every component is zero within tolerance.
func (v Vector) IsZero() bool {
	for _, x := range v {
		if approx.Nonzero(x) {
			return false
		}
	}
	return true
}

// Eq reports component-wise approximate equality, honoring padding.
func (v Vector) Eq(w Vector) bool {
	n := max(len(v), len(w))
	for i := 0; i < n; i++ {
		if !approx.Eq(v.At(i), w.At(i)) {
			return false
		}
	}
	return true
}

// Lerp returns a + t*(b-a).
func Lerp(a, b Vector, t float64) Vector {
	return a.Add(b.Sub(a).Scale(t))
}

// AppendHash encodes nonzero components sparsely so that padded and
// unpadded forms of the same vector hash identically.
func (v Vector) AppendHash(b *approx.KeyBuilder) {
	for i, x := range v {
		b.WriteSparse(i, x)
	}
}

// String renders the vector for debugging output.
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%g", x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
