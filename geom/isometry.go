// SPDX-License-Identifier: MIT

// Package geom: origin-fixing isometries.
// Puzzle symmetry groups fix the origin, so an isometry is an orthogonal
// matrix: reflections and plane rotations compose into everything needed.
// Matrices of different dimensions interoperate; entries beyond the stored
// size are implicitly those of the identity.

package geom

import (
	"fmt"
	"math"

	"github.com/polytopal/hedra/approx"
)

// hashStride separates row indices in the isometry hash encoding. Puzzle
// spaces stay far below this many dimensions.
const hashStride = 64

// Isometry is an orthogonal linear map stored as a row-major matrix.
// The zero value is the identity in every dimension.
type Isometry struct {
	n int
	m []float64
}

// Identity returns the identity isometry of the given dimension.
func Identity(ndim int) Isometry {
	iso := Isometry{n: ndim, m: make([]float64, ndim*ndim)}
	for i := 0; i < ndim; i++ {
		iso.m[i*ndim+i] = 1
	}
	return iso
}

// Reflection returns the mirror through the hyperplane containing the
// origin with the given normal: I - 2*u*uᵀ for the unit normal u.
func Reflection(normal Vector) (Isometry, error) {
	u, err := normal.Normalize()
	if err != nil {
		return Isometry{}, err
	}
	n := len(u)
	iso := Identity(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			iso.m[i*n+j] -= 2 * u[i] * u[j]
		}
	}
	return iso, nil
}

// Rotation returns the rotation by angle in the (ax1, ax2) coordinate
// plane of an ndim-dimensional space.
func Rotation(ndim, ax1, ax2 int, angle float64) (Isometry, error) {
	if ax1 == ax2 || ax1 < 0 || ax2 < 0 || ax1 >= ndim || ax2 >= ndim {
		return Isometry{}, ErrBadAxis
	}
	iso := Identity(ndim)
	c, s := math.Cos(angle), math.Sin(angle)
	iso.m[ax1*ndim+ax1] = c
	iso.m[ax2*ndim+ax2] = c
	iso.m[ax1*ndim+ax2] = -s
	iso.m[ax2*ndim+ax1] = s
	return iso, nil
}

// Ndim reports the stored matrix size.
func (iso Isometry) Ndim() int { return iso.n }

// At returns entry (i, j), extending with the identity beyond the stored
// size.
func (iso Isometry) At(i, j int) float64 {
	if i < iso.n && j < iso.n {
		return iso.m[i*iso.n+j]
	}
	if i == j {
		return 1
	}
	return 0
}

// ToDim returns the isometry embedded in n dimensions.
func (iso Isometry) ToDim(n int) Isometry {
	out := Identity(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.m[i*n+j] = iso.At(i, j)
		}
	}
	return out
}

// Compose returns iso∘o: the map that applies o first, then iso.
func (iso Isometry) Compose(o Isometry) Isometry {
	n := max(iso.n, o.n)
	out := Isometry{n: n, m: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for k := 0; k < n; k++ {
				sum += iso.At(i, k) * o.At(k, j)
			}
			out.m[i*n+j] = sum
		}
	}
	return out
}

// Inverse returns the inverse map. Orthogonal matrices invert by
// transposition.
func (iso Isometry) Inverse() Isometry {
	out := Isometry{n: iso.n, m: make([]float64, iso.n*iso.n)}
	for i := 0; i < iso.n; i++ {
		for j := 0; j < iso.n; j++ {
			out.m[i*iso.n+j] = iso.m[j*iso.n+i]
		}
	}
	return out
}

// Transform applies the map to a point or direction.
func (iso Isometry) Transform(v Vector) Vector {
	n := max(iso.n, len(v))
	out := make(Vector, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += iso.At(i, j) * v.At(j)
		}
		out[i] = sum
	}
	return out
}

// TransformHyperplane applies the map to a plane. Origin-fixing
// isometries preserve the offset and rotate the normal.
func (iso Isometry) TransformHyperplane(h Hyperplane) Hyperplane {
	return Hyperplane{normal: iso.Transform(h.normal), distance: h.distance}
}

// TransformManifold applies the map to either manifold kind.
func (iso Isometry) TransformManifold(m Manifold) Manifold {
	if m.Kind == KindPlane {
		return PlaneManifold(iso.TransformHyperplane(m.Plane))
	}
	moved := Sphere{center: iso.Transform(m.Sphere.center), radius: m.Sphere.radius}
	return SphereManifold(moved)
}

// IsIdentity reports whether the map is the identity within tolerance.
func (iso Isometry) IsIdentity() bool {
	for i := 0; i < iso.n; i++ {
		for j := 0; j < iso.n; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if !approx.Eq(iso.m[i*iso.n+j], want) {
				return false
			}
		}
	}
	return true
}

// Eq reports entry-wise approximate equality, honoring the identity
// extension.
func (iso Isometry) Eq(o Isometry) bool {
	n := max(iso.n, o.n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !approx.Eq(iso.At(i, j), o.At(i, j)) {
				return false
			}
		}
	}
	return true
}

// AppendHash encodes the deviation from the identity sparsely, so the
// same map hashes identically at any embedding dimension.
func (iso Isometry) AppendHash(b *approx.KeyBuilder) {
	for i := 0; i < iso.n; i++ {
		for j := 0; j < iso.n; j++ {
			x := iso.m[i*iso.n+j]
			if i == j {
				x -= 1
			}
			b.WriteSparse(i*hashStride+j, x)
		}
	}
}

// String renders the matrix rows for debugging output.
func (iso Isometry) String() string {
	return fmt.Sprintf("isometry%v", iso.m)
}
