// SPDX-License-Identifier: MIT

package simplicial

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/polytopal/hedra/approx"
	"github.com/polytopal/hedra/geom"
	"github.com/polytopal/hedra/space"
)

// ErrZeroVolume is returned when a shape's triangulation carries no
// volume, so no centroid exists.
var ErrZeroVolume = errors.New("simplicial: shape has zero volume")

// Simplex is a set of vertices in ascending order. A simplex of a rank-k
// element has k+1 vertices.
type Simplex []space.VertexID

func (sx Simplex) key() string {
	parts := make([]string, len(sx))
	for i, v := range sx {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(parts, ",")
}

func (sx Simplex) contains(v space.VertexID) bool {
	for _, w := range sx {
		if w == v {
			return true
		}
	}
	return false
}

// with returns a new simplex including v, keeping the order.
func (sx Simplex) with(v space.VertexID) Simplex {
	out := make(Simplex, 0, len(sx)+1)
	out = append(out, sx...)
	out = append(out, v)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Complex caches triangulations over one space. Like the space itself it
// is not safe for concurrent use.
type Complex struct {
	sp        *space.Space
	simplices map[space.ElementID][]Simplex
	blobs     map[space.ElementID]blob
}

// blob is a weighted point mass: the volume of a set of simplices and
// the volume-weighted sum of their centers.
type blob struct {
	weight float64
	sum    geom.Vector
}

// NewComplex wraps a space for triangulation queries.
func NewComplex(sp *space.Space) *Complex {
	return &Complex{
		sp:        sp,
		simplices: make(map[space.ElementID][]Simplex),
		blobs:     make(map[space.ElementID]blob),
	}
}

// Space returns the underlying space.
func (c *Complex) Space() *space.Space { return c.sp }

// Simplices decomposes an element into simplices by coning its facets'
// simplices from one apex vertex. An element whose vertex count already
// matches its rank is returned as a single simplex. Results are cached.
func (c *Complex) Simplices(el space.ElementID) ([]Simplex, error) {
	if cached, ok := c.simplices[el]; ok {
		return cached, nil
	}
	// A primordial facet in the final shape means no cut ever bounded it.
	if c.sp.Rank(el) == c.sp.Ndim()-1 && c.sp.IsPrimordial(el) {
		return nil, fmt.Errorf("element %d is primordial: %w", el, space.ErrInfiniteShape)
	}

	var out []Simplex
	rank := c.sp.Rank(el)
	vs := c.sp.VertexSet(el)
	switch {
	case rank <= 1 || len(vs) == rank+1:
		sx := make(Simplex, len(vs))
		copy(sx, vs)
		out = []Simplex{sx}
	default:
		apex := vs[0]
		seen := make(map[string]bool)
		for _, facet := range c.sp.Boundary(el) {
			facetSimplices, err := c.Simplices(facet.ID)
			if err != nil {
				return nil, err
			}
			for _, sx := range facetSimplices {
				// Facet simplices touching the apex collapse to zero
				// volume under the cone.
				if sx.contains(apex) {
					continue
				}
				coned := sx.with(apex)
				if k := coned.key(); !seen[k] {
					seen[k] = true
					out = append(out, coned)
				}
			}
		}
	}
	c.simplices[el] = out
	return out, nil
}

// Triangles returns the triangles of every rank-2 subelement of el,
// including el itself when it is a polygon.
func (c *Complex) Triangles(el space.ElementID) ([][3]space.VertexID, error) {
	if c.sp.Rank(el) < 2 {
		return nil, fmt.Errorf("element %d has rank %d: %w", el, c.sp.Rank(el), space.ErrBadRank)
	}
	var out [][3]space.VertexID
	for _, poly := range c.sp.SubelementsWithRank(el, 2) {
		simplices, err := c.Simplices(poly)
		if err != nil {
			return nil, err
		}
		for _, sx := range simplices {
			out = append(out, [3]space.VertexID{sx[0], sx[1], sx[2]})
		}
	}
	return out, nil
}

// Centroid returns the volume-weighted center of an element.
func (c *Complex) Centroid(el space.ElementID) (geom.Vector, error) {
	b, err := c.blob(el)
	if err != nil {
		return nil, err
	}
	if approx.Zero(b.weight) {
		return nil, fmt.Errorf("element %d: %w", el, ErrZeroVolume)
	}
	return b.sum.Scale(1 / b.weight), nil
}

// CombinedCentroid returns the volume-weighted center of several
// elements taken together, e.g. all pieces of one puzzle grip.
func (c *Complex) CombinedCentroid(els []space.ElementID) (geom.Vector, error) {
	total := blob{sum: geom.ZeroVector(c.sp.Ndim())}
	for _, el := range els {
		b, err := c.blob(el)
		if err != nil {
			return nil, err
		}
		total.weight += b.weight
		total.sum = total.sum.Add(b.sum)
	}
	if approx.Zero(total.weight) {
		return nil, ErrZeroVolume
	}
	return total.sum.Scale(1 / total.weight), nil
}

func (c *Complex) blob(el space.ElementID) (blob, error) {
	if cached, ok := c.blobs[el]; ok {
		return cached, nil
	}
	simplices, err := c.Simplices(el)
	if err != nil {
		return blob{}, err
	}
	b := blob{sum: geom.ZeroVector(c.sp.Ndim())}
	for _, sx := range simplices {
		w := c.simplexWeight(sx)
		b.weight += w
		b.sum = b.sum.Add(c.simplexCenter(sx).Scale(w))
	}
	c.blobs[el] = b
	return b, nil
}

// simplexWeight is proportional to the simplex volume: the product of
// the Gram-Schmidt orthogonalized edge magnitudes from the first vertex.
func (c *Complex) simplexWeight(sx Simplex) float64 {
	p0 := c.sp.VertexPosition(sx[0])
	basis := make([]geom.Vector, 0, len(sx)-1)
	w := 1.0
	for _, v := range sx[1:] {
		e := c.sp.VertexPosition(v).Sub(p0)
		for _, b := range basis {
			e = e.Sub(b.Scale(e.Dot(b)))
		}
		m := e.Mag()
		if approx.Zero(m) {
			return 0
		}
		w *= m
		basis = append(basis, e.Scale(1/m))
	}
	return w
}

func (c *Complex) simplexCenter(sx Simplex) geom.Vector {
	sum := geom.ZeroVector(c.sp.Ndim())
	for _, v := range sx {
		sum = sum.Add(c.sp.VertexPosition(v))
	}
	return sum.Scale(1 / float64(len(sx)))
}
