// SPDX-License-Identifier: MIT

// Package space: IDs, signed references and polytope data.
// All IDs are arena indices. References carry an orientation sign so one
// stored element can appear in two boundaries with opposite orientations,
// which is how the flush facet of a split is shared.

package space

import (
	"fmt"
	"sort"
	"strings"

	"github.com/polytopal/hedra/geom"
)

// VertexID indexes an interned vertex position.
type VertexID uint32

// ElementID indexes an interned polytope.
type ElementID uint32

// ManifoldID indexes an interned canonical manifold.
type ManifoldID uint32

// ElementRef is a signed reference to a polytope.
type ElementRef struct {
	ID   ElementID
	Sign geom.Sign
}

// Ref returns a positive reference to id.
func Ref(id ElementID) ElementRef { return ElementRef{ID: id, Sign: geom.Pos} }

// Negate returns the same element with opposite orientation.
func (r ElementRef) Negate() ElementRef {
	return ElementRef{ID: r.ID, Sign: r.Sign.Negate()}
}

// String renders the reference with a leading sign.
func (r ElementRef) String() string {
	if r.Sign == geom.Neg {
		return fmt.Sprintf("-%d", r.ID)
	}
	return fmt.Sprintf("+%d", r.ID)
}

// ManifoldRef is a signed reference to a canonical manifold. The sign
// reverses orientation: the inside of -m is the outside of m.
type ManifoldRef struct {
	ID   ManifoldID
	Sign geom.Sign
}

// Negate returns the same manifold with opposite orientation.
func (r ManifoldRef) Negate() ManifoldRef {
	return ManifoldRef{ID: r.ID, Sign: r.Sign.Negate()}
}

// RefSet is a boundary: a set of signed element references, at most one
// sign per element.
type RefSet map[ElementID]geom.Sign

// NewRefSet builds a boundary from references.
func NewRefSet(refs ...ElementRef) RefSet {
	set := make(RefSet, len(refs))
	for _, r := range refs {
		set[r.ID] = r.Sign
	}
	return set
}

// Add inserts or overwrites a reference.
func (s RefSet) Add(r ElementRef) { s[r.ID] = r.Sign }

// Has reports whether the element appears with either sign.
func (s RefSet) Has(id ElementID) bool {
	_, ok := s[id]
	return ok
}

// Len reports the number of references.
func (s RefSet) Len() int { return len(s) }

// Sorted returns the references in ascending element order.
func (s RefSet) Sorted() []ElementRef {
	out := make([]ElementRef, 0, len(s))
	for id, sign := range s {
		out = append(out, ElementRef{ID: id, Sign: sign})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Clone returns an independent copy.
func (s RefSet) Clone() RefSet {
	out := make(RefSet, len(s))
	for id, sign := range s {
		out[id] = sign
	}
	return out
}

// String renders the boundary in ascending element order.
func (s RefSet) String() string {
	parts := make([]string, 0, len(s))
	for _, r := range s.Sorted() {
		parts = append(parts, r.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// PolytopeData is the stored form of one element: either a vertex or a
// rank-k polytope with its boundary.
type PolytopeData struct {
	// Rank is 0 for vertices.
	Rank int
	// Vertex is set for rank 0.
	Vertex VertexID
	// Boundary is set for rank >= 1; every member has rank Rank-1.
	Boundary RefSet
	// IsPrimordial marks elements carrying primordial cube surface. Cut
	// pieces inherit it; facets minted flush to a divider do not.
	IsPrimordial bool
	// Seam is the divider that minted this element as a flush facet, if
	// any. Builders use it to name cut axes.
	Seam *ManifoldRef
}

// internKey is the structural identity of the data. Two polytopes with
// equal keys are the same element.
func (d PolytopeData) internKey() string {
	var b strings.Builder
	fmt.Fprintf(&b, "r%d", d.Rank)
	if d.Rank == 0 {
		fmt.Fprintf(&b, "v%d", d.Vertex)
		return b.String()
	}
	b.WriteString(d.Boundary.String())
	if d.IsPrimordial {
		b.WriteString("P")
	}
	if d.Seam != nil {
		fmt.Fprintf(&b, "s%d%+d", d.Seam.ID, d.Seam.Sign)
	}
	return b.String()
}
