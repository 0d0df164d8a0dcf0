// SPDX-License-Identifier: MIT

// Package space: the append-only arena.
// Everything added to a Space is interned: vertices by approximate
// position, manifolds by canonical form, polytopes by structural
// identity. IDs are stable for the Space's lifetime.

package space

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/polytopal/hedra/approx"
	"github.com/polytopal/hedra/geom"
)

// MaxDim is the highest supported space dimension.
const MaxDim = 7

// Space is an append-only polytope arena. Not safe for concurrent use;
// every construction owns its Space.
type Space struct {
	ndim   int
	logger *zap.Logger
	strict bool

	vertexPos []geom.Vector
	vertexIDs *approx.Map[geom.Vector, VertexID]

	polytopes   []PolytopeData
	polytopeIDs map[string]ElementID

	manifolds   []geom.Manifold
	manifoldIDs *approx.Map[geom.Manifold, ManifoldID]

	primordial *ElementID

	sides      map[sideKey]sideSummary
	vertexSets map[ElementID][]VertexID
}

type sideKey struct {
	manifold ManifoldID
	element  ElementID
}

// New creates an empty Space of the given dimension (1 to MaxDim).
func New(ndim int, opts ...Option) (*Space, error) {
	if ndim < 1 || ndim > MaxDim {
		return nil, ErrBadDimension
	}
	o := gatherOptions(opts)
	return &Space{
		ndim:        ndim,
		logger:      o.logger,
		strict:      o.strict,
		vertexIDs:   approx.NewMap[geom.Vector, VertexID](),
		polytopeIDs: make(map[string]ElementID),
		manifoldIDs: approx.NewMap[geom.Manifold, ManifoldID](),
		sides:       make(map[sideKey]sideSummary),
		vertexSets:  make(map[ElementID][]VertexID),
	}, nil
}

// Ndim reports the dimension of the space.
func (s *Space) Ndim() int { return s.ndim }

// AddVertex interns a position, returning the existing ID for any
// position within tolerance of a known vertex.
func (s *Space) AddVertex(pos geom.Vector) VertexID {
	if id, ok := s.vertexIDs.Get(pos); ok {
		return id
	}
	id := VertexID(len(s.vertexPos))
	s.vertexPos = append(s.vertexPos, pos.Resize(s.ndim))
	s.vertexIDs.Set(pos, id)
	return id
}

// VertexPosition returns the interned position of v.
func (s *Space) VertexPosition(v VertexID) geom.Vector { return s.vertexPos[v] }

// VertexCount reports the number of interned vertices.
func (s *Space) VertexCount() int { return len(s.vertexPos) }

// VertexElement interns the rank-0 element wrapping v.
func (s *Space) VertexElement(v VertexID) ElementID {
	return s.internPolytope(PolytopeData{Rank: 0, Vertex: v})
}

// AddManifold canonicalizes and interns a cutting surface, returning a
// signed reference: a manifold and its reversal share one entry.
func (s *Space) AddManifold(m geom.Manifold) ManifoldRef {
	canon, sign := m.Canonicalize()
	if id, ok := s.manifoldIDs.Get(canon); ok {
		return ManifoldRef{ID: id, Sign: sign}
	}
	id := ManifoldID(len(s.manifolds))
	s.manifolds = append(s.manifolds, canon)
	s.manifoldIDs.Set(canon, id)
	s.logger.Debug("manifold interned",
		zap.Uint32("id", uint32(id)), zap.Stringer("manifold", canon))
	return ManifoldRef{ID: id, Sign: sign}
}

// AddPlane interns the plane { x : normal·x = distance }.
func (s *Space) AddPlane(normal geom.Vector, distance float64) (ManifoldRef, error) {
	h, err := geom.NewHyperplane(normal, distance)
	if err != nil {
		return ManifoldRef{}, err
	}
	return s.AddManifold(geom.PlaneManifold(h)), nil
}

// AddSphere interns a sphere; a negative radius reverses orientation.
func (s *Space) AddSphere(center geom.Vector, radius float64) (ManifoldRef, error) {
	sph, err := geom.NewSphere(center, radius)
	if err != nil {
		return ManifoldRef{}, err
	}
	return s.AddManifold(geom.SphereManifold(sph)), nil
}

// Manifold returns the oriented surface of a reference.
func (s *Space) Manifold(r ManifoldRef) geom.Manifold {
	m := s.manifolds[r.ID]
	if r.Sign == geom.Pos {
		return m
	}
	if m.Kind == geom.KindPlane {
		return geom.PlaneManifold(m.Plane.Flip())
	}
	flipped, _ := geom.NewSphere(m.Sphere.Center(), -m.Sphere.Radius())
	return geom.SphereManifold(flipped)
}

// AddPolytope interns a rank-k polytope over an existing boundary. Every
// boundary member must have rank k-1 (ErrBadRank); an edge needs exactly
// two distinct vertices (ErrBadBoundary).
func (s *Space) AddPolytope(rank int, boundary RefSet) (ElementID, error) {
	if rank < 1 || rank > s.ndim {
		return 0, ErrBadRank
	}
	for id := range boundary {
		if s.polytopes[id].Rank != rank-1 {
			return 0, ErrBadRank
		}
	}
	if rank == 1 && boundary.Len() != 2 {
		return 0, ErrBadBoundary
	}
	return s.internPolytope(PolytopeData{Rank: rank, Boundary: boundary}), nil
}

// internPolytope interns data, returning the existing ID for a
// structurally identical element.
func (s *Space) internPolytope(data PolytopeData) ElementID {
	key := data.internKey()
	if id, ok := s.polytopeIDs[key]; ok {
		return id
	}
	id := ElementID(len(s.polytopes))
	s.polytopes = append(s.polytopes, data)
	s.polytopeIDs[key] = id
	if s.strict && data.Rank >= 2 {
		if err := s.CheckElement(id); err != nil {
			panic(fmt.Sprintf("space: intern of invalid element %d: %v", id, err))
		}
	}
	s.logger.Debug("polytope interned",
		zap.Uint32("id", uint32(id)), zap.Int("rank", data.Rank))
	return id
}

// addIfNonDegenerate interns a polytope unless its boundary is too small
// to enclose anything of the given rank (a rank-k element needs at least
// k+1 facets).
func (s *Space) addIfNonDegenerate(rank int, boundary RefSet, primordial bool, seam *ManifoldRef) (ElementID, bool) {
	if boundary.Len() <= rank {
		return 0, false
	}
	return s.internPolytope(PolytopeData{
		Rank:         rank,
		Boundary:     boundary,
		IsPrimordial: primordial,
		Seam:         seam,
	}), true
}

// Data returns a copy of the element's stored form.
func (s *Space) Data(el ElementID) PolytopeData {
	d := s.polytopes[el]
	d.Boundary = d.Boundary.Clone()
	return d
}

// Rank returns the element's rank; vertices have rank 0.
func (s *Space) Rank(el ElementID) int { return s.polytopes[el].Rank }

// Boundary returns the element's boundary references in ascending order.
func (s *Space) Boundary(el ElementID) []ElementRef {
	return s.polytopes[el].Boundary.Sorted()
}

// IsPrimordial reports whether the element carries primordial surface.
func (s *Space) IsPrimordial(el ElementID) bool { return s.polytopes[el].IsPrimordial }

// Seam returns the divider that minted the element as a flush facet.
func (s *Space) Seam(el ElementID) (ManifoldRef, bool) {
	if seam := s.polytopes[el].Seam; seam != nil {
		return *seam, true
	}
	return ManifoldRef{}, false
}

// ElementCount reports the number of interned polytopes.
func (s *Space) ElementCount() int { return len(s.polytopes) }

// HasPrimordialFacet reports whether any facet of el is primordial.
func (s *Space) HasPrimordialFacet(el ElementID) bool {
	for id := range s.polytopes[el].Boundary {
		if s.polytopes[id].IsPrimordial {
			return true
		}
	}
	return false
}

// EnsureBounded verifies that no piece still touches the primordial
// cube's boundary; ErrInfiniteShape otherwise.
func (s *Space) EnsureBounded(pieces []ElementID) error {
	for _, el := range pieces {
		if s.HasPrimordialFacet(el) {
			return fmt.Errorf("element %d touches the primordial cube: %w", el, ErrInfiniteShape)
		}
	}
	return nil
}

// PrimordialCube returns the primordial cube element, if built.
func (s *Space) PrimordialCube() (ElementID, bool) {
	if s.primordial == nil {
		return 0, false
	}
	return *s.primordial, true
}

// AddPrimordialCube builds the axis-aligned bounding cube of the given
// radius and returns its top element. The cube's lattice has one element
// per point of {low, span, high}^ndim: an element's rank is the number of
// axes it spans, and its boundary replaces one spanned axis by the two
// bounding values. Only one primordial cube may exist per Space.
func (s *Space) AddPrimordialCube(radius float64) (ElementID, error) {
	if s.primordial != nil {
		return 0, ErrPrimordialExists
	}
	if radius <= approx.Epsilon {
		return 0, geom.ErrBadRadius
	}

	// Digits of idx in base 3 per axis: 0 = low face, 1 = spanning, 2 =
	// high face.
	pow3 := 1
	strides := make([]int, s.ndim)
	for ax := 0; ax < s.ndim; ax++ {
		strides[ax] = pow3
		pow3 *= 3
	}
	digit := func(idx, ax int) int { return idx / strides[ax] % 3 }
	spanCount := func(idx int) int {
		n := 0
		for ax := 0; ax < s.ndim; ax++ {
			if digit(idx, ax) == 1 {
				n++
			}
		}
		return n
	}

	elems := make([]ElementID, pow3)
	for rank := 0; rank <= s.ndim; rank++ {
		for idx := 0; idx < pow3; idx++ {
			if spanCount(idx) != rank {
				continue
			}
			if rank == 0 {
				pos := make(geom.Vector, s.ndim)
				for ax := 0; ax < s.ndim; ax++ {
					if digit(idx, ax) == 0 {
						pos[ax] = -radius
					} else {
						pos[ax] = radius
					}
				}
				elems[idx] = s.VertexElement(s.AddVertex(pos))
				continue
			}
			boundary := make(RefSet, 2*rank)
			for ax := 0; ax < s.ndim; ax++ {
				if digit(idx, ax) != 1 {
					continue
				}
				boundary.Add(ElementRef{ID: elems[idx-strides[ax]], Sign: geom.Neg})
				boundary.Add(ElementRef{ID: elems[idx+strides[ax]], Sign: geom.Pos})
			}
			elems[idx] = s.internPolytope(PolytopeData{
				Rank:     rank,
				Boundary: boundary,
				// The top element is not itself primordial: only the
				// surface matters for boundedness checks.
				IsPrimordial: rank < s.ndim,
			})
		}
	}

	// The top element spans every axis: all digits 1.
	topIdx := 0
	for ax := 0; ax < s.ndim; ax++ {
		topIdx += strides[ax]
	}
	top := elems[topIdx]
	s.primordial = &top
	s.logger.Debug("primordial cube built",
		zap.Float64("radius", radius), zap.Int("elements", pow3))
	return top, nil
}

// VertexSet returns the IDs of all vertices of el, ascending. Results are
// cached.
func (s *Space) VertexSet(el ElementID) []VertexID {
	if cached, ok := s.vertexSets[el]; ok {
		return cached
	}
	var out []VertexID
	d := s.polytopes[el]
	if d.Rank == 0 {
		out = []VertexID{d.Vertex}
	} else {
		seen := make(map[VertexID]bool)
		for id := range d.Boundary {
			for _, v := range s.VertexSet(id) {
				seen[v] = true
			}
		}
		out = make([]VertexID, 0, len(seen))
		for v := range seen {
			out = append(out, v)
		}
		sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	}
	s.vertexSets[el] = out
	return out
}

// SubelementsWithRank returns all subelements of el with the given rank,
// ascending. el itself is included when ranks match.
func (s *Space) SubelementsWithRank(el ElementID, rank int) []ElementID {
	seen := make(map[ElementID]bool)
	var walk func(ElementID)
	walk = func(e ElementID) {
		d := s.polytopes[e]
		if d.Rank == rank {
			seen[e] = true
			return
		}
		if d.Rank < rank {
			return
		}
		for id := range d.Boundary {
			walk(id)
		}
	}
	walk(el)
	out := make([]ElementID, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// LineEndpoints returns the two vertices of a rank-1 element.
func (s *Space) LineEndpoints(el ElementID) (VertexID, VertexID, error) {
	d := s.polytopes[el]
	if d.Rank != 1 {
		return 0, 0, ErrBadRank
	}
	vs := s.VertexSet(el)
	return vs[0], vs[1], nil
}

// GreatestCommonSubelements returns the common subelements of a and b
// not contained in any larger common subelement.
func (s *Space) GreatestCommonSubelements(a, b ElementID) []ElementID {
	common := make(map[ElementID]bool)
	inA := make(map[ElementID]bool)
	var walk func(ElementID, map[ElementID]bool)
	walk = func(e ElementID, set map[ElementID]bool) {
		if set[e] {
			return
		}
		set[e] = true
		for id := range s.polytopes[e].Boundary {
			walk(id, set)
		}
	}
	walk(a, inA)
	inB := make(map[ElementID]bool)
	walk(b, inB)
	for e := range inA {
		if inB[e] {
			common[e] = true
		}
	}

	// Drop anything contained in another common element.
	contained := make(map[ElementID]bool)
	for e := range common {
		for id := range s.polytopes[e].Boundary {
			sub := make(map[ElementID]bool)
			walk(id, sub)
			for c := range sub {
				contained[c] = true
			}
		}
	}
	out := make([]ElementID, 0, len(common))
	for e := range common {
		if !contained[e] {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DumpString renders every element grouped by rank, for debugging puzzle
// definitions.
func (s *Space) DumpString() string {
	var b strings.Builder
	for rank := 0; rank <= s.ndim; rank++ {
		for id, d := range s.polytopes {
			if d.Rank != rank {
				continue
			}
			if rank == 0 {
				fmt.Fprintf(&b, "#%d point %s\n", id, s.vertexPos[d.Vertex])
				continue
			}
			tag := ""
			if d.IsPrimordial {
				tag = " primordial"
			}
			fmt.Fprintf(&b, "#%d rank=%d%s boundary=%s\n", id, rank, tag, d.Boundary)
		}
	}
	return b.String()
}
