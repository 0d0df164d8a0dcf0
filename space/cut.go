// SPDX-License-Identifier: MIT

// Package space: the memoized cut engine.
// Cutting recurses bottom-up: vertices classify against the divider,
// edges split at crossings, and higher ranks assemble their pieces from
// their facets' pieces. Each Cut memoizes per-element outputs, and the
// Space caches vertex-set classifications per canonical manifold, so
// re-applying a cut (or an approximately identical divider) reuses every
// intermediate result.

package space

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/polytopal/hedra/geom"
)

// PolytopeFate says what happens to one side of a cut at the top level.
type PolytopeFate uint8

const (
	// Remove discards the pieces on that side.
	Remove PolytopeFate = iota
	// Keep retains them.
	Keep
)

// CutParams configures a cut: the oriented divider and the fate of each
// side.
type CutParams struct {
	Divider ManifoldRef
	Inside  PolytopeFate
	Outside PolytopeFate
}

// Cut is one application of a divider, carrying its parameters and the
// per-element output memo. A Cut must not outlive its Space.
type Cut struct {
	params  CutParams
	outputs map[ElementID]CutOutput
}

// NewCut builds a cut with explicit parameters.
func NewCut(params CutParams) *Cut {
	return &Cut{params: params, outputs: make(map[ElementID]CutOutput)}
}

// NewCarve keeps the inside and removes the outside.
func NewCarve(divider ManifoldRef) *Cut {
	return NewCut(CutParams{Divider: divider, Inside: Keep, Outside: Remove})
}

// NewSlice keeps both sides.
func NewSlice(divider ManifoldRef) *Cut {
	return NewCut(CutParams{Divider: divider, Inside: Keep, Outside: Keep})
}

// Params returns the cut's parameters.
func (c *Cut) Params() CutParams { return c.params }

// CutOutput is the result of cutting one element. Either Flush is set,
// or any of the piece references are. Intersection is set whenever both
// pieces are, and also when the element merely touches the divider with
// a whole facet (or, for edges, an endpoint).
type CutOutput struct {
	Flush        bool
	Inside       *ElementRef
	Outside      *ElementRef
	Intersection *ElementRef
}

// negate flips the orientation of every piece reference. Roles do not
// swap: a negated element is the same point set.
func (o CutOutput) negate() CutOutput {
	neg := func(r *ElementRef) *ElementRef {
		if r == nil {
			return nil
		}
		n := r.Negate()
		return &n
	}
	return CutOutput{
		Flush:        o.Flush,
		Inside:       neg(o.Inside),
		Outside:      neg(o.Outside),
		Intersection: neg(o.Intersection),
	}
}

// WhichSide summarizes where an element's vertices sit relative to a
// divider.
type WhichSide uint8

const (
	// WhichSideFlush: every vertex is on the divider.
	WhichSideFlush WhichSide = iota
	// WhichSideInside: no vertex is outside, at least one is inside.
	WhichSideInside
	// WhichSideOutside: no vertex is inside, at least one is outside.
	WhichSideOutside
	// WhichSideSplit: vertices on both sides.
	WhichSideSplit
)

// negate swaps inside and outside.
func (w WhichSide) negate() WhichSide {
	switch w {
	case WhichSideInside:
		return WhichSideOutside
	case WhichSideOutside:
		return WhichSideInside
	default:
		return w
	}
}

type sideSummary = WhichSide

// WhichSideHasElement classifies el's vertex set against the oriented
// divider. Classifications are cached per canonical manifold.
func (s *Space) WhichSideHasElement(divider ManifoldRef, el ElementID) WhichSide {
	sum := s.whichSideSummary(divider.ID, el)
	if divider.Sign == geom.Neg {
		sum = sum.negate()
	}
	return sum
}

func (s *Space) whichSideSummary(m ManifoldID, el ElementID) sideSummary {
	key := sideKey{manifold: m, element: el}
	if cached, ok := s.sides[key]; ok {
		return cached
	}
	manifold := s.manifolds[m]
	var anyIn, anyOut bool
	for _, v := range s.VertexSet(el) {
		switch manifold.Side(s.vertexPos[v]) {
		case geom.SideInside:
			anyIn = true
		case geom.SideOutside:
			anyOut = true
		}
	}
	var sum sideSummary
	switch {
	case anyIn && anyOut:
		sum = WhichSideSplit
	case anyIn:
		sum = WhichSideInside
	case anyOut:
		sum = WhichSideOutside
	default:
		sum = WhichSideFlush
	}
	s.sides[key] = sum
	return sum
}

// Carve cuts every piece by the divider and keeps the inside parts.
func (s *Space) Carve(pieces []ElementID, divider ManifoldRef) ([]ElementID, error) {
	return s.CutSet(pieces, NewCarve(divider))
}

// Slice cuts every piece by the divider and keeps both parts.
func (s *Space) Slice(pieces []ElementID, divider ManifoldRef) ([]ElementID, error) {
	return s.CutSet(pieces, NewSlice(divider))
}

// CutSet applies the cut to every piece, assembling the surviving pieces
// according to the cut's fates. A piece flush to the divider survives on
// neither side.
func (s *Space) CutSet(pieces []ElementID, cut *Cut) ([]ElementID, error) {
	out := make([]ElementID, 0, len(pieces))
	for _, el := range pieces {
		o, err := s.CutElement(el, cut)
		if err != nil {
			return nil, fmt.Errorf("cutting piece %d: %w", el, err)
		}
		if o.Inside != nil && cut.params.Inside == Keep {
			out = append(out, o.Inside.ID)
		}
		if o.Outside != nil && cut.params.Outside == Keep {
			out = append(out, o.Outside.ID)
		}
	}
	s.logger.Debug("cut applied",
		zap.Int("pieces_in", len(pieces)), zap.Int("pieces_out", len(out)))
	return out, nil
}

// CutElement cuts one element, memoizing the result in the Cut.
func (s *Space) CutElement(el ElementID, cut *Cut) (CutOutput, error) {
	if out, ok := cut.outputs[el]; ok {
		return out, nil
	}
	d := s.polytopes[el]
	divider := s.Manifold(cut.params.Divider)

	var out CutOutput
	var err error
	switch {
	case d.Rank == 0:
		out = s.cutVertex(el, d, divider)
	case d.Rank == 1:
		out, err = s.cutEdge(el, d, divider)
	default:
		out, err = s.cutPolytope(el, d, cut)
	}
	if err != nil {
		return CutOutput{}, err
	}
	cut.outputs[el] = out
	return out, nil
}

// cutRef cuts through a signed reference: the unsigned element's output
// with the reference's orientation folded in.
func (s *Space) cutRef(r ElementRef, cut *Cut) (CutOutput, error) {
	out, err := s.CutElement(r.ID, cut)
	if err != nil {
		return CutOutput{}, err
	}
	if r.Sign == geom.Neg {
		out = out.negate()
	}
	return out, nil
}

func (s *Space) cutVertex(el ElementID, d PolytopeData, divider geom.Manifold) CutOutput {
	r := Ref(el)
	switch divider.Side(s.vertexPos[d.Vertex]) {
	case geom.SideOn:
		return CutOutput{Flush: true}
	case geom.SideInside:
		return CutOutput{Inside: &r}
	default:
		return CutOutput{Outside: &r}
	}
}

func (s *Space) cutEdge(el ElementID, d PolytopeData, divider geom.Manifold) (CutOutput, error) {
	refs := d.Boundary.Sorted()
	aRef, bRef := refs[0], refs[1]
	pa := s.vertexPos[s.polytopes[aRef.ID].Vertex]
	pb := s.vertexPos[s.polytopes[bRef.ID].Vertex]
	sa, sb := divider.Side(pa), divider.Side(pb)
	crossings := divider.SegmentCrossings(pa, pb)
	elRef := Ref(el)

	// 1. Both endpoints on the divider: a flush edge, or (for a sphere) a
	// chord whose interior decides the side.
	if sa == geom.SideOn && sb == geom.SideOn {
		switch divider.Side(geom.Lerp(pa, pb, 0.5)) {
		case geom.SideOn:
			return CutOutput{Flush: true}, nil
		case geom.SideInside:
			return CutOutput{Inside: &elRef}, nil
		default:
			return CutOutput{Outside: &elRef}, nil
		}
	}

	// 2. One endpoint on the divider: the edge stays whole on the other
	// endpoint's side, contributing the touching vertex upward.
	if sa == geom.SideOn || sb == geom.SideOn {
		if len(crossings) > 0 {
			return CutOutput{}, fmt.Errorf("edge %d touches and crosses the divider: %w", el, ErrDegenerateCut)
		}
		onRef, otherSide := aRef, sb
		if sb == geom.SideOn {
			onRef, otherSide = bRef, sa
		}
		touch := Ref(onRef.ID)
		if otherSide == geom.SideInside {
			return CutOutput{Inside: &elRef, Intersection: &touch}, nil
		}
		return CutOutput{Outside: &elRef, Intersection: &touch}, nil
	}

	// 3. Both endpoints on one side. A sphere can still cross twice; that
	// would split the edge into three parts, which the arena cannot hold.
	if sa == sb {
		if len(crossings) > 0 {
			return CutOutput{}, fmt.Errorf("edge %d crosses the divider twice: %w", el, ErrDegenerateCut)
		}
		if sa == geom.SideInside {
			return CutOutput{Inside: &elRef}, nil
		}
		return CutOutput{Outside: &elRef}, nil
	}

	// 4. Endpoints on opposite sides: split at the single crossing.
	if len(crossings) != 1 {
		return CutOutput{}, fmt.Errorf("edge %d grazes the divider: %w", el, ErrDegenerateCut)
	}
	midV := s.AddVertex(geom.Lerp(pa, pb, crossings[0]))
	midEl := s.VertexElement(midV)

	inEnd, outEnd := aRef, bRef
	if sa == geom.SideOutside {
		inEnd, outEnd = bRef, aRef
	}
	insideEdge := s.internPolytope(PolytopeData{
		Rank:         1,
		Boundary:     NewRefSet(inEnd, ElementRef{ID: midEl, Sign: outEnd.Sign}),
		IsPrimordial: d.IsPrimordial,
		Seam:         d.Seam,
	})
	outsideEdge := s.internPolytope(PolytopeData{
		Rank:         1,
		Boundary:     NewRefSet(outEnd, ElementRef{ID: midEl, Sign: inEnd.Sign}),
		IsPrimordial: d.IsPrimordial,
		Seam:         d.Seam,
	})
	in, out, mid := Ref(insideEdge), Ref(outsideEdge), Ref(midEl)
	return CutOutput{Inside: &in, Outside: &out, Intersection: &mid}, nil
}

func (s *Space) cutPolytope(el ElementID, d PolytopeData, cut *Cut) (CutOutput, error) {
	var flushKids []ElementRef
	insideB := make(RefSet)
	outsideB := make(RefSet)
	interB := make(RefSet)

	for _, r := range d.Boundary.Sorted() {
		childOut, err := s.cutRef(r, cut)
		if err != nil {
			return CutOutput{}, err
		}
		if childOut.Flush {
			flushKids = append(flushKids, r)
			continue
		}
		if childOut.Inside != nil {
			insideB.Add(*childOut.Inside)
		}
		if childOut.Outside != nil {
			outsideB.Add(*childOut.Outside)
		}
		if childOut.Intersection != nil {
			interB.Add(*childOut.Intersection)
		}
	}

	// Several facets in one divider mean the element itself is flat on it.
	if len(flushKids) > 1 {
		return CutOutput{Flush: true}, nil
	}

	// The shared facet: an existing flush facet, or one assembled from the
	// children's intersections. Adding it to both sides with opposite
	// orientation is what makes a whole piece re-intern to itself.
	var out CutOutput
	if len(flushKids) == 1 {
		r := flushKids[0]
		if insideB.Len() == 0 && outsideB.Len() > 0 {
			insideB.Add(r.Negate())
			outsideB.Add(r)
		} else {
			insideB.Add(r)
			outsideB.Add(r.Negate())
		}
		out.Intersection = &flushKids[0]
	} else if insideB.Len() > 0 && outsideB.Len() > 0 {
		seam := cut.params.Divider
		facetID, ok := s.addIfNonDegenerate(d.Rank-1, interB, false, &seam)
		if !ok {
			return CutOutput{}, fmt.Errorf("element %d splits without a representable facet: %w", el, ErrDegenerateCut)
		}
		facetRef := Ref(facetID)
		insideB.Add(facetRef)
		outsideB.Add(facetRef.Negate())
		out.Intersection = &facetRef
	}

	if id, added := s.addIfNonDegenerate(d.Rank, insideB, d.IsPrimordial, d.Seam); added {
		r := Ref(id)
		out.Inside = &r
	}
	if id, added := s.addIfNonDegenerate(d.Rank, outsideB, d.IsPrimordial, d.Seam); added {
		r := Ref(id)
		out.Outside = &r
	}
	return out, nil
}
