// SPDX-License-Identifier: MIT

// Package group: group actions on reference point sets.
// An Action tabulates how every group element permutes a fixed list of
// points. Subgroups are membership bitmasks over the parent group, grown
// by closure from a generating set; stabilizers and per-point deorbiters
// are derived from the table.

package group

import (
	"github.com/polytopal/hedra/approx"
	"github.com/polytopal/hedra/geom"
)

// RefPoint indexes a point in an Action's reference point list.
type RefPoint uint16

// Action is a finite group acting on a finite point set by permutation.
type Action struct {
	group  *IsometryGroup
	points []geom.Vector
	table  []RefPoint // table[e*len(points)+p] is the image of p under e
}

// NewAction tabulates the action of g on points. Every element must
// permute the set: ErrBadAction otherwise (including duplicate points,
// which make the permutation ambiguous).
func NewAction(g *IsometryGroup, points []geom.Vector) (*Action, error) {
	index := approx.NewMap[geom.Vector, RefPoint]()
	for i, p := range points {
		if _, dup := index.GetOrInsert(p, RefPoint(i)); dup {
			return nil, ErrBadAction
		}
	}

	table := make([]RefPoint, g.ElementCount()*len(points))
	for e := 0; e < g.ElementCount(); e++ {
		iso := g.Element(ElementID(e))
		for p := range points {
			moved := iso.Transform(points[p])
			id, ok := index.Get(moved)
			if !ok {
				return nil, ErrBadAction
			}
			table[e*len(points)+p] = id
		}
	}
	return &Action{group: g, points: points, table: table}, nil
}

// Group returns the acting group.
func (a *Action) Group() *IsometryGroup { return a.group }

// PointCount reports the size of the reference point set.
func (a *Action) PointCount() int { return len(a.points) }

// Point returns a reference point's coordinates.
func (a *Action) Point(p RefPoint) geom.Vector { return a.points[p] }

// Act returns the image of p under e.
func (a *Action) Act(e ElementID, p RefPoint) RefPoint {
	return a.table[int(e)*len(a.points)+int(p)]
}

// Subgroup is a subgroup of one IsometryGroup, stored as a generating set
// plus a membership bitmask over the parent's elements.
type Subgroup struct {
	group *IsometryGroup
	gens  []ElementID
	mask  []uint64
	count int
}

// NewSubgroup closes the generating set inside g.
func NewSubgroup(g *IsometryGroup, generating []ElementID) Subgroup {
	s := Subgroup{group: g, mask: make([]uint64, (g.ElementCount()+63)/64)}
	s.insert(Identity)
	worklist := []ElementID{Identity}
	for len(worklist) > 0 {
		e := worklist[0]
		worklist = worklist[1:]
		for _, gen := range generating {
			next := g.Compose(e, gen)
			if !s.Contains(next) {
				s.insert(next)
				worklist = append(worklist, next)
			}
		}
	}
	s.gens = append([]ElementID(nil), generating...)
	return s
}

func (s *Subgroup) insert(e ElementID) {
	s.mask[e/64] |= 1 << (e % 64)
	s.count++
}

// Contains reports membership of e.
func (s Subgroup) Contains(e ElementID) bool {
	return s.mask[e/64]&(1<<(e%64)) != 0
}

// ElementCount reports the subgroup's order.
func (s Subgroup) ElementCount() int { return s.count }

// GeneratingSet returns the generating set the subgroup was built from.
func (s Subgroup) GeneratingSet() []ElementID { return s.gens }

// Elements returns the members in ascending ID order.
func (s Subgroup) Elements() []ElementID {
	out := make([]ElementID, 0, s.count)
	for e := 0; e < s.group.ElementCount(); e++ {
		if s.Contains(ElementID(e)) {
			out = append(out, ElementID(e))
		}
	}
	return out
}

// PointwiseStabilizer returns the subgroup fixing every listed point
// individually. Each element is tested against each fixed point.
func (a *Action) PointwiseStabilizer(fixed []RefPoint) Subgroup {
	s := Subgroup{group: a.group, mask: make([]uint64, (a.group.ElementCount()+63)/64)}
	for e := 0; e < a.group.ElementCount(); e++ {
		stays := true
		for _, p := range fixed {
			if a.Act(ElementID(e), p) != p {
				stays = false
				break
			}
		}
		if stays {
			s.insert(ElementID(e))
			if ElementID(e) != Identity {
				s.gens = append(s.gens, ElementID(e))
			}
		}
	}
	return s
}

// PointOrbit locates one point inside its subgroup orbit: the canonical
// representative and the deorbiter, the subgroup element mapping the
// point back onto the representative.
type PointOrbit struct {
	Representative RefPoint
	Deorbiter      ElementID
}

// SubgroupOrbits partitions an Action's points into orbits of a subgroup.
type SubgroupOrbits struct {
	orbits []PointOrbit
}

// Orbits computes the orbit partition of the reference points under sub.
// The representative of each orbit is its lowest-indexed point.
func (a *Action) Orbits(sub Subgroup) SubgroupOrbits {
	orbits := make([]PointOrbit, len(a.points))
	assigned := make([]bool, len(a.points))
	for p := range a.points {
		if assigned[p] {
			continue
		}
		// p is the representative of a fresh orbit.
		for _, e := range sub.Elements() {
			q := a.Act(e, RefPoint(p))
			if !assigned[q] {
				assigned[q] = true
				orbits[q] = PointOrbit{
					Representative: RefPoint(p),
					Deorbiter:      a.group.Inverse(e),
				}
			}
		}
	}
	return SubgroupOrbits{orbits: orbits}
}

// Of returns the orbit record of point p.
func (so SubgroupOrbits) Of(p RefPoint) PointOrbit { return so.orbits[p] }
