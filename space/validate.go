// SPDX-License-Identifier: MIT

package space

import "fmt"

// CheckElement verifies an element's boundary structure. Ranks must step
// down by exactly one, every ridge (a facet's facet) must be shared by an
// even number of facets, and a polygon's vertices by exactly two edges.
// Strict-mode spaces run this on every intern.
func (s *Space) CheckElement(el ElementID) error {
	d := s.polytopes[el]
	switch d.Rank {
	case 0:
		return nil
	case 1:
		if d.Boundary.Len() != 2 {
			return fmt.Errorf("edge %d has %d endpoints: %w", el, d.Boundary.Len(), ErrBadBoundary)
		}
		return nil
	}

	ridgeCount := make(map[ElementID]int)
	for facet := range d.Boundary {
		if s.polytopes[facet].Rank != d.Rank-1 {
			return fmt.Errorf("element %d (rank %d) has facet %d of rank %d: %w",
				el, d.Rank, facet, s.polytopes[facet].Rank, ErrBadRank)
		}
		for ridge := range s.polytopes[facet].Boundary {
			ridgeCount[ridge]++
		}
	}
	for ridge, n := range ridgeCount {
		if d.Rank == 2 {
			if n != 2 {
				return fmt.Errorf("polygon %d has vertex %d on %d edges: %w",
					el, ridge, n, ErrBadBoundary)
			}
			continue
		}
		if n%2 != 0 {
			return fmt.Errorf("element %d has ridge %d covered %d times: %w",
				el, ridge, n, ErrBadBoundary)
		}
	}
	return nil
}
