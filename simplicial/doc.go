// SPDX-License-Identifier: MIT

// Package simplicial decomposes polytopes into simplices for rendering
// and mass properties. A Complex wraps a space.Space and caches the
// triangulation of every element it is asked about: simplices via cone
// decomposition from an arbitrary apex, triangles for rank-2 surfaces,
// and volume-weighted centroids.
//
// Primordial elements have no finite triangulation; asking for one
// returns space.ErrInfiniteShape.
package simplicial
