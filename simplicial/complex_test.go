package simplicial_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polytopal/hedra/geom"
	"github.com/polytopal/hedra/simplicial"
	"github.com/polytopal/hedra/space"
)

// carvedCube builds the box [-1,1]^ndim out of a primordial cube.
func carvedCube(t *testing.T, ndim int) (*space.Space, space.ElementID) {
	t.Helper()
	s, err := space.New(ndim)
	require.NoError(t, err)
	cube, err := s.AddPrimordialCube(4)
	require.NoError(t, err)

	pieces := []space.ElementID{cube}
	for ax := 0; ax < ndim; ax++ {
		for _, dir := range []float64{1, -1} {
			div, err := s.AddPlane(geom.Unit(ndim, ax).Scale(dir), 1)
			require.NoError(t, err)
			pieces, err = s.Carve(pieces, div)
			require.NoError(t, err)
		}
	}
	require.Len(t, pieces, 1)
	return s, pieces[0]
}

func TestSimplices_Square(t *testing.T) {
	s, square := carvedCube(t, 2)
	c := simplicial.NewComplex(s)

	simplices, err := c.Simplices(square)
	require.NoError(t, err)
	require.Len(t, simplices, 2, "a square triangulates into two triangles")
	for _, sx := range simplices {
		assert.Len(t, sx, 3)
	}

	// The cone apex is shared: both triangles contain the first vertex.
	apex := s.VertexSet(square)[0]
	for _, sx := range simplices {
		assert.Contains(t, sx, apex)
	}
}

func TestSimplices_Cube(t *testing.T) {
	s, cube := carvedCube(t, 3)
	c := simplicial.NewComplex(s)

	simplices, err := c.Simplices(cube)
	require.NoError(t, err)
	assert.Len(t, simplices, 6, "a cube cones into six tetrahedra")
	for _, sx := range simplices {
		assert.Len(t, sx, 4)
	}
}

func TestSimplices_EdgeAndVertex(t *testing.T) {
	s, square := carvedCube(t, 2)
	c := simplicial.NewComplex(s)

	edge := s.Boundary(square)[0].ID
	simplices, err := c.Simplices(edge)
	require.NoError(t, err)
	require.Len(t, simplices, 1)
	assert.Len(t, simplices[0], 2)

	v := s.VertexElement(s.VertexSet(square)[0])
	simplices, err = c.Simplices(v)
	require.NoError(t, err)
	require.Len(t, simplices, 1)
	assert.Len(t, simplices[0], 1)
}

func TestSimplices_PrimordialFacetIsInfinite(t *testing.T) {
	s, err := space.New(3)
	require.NoError(t, err)
	cube, err := s.AddPrimordialCube(4)
	require.NoError(t, err)

	c := simplicial.NewComplex(s)
	_, err = c.Simplices(cube)
	assert.ErrorIs(t, err, space.ErrInfiniteShape)
}

func TestTriangles_Cube(t *testing.T) {
	s, cube := carvedCube(t, 3)
	c := simplicial.NewComplex(s)

	tris, err := c.Triangles(cube)
	require.NoError(t, err)
	assert.Len(t, tris, 12, "six faces, two triangles each")

	edge := s.SubelementsWithRank(cube, 1)[0]
	_, err = c.Triangles(edge)
	assert.ErrorIs(t, err, space.ErrBadRank)
}

func TestCentroid_SymmetricCube(t *testing.T) {
	for _, ndim := range []int{1, 2, 3} {
		s, cube := carvedCube(t, ndim)
		c := simplicial.NewComplex(s)

		centroid, err := c.Centroid(cube)
		require.NoError(t, err, "ndim=%d", ndim)
		for ax := 0; ax < ndim; ax++ {
			assert.InDelta(t, 0, centroid.At(ax), 1e-9)
		}
	}
}

func TestCentroid_OffsetPiece(t *testing.T) {
	s, err := space.New(2)
	require.NoError(t, err)
	cube, err := s.AddPrimordialCube(4)
	require.NoError(t, err)

	// Slice the square [-1,1]^2 at x=0 and take both halves.
	pieces := []space.ElementID{cube}
	for _, carve := range []struct {
		normal geom.Vector
		dist   float64
	}{
		{geom.Vector{1, 0}, 1}, {geom.Vector{-1, 0}, 1},
		{geom.Vector{0, 1}, 1}, {geom.Vector{0, -1}, 1},
	} {
		div, err := s.AddPlane(carve.normal, carve.dist)
		require.NoError(t, err)
		pieces, err = s.Carve(pieces, div)
		require.NoError(t, err)
	}
	div, err := s.AddPlane(geom.Vector{1, 0}, 0)
	require.NoError(t, err)
	pieces, err = s.Slice(pieces, div)
	require.NoError(t, err)
	require.Len(t, pieces, 2)

	c := simplicial.NewComplex(s)
	var xs []float64
	for _, p := range pieces {
		centroid, err := c.Centroid(p)
		require.NoError(t, err)
		assert.InDelta(t, 0, centroid.At(1), 1e-9)
		xs = append(xs, centroid.At(0))
	}
	sort.Float64s(xs)
	assert.InDelta(t, -0.5, xs[0], 1e-9)
	assert.InDelta(t, 0.5, xs[1], 1e-9)

	// Both halves together balance at the origin again.
	combined, err := c.CombinedCentroid(pieces)
	require.NoError(t, err)
	assert.InDelta(t, 0, combined.At(0), 1e-9)
	assert.InDelta(t, 0, combined.At(1), 1e-9)
}

func TestCentroid_ZeroVolume(t *testing.T) {
	s, err := space.New(2)
	require.NoError(t, err)

	// A degenerate "polygon" of three collinear points has no area.
	a := s.VertexElement(s.AddVertex(geom.Vector{0, 0}))
	b := s.VertexElement(s.AddVertex(geom.Vector{1, 0}))
	cEl := s.VertexElement(s.AddVertex(geom.Vector{2, 0}))
	ab, err := s.AddPolytope(1, space.NewRefSet(space.Ref(a).Negate(), space.Ref(b)))
	require.NoError(t, err)
	bc, err := s.AddPolytope(1, space.NewRefSet(space.Ref(b).Negate(), space.Ref(cEl)))
	require.NoError(t, err)
	ca, err := s.AddPolytope(1, space.NewRefSet(space.Ref(cEl).Negate(), space.Ref(a)))
	require.NoError(t, err)
	flat, err := s.AddPolytope(2, space.NewRefSet(space.Ref(ab), space.Ref(bc), space.Ref(ca)))
	require.NoError(t, err)

	cx := simplicial.NewComplex(s)
	_, err = cx.Centroid(flat)
	assert.ErrorIs(t, err, simplicial.ErrZeroVolume)
}
