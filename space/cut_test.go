package space_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polytopal/hedra/geom"
	"github.com/polytopal/hedra/space"
)

// carveCube shaves a primordial cube of radius 4 down to [-1,1]^ndim with
// one carve per cube face.
func carveCube(t *testing.T, ndim int) (*space.Space, []space.ElementID) {
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
	return s, pieces
}

// assertCubical checks the recursive facet counts of an axis-aligned box:
// a rank-r element has 2r facets all the way down.
func assertCubical(t *testing.T, s *space.Space, el space.ElementID) {
	t.Helper()
	rank := s.Rank(el)
	if rank == 0 {
		return
	}
	boundary := s.Boundary(el)
	require.Len(t, boundary, 2*rank, "rank %d element %d", rank, el)
	for _, facet := range boundary {
		assertCubical(t, s, facet.ID)
	}
}

func TestCarve_CubeFromPrimordial(t *testing.T) {
	for _, ndim := range []int{1, 2, 3, 4} {
		s, pieces := carveCube(t, ndim)
		require.Len(t, pieces, 1, "ndim=%d", ndim)
		assertCubical(t, s, pieces[0])
		assert.NoError(t, s.EnsureBounded(pieces))
	}
}

func TestSlice_ProducesGridOfPieces(t *testing.T) {
	for _, ndim := range []int{1, 2, 3} {
		s, pieces := carveCube(t, ndim)
		for ax := 0; ax < ndim; ax++ {
			for _, d := range []float64{0.3, -0.3} {
				div, err := s.AddPlane(geom.Unit(ndim, ax), d)
				require.NoError(t, err)
				pieces, err = s.Slice(pieces, div)
				require.NoError(t, err)
			}
		}
		want := 1
		for i := 0; i < ndim; i++ {
			want *= 3
		}
		assert.Len(t, pieces, want, "ndim=%d", ndim)
		assert.NoError(t, s.EnsureBounded(pieces))
	}
}

func TestCarve_SameDividerIsIdempotent(t *testing.T) {
	s, err := space.New(2)
	require.NoError(t, err)
	cube, err := s.AddPrimordialCube(4)
	require.NoError(t, err)

	div, err := s.AddPlane(geom.Vector{1, 0}, 1)
	require.NoError(t, err)
	pieces, err := s.Carve([]space.ElementID{cube}, div)
	require.NoError(t, err)
	require.Len(t, pieces, 1)

	count := s.ElementCount()

	again, err := s.Carve(pieces, div)
	require.NoError(t, err)
	assert.Equal(t, pieces, again, "re-carving may not change the piece")
	assert.Equal(t, count, s.ElementCount(), "re-carving may not mint elements")

	// A divider within tolerance interns to the same canonical manifold
	// and behaves identically.
	nearby, err := s.AddPlane(geom.Vector{1, 0}, 1+1e-12)
	require.NoError(t, err)
	assert.Equal(t, div, nearby)
	again, err = s.Carve(pieces, nearby)
	require.NoError(t, err)
	assert.Equal(t, pieces, again)
	assert.Equal(t, count, s.ElementCount())
}

func TestCarve_InvertedDividerRemovesEverything(t *testing.T) {
	s, err := space.New(2)
	require.NoError(t, err)
	cube, err := s.AddPrimordialCube(4)
	require.NoError(t, err)

	div, err := s.AddPlane(geom.Vector{1, 0}, 1)
	require.NoError(t, err)
	pieces, err := s.Carve([]space.ElementID{cube}, div)
	require.NoError(t, err)

	empty, err := s.Carve(pieces, div.Negate())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCutElement_FlushElement(t *testing.T) {
	s, err := space.New(2)
	require.NoError(t, err)
	cube, err := s.AddPrimordialCube(1)
	require.NoError(t, err)

	div, err := s.AddPlane(geom.Vector{1, 0}, 1)
	require.NoError(t, err)

	var flushFacet space.ElementID
	var found bool
	for _, facet := range s.Boundary(cube) {
		if s.WhichSideHasElement(div, facet.ID) == space.WhichSideFlush {
			flushFacet, found = facet.ID, true
		}
	}
	require.True(t, found, "no facet flush to x=1")
	out, err := s.CutElement(flushFacet, space.NewCarve(div))
	require.NoError(t, err)
	assert.True(t, out.Flush)

	// A flush piece survives on neither side of the cut.
	kept, err := s.Carve([]space.ElementID{flushFacet}, div)
	require.NoError(t, err)
	assert.Empty(t, kept)
}

func TestCarve_CornerSphere2D(t *testing.T) {
	s, err := space.New(2)
	require.NoError(t, err)
	cube, err := s.AddPrimordialCube(2)
	require.NoError(t, err)

	// Inverted sphere at the corner: keep everything farther than 1 from
	// (2,2). The sphere meets the cube's edges exactly at (1,2) and (2,1).
	div, err := s.AddSphere(geom.Vector{2, 2}, -1)
	require.NoError(t, err)
	pieces, err := s.Carve([]space.ElementID{cube}, div)
	require.NoError(t, err)
	require.Len(t, pieces, 1)

	piece := pieces[0]
	assert.Len(t, s.Boundary(piece), 5)
	assert.Len(t, s.VertexSet(piece), 5)

	// The freshly minted facet is the chord between the crossing points,
	// stamped with the divider as its seam.
	var seamed int
	for _, facet := range s.Boundary(piece) {
		if seam, ok := s.Seam(facet.ID); ok {
			seamed++
			assert.Equal(t, div, seam)
		}
	}
	assert.Equal(t, 1, seamed)

	count := s.ElementCount()
	again, err := s.Carve(pieces, div)
	require.NoError(t, err)
	assert.Equal(t, pieces, again)
	assert.Equal(t, count, s.ElementCount())

	empty, err := s.Carve(pieces, div.Negate())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCarve_CornerSphere3D(t *testing.T) {
	s, err := space.New(3)
	require.NoError(t, err)
	cube, err := s.AddPrimordialCube(2)
	require.NoError(t, err)

	div, err := s.AddSphere(geom.Vector{2, 2, 2}, -1)
	require.NoError(t, err)
	pieces, err := s.Carve([]space.ElementID{cube}, div)
	require.NoError(t, err)
	require.Len(t, pieces, 1)

	piece := pieces[0]
	// Three whole faces, three five-sided faces, and the flush triangle.
	require.Len(t, s.Boundary(piece), 7)
	assert.Len(t, s.VertexSet(piece), 10)

	var triangle space.ElementID
	var found bool
	for _, facet := range s.Boundary(piece) {
		if _, ok := s.Seam(facet.ID); ok {
			triangle, found = facet.ID, true
		}
	}
	require.True(t, found, "no seamed facet on the carved piece")
	assert.Len(t, s.Boundary(triangle), 3)
	assert.NoError(t, s.CheckElement(triangle))
	assert.NoError(t, s.CheckElement(piece))

	count := s.ElementCount()
	again, err := s.Carve(pieces, div)
	require.NoError(t, err)
	assert.Equal(t, pieces, again)
	assert.Equal(t, count, s.ElementCount())
}

func TestCarve_NullShapeVanishes1D(t *testing.T) {
	s, err := space.New(1)
	require.NoError(t, err)
	seg, err := s.AddPrimordialCube(2)
	require.NoError(t, err)

	pieces := []space.ElementID{seg}
	for _, ball := range []struct {
		center float64
		radius float64
	}{
		{1, 1.5},
		{-1, 1.5},
	} {
		div, err := s.AddSphere(geom.Vector{ball.center}, ball.radius)
		require.NoError(t, err)
		pieces, err = s.Carve(pieces, div)
		require.NoError(t, err)
		require.Len(t, pieces, 1)
	}

	// The survivor is [-0.5, 0.5]; removing the ball of radius 1.15
	// around the origin leaves nothing.
	div, err := s.AddSphere(geom.Vector{0}, -1.15)
	require.NoError(t, err)
	pieces, err = s.Carve(pieces, div)
	require.NoError(t, err)
	assert.Empty(t, pieces)
}

func TestCarve_DoubleCrossingIsDegenerate(t *testing.T) {
	s, err := space.New(1)
	require.NoError(t, err)
	seg, err := s.AddPrimordialCube(2)
	require.NoError(t, err)

	// A ball strictly inside the segment crosses it twice: the vertex
	// model cannot represent the three resulting parts.
	div, err := s.AddSphere(geom.Vector{0}, 1)
	require.NoError(t, err)
	_, err = s.Carve([]space.ElementID{seg}, div)
	assert.ErrorIs(t, err, space.ErrDegenerateCut)
}

func TestCutSet_HonorsFates(t *testing.T) {
	s, err := space.New(2)
	require.NoError(t, err)
	cube, err := s.AddPrimordialCube(4)
	require.NoError(t, err)

	div, err := s.AddPlane(geom.Vector{0, 1}, 0)
	require.NoError(t, err)

	keepOutside := space.NewCut(space.CutParams{
		Divider: div,
		Inside:  space.Remove,
		Outside: space.Keep,
	})
	pieces, err := s.CutSet([]space.ElementID{cube}, keepOutside)
	require.NoError(t, err)
	require.Len(t, pieces, 1)
	assert.Equal(t, space.WhichSideOutside, s.WhichSideHasElement(div, pieces[0]))

	sliced, err := s.Slice([]space.ElementID{cube}, div)
	require.NoError(t, err)
	assert.Len(t, sliced, 2)
}

func TestCut_SharedFacetHasOppositeSigns(t *testing.T) {
	s, err := space.New(2)
	require.NoError(t, err)
	cube, err := s.AddPrimordialCube(4)
	require.NoError(t, err)

	div, err := s.AddPlane(geom.Vector{1, 0}, 0)
	require.NoError(t, err)
	out, err := s.CutElement(cube, space.NewSlice(div))
	require.NoError(t, err)
	require.NotNil(t, out.Inside)
	require.NotNil(t, out.Outside)
	require.NotNil(t, out.Intersection)

	facet := out.Intersection.ID
	inB := s.Data(out.Inside.ID).Boundary
	outB := s.Data(out.Outside.ID).Boundary
	require.True(t, inB.Has(facet))
	require.True(t, outB.Has(facet))
	assert.Equal(t, inB[facet], outB[facet].Negate(),
		"the shared facet faces opposite ways in the two pieces")
}
