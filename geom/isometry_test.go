package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polytopal/hedra/approx"
	"github.com/polytopal/hedra/geom"
)

func TestReflection_Involution(t *testing.T) {
	r, err := geom.Reflection(geom.Vector{1, 0, 0})
	require.NoError(t, err)

	assert.True(t, r.Transform(geom.Vector{1, 2, 3}).Eq(geom.Vector{-1, 2, 3}))
	assert.True(t, r.Compose(r).IsIdentity())

	_, err = geom.Reflection(geom.ZeroVector(3))
	assert.ErrorIs(t, err, geom.ErrZeroVector)
}

func TestReflection_ObliqueNormalIsOrthogonal(t *testing.T) {
	r, err := geom.Reflection(geom.Vector{1, 1})
	require.NoError(t, err)

	assert.True(t, r.Transform(geom.Vector{1, 0}).Eq(geom.Vector{0, -1}))
	assert.True(t, r.Compose(r.Inverse()).IsIdentity())
}

func TestRotation_QuarterTurn(t *testing.T) {
	rot, err := geom.Rotation(2, 0, 1, math.Pi/2)
	require.NoError(t, err)

	assert.True(t, rot.Transform(geom.Vector{1, 0}).Eq(geom.Vector{0, 1}))

	full := rot.Compose(rot).Compose(rot).Compose(rot)
	assert.True(t, full.IsIdentity())

	_, err = geom.Rotation(2, 1, 1, math.Pi)
	assert.ErrorIs(t, err, geom.ErrBadAxis)
	_, err = geom.Rotation(2, 0, 2, math.Pi)
	assert.ErrorIs(t, err, geom.ErrBadAxis)
}

func TestIsometry_DimensionExtension(t *testing.T) {
	rot, err := geom.Rotation(2, 0, 1, math.Pi/2)
	require.NoError(t, err)

	// Beyond its stored size an isometry acts as the identity.
	got := rot.Transform(geom.Vector{1, 0, 7})
	assert.True(t, got.Eq(geom.Vector{0, 1, 7}))
	assert.InDelta(t, 1.0, rot.At(5, 5), 1e-12)
	assert.True(t, rot.ToDim(4).Eq(rot))
}

func TestIsometry_TransformHyperplane(t *testing.T) {
	h, err := geom.NewHyperplane(geom.Vector{1, 0}, 2)
	require.NoError(t, err)
	rot, err := geom.Rotation(2, 0, 1, math.Pi/2)
	require.NoError(t, err)

	moved := rot.TransformHyperplane(h)
	assert.True(t, moved.Normal().Eq(geom.Vector{0, 1}))
	assert.InDelta(t, 2.0, moved.Distance(), 1e-12)
}

func TestIsometry_TransformManifold_Sphere(t *testing.T) {
	s, err := geom.NewSphere(geom.Vector{1, 0}, 1.5)
	require.NoError(t, err)
	rot, err := geom.Rotation(2, 0, 1, math.Pi/2)
	require.NoError(t, err)

	moved := rot.TransformManifold(geom.SphereManifold(s))
	assert.True(t, moved.Sphere.Center().Eq(geom.Vector{0, 1}))
	assert.InDelta(t, 1.5, moved.Sphere.Radius(), 1e-12)
}

func TestIsometry_HashIgnoresEmbeddingDim(t *testing.T) {
	rot, err := geom.Rotation(2, 0, 1, math.Pi/3)
	require.NoError(t, err)

	s := approx.NewSet[geom.Isometry]()
	assert.True(t, s.Add(rot))
	assert.False(t, s.Add(rot.ToDim(5)), "embedding dimension is not identity-relevant")
	assert.True(t, s.Add(geom.Identity(2)))
	assert.False(t, s.Add(geom.Identity(7)))
}
