package approx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polytopal/hedra/approx"
)

// pair is a minimal Hashable for container tests.
type pair [2]float64

func (p pair) AppendHash(b *approx.KeyBuilder) {
	for i, x := range p {
		b.WriteSparse(i, x)
	}
}

func TestEq_WithinEpsilon(t *testing.T) {
	assert.True(t, approx.Eq(1.0, 1.0+approx.Epsilon/2))
	assert.True(t, approx.Eq(1.0, 1.0-approx.Epsilon/2))
	assert.False(t, approx.Eq(1.0, 1.0+2*approx.Epsilon))
}

func TestZero_Nonzero(t *testing.T) {
	assert.True(t, approx.Zero(approx.Epsilon/2))
	assert.True(t, approx.Zero(-approx.Epsilon/2))
	assert.False(t, approx.Zero(2*approx.Epsilon))
	assert.True(t, approx.Nonzero(2*approx.Epsilon))
	assert.False(t, approx.Nonzero(0))
}

func TestCmp_ToleratesNearTies(t *testing.T) {
	assert.Equal(t, 0, approx.Cmp(3.0, 3.0+approx.Epsilon/4))
	assert.Equal(t, -1, approx.Cmp(1.0, 2.0))
	assert.Equal(t, 1, approx.Cmp(2.0, 1.0))
}

func TestInterner_ReusesBucketWithinEpsilon(t *testing.T) {
	var in approx.Interner

	t0 := in.Token(1.0)
	t1 := in.Token(1.0 + approx.Epsilon/2)
	t2 := in.Token(5.0)

	assert.Equal(t, t0, t1, "values within epsilon share a bucket")
	assert.NotEqual(t, t0, t2)
	assert.Equal(t, 2, in.Len())
}

func TestInterner_BucketingIsOrderDependent(t *testing.T) {
	// Chain 0, 0.9eps, 1.8eps: adjacent values are within epsilon but the
	// ends are not. Bucketing the ends first splits the chain; bucketing
	// the middle first merges it. Both outcomes are correct.
	a, b, c := 0.0, 0.9*approx.Epsilon, 1.8*approx.Epsilon

	var fwd approx.Interner
	fwd.Token(a)
	fwd.Token(b)
	fwd.Token(c)
	assert.Equal(t, 2, fwd.Len())

	var mid approx.Interner
	mid.Token(b)
	mid.Token(a)
	mid.Token(c)
	assert.Equal(t, 1, mid.Len())
}

func TestMap_ApproximateKeysCollapse(t *testing.T) {
	m := approx.NewMap[pair, string]()

	_, replaced := m.Set(pair{1, 2}, "first")
	require.False(t, replaced)

	// A key within epsilon of an existing one hits the same entry.
	got, ok := m.Get(pair{1 + approx.Epsilon/2, 2})
	require.True(t, ok)
	assert.Equal(t, "first", got)

	prev, replaced := m.Set(pair{1, 2 - approx.Epsilon/2}, "second")
	assert.True(t, replaced)
	assert.Equal(t, "first", prev)
	assert.Equal(t, 1, m.Len())
}

func TestMap_SparseEncodingIgnoresNearZero(t *testing.T) {
	m := approx.NewMap[pair, int]()
	m.Set(pair{3, 0}, 7)

	got, ok := m.Get(pair{3, approx.Epsilon / 10})
	require.True(t, ok)
	assert.Equal(t, 7, got)
}

func TestMap_GetOrInsert(t *testing.T) {
	m := approx.NewMap[pair, int]()

	v, present := m.GetOrInsert(pair{1, 1}, 10)
	assert.False(t, present)
	assert.Equal(t, 10, v)

	v, present = m.GetOrInsert(pair{1, 1}, 20)
	assert.True(t, present)
	assert.Equal(t, 10, v)
}

func TestSet_AddDeduplicates(t *testing.T) {
	s := approx.NewSet[pair]()

	assert.True(t, s.Add(pair{0.5, -0.5}))
	assert.False(t, s.Add(pair{0.5 + approx.Epsilon/3, -0.5}))
	assert.True(t, s.Add(pair{0.5, 0.5}))
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(pair{0.5, -0.5}))
	assert.False(t, s.Contains(pair{9, 9}))
}
