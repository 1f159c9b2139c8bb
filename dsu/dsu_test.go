package dsu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/borderpath/dsu"
)

// TestAdd_SequentialIDs verifies ids start at 0 and grow by one per call,
// including past the initial capacity.
func TestAdd_SequentialIDs(t *testing.T) {
	d := dsu.New(2)
	for want := 0; want < 10; want++ {
		assert.Equal(t, want, d.Add())
	}
	assert.Equal(t, 10, d.Len())

	// every element starts as its own root
	for x := 0; x < 10; x++ {
		root, err := d.Find(x)
		require.NoError(t, err)
		assert.Equal(t, x, root)
	}
}

// TestZeroValue checks that a DisjointSet needs no constructor.
func TestZeroValue(t *testing.T) {
	var d dsu.DisjointSet
	a, b := d.Add(), d.Add()
	require.NoError(t, d.Union(a, b))

	ok, err := d.Connected(a, b)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestFind_OutOfRange rejects ids that were never added.
func TestFind_OutOfRange(t *testing.T) {
	d := dsu.New(0)
	d.Add()

	_, err := d.Find(1)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
	_, err = d.Find(-1)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
	assert.ErrorIs(t, d.Union(0, 5), dsu.ErrOutOfRange)
	assert.ErrorIs(t, d.Union(7, 0), dsu.ErrOutOfRange)
	_, err = d.Connected(0, 3)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
}

// TestUnion_Transitive merges two chains and checks membership across them.
func TestUnion_Transitive(t *testing.T) {
	d := dsu.New(6)
	for i := 0; i < 6; i++ {
		d.Add()
	}
	// {0,1,2} and {3,4,5}
	require.NoError(t, d.Union(0, 1))
	require.NoError(t, d.Union(1, 2))
	require.NoError(t, d.Union(3, 4))
	require.NoError(t, d.Union(4, 5))

	same, _ := d.Connected(0, 2)
	assert.True(t, same)
	same, _ = d.Connected(2, 3)
	assert.False(t, same)

	// bridge the two groups
	require.NoError(t, d.Union(2, 5))
	for x := 1; x < 6; x++ {
		same, err := d.Connected(0, x)
		require.NoError(t, err)
		assert.True(t, same, "0 and %d should share a set", x)
	}
}

// TestUnion_Idempotent calls Union repeatedly on the same pair.
func TestUnion_Idempotent(t *testing.T) {
	d := dsu.New(0)
	a, b := d.Add(), d.Add()
	require.NoError(t, d.Union(a, b))
	before := d.Snapshot()
	require.NoError(t, d.Union(b, a))
	require.NoError(t, d.Union(a, a))
	assert.Equal(t, before, d.Snapshot())
}

// TestSnapshot_RootsPerElement checks the snapshot agrees with Find.
func TestSnapshot_RootsPerElement(t *testing.T) {
	d := dsu.New(0)
	for i := 0; i < 7; i++ {
		d.Add()
	}
	_ = d.Union(0, 3)
	_ = d.Union(3, 6)
	_ = d.Union(1, 2)

	roots := d.Snapshot()
	require.Len(t, roots, 7)
	for x, r := range roots {
		want, err := d.Find(x)
		require.NoError(t, err)
		assert.Equal(t, want, r, "element %d", x)
	}
	assert.Equal(t, roots[0], roots[6])
	assert.Equal(t, roots[1], roots[2])
	assert.NotEqual(t, roots[0], roots[1])
	assert.Equal(t, 5, roots[5]) // untouched singleton
}

// TestSnapshot_Empty returns an empty, non-nil slice.
func TestSnapshot_Empty(t *testing.T) {
	d := dsu.New(0)
	roots := d.Snapshot()
	assert.NotNil(t, roots)
	assert.Empty(t, roots)
}
