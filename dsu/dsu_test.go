package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstcluster/dsu"
)

func TestNew(t *testing.T) {
	ds, err := dsu.New(4)
	require.NoError(t, err)
	assert.Equal(t, 4, ds.Len())
	assert.Equal(t, 4, ds.Count())
	for v := 0; v < 4; v++ {
		r, err := ds.Find(v)
		require.NoError(t, err)
		assert.Equal(t, v, r, "fresh element must be its own root")
		sz, err := ds.SizeOf(v)
		require.NoError(t, err)
		assert.Equal(t, 1, sz)
	}

	empty, err := dsu.New(0)
	require.NoError(t, err)
	assert.Zero(t, empty.Count())
	assert.Empty(t, empty.Labels())

	_, err = dsu.New(-1)
	assert.ErrorIs(t, err, dsu.ErrBadSize)
}

func TestOutOfRange(t *testing.T) {
	ds, err := dsu.New(3)
	require.NoError(t, err)

	_, err = ds.Find(3)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
	_, err = ds.Find(-1)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)

	ok, err := ds.Union(0, 7)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
	assert.False(t, ok)
	assert.Equal(t, 3, ds.Count(), "failed union must not merge anything")

	_, err = ds.Connected(-2, 0)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
	_, err = ds.SizeOf(5)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
}

// TestUnion_CycleSignal checks the true/false contract Kruskal relies on.
func TestUnion_CycleSignal(t *testing.T) {
	ds, err := dsu.New(3)
	require.NoError(t, err)

	ok, err := ds.Union(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = ds.Union(1, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	// 0-2 would close the cycle 0-1-2.
	ok, err = ds.Union(0, 2)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = ds.Union(2, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, 1, ds.Count())
	sz, _ := ds.SizeOf(2)
	assert.Equal(t, 3, sz)
}

// TestUnion_BySizeAndTieBreak pins the attachment rule.
func TestUnion_BySizeAndTieBreak(t *testing.T) {
	ds, err := dsu.New(5)
	require.NoError(t, err)

	// Equal sizes: root of b goes under root of a.
	_, _ = ds.Union(3, 4)
	r, _ := ds.Find(4)
	assert.Equal(t, 3, r)

	// {3,4} is larger than {0}; the smaller side is attached under 3.
	_, _ = ds.Union(0, 3)
	r, _ = ds.Find(0)
	assert.Equal(t, 3, r)
	sz, _ := ds.SizeOf(0)
	assert.Equal(t, 3, sz)
}

func TestLabels(t *testing.T) {
	ds, err := dsu.New(6)
	require.NoError(t, err)
	_, _ = ds.Union(4, 1)
	_, _ = ds.Union(5, 3)
	_, _ = ds.Union(3, 0)

	// components: {0,3,5} {1,4} {2}; numbered by smallest element.
	assert.Equal(t, []int{0, 1, 2, 0, 1, 0}, ds.Labels())

	ds.Reset()
	assert.Equal(t, 6, ds.Count())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, ds.Labels())
}

// TestRandomAgainstNaive compares connectivity with a quadratic relabelling
// partition after every union, covering the union-find invariants:
// find(a)==find(b) iff a and b were unioned transitively, Count never increases,
// and repeated Find calls (path compression) never change the reported root.
func TestRandomAgainstNaive(t *testing.T) {
	const n = 60
	r := rand.New(rand.NewSource(7))

	ds, err := dsu.New(n)
	require.NoError(t, err)
	naive := make([]int, n) // naive[v] = component id
	for i := range naive {
		naive[i] = i
	}

	prevCount := ds.Count()
	for step := 0; step < 200; step++ {
		a, b := r.Intn(n), r.Intn(n)
		merged, err := ds.Union(a, b)
		require.NoError(t, err)

		assert.Equal(t, naive[a] != naive[b], merged, "step %d: union(%d,%d)", step, a, b)
		if naive[a] != naive[b] {
			from, to := naive[b], naive[a]
			for i := range naive {
				if naive[i] == from {
					naive[i] = to
				}
			}
		}

		assert.LessOrEqual(t, ds.Count(), prevCount)
		prevCount = ds.Count()

		x, y := r.Intn(n), r.Intn(n)
		rx1, _ := ds.Find(x)
		rx2, _ := ds.Find(x)
		assert.Equal(t, rx1, rx2, "find must be idempotent")
		conn, _ := ds.Connected(x, y)
		assert.Equal(t, naive[x] == naive[y], conn)
	}

	distinct := make(map[int]struct{})
	for _, c := range naive {
		distinct[c] = struct{}{}
	}
	assert.Equal(t, len(distinct), ds.Count())
}
