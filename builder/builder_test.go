package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstcluster/builder"
)

// TestMoons_Exact checks the noiseless layout of both arcs.
func TestMoons_Exact(t *testing.T) {
	ds, err := builder.Moons(4)
	require.NoError(t, err)
	require.Equal(t, 4, ds.Len())
	assert.Equal(t, 2, ds.Dim())
	assert.Equal(t, []int{0, 0, 1, 1}, ds.Labels)

	want := [][]float64{{1, 0}, {-1, 0}, {0, 0.5}, {2, 0.5}}
	for i, p := range ds.Points {
		assert.InDeltaSlice(t, want[i], p, 1e-12, "point %d", i)
	}
}

// TestMoons_OddCount gives the extra point to the outer moon.
func TestMoons_OddCount(t *testing.T) {
	ds, err := builder.Moons(5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 1, 1}, ds.Labels)

	// Outer points lie on the unit circle centred at the origin,
	// inner points on the unit circle centred at (1, 0.5).
	for i, p := range ds.Points {
		cx, cy := 0.0, 0.0
		if ds.Labels[i] == 1 {
			cx, cy = 1, 0.5
		}
		assert.InDelta(t, 1.0, math.Hypot(p[0]-cx, p[1]-cy), 1e-12)
	}
}

// TestMoons_Noise checks seeding and jitter.
func TestMoons_Noise(t *testing.T) {
	a, err := builder.Moons(200, builder.WithNoise(0.12), builder.WithSeed(1))
	require.NoError(t, err)
	b, err := builder.Moons(200, builder.WithNoise(0.12), builder.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must give the same dataset")

	c, err := builder.Moons(200, builder.WithNoise(0.12), builder.WithSeed(2))
	require.NoError(t, err)
	assert.NotEqual(t, a.Points, c.Points)

	exact, err := builder.Moons(200)
	require.NoError(t, err)
	assert.NotEqual(t, exact.Points, a.Points)
	assert.Equal(t, exact.Labels, a.Labels)
}

// TestMoons_Errors covers parameter validation.
func TestMoons_Errors(t *testing.T) {
	_, err := builder.Moons(1)
	assert.ErrorIs(t, err, builder.ErrTooFewPoints)

	_, err = builder.Moons(-3)
	assert.ErrorIs(t, err, builder.ErrTooFewPoints)

	_, err = builder.Moons(10, builder.WithNoise(0.1))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	// size is checked before the rng
	_, err = builder.Moons(0, builder.WithNoise(0.1))
	assert.ErrorIs(t, err, builder.ErrTooFewPoints)
}

// TestBlobs_NoSpread places every point exactly on its center.
func TestBlobs_NoSpread(t *testing.T) {
	centers := [][]float64{{0, 0}, {10, 10}, {-5, 3}}
	ds, err := builder.Blobs(7, centers, builder.WithSpread(0))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 0}, ds.Labels)
	for i, p := range ds.Points {
		assert.Equal(t, centers[ds.Labels[i]], p)
	}

	// points must not alias the centers
	ds.Points[0][0] = 99
	assert.Equal(t, 0.0, centers[0][0])
}

// TestBlobs_Spread checks the sample mean of each blob and seeding.
func TestBlobs_Spread(t *testing.T) {
	centers := [][]float64{{0, 0}, {8, -4}}
	ds, err := builder.Blobs(3000, centers, builder.WithSpread(0.5), builder.WithSeed(42))
	require.NoError(t, err)

	sum := make([][]float64, len(centers))
	cnt := make([]int, len(centers))
	for i := range sum {
		sum[i] = make([]float64, 2)
	}
	for i, p := range ds.Points {
		l := ds.Labels[i]
		sum[l][0] += p[0]
		sum[l][1] += p[1]
		cnt[l]++
	}
	for l, c := range centers {
		assert.Equal(t, 1500, cnt[l])
		assert.InDelta(t, c[0], sum[l][0]/float64(cnt[l]), 0.05)
		assert.InDelta(t, c[1], sum[l][1]/float64(cnt[l]), 0.05)
	}

	again, err := builder.Blobs(3000, centers, builder.WithSpread(0.5), builder.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, ds, again)
}

// TestBlobs_Errors covers parameter validation.
func TestBlobs_Errors(t *testing.T) {
	ok := [][]float64{{0, 0}}

	tests := []struct {
		name    string
		n       int
		centers [][]float64
		opts    []builder.BuilderOption
		want    error
	}{
		{"zero points", 0, ok, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewPoints},
		{"no centers", 5, nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrBadCenters},
		{"empty center", 5, [][]float64{{}}, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrBadCenters},
		{"ragged centers", 5, [][]float64{{0, 0}, {1}}, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrBadCenters},
		{"nan center", 5, [][]float64{{math.NaN(), 0}}, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrBadCenters},
		{"default spread needs rng", 5, ok, nil, builder.ErrNeedRandSource},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := builder.Blobs(tt.n, tt.centers, tt.opts...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
