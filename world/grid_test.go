package world

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGridRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		_, err := NewGrid(dims[0], dims[1])
		require.ErrorIs(t, err, ErrInvalidDimensions, "dims %v", dims)
	}
}

func TestGridFromRowsValidation(t *testing.T) {
	_, err := gridFromRows(nil)
	require.ErrorIs(t, err, ErrMalformedGrid)

	_, err = gridFromRows([][]float64{{0, 1}, {0}})
	require.ErrorIs(t, err, ErrMalformedGrid, "ragged rows")

	_, err = gridFromRows([][]float64{{0, 1.5}})
	require.ErrorIs(t, err, ErrMalformedGrid, "value above 1")

	_, err = gridFromRows([][]float64{{-0.1, 0}})
	require.ErrorIs(t, err, ErrMalformedGrid, "value below 0")

	g, err := gridFromRows([][]float64{{0, 1, 0.5}, {1, 0, 0}})
	require.NoError(t, err)
	require.Equal(t, 3, g.W)
	require.Equal(t, 2, g.H)
	require.Equal(t, 0.5, g.At(2, 0))
	require.Equal(t, 1.0, g.At(0, 1))
}

func TestExtendReduceRoundTrip(t *testing.T) {
	g, err := gridFromRows([][]float64{
		{1, 0, 1},
		{0, 1, 0},
	})
	require.NoError(t, err)
	orig := g.Clone()

	g.Extend()
	require.Equal(t, 5, g.W)
	require.Equal(t, 4, g.H)
	for x := 0; x < g.W; x++ {
		require.Zero(t, g.At(x, 0))
		require.Zero(t, g.At(x, g.H-1))
	}
	for y := 0; y < g.H; y++ {
		require.Zero(t, g.At(0, y))
		require.Zero(t, g.At(g.W-1, y))
	}
	require.Equal(t, 1.0, g.At(1, 1), "original content shifted by one")

	g.Reduce()
	require.True(t, g.Equal(orig), "reduce strips exactly the ring extend added")
}

func TestReduceBelowMinimumIsNoOp(t *testing.T) {
	g, err := gridFromRows([][]float64{
		{1, 0, 1, 0, 1},
		{0, 1, 0, 1, 0},
	})
	require.NoError(t, err)
	before := g.Clone()

	g.Reduce()
	require.True(t, g.Equal(before), "height 2 must not shrink")
}

func TestRandomizeIsSparseAndDeterministic(t *testing.T) {
	g, err := NewGrid(100, 100)
	require.NoError(t, err)
	g.Randomize(rand.New(rand.NewPCG(7, 0)))

	alive := 0
	for _, v := range g.Cells() {
		require.Contains(t, []float64{0.0, 1.0}, v)
		if v == 1.0 {
			alive++
		}
	}
	// 25% bias with generous slack.
	require.InDelta(t, 2500, alive, 500)

	h, err := NewGrid(100, 100)
	require.NoError(t, err)
	h.Randomize(rand.New(rand.NewPCG(7, 0)))
	require.True(t, g.Equal(h))
}

func TestRowsRoundTrip(t *testing.T) {
	g, err := gridFromRows([][]float64{{0.25, 1}, {0, 0.75}})
	require.NoError(t, err)

	back, err := gridFromRows(g.Rows())
	require.NoError(t, err)
	require.True(t, g.Equal(back))
}

func TestEqualRejectsDifferentDimensions(t *testing.T) {
	a, err := NewGrid(2, 3)
	require.NoError(t, err)
	b, err := NewGrid(3, 2)
	require.NoError(t, err)
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(nil))
	require.True(t, a.Equal(a.Clone()))
}
