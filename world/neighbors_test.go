package world

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountsAlwaysWithinBounds(t *testing.T) {
	g, err := NewGrid(8, 6)
	require.NoError(t, err)
	g.Randomize(rand.New(rand.NewPCG(3, 0)))

	for _, topo := range []Topology{Bounded, Toroidal} {
		for _, n := range countNeighbors(g, topo) {
			require.GreaterOrEqual(t, n, 0)
			require.LessOrEqual(t, n, 8)
		}
	}
}

func TestBoundedEdgesHaveFewerNeighbors(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)
	g.Fill(1.0)

	counts := countBounded(g)
	require.Equal(t, 3, counts[g.Index(0, 0)], "corner sees 3")
	require.Equal(t, 5, counts[g.Index(1, 0)], "edge sees 5")
	require.Equal(t, 8, counts[g.Index(1, 1)], "center sees all 8")
}

func TestToroidalWrapsEdges(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)
	g.Fill(1.0)

	for _, n := range countToroidal(g) {
		require.Equal(t, 8, n, "every cell on a full torus sees 8")
	}
}

func TestToroidalSingleCellCountsItself(t *testing.T) {
	g, err := NewGrid(1, 1)
	require.NoError(t, err)
	g.Set(0, 0, 1.0)

	// Degenerate wrap-around: all 8 offsets land back on the cell.
	require.Equal(t, 8, countToroidal(g)[0])

	g.Set(0, 0, 0.0)
	require.Equal(t, 0, countToroidal(g)[0])
}

func TestFadingValuesCountAsDead(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)
	g.Set(0, 1, 0.999)
	g.Set(2, 1, 1.0)

	counts := countBounded(g)
	require.Equal(t, 1, counts[g.Index(1, 1)], "0.999 is dead for counting purposes")
}
