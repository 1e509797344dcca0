package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(2)

	c.Observe(1, []float64{1, 0, 0, 0.5}, 100*time.Microsecond)
	require.False(t, c.ShouldFlush(1))

	// One death at index 0, one birth at index 1, the fading cell expires.
	c.Observe(2, []float64{0, 1, 0, 0}, 300*time.Microsecond)
	require.True(t, c.ShouldFlush(2))

	stats := c.Flush(2, false, true)
	require.Equal(t, 0, stats.WindowStartGen)
	require.Equal(t, 2, stats.WindowEndGen)
	require.Equal(t, 1, stats.Alive)
	require.Equal(t, 0, stats.Fading)
	require.Equal(t, 3, stats.Dead)
	require.Equal(t, 1, stats.Births)
	require.Equal(t, 1, stats.Deaths)
	require.InDelta(t, 1.0, stats.AliveMean, 1e-9)
	require.InDelta(t, 0.0, stats.AliveStd, 1e-9)
	require.InDelta(t, 0.25, stats.Density, 1e-9)
	require.InDelta(t, 200, stats.StepMicrosMean, 1e-9)
	require.False(t, stats.Stalemate)
	require.True(t, stats.Oscillating)

	// The next window starts fresh.
	require.False(t, c.ShouldFlush(3))
	c.Observe(3, []float64{0, 1, 0, 0}, 0)
	c.Observe(4, []float64{0, 1, 0, 0}, 0)
	stats = c.Flush(4, true, false)
	require.Equal(t, 2, stats.WindowStartGen)
	require.Zero(t, stats.Births)
	require.Zero(t, stats.Deaths)
	require.True(t, stats.Stalemate)
}

func TestCollectorCountsFading(t *testing.T) {
	c := NewCollector(1)
	c.Observe(1, []float64{1, 0.5, 0.01, 0}, 0)
	stats := c.Flush(1, false, false)
	require.Equal(t, 1, stats.Alive)
	require.Equal(t, 2, stats.Fading)
	require.Equal(t, 1, stats.Dead)
}

func TestCollectorResizeResetsDiff(t *testing.T) {
	c := NewCollector(1)
	c.Observe(1, []float64{1, 1}, 0)
	c.Flush(1, false, false)

	// A resize between observations changes the cell count; the birth and
	// death diff must not fire against the stale snapshot.
	c.Observe(2, []float64{1, 1, 1, 1, 0, 0}, 0)
	stats := c.Flush(2, false, false)
	require.Zero(t, stats.Births)
	require.Zero(t, stats.Deaths)
	require.Equal(t, 4, stats.Alive)
}
