package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutputManagerWritesStats(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	require.NoError(t, err)

	require.NoError(t, om.WriteStats(WindowStats{WindowEndGen: 10, Alive: 3}))
	require.NoError(t, om.WriteStats(WindowStats{WindowEndGen: 20, Alive: 2}))
	require.NoError(t, om.Close())

	data, err := os.ReadFile(filepath.Join(dir, "stats.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3, "header plus two records")
	require.Contains(t, lines[0], "window_end")
	require.Contains(t, lines[1], "10")
}

func TestNilOutputManagerIsDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	require.NoError(t, err)
	require.Nil(t, om)

	// All methods are safe on the disabled manager.
	require.NoError(t, om.WriteStats(WindowStats{}))
	require.NoError(t, om.WriteConfig(nil))
	require.Empty(t, om.Dir())
	require.NoError(t, om.Close())
}
