// Package telemetry aggregates per-generation cell statistics into
// windows and writes them out as CSV for offline analysis.
package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of generations.
type WindowStats struct {
	WindowStartGen int `csv:"-"`
	WindowEndGen   int `csv:"window_end"`

	// Cell census at window end
	Alive   int     `csv:"alive"`
	Fading  int     `csv:"fading"`
	Dead    int     `csv:"dead"`
	Density float64 `csv:"density"`

	// Events during window
	Births int `csv:"births"`
	Deaths int `csv:"deaths"`

	// Alive-count distribution across the window's generations
	AliveMean float64 `csv:"alive_mean"`
	AliveStd  float64 `csv:"alive_std"`

	// Step timing
	StepMicrosMean float64 `csv:"step_us_mean"`

	// Stasis flags at window end
	Stalemate   bool `csv:"stalemate"`
	Oscillating bool `csv:"oscillating"`
}

// LogWindow logs the window using slog.
func (s WindowStats) LogWindow() {
	slog.Info("telemetry window",
		"window_end", s.WindowEndGen,
		"alive", s.Alive,
		"fading", s.Fading,
		"density", s.Density,
		"births", s.Births,
		"deaths", s.Deaths,
		"alive_mean", s.AliveMean,
		"step_us_mean", s.StepMicrosMean,
	)
}

// seriesStats reduces a per-generation series to mean and standard
// deviation. A window of fewer than two generations has zero deviation.
func seriesStats(series []float64) (mean, std float64) {
	if len(series) == 0 {
		return 0, 0
	}
	mean = stat.Mean(series, nil)
	if len(series) > 1 {
		std = stat.StdDev(series, nil)
	}
	return mean, std
}
