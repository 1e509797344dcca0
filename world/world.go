// Package world implements the simulation engine: the grid buffer, the
// bounded and toroidal neighbor counters, the binary and fading rule
// engines, and the lifecycle controller tying them together. The engine is
// single-threaded and performs no I/O; pacing, persistence and rendering
// belong to external drivers.
package world

import (
	"fmt"
	"math/rand/v2"
)

// RandomSeed requests a fresh random seed at construction time. The
// resolved value is retained for reporting and persistence.
const RandomSeed int64 = -1

// maxGeneratedSeed bounds freshly drawn seeds so they stay short enough
// to read back from logs and save files.
const maxGeneratedSeed = 1 << 16

// Config carries everything needed to construct a World. All fields are
// validated up front; a World never exists in an invalid configuration.
type Config struct {
	Width    int
	Height   int
	Seed     int64
	Topology Topology
	Rules    RuleMode

	// FadeRate is subtracted from a decaying cell every generation.
	// FadeStart is the value a freshly dead cell is set to. Both are
	// only validated (and only matter) under Fade rules.
	FadeRate  float64
	FadeStart float64
}

// Validate checks dimensions and fade parameters.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.Rules == Fade {
		if c.FadeRate <= 0 {
			return fmt.Errorf("%w: fade rate %v must be > 0", ErrInvalidConfig, c.FadeRate)
		}
		if c.FadeStart <= 0 || c.FadeStart > 1 {
			return fmt.Errorf("%w: fade start %v outside (0,1]", ErrInvalidConfig, c.FadeStart)
		}
	}
	return nil
}

// PopulateMode names a grid reinitialization strategy.
type PopulateMode string

const (
	// ModeSeed redraws the grid deterministically from the stored seed.
	ModeSeed PopulateMode = "seed"
	// ModeRandom redraws the grid from a fresh, unrelated source.
	ModeRandom PopulateMode = "random"
	// ModeAlive sets every cell to 1.0.
	ModeAlive PopulateMode = "alive"
	// ModeDead sets every cell to 0.0.
	ModeDead PopulateMode = "dead"
	// ModeKill drops every live cell to the fade-start value and leaves
	// the rest untouched.
	ModeKill PopulateMode = "kill"
)

// ParsePopulateMode resolves a mode name. The all- prefixed spellings used
// by config files are accepted as aliases.
func ParsePopulateMode(s string) (PopulateMode, error) {
	switch s {
	case "seed":
		return ModeSeed, nil
	case "random":
		return ModeRandom, nil
	case "alive", "all-alive":
		return ModeAlive, nil
	case "dead", "all-dead":
		return ModeDead, nil
	case "kill":
		return ModeKill, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// World is the lifecycle controller. It exclusively owns the current grid
// and the two prior-generation snapshots used for stasis detection; the
// snapshots rotate every step and are never used for rollback.
type World struct {
	cfg        Config
	seed       int64
	generation int

	grid    *Grid
	backOne *Grid // one generation back
	backTwo *Grid // two generations back
	next    *Grid // scratch target for rule application
}

// New constructs a World, resolves the seed, and populates the grid
// deterministically from it.
func New(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == RandomSeed {
		seed = rand.Int64N(maxGeneratedSeed)
	}
	w := &World{cfg: cfg, seed: seed}
	var err error
	if w.grid, err = NewGrid(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	w.backOne = w.grid.Clone()
	w.backTwo = w.grid.Clone()
	w.next = w.grid.Clone()
	if err := w.Populate(ModeSeed); err != nil {
		return nil, err
	}
	return w, nil
}

// Seed returns the resolved seed.
func (w *World) Seed() int64 { return w.seed }

// Generation returns the number of steps taken so far.
func (w *World) Generation() int { return w.generation }

// Grid exposes the current grid for reading. Callers must not mutate it
// concurrently with Step.
func (w *World) Grid() *Grid { return w.grid }

// Width returns the current grid width.
func (w *World) Width() int { return w.grid.W }

// Height returns the current grid height.
func (w *World) Height() int { return w.grid.H }

// Config returns the construction configuration. Dimensions reflect the
// original construction values; resize operations change only the grid.
func (w *World) Config() Config { return w.cfg }

// Populate reinitializes the grid in place according to mode. An unknown
// mode fails without touching the grid.
func (w *World) Populate(mode PopulateMode) error {
	switch mode {
	case ModeSeed:
		w.grid.Randomize(rand.New(rand.NewPCG(uint64(w.seed), 0)))
	case ModeRandom:
		w.grid.Randomize(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	case ModeAlive:
		w.grid.Fill(1.0)
	case ModeDead:
		w.grid.Fill(0.0)
	case ModeKill:
		for i, v := range w.grid.cells {
			if v >= 1.0 {
				w.grid.cells[i] = w.cfg.FadeStart
			}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	return nil
}

// Step advances the simulation one generation: it increments the counter,
// rotates the snapshots, counts neighbors over the current grid, applies
// the rule engine into the scratch buffer, and swaps it in. The current
// grid is never observable half-updated.
func (w *World) Step() {
	w.generation++

	// Rotate: two-back inherits one-back's storage, one-back copies the
	// grid as it is about to be replaced.
	w.backOne, w.backTwo = w.backTwo, w.backOne
	w.backOne.CopyFrom(w.grid)

	counts := countNeighbors(w.grid, w.cfg.Topology)
	if len(w.next.cells) != len(w.grid.cells) {
		w.next.CopyFrom(w.grid)
	}
	w.next.W, w.next.H = w.grid.W, w.grid.H
	switch w.cfg.Rules {
	case Fade:
		applyFade(w.grid, counts, w.next, w.cfg.FadeRate, w.cfg.FadeStart)
	default:
		applyBinary(w.grid, counts, w.next)
	}
	w.grid, w.next = w.next, w.grid
}

// IsStalemate reports whether the grid is identical to the previous
// generation: a fixed point, total extinction included.
func (w *World) IsStalemate() bool {
	return w.grid.Equal(w.backOne)
}

// IsOscillating reports whether the grid matches the generation two steps
// back while differing from the previous one: a true period-2 cycle.
// Stalemates are excluded so they are never double-reported.
func (w *World) IsOscillating() bool {
	return w.grid.Equal(w.backTwo) && !w.grid.Equal(w.backOne)
}

// Extend grows the grid by one dead ring on all sides. Consumers caching
// geometry derived from the dimensions must recompute it afterwards.
func (w *World) Extend() { w.grid.Extend() }

// Reduce strips the outermost ring on all sides; a no-op below 3 cells in
// either dimension.
func (w *World) Reduce() { w.grid.Reduce() }

// Load replaces the grid with externally supplied rows, adopting their
// dimensions. On validation failure the current grid is left untouched.
// The snapshots reset, so stasis checks restart from the new state.
func (w *World) Load(rows [][]float64) error {
	g, err := gridFromRows(rows)
	if err != nil {
		return err
	}
	w.grid = g
	w.backOne = g.Clone()
	w.backOne.Fill(0.0)
	w.backTwo = w.backOne.Clone()
	w.next = w.backOne.Clone()
	return nil
}

// Restore is Load plus the seed and generation counter carried by a save
// file, so a saved run resumes exactly where it stopped. A negative seed
// keeps the current one.
func (w *World) Restore(rows [][]float64, seed int64, generation int) error {
	if err := w.Load(rows); err != nil {
		return err
	}
	if seed >= 0 {
		w.seed = seed
	}
	if generation >= 0 {
		w.generation = generation
	}
	return nil
}

// Rows exports the grid as numeric rows for an external codec.
func (w *World) Rows() [][]float64 { return w.grid.Rows() }
