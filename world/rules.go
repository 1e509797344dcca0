package world

// RuleMode selects the transition function applied each generation,
// fixed per World.
type RuleMode int

const (
	// Binary is classic B3/S23: cells are either 1.0 or 0.0.
	Binary RuleMode = iota
	// Fade is B3/S23 with gradual death: a dying cell drops to the
	// configured fade-start value and decays toward 0.0 every generation.
	Fade
)

// fadeEpsilon is the floor below which a decaying value snaps to exactly
// 0.0, guaranteeing every fade terminates instead of drifting in floating
// point.
const fadeEpsilon = 1e-5

// applyBinary writes the next generation into next. Pure with respect to
// cur: reads only cur and counts.
func applyBinary(cur *Grid, counts []int, next *Grid) {
	for i, v := range cur.cells {
		n := counts[i]
		alive := v >= 1.0
		if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
			next.cells[i] = 1.0
		} else {
			next.cells[i] = 0.0
		}
	}
}

// applyFade writes the next generation into next under fade rules. A live
// cell that loses survives at 1.0 or drops to fadeStart; a dead or fading
// cell with exactly 3 neighbors resurrects to 1.0 regardless of its
// current fade level, otherwise it decays by fadeRate.
func applyFade(cur *Grid, counts []int, next *Grid, fadeRate, fadeStart float64) {
	for i, v := range cur.cells {
		n := counts[i]
		switch {
		case v >= 1.0:
			if n == 2 || n == 3 {
				next.cells[i] = 1.0
			} else {
				next.cells[i] = fadeStart
			}
		case n == 3:
			next.cells[i] = 1.0
		default:
			nv := v - fadeRate
			if nv < fadeEpsilon {
				nv = 0.0
			}
			next.cells[i] = nv
		}
	}
}
