package telemetry

import "time"

// Collector accumulates per-generation observations within windows and
// produces WindowStats. It keeps its own copy of the previous grid state
// to derive birth and death counts, so the engine stays observation-free.
type Collector struct {
	windowGens int

	windowStart int
	aliveSeries []float64
	stepMicros  []float64
	births      int
	deaths      int

	// Census of the most recent observation
	alive  int
	fading int
	dead   int

	prev []float64
}

// NewCollector creates a collector flushing every windowGens generations.
func NewCollector(windowGens int) *Collector {
	if windowGens < 1 {
		windowGens = 1
	}
	return &Collector{windowGens: windowGens}
}

// Observe records one generation: a census of cells plus births and
// deaths relative to the previously observed state. cells is read, never
// retained.
func (c *Collector) Observe(generation int, cells []float64, stepTime time.Duration) {
	c.alive, c.fading, c.dead = 0, 0, 0
	for _, v := range cells {
		switch {
		case v >= 1.0:
			c.alive++
		case v > 0.0:
			c.fading++
		default:
			c.dead++
		}
	}

	// Births/deaths only make sense against a same-sized previous state;
	// a resize between observations resets the comparison.
	if len(c.prev) == len(cells) {
		for i, v := range cells {
			switch {
			case v >= 1.0 && c.prev[i] < 1.0:
				c.births++
			case v < 1.0 && c.prev[i] >= 1.0:
				c.deaths++
			}
		}
	} else {
		c.prev = make([]float64, len(cells))
	}
	copy(c.prev, cells)

	c.aliveSeries = append(c.aliveSeries, float64(c.alive))
	c.stepMicros = append(c.stepMicros, float64(stepTime.Microseconds()))
}

// ShouldFlush reports whether the current window is complete.
func (c *Collector) ShouldFlush(generation int) bool {
	return generation-c.windowStart >= c.windowGens
}

// Flush produces the stats for the finished window and starts a new one.
func (c *Collector) Flush(generation int, stalemate, oscillating bool) WindowStats {
	aliveMean, aliveStd := seriesStats(c.aliveSeries)
	stepMean, _ := seriesStats(c.stepMicros)

	total := c.alive + c.fading + c.dead
	density := 0.0
	if total > 0 {
		density = float64(c.alive) / float64(total)
	}

	stats := WindowStats{
		WindowStartGen: c.windowStart,
		WindowEndGen:   generation,
		Alive:          c.alive,
		Fading:         c.fading,
		Dead:           c.dead,
		Density:        density,
		Births:         c.births,
		Deaths:         c.deaths,
		AliveMean:      aliveMean,
		AliveStd:       aliveStd,
		StepMicrosMean: stepMean,
		Stalemate:      stalemate,
		Oscillating:    oscillating,
	}

	c.windowStart = generation
	c.aliveSeries = c.aliveSeries[:0]
	c.stepMicros = c.stepMicros[:0]
	c.births = 0
	c.deaths = 0

	return stats
}
