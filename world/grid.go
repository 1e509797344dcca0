package world

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// aliveProbability is the chance a cell starts alive when a grid is
// randomized. The sparsity bias is deliberate: denser seeds collapse into
// noise within a few generations.
const aliveProbability = 0.25

// Grid is a dense row-major board of cell values in [0, 1]. 1.0 is fully
// alive, 0.0 fully dead, anything between is a fading corpse (only
// meaningful under fade rules).
type Grid struct {
	W, H  int
	cells []float64
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	return &Grid{W: w, H: h, cells: make([]float64, w*h)}, nil
}

// gridFromRows validates and copies externally supplied rows into a fresh
// grid. Rows must be rectangular with every value in [0, 1].
func gridFromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedGrid)
	}
	w := len(rows[0])
	g := &Grid{W: w, H: len(rows), cells: make([]float64, w*len(rows))}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, y, len(row), w)
		}
		for x, v := range row {
			if v < 0 || v > 1 {
				return nil, fmt.Errorf("%w: cell (%d,%d) value %v outside [0,1]", ErrMalformedGrid, x, y, v)
			}
			g.cells[y*w+x] = v
		}
	}
	return g, nil
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// At returns the cell value at (x, y).
func (g *Grid) At(x, y int) float64 { return g.cells[y*g.W+x] }

// Set writes the cell value at (x, y).
func (g *Grid) Set(x, y int, v float64) { g.cells[y*g.W+x] = v }

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []float64 { return g.cells }

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, cells: make([]float64, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// CopyFrom overwrites g with src, reusing the backing array when the
// dimensions already match.
func (g *Grid) CopyFrom(src *Grid) {
	if len(g.cells) != len(src.cells) {
		g.cells = make([]float64, len(src.cells))
	}
	g.W, g.H = src.W, src.H
	copy(g.cells, src.cells)
}

// Equal reports element-wise equality. Grids of different dimensions are
// never equal.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.W != o.W || g.H != o.H {
		return false
	}
	return floats.Equal(g.cells, o.cells)
}

// Fill sets every cell to v.
func (g *Grid) Fill(v float64) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Randomize assigns each cell 1.0 with probability aliveProbability and
// 0.0 otherwise, drawing from the provided source.
func (g *Grid) Randomize(rng *rand.Rand) {
	for i := range g.cells {
		if rng.Float64() < aliveProbability {
			g.cells[i] = 1.0
		} else {
			g.cells[i] = 0.0
		}
	}
}

// Extend grows the grid by one ring of dead cells on all four sides.
func (g *Grid) Extend() {
	w, h := g.W+2, g.H+2
	next := make([]float64, w*h)
	for y := 0; y < g.H; y++ {
		copy(next[(y+1)*w+1:(y+1)*w+1+g.W], g.cells[y*g.W:(y+1)*g.W])
	}
	g.W, g.H, g.cells = w, h, next
}

// Reduce strips the outermost ring on all sides. If either dimension is
// already below 3 the grid is left untouched so it can never degenerate.
func (g *Grid) Reduce() {
	if g.W < 3 || g.H < 3 {
		return
	}
	w, h := g.W-2, g.H-2
	next := make([]float64, w*h)
	for y := 0; y < h; y++ {
		copy(next[y*w:(y+1)*w], g.cells[(y+1)*g.W+1:(y+1)*g.W+1+w])
	}
	g.W, g.H, g.cells = w, h, next
}

// Rows exports the grid as freshly allocated numeric rows, one slice per
// grid row.
func (g *Grid) Rows() [][]float64 {
	rows := make([][]float64, g.H)
	for y := 0; y < g.H; y++ {
		row := make([]float64, g.W)
		copy(row, g.cells[y*g.W:(y+1)*g.W])
		rows[y] = row
	}
	return rows
}
