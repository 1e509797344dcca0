package world

// Topology selects the adjacency rule for edge cells, fixed per World.
type Topology int

const (
	// Bounded treats offsets past an edge as absent: edge cells simply
	// have fewer neighbors.
	Bounded Topology = iota
	// Toroidal wraps offsets past an edge to the opposite edge.
	Toroidal
)

// countNeighbors computes, for every cell, the number of fully alive
// neighbors under the given topology. Fading values binarize to dead:
// only cells at exactly 1.0 count. Every entry is in [0, 8].
func countNeighbors(g *Grid, topo Topology) []int {
	if topo == Toroidal {
		return countToroidal(g)
	}
	return countBounded(g)
}

func countBounded(g *Grid) []int {
	w, h := g.W, g.H
	counts := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					if g.cells[ny*w+nx] >= 1.0 {
						n++
					}
				}
			}
			counts[y*w+x] = n
		}
	}
	return counts
}

// countToroidal wraps coordinates modulo the grid size. On a 1x1 grid
// every offset lands back on the cell itself, so a live cell counts 8
// neighbors; under B3/S23 it therefore dies.
func countToroidal(g *Grid) []int {
	w, h := g.W, g.H
	counts := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					if g.cells[ny*w+nx] >= 1.0 {
						n++
					}
				}
			}
			counts[y*w+x] = n
		}
	}
	return counts
}
