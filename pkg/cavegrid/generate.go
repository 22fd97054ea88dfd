package cavegrid

import (
	"fmt"
	"math/rand/v2"
)

// MaxWallThreshold is the largest meaningful smoothing threshold (8 neighbours).
const MaxWallThreshold = 8

// pcgStream is the second PCG word; the first comes from the seed.
const pcgStream = 0x9e3779b97f4a7c15

// Generate fills a new width x height grid. Border cells are always walls;
// every interior cell becomes a wall when a uniform draw in [0,100) is below
// fillPercent. Identical arguments always yield identical grids.
func Generate(width, height, fillPercent int, seed int64) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: grid size %dx%d must be positive", ErrInvalidArgument, width, height)
	}
	if fillPercent < 0 || fillPercent > 100 {
		return nil, fmt.Errorf("%w: fill percent %d outside [0,100]", ErrInvalidArgument, fillPercent)
	}

	rng := rand.New(rand.NewPCG(uint64(seed), pcgStream))
	g := New(width, height)

	for x := range width {
		for y := range height {
			if x == 0 || x == width-1 || y == 0 || y == height-1 {
				g.cells[x*height+y] = Wall
				continue
			}
			if rng.IntN(100) < fillPercent {
				g.cells[x*height+y] = Wall
			}
		}
	}
	return g, nil
}

// SurroundingWallCount counts walls among the 8 neighbours of (x, y).
// Neighbours outside the grid count as walls.
func (g *Grid) SurroundingWallCount(x, y int) int {
	count := 0
	for nx := x - 1; nx <= x+1; nx++ {
		for ny := y - 1; ny <= y+1; ny++ {
			if nx == x && ny == y {
				continue
			}
			count += int(g.At(nx, ny))
		}
	}
	return count
}

// Smooth runs iterations synchronous cellular-automaton passes and returns
// the result; src is not modified. A cell with more than threshold wall
// neighbours becomes a wall, fewer becomes open, exactly threshold is kept.
func Smooth(src *Grid, threshold, iterations int) (*Grid, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalidArgument)
	}
	if threshold < 0 || threshold > MaxWallThreshold {
		return nil, fmt.Errorf("%w: wall threshold %d outside [0,%d]", ErrInvalidArgument, threshold, MaxWallThreshold)
	}
	if iterations < 0 {
		return nil, fmt.Errorf("%w: negative smoothing iterations %d", ErrInvalidArgument, iterations)
	}

	cur := src.Clone()
	next := New(src.width, src.height)
	for range iterations {
		cur.step(next, threshold)
		cur, next = next, cur
	}
	return cur, nil
}

// step writes one smoothing pass of g into dst, which must have g's shape.
func (g *Grid) step(dst *Grid, threshold int) {
	for x := range g.width {
		for y := range g.height {
			i := x*g.height + y
			n := g.SurroundingWallCount(x, y)
			switch {
			case n > threshold:
				dst.cells[i] = Wall
			case n < threshold:
				dst.cells[i] = Open
			default:
				dst.cells[i] = g.cells[i]
			}
		}
	}
}
