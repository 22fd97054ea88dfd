// Package cavegrid generates binary occupancy grids for cave maps using
// seeded random fill and cellular-automaton smoothing.
package cavegrid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is wrapped by every validation error in this package.
var ErrInvalidArgument = errors.New("invalid argument")

// Cell states.
const (
	Open uint8 = 0
	Wall uint8 = 1
)

// ASCII glyphs used by String and Parse.
const (
	WallGlyph = '#'
	OpenGlyph = '.'
)

// Grid is a width x height field of cell states indexed by (x, y).
type Grid struct {
	width  int
	height int
	cells  []uint8 // index x*height + y
}

// New creates an all-open grid. Negative dimensions are treated as zero.
func New(width, height int) *Grid {
	width = max(width, 0)
	height = max(height, 0)
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]uint8, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the state at (x, y). Out-of-bounds coordinates read as Wall.
func (g *Grid) At(x, y int) uint8 {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[x*g.height+y]
}

// IsWall reports whether (x, y) is a wall.
func (g *Grid) IsWall(x, y int) bool {
	return g.At(x, y) == Wall
}

// Set stores v at (x, y). Any non-zero v is stored as Wall.
// Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, v uint8) {
	if !g.InBounds(x, y) {
		return
	}
	if v != Open {
		v = Wall
	}
	g.cells[x*g.height+y] = v
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: make([]uint8, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same shape and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i, v := range g.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// WallCount returns the number of wall cells.
func (g *Grid) WallCount() int {
	n := 0
	for _, v := range g.cells {
		n += int(v)
	}
	return n
}

// String renders the grid with the highest row first, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := g.height - 1; y >= 0; y-- {
		for x := range g.width {
			if g.cells[x*g.height+y] == Wall {
				sb.WriteByte(WallGlyph)
			} else {
				sb.WriteByte(OpenGlyph)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse builds a grid from rows in the String layout: the first row is the
// highest y. All rows must have equal length.
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return New(0, 0), nil
	}
	width := len(rows[0])
	height := len(rows)
	g := New(width, height)
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidArgument, i, len(row), width)
		}
		y := height - 1 - i
		for x := 0; x < width; x++ {
			switch row[x] {
			case WallGlyph, '1':
				g.Set(x, y, Wall)
			case OpenGlyph, '0':
			default:
				return nil, fmt.Errorf("%w: unexpected glyph %q at row %d column %d", ErrInvalidArgument, row[x], i, x)
			}
		}
	}
	return g, nil
}

// MustParse is like Parse but panics on error.
func MustParse(rows ...string) *Grid {
	g, err := Parse(rows...)
	if err != nil {
		panic(err)
	}
	return g
}
