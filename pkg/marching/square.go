package marching

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cavegen/pkg/cavegrid"
)

// ErrInvalidCellSize is returned for a non-positive or non-finite cell size.
var ErrInvalidCellSize = fmt.Errorf("%w: cell size must be positive", cavegrid.ErrInvalidArgument)

// Field is a binary occupancy source. *cavegrid.Grid implements it.
type Field interface {
	Width() int
	Height() int
	IsWall(x, y int) bool
}

// Square is one cell of the dual grid formed by four control nodes.
type Square struct {
	X, Y          int
	Nodes         [roleCount]NodeID
	Configuration Configuration
}

// Node returns the arena id for role r.
func (s *Square) Node(r Role) NodeID {
	return s.Nodes[r]
}

// SquareGrid holds the node arena, control nodes and squares for one field.
type SquareGrid struct {
	CellSize float32
	NodesX   int // control nodes along X
	NodesY   int // control nodes along Y

	Nodes    []Node        // arena, 3 entries per control node
	Controls []ControlNode // index x*NodesY + y
	Squares  []Square      // raster order: x varies fastest
}

// NewSquareGrid samples field into control nodes centred on the origin and
// links every 2x2 block into a Square. Fields narrower than 2 in either
// axis produce no squares.
func NewSquareGrid(field Field, cellSize float32) (*SquareGrid, error) {
	if !(cellSize > 0) || math.IsInf(float64(cellSize), 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidCellSize, cellSize)
	}

	nx := max(field.Width(), 0)
	ny := max(field.Height(), 0)
	sg := &SquareGrid{
		CellSize: cellSize,
		NodesX:   nx,
		NodesY:   ny,
		Nodes:    make([]Node, 0, nx*ny*3),
		Controls: make([]ControlNode, 0, nx*ny),
	}

	mapWidth := float32(nx) * cellSize
	mapHeight := float32(ny) * cellSize
	half := cellSize / 2

	for x := range nx {
		for y := range ny {
			pos := mgl32.Vec3{
				-mapWidth/2 + float32(x)*cellSize + half,
				0,
				-mapHeight/2 + float32(y)*cellSize + half,
			}
			id := NodeID(len(sg.Nodes))
			sg.Nodes = append(sg.Nodes,
				Node{Position: pos},
				Node{Position: pos.Add(mgl32.Vec3{0, 0, half})},
				Node{Position: pos.Add(mgl32.Vec3{half, 0, 0})},
			)
			sg.Controls = append(sg.Controls, ControlNode{
				ID:     id,
				Active: field.IsWall(x, y),
				Above:  id + 1,
				Right:  id + 2,
			})
		}
	}

	if nx < 2 || ny < 2 {
		return sg, nil
	}

	sg.Squares = make([]Square, 0, (nx-1)*(ny-1))
	for y := 0; y < ny-1; y++ {
		for x := 0; x < nx-1; x++ {
			sg.Squares = append(sg.Squares, sg.newSquare(x, y))
		}
	}
	return sg, nil
}

// Control returns the control node at (x, y).
func (sg *SquareGrid) Control(x, y int) *ControlNode {
	return &sg.Controls[x*sg.NodesY+y]
}

// SquaresX returns the number of squares along X.
func (sg *SquareGrid) SquaresX() int {
	return max(sg.NodesX-1, 0)
}

// SquaresY returns the number of squares along Y.
func (sg *SquareGrid) SquaresY() int {
	return max(sg.NodesY-1, 0)
}

// Square returns the square whose bottom-left control node is (x, y).
func (sg *SquareGrid) Square(x, y int) *Square {
	return &sg.Squares[y*sg.SquaresX()+x]
}

// Position returns the world position of a node.
func (sg *SquareGrid) Position(id NodeID) mgl32.Vec3 {
	return sg.Nodes[id].Position
}

func (sg *SquareGrid) newSquare(x, y int) Square {
	tl := sg.Control(x, y+1)
	tr := sg.Control(x+1, y+1)
	br := sg.Control(x+1, y)
	bl := sg.Control(x, y)

	s := Square{X: x, Y: y}
	s.Nodes[TopLeft] = tl.ID
	s.Nodes[TopRight] = tr.ID
	s.Nodes[BottomRight] = br.ID
	s.Nodes[BottomLeft] = bl.ID
	// Midpoints are borrowed from the owning control nodes so neighbouring
	// squares reference the same arena entries.
	s.Nodes[CenterTop] = tl.Right
	s.Nodes[CenterRight] = br.Above
	s.Nodes[CenterBottom] = bl.Right
	s.Nodes[CenterLeft] = bl.Above
	s.Configuration = NewConfiguration(tl.Active, tr.Active, br.Active, bl.Active)
	return s
}
