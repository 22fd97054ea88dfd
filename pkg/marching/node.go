// Package marching converts binary occupancy fields into triangle meshes
// with marching squares. Squares share edge midpoint nodes so each physical
// position contributes exactly one vertex.
package marching

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// NodeID indexes a node in a SquareGrid's arena.
type NodeID int32

// Node is a point that may become a mesh vertex.
type Node struct {
	Position mgl32.Vec3
}

// ControlNode is a corner sample. It owns the midpoints toward its
// neighbour above (+Z) and to its right (+X).
type ControlNode struct {
	ID     NodeID
	Active bool
	Above  NodeID
	Right  NodeID
}

// Role names a node's place on a square's perimeter.
type Role uint8

// Square perimeter roles.
const (
	TopLeft Role = iota
	TopRight
	BottomRight
	BottomLeft
	CenterTop
	CenterRight
	CenterBottom
	CenterLeft
	roleCount
)

var roleNames = [roleCount]string{
	"TopLeft", "TopRight", "BottomRight", "BottomLeft",
	"CenterTop", "CenterRight", "CenterBottom", "CenterLeft",
}

// String returns the role name.
func (r Role) String() string {
	if r < roleCount {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", r)
}

// IsCorner reports whether r is one of the four control-node corners.
func (r Role) IsCorner() bool {
	return r <= BottomLeft
}
