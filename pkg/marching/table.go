package marching

// Configuration is the 4-bit corner code of a square:
// 8*topLeft + 4*topRight + 2*bottomRight + 1*bottomLeft.
type Configuration uint8

// Corner bits.
const (
	BitBottomLeft  Configuration = 1 << 0
	BitBottomRight Configuration = 1 << 1
	BitTopRight    Configuration = 1 << 2
	BitTopLeft     Configuration = 1 << 3
)

// Saddle configurations. Both resolve to a single connected 6-point polygon.
const (
	SaddleBottomLeftTopRight Configuration = 5
	SaddleTopLeftBottomRight Configuration = 10
)

// Point lists per configuration, ordered around the perimeter for fan
// triangulation from the first point.
var configurationRoles = [16][]Role{
	0:  nil,
	1:  {CenterBottom, BottomLeft, CenterLeft},
	2:  {CenterRight, BottomRight, CenterBottom},
	3:  {CenterRight, BottomRight, BottomLeft, CenterLeft},
	4:  {CenterTop, TopRight, CenterRight},
	5:  {CenterTop, TopRight, CenterRight, CenterBottom, BottomLeft, CenterLeft},
	6:  {CenterTop, TopRight, BottomRight, CenterBottom},
	7:  {CenterTop, TopRight, BottomRight, BottomLeft, CenterLeft},
	8:  {TopLeft, CenterTop, CenterLeft},
	9:  {TopLeft, CenterTop, CenterBottom, BottomLeft},
	10: {TopLeft, CenterTop, CenterRight, BottomRight, CenterBottom, CenterLeft},
	11: {TopLeft, CenterTop, CenterRight, BottomRight, BottomLeft},
	12: {TopLeft, TopRight, CenterRight, CenterLeft},
	13: {TopLeft, TopRight, CenterRight, CenterBottom, BottomLeft},
	14: {TopLeft, TopRight, BottomRight, CenterBottom, CenterLeft},
	15: {TopLeft, TopRight, BottomRight, BottomLeft},
}

// NewConfiguration packs four corner states.
func NewConfiguration(topLeft, topRight, bottomRight, bottomLeft bool) Configuration {
	var c Configuration
	if topLeft {
		c |= BitTopLeft
	}
	if topRight {
		c |= BitTopRight
	}
	if bottomRight {
		c |= BitBottomRight
	}
	if bottomLeft {
		c |= BitBottomLeft
	}
	return c
}

// Roles returns the perimeter point list. The slice must not be modified.
func (c Configuration) Roles() []Role {
	return configurationRoles[c&0xF]
}

// PointCount returns the number of perimeter points emitted.
func (c Configuration) PointCount() int {
	return len(c.Roles())
}

// TriangleCount returns the number of fan triangles emitted.
func (c Configuration) TriangleCount() int {
	return max(0, c.PointCount()-2)
}

// IsSaddle reports whether only diagonally opposite corners are active.
func (c Configuration) IsSaddle() bool {
	return c == SaddleBottomLeftTopRight || c == SaddleTopLeftBottomRight
}
