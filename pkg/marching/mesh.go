package marching

import (
	"github.com/go-gl/mathgl/mgl32"
)

// unassigned marks a node that has not been emitted as a vertex yet.
const unassigned = -1

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Size returns Max - Min.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Mesh is an indexed triangle list. Every 3 consecutive entries of
// Triangles form one triangle.
type Mesh struct {
	Vertices  []mgl32.Vec3
	Triangles []uint32
	Bounds    Bounds
}

// VertexCount returns the number of unique vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles) / 3
}

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.Triangles) == 0
}

// GenerateMesh triangulates field with marching squares. cellSize is the
// world-space spacing between samples. The field is only read.
func GenerateMesh(field Field, cellSize float32) (*Mesh, error) {
	sg, err := NewSquareGrid(field, cellSize)
	if err != nil {
		return nil, err
	}
	return sg.Triangulate(), nil
}

// Triangulate builds the mesh for every square in raster order.
// Calling it again yields an identical, independent mesh.
func (sg *SquareGrid) Triangulate() *Mesh {
	b := meshBuilder{
		sg:          sg,
		vertexIndex: make([]int32, len(sg.Nodes)),
		mesh:        &Mesh{},
	}
	for i := range b.vertexIndex {
		b.vertexIndex[i] = unassigned
	}

	var points [6]NodeID
	for i := range sg.Squares {
		s := &sg.Squares[i]
		roles := s.Configuration.Roles()
		for j, r := range roles {
			points[j] = s.Nodes[r]
		}
		b.fan(points[:len(roles)])
	}

	b.mesh.Bounds = computeBounds(b.mesh.Vertices)
	return b.mesh
}

type meshBuilder struct {
	sg          *SquareGrid
	vertexIndex []int32
	mesh        *Mesh
}

// fan emits (p0,p1,p2), (p0,p2,p3), ... for an ordered point list.
func (b *meshBuilder) fan(points []NodeID) {
	for i := 2; i < len(points); i++ {
		b.triangle(points[0], points[i-1], points[i])
	}
}

func (b *meshBuilder) triangle(a, c, d NodeID) {
	b.mesh.Triangles = append(b.mesh.Triangles, b.vertex(a), b.vertex(c), b.vertex(d))
}

// vertex returns the mesh index of id, appending it on first use.
func (b *meshBuilder) vertex(id NodeID) uint32 {
	if idx := b.vertexIndex[id]; idx != unassigned {
		return uint32(idx)
	}
	idx := int32(len(b.mesh.Vertices))
	b.vertexIndex[id] = idx
	b.mesh.Vertices = append(b.mesh.Vertices, b.sg.Nodes[id].Position)
	return uint32(idx)
}

func computeBounds(vertices []mgl32.Vec3) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}
	bounds := Bounds{Min: vertices[0], Max: vertices[0]}
	for _, v := range vertices[1:] {
		for i := range 3 {
			bounds.Min[i] = min(bounds.Min[i], v[i])
			bounds.Max[i] = max(bounds.Max[i], v[i])
		}
	}
	return bounds
}
