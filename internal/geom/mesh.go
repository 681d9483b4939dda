package geom

import (
	"math"

	"github.com/rishik7575/3d-farm-visualizer/internal/mathutil"
)

// Color3 is a linear RGB color with components in [0, 1].
type Color3 struct {
	R, G, B float64
}

// Shade scales brightness uniformly, preserving hue.
func (c Color3) Shade(f float64) Color3 {
	return Color3{
		mathutil.Clamp(c.R*f, 0, 1),
		mathutil.Clamp(c.G*f, 0, 1),
		mathutil.Clamp(c.B*f, 0, 1),
	}
}

// RGB builds a Color3 from 8-bit channel values, the form colors take in config files.
func RGB(r, g, b int) Color3 {
	return Color3{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}

// Vertex is a mesh vertex with a flat-shaded normal and vertex color.
type Vertex struct {
	Pos    Vec3
	Normal Vec3
	Color  Color3
	// U, V are texture coordinates; meshes without a texture leave them zero.
	U, V float64
}

// Mesh is an indexed triangle list. Indices come in groups of three.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// NewMesh returns an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// AddTriangle appends one triangle with counter-clockwise winding.
func (m *Mesh) AddTriangle(v0, v1, v2 Vertex) {
	base := uint16(len(m.Vertices))
	m.Vertices = append(m.Vertices, v0, v1, v2)
	m.Indices = append(m.Indices, base, base+1, base+2)
}

// AddQuad appends two triangles covering the quad v0-v1-v2-v3.
func (m *Mesh) AddQuad(v0, v1, v2, v3 Vertex) {
	base := uint16(len(m.Vertices))
	m.Vertices = append(m.Vertices, v0, v1, v2, v3)
	m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
}

// Append copies all triangles from other into m.
func (m *Mesh) Append(other *Mesh) {
	base := uint16(len(m.Vertices))
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, base+idx)
	}
}

// Transform returns a new mesh with every vertex run through t.
func (m *Mesh) Transform(t Mat4) *Mesh {
	out := &Mesh{
		Vertices: make([]Vertex, len(m.Vertices)),
		Indices:  append([]uint16(nil), m.Indices...),
	}
	for i, v := range m.Vertices {
		v.Pos = t.Apply(v.Pos)
		v.Normal = t.ApplyDir(v.Normal).Normalize()
		out.Vertices[i] = v
	}
	return out
}

// Tint returns a copy of the mesh with every vertex color multiplied channel-wise.
func (m *Mesh) Tint(c Color3) *Mesh {
	out := &Mesh{
		Vertices: make([]Vertex, len(m.Vertices)),
		Indices:  append([]uint16(nil), m.Indices...),
	}
	for i, v := range m.Vertices {
		v.Color = Color3{
			mathutil.Clamp(v.Color.R*c.R, 0, 1),
			mathutil.Clamp(v.Color.G*c.G, 0, 1),
			mathutil.Clamp(v.Color.B*c.B, 0, 1),
		}
		out.Vertices[i] = v
	}
	return out
}

// RecomputeNormals assigns each vertex the face normal of its triangle.
// Vertices shared across triangles keep the normal of the last face visited,
// which is fine for the flat-shaded look used everywhere in this project.
func (m *Mesh) RecomputeNormals() {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]].Pos
		b := m.Vertices[m.Indices[i+1]].Pos
		c := m.Vertices[m.Indices[i+2]].Pos
		n := b.Sub(a).Cross(c.Sub(a)).Normalize()
		m.Vertices[m.Indices[i]].Normal = n
		m.Vertices[m.Indices[i+1]].Normal = n
		m.Vertices[m.Indices[i+2]].Normal = n
	}
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() AABB {
	if len(m.Vertices) == 0 {
		return AABB{}
	}
	box := AABB{Min: m.Vertices[0].Pos, Max: m.Vertices[0].Pos}
	for _, v := range m.Vertices[1:] {
		box.Min.X = math.Min(box.Min.X, v.Pos.X)
		box.Min.Y = math.Min(box.Min.Y, v.Pos.Y)
		box.Min.Z = math.Min(box.Min.Z, v.Pos.Z)
		box.Max.X = math.Max(box.Max.X, v.Pos.X)
		box.Max.Y = math.Max(box.Max.Y, v.Pos.Y)
		box.Max.Z = math.Max(box.Max.Z, v.Pos.Z)
	}
	return box
}
