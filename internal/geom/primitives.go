package geom

import "math"

// Primitive constructors. All shapes are centered at the origin; callers
// position them with Transform. Normals are flat per-face.

// MakeBox builds an axis-aligned box of the given dimensions.
func MakeBox(w, h, d float64, c Color3) *Mesh {
	hw, hh, hd := w/2, h/2, d/2
	m := NewMesh()

	quad := func(a, b, cc, dd Vec3, n Vec3) {
		m.AddQuad(
			Vertex{Pos: a, Normal: n, Color: c},
			Vertex{Pos: b, Normal: n, Color: c},
			Vertex{Pos: cc, Normal: n, Color: c},
			Vertex{Pos: dd, Normal: n, Color: c},
		)
	}

	// +Y and -Y
	quad(V3(-hw, hh, -hd), V3(hw, hh, -hd), V3(hw, hh, hd), V3(-hw, hh, hd), V3(0, 1, 0))
	quad(V3(-hw, -hh, hd), V3(hw, -hh, hd), V3(hw, -hh, -hd), V3(-hw, -hh, -hd), V3(0, -1, 0))
	// +Z and -Z
	quad(V3(-hw, -hh, hd), V3(-hw, hh, hd), V3(hw, hh, hd), V3(hw, -hh, hd), V3(0, 0, 1))
	quad(V3(hw, -hh, -hd), V3(hw, hh, -hd), V3(-hw, hh, -hd), V3(-hw, -hh, -hd), V3(0, 0, -1))
	// +X and -X
	quad(V3(hw, -hh, hd), V3(hw, hh, hd), V3(hw, hh, -hd), V3(hw, -hh, -hd), V3(1, 0, 0))
	quad(V3(-hw, -hh, -hd), V3(-hw, hh, -hd), V3(-hw, hh, hd), V3(-hw, -hh, hd), V3(-1, 0, 0))

	return m
}

// MakeCylinder builds a vertical cylinder with capped ends.
func MakeCylinder(radius, height float64, segments int, c Color3) *Mesh {
	if segments < 3 {
		segments = 3
	}
	m := NewMesh()
	hh := height / 2

	for i := 0; i < segments; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(segments)
		a1 := 2 * math.Pi * float64(i+1) / float64(segments)
		x0, z0 := radius*math.Cos(a0), radius*math.Sin(a0)
		x1, z1 := radius*math.Cos(a1), radius*math.Sin(a1)

		n := V3((x0+x1)/2, 0, (z0+z1)/2).Normalize()

		// Side wall
		m.AddQuad(
			Vertex{Pos: V3(x0, -hh, z0), Normal: n, Color: c},
			Vertex{Pos: V3(x0, hh, z0), Normal: n, Color: c},
			Vertex{Pos: V3(x1, hh, z1), Normal: n, Color: c},
			Vertex{Pos: V3(x1, -hh, z1), Normal: n, Color: c},
		)

		// Caps
		up, down := V3(0, 1, 0), V3(0, -1, 0)
		m.AddTriangle(
			Vertex{Pos: V3(0, hh, 0), Normal: up, Color: c},
			Vertex{Pos: V3(x1, hh, z1), Normal: up, Color: c},
			Vertex{Pos: V3(x0, hh, z0), Normal: up, Color: c},
		)
		m.AddTriangle(
			Vertex{Pos: V3(0, -hh, 0), Normal: down, Color: c},
			Vertex{Pos: V3(x0, -hh, z0), Normal: down, Color: c},
			Vertex{Pos: V3(x1, -hh, z1), Normal: down, Color: c},
		)
	}
	return m
}

// MakeCone builds a vertical cone with its apex up and a capped base.
func MakeCone(radius, height float64, segments int, c Color3) *Mesh {
	if segments < 3 {
		segments = 3
	}
	m := NewMesh()
	hh := height / 2
	apex := V3(0, hh, 0)

	for i := 0; i < segments; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(segments)
		a1 := 2 * math.Pi * float64(i+1) / float64(segments)
		x0, z0 := radius*math.Cos(a0), radius*math.Sin(a0)
		x1, z1 := radius*math.Cos(a1), radius*math.Sin(a1)

		n := V3((x0+x1)/2, radius/height, (z0+z1)/2).Normalize()
		m.AddTriangle(
			Vertex{Pos: apex, Normal: n, Color: c},
			Vertex{Pos: V3(x1, -hh, z1), Normal: n, Color: c},
			Vertex{Pos: V3(x0, -hh, z0), Normal: n, Color: c},
		)

		down := V3(0, -1, 0)
		m.AddTriangle(
			Vertex{Pos: V3(0, -hh, 0), Normal: down, Color: c},
			Vertex{Pos: V3(x0, -hh, z0), Normal: down, Color: c},
			Vertex{Pos: V3(x1, -hh, z1), Normal: down, Color: c},
		)
	}
	return m
}

// MakeSphere builds a low-poly latitude/longitude sphere.
func MakeSphere(radius float64, segments int, c Color3) *Mesh {
	if segments < 3 {
		segments = 3
	}
	m := NewMesh()
	rings := segments

	point := func(ring, seg int) Vec3 {
		phi := math.Pi * float64(ring) / float64(rings)
		theta := 2 * math.Pi * float64(seg) / float64(segments)
		return V3(
			radius*math.Sin(phi)*math.Cos(theta),
			radius*math.Cos(phi),
			radius*math.Sin(phi)*math.Sin(theta),
		)
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			p00 := point(ring, seg)
			p01 := point(ring, seg+1)
			p10 := point(ring+1, seg)
			p11 := point(ring+1, seg+1)

			n := p00.Add(p11).Normalize()
			if ring > 0 {
				m.AddTriangle(
					Vertex{Pos: p00, Normal: n, Color: c},
					Vertex{Pos: p01, Normal: n, Color: c},
					Vertex{Pos: p11, Normal: n, Color: c},
				)
			}
			if ring < rings-1 {
				m.AddTriangle(
					Vertex{Pos: p00, Normal: n, Color: c},
					Vertex{Pos: p11, Normal: n, Color: c},
					Vertex{Pos: p10, Normal: n, Color: c},
				)
			}
		}
	}
	return m
}

// MakeHeightField builds a subdivided w-by-d plane on the XZ axes, displacing
// each vertex by height(x, z) and coloring it with colorAt(x, z). Texture
// coordinates span the full field once. Normals follow the displaced faces.
func MakeHeightField(w, d float64, subdivisions int, height func(x, z float64) float64, colorAt func(x, z float64) Color3) *Mesh {
	if subdivisions < 1 {
		subdivisions = 1
	}
	m := NewMesh()
	n := subdivisions

	vertexAt := func(i, j int) Vertex {
		x := -w/2 + w*float64(i)/float64(n)
		z := -d/2 + d*float64(j)/float64(n)
		return Vertex{
			Pos:    V3(x, height(x, z), z),
			Normal: V3(0, 1, 0),
			Color:  colorAt(x, z),
			U:      float64(i) / float64(n),
			V:      float64(j) / float64(n),
		}
	}

	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			m.AddQuad(vertexAt(i, j), vertexAt(i, j+1), vertexAt(i+1, j+1), vertexAt(i+1, j))
		}
	}
	m.RecomputeNormals()
	return m
}
