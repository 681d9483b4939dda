package geom

import (
	"math"
	"testing"
)

func TestMesh(t *testing.T) {
	red := Color3{R: 1}

	t.Run("Append Rebases Indices", func(t *testing.T) {
		a := MakeBox(1, 1, 1, red)
		b := MakeBox(2, 2, 2, red)
		wantTris := a.TriangleCount() + b.TriangleCount()
		wantVerts := len(a.Vertices) + len(b.Vertices)

		a.Append(b)
		if a.TriangleCount() != wantTris {
			t.Errorf("triangle count = %d, want %d", a.TriangleCount(), wantTris)
		}
		if len(a.Vertices) != wantVerts {
			t.Errorf("vertex count = %d, want %d", len(a.Vertices), wantVerts)
		}
		for _, idx := range a.Indices {
			if int(idx) >= len(a.Vertices) {
				t.Fatalf("index %d out of range after append", idx)
			}
		}
	})

	t.Run("Transform Leaves Source Untouched", func(t *testing.T) {
		m := MakeBox(1, 1, 1, red)
		before := m.Vertices[0].Pos
		moved := m.Transform(Mat4Translate(10, 0, 0))
		if m.Vertices[0].Pos != before {
			t.Error("Transform mutated the source mesh")
		}
		if math.Abs(moved.Vertices[0].Pos.X-(before.X+10)) > 1e-9 {
			t.Errorf("moved vertex X = %v, want %v", moved.Vertices[0].Pos.X, before.X+10)
		}
	})

	t.Run("Transform Renormalizes Normals", func(t *testing.T) {
		m := MakeBox(1, 1, 1, red).Transform(Mat4RotateY(0.8))
		for i, v := range m.Vertices {
			if math.Abs(v.Normal.Length()-1) > 1e-9 {
				t.Fatalf("vertex %d normal length = %v", i, v.Normal.Length())
			}
		}
	})

	t.Run("Tint Multiplies Channels", func(t *testing.T) {
		m := MakeBox(1, 1, 1, Color3{R: 0.8, G: 0.6, B: 0.4})
		tinted := m.Tint(Color3{R: 0.5, G: 1, B: 0})
		got := tinted.Vertices[0].Color
		want := Color3{R: 0.4, G: 0.6, B: 0}
		if math.Abs(got.R-want.R) > 1e-9 || math.Abs(got.G-want.G) > 1e-9 || got.B != 0 {
			t.Errorf("tinted color = %+v, want %+v", got, want)
		}
	})
}

func TestPrimitives(t *testing.T) {
	c := Color3{R: 0.5, G: 0.5, B: 0.5}

	t.Run("Centered At Origin", func(t *testing.T) {
		cases := []struct {
			name string
			mesh *Mesh
		}{
			{"Box", MakeBox(2, 4, 6, c)},
			{"Cylinder", MakeCylinder(1, 3, 8, c)},
			{"Cone", MakeCone(1, 2, 8, c)},
			{"Sphere", MakeSphere(1.5, 8, c)},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := tc.mesh.Bounds()
				center := b.Center()
				if math.Abs(center.Y) > 1e-9 {
					t.Errorf("center Y = %v, want 0", center.Y)
				}
			})
		}
	})

	t.Run("Box Dimensions", func(t *testing.T) {
		b := MakeBox(2, 4, 6, c).Bounds()
		size := b.Size()
		if size != V3(2, 4, 6) {
			t.Errorf("box size = %+v, want (2, 4, 6)", size)
		}
	})

	t.Run("Sphere Radius", func(t *testing.T) {
		m := MakeSphere(2, 8, c)
		for i, v := range m.Vertices {
			if math.Abs(v.Pos.Length()-2) > 1e-9 {
				t.Fatalf("vertex %d at distance %v, want 2", i, v.Pos.Length())
			}
		}
	})

	t.Run("Degenerate Segment Counts Are Raised", func(t *testing.T) {
		if m := MakeCylinder(1, 1, 0, c); m.TriangleCount() == 0 {
			t.Error("cylinder with zero segments produced no geometry")
		}
		if m := MakeCone(1, 1, 1, c); m.TriangleCount() == 0 {
			t.Error("cone with one segment produced no geometry")
		}
	})
}

func TestMakeHeightField(t *testing.T) {
	flat := func(x, z float64) float64 { return 0 }
	green := func(x, z float64) Color3 { return Color3{G: 1} }

	t.Run("Quad Grid", func(t *testing.T) {
		m := MakeHeightField(10, 10, 4, flat, green)
		if got := m.TriangleCount(); got != 4*4*2 {
			t.Errorf("triangle count = %d, want 32", got)
		}
	})

	t.Run("Displacement Applies Heights", func(t *testing.T) {
		bowl := func(x, z float64) float64 { return x*x + z*z }
		m := MakeHeightField(4, 4, 4, bowl, green)
		for i, v := range m.Vertices {
			want := bowl(v.Pos.X, v.Pos.Z)
			if math.Abs(v.Pos.Y-want) > 1e-9 {
				t.Fatalf("vertex %d Y = %v, want %v", i, v.Pos.Y, want)
			}
		}
	})

	t.Run("UVs Span The Field Once", func(t *testing.T) {
		m := MakeHeightField(10, 10, 4, flat, green)
		minU, maxU := math.Inf(1), math.Inf(-1)
		for _, v := range m.Vertices {
			minU = math.Min(minU, v.U)
			maxU = math.Max(maxU, v.U)
		}
		if minU != 0 || maxU != 1 {
			t.Errorf("U range [%v, %v], want [0, 1]", minU, maxU)
		}
	})

	t.Run("Flat Field Has Up Normals", func(t *testing.T) {
		m := MakeHeightField(10, 10, 2, flat, green)
		for i, v := range m.Vertices {
			if !vecNear(v.Normal, V3(0, 1, 0), 1e-9) {
				t.Fatalf("vertex %d normal = %+v, want up", i, v.Normal)
			}
		}
	})
}

func TestAABB(t *testing.T) {
	a := AABB{Min: V3(0, 0, 0), Max: V3(2, 2, 2)}
	b := AABB{Min: V3(1, 1, 1), Max: V3(3, 3, 3)}
	far := AABB{Min: V3(10, 10, 10), Max: V3(11, 11, 11)}

	if !a.Intersects(b) {
		t.Error("overlapping boxes should intersect")
	}
	if a.Intersects(far) {
		t.Error("distant boxes should not intersect")
	}
	if !a.Contains(V3(1, 1, 1)) {
		t.Error("interior point not contained")
	}
	if a.Contains(V3(5, 0, 0)) {
		t.Error("outside point reported contained")
	}

	u := a.Union(far)
	if u.Min != V3(0, 0, 0) || u.Max != V3(11, 11, 11) {
		t.Errorf("union = %+v", u)
	}
}
