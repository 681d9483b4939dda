package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rishik7575/3d-farm-visualizer/internal/geom"
)

// DrawItem is one mesh instance submitted for a frame.
type DrawItem struct {
	Mesh      *geom.Mesh
	Transform geom.Mat4
	// Texture, when set, is sampled with the mesh UVs. Nil falls back to
	// flat vertex colors (the default-material degradation path).
	Texture *ebiten.Image
}

// Renderer projects meshes through a camera and rasterizes them with
// ebiten's DrawTriangles. Triangles are depth-sorted back to front each
// frame (painter's algorithm); there is no depth buffer.
type Renderer struct {
	white *ebiten.Image

	// LightDir is the direction light travels, normalized on use.
	LightDir geom.Vec3
	// Ambient is the minimum light intensity in [0, 1].
	Ambient float64

	tris []screenTriangle
}

type screenTriangle struct {
	depth   float64 // mean view-space Z, larger is farther
	texture *ebiten.Image
	v       [3]ebiten.Vertex
}

// NewRenderer creates a renderer with a neutral overhead light.
func NewRenderer() *Renderer {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &Renderer{
		white:    white,
		LightDir: geom.V3(-0.4, -1, -0.3),
		Ambient:  0.35,
	}
}

// Render projects and draws all items onto screen in a single pass.
func (r *Renderer) Render(screen *ebiten.Image, cam *Camera, items []DrawItem) {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	light := r.LightDir.Normalize().Scale(-1)

	r.tris = r.tris[:0]
	for _, item := range items {
		r.collect(cam, item, light, w, h)
	}

	sort.Slice(r.tris, func(i, j int) bool {
		return r.tris[i].depth > r.tris[j].depth
	})

	r.flush(screen)
}

func (r *Renderer) collect(cam *Camera, item DrawItem, light geom.Vec3, w, h int) {
	mesh := item.Mesh
	if mesh == nil || len(mesh.Indices) == 0 {
		return
	}

	textured := item.Texture != nil
	var texW, texH float64
	if textured {
		tb := item.Texture.Bounds()
		texW, texH = float64(tb.Dx()), float64(tb.Dy())
	}

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		var view [3]geom.Vec3
		var verts [3]ebiten.Vertex
		behind := false
		depth := 0.0

		for k := 0; k < 3; k++ {
			src := mesh.Vertices[mesh.Indices[i+k]]
			pos := item.Transform.Apply(src.Pos)
			view[k] = cam.ToView(pos)
			if view[k].Z < cam.Near {
				behind = true
				break
			}
			depth += view[k].Z

			normal := item.Transform.ApplyDir(src.Normal).Normalize()
			// Two-sided shading keeps interiors of thin procedural
			// models from going black.
			intensity := r.Ambient + (1-r.Ambient)*math.Abs(normal.Dot(light))

			sx, sy := cam.Project(view[k], w, h)
			verts[k] = ebiten.Vertex{
				DstX:   float32(sx),
				DstY:   float32(sy),
				ColorR: float32(src.Color.R * intensity),
				ColorG: float32(src.Color.G * intensity),
				ColorB: float32(src.Color.B * intensity),
				ColorA: 1,
			}
			if textured {
				verts[k].SrcX = float32(src.U * texW)
				verts[k].SrcY = float32(src.V * texH)
			} else {
				verts[k].SrcX = 0.5
				verts[k].SrcY = 0.5
			}
		}
		if behind {
			continue
		}

		tex := item.Texture
		if tex == nil {
			tex = r.white
		}
		r.tris = append(r.tris, screenTriangle{
			depth:   depth / 3,
			texture: tex,
			v:       verts,
		})
	}
}

// flush batches sorted triangles into as few DrawTriangles calls as the
// texture changes and the uint16 index space allow.
func (r *Renderer) flush(screen *ebiten.Image) {
	var (
		vertices []ebiten.Vertex
		indices  []uint16
		current  *ebiten.Image
	)

	emit := func() {
		if len(indices) == 0 {
			return
		}
		op := &ebiten.DrawTrianglesOptions{}
		screen.DrawTriangles(vertices, indices, current, op)
		vertices = vertices[:0]
		indices = indices[:0]
	}

	for _, tri := range r.tris {
		if tri.texture != current || len(vertices) >= 65000 {
			emit()
			current = tri.texture
		}
		base := uint16(len(vertices))
		vertices = append(vertices, tri.v[0], tri.v[1], tri.v[2])
		indices = append(indices, base, base+1, base+2)
	}
	emit()
}
