package farm

import (
	"math"
	"math/rand"

	"github.com/rishik7575/3d-farm-visualizer/internal/geom"
)

// SwayParams drive the idle wind motion of one plant.
type SwayParams struct {
	Speed     float64
	Amplitude float64
	Phase     float64
}

// PlantInstance is a single placed plant. Instances are created in bulk
// per crop section and destroyed in bulk on rebuild.
type PlantInstance struct {
	X, Z      float64
	RotationY float64
	// BaseScale is the fixed uniform X/Z scale chosen at creation.
	BaseScale float64
	// ScaleY animates from 0 to BaseScale (give or take easing overshoot)
	// during growth.
	ScaleY float64
	// RotationZ is the current sway lean, driven every frame while idle.
	RotationZ float64
	Sway      SwayParams

	Model *geom.Mesh
}

// Transform composes the instance's world matrix. The sway rotation sits
// inside the yaw so plants lean about their own base.
func (p *PlantInstance) Transform() geom.Mat4 {
	return geom.Mat4Translate(p.X, 0, p.Z).
		Mul(geom.Mat4RotateY(p.RotationY)).
		Mul(geom.Mat4RotateZ(p.RotationZ)).
		Mul(geom.Mat4Scale(p.BaseScale, p.ScaleY, p.BaseScale))
}

// Factory builds procedural plant models and places them on section grids.
// The random source is explicit so tests can seed it; production seeds
// from the clock, keeping generation intentionally non-reproducible.
type Factory struct {
	rng *rand.Rand
}

// NewFactory creates a factory around the given random source.
func NewFactory(rng *rand.Rand) *Factory {
	return &Factory{rng: rng}
}

func (f *Factory) between(lo, hi float64) float64 {
	return lo + f.rng.Float64()*(hi-lo)
}

// PopulateSection fills a crop strip with plant instances on a jittered
// grid. Grid cells are skipped with the crop's skip probability, and every
// model is generated fresh so no two plants are identical.
func (f *Factory) PopulateSection(sec CropSection, depth float64) []*PlantInstance {
	def := Definition(sec.Type)
	spacing := def.Spacing
	if spacing <= 0 {
		return nil
	}

	cols := int(sec.Width / spacing)
	rows := int(depth / spacing)
	if cols < 1 || rows < 1 {
		return nil
	}

	// Center the grid within the strip.
	marginX := (sec.Width - float64(cols-1)*spacing) / 2
	marginZ := (depth - float64(rows-1)*spacing) / 2

	instances := make([]*PlantInstance, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if f.rng.Float64() < def.SkipChance {
				continue
			}
			jitter := spacing * 0.3
			x := sec.XOffset + marginX + float64(col)*spacing + f.between(-jitter, jitter)
			z := -depth/2 + marginZ + float64(row)*spacing + f.between(-jitter, jitter)

			instances = append(instances, &PlantInstance{
				X:         x,
				Z:         z,
				RotationY: f.rng.Float64() * 2 * math.Pi,
				BaseScale: f.between(def.ScaleMin, def.ScaleMax),
				ScaleY:    0,
				Sway: SwayParams{
					Speed:     f.between(def.Sway.SpeedMin, def.Sway.SpeedMax),
					Amplitude: f.between(def.Sway.AmplitudeMin, def.Sway.AmplitudeMax),
					Phase:     f.rng.Float64() * 2 * math.Pi,
				},
				Model: f.BuildModel(sec.Type),
			})
		}
	}
	return instances
}

// BuildModel generates one plant model hierarchy for the crop type, with
// dimensions and brightness jittered inside type-specific bounds. All
// models stand on y=0 so growth scaling pivots at the soil line.
func (f *Factory) BuildModel(t CropType) *geom.Mesh {
	switch t {
	case CropCorn:
		return f.buildCorn(Definition(t))
	case CropSoybean:
		return f.buildSoybean(Definition(t))
	case CropCotton:
		return f.buildCotton(Definition(t))
	default:
		return f.buildWheat(Definition(t))
	}
}

// jitterColor scales brightness uniformly across channels, which shifts
// lightness while preserving hue.
func (f *Factory) jitterColor(c geom.Color3) geom.Color3 {
	return c.Shade(f.between(0.85, 1.15))
}

func (f *Factory) buildWheat(def *CropDefinition) *geom.Mesh {
	height := f.between(def.HeightMin, def.HeightMax)
	girth := f.between(def.GirthMin, def.GirthMax)

	stalkColor := f.jitterColor(geom.Color3{R: 0.55, G: 0.52, B: 0.24})
	headColor := f.jitterColor(geom.RGB(def.Color[0], def.Color[1], def.Color[2]))

	m := geom.NewMesh()

	stalk := geom.MakeCylinder(girth, height, 5, stalkColor)
	m.Append(stalk.Transform(geom.Mat4Translate(0, height/2, 0)))

	// Grain head: a slim box atop the stalk, slightly tilted.
	headH := height * 0.28
	head := geom.MakeBox(girth*4, headH, girth*2.5, headColor)
	m.Append(head.Transform(
		geom.Mat4Translate(0, height+headH/2*0.8, 0).
			Mul(geom.Mat4RotateZ(f.between(-0.12, 0.12)))))

	// A couple of drooping leaf blades.
	for _, side := range []float64{-1, 1} {
		leaf := geom.MakeBox(girth*1.4, height*0.38, girth*0.5, stalkColor.Shade(1.1))
		m.Append(leaf.Transform(
			geom.Mat4Translate(side*girth*2, height*0.45, 0).
				Mul(geom.Mat4RotateZ(side * f.between(0.35, 0.6)))))
	}

	return m
}

func (f *Factory) buildCorn(def *CropDefinition) *geom.Mesh {
	height := f.between(def.HeightMin, def.HeightMax)
	girth := f.between(def.GirthMin, def.GirthMax)

	stalkColor := f.jitterColor(geom.RGB(def.Color[0], def.Color[1], def.Color[2]))
	earColor := f.jitterColor(geom.Color3{R: 0.92, G: 0.82, B: 0.3})
	tasselColor := f.jitterColor(geom.Color3{R: 0.78, G: 0.72, B: 0.38})

	m := geom.NewMesh()

	stalk := geom.MakeCylinder(girth, height, 6, stalkColor)
	m.Append(stalk.Transform(geom.Mat4Translate(0, height/2, 0)))

	// Leaves fan out at alternating heights and angles.
	leafCount := 3 + f.rng.Intn(2)
	for i := 0; i < leafCount; i++ {
		frac := 0.3 + 0.45*float64(i)/float64(leafCount)
		leaf := geom.MakeBox(height*0.32, girth*1.2, girth*2.4, stalkColor.Shade(1.15))
		angle := float64(i)*2.1 + f.between(-0.3, 0.3)
		m.Append(leaf.Transform(
			geom.Mat4RotateY(angle).
				Mul(geom.Mat4Translate(height*0.16, height*frac, 0)).
				Mul(geom.Mat4RotateZ(f.between(0.3, 0.55)))))
	}

	// Ear hugging the stalk.
	earH := height * 0.18
	ear := geom.MakeCylinder(girth*2.2, earH, 6, earColor)
	m.Append(ear.Transform(
		geom.Mat4Translate(girth*2.2, height*0.5, 0).
			Mul(geom.Mat4RotateZ(f.between(0.15, 0.3)))))

	// Tassel on top.
	tassel := geom.MakeCone(girth*1.6, height*0.16, 5, tasselColor)
	m.Append(tassel.Transform(geom.Mat4Translate(0, height+height*0.08, 0)))

	return m
}

func (f *Factory) buildSoybean(def *CropDefinition) *geom.Mesh {
	height := f.between(def.HeightMin, def.HeightMax)
	girth := f.between(def.GirthMin, def.GirthMax)

	bushColor := f.jitterColor(geom.RGB(def.Color[0], def.Color[1], def.Color[2]))
	podColor := f.jitterColor(geom.Color3{R: 0.62, G: 0.68, B: 0.32})

	m := geom.NewMesh()

	// Low bush built from two squashed spheres.
	lower := geom.MakeSphere(girth, 6, bushColor)
	m.Append(lower.Transform(
		geom.Mat4Translate(0, height*0.45, 0).
			Mul(geom.Mat4Scale(1, height*0.9/girth/2, 1))))

	upper := geom.MakeSphere(girth*0.7, 5, bushColor.Shade(1.1))
	m.Append(upper.Transform(geom.Mat4Translate(0, height*0.75, 0)))

	// Pods hanging around the bush.
	podCount := 3 + f.rng.Intn(3)
	for i := 0; i < podCount; i++ {
		angle := f.rng.Float64() * 2 * math.Pi
		pod := geom.MakeBox(girth*0.18, girth*0.4, girth*0.12, podColor)
		m.Append(pod.Transform(
			geom.Mat4RotateY(angle).
				Mul(geom.Mat4Translate(girth*0.85, height*f.between(0.3, 0.6), 0))))
	}

	return m
}

func (f *Factory) buildCotton(def *CropDefinition) *geom.Mesh {
	height := f.between(def.HeightMin, def.HeightMax)
	girth := f.between(def.GirthMin, def.GirthMax)

	shrubColor := f.jitterColor(geom.RGB(def.Color[0], def.Color[1], def.Color[2]))
	bollColor := f.jitterColor(geom.Color3{R: 0.95, G: 0.95, B: 0.92})
	stemColor := geom.Color3{R: 0.35, G: 0.27, B: 0.16}

	m := geom.NewMesh()

	stem := geom.MakeCylinder(girth*0.12, height*0.5, 5, stemColor)
	m.Append(stem.Transform(geom.Mat4Translate(0, height*0.25, 0)))

	shrub := geom.MakeSphere(girth, 6, shrubColor)
	m.Append(shrub.Transform(
		geom.Mat4Translate(0, height*0.62, 0).
			Mul(geom.Mat4Scale(1, height*0.75/girth/2, 1))))

	// White bolls dotted over the canopy.
	bollCount := 4 + f.rng.Intn(3)
	for i := 0; i < bollCount; i++ {
		angle := f.rng.Float64() * 2 * math.Pi
		lift := f.between(0.5, 0.85)
		boll := geom.MakeSphere(girth*0.22, 4, bollColor)
		m.Append(boll.Transform(
			geom.Mat4RotateY(angle).
				Mul(geom.Mat4Translate(girth*f.between(0.6, 0.95), height*lift, 0))))
	}

	return m
}
