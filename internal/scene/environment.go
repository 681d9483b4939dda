package scene

import (
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rishik7575/3d-farm-visualizer/internal/config"
	"github.com/rishik7575/3d-farm-visualizer/internal/geom"
	"github.com/rishik7575/3d-farm-visualizer/internal/mathutil"
	"github.com/rishik7575/3d-farm-visualizer/internal/render"
)

// cloud is one drifting cloud puff group.
type cloud struct {
	mesh    *geom.Mesh
	x, y, z float64
	speed   float64
}

// Environment holds the static decorative backdrop: terrain skirt, hills,
// pond, rocks and border trees, plus the clouds and water ripple that
// animate ambiently. It is generated once per scene, independent of farm
// data, and lives for the scene's full lifetime.
type Environment struct {
	cfg *config.Config

	statics []*geom.Mesh
	water   *geom.Mesh
	clouds  []*cloud

	ripplePhase float64
	disposed    bool
}

// BuildEnvironment generates the full decorative set from the config
// counts and the given random source.
func BuildEnvironment(cfg *config.Config, rng *rand.Rand) *Environment {
	e := &Environment{cfg: cfg}

	e.buildGroundSkirt(rng)
	e.buildHills(rng)
	e.buildTrees(rng)
	e.buildRocks(rng)
	e.buildPond()
	e.buildClouds(rng)

	return e
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func countIn(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// buildGroundSkirt lays a broad grass plane under everything, seated just
// below the soil so the land plot always wins the overlap.
func (e *Environment) buildGroundSkirt(rng *rand.Rand) {
	extent := e.cfg.Environment.FieldExtent
	grass := geom.Color3{R: 0.36, G: 0.55, B: 0.26}

	skirt := geom.MakeHeightField(extent*2, extent*2, 24,
		func(x, z float64) float64 { return -0.6 },
		func(x, z float64) geom.Color3 {
			return grass.Shade(between(rng, 0.92, 1.08))
		})
	e.statics = append(e.statics, skirt)
}

// buildHills rings the horizon with squashed green domes.
func (e *Environment) buildHills(rng *rand.Rand) {
	hc := e.cfg.Environment.Hills
	count := countIn(rng, hc.CountMin, hc.CountMax)
	hillColor := geom.Color3{R: 0.3, G: 0.48, B: 0.22}

	for i := 0; i < count; i++ {
		angle := between(rng, 0, 2*math.Pi)
		dist := hc.Distance * between(rng, 0.85, 1.3)
		radius := between(rng, hc.RadiusMin, hc.RadiusMax)

		dome := geom.MakeSphere(radius, 8, hillColor.Shade(between(rng, 0.85, 1.1)))
		squash := between(rng, 0.25, 0.45)
		e.statics = append(e.statics, dome.Transform(
			geom.Mat4Translate(math.Cos(angle)*dist, -radius*squash*0.4, math.Sin(angle)*dist).
				Mul(geom.Mat4Scale(1, squash, 1))))
	}
}

// buildTrees scatters pine and round trees in a loose ring outside the
// farm area. Two shapes keep the border from looking stamped.
func (e *Environment) buildTrees(rng *rand.Rand) {
	tc := e.cfg.Environment.Trees
	count := countIn(rng, tc.CountMin, tc.CountMax)

	for i := 0; i < count; i++ {
		angle := between(rng, 0, 2*math.Pi)
		dist := between(rng, tc.RingMin, tc.RingMax)
		x, z := math.Cos(angle)*dist, math.Sin(angle)*dist
		scale := between(rng, 0.7, 1.5)

		var tree *geom.Mesh
		if rng.Float64() < 0.5 {
			tree = makePineTree(scale, rng)
		} else {
			tree = makeRoundTree(scale, rng)
		}
		e.statics = append(e.statics, tree.Transform(geom.Mat4Translate(x, 0, z)))
	}
}

func makePineTree(scale float64, rng *rand.Rand) *geom.Mesh {
	trunkColor := geom.Color3{R: 0.36, G: 0.25, B: 0.13}
	needleColor := geom.Color3{R: 0.1, G: 0.35, B: 0.12}.Shade(between(rng, 0.85, 1.15))

	m := geom.NewMesh()
	trunkH := 6 * scale
	trunk := geom.MakeCylinder(0.7*scale, trunkH, 6, trunkColor)
	m.Append(trunk.Transform(geom.Mat4Translate(0, trunkH/2, 0)))

	// Three stacked canopy cones, shrinking upward.
	for tier := 0; tier < 3; tier++ {
		r := (5.5 - 1.3*float64(tier)) * scale
		h := 5.5 * scale
		y := trunkH + (float64(tier)*2.8)*scale
		cone := geom.MakeCone(r, h, 7, needleColor)
		m.Append(cone.Transform(geom.Mat4Translate(0, y+h/2-2*scale, 0)))
	}
	return m
}

func makeRoundTree(scale float64, rng *rand.Rand) *geom.Mesh {
	trunkColor := geom.Color3{R: 0.4, G: 0.28, B: 0.15}
	leafColor := geom.Color3{R: 0.2, G: 0.45, B: 0.16}.Shade(between(rng, 0.85, 1.15))

	m := geom.NewMesh()
	trunkH := 5 * scale
	trunk := geom.MakeCylinder(0.8*scale, trunkH, 6, trunkColor)
	m.Append(trunk.Transform(geom.Mat4Translate(0, trunkH/2, 0)))

	canopy := geom.MakeSphere(4.5*scale, 7, leafColor)
	m.Append(canopy.Transform(geom.Mat4Translate(0, trunkH+3*scale, 0)))
	return m
}

// buildRocks drops mossy boulders between the field and the tree line.
func (e *Environment) buildRocks(rng *rand.Rand) {
	rc := e.cfg.Environment.Rocks
	count := countIn(rng, rc.CountMin, rc.CountMax)
	rockColor := geom.Color3{R: 0.48, G: 0.47, B: 0.44}

	for i := 0; i < count; i++ {
		angle := between(rng, 0, 2*math.Pi)
		dist := between(rng, 140, 380)
		size := between(rng, 1.2, 4)

		rock := geom.MakeSphere(size, 5, rockColor.Shade(between(rng, 0.8, 1.1)))
		e.statics = append(e.statics, rock.Transform(
			geom.Mat4Translate(math.Cos(angle)*dist, size*0.25, math.Sin(angle)*dist).
				Mul(geom.Mat4Scale(1, between(rng, 0.5, 0.8), 1))))
	}
}

// buildPond places a flat water disc off to one side of the farm.
func (e *Environment) buildPond() {
	wc := e.cfg.Environment.Water
	waterColor := geom.Color3{R: 0.2, G: 0.45, B: 0.7}

	disc := geom.MakeCylinder(wc.PondRadius, 0.3, 18, waterColor)
	e.water = disc.Transform(geom.Mat4Translate(wc.PondX, -0.15, wc.PondZ))
}

// buildClouds spawns white puff clusters drifting across the sky band.
func (e *Environment) buildClouds(rng *rand.Rand) {
	cc := e.cfg.Environment.Clouds
	white := geom.Color3{R: 0.96, G: 0.97, B: 0.99}

	for i := 0; i < cc.Count; i++ {
		puffs := geom.NewMesh()
		n := 2 + rng.Intn(3)
		for p := 0; p < n; p++ {
			r := between(rng, 9, 18)
			puff := geom.MakeSphere(r, 6, white.Shade(between(rng, 0.94, 1.0)))
			puffs.Append(puff.Transform(
				geom.Mat4Translate(between(rng, -20, 20), between(rng, -3, 3), between(rng, -10, 10)).
					Mul(geom.Mat4Scale(1, 0.45, 1))))
		}
		e.clouds = append(e.clouds, &cloud{
			mesh:  puffs,
			x:     between(rng, -cc.WrapExtent, cc.WrapExtent),
			y:     cc.Altitude * between(rng, 0.85, 1.25),
			z:     between(rng, -cc.WrapExtent, cc.WrapExtent),
			speed: cc.Speed * between(rng, 0.6, 1.4),
		})
	}
}

// Tick advances the ambient animation: clouds drift and wrap at the band
// boundary, and the water ripple phase advances by its fixed increment.
func (e *Environment) Tick(dt float64) {
	if e.disposed {
		return
	}
	wrap := e.cfg.Environment.Clouds.WrapExtent
	for _, c := range e.clouds {
		c.x += c.speed * dt
		c.x = mathutil.Wrap(c.x, -wrap, wrap)
	}
	e.ripplePhase += e.cfg.Environment.Water.RippleIncrement
}

// RipplePhase returns the current water ripple phase.
func (e *Environment) RipplePhase() float64 {
	return e.ripplePhase
}

// AppendDrawItems adds the environment's renderables for this frame.
// waterTex may be nil, in which case the pond renders flat vertex colors.
func (e *Environment) AppendDrawItems(items []render.DrawItem, waterTex *ebiten.Image) []render.DrawItem {
	if e.disposed {
		return items
	}
	identity := geom.Mat4Identity()
	for _, m := range e.statics {
		items = append(items, render.DrawItem{Mesh: m, Transform: identity})
	}
	if e.water != nil {
		bob := math.Sin(e.ripplePhase) * 0.12
		items = append(items, render.DrawItem{
			Mesh:      e.water,
			Transform: geom.Mat4Translate(0, bob, 0),
			Texture:   waterTex,
		})
	}
	for _, c := range e.clouds {
		items = append(items, render.DrawItem{
			Mesh:      c.mesh,
			Transform: geom.Mat4Translate(c.x, c.y, c.z),
		})
	}
	return items
}

// Dispose releases all decoration geometry. Safe to call repeatedly.
func (e *Environment) Dispose() {
	if e == nil || e.disposed {
		return
	}
	e.disposed = true
	e.statics = nil
	e.water = nil
	e.clouds = nil
}
