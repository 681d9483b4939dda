package farm

import (
	"errors"
	"math"

	"github.com/rishik7575/3d-farm-visualizer/internal/config"
	"github.com/rishik7575/3d-farm-visualizer/internal/geom"
)

// FeetPerAcreSide is the side length in feet of a one-acre square
// (sqrt of 43,560 square feet).
const FeetPerAcreSide = 208.7

// ErrInvalidAcreage rejects land plot builds for non-positive or
// non-finite acreage. Callers treat it as a no-op signal, not a crash.
var ErrInvalidAcreage = errors.New("acreage must be a positive finite number")

// SizeUnits converts acreage to the plot's world-unit side length.
func SizeUnits(acres, scaleConstant float64) float64 {
	return math.Sqrt(acres) * FeetPerAcreSide * scaleConstant
}

// LandPlot is the active ground mesh. Exactly one exists per scene; it is
// replaced wholesale whenever acreage changes.
type LandPlot struct {
	Acres     float64
	SizeUnits float64
	Mesh      *geom.Mesh

	disposed bool
}

// BuildLandPlot constructs a subdivided, undulated square soil mesh.
// Undulation is position-dependent only, so the ground never animates.
func BuildLandPlot(acres float64, cfg *config.Config) (*LandPlot, error) {
	if acres <= 0 || math.IsInf(acres, 0) || math.IsNaN(acres) {
		return nil, ErrInvalidAcreage
	}

	size := SizeUnits(acres, cfg.Land.ScaleConstant)
	soil := geom.RGB(cfg.Land.SoilColor[0], cfg.Land.SoilColor[1], cfg.Land.SoilColor[2])
	variation := cfg.Land.ColorVariation
	amplitude := cfg.Land.UndulationHeight

	height := func(x, z float64) float64 {
		return smoothNoise(x*0.35, z*0.35) * amplitude
	}
	colorAt := func(x, z float64) geom.Color3 {
		f := 1 + (smoothNoise(x*0.9+57, z*0.9+91)*2-1)*variation
		return soil.Shade(f)
	}

	mesh := geom.MakeHeightField(size, size, cfg.Land.MeshSubdivisions, height, colorAt)

	return &LandPlot{
		Acres:     acres,
		SizeUnits: size,
		Mesh:      mesh,
	}, nil
}

// Dispose releases the plot's geometry. Safe to call repeatedly.
func (p *LandPlot) Dispose() {
	if p == nil || p.disposed {
		return
	}
	p.disposed = true
	p.Mesh = nil
}

// Disposed reports whether the plot has been released.
func (p *LandPlot) Disposed() bool {
	return p == nil || p.disposed
}

// hashNoise is a cheap deterministic hash over lattice coordinates.
func hashNoise(x, y int) float64 {
	h := uint32(x*73856093 ^ y*19349663)
	h = (h >> 13) ^ h
	h = h*(h*h*15731+789221) + 1376312589
	return float64(h&0x7fffffff) / float64(0x7fffffff)
}

// smoothNoise bilinearly interpolates hashNoise, giving the soft rolling
// displacement used for soil undulation. Output is in [0, 1].
func smoothNoise(x, y float64) float64 {
	x0, y0 := math.Floor(x), math.Floor(y)
	fx, fy := x-x0, y-y0
	ix, iy := int(x0), int(y0)

	// Smoothstep fade on the lattice fractions.
	fx = fx * fx * (3 - 2*fx)
	fy = fy * fy * (3 - 2*fy)

	n00 := hashNoise(ix, iy)
	n10 := hashNoise(ix+1, iy)
	n01 := hashNoise(ix, iy+1)
	n11 := hashNoise(ix+1, iy+1)

	top := n00 + (n10-n00)*fx
	bottom := n01 + (n11-n01)*fx
	return top + (bottom-top)*fy
}
