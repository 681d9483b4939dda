package scene

import (
	"math"

	"github.com/rishik7575/3d-farm-visualizer/internal/config"
	"github.com/rishik7575/3d-farm-visualizer/internal/geom"
	"github.com/rishik7575/3d-farm-visualizer/internal/mathutil"
	"github.com/rishik7575/3d-farm-visualizer/internal/render"
)

// ViewMode names the camera presets.
type ViewMode int

const (
	ViewTop ViewMode = iota
	ViewSide
	ViewAngled
)

func (m ViewMode) String() string {
	switch m {
	case ViewTop:
		return "top"
	case ViewSide:
		return "side"
	default:
		return "angled"
	}
}

// PresetCamera computes the camera placement for a view preset, purely
// from land size and the framing constants in cfg. No randomness: for a
// fixed (mode, sizeUnits) pair the result is always identical.
func PresetCamera(mode ViewMode, sizeUnits float64, cfg *config.Config) (pos, lookAt geom.Vec3) {
	lookAt = geom.V3(0, 0, 0)
	c := cfg.Camera
	switch mode {
	case ViewTop:
		// Epsilon keeps the view off the exact vertical so the look-at
		// basis never degenerates.
		pos = geom.V3(0, sizeUnits*c.Top.HeightFactor, sizeUnits*c.Top.Epsilon)
	case ViewSide:
		pos = geom.V3(0, sizeUnits*c.Side.HeightFactor, sizeUnits*c.Side.DistanceFactor)
	default:
		pos = geom.V3(
			sizeUnits*c.Angled.OffsetFactor,
			sizeUnits*c.Angled.HeightFactor,
			sizeUnits*c.Angled.OffsetFactor,
		)
	}
	return pos, lookAt
}

// CameraRig layers free user orbit/pan/zoom over the named presets.
// Switching presets or calling Reset discards the user offsets and snaps
// straight to the preset for the current land size.
type CameraRig struct {
	cfg       *config.Config
	mode      ViewMode
	sizeUnits float64

	yawOffset   float64
	pitchOffset float64
	zoomScale   float64
	panOffset   geom.Vec3

	cam *render.Camera
}

// NewCameraRig starts in the angled preset.
func NewCameraRig(cfg *config.Config) *CameraRig {
	return &CameraRig{
		cfg:       cfg,
		mode:      ViewAngled,
		sizeUnits: 1,
		zoomScale: 1,
		cam:       render.NewCamera(cfg.GetCameraFOV()),
	}
}

// Mode returns the active preset.
func (r *CameraRig) Mode() ViewMode {
	return r.mode
}

// SetMode switches presets instantly, clearing any user adjustments.
func (r *CameraRig) SetMode(mode ViewMode) {
	r.mode = mode
	r.clearOffsets()
}

// SetSizeUnits reframes the rig for a new land size, keeping the current
// preset and discarding user offsets so the new plot is centered.
func (r *CameraRig) SetSizeUnits(sizeUnits float64) {
	if sizeUnits > 0 {
		r.sizeUnits = sizeUnits
	}
	r.clearOffsets()
}

// Reset restores the current preset for the current land size.
func (r *CameraRig) Reset() {
	r.clearOffsets()
}

func (r *CameraRig) clearOffsets() {
	r.yawOffset = 0
	r.pitchOffset = 0
	r.zoomScale = 1
	r.panOffset = geom.Vec3{}
}

// Orbit rotates the camera around the look-at point by pixel deltas.
func (r *CameraRig) Orbit(dx, dy float64) {
	speed := r.cfg.Camera.OrbitSpeed
	r.yawOffset += dx * speed
	r.pitchOffset += dy * speed
}

// Pan slides the look-at point across the view plane by pixel deltas.
func (r *CameraRig) Pan(dx, dy float64) {
	pos, lookAt := r.compute()
	forward := lookAt.Sub(pos).Normalize()
	right := forward.Cross(geom.V3(0, 1, 0)).Normalize()
	up := right.Cross(forward)

	scale := r.cfg.Camera.PanSpeed * pos.Sub(lookAt).Length()
	r.panOffset = r.panOffset.
		Add(right.Scale(-dx * scale)).
		Add(up.Scale(dy * scale))
}

// Zoom moves toward or away from the look-at point; steps is in wheel
// notches, positive zooming in.
func (r *CameraRig) Zoom(steps float64) {
	r.zoomScale *= math.Pow(1-r.cfg.Camera.ZoomStep, steps)
	// Keep the camera between the configured distance clamps.
	_, lookAt := PresetCamera(r.mode, r.sizeUnits, r.cfg)
	base, _ := PresetCamera(r.mode, r.sizeUnits, r.cfg)
	baseDist := base.Sub(lookAt).Length()
	if baseDist > 0 {
		minScale := r.cfg.Camera.MinDistanceFactor * r.sizeUnits / baseDist
		maxScale := r.cfg.Camera.MaxDistanceFactor * r.sizeUnits / baseDist
		r.zoomScale = mathutil.Clamp(r.zoomScale, minScale, maxScale)
	}
}

// compute resolves the preset plus user offsets into a placement.
func (r *CameraRig) compute() (pos, lookAt geom.Vec3) {
	pos, lookAt = PresetCamera(r.mode, r.sizeUnits, r.cfg)
	if r.yawOffset == 0 && r.pitchOffset == 0 && r.zoomScale == 1 && r.panOffset == (geom.Vec3{}) {
		// Untouched rig reproduces the preset exactly.
		return pos, lookAt
	}

	offset := pos.Sub(lookAt)
	radius := offset.Length() * r.zoomScale
	yaw := math.Atan2(offset.X, offset.Z) + r.yawOffset
	pitch := math.Asin(offset.Y/offset.Length()) + r.pitchOffset
	pitch = mathutil.Clamp(pitch, -math.Pi/2+0.05, math.Pi/2-0.05)

	lookAt = lookAt.Add(r.panOffset)
	pos = lookAt.Add(geom.V3(
		radius*math.Cos(pitch)*math.Sin(yaw),
		radius*math.Sin(pitch),
		radius*math.Cos(pitch)*math.Cos(yaw),
	))
	return pos, lookAt
}

// Camera returns the render camera for the current frame.
func (r *CameraRig) Camera() *render.Camera {
	pos, lookAt := r.compute()
	r.cam.Position = pos
	r.cam.LookAt = lookAt
	return r.cam
}
