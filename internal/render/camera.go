package render

import (
	"math"

	"github.com/rishik7575/3d-farm-visualizer/internal/geom"
)

// Camera is a perspective look-at camera.
type Camera struct {
	Position geom.Vec3
	LookAt   geom.Vec3
	Up       geom.Vec3
	FOV      float64 // vertical field of view in radians
	Near     float64 // view-space clip distance
}

// NewCamera returns a camera with the conventional up axis and clip distance.
func NewCamera(fov float64) *Camera {
	return &Camera{
		Up:   geom.V3(0, 1, 0),
		FOV:  fov,
		Near: 0.1,
	}
}

// basis returns the right, up and forward unit vectors of the view frame.
func (c *Camera) basis() (right, up, forward geom.Vec3) {
	forward = c.LookAt.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	if right.Length() == 0 {
		// Looking straight along the up axis; pick an arbitrary right.
		right = geom.V3(1, 0, 0)
	}
	up = right.Cross(forward)
	return right, up, forward
}

// ToView transforms a world-space point into view space, where X is right,
// Y is up and Z is the distance in front of the camera.
func (c *Camera) ToView(p geom.Vec3) geom.Vec3 {
	right, up, forward := c.basis()
	d := p.Sub(c.Position)
	return geom.V3(d.Dot(right), d.Dot(up), d.Dot(forward))
}

// Project maps a view-space point to screen pixels. The caller must reject
// points with view.Z below the near plane first.
func (c *Camera) Project(view geom.Vec3, screenW, screenH int) (sx, sy float64) {
	f := float64(screenH) / 2 / math.Tan(c.FOV/2)
	sx = float64(screenW)/2 + view.X*f/view.Z
	sy = float64(screenH)/2 - view.Y*f/view.Z
	return sx, sy
}
