package render

import (
	"math"
	"testing"

	"github.com/rishik7575/3d-farm-visualizer/internal/geom"
)

func TestCameraToView(t *testing.T) {
	cam := NewCamera(math.Pi / 4)
	cam.Position = geom.V3(0, 0, -10)
	cam.LookAt = geom.V3(0, 0, 0)

	t.Run("Forward Point Has Positive Z", func(t *testing.T) {
		v := cam.ToView(geom.V3(0, 0, 0))
		if math.Abs(v.Z-10) > 1e-9 {
			t.Errorf("view Z = %v, want 10", v.Z)
		}
		if math.Abs(v.X) > 1e-9 || math.Abs(v.Y) > 1e-9 {
			t.Errorf("centered point off axis: %+v", v)
		}
	})

	t.Run("Behind Camera Has Negative Z", func(t *testing.T) {
		v := cam.ToView(geom.V3(0, 0, -20))
		if v.Z >= 0 {
			t.Errorf("point behind camera has view Z = %v", v.Z)
		}
	})

	t.Run("Up Axis Maps To View Y", func(t *testing.T) {
		v := cam.ToView(geom.V3(0, 3, 0))
		if math.Abs(v.Y-3) > 1e-9 {
			t.Errorf("view Y = %v, want 3", v.Y)
		}
	})

	t.Run("Straight Down Does Not Degenerate", func(t *testing.T) {
		down := NewCamera(math.Pi / 4)
		down.Position = geom.V3(0, 10, 0)
		down.LookAt = geom.V3(0, 0, 0)
		v := down.ToView(geom.V3(1, 0, 1))
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) {
			t.Errorf("degenerate basis produced NaN: %+v", v)
		}
	})
}

func TestCameraProject(t *testing.T) {
	cam := NewCamera(math.Pi / 2)
	cam.Position = geom.V3(0, 0, -10)
	cam.LookAt = geom.V3(0, 0, 0)
	const w, h = 800, 600

	t.Run("Center Of View Hits Screen Center", func(t *testing.T) {
		sx, sy := cam.Project(cam.ToView(geom.V3(0, 0, 0)), w, h)
		if math.Abs(sx-400) > 1e-9 || math.Abs(sy-300) > 1e-9 {
			t.Errorf("projected to (%v, %v), want (400, 300)", sx, sy)
		}
	})

	t.Run("Higher Points Project Higher On Screen", func(t *testing.T) {
		_, syLow := cam.Project(cam.ToView(geom.V3(0, 0, 0)), w, h)
		_, syHigh := cam.Project(cam.ToView(geom.V3(0, 2, 0)), w, h)
		if syHigh >= syLow {
			t.Errorf("raising a point lowered it on screen: %v -> %v", syLow, syHigh)
		}
	})

	t.Run("Farther Points Shrink Toward Center", func(t *testing.T) {
		sxNear, _ := cam.Project(cam.ToView(geom.V3(3, 0, 0)), w, h)
		sxFar, _ := cam.Project(cam.ToView(geom.V3(3, 0, 20)), w, h)
		if math.Abs(sxFar-400) >= math.Abs(sxNear-400) {
			t.Errorf("perspective not shrinking: near %v, far %v", sxNear, sxFar)
		}
	})
}
