package farm

import (
	"errors"
	"math"
	"testing"

	"github.com/rishik7575/3d-farm-visualizer/internal/config"
)

func TestSizeUnitsFormula(t *testing.T) {
	cfg := config.Default()
	scale := cfg.Land.ScaleConstant

	testCases := []float64{0.5, 1, 10, 50, 123.4, 5000}
	for _, acres := range testCases {
		want := math.Sqrt(acres) * 208.7 * scale
		got := SizeUnits(acres, scale)
		if got != want {
			t.Errorf("SizeUnits(%v) = %v, want exactly %v", acres, got, want)
		}
	}
}

func TestBuildLandPlot(t *testing.T) {
	cfg := config.Default()

	t.Run("Valid Acreage", func(t *testing.T) {
		plot, err := BuildLandPlot(50, cfg)
		if err != nil {
			t.Fatalf("BuildLandPlot(50) returned error: %v", err)
		}
		if plot.SizeUnits != SizeUnits(50, cfg.Land.ScaleConstant) {
			t.Errorf("plot.SizeUnits = %v, want %v", plot.SizeUnits, SizeUnits(50, cfg.Land.ScaleConstant))
		}
		if plot.Mesh == nil || plot.Mesh.TriangleCount() == 0 {
			t.Fatal("plot should have a non-empty mesh")
		}

		// Every vertex must stay within the plot footprint.
		half := plot.SizeUnits / 2
		for _, v := range plot.Mesh.Vertices {
			if v.Pos.X < -half-1e-9 || v.Pos.X > half+1e-9 ||
				v.Pos.Z < -half-1e-9 || v.Pos.Z > half+1e-9 {
				t.Fatalf("vertex (%v, %v) outside plot footprint %v", v.Pos.X, v.Pos.Z, half)
			}
		}
	})

	t.Run("Undulation Is Position Dependent Only", func(t *testing.T) {
		a, err1 := BuildLandPlot(25, cfg)
		b, err2 := BuildLandPlot(25, cfg)
		if err1 != nil || err2 != nil {
			t.Fatalf("unexpected errors: %v, %v", err1, err2)
		}
		if len(a.Mesh.Vertices) != len(b.Mesh.Vertices) {
			t.Fatal("identical acreage should produce identical meshes")
		}
		for i := range a.Mesh.Vertices {
			if a.Mesh.Vertices[i].Pos != b.Mesh.Vertices[i].Pos {
				t.Fatalf("vertex %d differs between identical builds", i)
			}
		}
	})

	t.Run("Invalid Acreage", func(t *testing.T) {
		invalid := []struct {
			name  string
			acres float64
		}{
			{"zero", 0},
			{"negative", -10},
			{"nan", math.NaN()},
			{"positive infinity", math.Inf(1)},
			{"negative infinity", math.Inf(-1)},
		}
		for _, tc := range invalid {
			t.Run(tc.name, func(t *testing.T) {
				plot, err := BuildLandPlot(tc.acres, cfg)
				if !errors.Is(err, ErrInvalidAcreage) {
					t.Errorf("BuildLandPlot(%v) error = %v, want ErrInvalidAcreage", tc.acres, err)
				}
				if plot != nil {
					t.Errorf("BuildLandPlot(%v) should not construct a plot", tc.acres)
				}
			})
		}
	})

	t.Run("Dispose Is Idempotent", func(t *testing.T) {
		plot, err := BuildLandPlot(10, cfg)
		if err != nil {
			t.Fatal(err)
		}
		plot.Dispose()
		plot.Dispose()
		if !plot.Disposed() {
			t.Error("plot should report disposed")
		}
		if plot.Mesh != nil {
			t.Error("disposed plot should release its mesh")
		}

		var nilPlot *LandPlot
		nilPlot.Dispose() // must not panic
		if !nilPlot.Disposed() {
			t.Error("nil plot counts as disposed")
		}
	})
}

func TestSmoothNoiseRange(t *testing.T) {
	for x := -20.0; x < 20; x += 0.7 {
		for y := -20.0; y < 20; y += 0.7 {
			n := smoothNoise(x, y)
			if n < 0 || n > 1 {
				t.Fatalf("smoothNoise(%v, %v) = %v, want [0, 1]", x, y, n)
			}
		}
	}
}
