package scene

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rishik7575/3d-farm-visualizer/internal/config"
	"github.com/rishik7575/3d-farm-visualizer/internal/farm"
	"github.com/rishik7575/3d-farm-visualizer/internal/geom"
	"github.com/rishik7575/3d-farm-visualizer/internal/render"
	"github.com/rishik7575/3d-farm-visualizer/internal/task"
)

// batchEntry pairs a growth batch with the section it was built for, so a
// later rebuild can tell untouched sections apart from changed ones.
type batchEntry struct {
	section farm.CropSection
	batch   *farm.Batch
}

// rebuildRequest is a pending land/crop rebuild, applied on the next tick.
type rebuildRequest struct {
	acres  float64
	allocs []farm.CropAllocation
}

// Scene owns every entity of one visualization instance: the decorative
// environment, the active land plot, the crop batches, and the camera
// rig. All mutation happens on the game-loop goroutine; the only
// parallelism is the plant-generation fan-out inside a rebuild, which is
// waited on before the new generation goes live.
type Scene struct {
	cfg *config.Config
	rng *rand.Rand

	env     *Environment
	land    *farm.LandPlot
	batches []batchEntry
	rig     *CameraRig
	pool    *task.WorkerPool

	listeners []func(Event)
	pending   *rebuildRequest
	loading   bool
	disposed  bool

	clock float64
	acres float64
}

// NewScene generates the environment and camera rig for a fresh mount.
// The land plot appears once the first rebuild request arrives.
func NewScene(cfg *config.Config, seed int64) *Scene {
	rng := rand.New(rand.NewSource(seed))
	return &Scene{
		cfg:  cfg,
		rng:  rng,
		env:  BuildEnvironment(cfg, rng),
		rig:  NewCameraRig(cfg),
		pool: task.NewWorkerPool(cfg.Build.Workers),
	}
}

// OnEvent registers a notification listener.
func (s *Scene) OnEvent(fn func(Event)) {
	s.listeners = append(s.listeners, fn)
}

func (s *Scene) emit(kind EventKind, format string, args ...any) {
	ev := Event{Kind: kind, Message: fmt.Sprintf(format, args...)}
	for _, fn := range s.listeners {
		fn(ev)
	}
}

// Loading reports whether a rebuild is pending or in progress.
func (s *Scene) Loading() bool {
	return s.loading
}

// Land returns the active plot, or nil before the first build.
func (s *Scene) Land() *farm.LandPlot {
	return s.land
}

// Rig returns the camera rig.
func (s *Scene) Rig() *CameraRig {
	return s.rig
}

// Environment returns the decorative backdrop.
func (s *Scene) Environment() *Environment {
	return s.env
}

// Clock returns the scene's elapsed animation time in seconds.
func (s *Scene) Clock() float64 {
	return s.clock
}

// LiveInstanceCount sums the plant instances across all live batches.
func (s *Scene) LiveInstanceCount() int {
	total := 0
	for _, entry := range s.batches {
		total += entry.batch.InstanceCount()
	}
	return total
}

// BatchStates returns the growth state per section, in layout order.
func (s *Scene) BatchStates() map[farm.CropType]farm.GrowthState {
	states := make(map[farm.CropType]farm.GrowthState, len(s.batches))
	for _, entry := range s.batches {
		states[entry.section.Type] = entry.batch.State()
	}
	return states
}

// SetViewMode switches the camera preset and notifies listeners.
func (s *Scene) SetViewMode(mode ViewMode) {
	if s.disposed || mode == s.rig.Mode() {
		return
	}
	s.rig.SetMode(mode)
	s.emit(EventViewChanged, "view changed to %s", mode)
}

// RequestRebuild schedules a land/crop rebuild for the next tick. The
// allocation list is taken as-is from the recommendation engine; a
// request against a disposed scene is a safe no-op.
func (s *Scene) RequestRebuild(acres float64, allocs []farm.CropAllocation) {
	if s.disposed {
		return
	}
	// Last writer wins: racing requests collapse onto the most recent.
	s.pending = &rebuildRequest{
		acres:  acres,
		allocs: append([]farm.CropAllocation(nil), allocs...),
	}
	s.loading = true
}

// Update advances the scene by dt seconds: applies any pending rebuild,
// ticks the ambient decoration, then every growth batch. All updates in
// one tick are synchronous; nothing is skipped.
func (s *Scene) Update(dt float64) {
	if s.disposed {
		return
	}
	if s.pending != nil {
		req := s.pending
		s.pending = nil
		s.rebuild(req)
	}

	s.clock += dt
	s.env.Tick(dt)
	for _, entry := range s.batches {
		entry.batch.Update(dt, s.clock)
	}
}

// rebuild replaces the land plot and crop batches. Invalid acreage is a
// no-op that leaves the previous build untouched. Sections identical to
// the previous build are kept alive, so rebuilding one crop's allocation
// never interrupts another batch's sway; everything else is disposed
// before its replacement is created.
func (s *Scene) rebuild(req *rebuildRequest) {
	defer func() { s.loading = false }()

	if req.acres <= 0 || math.IsNaN(req.acres) || math.IsInf(req.acres, 0) {
		return
	}

	acresChanged := s.land == nil || req.acres != s.acres

	if acresChanged {
		// Land replacement invalidates every placement grid.
		for _, entry := range s.batches {
			entry.batch.Dispose()
		}
		s.batches = nil
		s.land.Dispose()

		land, err := farm.BuildLandPlot(req.acres, s.cfg)
		if err != nil {
			s.land = nil
			return
		}
		s.land = land
		s.acres = req.acres
		s.rig.SetSizeUnits(land.SizeUnits)
	}

	sections := farm.LayoutSections(req.allocs, s.land.SizeUnits)

	// Keep batches whose section is unchanged; everything else goes.
	kept := make(map[int]*farm.Batch, len(sections))
	for _, entry := range s.batches {
		idx := -1
		for i, sec := range sections {
			if kept[i] == nil && sec == entry.section {
				idx = i
				break
			}
		}
		if idx >= 0 {
			kept[idx] = entry.batch
		} else {
			entry.batch.Dispose()
		}
	}
	s.batches = nil

	// Fan plant generation out per section, one derived seed each so a
	// worker never touches the scene rng concurrently.
	results := make([][]*farm.PlantInstance, len(sections))
	for i, sec := range sections {
		if kept[i] != nil {
			continue
		}
		i, sec := i, sec
		seed := s.rng.Int63()
		s.pool.Submit(func() {
			factory := farm.NewFactory(rand.New(rand.NewSource(seed)))
			results[i] = factory.PopulateSection(sec, s.land.SizeUnits)
		})
	}
	s.pool.Wait()

	duration := s.cfg.GetGrowthDuration()
	overshoot := s.cfg.GetOvershoot()
	for i, sec := range sections {
		batch := kept[i]
		if batch == nil {
			batch = farm.NewBatch(sec.Type, results[i], duration, overshoot)
			crop := sec.Type
			batch.SetOnComplete(func(*farm.Batch) {
				s.emit(EventGrowthComplete, "%s growth complete", crop)
			})
		}
		s.batches = append(s.batches, batchEntry{section: sec, batch: batch})
	}

	s.emit(EventSceneReady, "scene ready: %.0f acres, %d sections", req.acres, len(sections))
}

// CollectDrawItems gathers every renderable for the current frame.
// landTex and waterTex are optional decorative textures; nil falls back
// to flat vertex colors.
func (s *Scene) CollectDrawItems(items []render.DrawItem, landTex, waterTex *ebiten.Image) []render.DrawItem {
	if s.disposed {
		return items
	}
	items = s.env.AppendDrawItems(items, waterTex)

	if s.land != nil && !s.land.Disposed() {
		items = append(items, render.DrawItem{
			Mesh:      s.land.Mesh,
			Transform: geom.Mat4Identity(),
			Texture:   landTex,
		})
	}
	for _, entry := range s.batches {
		for _, inst := range entry.batch.Instances {
			if inst.Model == nil {
				continue
			}
			items = append(items, render.DrawItem{
				Mesh:      inst.Model,
				Transform: inst.Transform(),
			})
		}
	}
	return items
}

// Dispose tears the scene down: batches, land and environment are all
// released and the build pool stops. Idempotent, and safe to call even
// if no land was ever built.
func (s *Scene) Dispose() {
	if s == nil || s.disposed {
		return
	}
	s.disposed = true
	s.pending = nil
	s.loading = false
	for _, entry := range s.batches {
		entry.batch.Dispose()
	}
	s.batches = nil
	s.land.Dispose()
	s.land = nil
	s.env.Dispose()
	s.pool.Stop()
}

// Disposed reports whether the scene has been torn down.
func (s *Scene) Disposed() bool {
	return s.disposed
}
