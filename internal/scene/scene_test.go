package scene

import (
	"math"
	"testing"

	"github.com/rishik7575/3d-farm-visualizer/internal/config"
	"github.com/rishik7575/3d-farm-visualizer/internal/farm"
)

func testConfig() *config.Config {
	cfg := config.Default()
	// Short growth and a sparse environment keep scene tests quick.
	cfg.Growth.DurationSeconds = 0.2
	cfg.Environment.Hills.CountMin, cfg.Environment.Hills.CountMax = 2, 2
	cfg.Environment.Trees.CountMin, cfg.Environment.Trees.CountMax = 3, 3
	cfg.Environment.Rocks.CountMin, cfg.Environment.Rocks.CountMax = 2, 2
	cfg.Environment.Clouds.Count = 2
	cfg.Build.Workers = 2
	return cfg
}

func standardAllocs() []farm.CropAllocation {
	return []farm.CropAllocation{
		{Type: farm.CropWheat, Percentage: 30},
		{Type: farm.CropCorn, Percentage: 40},
		{Type: farm.CropSoybean, Percentage: 20},
		{Type: farm.CropCotton, Percentage: 10},
	}
}

// settle runs updates until every batch has finished growing.
func settle(s *Scene, seconds float64) {
	const dt = 1.0 / 60
	for t := 0.0; t < seconds; t += dt {
		s.Update(dt)
	}
}

func TestSceneRebuild(t *testing.T) {
	t.Run("First Build Creates Land And Batches", func(t *testing.T) {
		s := NewScene(testConfig(), 1)
		defer s.Dispose()

		s.RequestRebuild(50, standardAllocs())
		if !s.Loading() {
			t.Error("scene should report loading after a rebuild request")
		}
		s.Update(1.0 / 60)

		if s.Loading() {
			t.Error("loading should clear once the rebuild is applied")
		}
		land := s.Land()
		if land == nil {
			t.Fatal("no land plot after rebuild")
		}
		want := math.Sqrt(50) * farm.FeetPerAcreSide * s.cfg.GetScaleConstant()
		if math.Abs(land.SizeUnits-want) > 1e-9 {
			t.Errorf("land SizeUnits = %v, want %v", land.SizeUnits, want)
		}
		if len(s.batches) != 4 {
			t.Errorf("got %d batches, want 4", len(s.batches))
		}
		if s.LiveInstanceCount() == 0 {
			t.Error("expected live plant instances after rebuild")
		}
	})

	t.Run("Invalid Acreage Keeps Previous Build", func(t *testing.T) {
		s := NewScene(testConfig(), 1)
		defer s.Dispose()

		s.RequestRebuild(50, standardAllocs())
		s.Update(1.0 / 60)
		before := s.LiveInstanceCount()
		sizeBefore := s.Land().SizeUnits

		for _, bad := range []float64{0, -5, math.NaN(), math.Inf(1)} {
			s.RequestRebuild(bad, standardAllocs())
			s.Update(1.0 / 60)
			if s.Loading() {
				t.Errorf("loading stuck after invalid acreage %v", bad)
			}
			if s.Land() == nil || s.Land().SizeUnits != sizeBefore {
				t.Fatalf("previous land lost after invalid acreage %v", bad)
			}
			if s.LiveInstanceCount() != before {
				t.Errorf("instances changed after invalid acreage %v", bad)
			}
		}
	})

	t.Run("Unchanged Sections Keep Their Batches", func(t *testing.T) {
		s := NewScene(testConfig(), 1)
		defer s.Dispose()

		s.RequestRebuild(50, []farm.CropAllocation{
			{Type: farm.CropWheat, Percentage: 50},
			{Type: farm.CropCorn, Percentage: 50},
		})
		s.Update(1.0 / 60)
		settle(s, 0.5)
		if got := s.BatchStates()[farm.CropWheat]; got != farm.StateIdle {
			t.Fatalf("wheat state before second rebuild = %v, want idle", got)
		}

		// Same acres, wheat untouched, corn reallocated.
		s.RequestRebuild(50, []farm.CropAllocation{
			{Type: farm.CropWheat, Percentage: 50},
			{Type: farm.CropCorn, Percentage: 30},
			{Type: farm.CropSoybean, Percentage: 20},
		})
		s.Update(1.0 / 60)

		states := s.BatchStates()
		if states[farm.CropWheat] != farm.StateIdle {
			t.Errorf("wheat batch was rebuilt, state = %v, want idle", states[farm.CropWheat])
		}
		if states[farm.CropCorn] == farm.StateIdle {
			t.Error("corn batch should have restarted growth after its width changed")
		}
		if _, ok := states[farm.CropSoybean]; !ok {
			t.Error("soybean batch missing after rebuild")
		}
	})

	t.Run("Acreage Change Replaces Everything", func(t *testing.T) {
		s := NewScene(testConfig(), 1)
		defer s.Dispose()

		s.RequestRebuild(50, standardAllocs())
		s.Update(1.0 / 60)
		settle(s, 0.5)

		s.RequestRebuild(80, standardAllocs())
		s.Update(1.0 / 60)
		for crop, state := range s.BatchStates() {
			if state == farm.StateIdle {
				t.Errorf("%s batch survived an acreage change", crop)
			}
		}
	})

	t.Run("Racing Requests Collapse To The Latest", func(t *testing.T) {
		s := NewScene(testConfig(), 1)
		defer s.Dispose()

		s.RequestRebuild(50, standardAllocs())
		s.RequestRebuild(80, standardAllocs())
		s.Update(1.0 / 60)

		want := math.Sqrt(80) * farm.FeetPerAcreSide * s.cfg.GetScaleConstant()
		if math.Abs(s.Land().SizeUnits-want) > 1e-9 {
			t.Errorf("land SizeUnits = %v, want the 80-acre %v", s.Land().SizeUnits, want)
		}
	})
}

func TestSceneEvents(t *testing.T) {
	s := NewScene(testConfig(), 1)
	defer s.Dispose()

	var kinds []EventKind
	s.OnEvent(func(ev Event) { kinds = append(kinds, ev.Kind) })

	s.RequestRebuild(50, standardAllocs())
	s.Update(1.0 / 60)
	if len(kinds) == 0 || kinds[len(kinds)-1] != EventSceneReady {
		t.Errorf("expected a scene-ready event after rebuild, got %v", kinds)
	}

	kinds = nil
	s.SetViewMode(ViewTop)
	if len(kinds) != 1 || kinds[0] != EventViewChanged {
		t.Errorf("expected one view-changed event, got %v", kinds)
	}
	s.SetViewMode(ViewTop) // same mode, no event
	if len(kinds) != 1 {
		t.Errorf("re-selecting the active view emitted an event: %v", kinds)
	}

	kinds = nil
	settle(s, 0.5)
	completions := 0
	for _, k := range kinds {
		if k == EventGrowthComplete {
			completions++
		}
	}
	if completions != 4 {
		t.Errorf("got %d growth-complete events, want one per batch (4)", completions)
	}
}

func TestSceneDispose(t *testing.T) {
	t.Run("Dispose Is Idempotent", func(t *testing.T) {
		s := NewScene(testConfig(), 1)
		s.RequestRebuild(50, standardAllocs())
		s.Update(1.0 / 60)

		s.Dispose()
		s.Dispose()
		if !s.Disposed() {
			t.Error("scene should report disposed")
		}
		if s.Land() != nil {
			t.Error("land should be released on dispose")
		}
		if s.LiveInstanceCount() != 0 {
			t.Errorf("disposed scene has %d live instances", s.LiveInstanceCount())
		}
	})

	t.Run("Disposed Scene Ignores Requests", func(t *testing.T) {
		s := NewScene(testConfig(), 1)
		s.Dispose()

		s.RequestRebuild(50, standardAllocs())
		s.Update(1.0 / 60)
		if s.Land() != nil || s.Loading() {
			t.Error("disposed scene accepted a rebuild request")
		}
		if items := s.CollectDrawItems(nil, nil, nil); len(items) != 0 {
			t.Errorf("disposed scene produced %d draw items", len(items))
		}
	})

	t.Run("Repeated Rebuilds Do Not Leak", func(t *testing.T) {
		s := NewScene(testConfig(), 1)
		defer s.Dispose()

		for i := 0; i < 5; i++ {
			acres := 30.0 + float64(i)*10
			s.RequestRebuild(acres, standardAllocs())
			s.Update(1.0 / 60)
		}
		if len(s.batches) != 4 {
			t.Errorf("after 5 rebuilds there are %d batches, want 4", len(s.batches))
		}
	})
}

func TestCollectDrawItems(t *testing.T) {
	s := NewScene(testConfig(), 1)
	defer s.Dispose()

	envOnly := len(s.CollectDrawItems(nil, nil, nil))
	if envOnly == 0 {
		t.Fatal("environment should render before any land is built")
	}

	s.RequestRebuild(50, standardAllocs())
	s.Update(1.0 / 60)

	withFarm := len(s.CollectDrawItems(nil, nil, nil))
	want := envOnly + 1 + s.LiveInstanceCount()
	if withFarm != want {
		t.Errorf("draw items = %d, want environment + land + instances = %d", withFarm, want)
	}
}
