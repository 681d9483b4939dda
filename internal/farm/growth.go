package farm

import (
	"math"

	"github.com/rishik7575/3d-farm-visualizer/internal/mathutil"
)

// GrowthState is the animation phase of one crop batch.
type GrowthState int

const (
	// StatePlanted means instances exist at zero height, waiting for the
	// first tick.
	StatePlanted GrowthState = iota
	// StateGrowing animates Y-scale from zero to full height.
	StateGrowing
	// StateIdle applies the steady wind sway, indefinitely.
	StateIdle
)

func (s GrowthState) String() string {
	switch s {
	case StatePlanted:
		return "planted"
	case StateGrowing:
		return "growing"
	default:
		return "idle"
	}
}

// Batch is the set of plant instances created together for one crop
// section. All instances share one growth timer; batches animate
// independently of each other, so a rebuild of one crop type never
// disturbs another batch's sway.
type Batch struct {
	Type      CropType
	Instances []*PlantInstance

	state      GrowthState
	elapsed    float64
	duration   float64
	overshoot  float64
	onComplete func(*Batch)
	disposed   bool
}

// NewBatch wraps freshly created instances in a growth state machine.
func NewBatch(t CropType, instances []*PlantInstance, duration, overshoot float64) *Batch {
	if duration <= 0 {
		duration = 1
	}
	for _, inst := range instances {
		inst.ScaleY = 0
	}
	return &Batch{
		Type:      t,
		Instances: instances,
		state:     StatePlanted,
		duration:  duration,
		overshoot: overshoot,
	}
}

// SetOnComplete registers a callback fired once when the batch finishes
// growing and enters idle sway.
func (b *Batch) SetOnComplete(fn func(*Batch)) {
	b.onComplete = fn
}

// State returns the batch's current phase.
func (b *Batch) State() GrowthState {
	return b.state
}

// InstanceCount returns the number of live instances.
func (b *Batch) InstanceCount() int {
	if b.disposed {
		return 0
	}
	return len(b.Instances)
}

// Update advances the state machine by dt seconds. now is the scene clock
// used to phase the idle sway.
func (b *Batch) Update(dt, now float64) {
	if b.disposed {
		return
	}
	switch b.state {
	case StatePlanted:
		// Growth starts on the first tick after creation.
		b.state = StateGrowing
		fallthrough

	case StateGrowing:
		b.elapsed += dt
		progress := mathutil.Clamp(b.elapsed/b.duration, 0, 1)
		applied := EaseOutBack(progress, b.overshoot)
		for _, inst := range b.Instances {
			inst.ScaleY = inst.BaseScale * applied
		}
		if progress >= 1 {
			b.state = StateIdle
			if b.onComplete != nil {
				b.onComplete(b)
			}
		}

	case StateIdle:
		for _, inst := range b.Instances {
			inst.RotationZ = math.Sin(now*inst.Sway.Speed+inst.Sway.Phase) * inst.Sway.Amplitude
		}
	}
}

// Dispose releases the batch's instances and their models. A disposed
// batch ignores further updates. Safe to call repeatedly.
func (b *Batch) Dispose() {
	if b == nil || b.disposed {
		return
	}
	b.disposed = true
	for _, inst := range b.Instances {
		inst.Model = nil
	}
	b.Instances = nil
}

// Disposed reports whether the batch has been released.
func (b *Batch) Disposed() bool {
	return b == nil || b.disposed
}

// EaseOutBack maps growth progress to applied scale: fast early growth
// that overshoots full height slightly, then settles back. Endpoints are
// exact: f(0) = 0 and f(1) = 1.
func EaseOutBack(t, overshoot float64) float64 {
	c1 := overshoot
	c3 := c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}
