package task

import (
	"time"
)

// FrameMonitor tracks per-frame timing and the duration of the last scene
// rebuild for the debug overlay. All methods are called from the game
// loop goroutine only.
type FrameMonitor struct {
	frameCount    uint64
	lastFrameTime time.Duration
	avgFrameTime  time.Duration

	lastBuildTime time.Duration
	startTime     time.Time
}

// NewFrameMonitor returns a monitor with its epoch set to now.
func NewFrameMonitor() *FrameMonitor {
	return &FrameMonitor{startTime: time.Now()}
}

// FrameTimer measures a single frame; obtain one from StartFrame and call
// EndFrame when the update finishes.
type FrameTimer struct {
	monitor *FrameMonitor
	start   time.Time
}

// StartFrame begins timing one frame.
func (m *FrameMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{monitor: m, start: time.Now()}
}

// EndFrame records the elapsed frame time.
func (t *FrameTimer) EndFrame() {
	elapsed := time.Since(t.start)
	m := t.monitor
	m.frameCount++
	m.lastFrameTime = elapsed
	// Exponential moving average smooths the overlay readout.
	if m.avgFrameTime == 0 {
		m.avgFrameTime = elapsed
	} else {
		m.avgFrameTime = (m.avgFrameTime*9 + elapsed) / 10
	}
}

// RecordBuild times fn, which is expected to be a synchronous scene rebuild.
func (m *FrameMonitor) RecordBuild(fn func()) {
	start := time.Now()
	fn()
	m.lastBuildTime = time.Since(start)
}

// FrameCount returns the number of completed frames.
func (m *FrameMonitor) FrameCount() uint64 {
	return m.frameCount
}

// AvgFrameTime returns the smoothed frame duration.
func (m *FrameMonitor) AvgFrameTime() time.Duration {
	return m.avgFrameTime
}

// LastBuildTime returns the duration of the most recent scene rebuild.
func (m *FrameMonitor) LastBuildTime() time.Duration {
	return m.lastBuildTime
}

// Uptime returns time since the monitor was created.
func (m *FrameMonitor) Uptime() time.Duration {
	return time.Since(m.startTime)
}
