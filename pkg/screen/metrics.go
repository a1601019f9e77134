package screen

import (
	"expvar"
	"sync/atomic"
)

// Metrics counts what happens to a Screen. Counters are atomic so a
// monitoring goroutine may read them while the owner goroutine updates them.
//
// Call RegisterExpvar to publish them at /debug/vars.
type Metrics struct {
	resizes           atomic.Int64
	pixelRatioChanges atomic.Int64
	fullscreenChanges atomic.Int64
	applies           atomic.Int64
	resolutionWarns   atomic.Int64
	pushes            atomic.Int64
	pops              atomic.Int64
	stackDepth        atomic.Int32

	registered atomic.Bool
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RegisterExpvar publishes the metrics with the given name prefix ("screen"
// if empty). Safe to call multiple times; only the first call registers.
// expvar names are process-global, so use distinct prefixes for distinct
// collectors.
func (m *Metrics) RegisterExpvar(prefix string) {
	if m.registered.Swap(true) {
		return
	}
	if prefix == "" {
		prefix = "screen"
	}
	publish := func(name string, f func() any) {
		expvar.Publish(prefix+"_"+name, expvar.Func(f))
	}
	publish("resizes_total", func() any { return m.resizes.Load() })
	publish("pixel_ratio_changes_total", func() any { return m.pixelRatioChanges.Load() })
	publish("fullscreen_changes_total", func() any { return m.fullscreenChanges.Load() })
	publish("applies_total", func() any { return m.applies.Load() })
	publish("resolution_warnings_total", func() any { return m.resolutionWarns.Load() })
	publish("stack_pushes_total", func() any { return m.pushes.Load() })
	publish("stack_pops_total", func() any { return m.pops.Load() })
	publish("stack_depth", func() any { return m.stackDepth.Load() })
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Resizes            int64
	PixelRatioChanges  int64
	FullscreenChanges  int64
	Applies            int64
	ResolutionWarnings int64
	StackPushes        int64
	StackPops          int64
	StackDepth         int32
}

// Snapshot returns a point-in-time copy of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Resizes:            m.resizes.Load(),
		PixelRatioChanges:  m.pixelRatioChanges.Load(),
		FullscreenChanges:  m.fullscreenChanges.Load(),
		Applies:            m.applies.Load(),
		ResolutionWarnings: m.resolutionWarns.Load(),
		StackPushes:        m.pushes.Load(),
		StackPops:          m.pops.Load(),
		StackDepth:         m.stackDepth.Load(),
	}
}

func (m *Metrics) incResize()           { m.resizes.Add(1) }
func (m *Metrics) incPixelRatioChange() { m.pixelRatioChanges.Add(1) }
func (m *Metrics) incFullscreenChange() { m.fullscreenChanges.Add(1) }
func (m *Metrics) incApply()            { m.applies.Add(1) }
func (m *Metrics) incResolutionWarn()   { m.resolutionWarns.Add(1) }

func (m *Metrics) recordPush(depth int) {
	m.pushes.Add(1)
	m.stackDepth.Store(int32(depth))
}

func (m *Metrics) recordPop(depth int) {
	m.pops.Add(1)
	m.stackDepth.Store(int32(depth))
}
