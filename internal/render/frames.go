package render

import (
	"sync/atomic"
	"time"
)

// FrameTimer tracks how long scene drawing takes. Minimum, maximum and
// average cover the frames since the last window rollover, so the overlay
// shows recent cost rather than a lifetime figure.
type FrameTimer struct {
	window time.Duration

	count       atomic.Int64
	total       atomic.Int64
	min         atomic.Int64
	max         atomic.Int64
	windowStart atomic.Int64

	// Stats of the last completed window.
	lastAvg atomic.Int64
	lastMin atomic.Int64
	lastMax atomic.Int64

	now func() time.Time
}

// NewFrameTimer returns a timer that rolls its statistics over every window
// (one second if window is not positive).
func NewFrameTimer(window time.Duration) *FrameTimer {
	if window <= 0 {
		window = time.Second
	}
	ft := &FrameTimer{window: window, now: time.Now}
	ft.reset(ft.now())
	return ft
}

func (ft *FrameTimer) reset(at time.Time) {
	ft.count.Store(0)
	ft.total.Store(0)
	ft.min.Store(int64(time.Hour))
	ft.max.Store(0)
	ft.windowStart.Store(at.UnixNano())
}

// Record adds one frame's drawing time.
func (ft *FrameTimer) Record(d time.Duration) {
	n := d.Nanoseconds()
	ft.count.Add(1)
	ft.total.Add(n)
	for cur := ft.min.Load(); n < cur && !ft.min.CompareAndSwap(cur, n); cur = ft.min.Load() {
	}
	for cur := ft.max.Load(); n > cur && !ft.max.CompareAndSwap(cur, n); cur = ft.max.Load() {
	}

	now := ft.now()
	if now.Sub(time.Unix(0, ft.windowStart.Load())) < ft.window {
		return
	}
	if count := ft.count.Load(); count > 0 {
		ft.lastAvg.Store(ft.total.Load() / count)
		ft.lastMin.Store(ft.min.Load())
		ft.lastMax.Store(ft.max.Load())
	}
	ft.reset(now)
}

// Time runs fn and records its duration.
func (ft *FrameTimer) Time(fn func()) {
	start := ft.now()
	fn()
	ft.Record(ft.now().Sub(start))
}

// Stats returns average, minimum and maximum frame time of the last
// completed window. All are zero until the first window completes.
func (ft *FrameTimer) Stats() (avg, lo, hi time.Duration) {
	return time.Duration(ft.lastAvg.Load()), time.Duration(ft.lastMin.Load()), time.Duration(ft.lastMax.Load())
}
