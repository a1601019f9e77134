package display

import "math"

// ClampPixelRatio returns r, or 1 when r is below 1 or not a number. A ratio
// below 1 would under-sample the surface and is treated as a host anomaly.
func ClampPixelRatio(r float64) float64 {
	if math.IsNaN(r) || r < 1 {
		return 1
	}
	return r
}

// PixelRatioTracker owns the device pixel ratio. Asking the host for the
// ratio can be expensive, so the value is cached and only refreshed when the
// host announces a change.
type PixelRatioTracker struct {
	source   PixelRatioSource
	override float64
	cached   float64
	onChange func()
	logger   Logger

	sub      Subscription
	legacy   bool
	stopped  bool
	rearmErr error
}

// NewPixelRatioTracker returns a tracker reading from source. A positive
// override pins the effective ratio. onChange runs after every host change
// notification once the cached ratio has been refreshed; it may be nil.
func NewPixelRatioTracker(source PixelRatioSource, override float64, onChange func(), logger Logger) *PixelRatioTracker {
	t := &PixelRatioTracker{
		source:   source,
		override: override,
		onChange: onChange,
		logger:   orNop(logger),
	}
	t.cached = t.read()
	return t
}

// Start subscribes to density-change notifications.
func (t *PixelRatioTracker) Start() {
	t.stopped = false
	t.arm()
}

// Stop cancels the outstanding subscription. Notifications that arrive after
// Stop are ignored.
func (t *PixelRatioTracker) Stop() {
	t.stopped = true
	if t.sub != nil {
		t.sub.Cancel()
		t.sub = nil
	}
}

// Ratio returns the effective pixel ratio: the override when set, otherwise
// the cached host ratio.
func (t *PixelRatioTracker) Ratio() float64 {
	if t.override > 0 {
		return t.override
	}
	return t.cached
}

// HostRatio returns the cached, clamped host ratio ignoring any override.
func (t *PixelRatioTracker) HostRatio() float64 {
	return t.cached
}

// Override returns the override, or 0 when the host ratio is in effect.
func (t *PixelRatioTracker) Override() float64 {
	return t.override
}

// SetOverride pins the effective ratio to r. Zero or a negative value returns
// control to the host ratio.
func (t *PixelRatioTracker) SetOverride(r float64) {
	if r < 0 {
		r = 0
	}
	t.override = r
}

// Legacy reports whether the tracker fell back to the persistent listener
// variant because the host lacks single-shot notifications.
func (t *PixelRatioTracker) Legacy() bool {
	return t.legacy
}

// Err returns the last error from arming a subscription, if neither variant
// was available.
func (t *PixelRatioTracker) Err() error {
	return t.rearmErr
}

func (t *PixelRatioTracker) read() float64 {
	if t.source == nil {
		return 1
	}
	return ClampPixelRatio(t.source.DevicePixelRatio())
}

// arm (re)subscribes for the next change. The single-shot variant is used
// when the host offers it; otherwise a persistent listener is registered
// once and kept in place so it keeps its position among the host's
// listeners.
func (t *PixelRatioTracker) arm() {
	if t.source == nil {
		return
	}
	if t.legacy && t.sub != nil {
		return
	}
	if t.sub != nil {
		t.sub.Cancel()
		t.sub = nil
	}

	sub, err := t.source.OnPixelRatioChange(t.handle)
	if err == nil {
		t.sub = sub
		t.legacy = false
		t.rearmErr = nil
		return
	}

	listener, ok := t.source.(PixelRatioListener)
	if !ok {
		t.rearmErr = err
		t.logger.Debug("pixel ratio notifications unavailable", "error", err)
		return
	}
	t.sub = listener.AddPixelRatioListener(t.handle)
	t.legacy = true
	t.rearmErr = nil
}

func (t *PixelRatioTracker) handle() {
	if t.stopped {
		return
	}
	t.arm()
	t.cached = t.read()
	t.logger.Debug("pixel ratio change", "ratio", t.cached, "effective", t.Ratio())
	if t.onChange != nil {
		t.onChange()
	}
}
