package screen

import (
	"expvar"
	"testing"
)

func TestNewMetricsZero(t *testing.T) {
	if snap := NewMetrics().Snapshot(); snap != (MetricsSnapshot{}) {
		t.Errorf("new metrics snapshot = %+v, want zero", snap)
	}
}

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()
	m.incResize()
	m.incResize()
	m.incPixelRatioChange()
	m.incFullscreenChange()
	m.incApply()
	m.incApply()
	m.incApply()
	m.incResolutionWarn()
	m.recordPush(1)
	m.recordPush(2)
	m.recordPop(1)

	snap := m.Snapshot()
	tests := []struct {
		name      string
		got, want int64
	}{
		{"Resizes", snap.Resizes, 2},
		{"PixelRatioChanges", snap.PixelRatioChanges, 1},
		{"FullscreenChanges", snap.FullscreenChanges, 1},
		{"Applies", snap.Applies, 3},
		{"ResolutionWarnings", snap.ResolutionWarnings, 1},
		{"StackPushes", snap.StackPushes, 2},
		{"StackPops", snap.StackPops, 1},
		{"StackDepth", int64(snap.StackDepth), 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestMetricsRegisterExpvar(t *testing.T) {
	m := NewMetrics()
	m.RegisterExpvar("screen_test")
	m.RegisterExpvar("screen_test")
	m.incApply()

	v := expvar.Get("screen_test_applies_total")
	if v == nil {
		t.Fatal("screen_test_applies_total not published")
	}
	if v.String() != "1" {
		t.Errorf("applies_total = %s, want 1", v.String())
	}
}
