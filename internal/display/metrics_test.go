package display

import "testing"

func TestMetricsDerivedValues(t *testing.T) {
	m := Metrics{Resolution: Dim(800, 600), Viewport: Dim(400, 300), PixelRatio: 2}

	if got := m.AspectRatio(); !approx(got, 800.0/600.0) {
		t.Errorf("AspectRatio() = %v, want %v", got, 800.0/600.0)
	}
	if m.ScaledWidth() != 1600 || m.ScaledHeight() != 1200 {
		t.Errorf("scaled = %vx%v, want 1600x1200", m.ScaledWidth(), m.ScaledHeight())
	}
	if m.HalfScaledWidth() != 800 || m.HalfScaledHeight() != 600 {
		t.Errorf("half scaled = %vx%v, want 800x600", m.HalfScaledWidth(), m.HalfScaledHeight())
	}
	if m.DrawWidth() != 800 || m.DrawHeight() != 600 {
		t.Errorf("draw without camera = %vx%v, want 800x600", m.DrawWidth(), m.DrawHeight())
	}
	if !m.IsHiDPI() {
		t.Error("IsHiDPI() = false for ratio 2")
	}

	m.Zoom = 2
	if m.DrawWidth() != 400 || m.DrawHeight() != 300 {
		t.Errorf("draw with zoom 2 = %vx%v, want 400x300", m.DrawWidth(), m.DrawHeight())
	}
	assertVec(t, "Center()", m.Center(), Vec(200, 150))
}

func TestDimensionHelpers(t *testing.T) {
	tests := []struct {
		d          Dimension
		zero, degn bool
	}{
		{Dim(0, 0), true, true},
		{Dim(0, 10), false, true},
		{Dim(10, 10), false, false},
	}
	for _, tt := range tests {
		if tt.d.IsZero() != tt.zero {
			t.Errorf("%v.IsZero() = %v", tt.d, !tt.zero)
		}
		if tt.d.IsDegenerate() != tt.degn {
			t.Errorf("%v.IsDegenerate() = %v", tt.d, !tt.degn)
		}
	}
	if got := Dim(10, 4).Half(); got != Dim(5, 2) {
		t.Errorf("Half() = %v, want 5x2", got)
	}
}

func TestPreset(t *testing.T) {
	d, ok := Preset("snes")
	if !ok || d != Dim(256, 244) {
		t.Errorf("Preset(snes) = %v, %v", d, ok)
	}
	if _, ok := Preset("VGA9000"); ok {
		t.Error("Preset(VGA9000) should not exist")
	}
	names := PresetNames()
	if len(names) != 8 || names[0] != "Atari2600" {
		t.Errorf("PresetNames() = %v", names)
	}
}

func TestBoundingBox(t *testing.T) {
	b := BoundingBox{Left: -10, Top: -5, Right: 10, Bottom: 5}
	if b.Width() != 20 || b.Height() != 10 {
		t.Errorf("size = %vx%v, want 20x10", b.Width(), b.Height())
	}
	if !b.Contains(Vec(0, 0)) || b.Contains(Vec(11, 0)) {
		t.Error("Contains() misreports")
	}
}

func TestParseDisplayMode(t *testing.T) {
	tests := []struct {
		in      string
		want    DisplayMode
		wantErr bool
	}{
		{"", Fixed, false},
		{"fixed", Fixed, false},
		{"FitScreen", FitScreen, false},
		{"fillcontainer", FillContainer, false},
		{"ContentFitContainer", FitContainerAndFill, false},
		{"ContentFitScreen", FitScreenAndFill, false},
		{"FitScreenAndFill", FitScreenAndFill, false},
		{"stretch", Fixed, true},
	}
	for _, tt := range tests {
		got, err := ParseDisplayMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDisplayMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDisplayMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDisplayModeProperties(t *testing.T) {
	for m := Fixed; m <= FillContainer; m++ {
		back, err := ParseDisplayMode(m.String())
		if err != nil || back != m {
			t.Errorf("round trip of %v = %v, %v", m, back, err)
		}
	}
	if !FitContainer.UsesContainer() || FitScreen.UsesContainer() {
		t.Error("UsesContainer() misreports")
	}
	if FitContainer.FullBleed() || !FitContainerAndFill.FullBleed() || Fixed.FullBleed() {
		t.Error("FullBleed() misreports")
	}
	if got := DisplayMode(42).String(); got != "DisplayMode(42)" {
		t.Errorf("String() = %q", got)
	}
}
