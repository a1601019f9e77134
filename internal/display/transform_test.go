package display

import "testing"

var samplePoints = []Vector{
	Vec(0, 0), Vec(400, 300), Vec(-125.5, 77.25), Vec(1e4, -3e3), Vec(0.001, 799.999),
}

func TestTransformerFixedScenario(t *testing.T) {
	tr := Transformer{Resolution: Dim(800, 600), Viewport: Dim(800, 600)}

	assertVec(t, "PageToScreen", tr.PageToScreen(Vec(400, 300)), Vec(400, 300))
	assertVec(t, "ScreenToWorld", tr.ScreenToWorld(Vec(400, 300)), Vec(0, 0))
	assertVec(t, "PageToWorld", tr.PageToWorld(Vec(0, 0)), Vec(-400, -300))
}

func TestTransformerScalesViewportToResolution(t *testing.T) {
	tr := Transformer{
		Resolution: Dim(320, 240),
		Viewport:   Dim(640, 480),
		Origin:     Vec(100, 50),
	}
	assertVec(t, "PageToScreen", tr.PageToScreen(Vec(420, 290)), Vec(160, 120))
	assertVec(t, "ScreenToPage", tr.ScreenToPage(Vec(160, 120)), Vec(420, 290))
}

func TestTransformerRoundTrip(t *testing.T) {
	transformers := map[string]Transformer{
		"identity": {Resolution: Dim(800, 600), Viewport: Dim(800, 600)},
		"scaled":   {Resolution: Dim(320, 180), Viewport: Dim(1280, 720), Origin: Vec(33, 12)},
		"stretched": {
			Resolution: Dim(640, 240), Viewport: Dim(1000, 700), Origin: Vec(-5, 9),
		},
		"camera": {
			Resolution: Dim(800, 600), Viewport: Dim(400, 300),
			Camera: offsetCamera{pos: Vec(50, -20), zoom: 2.5, half: Vec(400, 300)},
		},
		"fullscreen height constrained": {
			Resolution: Dim(800, 600), Viewport: Dim(800, 600), Fullscreen: true, Window: Dim(1000, 2000),
		},
		"fullscreen width constrained": {
			Resolution: Dim(800, 600), Viewport: Dim(400, 300), Fullscreen: true, Window: Dim(2560, 1080),
			Origin: Vec(999, 999),
		},
	}

	for name, tr := range transformers {
		t.Run(name, func(t *testing.T) {
			for _, p := range samplePoints {
				assertVec(t, "PageToScreen(ScreenToPage)", tr.PageToScreen(tr.ScreenToPage(p)), p)
				assertVec(t, "ScreenToPage(PageToScreen)", tr.ScreenToPage(tr.PageToScreen(p)), p)
				assertVec(t, "ScreenToWorld(WorldToScreen)", tr.ScreenToWorld(tr.WorldToScreen(p)), p)
				assertVec(t, "WorldToPage(PageToWorld)", tr.WorldToPage(tr.PageToWorld(p)), p)
			}
		})
	}
}

func TestTransformerFullscreenLetterbox(t *testing.T) {
	// 4:3 surface in a tall 1000x2000 window: drawn 1000x750 with 625px bars.
	tall := Transformer{
		Resolution: Dim(800, 600), Viewport: Dim(800, 600), Fullscreen: true, Window: Dim(1000, 2000),
		Origin: Vec(50, 50),
	}
	if !tall.letterbox().HeightConstrained() {
		t.Fatal("tall window should be height constrained")
	}
	assertVec(t, "top left", tall.PageToScreen(Vec(0, 625)), Vec(0, 0))
	assertVec(t, "bottom right", tall.PageToScreen(Vec(1000, 1375)), Vec(800, 600))
	assertVec(t, "center", tall.ScreenToPage(Vec(400, 300)), Vec(500, 1000))

	// 4:3 surface in a wide 2000x600 window: drawn 800x600 with 600px bars.
	wide := Transformer{
		Resolution: Dim(800, 600), Viewport: Dim(800, 600), Fullscreen: true, Window: Dim(2000, 600),
	}
	if wide.letterbox().HeightConstrained() {
		t.Fatal("wide window should be width constrained")
	}
	assertVec(t, "top left", wide.PageToScreen(Vec(600, 0)), Vec(0, 0))
	assertVec(t, "bottom right", wide.PageToScreen(Vec(1400, 600)), Vec(800, 600))
}

func TestLetterboxRect(t *testing.T) {
	r := Letterbox{Window: Dim(1920, 1080), Aspect: 4.0 / 3.0}.Rect()
	if !approx(r.Left, 240) || !approx(r.Right, 1680) || r.Top != 0 || r.Bottom != 1080 {
		t.Errorf("Rect() = %+v, want 240..1680 x 0..1080", r)
	}
	r = Letterbox{Window: Dim(1080, 1920), Aspect: 16.0 / 9.0}.Rect()
	if !approx(r.Top, (1920-607.5)/2) || r.Left != 0 || r.Right != 1080 {
		t.Errorf("Rect() = %+v", r)
	}
}

func TestTransformerCamera(t *testing.T) {
	cam := offsetCamera{pos: Vec(100, 100), zoom: 2, half: Vec(400, 300)}
	tr := Transformer{Resolution: Dim(800, 600), Viewport: Dim(800, 600), Camera: cam}

	assertVec(t, "ScreenToWorld center", tr.ScreenToWorld(Vec(400, 300)), Vec(100, 100))
	assertVec(t, "WorldToScreen", tr.WorldToScreen(Vec(110, 100)), Vec(420, 300))
}
