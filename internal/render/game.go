package render

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/opd-ai/go-screen/internal/display"
	"github.com/opd-ai/go-screen/pkg/screen"
)

// ErrGameTerminated is returned from Update when the game's context is done.
var ErrGameTerminated = errors.New("game terminated")

const (
	gridStep     = 32.0
	maxGridLines = 256
	panSpeed     = 4.0
	zoomStep     = 1.02
)

var (
	gridColor    = color.RGBA{R: 70, G: 78, B: 100, A: 255}
	axisColor    = color.RGBA{R: 200, G: 90, B: 90, A: 255}
	contentColor = color.RGBA{R: 120, G: 200, B: 140, A: 255}
	cursorColor  = color.RGBA{R: 250, G: 220, B: 90, A: 255}
)

// Input is one tick's worth of user input.
type Input struct {
	ToggleFullscreen   bool
	ToggleAntialiasing bool
	ResetCamera        bool
	Pan                display.Vector
	Zoom               float64
	// Cursor is in layout pixels, as ebiten reports it.
	Cursor display.Vector
}

// ReadInput returns the keyboard and mouse state from ebiten.
func ReadInput() Input {
	in := Input{
		ToggleFullscreen:   inpututil.IsKeyJustPressed(ebiten.KeyF),
		ToggleAntialiasing: inpututil.IsKeyJustPressed(ebiten.KeyA),
		ResetCamera:        inpututil.IsKeyJustPressed(ebiten.Key0),
		Zoom:               1,
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.Pan.X -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.Pan.X += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.Pan.Y -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.Pan.Y += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyEqual) {
		in.Zoom *= zoomStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) {
		in.Zoom /= zoomStep
	}
	x, y := ebiten.CursorPosition()
	in.Cursor = display.Vec(float64(x), float64(y))
	return in
}

// Cursor is the pointer position in the three coordinate spaces.
type Cursor struct {
	Page, Screen, World display.Vector
}

// Game implements ebiten.Game around a screen.Screen. Screen handlers run on
// the game goroutine: the host delivers notifications from Update and
// configuration reloads are queued with Reload and applied from Update.
type Game struct {
	cfg     Config
	host    *EbitenHost
	surface *EbitenSurface
	backend *EbitenBackend
	camera  *Camera
	overlay *Overlay
	frames  *FrameTimer
	logger  screen.Logger
	input   func() Input
	ctx     context.Context

	screen  *screen.Screen
	reloads chan screen.Options
	cursor  Cursor
}

// NewGame creates a Game for an ebiten window.
func NewGame(cfg Config, opts screen.Options) (*Game, error) {
	host := NewEbitenHost(display.Dim(float64(cfg.Width), float64(cfg.Height)), DefaultProbe())
	return NewGameWithHost(cfg, host, opts)
}

// NewGameWithHost creates a Game around host. It is useful for testing.
func NewGameWithHost(cfg Config, host *EbitenHost, opts screen.Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = screen.NopLogger()
	}

	surface := NewEbitenSurface()
	g := &Game{
		cfg:     cfg,
		host:    host,
		surface: surface,
		backend: NewEbitenBackend(surface, cfg.MaxSurfaceSize),
		frames:  NewFrameTimer(time.Second),
		logger:  opts.Logger,
		input:   ReadInput,
		reloads: make(chan screen.Options, 1),
	}

	s, err := g.newScreen(opts)
	if err != nil {
		return nil, err
	}
	g.screen = s
	g.camera = NewCamera(s.Resolution())
	s.SetCamera(g.camera)

	if cfg.Overlay {
		overlay, err := NewOverlay()
		if err != nil {
			return nil, err
		}
		g.overlay = overlay
	}
	return g, nil
}

func (g *Game) newScreen(opts screen.Options) (*screen.Screen, error) {
	s, err := screen.New(g.host, g.surface, g.backend, &opts)
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return s, nil
}

// Screen returns the current screen. It changes after a reload.
func (g *Game) Screen() *screen.Screen {
	return g.screen
}

// Camera returns the camera attached to every screen the game creates.
func (g *Game) Camera() *Camera {
	return g.camera
}

// Cursor returns the pointer position observed by the last Update.
func (g *Game) Cursor() Cursor {
	return g.cursor
}

// SetContext sets a context; Update returns ErrGameTerminated once it is
// done.
func (g *Game) SetContext(ctx context.Context) {
	g.ctx = ctx
}

// SetInput replaces the input source.
func (g *Game) SetInput(fn func() Input) {
	g.input = fn
}

// Reload queues new screen options. The current screen is replaced on the
// next Update; a newer request replaces one still pending. It is safe to call
// from any goroutine.
func (g *Game) Reload(opts screen.Options) {
	for {
		select {
		case g.reloads <- opts:
			return
		default:
		}
		select {
		case <-g.reloads:
		default:
		}
	}
}

func (g *Game) applyReload(opts screen.Options) {
	if opts.Logger == nil {
		opts.Logger = g.logger
	}
	s, err := g.newScreen(opts)
	if err != nil {
		g.logger.Error("reload rejected, keeping current screen", "error", err)
		return
	}
	if err := g.screen.Dispose(); err != nil {
		g.logger.Warn("disposed screen", "error", err)
	}
	g.screen = s
	g.logger = opts.Logger
	s.SetCamera(g.camera)
	g.logger.Info("screen reloaded", "mode", s.DisplayMode().String(), "resolution", s.Resolution().String())
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.ctx != nil {
		select {
		case <-g.ctx.Done():
			return ErrGameTerminated
		default:
		}
	}

	select {
	case opts := <-g.reloads:
		g.applyReload(opts)
	default:
	}

	g.host.Poll()
	g.handleInput(g.input())
	g.camera.SetResolution(g.screen.Resolution())
	g.host.SetSurfaceOrigin(g.surfaceOrigin())
	return nil
}

func (g *Game) handleInput(in Input) {
	if in.ToggleFullscreen {
		ctx := g.ctx
		if ctx == nil {
			ctx = context.Background()
		}
		var err error
		if g.screen.IsFullScreen() {
			err = g.screen.ExitFullScreen(ctx)
		} else {
			err = g.screen.GoFullScreen(ctx)
		}
		if err != nil {
			g.logger.Warn("fullscreen toggle failed", "error", err)
		}
	}
	if in.ToggleAntialiasing {
		g.screen.SetAntialiasing(!g.screen.Antialiasing())
		g.screen.ApplyResolutionAndViewport()
	}
	if in.ResetCamera {
		g.camera.Position = display.Vector{}
		g.camera.SetZoom(1)
	}
	if in.Pan != (display.Vector{}) {
		z := g.camera.Zoom()
		g.camera.Move(display.Vec(in.Pan.X/z, in.Pan.Y/z))
	}
	if in.Zoom > 0 && in.Zoom != 1 {
		g.camera.SetZoom(g.camera.Zoom() * in.Zoom)
	}

	scale := g.host.Scale()
	page := display.Vec(in.Cursor.X/scale, in.Cursor.Y/scale)
	g.cursor = Cursor{
		Page:   page,
		Screen: g.screen.PageToScreenCoordinates(page),
		World:  g.screen.PageToWorldCoordinates(page),
	}
}

// surfaceOrigin centers the viewport in the window.
func (g *Game) surfaceOrigin() display.Vector {
	w := g.host.WindowSize()
	vp := g.screen.Viewport()
	return display.Vec((w.Width-vp.Width)/2, (w.Height-vp.Height)/2)
}

// SurfaceRect returns where the surface is drawn, in window pixels. In
// fullscreen the resolution is letterboxed into the window.
func (g *Game) SurfaceRect() display.BoundingBox {
	if g.screen.IsFullScreen() {
		lb := display.Letterbox{Window: g.host.WindowSize(), Aspect: g.screen.AspectRatio()}
		return lb.Rect()
	}
	o := g.host.SurfaceOrigin()
	vp := g.screen.Viewport()
	return display.BoundingBox{Left: o.X, Top: o.Y, Right: o.X + vp.Width, Bottom: o.Y + vp.Height}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(dst *ebiten.Image) {
	dst.Fill(g.cfg.Background)
	g.frames.Time(g.drawScene)

	scale := g.host.Scale()
	rect := g.SurfaceRect()
	img := g.surface.Image()
	b := img.Bounds()

	op := &ebiten.DrawImageOptions{Filter: g.surface.Filter()}
	op.GeoM.Scale(rect.Width()*scale/float64(b.Dx()), rect.Height()*scale/float64(b.Dy()))
	op.GeoM.Translate(rect.Left*scale, rect.Top*scale)
	dst.DrawImage(img, op)

	if g.overlay != nil {
		g.overlay.Draw(dst, g.OverlayLines(), scale)
	}
}

// drawScene renders a world grid, the content area and the cursor onto the
// surface.
func (g *Game) drawScene() {
	g.backend.Clear(g.cfg.Clear)
	img := g.surface.Image()
	s := g.screen
	aa := s.Antialiasing()

	bounds := s.WorldBounds()
	line := func(a, b display.Vector, width float32, c color.Color) {
		p := g.backend.Apply(s.WorldToScreenCoordinates(a))
		q := g.backend.Apply(s.WorldToScreenCoordinates(b))
		vector.StrokeLine(img, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), width, c, aa)
	}

	x0 := math.Floor(bounds.Left/gridStep) * gridStep
	for i, x := 0, x0; x <= bounds.Right && i < maxGridLines; i, x = i+1, x+gridStep {
		line(display.Vec(x, bounds.Top), display.Vec(x, bounds.Bottom), 1, gridColor)
	}
	y0 := math.Floor(bounds.Top/gridStep) * gridStep
	for i, y := 0, y0; y <= bounds.Bottom && i < maxGridLines; i, y = i+1, y+gridStep {
		line(display.Vec(bounds.Left, y), display.Vec(bounds.Right, y), 1, gridColor)
	}
	line(display.Vec(bounds.Left, 0), display.Vec(bounds.Right, 0), 2, axisColor)
	line(display.Vec(0, bounds.Top), display.Vec(0, bounds.Bottom), 2, axisColor)

	area := s.ContentArea()
	tl := g.backend.Apply(display.Vec(area.Left, area.Top))
	br := g.backend.Apply(display.Vec(area.Right, area.Bottom))
	vector.StrokeRect(img, float32(tl.X), float32(tl.Y), float32(br.X-tl.X), float32(br.Y-tl.Y), 2, contentColor, aa)

	c := g.backend.Apply(g.cursor.Screen)
	vector.DrawFilledCircle(img, float32(c.X), float32(c.Y), float32(3*s.PixelRatio()), cursorColor, aa)
}

// OverlayLines describes the screen state for the debug overlay.
func (g *Game) OverlayLines() []string {
	s := g.screen
	avg, _, hi := g.frames.Stats()
	avg, hi = avg.Round(time.Microsecond), hi.Round(time.Microsecond)
	return []string{
		fmt.Sprintf("mode %s  fullscreen %v  antialiasing %v", s.DisplayMode(), s.IsFullScreen(), s.Antialiasing()),
		fmt.Sprintf("resolution %s  viewport %s", s.Resolution(), formatDim(s.Viewport())),
		fmt.Sprintf("pixel ratio %g  canvas %dx%d", s.PixelRatio(), s.CanvasWidth(), s.CanvasHeight()),
		fmt.Sprintf("camera %s  zoom %.2f", formatVec(g.camera.Position), g.camera.Zoom()),
		fmt.Sprintf("page %s  screen %s  world %s",
			formatVec(g.cursor.Page), formatVec(g.cursor.Screen), formatVec(g.cursor.World)),
		fmt.Sprintf("fps %.0f  tps %.0f  scene %s avg %s max", ebiten.ActualFPS(), ebiten.ActualTPS(), avg, hi),
		"F fullscreen  A antialiasing  arrows pan  +/- zoom  0 reset",
	}
}

func formatVec(v display.Vector) string {
	return fmt.Sprintf("(%.1f, %.1f)", v.X, v.Y)
}

func formatDim(d display.Dimension) string {
	return fmt.Sprintf("%.1fx%.1f", d.Width, d.Height)
}

// Layout implements ebiten.Game. The outside size is recorded as the window
// size and the returned layout is in device pixels so the surface is drawn
// without a second scaling step.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.host.SetWindowSize(display.Dim(float64(outsideWidth), float64(outsideHeight)))
	scale := g.host.Scale()
	return int(math.Ceil(float64(outsideWidth) * scale)), int(math.Ceil(float64(outsideHeight) * scale))
}

// Run opens the window and blocks until it is closed. The screen is disposed
// on return.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(g)
	if derr := g.screen.Dispose(); derr != nil {
		g.logger.Warn("disposed screen", "error", derr)
	}
	if errors.Is(err, ErrGameTerminated) {
		return nil
	}
	return err
}
