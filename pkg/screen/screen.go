package screen

import (
	"context"
	"errors"
	"fmt"

	"github.com/opd-ai/go-screen/internal/display"
)

var (
	// ErrStackEmpty is returned when popping or peeking with nothing pushed.
	ErrStackEmpty = display.ErrStackEmpty
	// ErrUnbalancedStack is returned by Dispose when pushes were not popped.
	ErrUnbalancedStack = errors.New("resolution/viewport stack not empty")
	// ErrDisposed is returned by operations on a disposed Screen.
	ErrDisposed = errors.New("screen disposed")
	// ErrUnsupported is returned by hosts lacking a notification variant.
	ErrUnsupported = display.ErrUnsupported
	// ErrFullscreenUnsupported is returned by hosts that cannot go fullscreen.
	ErrFullscreenUnsupported = display.ErrFullscreenUnsupported
)

// Screen manages the resolution and viewport of a drawing surface and the
// conversions between page, screen and world coordinates.
//
// A Screen is not safe for concurrent use; see the package documentation.
type Screen struct {
	host    Host
	surface Surface
	backend Backend
	camera  Camera
	logger  Logger
	metrics *Metrics

	resolution   Dimension
	viewport     Dimension
	antialiasing bool
	fullscreen   bool
	disposed     bool

	resolver *display.Resolver
	ratio    *display.PixelRatioTracker
	stack    display.Stack
	sync     *display.SurfaceSync
	subs     []Subscription
}

// New creates a Screen, resolves the initial layout for the display mode,
// subscribes to the host's resize, pixel ratio and fullscreen notifications
// and applies the layout to surface and backend. surface and backend may be
// nil for a Screen used only for coordinate conversion.
//
// If opts is nil, DefaultOptions() is used.
func New(host Host, surface Surface, backend Backend, opts *Options) (*Screen, error) {
	if host == nil {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidOptions)
	}
	if opts == nil {
		defaultOpts := DefaultOptions()
		opts = &defaultOpts
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	s := &Screen{
		host:         host,
		surface:      surface,
		backend:      backend,
		logger:       opts.Logger,
		metrics:      opts.Metrics,
		viewport:     opts.Viewport,
		resolution:   opts.Resolution,
		antialiasing: opts.Antialiasing,
	}
	if s.logger == nil {
		s.logger = NopLogger()
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}
	if s.resolution.IsZero() {
		s.resolution = s.viewport
	}

	s.resolver = display.NewResolver(opts.DisplayMode, s.resolution, host)
	s.sync = display.NewSurfaceSync(surface, backend, s.logger)
	s.ratio = display.NewPixelRatioTracker(host, opts.PixelRatioOverride, s.handlePixelRatioChange, s.logger)

	s.resolve()
	s.watchResize()
	s.ratio.Start()
	s.subs = append(s.subs, host.OnFullscreenChange(s.handleFullscreenChange))
	s.ApplyResolutionAndViewport()

	return s, nil
}

// watchResize subscribes to the container when the mode measures it, and to
// the window otherwise or when the host cannot observe the container.
func (s *Screen) watchResize() {
	if s.DisplayMode().UsesContainer() {
		sub, err := s.host.OnContainerResize(s.handleResize)
		if err == nil {
			s.subs = append(s.subs, sub)
			return
		}
		s.logger.Debug("container resize notifications unavailable, watching window", "error", err)
	}
	s.subs = append(s.subs, s.host.OnWindowResize(s.handleResize))
}

// Dispose unsubscribes from every host notification. Handlers never run
// after Dispose returns. It returns ErrUnbalancedStack if pushed layouts were
// never popped. Calling Dispose again is a no-op.
func (s *Screen) Dispose() error {
	if s.disposed {
		return nil
	}
	s.disposed = true
	for _, sub := range s.subs {
		if sub != nil {
			sub.Cancel()
		}
	}
	s.subs = nil
	s.ratio.Stop()

	if n := s.stack.Len(); n > 0 {
		return fmt.Errorf("%w: %d layouts pushed at dispose", ErrUnbalancedStack, n)
	}
	return nil
}

// IsDisposed reports whether Dispose has been called.
func (s *Screen) IsDisposed() bool {
	return s.disposed
}

func (s *Screen) handleResize() {
	if s.disposed {
		return
	}
	s.logger.Debug("viewport resized")
	s.metrics.incResize()
	s.resolve()
	s.ApplyResolutionAndViewport()
}

func (s *Screen) handlePixelRatioChange() {
	if s.disposed {
		return
	}
	s.metrics.incPixelRatioChange()
	s.ApplyResolutionAndViewport()
}

func (s *Screen) handleFullscreenChange() {
	if s.disposed {
		return
	}
	s.fullscreen = !s.fullscreen
	s.metrics.incFullscreenChange()
	s.logger.Debug("fullscreen change", "fullscreen", s.fullscreen)
}

func (s *Screen) resolve() {
	l := s.resolver.Resolve(s.containerSize(), display.Layout{
		Resolution: s.resolution,
		Viewport:   s.viewport,
	})
	s.resolution = l.Resolution
	s.viewport = l.EffectiveViewport()
}

func (s *Screen) containerSize() Dimension {
	if s.DisplayMode().UsesContainer() {
		return s.host.ContainerSize()
	}
	return s.host.WindowSize()
}

// ApplyResolutionAndViewport pushes the current layout and pixel ratio to the
// surface and backend.
func (s *Screen) ApplyResolutionAndViewport() {
	if s.sync.Apply(s.Dimensions(), s.antialiasing) {
		s.metrics.incResolutionWarn()
	}
	s.metrics.incApply()
	s.logger.Debug("applied resolution and viewport",
		"resolution", s.resolution.String(),
		"viewport", s.viewport.String(),
		"pixel_ratio", s.PixelRatio())
}

// DisplayMode returns the policy chosen at construction.
func (s *Screen) DisplayMode() DisplayMode {
	return s.resolver.Mode()
}

// Resolution returns the logical drawing size.
func (s *Screen) Resolution() Dimension {
	return s.resolution
}

// SetResolution replaces the logical drawing size. Call
// ApplyResolutionAndViewport to push it to the surface.
func (s *Screen) SetResolution(d Dimension) {
	s.resolution = d
}

// Viewport returns the displayed size in page units.
func (s *Screen) Viewport() Dimension {
	return s.viewport
}

// SetViewport replaces the displayed size. A zero dimension resets it to the
// resolution.
func (s *Screen) SetViewport(d Dimension) {
	s.viewport = display.Layout{Resolution: s.resolution, Viewport: d}.EffectiveViewport()
}

// ContentResolution returns the resolution captured at construction.
func (s *Screen) ContentResolution() Dimension {
	return s.resolver.ContentResolution()
}

// AspectRatio returns the aspect ratio of the resolution.
func (s *Screen) AspectRatio() float64 {
	return s.resolution.AspectRatio()
}

// PixelRatio returns the effective device pixel ratio.
func (s *Screen) PixelRatio() float64 {
	return s.ratio.Ratio()
}

// SetPixelRatioOverride pins the pixel ratio to r, or returns control to the
// host when r is zero, and reapplies the layout.
func (s *Screen) SetPixelRatioOverride(r float64) {
	s.ratio.SetOverride(r)
	s.ApplyResolutionAndViewport()
}

// IsHiDPI reports whether the pixel ratio differs from 1.
func (s *Screen) IsHiDPI() bool {
	return s.PixelRatio() != 1
}

// Antialiasing reports whether the surface is smoothed when scaled.
func (s *Screen) Antialiasing() bool {
	return s.antialiasing
}

// SetAntialiasing switches smoothing on the backend immediately. The surface
// rendering mode follows on the next apply.
func (s *Screen) SetAntialiasing(smooth bool) {
	s.antialiasing = smooth
	s.sync.SetSmoothing(smooth)
}

// SetCamera attaches the camera used for screen/world conversion. nil
// detaches it.
func (s *Screen) SetCamera(c Camera) {
	s.camera = c
}

// Camera returns the attached camera, or nil.
func (s *Screen) Camera() Camera {
	return s.camera
}

// Dimensions returns a snapshot of the values derived sizes are computed from.
func (s *Screen) Dimensions() DisplayMetrics {
	m := DisplayMetrics{
		Resolution: s.resolution,
		Viewport:   s.viewport,
		PixelRatio: s.PixelRatio(),
	}
	if s.camera != nil {
		m.Zoom = s.camera.Zoom()
	}
	return m
}

// Metrics returns the counters for this Screen.
func (s *Screen) Metrics() *Metrics {
	return s.metrics
}

// PushResolutionAndViewport saves the current layout. The live values may
// then be changed and restored with PopResolutionAndViewport.
func (s *Screen) PushResolutionAndViewport() {
	s.stack.Push(display.Layout{Resolution: s.resolution, Viewport: s.viewport})
	s.metrics.recordPush(s.stack.Len())
}

// PeekResolution returns the most recently saved resolution.
func (s *Screen) PeekResolution() (Dimension, error) {
	return s.stack.PeekResolution()
}

// PeekViewport returns the most recently saved viewport.
func (s *Screen) PeekViewport() (Dimension, error) {
	return s.stack.PeekViewport()
}

// PopResolutionAndViewport restores the most recently saved layout. It
// returns ErrStackEmpty when nothing was pushed.
func (s *Screen) PopResolutionAndViewport() error {
	l, err := s.stack.Pop()
	if err != nil {
		return fmt.Errorf("pop resolution and viewport: %w", err)
	}
	s.resolution = l.Resolution
	s.viewport = l.Viewport
	s.metrics.recordPop(s.stack.Len())
	return nil
}

// IsFullScreen reports whether the host is in native fullscreen. Only the
// host's fullscreen notification changes it.
func (s *Screen) IsFullScreen() bool {
	return s.fullscreen
}

// GoFullScreen asks the host for native fullscreen. Hosts may refuse, for
// instance without user interaction; the error is returned as is.
func (s *Screen) GoFullScreen(ctx context.Context) error {
	if s.disposed {
		return ErrDisposed
	}
	if err := s.host.RequestFullscreen(ctx); err != nil {
		return fmt.Errorf("request fullscreen: %w", err)
	}
	return nil
}

// ExitFullScreen asks the host to leave native fullscreen.
func (s *Screen) ExitFullScreen(ctx context.Context) error {
	if s.disposed {
		return ErrDisposed
	}
	if err := s.host.ExitFullscreen(ctx); err != nil {
		return fmt.Errorf("exit fullscreen: %w", err)
	}
	return nil
}

// Transformer returns a coordinate transformer for the current state.
func (s *Screen) Transformer() display.Transformer {
	t := display.Transformer{
		Resolution: s.resolution,
		Viewport:   s.viewport,
		Fullscreen: s.fullscreen,
		Camera:     s.camera,
	}
	if s.fullscreen {
		t.Window = s.host.WindowSize()
	} else {
		t.Origin = s.host.SurfaceOrigin()
	}
	return t
}

// PageToScreenCoordinates converts a page point, such as a pointer event
// position, to screen space.
func (s *Screen) PageToScreenCoordinates(p Vector) Vector {
	return s.Transformer().PageToScreen(p)
}

// ScreenToPageCoordinates converts a screen point to page space, for example
// to position page elements relative to the surface.
func (s *Screen) ScreenToPageCoordinates(p Vector) Vector {
	return s.Transformer().ScreenToPage(p)
}

// ScreenToWorldCoordinates converts a screen point to world space.
func (s *Screen) ScreenToWorldCoordinates(p Vector) Vector {
	return s.Transformer().ScreenToWorld(p)
}

// WorldToScreenCoordinates converts a world point to screen space.
func (s *Screen) WorldToScreenCoordinates(p Vector) Vector {
	return s.Transformer().WorldToScreen(p)
}

// PageToWorldCoordinates converts a page point to world space.
func (s *Screen) PageToWorldCoordinates(p Vector) Vector {
	return s.Transformer().PageToWorld(p)
}

// WorldToPageCoordinates converts a world point to page space.
func (s *Screen) WorldToPageCoordinates(p Vector) Vector {
	return s.Transformer().WorldToPage(p)
}

// WorldBounds returns the visible world rectangle, useful for culling.
func (s *Screen) WorldBounds() BoundingBox {
	topLeft := s.ScreenToWorldCoordinates(Vector{})
	m := s.Dimensions()
	return BoundingBox{
		Left:   topLeft.X,
		Top:    topLeft.Y,
		Right:  topLeft.X + m.DrawWidth(),
		Bottom: topLeft.Y + m.DrawHeight(),
	}
}

// ContentArea returns the part of screen space guaranteed to be visible. For
// the AndFill modes this is the content resolution centered in the live
// resolution; for every other mode it is the whole resolution.
func (s *Screen) ContentArea() BoundingBox {
	if s.DisplayMode().Fills() {
		return display.ContentArea(s.resolution, s.ContentResolution())
	}
	return BoundingBox{Right: s.resolution.Width, Bottom: s.resolution.Height}
}

// CanvasWidth returns the physical surface width in device pixels.
func (s *Screen) CanvasWidth() int {
	w, _ := s.canvasSize()
	return w
}

// CanvasHeight returns the physical surface height in device pixels.
func (s *Screen) CanvasHeight() int {
	_, h := s.canvasSize()
	return h
}

// HalfCanvasWidth returns half the physical surface width.
func (s *Screen) HalfCanvasWidth() float64 {
	return float64(s.CanvasWidth()) / 2
}

// HalfCanvasHeight returns half the physical surface height.
func (s *Screen) HalfCanvasHeight() float64 {
	return float64(s.CanvasHeight()) / 2
}

func (s *Screen) canvasSize() (int, int) {
	if s.surface != nil {
		return s.surface.PhysicalSize()
	}
	scaled := s.Dimensions().Scaled()
	return int(scaled.Width), int(scaled.Height)
}

// DrawWidth returns the visible width in world units including zoom.
func (s *Screen) DrawWidth() float64 {
	return s.Dimensions().DrawWidth()
}

// DrawHeight returns the visible height in world units including zoom.
func (s *Screen) DrawHeight() float64 {
	return s.Dimensions().DrawHeight()
}

// HalfDrawWidth returns DrawWidth / 2.
func (s *Screen) HalfDrawWidth() float64 {
	return s.Dimensions().HalfDrawWidth()
}

// HalfDrawHeight returns DrawHeight / 2.
func (s *Screen) HalfDrawHeight() float64 {
	return s.Dimensions().HalfDrawHeight()
}

// Center returns the center of the drawing surface including zoom.
func (s *Screen) Center() Vector {
	return s.Dimensions().Center()
}
