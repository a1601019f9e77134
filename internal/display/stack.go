package display

// Stack saves and restores layouts for temporary overrides such as rendering
// off-screen at a different resolution. Resolutions and viewports are kept in
// two histories that always have the same length.
type Stack struct {
	resolutions []Dimension
	viewports   []Dimension
}

// Push saves l. Dimensions are values, so the caller's live layout can be
// changed freely afterwards without touching the saved snapshot.
func (s *Stack) Push(l Layout) {
	s.resolutions = append(s.resolutions, l.Resolution)
	s.viewports = append(s.viewports, l.Viewport)
}

// Pop removes and returns the most recently pushed layout.
func (s *Stack) Pop() (Layout, error) {
	n := len(s.resolutions)
	if n == 0 {
		return Layout{}, ErrStackEmpty
	}
	l := Layout{Resolution: s.resolutions[n-1], Viewport: s.viewports[n-1]}
	s.resolutions = s.resolutions[:n-1]
	s.viewports = s.viewports[:n-1]
	return l, nil
}

// PeekResolution returns the top saved resolution without popping.
func (s *Stack) PeekResolution() (Dimension, error) {
	if len(s.resolutions) == 0 {
		return Dimension{}, ErrStackEmpty
	}
	return s.resolutions[len(s.resolutions)-1], nil
}

// PeekViewport returns the top saved viewport without popping.
func (s *Stack) PeekViewport() (Dimension, error) {
	if len(s.viewports) == 0 {
		return Dimension{}, ErrStackEmpty
	}
	return s.viewports[len(s.viewports)-1], nil
}

// Len returns the number of saved layouts.
func (s *Stack) Len() int {
	return len(s.resolutions)
}
