package display

import (
	"fmt"
	"strings"
)

// DisplayMode is the policy governing how resolution and viewport react to
// changes in the size of the window or container.
type DisplayMode int

const (
	// Fixed keeps the configured resolution and viewport. This is the default.
	Fixed DisplayMode = iota
	// FitContainer keeps the resolution and sizes the viewport to the largest
	// rectangle of the same aspect ratio that fits the container.
	FitContainer
	// FitContainerAndFill makes the viewport fill the container and grows the
	// resolution along one axis so the content resolution stays on screen.
	FitContainerAndFill
	// FitScreen is FitContainer measured against the window.
	FitScreen
	// FitScreenAndFill is FitContainerAndFill measured against the window.
	FitScreenAndFill
	// FillScreen sets resolution and viewport to the window size.
	FillScreen
	// FillContainer sets resolution and viewport to the container size.
	FillContainer
)

var modeNames = map[DisplayMode]string{
	Fixed:               "Fixed",
	FitContainer:        "FitContainer",
	FitContainerAndFill: "FitContainerAndFill",
	FitScreen:           "FitScreen",
	FitScreenAndFill:    "FitScreenAndFill",
	FillScreen:          "FillScreen",
	FillContainer:       "FillContainer",
}

// String returns the mode name.
func (m DisplayMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("DisplayMode(%d)", int(m))
}

// ParseDisplayMode parses a mode name, case-insensitively. The legacy names
// "ContentFitContainer" and "ContentFitScreen" are accepted as aliases of the
// AndFill modes. An empty string parses as Fixed.
func ParseDisplayMode(s string) (DisplayMode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Fixed, nil
	}
	switch strings.ToLower(s) {
	case "contentfitcontainer":
		return FitContainerAndFill, nil
	case "contentfitscreen":
		return FitScreenAndFill, nil
	}
	for m, name := range modeNames {
		if strings.EqualFold(name, s) {
			return m, nil
		}
	}
	return Fixed, fmt.Errorf("unknown display mode %q", s)
}

// UsesContainer reports whether the mode measures the surface's parent
// container instead of the window.
func (m DisplayMode) UsesContainer() bool {
	switch m {
	case FillContainer, FitContainer, FitContainerAndFill:
		return true
	default:
		return false
	}
}

// FullBleed reports whether resolving this mode forces the host page into
// full-bleed layout (no root margin, overflow hidden).
func (m DisplayMode) FullBleed() bool {
	switch m {
	case FillScreen, FitScreen, FitScreenAndFill, FitContainerAndFill:
		return true
	default:
		return false
	}
}

// Fills reports whether the mode is one of the AndFill policies, where only
// the content resolution is guaranteed to be on screen.
func (m DisplayMode) Fills() bool {
	return m == FitContainerAndFill || m == FitScreenAndFill
}
