package render

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"
)

// defaultFontSize is the overlay font size in window pixels.
const defaultFontSize = 13.0

// lineSpacing is the line height as a multiple of the font size.
const lineSpacing = 1.25

// Overlay draws a block of debug text in the top left corner of the window.
type Overlay struct {
	source   *text.GoTextFaceSource
	fontSize float64
	margin   float64
	fg       color.RGBA
	bg       color.RGBA
}

// NewOverlay loads the embedded Go Mono font.
func NewOverlay() (*Overlay, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load overlay font: %w", err)
	}
	return &Overlay{
		source:   source,
		fontSize: defaultFontSize,
		margin:   6,
		fg:       color.RGBA{R: 230, G: 230, B: 230, A: 255},
		bg:       color.RGBA{A: 170},
	}, nil
}

// SetFontSize sets the font size. Values that are not positive are ignored.
func (o *Overlay) SetFontSize(size float64) {
	if size > 0 {
		o.fontSize = size
	}
}

// FontSize returns the font size.
func (o *Overlay) FontSize() float64 {
	return o.fontSize
}

func (o *Overlay) face(scale float64) *text.GoTextFace {
	return &text.GoTextFace{Source: o.source, Size: o.fontSize * scale}
}

// Measure returns the size of lines in unscaled window pixels.
func (o *Overlay) Measure(lines []string) (width, height float64) {
	return text.Measure(strings.Join(lines, "\n"), o.face(1), o.fontSize*lineSpacing)
}

// Draw renders lines on dst. scale converts window pixels to dst pixels.
func (o *Overlay) Draw(dst *ebiten.Image, lines []string, scale float64) {
	if len(lines) == 0 {
		return
	}
	w, h := o.Measure(lines)
	pad := o.margin * scale
	vector.DrawFilledRect(dst, 0, 0, float32(w*scale+2*pad), float32(h*scale+2*pad), o.bg, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(pad, pad)
	op.ColorScale.ScaleWithColor(o.fg)
	op.LineSpacing = o.fontSize * lineSpacing * scale
	text.Draw(dst, strings.Join(lines, "\n"), o.face(scale), op)
}
