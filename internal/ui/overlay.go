//go:build ebiten

package ui

import (
	"image/color"

	"toruslife/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// minGridZoom is the smallest cell size, in pixels, that still gets
// separator lines.
const minGridZoom = 4

// Overlay draws separator lines between cells so neighbors stay readable
// when zoomed in.
type Overlay struct {
	rows, cols int
	showGrid   bool
	pixel      *ebiten.Image
	col        color.RGBA
}

// NewOverlay constructs an overlay for a rows×cols board with lines enabled.
func NewOverlay(rows, cols int) *Overlay {
	o := &Overlay{rows: rows, cols: cols, showGrid: true, col: color.RGBA{R: 255, G: 255, B: 255, A: 255}}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the separator lines on G.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay for the current view.
func (o *Overlay) Draw(screen *ebiten.Image, v render.View) {
	if !o.showGrid || v.Zoom < minGridZoom {
		return
	}
	ox, oy := v.Origin()
	thickness := 0.1 * v.Zoom
	width := float64(o.cols) * v.Zoom
	height := float64(o.rows) * v.Zoom
	for j := 1; j < o.cols; j++ {
		x := ox + float64(j)*v.Zoom
		o.fillRect(screen, x-thickness/2, oy, thickness, height)
	}
	for i := 1; i < o.rows; i++ {
		y := oy + float64(i)*v.Zoom
		o.fillRect(screen, ox, y-thickness/2, width, thickness)
	}
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(o.col)
	screen.DrawImage(o.pixel, op)
}
