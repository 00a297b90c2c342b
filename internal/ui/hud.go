//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding  = 6
	hudLine     = 15
	hudBaseline = 11
)

// HUD draws a translucent status panel across the top of the window.
type HUD struct {
	visible bool
	pixel   *ebiten.Image
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	h := &HUD{visible: true, pixel: ebiten.NewImage(1, 1)}
	h.pixel.Fill(color.White)
	return h
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Draw paints the status line and key help.
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	if h == nil || !h.visible {
		return
	}
	width := screen.Bounds().Dx()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width), float64(2*hudLine+hudPadding))
	op.ColorScale.Scale(0.06, 0.06, 0.08, 0.7)
	screen.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	text.Draw(screen, s.String(), face, hudPadding, hudPadding+hudBaseline, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	text.Draw(screen, Help, face, hudPadding, hudPadding+hudBaseline+hudLine, color.RGBA{R: 160, G: 160, B: 170, A: 255})
}
