//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter uploads binary cell data into one image, one pixel per cell,
// and draws it through a View.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
	palette    Palette
	outline    color.Color
}

// NewGridPainter allocates a painter for a rows×cols board.
func NewGridPainter(rows, cols int, p Palette) *GridPainter {
	return &GridPainter{
		rows:    rows,
		cols:    cols,
		img:     ebiten.NewImage(cols, rows),
		buf:     make([]byte, 4*rows*cols),
		palette: p,
		outline: color.Black,
	}
}

// Draw renders cells onto dst with the view's zoom and centre.
func (gp *GridPainter) Draw(dst *ebiten.Image, cells []uint8, v View) {
	if len(cells) != gp.rows*gp.cols {
		return
	}
	fillBinaryRGBA(gp.buf, cells, gp.palette)
	gp.img.WritePixels(gp.buf)

	ox, oy := v.Origin()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(v.Zoom, v.Zoom)
	op.GeoM.Translate(ox, oy)
	dst.DrawImage(gp.img, op)

	stroke := float32(0.1 * v.Zoom)
	if stroke < 1 {
		stroke = 1
	}
	vector.StrokeRect(dst, float32(ox), float32(oy),
		float32(float64(gp.cols)*v.Zoom), float32(float64(gp.rows)*v.Zoom),
		stroke, gp.outline, false)
}
