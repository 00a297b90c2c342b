package render

import "image/color"

// Palette colors a binary board.
type Palette struct {
	Dead  color.Color
	Alive color.Color
}

// DefaultPalette draws dead cells pale blue and live cells black.
var DefaultPalette = Palette{
	Dead:  color.RGBA{R: 220, G: 220, B: 250, A: 255},
	Alive: color.Black,
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, p Palette) {
	on := rgba8(p.Alive)
	off := rgba8(p.Dead)
	for i, c := range cells {
		px := off
		if c != 0 {
			px = on
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

func rgba8(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
