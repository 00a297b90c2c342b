package core

// Size describes the dimensions of a grid, W columns by H rows.
type Size struct {
	W int
	H int
}

// Cells returns W*H.
func (s Size) Cells() int { return s.W * s.H }
