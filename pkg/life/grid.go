package life

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"toruslife/pkg/core"
)

// Cell states.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

var (
	// ErrInvalidDimension is returned when a grid is requested with a
	// non-positive number of rows or columns.
	ErrInvalidDimension = errors.New("life: invalid grid dimension")
	// ErrOutOfRange is returned by the checked accessors for coordinates
	// outside the grid.
	ErrOutOfRange = errors.New("life: coordinates out of range")
)

// Grid is a fixed-size toroidal board of binary cells stored row-major.
//
// It owns two equally sized buffers: the live generation and a scratch
// buffer that Advance writes into before swapping the two. Neither buffer
// is ever reallocated.
type Grid struct {
	rows, cols int
	cells      []uint8
	scratch    []uint8
}

// New returns an all-dead grid with the given dimensions.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	n := rows * cols
	return &Grid{rows: rows, cols: cols, cells: make([]uint8, n), scratch: make([]uint8, n)}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size reports the grid dimensions with columns as width.
func (g *Grid) Size() core.Size { return core.Size{W: g.cols, H: g.rows} }

// Cells exposes the live buffer for rendering. The slice is only valid until
// the next Advance, which swaps it with the scratch buffer.
func (g *Grid) Cells() []uint8 { return g.cells }

// At returns the cell at row i, column j. The caller must guarantee
// 0 <= i < Rows() and 0 <= j < Cols(); no check is made.
func (g *Grid) At(i, j int) uint8 { return g.cells[i*g.cols+j] }

// SetAt stores v (0 or 1) at row i, column j under the same precondition
// as At.
func (g *Grid) SetAt(i, j int, v uint8) { g.cells[i*g.cols+j] = v }

// Periodic returns the cell at (i, j) after wrapping both coordinates onto
// the torus. Any integer is accepted.
func (g *Grid) Periodic(i, j int) uint8 {
	return g.cells[wrap(i, g.rows)*g.cols+wrap(j, g.cols)]
}

// Contains reports whether (i, j) lies inside the grid.
func (g *Grid) Contains(i, j int) bool {
	return i >= 0 && i < g.rows && j >= 0 && j < g.cols
}

// Get is the checked form of At.
func (g *Grid) Get(i, j int) (uint8, error) {
	if !g.Contains(i, j) {
		return Dead, g.rangeErr(i, j)
	}
	return g.At(i, j), nil
}

// Set is the checked form of SetAt. Any non-zero v marks the cell alive.
func (g *Grid) Set(i, j int, v uint8) error {
	if !g.Contains(i, j) {
		return g.rangeErr(i, j)
	}
	if v != Dead {
		v = Alive
	}
	g.SetAt(i, j, v)
	return nil
}

// Toggle flips the cell at (i, j) between dead and alive.
func (g *Grid) Toggle(i, j int) error {
	if !g.Contains(i, j) {
		return g.rangeErr(i, j)
	}
	g.SetAt(i, j, Alive-g.At(i, j))
	return nil
}

// Clear kills every cell. The scratch buffer is left alone.
func (g *Grid) Clear() {
	clear(g.cells)
}

// Randomize fills the grid with independent 0/1 values drawn from r.
func (g *Grid) Randomize(r *rand.Rand) {
	core.FillBinary(r, g.cells)
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		n += int(c)
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		rows:    g.rows,
		cols:    g.cols,
		cells:   append([]uint8(nil), g.cells...),
		scratch: make([]uint8, len(g.scratch)),
	}
}

// Equal reports whether both grids have the same shape and live cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

func (g *Grid) rangeErr(i, j int) error {
	return fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfRange, i, j, g.rows, g.cols)
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
