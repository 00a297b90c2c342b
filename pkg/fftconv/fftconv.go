// Package fftconv counts toroidal Life neighbors by 2D circular convolution.
//
// A discrete Fourier transform over an R×C array is periodic in both axes, so
// convolving the board with the 3×3 neighbor kernel in the frequency domain
// yields exactly the wraparound neighbor counts. The package exists as an
// independent oracle for life.Advance; it is much slower on small boards.
package fftconv

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"toruslife/pkg/life"
)

// Counter holds the transforms and work buffers for one grid shape. All
// buffers are allocated once by New.
type Counter struct {
	rows, cols int
	halfC      int
	norm       float64

	rowFFT *fourier.FFT
	colFFT *fourier.CmplxFFT

	kernel []complex128 // rows × halfC
	freq   []complex128 // rows × halfC
	col    []complex128 // rows
	row    []float64    // cols
	counts []int        // rows × cols
}

// New prepares a Counter for rows×cols boards.
func New(rows, cols int) (*Counter, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", life.ErrInvalidDimension, rows, cols)
	}
	halfC := cols/2 + 1
	c := &Counter{
		rows:   rows,
		cols:   cols,
		halfC:  halfC,
		norm:   1 / float64(rows*cols),
		rowFFT: fourier.NewFFT(cols),
		colFFT: fourier.NewCmplxFFT(rows),
		kernel: make([]complex128, rows*halfC),
		freq:   make([]complex128, rows*halfC),
		col:    make([]complex128, rows),
		row:    make([]float64, cols),
		counts: make([]int, rows*cols),
	}

	// Offsets that collide on small boards accumulate, so a 1-row board
	// counts the cell itself once from above and once from below, matching
	// life.Grid.Periodic.
	spatial := make([]float64, rows*cols)
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			if di == 0 && dj == 0 {
				continue
			}
			spatial[mod(di, rows)*cols+mod(dj, cols)]++
		}
	}
	c.forward(c.kernel, func(i int) []float64 { return spatial[i*cols : (i+1)*cols] })
	return c, nil
}

// Counts returns the live neighbor count of every cell of g in row-major
// order. The returned slice is reused by the next call.
func (c *Counter) Counts(g *life.Grid) ([]int, error) {
	if g.Rows() != c.rows || g.Cols() != c.cols {
		return nil, fmt.Errorf("fftconv: counter is %dx%d, grid is %dx%d", c.rows, c.cols, g.Rows(), g.Cols())
	}
	cells := g.Cells()
	c.forward(c.freq, func(i int) []float64 {
		for j, v := range cells[i*c.cols : (i+1)*c.cols] {
			c.row[j] = float64(v)
		}
		return c.row
	})

	for i := range c.freq {
		c.freq[i] *= c.kernel[i]
	}

	for x := 0; x < c.halfC; x++ {
		for y := 0; y < c.rows; y++ {
			c.col[y] = c.freq[y*c.halfC+x]
		}
		c.colFFT.Sequence(c.col, c.col)
		for y := 0; y < c.rows; y++ {
			c.freq[y*c.halfC+x] = c.col[y]
		}
	}
	for y := 0; y < c.rows; y++ {
		c.rowFFT.Sequence(c.row, c.freq[y*c.halfC:(y+1)*c.halfC])
		out := c.counts[y*c.cols : (y+1)*c.cols]
		for x, v := range c.row {
			out[x] = int(math.Round(v * c.norm))
		}
	}
	return c.counts, nil
}

// Advance moves g one generation forward using convolution counts.
func (c *Counter) Advance(g *life.Grid) error {
	counts, err := c.Counts(g)
	if err != nil {
		return err
	}
	for i := 0; i < c.rows; i++ {
		for j := 0; j < c.cols; j++ {
			g.SetAt(i, j, life.NextState(g.At(i, j), counts[i*c.cols+j]))
		}
	}
	return nil
}

// forward runs a real FFT over each row supplied by rowAt followed by a
// complex FFT down each of the halfC retained columns, storing into dst.
func (c *Counter) forward(dst []complex128, rowAt func(i int) []float64) {
	for y := 0; y < c.rows; y++ {
		c.rowFFT.Coefficients(dst[y*c.halfC:(y+1)*c.halfC], rowAt(y))
	}
	for x := 0; x < c.halfC; x++ {
		for y := 0; y < c.rows; y++ {
			c.col[y] = dst[y*c.halfC+x]
		}
		c.colFFT.Coefficients(c.col, c.col)
		for y := 0; y < c.rows; y++ {
			dst[y*c.halfC+x] = c.col[y]
		}
	}
}

func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
