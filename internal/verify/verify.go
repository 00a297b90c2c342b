// Package verify cross-checks the generation advancers on random boards.
package verify

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"toruslife/pkg/core"
	"toruslife/pkg/fftconv"
	"toruslife/pkg/life"
)

// Case is one board shape and the seed its initial cells are drawn from.
type Case struct {
	Rows, Cols int
	Seed       int64
}

func (c Case) String() string { return fmt.Sprintf("%dx%d seed %d", c.Rows, c.Cols, c.Seed) }

// Mismatch records the first cell where an advancer disagreed with
// life.AdvanceUniform.
type Mismatch struct {
	Case       Case
	Method     string
	Generation int
	Row, Col   int
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: %s differs at (%d,%d) on generation %d", m.Case, m.Method, m.Row, m.Col, m.Generation)
}

// Options controls a sweep.
type Options struct {
	Generations int
	FFT         bool
}

// Cases returns n deterministic cases with sides in [1, maxSide]. The single
// row, single column and 1×1 shapes always come first.
func Cases(n, maxSide int, seed int64) []Case {
	if maxSide < 1 {
		maxSide = 1
	}
	r := core.NewRNG(seed).Source()
	fixed := []Case{{Rows: 1, Cols: 1}, {Rows: 1, Cols: maxSide}, {Rows: maxSide, Cols: 1}, {Rows: 2, Cols: 2}}
	out := make([]Case, 0, n)
	for i := 0; i < n; i++ {
		c := Case{Rows: 1 + r.IntN(maxSide), Cols: 1 + r.IntN(maxSide)}
		if i < len(fixed) {
			c = fixed[i]
			c.Rows, c.Cols = min(c.Rows, maxSide), min(c.Cols, maxSide)
		}
		c.Seed = r.Int64()
		out = append(out, c)
	}
	return out
}

// Run advances one case with every method for opt.Generations and returns
// the first disagreement, or nil.
func Run(c Case, opt Options) (*Mismatch, error) {
	ref, err := life.New(c.Rows, c.Cols)
	if err != nil {
		return nil, err
	}
	ref.Randomize(core.NewRNG(c.Seed).Source())
	tiered := ref.Clone()

	var fft *life.Grid
	var counter *fftconv.Counter
	if opt.FFT {
		fft = ref.Clone()
		if counter, err = fftconv.New(c.Rows, c.Cols); err != nil {
			return nil, err
		}
	}

	for gen := 1; gen <= opt.Generations; gen++ {
		life.AdvanceUniform(ref)
		life.Advance(tiered)
		if m := diff(c, "tiered", gen, ref, tiered); m != nil {
			return m, nil
		}
		if counter == nil {
			continue
		}
		if err := counter.Advance(fft); err != nil {
			return nil, err
		}
		if m := diff(c, "fft", gen, ref, fft); m != nil {
			return m, nil
		}
	}
	return nil, nil
}

// Sweep runs every case on up to workers goroutines and returns all
// mismatches. It stops early when ctx is canceled.
func Sweep(parent context.Context, cases []Case, opt Options, workers int) ([]Mismatch, error) {
	g, ctx := errgroup.WithContext(parent)
	if workers > 0 {
		g.SetLimit(workers)
	}

	var (
		mu  sync.Mutex
		out []Mismatch
	)
	for _, c := range cases {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := Run(c, opt)
			if err != nil {
				return fmt.Errorf("%s: %w", c, err)
			}
			if m != nil {
				mu.Lock()
				out = append(out, *m)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}
	return out, parent.Err()
}

func diff(c Case, method string, gen int, want, got *life.Grid) *Mismatch {
	if want.Equal(got) {
		return nil
	}
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			if want.At(i, j) != got.At(i, j) {
				return &Mismatch{Case: c, Method: method, Generation: gen, Row: i, Col: j}
			}
		}
	}
	return nil
}
