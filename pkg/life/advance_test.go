package life

import (
	"fmt"
	"testing"

	"toruslife/pkg/core"
)

var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var advancers = map[string]func(*Grid){
	"tiered":  Advance,
	"uniform": AdvanceUniform,
}

func setWrapped(g *Grid, i, j int) {
	g.SetAt(wrap(i, g.rows), wrap(j, g.cols), Alive)
}

func TestNextState(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantDead := Dead
		if n == 3 {
			wantDead = Alive
		}
		wantAlive := Dead
		if n == 2 || n == 3 {
			wantAlive = Alive
		}
		if got := NextState(Dead, n); got != wantDead {
			t.Fatalf("NextState(dead, %d)=%d, expected %d", n, got, wantDead)
		}
		if got := NextState(Alive, n); got != wantAlive {
			t.Fatalf("NextState(alive, %d)=%d, expected %d", n, got, wantAlive)
		}
	}
}

// Every neighbor count at every kind of position: corners, edges and the
// interior. Neighbors of border cells are placed on the far side of the board.
func TestRuleTableAcrossRegions(t *testing.T) {
	const rows, cols = 5, 6
	positions := [][2]int{
		{0, 0}, {0, cols - 1}, {rows - 1, 0}, {rows - 1, cols - 1},
		{0, 2}, {rows - 1, 3}, {2, 0}, {3, cols - 1},
		{2, 2}, {1, 4},
	}

	for name, advance := range advancers {
		for _, pos := range positions {
			for _, state := range []uint8{Dead, Alive} {
				for n := 0; n <= 8; n++ {
					g := mustNew(t, rows, cols)
					g.SetAt(pos[0], pos[1], state)
					for _, off := range neighborOffsets[:n] {
						setWrapped(g, pos[0]+off[0], pos[1]+off[1])
					}

					advance(g)

					want := NextState(state, n)
					if got := g.At(pos[0], pos[1]); got != want {
						t.Fatalf("%s: cell %v state=%d neighbors=%d became %d, expected %d",
							name, pos, state, n, got, want)
					}
				}
			}
		}
	}
}

func TestCornerBirthAcrossWrap(t *testing.T) {
	const rows, cols = 6, 8
	corners := [][2]int{{0, 0}, {0, cols - 1}, {rows - 1, 0}, {rows - 1, cols - 1}}

	for name, advance := range advancers {
		for _, c := range corners {
			g := mustNew(t, rows, cols)
			// The three cells diagonally, vertically and horizontally across
			// the seams.
			setWrapped(g, c[0]-sign(c[0]), c[1]-sign(c[1]))
			setWrapped(g, c[0]-sign(c[0]), c[1])
			setWrapped(g, c[0], c[1]-sign(c[1]))

			advance(g)

			if g.At(c[0], c[1]) != Alive {
				t.Fatalf("%s: corner %v should be born from its wrapped neighbors", name, c)
			}
		}
	}
}

// sign returns the step from an edge coordinate towards the interior.
// Subtracting it crosses the seam.
func sign(v int) int {
	if v == 0 {
		return 1
	}
	return -1
}

func TestOriginCountsOppositeCorners(t *testing.T) {
	const rows, cols = 7, 9
	for name, advance := range advancers {
		g := mustNew(t, rows, cols)
		g.SetAt(rows-1, cols-1, Alive)
		g.SetAt(rows-1, 0, Alive)
		g.SetAt(0, cols-1, Alive)

		advance(g)

		if g.At(0, 0) != Alive {
			t.Fatalf("%s: (0,0) must see (R-1,C-1), (R-1,0) and (0,C-1)", name)
		}
		// (R-1,C-1), (R-1,0), (0,C-1) each have two live neighbors and survive.
		for _, c := range [][2]int{{rows - 1, cols - 1}, {rows - 1, 0}, {0, cols - 1}} {
			if g.At(c[0], c[1]) != Alive {
				t.Fatalf("%s: %v should survive with two wrapped neighbors", name, c)
			}
		}
		if g.Population() != 4 {
			t.Fatalf("%s: population %d, expected a 4-cell block across the corner", name, g.Population())
		}
	}
}

func TestBlockStillLife(t *testing.T) {
	for name, advance := range advancers {
		for _, origin := range [][2]int{{3, 3}, {-1, -1}, {0, -1}, {-1, 4}} {
			g := mustNew(t, 8, 9)
			for _, d := range [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
				setWrapped(g, origin[0]+d[0], origin[1]+d[1])
			}
			want := g.Clone()

			for gen := 0; gen < 12; gen++ {
				advance(g)
				if !g.Equal(want) {
					t.Fatalf("%s: block at %v changed on generation %d", name, origin, gen+1)
				}
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	for name, advance := range advancers {
		for _, center := range [][2]int{{3, 3}, {0, 0}, {5, 6}} {
			g := mustNew(t, 6, 7)
			horizontal := [][2]int{{0, -1}, {0, 0}, {0, 1}}
			vertical := [][2]int{{-1, 0}, {0, 0}, {1, 0}}
			for _, d := range horizontal {
				setWrapped(g, center[0]+d[0], center[1]+d[1])
			}
			start := g.Clone()

			advance(g)
			expectOnly(t, g, center, vertical, fmt.Sprintf("%s blinker %v gen 1", name, center))

			advance(g)
			expectOnly(t, g, center, horizontal, fmt.Sprintf("%s blinker %v gen 2", name, center))
			if !g.Equal(start) {
				t.Fatalf("%s: blinker at %v did not return after two generations", name, center)
			}
		}
	}
}

func expectOnly(t *testing.T, g *Grid, center [2]int, offsets [][2]int, label string) {
	t.Helper()
	want := make(map[[2]int]bool, len(offsets))
	for _, d := range offsets {
		want[[2]int{wrap(center[0]+d[0], g.rows), wrap(center[1]+d[1], g.cols)}] = true
	}
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			alive := g.At(i, j) == Alive
			if alive != want[[2]int{i, j}] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", label, i, j, alive, want[[2]int{i, j}])
			}
		}
	}
}

func TestTieredMatchesUniform(t *testing.T) {
	sizes := [][2]int{
		{1, 1}, {1, 2}, {2, 1}, {2, 2}, {1, 9}, {9, 1}, {2, 7}, {7, 2},
		{3, 3}, {3, 10}, {10, 3}, {4, 5}, {16, 9}, {31, 17}, {64, 64},
	}
	for _, size := range sizes {
		for seed := int64(1); seed <= 6; seed++ {
			tiered := mustNew(t, size[0], size[1])
			tiered.Randomize(core.NewRNG(seed).Source())
			uniform := tiered.Clone()

			for gen := 0; gen < 24; gen++ {
				Advance(tiered)
				AdvanceUniform(uniform)
				if !tiered.Equal(uniform) {
					t.Fatalf("%dx%d seed %d: tiered and uniform diverged on generation %d",
						size[0], size[1], seed, gen+1)
				}
			}
		}
	}
}

func TestDegenerateSelfCounting(t *testing.T) {
	// On a 1x1 torus every neighbor is the cell itself: a live cell sees 8.
	for name, advance := range advancers {
		g := mustNew(t, 1, 1)
		g.SetAt(0, 0, Alive)
		advance(g)
		if g.At(0, 0) != Dead {
			t.Fatalf("%s: 1x1 live cell should die of overcrowding", name)
		}
	}

	// A single live cell in a 1x4 ring counts itself twice (above and below)
	// and its row neighbors are dead: n=2 keeps it alive.
	for name, advance := range advancers {
		g := mustNew(t, 1, 4)
		g.SetAt(0, 1, Alive)
		advance(g)
		if g.At(0, 1) != Alive {
			t.Fatalf("%s: lone cell in 1x4 ring should survive on its own reflections", name)
		}
	}
}

func TestAdvanceReusesBuffers(t *testing.T) {
	g := mustNew(t, 20, 30)
	g.Randomize(core.NewRNG(3).Source())
	first, second := &g.cells[0], &g.scratch[0]

	for gen := 0; gen < 10; gen++ {
		Advance(g)
		if len(g.cells) != 600 || len(g.scratch) != 600 {
			t.Fatalf("buffer lengths changed to %d/%d", len(g.cells), len(g.scratch))
		}
		live, spare := &g.cells[0], &g.scratch[0]
		if !((live == first && spare == second) || (live == second && spare == first)) {
			t.Fatalf("generation %d introduced a new buffer", gen+1)
		}
	}
}

func TestAdvanceDoesNotAllocate(t *testing.T) {
	for name, advance := range advancers {
		g := mustNew(t, 48, 33)
		g.Randomize(core.NewRNG(11).Source())
		if allocs := testing.AllocsPerRun(50, func() { advance(g) }); allocs != 0 {
			t.Fatalf("%s: %.1f allocations per generation", name, allocs)
		}
	}
}

func BenchmarkAdvance(b *testing.B) {
	for _, side := range []int{64, 256, 1024} {
		for _, name := range []string{"tiered", "uniform"} {
			advance := advancers[name]
			b.Run(fmt.Sprintf("%s/%dx%d", name, side, side), func(b *testing.B) {
				g := mustNew(b, side, side)
				g.Randomize(core.NewRNG(1).Source())
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					advance(g)
				}
			})
		}
	}
}
