package app

import (
	"fmt"

	"toruslife/pkg/core"
	"toruslife/pkg/life"
)

// Session is the board plus the driver state that the frontend mutates in
// response to input. It has no presentation dependencies.
type Session struct {
	grid       *life.Grid
	rng        *core.RNG
	generation int
}

// NewSession builds the board described by cfg.
func NewSession(cfg *Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := life.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	s := &Session{grid: grid, rng: core.NewRNG(cfg.Seed)}
	if cfg.Init == InitRandom {
		s.Randomize()
	}
	return s, nil
}

// Grid returns the board.
func (s *Session) Grid() *life.Grid { return s.grid }

// Generation counts advances since the board was last randomized or cleared.
func (s *Session) Generation() int { return s.generation }

// Seed returns the seed of the session's random sequence.
func (s *Session) Seed() int64 { return s.rng.Seed() }

// Step advances one generation.
func (s *Session) Step() {
	life.Advance(s.grid)
	s.generation++
}

// Randomize draws a fresh board from the session's RNG. Repeated calls
// continue the same sequence, so a fixed seed reproduces every board.
func (s *Session) Randomize() {
	s.grid.Randomize(s.rng.Source())
	s.generation = 0
}

// Reseed restarts the random sequence from seed and draws a board.
func (s *Session) Reseed(seed int64) {
	s.rng.Reseed(seed)
	s.Randomize()
}

// Clear kills every cell.
func (s *Session) Clear() {
	s.grid.Clear()
	s.generation = 0
}

// Toggle flips one cell. Clicks outside the board are reported as
// life.ErrOutOfRange.
func (s *Session) Toggle(i, j int) error {
	return s.grid.Toggle(i, j)
}
