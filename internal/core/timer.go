package core

import "time"

// FixedStep paces autoplay at a steady number of generations per second,
// independent of the frame rate of the game loop.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
// The first Tick after construction or Reset always fires.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.Reset()
	return fs
}

// SetTPS changes the tick rate. Non-positive rates fall back to 10.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 10
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the duration of one tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// Reset forgets elapsed time, e.g. when autoplay resumes after a pause.
func (f *FixedStep) Reset() {
	f.last = time.Time{}
	f.accumulator = f.step
}

// ShouldStep reports whether autoplay should advance one generation now.
func (f *FixedStep) ShouldStep() bool { return f.Tick(time.Now()) }

// Tick is ShouldStep against an explicit clock reading. At most one tick is
// reported per call and backlog beyond one step is dropped, so a stalled
// frame never triggers a burst of generations.
func (f *FixedStep) Tick(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
	return true
}
