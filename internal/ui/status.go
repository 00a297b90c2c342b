package ui

import (
	"fmt"
	"strings"
)

// Status is the driver state shown on the HUD.
type Status struct {
	Generation int
	Population int
	Rows, Cols int
	Autoplay   bool
	TPS        int
	Zoom       float64
	Seed       int64
}

// String renders the one-line HUD text.
func (s Status) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "gen %d  pop %d/%d  %dx%d", s.Generation, s.Population, s.Rows*s.Cols, s.Rows, s.Cols)
	if s.Autoplay {
		fmt.Fprintf(&b, "  running %d/s", s.TPS)
	} else {
		b.WriteString("  paused")
	}
	fmt.Fprintf(&b, "  zoom %.1f  seed %d", s.Zoom, s.Seed)
	return b.String()
}

// Help lists the key bindings.
const Help = "space step  enter run  r random  s reseed  c clear  v fit  g grid  h hud  esc quit"
