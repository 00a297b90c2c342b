package ui

import "testing"

func TestStatusString(t *testing.T) {
	s := Status{Generation: 12, Population: 30, Rows: 10, Cols: 20, TPS: 15, Zoom: 10, Seed: 42}
	if got, want := s.String(), "gen 12  pop 30/200  10x20  paused  zoom 10.0  seed 42"; got != want {
		t.Fatalf("got %q, expected %q", got, want)
	}

	s.Autoplay = true
	if got, want := s.String(), "gen 12  pop 30/200  10x20  running 15/s  zoom 10.0  seed 42"; got != want {
		t.Fatalf("got %q, expected %q", got, want)
	}
}
