//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"toruslife/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), app.ErrUsage)
		fmt.Fprintln(flag.CommandLine.Output(), "  option: empty or \"random\"")
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := cfg.ParseArgs(flag.Args()); err != nil {
		log.Print(err)
		flag.Usage()
		os.Exit(2)
	}
	log.Printf("board %dx%d, option %q, seed %d", cfg.Rows, cfg.Cols, cfg.Init, cfg.Seed)

	game, w, h, err := app.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
