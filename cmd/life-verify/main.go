package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"toruslife/internal/verify"
)

func main() {
	runs := flag.Int("runs", 500, "number of random boards")
	gens := flag.Int("gens", 64, "generations per board")
	maxSide := flag.Int("max", 96, "largest rows or cols value")
	seed := flag.Int64("seed", 1, "seed for board shapes and contents")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	fft := flag.Bool("fft", true, "also check the FFT convolution counter")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cases := verify.Cases(*runs, *maxSide, *seed)
	fmt.Printf("Checking %d boards up to %dx%d (%d workers, %d generations, fft=%v)\n",
		len(cases), *maxSide, *maxSide, *workers, *gens, *fft)

	start := time.Now()
	mismatches, err := verify.Sweep(ctx, cases, verify.Options{Generations: *gens, FFT: *fft}, *workers)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	if len(mismatches) == 0 {
		fmt.Printf("All advancers agree (elapsed %s)\n", elapsed.Round(time.Millisecond))
		return
	}
	sort.Slice(mismatches, func(i, j int) bool { return mismatches[i].Generation < mismatches[j].Generation })
	for _, m := range mismatches {
		fmt.Println(m)
	}
	fmt.Printf("\n%d of %d boards disagree (elapsed %s)\n", len(mismatches), len(cases), elapsed.Round(time.Millisecond))
	os.Exit(1)
}
