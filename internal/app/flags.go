package app

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"toruslife/pkg/life"
)

// Initial board options accepted as the third positional argument.
const (
	InitEmpty  = ""
	InitRandom = "random"
)

// ErrUsage marks command lines that do not match [rows cols [option]].
var ErrUsage = errors.New("usage: life [flags] [<rows> <cols> [<option>]]")

// Config represents the command-line parameters for the application.
type Config struct {
	Rows     int
	Cols     int
	Init     string
	Seed     int64
	TPS      int
	Autoplay bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Rows: 50, Cols: 50, Seed: 42, TPS: 10}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second while autoplay runs")
	fs.BoolVar(&c.Autoplay, "autoplay", c.Autoplay, "start advancing without waiting for Space")
}

// ParseArgs reads the positional arguments left after flag parsing: either
// none, or rows and cols optionally followed by an initial board option.
func (c *Config) ParseArgs(args []string) error {
	switch len(args) {
	case 0:
		return c.Validate()
	case 2, 3:
	default:
		return fmt.Errorf("%w: got %d positional arguments", ErrUsage, len(args))
	}

	rows, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: rows %q: %v", ErrUsage, args[0], err)
	}
	cols, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: cols %q: %v", ErrUsage, args[1], err)
	}
	c.Rows, c.Cols = rows, cols
	if len(args) == 3 {
		c.Init = args[2]
	}
	return c.Validate()
}

// Validate checks dimensions and the initial board option.
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", life.ErrInvalidDimension, c.Rows, c.Cols)
	}
	switch c.Init {
	case InitEmpty, InitRandom:
	default:
		return fmt.Errorf("%w: unknown option %q", ErrUsage, c.Init)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: tps must be positive, got %d", ErrUsage, c.TPS)
	}
	return nil
}
