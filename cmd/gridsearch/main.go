// Command gridsearch reads a grid and prints the shortest path(s) from its
// start cell to its goal cell(s).
//
// Grid format: one row per line, cells separated by spaces,
// 0 = free, 1 = obstacle, S = start, E = goal; a blank line ends input.
//
//	S 0 1 0 0
//	0 0 0 0 1
//	0 1 0 0 0
//	1 0 0 E 1
//
// Usage:
//
//	gridsearch [-algo astar|floodfill] [-diagonal] [-animate] [-delay 80ms] [file]
//
// With -animate the exploration is replayed in the terminal; press q, Esc
// or Ctrl-C to leave.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// config holds the parsed command line.
type config struct {
	algo     string
	diagonal bool
	animate  bool
	delay    time.Duration
	input    string
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("gridsearch", flag.ContinueOnError)
	fs.StringVar(&cfg.algo, "algo", algoAStar, "search algorithm: astar or floodfill")
	fs.BoolVar(&cfg.diagonal, "diagonal", false, "allow diagonal moves (astar only)")
	fs.BoolVar(&cfg.animate, "animate", false, "replay the exploration in the terminal")
	fs.DurationVar(&cfg.delay, "delay", 80*time.Millisecond, "time per animation frame")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	switch cfg.algo {
	case algoAStar, algoFloodFill:
	default:
		return config{}, fmt.Errorf("unknown -algo %q", cfg.algo)
	}
	if cfg.diagonal && cfg.algo == algoFloodFill {
		return config{}, fmt.Errorf("-diagonal requires -algo %s", algoAStar)
	}
	if fs.NArg() > 1 {
		return config{}, fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}
	cfg.input = fs.Arg(0)

	return cfg, nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("gridsearch: ")

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	var in io.Reader = os.Stdin
	if cfg.input != "" {
		f, err := os.Open(cfg.input)
		if err != nil {
			log.Fatalf("open input: %v", err)
		}
		defer f.Close()
		in = f
	} else {
		fmt.Fprintln(os.Stderr, "Enter the grid (0 free, 1 obstacle, S start, E goal), blank line to finish:")
	}

	out, err := solve(in, cfg)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.animate {
		if err := animate(out, cfg.delay); err != nil {
			log.Printf("animation: %v", err)
		}
	}
	if err := out.print(os.Stdout); err != nil {
		log.Fatal(err)
	}
}
