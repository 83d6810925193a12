// Command klotski solves one (puzzle, goal) pair and, on request, renders
// or replays the solution.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/asig/klotski/internal/puzzle"
	"github.com/asig/klotski/internal/render"
	"github.com/asig/klotski/internal/search"
	"github.com/asig/klotski/internal/state"
	"github.com/asig/klotski/internal/viewer"
)

var (
	flagPuzzle  = flag.String("puzzle", "", "path to the puzzle (initial) grid file")
	flagGoal    = flag.String("goal", "", "path to the goal grid file")
	flagDepth   = flag.Int("depth", search.DefaultMaxDepth, "maximum search depth")
	flagZoom    = flag.Int("zoom", 3, "zoom factor for the interactive viewer, 1-10")
	flagView    = flag.Bool("view", false, "open an interactive step-through viewer once solved")
	flagOut     = flag.String("out", "", "directory to write one PGM image per solution step")
	flagVerbose = flag.Bool("v", false, "print the puzzle/goal grids before solving")
)

func main() {
	flag.Parse()

	fmt.Fprintf(os.Stderr, "--- Klotski-family sliding puzzle solver ---\n\n")

	if *flagPuzzle == "" || *flagGoal == "" {
		fmt.Fprintf(os.Stderr, "Both -puzzle and -goal are required.\n")
		flag.Usage()
		os.Exit(1)
	}

	p, err := puzzle.LoadFiles(*flagPuzzle, *flagGoal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *flagVerbose {
		fmt.Fprint(os.Stderr, p.Summary())
	}

	result, err := search.Run(p.Engine, *flagDepth, func(depth, states int) {
		if states%1000 == 0 {
			fmt.Fprintf(os.Stderr, "current step: %d / states found: %d\r", depth, states)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if !result.Solved {
		fmt.Fprintf(os.Stderr, "\n-> finished, no solutions found within depth %d\n", *flagDepth)
		os.Exit(0)
	}

	fmt.Fprintf(os.Stderr, "\n-> finished, best solution has %d steps (%d states explored)\n", result.Depth, result.StatesExplored)

	path := search.Path(result.Goal)

	if *flagOut != "" {
		if err := writeFrames(path, p, *flagOut); err != nil {
			fmt.Fprintf(os.Stderr, "error writing frames: %v\n", err)
			os.Exit(1)
		}
	}

	if *flagView {
		if err := viewer.Run(path, p.Engine, *flagZoom); err != nil {
			fmt.Fprintf(os.Stderr, "error running viewer: %v\n", err)
			os.Exit(1)
		}
	}
}

func writeFrames(path []*state.State, p *puzzle.Puzzle, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for i, s := range path {
		frame := render.Frame(s, p.Engine, render.DefaultCellPixels)
		name := filepath.Join(dir, fmt.Sprintf("step_%03d.pgm", i))
		if err := render.SavePGM(frame, name); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}
