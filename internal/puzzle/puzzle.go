// Package puzzle is the external collaborator that turns puzzle/goal text
// files into board grids and a ready-to-search engine, and renders the
// usual human-readable validation failures.
package puzzle

import (
	"fmt"
	"hash/crc32"
	"os"
	"strings"

	"github.com/asig/klotski/internal/board"
	"github.com/asig/klotski/internal/engine"
)

// Puzzle is a loaded (but not yet solved) puzzle/goal pair.
type Puzzle struct {
	PuzzleGrid *board.Grid
	GoalGrid   *board.Grid
	Engine     *engine.Engine
}

// LoadFiles reads the puzzle and goal text files and builds an Engine,
// returning the same human-readable validation errors the design's §7
// names: "solid tiles don't match", "goal tile not present in puzzle",
// "no goal tiles found, nothing to do", "goal tile forms don't match".
func LoadFiles(puzzlePath, goalPath string) (*Puzzle, error) {
	puzzleText, err := os.ReadFile(puzzlePath)
	if err != nil {
		return nil, fmt.Errorf("reading puzzle file: %w", err)
	}
	goalText, err := os.ReadFile(goalPath)
	if err != nil {
		return nil, fmt.Errorf("reading goal file: %w", err)
	}
	return Load(string(puzzleText), string(goalText))
}

// Load builds an Engine directly from puzzle/goal text, without touching
// the filesystem — used by cmd/klotskid, which receives grids over HTTP.
func Load(puzzleText, goalText string) (*Puzzle, error) {
	puzzleGrid, err := board.Parse(puzzleText)
	if err != nil {
		return nil, fmt.Errorf("parsing puzzle grid: %w", err)
	}
	goalGrid, err := board.Parse(goalText)
	if err != nil {
		return nil, fmt.Errorf("parsing goal grid: %w", err)
	}
	e, err := engine.Setup(puzzleGrid, goalGrid)
	if err != nil {
		return nil, err
	}
	return &Puzzle{PuzzleGrid: puzzleGrid, GoalGrid: goalGrid, Engine: e}, nil
}

// Key returns a short, stable fingerprint of the (puzzle, goal) text pair,
// suitable as an internal/cache key — the same hash/crc32 IEEE table used
// by internal/visited (here with the standard final xor), applied to the
// raw input text rather than a packed board.
func (p *Puzzle) Key(puzzleText, goalText string) string {
	h := crc32.NewIEEE()
	h.Write([]byte(puzzleText))
	h.Write([]byte{0})
	h.Write([]byte(goalText))
	return fmt.Sprintf("%08x", h.Sum32())
}

// Summary renders the puzzle and goal grids side by side, the way the
// original solver's display_puzzle_and_goal does, for a verbose dump before
// the search starts.
func (p *Puzzle) Summary() string {
	var sb strings.Builder
	rule := strings.Repeat("-", p.PuzzleGrid.W)
	fmt.Fprintf(&sb, "puzzle -> goal:\n")
	fmt.Fprintf(&sb, "  %s   %s \n", rule, rule)
	for y := 0; y < p.PuzzleGrid.H; y++ {
		fmt.Fprintf(&sb, " |%s| |%s| \n", p.PuzzleGrid.Rows[y], p.GoalGrid.Rows[y])
	}
	fmt.Fprintf(&sb, "  %s   %s \n", rule, rule)
	return sb.String()
}
