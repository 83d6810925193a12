// Package engine wires the Tile Catalogue, Position Graph, and initial
// State together into the immutable, read-only-after-setup context that the
// Search Engine runs against.
package engine

import (
	"github.com/asig/klotski/internal/board"
	"github.com/asig/klotski/internal/posgraph"
	"github.com/asig/klotski/internal/state"
	"github.com/asig/klotski/internal/tile"
)

// Engine is the shared, read-only context built once per puzzle: the board
// dimensions, the tile catalogue (goal tiles first), and each tile's
// position lattice. Every State produced by the search shares this context.
type Engine struct {
	W, H     int
	Tiles    []*tile.Desc
	NumGoal  int
	Lattices []*posgraph.Lattice // parallel to Tiles
	Initial  *state.State
}

// Setup builds an Engine from a puzzle grid and a goal grid, following the
// data flow of §2: Tile Catalogue and Position Graph are derived once, then
// the initial State is constructed from them.
func Setup(puzzle, solve *board.Grid) (*Engine, error) {
	descs, ntg, err := tile.Build(puzzle, solve)
	if err != nil {
		return nil, err
	}

	lattices := make([]*posgraph.Lattice, len(descs))
	initials := make([]*posgraph.TilePos, len(descs))
	for i, d := range descs {
		lattices[i] = posgraph.Build(d, puzzle.W, puzzle.H)
		initials[i] = lattices[i].Initial
	}

	initial := state.New(puzzle, descs, initials)

	return &Engine{
		W:        puzzle.W,
		H:        puzzle.H,
		Tiles:    descs,
		NumGoal:  ntg,
		Lattices: lattices,
		Initial:  initial,
	}, nil
}
