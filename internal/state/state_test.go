package state

import (
	"bytes"
	"testing"

	"github.com/asig/klotski/internal/board"
	"github.com/asig/klotski/internal/posgraph"
	"github.com/asig/klotski/internal/tile"
)

// buildFixture wires a small 3x3 engine-less fixture directly from the
// catalogue and position-graph packages, mirroring what internal/engine does
// without depending on it (avoids an import cycle risk and keeps this test
// focused on state.go alone).
func buildFixture(t *testing.T) (*board.Grid, []*tile.Desc, int, []*posgraph.Lattice) {
	t.Helper()
	puzzle, err := board.Parse("AAB\nAAB\n..C\n")
	if err != nil {
		t.Fatalf("parsing puzzle: %v", err)
	}
	solve, err := board.Parse("..B\nAAB\nAA.\n")
	if err != nil {
		t.Fatalf("parsing goal: %v", err)
	}
	descs, ntg, err := tile.Build(puzzle, solve)
	if err != nil {
		t.Fatalf("tile.Build: %v", err)
	}
	lattices := make([]*posgraph.Lattice, len(descs))
	for i, d := range descs {
		lattices[i] = posgraph.Build(d, puzzle.W, puzzle.H)
	}
	return puzzle, descs, ntg, lattices
}

func newFixtureState(t *testing.T) (*State, []*tile.Desc, int) {
	t.Helper()
	puzzle, descs, ntg, lattices := buildFixture(t)
	initials := make([]*posgraph.TilePos, len(descs))
	for i, lat := range lattices {
		initials[i] = lat.Initial
	}
	return New(puzzle, descs, initials), descs, ntg
}

func cIndex(descs []*tile.Desc) int {
	for i, d := range descs {
		if d.ID == 'C' {
			return i
		}
	}
	return -1
}

func TestNewPaintsWallsAndTiles(t *testing.T) {
	s, descs, _ := newFixtureState(t)
	if len(s.Board) != 9 {
		t.Fatalf("len(Board) = %d, want 9", len(s.Board))
	}
	// No walls in this fixture.
	for _, c := range s.Board {
		if c == WallTag {
			t.Fatalf("unexpected wall tag in a wall-free fixture")
		}
	}
	// Cell (2,2) is C's initial anchor.
	ci := cIndex(descs)
	if s.Board[2*3+2] != byte(descs[ci].Type) {
		t.Errorf("C's cell isn't tagged with its type")
	}
}

func TestCheckMoveBlockedByOtherTile(t *testing.T) {
	s, descs, _ := newFixtureState(t)
	ci := cIndex(descs)
	// C sits at (2,2); moving up runs into B, which occupies (2,0) and (2,1).
	if s.CheckMove(ci, tile.Up) {
		t.Errorf("expected CheckMove(C, Up) to be blocked by B")
	}
}

func TestCheckMoveIntoEmptyCell(t *testing.T) {
	s, descs, _ := newFixtureState(t)
	ci := cIndex(descs)
	// (1,2) is empty in the initial board.
	if !s.CheckMove(ci, tile.Left) {
		t.Errorf("expected CheckMove(C, Left) to succeed into an empty cell")
	}
}

func TestDoMoveUndoRoundTrip(t *testing.T) {
	s, descs, _ := newFixtureState(t)
	ci := cIndex(descs)

	before := append([]byte(nil), s.Board...)

	if !s.CheckMove(ci, tile.Left) {
		t.Fatalf("precondition: CheckMove(C, Left) should succeed")
	}
	next := s.DoMove(ci, tile.Left)
	if bytes.Equal(s.Board, before) {
		t.Fatalf("DoMove should have changed the board")
	}
	s.Undo(ci, tile.Left, next)
	if !bytes.Equal(s.Board, before) {
		t.Errorf("Undo did not restore the original board:\nbefore=%v\nafter=%v", before, s.Board)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s, descs, _ := newFixtureState(t)
	ci := cIndex(descs)

	child := s.Clone()
	next := child.DoMove(ci, tile.Left)
	child.Tiles[ci] = next

	if bytes.Equal(s.Board, child.Board) {
		t.Errorf("mutating the clone's board should not affect the parent's")
	}
	if s.Tiles[ci] == child.Tiles[ci] {
		t.Errorf("child's moved tile should point at a different TilePos than the parent's")
	}
}

func TestCheckGoalAndDepth(t *testing.T) {
	s, _, ntg := newFixtureState(t)
	if s.CheckGoal(ntg) {
		t.Errorf("fixture's initial state should not already satisfy the goal")
	}
	if s.Depth() != 0 {
		t.Errorf("root state Depth() = %d, want 0", s.Depth())
	}

	child := s.Clone()
	child.Parent = s
	if child.Depth() != 1 {
		t.Errorf("child Depth() = %d, want 1", child.Depth())
	}
}
