package tile

import (
	"testing"

	"github.com/asig/klotski/internal/board"
)

// fixture is a 3x3 board with a 2x2 square tile A, a vertical domino B (both
// goal tiles), and a 1x1 filler C that the goal doesn't mention at all.
func fixture(t *testing.T) (*board.Grid, *board.Grid) {
	t.Helper()
	puzzle, err := board.Parse("AAB\nAAB\n..C\n")
	if err != nil {
		t.Fatalf("parsing puzzle: %v", err)
	}
	solve, err := board.Parse("..B\nAAB\nAA.\n")
	if err != nil {
		t.Fatalf("parsing goal: %v", err)
	}
	return puzzle, solve
}

func TestBuildBasic(t *testing.T) {
	puzzle, solve := fixture(t)
	descs, ntg, err := Build(puzzle, solve)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if ntg != 2 {
		t.Fatalf("ntg = %d, want 2", ntg)
	}
	if len(descs) != 3 {
		t.Fatalf("len(descs) = %d, want 3", len(descs))
	}

	a, b, c := descs[0], descs[1], descs[2]

	if a.ID != 'A' || !a.IsGoal || a.W != 2 || a.H != 2 {
		t.Errorf("tile A: %+v", a)
	}
	if b.ID != 'B' || !b.IsGoal || b.W != 1 || b.H != 2 {
		t.Errorf("tile B: %+v", b)
	}
	if c.ID != 'C' || c.IsGoal || c.W != 1 || c.H != 1 {
		t.Errorf("tile C: %+v", c)
	}

	// Every tile gets its own type here: A and B are goal tiles (always
	// unique), and C has no shape-twin among the non-goal tiles.
	types := map[int]bool{a.Type: true, b.Type: true, c.Type: true}
	if len(types) != 3 {
		t.Errorf("expected 3 distinct type tags, got %v", types)
	}

	if a.GX != 0 || a.GY != 1 {
		t.Errorf("A goal anchor = (%d,%d), want (0,1)", a.GX, a.GY)
	}
	if b.GX != 2 || b.GY != 0 {
		t.Errorf("B goal anchor = (%d,%d), want (2,0)", b.GX, b.GY)
	}
}

func TestBuildNonGoalTypeTagsShared(t *testing.T) {
	// Two vertical-domino (1 wide, 2 tall) filler tiles of identical shape
	// must share a type tag.
	puzzle, err := board.Parse("ABC\nABC\n...\n")
	if err != nil {
		t.Fatalf("parsing puzzle: %v", err)
	}
	solve, err := board.Parse("A..\nA..\n...\n")
	if err != nil {
		t.Fatalf("parsing goal: %v", err)
	}
	descs, ntg, err := Build(puzzle, solve)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if ntg != 1 {
		t.Fatalf("ntg = %d, want 1", ntg)
	}
	var b, c *Desc
	for _, d := range descs {
		switch d.ID {
		case 'B':
			b = d
		case 'C':
			c = d
		}
	}
	if b == nil || c == nil {
		t.Fatalf("expected both B and C in the catalogue")
	}
	if b.Type != c.Type {
		t.Errorf("same-shape non-goal tiles got different type tags: %d vs %d", b.Type, c.Type)
	}
}

func TestBuildWallMismatch(t *testing.T) {
	puzzle, _ := board.Parse("#.\n..\n")
	solve, _ := board.Parse("..\n..\n")
	_, _, err := Build(puzzle, solve)
	if err == nil {
		t.Fatal("expected an error for mismatched walls")
	}
}

func TestBuildGoalTileNotInPuzzle(t *testing.T) {
	puzzle, _ := board.Parse("A.\n..\n")
	solve, _ := board.Parse(".B\n..\n")
	_, _, err := Build(puzzle, solve)
	if err == nil {
		t.Fatal("expected an error for a goal tile absent from the puzzle")
	}
}

func TestBuildNoGoalTiles(t *testing.T) {
	puzzle, _ := board.Parse("A.\n..\n")
	solve, _ := board.Parse("..\n..\n")
	_, _, err := Build(puzzle, solve)
	if err == nil {
		t.Fatal("expected an error when the goal grid names no tiles at all")
	}
}

func TestBuildGoalFormMismatch(t *testing.T) {
	// A is a 2x1 horizontal domino in the puzzle but only a single cell in
	// the goal: the forms can't match.
	puzzle, _ := board.Parse("AA.\n...\n")
	solve, _ := board.Parse("A..\n...\n")
	_, _, err := Build(puzzle, solve)
	if err == nil {
		t.Fatal("expected an error for mismatched goal tile forms")
	}
}

func TestDirectionOpposite(t *testing.T) {
	cases := []struct {
		d, want Direction
	}{
		{Up, Down}, {Down, Up}, {Left, Right}, {Right, Left},
	}
	for _, c := range cases {
		if got := c.d.Opposite(); got != c.want {
			t.Errorf("%v.Opposite() = %v, want %v", c.d, got, c.want)
		}
	}
}
