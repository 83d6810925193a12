package puzzle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const puzzleText = "AAB\nAAB\n..C\n"
const goalText = "..B\nAAB\nAA.\n"

func TestLoadBasic(t *testing.T) {
	p, err := Load(puzzleText, goalText)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Engine.W != 3 || p.Engine.H != 3 {
		t.Fatalf("unexpected engine dimensions: %dx%d", p.Engine.W, p.Engine.H)
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	puzzlePath := filepath.Join(dir, "puzzle.txt")
	goalPath := filepath.Join(dir, "goal.txt")
	if err := os.WriteFile(puzzlePath, []byte(puzzleText), 0o644); err != nil {
		t.Fatalf("writing puzzle file: %v", err)
	}
	if err := os.WriteFile(goalPath, []byte(goalText), 0o644); err != nil {
		t.Fatalf("writing goal file: %v", err)
	}

	p, err := LoadFiles(puzzlePath, goalPath)
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}
	if p.Engine.NumGoal != 2 {
		t.Errorf("NumGoal = %d, want 2", p.Engine.NumGoal)
	}
}

func TestLoadFilesMissing(t *testing.T) {
	_, err := LoadFiles("/nonexistent/puzzle.txt", "/nonexistent/goal.txt")
	if err == nil {
		t.Fatal("expected an error for a missing puzzle file")
	}
}

func TestLoadPropagatesValidationErrors(t *testing.T) {
	_, err := Load("A.\n..\n", "..\n..\n")
	if err == nil {
		t.Fatal("expected Load to surface the catalogue-building error")
	}
}

func TestSummaryContainsBothGrids(t *testing.T) {
	p, err := Load(puzzleText, goalText)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s := p.Summary()
	if s == "" {
		t.Fatal("expected a non-empty summary")
	}
	// "..C" appears only in the puzzle grid, "AA." only in the goal grid.
	if !strings.Contains(s, "|..C|") || !strings.Contains(s, "|AA.|") {
		t.Errorf("summary should contain both the puzzle and the goal grid:\n%s", s)
	}
}

func TestKeyStableAndDistinct(t *testing.T) {
	p, err := Load(puzzleText, goalText)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	k1 := p.Key(puzzleText, goalText)
	k2 := p.Key(puzzleText, goalText)
	if k1 != k2 {
		t.Errorf("Key should be stable for identical input: %q vs %q", k1, k2)
	}
	k3 := p.Key(goalText, puzzleText)
	if k1 == k3 {
		t.Errorf("Key should distinguish (puzzle,goal) from its swap")
	}
}
