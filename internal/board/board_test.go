package board

import "testing"

func TestParseBasic(t *testing.T) {
	g, err := Parse("##.\n.A.\n..#\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.H != 3 || g.W != 3 {
		t.Fatalf("got %dx%d, want 3x3", g.H, g.W)
	}
	if g.At(0, 0) != '#' || g.At(1, 1) != 'A' {
		t.Errorf("unexpected cell contents")
	}
}

func TestParseTrimsBlankLines(t *testing.T) {
	g, err := Parse("\n##\n##\n\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.H != 2 {
		t.Fatalf("got H=%d, want 2 (blank lines should be dropped)", g.H)
	}
}

func TestParseRaggedLinesRejected(t *testing.T) {
	_, err := Parse("##\n#\n")
	if err == nil {
		t.Fatal("expected an error for ragged line widths")
	}
}

func TestParseEmptyRejected(t *testing.T) {
	_, err := Parse("\n\n")
	if err == nil {
		t.Fatal("expected an error for an empty grid")
	}
}

func TestIsWallIsEmptyIsTileID(t *testing.T) {
	if !IsWall('#') || IsWall('.') {
		t.Errorf("IsWall wrong")
	}
	if !IsEmpty('.') || !IsEmpty(' ') || IsEmpty('A') {
		t.Errorf("IsEmpty wrong")
	}
	if !IsTileID('A') || IsTileID('#') || IsTileID('.') {
		t.Errorf("IsTileID wrong")
	}
}

func TestSameShape(t *testing.T) {
	a, _ := Parse("##\n##\n")
	b, _ := Parse("..\n..\n")
	c, _ := Parse("...\n...\n")
	if !SameShape(a, b) {
		t.Errorf("expected equal-dimension grids to match")
	}
	if SameShape(a, c) {
		t.Errorf("expected different-width grids to mismatch")
	}
}
