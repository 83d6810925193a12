// Package board holds the geometry of a Klotski-family puzzle: its height
// and width and the character grid that describes walls, empty cells, and
// tile ids before they are turned into a Tile Catalogue.
package board

import (
	"fmt"
	"strings"
)

// Cell is the raw character read from a puzzle/goal text grid.
type Cell = byte

const (
	// WallChar marks a cell that is permanently blocked.
	WallChar Cell = '#'
	// EmptyChar and EmptyCharAlt mark a cell with no tile on it.
	EmptyChar    Cell = '.'
	EmptyCharAlt Cell = ' '
)

// IsWall reports whether c is the wall character.
func IsWall(c Cell) bool { return c == WallChar }

// IsEmpty reports whether c is one of the empty-cell characters.
func IsEmpty(c Cell) bool { return c == EmptyChar || c == EmptyCharAlt }

// IsTileID reports whether c identifies a tile (neither wall nor empty).
func IsTileID(c Cell) bool { return !IsWall(c) && !IsEmpty(c) }

// Grid is a rectangular H×W grid of raw cell characters, row-major.
type Grid struct {
	H, W int
	Rows [][]byte
}

// At returns the character at (x, y).
func (g *Grid) At(x, y int) Cell { return g.Rows[y][x] }

// Parse splits text into non-blank lines and builds a Grid, requiring every
// line to have the same width. Only a trailing '\r' is removed from a line;
// other spaces are kept, since ' ' is an empty cell. Lines that are all
// whitespace are dropped, matching how the teacher's playfieldFromString
// skips them.
func Parse(text string) (*Grid, error) {
	var rows [][]byte
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r\n")
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		rows = append(rows, []byte(line))
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty puzzle grid")
	}
	w := len(rows[0])
	for i, r := range rows {
		if len(r) != w {
			return nil, fmt.Errorf("line %d has length %d, want %d", i+1, len(r), w)
		}
	}
	return &Grid{H: len(rows), W: w, Rows: rows}, nil
}

// SameShape reports whether two grids have identical dimensions.
func SameShape(a, b *Grid) bool { return a.H == b.H && a.W == b.W }
