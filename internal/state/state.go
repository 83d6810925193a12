// Package state represents one board configuration during the search: a
// packed board of cell tags plus, for every tile instance, the TilePos handle
// giving its current anchor in the Position Graph.
package state

import (
	"fmt"

	"github.com/asig/klotski/internal/board"
	"github.com/asig/klotski/internal/posgraph"
	"github.com/asig/klotski/internal/tile"
)

const (
	EmptyTag byte = 0x00
	WallTag  byte = 0xFF
)

// Move records a single slide that produced a State from its parent, for
// solution reconstruction and rendering.
type Move struct {
	TileIndex int
	Dir       tile.Direction
}

// State is one packed board plus the current anchor of every tile instance.
// Parent links form the BFS tree; State never mutates its parent's Board.
type State struct {
	W, H   int
	Board  []byte
	Tiles  []*posgraph.TilePos
	Parent *State
	Move   *Move // nil for the root state
}

// New builds the initial state (depth 0): walls copied from the puzzle
// grid, tiles painted at their catalogue-derived initial anchors. It panics
// if two tiles would occupy the same cell, matching the "something went
// terribly wrong" invariant violation of §7c — that can only happen from a
// malformed catalogue, never from user input, so it is a programmer error.
func New(puzzle *board.Grid, descs []*tile.Desc, initials []*posgraph.TilePos) *State {
	w, h := puzzle.W, puzzle.H
	b := make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if board.IsWall(puzzle.At(x, y)) {
				b[y*w+x] = WallTag
			}
		}
	}
	tiles := make([]*posgraph.TilePos, len(descs))
	for i, d := range descs {
		tp := initials[i]
		paint(b, d, tp.P, func(offset int) {
			if b[offset] != EmptyTag {
				panic("something went terribly wrong")
			}
			b[offset] = byte(d.Type)
		})
		tiles[i] = tp
	}
	return &State{W: w, H: h, Board: b, Tiles: tiles}
}

func paint(b []byte, d *tile.Desc, anchor int, set func(offset int)) {
	for _, delta := range d.Cells {
		set(anchor + delta)
	}
}

// Clone returns a child state with its own Board copy, ready to have a move
// applied and committed or discarded.
func (s *State) Clone() *State {
	b := make([]byte, len(s.Board))
	copy(b, s.Board)
	tiles := make([]*posgraph.TilePos, len(s.Tiles))
	copy(tiles, s.Tiles)
	return &State{W: s.W, H: s.H, Board: b, Tiles: tiles, Parent: s}
}

// CheckMove reports whether tile t can slide one cell in direction d: the
// destination anchor must exist in the Position Graph and every cell of its
// leading-edge mask must be empty.
func (s *State) CheckMove(t int, d tile.Direction) bool {
	cur := s.Tiles[t]
	next := cur.Next[d]
	if next == nil {
		return false
	}
	for _, delta := range next.Desc.DForm[d] {
		if s.Board[next.P+delta] != EmptyTag {
			return false
		}
	}
	return true
}

// DoMove slides tile t one cell in direction d: the trailing edge at the
// old anchor is erased, the leading edge at the new anchor is painted, and
// the new TilePos is returned. The caller is responsible for recording it
// into s.Tiles[t] (or not, if this is a speculative move about to be rolled
// back — see Undo).
func (s *State) DoMove(t int, d tile.Direction) *posgraph.TilePos {
	cur := s.Tiles[t]
	next := cur.Next[d]
	tag := byte(cur.Desc.Type)

	trailing := cur.Desc.DForm[d.Opposite()]
	for _, delta := range trailing {
		s.Board[cur.P+delta] = EmptyTag
	}
	for _, delta := range next.Desc.DForm[d] {
		s.Board[next.P+delta] = tag
	}
	return next
}

// Undo reverses a speculative DoMove(t, d) that produced `next`, restoring
// the board as it was before, so a rejected child's board buffer could be
// reused for the next candidate. search.Run does not call it: it discards
// rejected children instead.
func (s *State) Undo(t int, d tile.Direction, next *posgraph.TilePos) {
	cur := s.Tiles[t]
	tag := byte(cur.Desc.Type)

	for _, delta := range next.Desc.DForm[d] {
		s.Board[next.P+delta] = EmptyTag
	}
	for _, delta := range cur.Desc.DForm[d.Opposite()] {
		s.Board[cur.P+delta] = tag
	}
}

// CheckGoal reports whether every one of the first ntg tiles sits at its
// descriptor's goal offset.
func (s *State) CheckGoal(ntg int) bool {
	for i := 0; i < ntg; i++ {
		if s.Tiles[i].P != s.Tiles[i].Desc.GP {
			return false
		}
	}
	return true
}

// Depth walks Parent links to compute this state's BFS layer index.
func (s *State) Depth() int {
	n := 0
	for p := s.Parent; p != nil; p = p.Parent {
		n++
	}
	return n
}

// String renders the packed board as a debug grid, '#' for walls, '.' for
// empty, and the tile type's decimal digit (mod 10) otherwise.
func (s *State) String() string {
	out := make([]byte, 0, s.H*(s.W+1))
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			c := s.Board[y*s.W+x]
			switch c {
			case EmptyTag:
				out = append(out, '.')
			case WallTag:
				out = append(out, '#')
			default:
				out = append(out, byte('0'+int(c)%10))
			}
		}
		out = append(out, '\n')
	}
	return fmt.Sprintf("%s", out)
}
