// Package posgraph builds, for each tile descriptor, the lattice of every
// legal anchor position on the board together with its four neighbor
// anchors — the Position Graph of the design.
package posgraph

import "github.com/asig/klotski/internal/tile"

// TilePos is one node of a tile descriptor's position lattice: an anchor
// (X, Y), its packed board offset P, and up to four neighbor anchors
// (nil where the lattice has no neighbor in that direction).
type TilePos struct {
	Desc *tile.Desc
	X, Y int
	P    int
	Next [4]*TilePos // indexed by tile.Direction
}

// Lattice holds every TilePos for one tile descriptor, plus a direct handle
// to the anchor the tile occupies in the initial puzzle.
type Lattice struct {
	Desc    *tile.Desc
	Nodes   [][]*TilePos // Nodes[y][x], nil where the tile doesn't fit
	Initial *TilePos
}

// Build constructs the position lattice for one descriptor on an H×W board.
// A TilePos exists at every (x, y) in {0..W-w} × {0..H-h}, linked to its
// up/left/down/right neighbors; the node at the descriptor's own initial
// (X, Y) is reused as Initial so the caller's starting State can point
// directly into the lattice.
func Build(d *tile.Desc, boardW, boardH int) *Lattice {
	nodes := make([][]*TilePos, boardH)
	for y := range nodes {
		nodes[y] = make([]*TilePos, boardW)
	}

	maxX, maxY := boardW-d.W, boardH-d.H
	for y := 0; y <= maxY; y++ {
		for x := 0; x <= maxX; x++ {
			nodes[y][x] = &TilePos{Desc: d, X: x, Y: y, P: y*boardW + x}
		}
	}
	for y := 0; y <= maxY; y++ {
		for x := 0; x <= maxX; x++ {
			n := nodes[y][x]
			if y > 0 && nodes[y-1][x] != nil {
				n.Next[tile.Up] = nodes[y-1][x]
			}
			if y < maxY {
				n.Next[tile.Down] = nodes[y+1][x]
			}
			if x > 0 && nodes[y][x-1] != nil {
				n.Next[tile.Left] = nodes[y][x-1]
			}
			if x < maxX {
				n.Next[tile.Right] = nodes[y][x+1]
			}
		}
	}

	return &Lattice{Desc: d, Nodes: nodes, Initial: nodes[d.Y][d.X]}
}
