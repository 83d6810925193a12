// Package tile builds the Tile Catalogue: for every distinct tile id found
// in a puzzle/goal pair of grids, it derives the tile's shape, its four
// directional leading-edge masks, its equivalence type tag, and — for goal
// tiles — the board offset they must reach.
package tile

import (
	"fmt"

	"github.com/asig/klotski/internal/board"
)

// Direction is one of the four cardinal slide directions, in the order the
// search engine tries them.
type Direction int

const (
	Up Direction = iota
	Left
	Down
	Right
)

var directionNames = [4]string{"up", "left", "down", "right"}

func (d Direction) String() string { return directionNames[d] }

// Opposite returns the direction that undoes a move made in d.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// drow, dcol are the single-cell row/column deltas of each direction.
var drow = [4]int{-1, 0, 1, 0}
var dcol = [4]int{0, -1, 0, 1}

// Desc is the immutable-after-setup description of one tile: its shape, its
// directional edge masks, and (for goal tiles) where it must end up.
//
// Cells and DForm entries are board-width deltas (dy*BoardW+dx) relative to
// the tile's own bounding-box anchor, so the same Desc is shared by every
// TilePos of that shape — adding a delta to any anchor's packed offset
// yields the correct absolute board offset, since dx < W and dy < H bound
// the delta within one board row's worth of headroom.
type Desc struct {
	ID   byte
	W, H int
	X, Y int // top-left anchor in the initial puzzle grid

	Cells []int    // occupied local cells, as board-width deltas
	DForm [4][]int // leading-edge mask per direction

	Type   int
	IsGoal bool

	GX, GY, GP int // goal anchor and its board offset (goal tiles only)
}

// catalogue building works on a local (dx,dy) occupancy grid per tile before
// flattening to board-width deltas, since neighbor tests are far simpler in
// 2-D local coordinates than by reverse-engineering a flat delta.
type shape struct {
	w, h int
	occ  [][]bool // occ[dy][dx]
}

func (s *shape) at(dx, dy int) bool {
	if dx < 0 || dy < 0 || dx >= s.w || dy >= s.h {
		return false
	}
	return s.occ[dy][dx]
}

// Build constructs the Tile Catalogue from a puzzle grid and a goal
// ("solve") grid, following §4.1 of the design: discover tiles, partition
// goal tiles to the front, compute per-tile geometry and edge masks,
// assign type tags, and verify the goal forms.
//
// Returns the full tile list (goal tiles first, ntg of them) and ntg.
func Build(puzzle, solve *board.Grid) ([]*Desc, int, error) {
	if !board.SameShape(puzzle, solve) {
		return nil, 0, fmt.Errorf("puzzle and goal grids have different dimensions")
	}
	w, h := puzzle.W, puzzle.H

	if err := checkWallsMatch(puzzle, solve); err != nil {
		return nil, 0, err
	}

	ids := discoverIDs(puzzle) // column-major discovery order
	goalIDs, err := goalOrder(solve, ids)
	if err != nil {
		return nil, 0, err
	}
	if len(goalIDs) == 0 {
		return nil, 0, fmt.Errorf("no goal tiles found, nothing to do")
	}

	var order []byte
	order = append(order, goalIDs...)
	for _, id := range ids {
		if !containsByte(goalIDs, id) {
			order = append(order, id)
		}
	}

	descs := make([]*Desc, len(order))
	shapes := make([]*shape, len(order))
	for i, id := range order {
		d, sh, err := buildGeometry(puzzle, id, w, h)
		if err != nil {
			return nil, 0, err
		}
		d.IsGoal = i < len(goalIDs)
		descs[i] = d
		shapes[i] = sh
	}

	ntg := len(goalIDs)
	ntp := 0
	for i, d := range descs {
		if i < ntg {
			ntp++
			d.Type = ntp
			continue
		}
		matched := false
		for p := ntg; p < i; p++ {
			if sameShape(shapes[p], shapes[i]) {
				d.Type = descs[p].Type
				matched = true
				break
			}
		}
		if !matched {
			ntp++
			d.Type = ntp
		}
	}

	for i := 0; i < ntg; i++ {
		if err := resolveGoal(descs[i], shapes[i], solve, w); err != nil {
			return nil, 0, err
		}
	}

	return descs, ntg, nil
}

func containsByte(xs []byte, x byte) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func checkWallsMatch(puzzle, solve *board.Grid) error {
	for y := 0; y < puzzle.H; y++ {
		for x := 0; x < puzzle.W; x++ {
			pw := board.IsWall(puzzle.At(x, y))
			sw := board.IsWall(solve.At(x, y))
			if pw != sw {
				return fmt.Errorf("solid tiles don't match")
			}
		}
	}
	return nil
}

// discoverIDs scans the puzzle in column-major order, as the original
// convert_puzzle does, recording each newly seen tile id once.
func discoverIDs(g *board.Grid) []byte {
	var ids []byte
	seen := map[byte]bool{}
	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			c := g.At(x, y)
			if !board.IsTileID(c) {
				continue
			}
			if !seen[c] {
				seen[c] = true
				ids = append(ids, c)
			}
		}
	}
	return ids
}

// goalOrder scans solve in column-major order, recording each tile id that
// appears there (in first-seen order) and failing if one isn't a puzzle
// tile.
func goalOrder(solve *board.Grid, puzzleIDs []byte) ([]byte, error) {
	known := map[byte]bool{}
	for _, id := range puzzleIDs {
		known[id] = true
	}
	var goal []byte
	seen := map[byte]bool{}
	for x := 0; x < solve.W; x++ {
		for y := 0; y < solve.H; y++ {
			c := solve.At(x, y)
			if !board.IsTileID(c) {
				continue
			}
			if !known[c] {
				return nil, fmt.Errorf("goal tile not present in puzzle")
			}
			if !seen[c] {
				seen[c] = true
				goal = append(goal, c)
			}
		}
	}
	return goal, nil
}

func buildGeometry(g *board.Grid, id byte, boardW, boardH int) (*Desc, *shape, error) {
	minX, minY, maxX, maxY := boardW, boardH, -1, -1
	for y := 0; y < boardH; y++ {
		for x := 0; x < boardW; x++ {
			if g.At(x, y) != id {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < 0 {
		return nil, nil, fmt.Errorf("tile %q not found", id)
	}
	w, h := maxX-minX+1, maxY-minY+1
	occ := make([][]bool, h)
	for dy := range occ {
		occ[dy] = make([]bool, w)
	}
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			occ[dy][dx] = g.At(minX+dx, minY+dy) == id
		}
	}
	sh := &shape{w: w, h: h, occ: occ}
	d := &Desc{ID: id, W: w, H: h, X: minX, Y: minY}
	d.Cells = flatten(sh, boardW)
	for dir := Up; dir <= Right; dir++ {
		d.DForm[dir] = leadingEdge(sh, dir, boardW)
	}
	return d, sh, nil
}

func flatten(sh *shape, boardW int) []int {
	var out []int
	for dy := 0; dy < sh.h; dy++ {
		for dx := 0; dx < sh.w; dx++ {
			if sh.occ[dy][dx] {
				out = append(out, dy*boardW+dx)
			}
		}
	}
	return out
}

// leadingEdge returns the cells of the shape that have no same-shape
// neighbor on the side the shape moves toward when sliding one cell in
// direction d — i.e. the cells that newly become occupied at the new
// anchor, or equivalently (via the opposite direction) the cells vacated at
// the old anchor. The board-edge case from §4.1 step 5 never needs to be
// materialized: state.CheckMove already refuses any move whose destination
// anchor doesn't exist, so a tile never slides in a direction that would
// carry it off the board.
func leadingEdge(sh *shape, d Direction, boardW int) []int {
	var out []int
	for dy := 0; dy < sh.h; dy++ {
		for dx := 0; dx < sh.w; dx++ {
			if !sh.occ[dy][dx] {
				continue
			}
			nx, ny := dx+dcol[d], dy+drow[d]
			if !sh.at(nx, ny) {
				out = append(out, dy*boardW+dx)
			}
		}
	}
	return out
}

func sameShape(a, b *shape) bool {
	if a.w != b.w || a.h != b.h {
		return false
	}
	for dy := 0; dy < a.h; dy++ {
		for dx := 0; dx < a.w; dx++ {
			if a.occ[dy][dx] != b.occ[dy][dx] {
				return false
			}
		}
	}
	return true
}

// resolveGoal locates a goal tile's required position in the solve grid and
// verifies its form there matches the tile's shape exactly.
func resolveGoal(d *Desc, sh *shape, solve *board.Grid, boardW int) error {
	minX, minY, maxX, maxY := solve.W, solve.H, -1, -1
	for y := 0; y < solve.H; y++ {
		for x := 0; x < solve.W; x++ {
			if solve.At(x, y) != d.ID {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < 0 {
		return fmt.Errorf("goal tile not present in puzzle")
	}
	gw, gh := maxX-minX+1, maxY-minY+1
	if gw != sh.w || gh != sh.h {
		return fmt.Errorf("goal tile forms don't match")
	}
	for dy := 0; dy < gh; dy++ {
		for dx := 0; dx < gw; dx++ {
			got := solve.At(minX+dx, minY+dy) == d.ID
			if got != sh.at(dx, dy) {
				return fmt.Errorf("goal tile forms don't match")
			}
		}
	}
	d.GX, d.GY = minX, minY
	d.GP = minY*boardW + minX
	return nil
}
