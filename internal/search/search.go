// Package search implements the Search Engine: breadth-first expansion over
// depth layers, producing a parent-linked state tree from which the
// solution path is reconstructed.
package search

import (
	"github.com/asig/klotski/internal/engine"
	"github.com/asig/klotski/internal/state"
	"github.com/asig/klotski/internal/tile"
	"github.com/asig/klotski/internal/visited"
)

// DefaultMaxDepth mirrors the original solver's MAX_DEPTH.
const DefaultMaxDepth = 500

// Result is the outcome of one Run.
type Result struct {
	Solved         bool
	Goal           *state.State // nil if not Solved
	Depth          int          // number of moves in the solution
	StatesExplored int
}

// Progress is called after every novel state is committed, so a CLI or
// metrics collector can report on a long-running search. It may be nil.
type Progress func(depth, statesExplored int)

// Run expands e.Initial breadth-first until a state satisfying the goal
// condition is found or maxDepth layers have been exhausted.
//
// Each mother is expanded by trying every (tile, direction) pair in index
// order, directions in up/left/down/right order, so ties between equally
// short solutions are always resolved the same way for the same input.
//
// Unlike the original C source's copy-mutate-and-roll-back dance (an
// allocation-avoidance optimization, not a semantic requirement — see the
// design's Open Questions), each candidate move is applied to a freshly
// cloned child state; a child the Visited-Set rejects as a duplicate is
// simply discarded; nothing needs to be undone on the mother, because the
// mother is never mutated in the first place.
func Run(e *engine.Engine, maxDepth int, progress Progress) (*Result, error) {
	vis := visited.New()
	vis.Insert(e.Initial.Board)
	statesExplored := 1

	if e.Initial.CheckGoal(e.NumGoal) {
		return &Result{Solved: true, Goal: e.Initial, Depth: 0, StatesExplored: statesExplored}, nil
	}

	mothers := []*state.State{e.Initial}

	for depth := 1; depth <= maxDepth; depth++ {
		var layer []*state.State
		var goal *state.State

	search:
		for _, m := range mothers {
			for t := 0; t < len(e.Tiles); t++ {
				for d := tile.Up; d <= tile.Right; d++ {
					if !m.CheckMove(t, d) {
						continue
					}
					child := m.Clone()
					next := child.DoMove(t, d)
					if !vis.Insert(child.Board) {
						continue // duplicate: discard, nothing to roll back
					}
					child.Tiles[t] = next
					child.Move = &state.Move{TileIndex: t, Dir: d}
					layer = append(layer, child)
					statesExplored++
					if progress != nil {
						progress(depth, statesExplored)
					}
					if child.CheckGoal(e.NumGoal) {
						goal = child
						break search
					}
				}
			}
		}

		if goal != nil {
			return &Result{Solved: true, Goal: goal, Depth: depth, StatesExplored: statesExplored}, nil
		}
		if len(layer) == 0 {
			break
		}
		mothers = layer
	}

	return &Result{Solved: false, StatesExplored: statesExplored}, nil
}

// Path walks Parent links from the goal state back to the root and returns
// the states in order (root first, goal last).
func Path(goal *state.State) []*state.State {
	var rev []*state.State
	for s := goal; s != nil; s = s.Parent {
		rev = append(rev, s)
	}
	path := make([]*state.State, len(rev))
	for i, s := range rev {
		path[len(rev)-1-i] = s
	}
	return path
}
