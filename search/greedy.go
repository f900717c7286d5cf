package search

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/thalath/gridpath/grid"
)

// GreedySearch runs Greedy Best-First from g's start to g's goal.
//
// Priority is Manhattan(cell, goal) alone, so the result is not guaranteed
// shortest and the search can wander into dead ends that merely look close.
// A cell is pushed at most once: a neighbor is skipped if it was already
// expanded or is still pending in the frontier.
//
// Returns ErrNilGraph, ErrMissingEndpoint, ErrOptionViolation, or the context
// error if cancelled.
func GreedySearch(g Graph, opts ...Option) (*Result, error) {
	r, err := newRunner(g, GreedyBestFirst, opts)
	if err != nil {
		return nil, err
	}

	closed := mapset.New[grid.Coord]()
	r.push(r.start, Manhattan(r.start, r.goal), 0)

	for r.frontier.len() > 0 {
		if err = r.cancelled(); err != nil {
			return nil, err
		}

		e := r.frontier.pop()
		if e.cell == r.goal {
			r.res.Found = true
			break
		}
		if r.exhausted() {
			break
		}
		closed.Put(e.cell)
		r.expand(e.cell)

		for _, n := range g.Neighbors(e.cell) {
			if closed.Has(n) || r.frontier.contains(n) {
				continue
			}
			r.push(n, Manhattan(n, r.goal), 0)
			r.discover(n, e.cell)
		}
	}

	return r.finish(), nil
}
