package search

import "github.com/thalath/gridpath/grid"

// AStarSearch runs A* from g's start to g's goal.
//
// Behavior:
//  1. Push Start with priority 0 and cost 0.
//  2. Pop the lowest (priority, sequence) entry. Skip it if its cost is worse
//     than the best recorded cost for that cell (stale lazy entry).
//  3. If it is the goal, stop: Found = true.
//  4. For each neighbor, new cost = cost(current) + 1. If the neighbor has no
//     recorded cost or the new one is strictly lower, record it, set its
//     predecessor, push (new cost + Manhattan(neighbor, goal)) and append the
//     neighbor to VisitedOrder.
//  5. An empty frontier means no path: Found = false, Path empty.
//
// Returns ErrNilGraph, ErrMissingEndpoint, ErrOptionViolation, or the context
// error if cancelled.
func AStarSearch(g Graph, opts ...Option) (*Result, error) {
	r, err := newRunner(g, AStar, opts)
	if err != nil {
		return nil, err
	}

	cost := map[grid.Coord]int{r.start: 0}
	r.push(r.start, 0, 0)

	for r.frontier.len() > 0 {
		if err = r.cancelled(); err != nil {
			return nil, err
		}

		e := r.frontier.pop()
		if e.cost > cost[e.cell] {
			continue
		}
		if e.cell == r.goal {
			r.res.Found = true
			break
		}
		if r.exhausted() {
			break
		}
		r.expand(e.cell)

		for _, n := range g.Neighbors(e.cell) {
			newCost := cost[e.cell] + 1
			if old, seen := cost[n]; seen && newCost >= old {
				continue
			}
			cost[n] = newCost
			r.push(n, newCost+Manhattan(n, r.goal), newCost)
			r.discover(n, e.cell)
		}
	}

	return r.finish(), nil
}
