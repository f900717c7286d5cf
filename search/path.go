package search

import (
	"fmt"

	"github.com/thalath/gridpath/grid"
)

// Reconstruct walks pred backward from goal until start and returns the
// visited cells in forward order, excluding start and including goal.
//
// Returns an empty path when start == goal or when the chain breaks before
// reaching start (goal disconnected). Panics if pred contains a cycle, which
// can only happen through a bug in the producer of the map.
func Reconstruct(pred map[grid.Coord]grid.Coord, start, goal grid.Coord) []grid.Coord {
	var path []grid.Coord
	for cur := goal; cur != start; {
		if len(path) > len(pred) {
			panic(fmt.Sprintf("search: predecessor cycle reached from %s", goal))
		}
		path = append(path, cur)
		prev, ok := pred[cur]
		if !ok {
			return nil
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// ValidatePath checks that path leaves start through a 4-neighbor, that
// every consecutive pair is mutually adjacent in g, and that it ends at g's
// goal. An empty path is valid only when start equals the goal.
func ValidatePath(g Graph, start grid.Coord, path []grid.Coord) error {
	goal, ok := g.Goal()
	if !ok {
		return ErrMissingEndpoint
	}
	if len(path) == 0 {
		if start == goal {
			return nil
		}
		return fmt.Errorf("%w: empty path from %s to %s", ErrInvalidPath, start, goal)
	}
	prev := start
	for i, c := range path {
		if !adjacent(g, prev, c) || !adjacent(g, c, prev) {
			return fmt.Errorf("%w: step %d %s→%s is not a move between neighbors", ErrInvalidPath, i, prev, c)
		}
		prev = c
	}
	if prev != goal {
		return fmt.Errorf("%w: ends at %s, want %s", ErrInvalidPath, prev, goal)
	}

	return nil
}

func adjacent(g Graph, a, b grid.Coord) bool {
	for _, n := range g.Neighbors(a) {
		if n == b {
			return true
		}
	}
	return false
}
