package search

import "github.com/thalath/gridpath/grid"

// Heuristic estimates the remaining cost between two cells.
type Heuristic func(a, b grid.Coord) int

// Manhattan returns |Δrow| + |Δcol|. It is admissible and consistent for
// 4-directional unit-cost movement, which A* optimality relies on.
func Manhattan(a, b grid.Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
