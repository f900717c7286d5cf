package grid

// Reachable returns every cell reachable from `from` through Neighbors,
// including `from` itself, in breadth-first discovery order.
// Returns nil if `from` is out of bounds or a wall.
//
// Time:   O(W·H).
// Memory: O(W·H) for the seen flags and output.
func (g *Grid) Reachable(from Coord) []Coord {
	if !g.InBounds(from) || g.cells[g.index(from)] == Wall {
		return nil
	}
	seen := make([]bool, g.width*g.height)
	seen[g.index(from)] = true
	queue := []Coord{from}

	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			i := g.index(n)
			if !seen[i] {
				seen[i] = true
				queue = append(queue, n)
			}
		}
	}
	return queue
}

// Distance returns the shortest 4-directional step count from `from` to `to`
// avoiding walls, and false if `to` cannot be reached.
//
// Time:   O(W·H).
// Memory: O(W·H).
func (g *Grid) Distance(from, to Coord) (int, bool) {
	if !g.InBounds(from) || !g.InBounds(to) || g.cells[g.index(from)] == Wall {
		return 0, false
	}
	if from == to {
		return 0, true
	}
	dist := make([]int, g.width*g.height)
	for i := range dist {
		dist[i] = -1
	}
	dist[g.index(from)] = 0
	queue := []Coord{from}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, n := range g.Neighbors(u) {
			i := g.index(n)
			if dist[i] >= 0 {
				continue
			}
			dist[i] = dist[g.index(u)] + 1
			if n == to {
				return dist[i], true
			}
			queue = append(queue, n)
		}
	}
	return 0, false
}
