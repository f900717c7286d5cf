package search_test

import (
	"math/rand"
	"testing"

	"github.com/thalath/gridpath/grid"
	"github.com/thalath/gridpath/search"
)

// benchGrid returns a 300×200 grid with ~20% walls, start and goal in
// opposite corners.
func benchGrid(b *testing.B) *grid.Grid {
	const w, h = 300, 200
	rng := rand.New(rand.NewSource(42))
	var walls []grid.Coord
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if rng.Intn(5) == 0 {
				walls = append(walls, grid.C(r, c))
			}
		}
	}
	g, err := grid.New(w, h)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	if err = g.Configure(grid.C(0, 0), grid.C(h-1, w-1), walls); err != nil {
		b.Fatalf("setup Configure failed: %v", err)
	}
	return g
}

// BenchmarkAStar: O(N log N) for N = W×H.
func BenchmarkAStar(b *testing.B) {
	g := benchGrid(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Run(g, search.AStar)
	}
}

// BenchmarkGreedy: the membership set keeps the duplicate check O(1).
func BenchmarkGreedy(b *testing.B) {
	g := benchGrid(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Run(g, search.GreedyBestFirst)
	}
}
