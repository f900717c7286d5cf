package grid_test

import (
	"math/rand"
	"testing"

	"github.com/thalath/gridpath/grid"
)

// BenchmarkReachable measures the BFS sweep on a 300×200 grid with ~25% walls.
// Complexity: O(W×H)
func BenchmarkReachable(b *testing.B) {
	const w, h = 300, 200
	rng := rand.New(rand.NewSource(42))
	g, err := grid.New(w, h)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if rng.Intn(4) == 0 {
				_ = g.SetRole(grid.C(r, c), grid.Wall)
			}
		}
	}
	_ = g.ClearRole(grid.C(0, 0))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Reachable(grid.C(0, 0))
	}
}
