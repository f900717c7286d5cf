// Package search_test contains unit tests for A*, Greedy Best-First and
// path reconstruction: validation errors, the fixed tie-breaking, the
// documented scenarios, and properties checked against a BFS oracle.
package search_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalath/gridpath/grid"
	"github.com/thalath/gridpath/search"
)

func mustParse(t testing.TB, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(rows...)
	require.NoError(t, err)
	return g
}

func coords(pairs ...[2]int) []grid.Coord {
	out := make([]grid.Coord, len(pairs))
	for i, p := range pairs {
		out[i] = grid.C(p[0], p[1])
	}
	return out
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestRun_NilGraph(t *testing.T) {
	for _, alg := range search.Algorithms() {
		res, err := search.Run(nil, alg)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, search.ErrNilGraph)
	}
}

func TestRun_MissingEndpoint(t *testing.T) {
	g, _ := grid.New(3, 3)
	_, err := search.Run(g, search.AStar)
	assert.ErrorIs(t, err, search.ErrMissingEndpoint)

	require.NoError(t, g.SetRole(grid.C(0, 0), grid.Start))
	_, err = search.Run(g, search.GreedyBestFirst)
	assert.ErrorIs(t, err, search.ErrMissingEndpoint)
	assert.ErrorContains(t, err, "goal")
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	g := mustParse(t, "S.G")
	_, err := search.Run(g, search.Algorithm(42))
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestRun_NegativeMaxExpansions(t *testing.T) {
	g := mustParse(t, "S.G")
	_, err := search.Run(g, search.AStar, search.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestRun_Cancelled(t *testing.T) {
	g := mustParse(t, "S...G")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, alg := range search.Algorithms() {
		_, err := search.Run(g, alg, search.WithContext(ctx))
		assert.ErrorIs(t, err, context.Canceled)
	}
}

// ------------------------------------------------------------------------
// 2. Scenarios
// ------------------------------------------------------------------------

// TestAStar_DetourAroundWall is the 5×5 scenario with a wall at (0,2):
// the straight line is blocked and A* must detour through row 1.
func TestAStar_DetourAroundWall(t *testing.T) {
	g := mustParse(t,
		"S.#.G",
		".....",
		".....",
		".....",
		".....",
	)
	res, err := search.Run(g, search.AStar)
	require.NoError(t, err)
	require.True(t, res.Found)

	assert.Equal(t, coords([2]int{0, 1}, [2]int{1, 1}, [2]int{1, 2}, [2]int{1, 3}, [2]int{0, 3}, [2]int{0, 4}), res.Path)
	assert.Equal(t, 6, res.Cost())
	assert.Equal(t, coords(
		[2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1}, [2]int{2, 0}, [2]int{2, 1},
		[2]int{1, 2}, [2]int{2, 2}, [2]int{1, 3}, [2]int{0, 3}, [2]int{2, 3},
		[2]int{1, 4}, [2]int{0, 4}, [2]int{2, 4},
	), res.VisitedOrder)
	assert.Equal(t, 8, res.Expanded)
	assert.NoError(t, search.ValidatePath(g, res.Start, res.Path))
}

func TestGreedy_DetourAroundWall(t *testing.T) {
	g := mustParse(t,
		"S.#.G",
		".....",
		".....",
		".....",
		".....",
	)
	res, err := search.Run(g, search.GreedyBestFirst)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, search.GreedyBestFirst, res.Algorithm)
	assert.Len(t, res.Path, 6)
	assert.Equal(t, coords(
		[2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2},
		[2]int{2, 2}, [2]int{1, 3}, [2]int{0, 3}, [2]int{2, 3}, [2]int{1, 4},
		[2]int{0, 4},
	), res.VisitedOrder)
	assert.Equal(t, 6, res.Expanded)
}

// TestGreedy_LongerThanAStar shows greedy committing to a corridor that
// looks closer to the goal and paying two extra steps for it.
func TestGreedy_LongerThanAStar(t *testing.T) {
	g := mustParse(t,
		"S.#..",
		".....",
		"...#G",
		"##.#.",
	)
	a, err := search.Run(g, search.AStar)
	require.NoError(t, err)
	gr, err := search.Run(g, search.GreedyBestFirst)
	require.NoError(t, err)

	assert.Equal(t, coords([2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2}, [2]int{1, 3}, [2]int{1, 4}, [2]int{2, 4}), a.Path)
	assert.Equal(t, coords(
		[2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2},
		[2]int{1, 2}, [2]int{1, 3}, [2]int{1, 4}, [2]int{2, 4},
	), gr.Path)
	assert.Less(t, a.Cost(), gr.Cost())
}

func TestSearch_StartEqualsGoal(t *testing.T) {
	g, _ := grid.New(4, 4)
	require.NoError(t, g.Configure(grid.C(2, 2), grid.C(2, 2), nil))
	for _, alg := range search.Algorithms() {
		res, err := search.Run(g, alg)
		require.NoError(t, err)
		assert.True(t, res.Found, alg.String())
		assert.Empty(t, res.Path, alg.String())
		assert.Empty(t, res.VisitedOrder, alg.String())
		assert.Zero(t, res.Expanded, alg.String())
	}
}

// TestSearch_EnclosedGoal: the goal is walled in, so both algorithms exhaust
// the frontier and report the reachable component in VisitedOrder.
func TestSearch_EnclosedGoal(t *testing.T) {
	g := mustParse(t,
		"S....",
		".....",
		".....",
		"...##",
		"...#G",
	)
	reach := g.Reachable(grid.C(0, 0))
	for _, alg := range search.Algorithms() {
		res, err := search.Run(g, alg)
		require.NoError(t, err)
		assert.False(t, res.Found, alg.String())
		assert.Empty(t, res.Path, alg.String())

		seen := map[grid.Coord]bool{res.Start: true}
		for _, c := range res.VisitedOrder {
			seen[c] = true
		}
		var got []grid.Coord
		for c := range seen {
			got = append(got, c)
		}
		assert.ElementsMatch(t, reach, got, alg.String())
		assert.Empty(t, search.Reconstruct(res.Predecessors, res.Start, res.Goal))
	}
}

// TestAStar_RelaxationReentry documents the visited-order semantics: a cell
// improved by a cheaper route is appended again, unless WithFirstTouchOrder
// is set. The path is the same either way.
func TestAStar_RelaxationReentry(t *testing.T) {
	g := mustParse(t,
		"##.S.",
		".#.#.",
		"G#...",
		".....",
	)
	every, err := search.Run(g, search.AStar)
	require.NoError(t, err)
	first, err := search.Run(g, search.AStar, search.WithFirstTouchOrder())
	require.NoError(t, err)

	assert.Len(t, every.VisitedOrder, 14)
	assert.Equal(t, every.VisitedOrder[9], every.VisitedOrder[10])
	assert.Equal(t, grid.C(2, 4), every.VisitedOrder[9])

	assert.Len(t, first.VisitedOrder, 13)
	assert.Equal(t, every.Path, first.Path)
	assert.Equal(t, coords(
		[2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2},
		[2]int{3, 1}, [2]int{3, 0}, [2]int{2, 0},
	), every.Path)
}

func TestSearch_MaxExpansions(t *testing.T) {
	g, _ := grid.New(10, 1)
	require.NoError(t, g.Configure(grid.C(0, 0), grid.C(0, 9), nil))
	res, err := search.Run(g, search.AStar, search.WithMaxExpansions(3))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
	assert.Equal(t, 3, res.Expanded)
}

func TestSearch_Hooks(t *testing.T) {
	g := mustParse(t, "S..G")
	var pushed, expanded []grid.Coord
	var priorities []int
	res, err := search.Run(g, search.AStar,
		search.WithOnPush(func(c grid.Coord, p int) {
			pushed = append(pushed, c)
			priorities = append(priorities, p)
		}),
		search.WithOnExpand(func(c grid.Coord) { expanded = append(expanded, c) }),
	)
	require.NoError(t, err)
	assert.Equal(t, coords([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}), pushed)
	assert.Equal(t, []int{0, 3, 3, 3}, priorities)
	assert.Equal(t, coords([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}), expanded)
	assert.Equal(t, res.Expanded, len(expanded))
}

// ------------------------------------------------------------------------
// 3. Properties against a BFS oracle
// ------------------------------------------------------------------------

// randomGrid builds an h×w grid with roughly density walls and random endpoints.
func randomGrid(rng *rand.Rand, w, h int, density float64) *grid.Grid {
	g, _ := grid.New(w, h)
	var walls []grid.Coord
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if rng.Float64() < density {
				walls = append(walls, grid.C(r, c))
			}
		}
	}
	start := grid.C(rng.Intn(h), rng.Intn(w))
	goal := grid.C(rng.Intn(h), rng.Intn(w))
	_ = g.Configure(start, goal, walls)
	return g
}

func TestProperties_RandomGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		g := randomGrid(rng, 2+rng.Intn(7), 2+rng.Intn(6), 0.3)
		start, _ := g.Start()
		goal, _ := g.Goal()
		want, reachable := g.Distance(start, goal)

		a, err := search.Run(g, search.AStar)
		require.NoError(t, err)
		gr, err := search.Run(g, search.GreedyBestFirst)
		require.NoError(t, err)

		require.Equalf(t, reachable, a.Found, "A* found mismatch on\n%s", g)
		require.Equalf(t, reachable, gr.Found, "greedy found mismatch on\n%s", g)
		if !reachable {
			continue
		}
		// A* is optimal; greedy never beats it.
		require.Equalf(t, want, a.Cost(), "A* cost on\n%s", g)
		require.GreaterOrEqual(t, gr.Cost(), a.Cost())
		// Reconstructed paths are chains of 4-neighbors ending at the goal.
		require.NoError(t, search.ValidatePath(g, start, a.Path))
		require.NoError(t, search.ValidatePath(g, start, gr.Path))
		// Greedy never pushes a cell twice.
		seen := map[grid.Coord]bool{}
		for _, c := range gr.VisitedOrder {
			require.Falsef(t, seen[c], "greedy visited %s twice", c)
			seen[c] = true
		}
	}
}

func TestAStar_WallFreeStraightLine(t *testing.T) {
	g, _ := grid.New(8, 6)
	require.NoError(t, g.Configure(grid.C(3, 0), grid.C(3, 7), nil))
	res, err := search.Run(g, search.AStar)
	require.NoError(t, err)
	assert.Equal(t, search.Manhattan(grid.C(3, 0), grid.C(3, 7)), res.Cost())
}

func TestSearch_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := randomGrid(rng, 12, 9, 0.25)
	for _, alg := range search.Algorithms() {
		a, err := search.Run(g, alg)
		require.NoError(t, err)
		b, err := search.Run(g, alg)
		require.NoError(t, err)
		assert.Equal(t, a.VisitedOrder, b.VisitedOrder)
		assert.Equal(t, a.Path, b.Path)
	}
}
