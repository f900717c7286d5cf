// File: grid/components_test.go
package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReachable_Enclosed tests a 5×5 grid where the goal corner is sealed.
//
//	S....
//	.....
//	.....
//	...##
//	...#G
//
// Expected: 21 reachable cells from S (25 - 3 walls - G).
func TestReachable_Enclosed(t *testing.T) {
	g, err := Parse(
		"S....",
		".....",
		".....",
		"...##",
		"...#G",
	)
	require.NoError(t, err)

	reach := g.Reachable(C(0, 0))
	assert.Len(t, reach, 21)
	assert.Equal(t, C(0, 0), reach[0])
	assert.NotContains(t, reach, C(4, 4))

	_, ok := g.Distance(C(0, 0), C(4, 4))
	assert.False(t, ok)
}

func TestReachable_FromWallOrOutside(t *testing.T) {
	g, _ := New(3, 3, WithWalls(C(1, 1)))
	assert.Nil(t, g.Reachable(C(1, 1)))
	assert.Nil(t, g.Reachable(C(-1, 0)))
}

func TestDistance_Detour(t *testing.T) {
	g, _ := Parse(
		"S.#.G",
		".....",
	)
	d, ok := g.Distance(C(0, 0), C(0, 4))
	require.True(t, ok)
	assert.Equal(t, 6, d)

	d, ok = g.Distance(C(1, 1), C(1, 1))
	assert.True(t, ok)
	assert.Zero(t, d)
}
