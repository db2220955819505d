package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/flowgrid/internal/grid"
)

func TestLRoute_HorizontalFirst(t *testing.T) {
	cells := lRoute(grid.Position{X: 1, Y: 1}, grid.Position{X: 3, Y: 3})

	require.Equal(t, []grid.Position{
		{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3},
	}, cells)
}

func TestLRoute_StraightLine(t *testing.T) {
	cells := lRoute(grid.Position{X: 1, Y: 2}, grid.Position{X: 4, Y: 2})
	assert.Len(t, cells, 4)

	same := lRoute(grid.Position{X: 2, Y: 2}, grid.Position{X: 2, Y: 2})
	assert.Equal(t, []grid.Position{{X: 2, Y: 2}}, same)
}

func TestRouteGoals_ReciprocalRequirements(t *testing.T) {
	goals := []grid.Position{{X: 1, Y: 1}, {X: 3, Y: 1}}
	reqs := routeGoals(goals)

	assert.Equal(t, grid.Conns(grid.Right), reqs[grid.Position{X: 1, Y: 1}])
	assert.Equal(t, grid.Conns(grid.Left, grid.Right), reqs[grid.Position{X: 2, Y: 1}])
	assert.Equal(t, grid.Conns(grid.Left), reqs[grid.Position{X: 3, Y: 1}])
}

func TestRouteGoals_CornerRequirement(t *testing.T) {
	goals := []grid.Position{{X: 1, Y: 1}, {X: 3, Y: 3}}
	reqs := routeGoals(goals)

	// The bend at (3,1) needs an incoming left opening and an outgoing
	// down opening.
	assert.Equal(t, grid.Conns(grid.Left, grid.Down), reqs[grid.Position{X: 3, Y: 1}])
	assert.Equal(t, grid.ShapeCorner, grid.ShapeOf(reqs[grid.Position{X: 3, Y: 1}]))
}

func TestRouteGoals_OverlappingSegmentsMerge(t *testing.T) {
	// 1 -> 2 runs right along y=1; 2 -> 3 backtracks left through the
	// same cells then turns down, merging to tee/cross requirements.
	goals := []grid.Position{{X: 1, Y: 1}, {X: 4, Y: 1}, {X: 2, Y: 3}}
	reqs := routeGoals(goals)

	bend := reqs[grid.Position{X: 2, Y: 1}]
	assert.True(t, bend.Has(grid.Left))
	assert.True(t, bend.Has(grid.Right))
	assert.True(t, bend.Has(grid.Down))
	assert.Equal(t, grid.ShapeTee, grid.ShapeOf(bend))
}

func TestDirectionBetween(t *testing.T) {
	a := grid.Position{X: 2, Y: 2}
	assert.Equal(t, grid.Right, directionBetween(a, grid.Position{X: 3, Y: 2}))
	assert.Equal(t, grid.Left, directionBetween(a, grid.Position{X: 1, Y: 2}))
	assert.Equal(t, grid.Down, directionBetween(a, grid.Position{X: 2, Y: 3}))
	assert.Equal(t, grid.Up, directionBetween(a, grid.Position{X: 2, Y: 1}))
}
