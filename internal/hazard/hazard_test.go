package hazard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/flowgrid/internal/grid"
)

func wall(x, y int) grid.Tile {
	return grid.Tile{Kind: grid.KindWall, Pos: grid.Position{X: x, Y: y}}
}

func node(x, y int) grid.Tile {
	return grid.Tile{Kind: grid.KindNode, Pos: grid.Position{X: x, Y: y}, Conns: grid.Conns(grid.Right), Goal: true}
}

func path(x, y int) grid.Tile {
	return grid.Tile{Kind: grid.KindPath, Pos: grid.Position{X: x, Y: y}, Conns: grid.Conns(grid.Left, grid.Right), Rotatable: true}
}

// ringedBoard builds a gridSize board with walls on the given rings and
// the provided extra tiles.
func ringedBoard(gridSize int, wallRings map[int]bool, extra ...grid.Tile) []grid.Tile {
	var tiles []grid.Tile
	for x := 0; x < gridSize; x++ {
		for y := 0; y < gridSize; y++ {
			p := grid.Position{X: x, Y: y}
			if wallRings[RingDistance(p, gridSize)] {
				tiles = append(tiles, wall(x, y))
			}
		}
	}
	return append(tiles, extra...)
}

func TestRingDistance(t *testing.T) {
	tests := []struct {
		pos  grid.Position
		size int
		want int
	}{
		{grid.Position{X: 0, Y: 0}, 5, 0},
		{grid.Position{X: 4, Y: 2}, 5, 0},
		{grid.Position{X: 1, Y: 3}, 5, 1},
		{grid.Position{X: 2, Y: 2}, 5, 2},
		{grid.Position{X: 3, Y: 3}, 7, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RingDistance(tt.pos, tt.size), "%v in %d", tt.pos, tt.size)
	}
}

func TestAdvance_IdleIsNoOp(t *testing.T) {
	m := New(ringedBoard(5, map[int]bool{0: true}, node(2, 2)), []grid.Position{{X: 2, Y: 2}}, 5)

	res := m.Advance()
	assert.Equal(t, 0, res.WallOffset)
	assert.Equal(t, Idle, m.Status())
}

func TestAdvance_CrushesOuterRing(t *testing.T) {
	tiles := ringedBoard(5, map[int]bool{0: true}, node(2, 2), path(1, 2))
	m := New(tiles, []grid.Position{{X: 2, Y: 2}}, 5)
	m.Activate()

	res := m.Advance()
	require.Equal(t, 1, res.WallOffset)
	assert.False(t, res.CrushedGoal)
	assert.False(t, res.DidShrink)

	for i := range m.Tiles {
		tile := m.Tiles[i]
		if RingDistance(tile.Pos, 5) == 0 {
			assert.Equal(t, grid.KindCrushed, tile.Kind, "ring 0 tile %v", tile.Pos)
			assert.Equal(t, grid.ConnSet(0), tile.Conns)
			assert.False(t, tile.Rotatable)
		}
	}

	// The live interior is untouched.
	assert.Equal(t, grid.KindPath, m.Tiles[len(m.Tiles)-1].Kind)
}

func TestAdvance_CrushingGoalRaisesSignal(t *testing.T) {
	// Goal at ring 1: survives the first advance, dies on the second.
	tiles := ringedBoard(5, map[int]bool{0: true}, node(1, 2))
	m := New(tiles, []grid.Position{{X: 1, Y: 2}}, 5)
	m.Activate()

	res := m.Advance()
	assert.False(t, res.CrushedGoal)
	require.Equal(t, Active, m.Status())

	res = m.Advance()
	assert.True(t, res.CrushedGoal)
	assert.Equal(t, CrushedLoss, m.Status())

	// Terminal: further advances change nothing.
	offset := m.WallOffset
	res = m.Advance()
	assert.Equal(t, offset, res.WallOffset)
}

func TestAdvance_ShrinkScenario(t *testing.T) {
	// 5x5 with walls on rings 0 and 1 and a lone goal in the center.
	// One advance reaches wallOffset=1; ring 1 is entirely wall, so the
	// board compacts to 3x3, survivors shift by -2 on both axes, and
	// the offset resets.
	tiles := ringedBoard(5, map[int]bool{0: true, 1: true}, node(2, 2))
	m := New(tiles, []grid.Position{{X: 2, Y: 2}}, 5)
	m.Activate()

	res := m.Advance()
	require.True(t, res.DidShrink)
	assert.Equal(t, 3, res.GridSize)
	assert.Equal(t, 0, res.WallOffset)
	require.Equal(t, []grid.Position{{X: 0, Y: 0}}, res.Goals)

	var nodes, walls int
	for _, tile := range res.Tiles {
		switch tile.Kind {
		case grid.KindNode:
			nodes++
			assert.Equal(t, grid.Position{X: 0, Y: 0}, tile.Pos)
		case grid.KindWall:
			walls++
			assert.Equal(t, 0, RingDistance(tile.Pos, 3), "fresh border sits on the perimeter")
		}
	}
	assert.Equal(t, 1, nodes)
	assert.Equal(t, 7, walls, "perimeter minus the surviving corner")
}

func TestAdvance_NoShrinkWhileRingAlive(t *testing.T) {
	// A live path tile on ring 1 blocks compaction.
	tiles := ringedBoard(5, map[int]bool{0: true}, path(1, 2), node(2, 2))
	m := New(tiles, []grid.Position{{X: 2, Y: 2}}, 5)
	m.Activate()

	res := m.Advance()
	assert.False(t, res.DidShrink)
	assert.Equal(t, 1, res.WallOffset)
	assert.Equal(t, 5, res.GridSize)
}

func TestAdvance_ShrinkFiresAtMostOncePerCall(t *testing.T) {
	// After compacting, the fresh border is at distance 0; the machine
	// must not treat the new board as shrinkable within the same call.
	tiles := ringedBoard(5, map[int]bool{0: true, 1: true}, node(2, 2))
	m := New(tiles, []grid.Position{{X: 2, Y: 2}}, 5)
	m.Activate()

	res := m.Advance()
	require.True(t, res.DidShrink)
	assert.Equal(t, 3, res.GridSize, "exactly one compaction per advance")
}

func TestAdvance_ShrinkHaltsBelowMinSize(t *testing.T) {
	// A 3x3 can never compact further; crushing continues regardless.
	tiles := ringedBoard(3, map[int]bool{0: true}, node(1, 1))
	m := New(tiles, []grid.Position{{X: 1, Y: 1}}, 3)
	m.Activate()

	res := m.Advance()
	assert.False(t, res.DidShrink)
	assert.Equal(t, 3, res.GridSize)
	assert.Equal(t, 1, res.WallOffset)

	res = m.Advance()
	assert.False(t, res.DidShrink)
	assert.True(t, res.CrushedGoal, "crushing reaches the center even though shrinking halted")
}

func TestAdvance_CrushedRingStillCountsAsDead(t *testing.T) {
	// Ring 1 holds a path tile that gets crushed by an earlier advance;
	// once dead, it permits compaction on a later call.
	tiles := ringedBoard(7, map[int]bool{0: true, 1: true, 2: true}, node(3, 3))
	m := New(tiles, []grid.Position{{X: 3, Y: 3}}, 7)
	m.Activate()

	// offset 1: ring 1 all wall -> shrink with width 2: 7 -> 5.
	res := m.Advance()
	require.True(t, res.DidShrink)
	assert.Equal(t, 5, res.GridSize)
	assert.Equal(t, []grid.Position{{X: 1, Y: 1}}, res.Goals)
}
