package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/flowgrid/internal/grid"
)

func TestForID(t *testing.T) {
	for _, id := range []ID{Classic, Compression, Zen} {
		p, err := ForID(id)
		require.NoError(t, err)
		assert.Equal(t, id, p.ID())
	}

	_, err := ForID("speedrun")
	assert.Error(t, err)
}

func TestAll_ClosedEnumeration(t *testing.T) {
	ids := map[ID]bool{}
	for _, p := range All() {
		ids[p.ID()] = true
	}
	assert.Equal(t, map[ID]bool{Classic: true, Compression: true, Zen: true}, ids)
}

func TestOnTap_RotatesOneStep(t *testing.T) {
	for _, p := range All() {
		tiles := []grid.Tile{
			{Kind: grid.KindPath, Pos: grid.Position{X: 1, Y: 1}, Conns: grid.Conns(grid.Up, grid.Down), Rotatable: true},
		}
		rotated, counted := p.OnTap(tiles, grid.Position{X: 1, Y: 1})
		assert.True(t, rotated, "%s", p.ID())
		assert.True(t, counted, "%s", p.ID())
		assert.Equal(t, grid.Conns(grid.Left, grid.Right), tiles[0].Conns)
	}
}

func TestOnTap_IgnoresFixedTiles(t *testing.T) {
	p, _ := ForID(Classic)
	tiles := []grid.Tile{{Kind: grid.KindWall, Pos: grid.Position{X: 0, Y: 0}}}

	rotated, counted := p.OnTap(tiles, grid.Position{X: 0, Y: 0})
	assert.False(t, rotated)
	assert.False(t, counted)

	rotated, _ = p.OnTap(tiles, grid.Position{X: 9, Y: 9})
	assert.False(t, rotated, "tap outside the board")
}

func TestCheckLoss(t *testing.T) {
	classic, _ := ForID(Classic)
	compression, _ := ForID(Compression)
	zen, _ := ForID(Zen)

	assert.Equal(t, LossOutOfMoves, classic.CheckLoss(10, 10, false))
	assert.Equal(t, LossNone, classic.CheckLoss(9, 10, false))
	assert.Equal(t, LossNone, classic.CheckLoss(100, 0, false), "zero budget means unlimited")
	assert.Equal(t, LossNone, classic.CheckLoss(5, 10, true), "classic ignores crush signals")

	assert.Equal(t, LossGoalCrushed, compression.CheckLoss(0, 0, true))
	assert.Equal(t, LossNone, compression.CheckLoss(1000, 10, false))

	assert.Equal(t, LossNone, zen.CheckLoss(1000, 10, true))
}

func TestCapabilities(t *testing.T) {
	classic, _ := ForID(Classic)
	assert.True(t, classic.UsesMoveLimit())
	assert.True(t, classic.SupportsUndo())
	assert.Equal(t, CompressionOff, classic.WallCompression())

	compression, _ := ForID(Compression)
	assert.False(t, compression.UsesMoveLimit())
	assert.False(t, compression.SupportsUndo())
	assert.Equal(t, CompressionAdvancing, compression.WallCompression())

	zen, _ := ForID(Zen)
	assert.False(t, zen.UsesMoveLimit())
	assert.True(t, zen.SupportsUndo())
	assert.Equal(t, CompressionOff, zen.WallCompression())
}

func TestCheckWin(t *testing.T) {
	p, _ := ForID(Classic)
	tiles := []grid.Tile{
		{Kind: grid.KindNode, Pos: grid.Position{X: 0, Y: 0}, Conns: grid.Conns(grid.Right), Goal: true},
		{Kind: grid.KindNode, Pos: grid.Position{X: 1, Y: 0}, Conns: grid.Conns(grid.Left), Goal: true},
	}
	goals := []grid.Position{{X: 0, Y: 0}, {X: 1, Y: 0}}

	assert.True(t, p.CheckWin(tiles, goals))

	tiles[1].Conns = grid.Conns(grid.Right)
	assert.False(t, p.CheckWin(tiles, goals))
}
