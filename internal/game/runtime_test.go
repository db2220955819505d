package game

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/flowgrid/internal/grid"
	"github.com/roach88/flowgrid/internal/mode"
)

func mustMode(t *testing.T, id mode.ID) mode.Policy {
	t.Helper()
	p, err := mode.ForID(id)
	require.NoError(t, err)
	return p
}

func TestRuntime_TapToWin(t *testing.T) {
	r := NewRuntimeState(levelFirst(), mustMode(t, mode.Classic))

	require.Equal(t, StatusPlaying, r.Status())
	require.True(t, r.Tap(grid.Position{X: 2, Y: 2}))

	assert.Equal(t, StatusWon, r.Status())
	assert.Equal(t, 1, r.Moves())
}

func TestRuntime_TapOnFixedTile(t *testing.T) {
	r := NewRuntimeState(levelFirst(), mustMode(t, mode.Classic))

	assert.False(t, r.Tap(grid.Position{X: 0, Y: 0}), "wall")
	assert.False(t, r.Tap(grid.Position{X: 1, Y: 2}), "goal node is fixed")
	assert.Equal(t, 0, r.Moves())
}

func TestRuntime_TapAfterWinIgnored(t *testing.T) {
	r := NewRuntimeState(levelFirst(), mustMode(t, mode.Classic))
	require.True(t, r.Tap(grid.Position{X: 2, Y: 2}))
	require.Equal(t, StatusWon, r.Status())

	assert.False(t, r.Tap(grid.Position{X: 2, Y: 2}))
	assert.Equal(t, 1, r.Moves())
}

func TestRuntime_OutOfMovesLoss(t *testing.T) {
	r := NewRuntimeState(levelElbow(), mustMode(t, mode.Classic))

	// Burn the whole 6-move budget on the straight pipe; four taps
	// bring it back to its start orientation, so no win can land.
	for i := 0; i < 6; i++ {
		require.True(t, r.Tap(grid.Position{X: 2, Y: 2}), "tap %d", i)
	}

	assert.Equal(t, StatusLost, r.Status())
	assert.Equal(t, mode.LossOutOfMoves, r.LossReason())
}

func TestRuntime_UndoRevertsTapAndMove(t *testing.T) {
	r := NewRuntimeState(levelElbow(), mustMode(t, mode.Classic))
	before := grid.CloneTiles(r.Tiles())

	require.True(t, r.Tap(grid.Position{X: 2, Y: 2}))
	require.Equal(t, 1, r.Moves())

	require.True(t, r.Undo())
	assert.Equal(t, 0, r.Moves())
	assert.Equal(t, before, r.Tiles())

	assert.False(t, r.Undo(), "empty history")
}

func TestRuntime_UndoRespectsMode(t *testing.T) {
	r := NewRuntimeState(levelFirst(), mustMode(t, mode.Compression))
	require.True(t, r.Tap(grid.Position{X: 2, Y: 2}))

	// Compression mode forbids undo; the tap above also won, and a won
	// session cannot be rewound either.
	assert.False(t, r.Undo())
}

func TestRuntime_Restart(t *testing.T) {
	r := NewRuntimeState(levelFirst(), mustMode(t, mode.Classic))
	require.True(t, r.Tap(grid.Position{X: 2, Y: 2}))
	require.Equal(t, StatusWon, r.Status())

	r.Restart()
	assert.Equal(t, StatusPlaying, r.Status())
	assert.Equal(t, 0, r.Moves())
	assert.Equal(t, 0, r.WallOffset())
}

func TestRuntime_AdvanceWallsIdleInClassic(t *testing.T) {
	r := NewRuntimeState(levelFirst(), mustMode(t, mode.Classic))

	res := r.AdvanceWalls()
	assert.Equal(t, 0, res.WallOffset, "classic mode never compresses")
	assert.Equal(t, StatusPlaying, r.Status())
}

func TestRuntime_CompressionCrushLoss(t *testing.T) {
	r := NewRuntimeState(levelFirst(), mustMode(t, mode.Compression))

	// Nodes sit at ring distance 1 and 2: the second advance reaches
	// the nearer goal.
	res := r.AdvanceWalls()
	require.Equal(t, 1, res.WallOffset)
	require.Equal(t, StatusPlaying, r.Status())

	res = r.AdvanceWalls()
	assert.True(t, res.CrushedGoal)
	assert.Equal(t, StatusLost, r.Status())
	assert.Equal(t, mode.LossGoalCrushed, r.LossReason())
}

// levelDoubleWall is a 7x7 board whose outer two rings are all wall, so
// the first advance crushes ring 0, finds ring 1 already dead, and
// compacts the board within the same call.
func levelDoubleWall() *grid.Level {
	features := []grid.Tile{
		{ID: "node-0", Kind: grid.KindNode, Pos: grid.Position{X: 2, Y: 3}, Conns: grid.Conns(grid.Right), Goal: true},
		{ID: "pipe-0", Kind: grid.KindPath, Pos: grid.Position{X: 3, Y: 3}, Conns: grid.Conns(grid.Up, grid.Right), Rotatable: true},
		{ID: "node-1", Kind: grid.KindNode, Pos: grid.Position{X: 4, Y: 3}, Conns: grid.Conns(grid.Left), Goal: true},
	}
	occupied := make(map[grid.Position]bool, len(features))
	for i := range features {
		occupied[features[i].Pos] = true
	}

	var tiles []grid.Tile
	for x := 0; x < 7; x++ {
		for y := 0; y < 7; y++ {
			if x >= 2 && x <= 4 && y >= 2 && y <= 4 {
				continue
			}
			tiles = append(tiles, grid.Tile{
				ID:   fmt.Sprintf("wall-%d-%d", x, y),
				Kind: grid.KindWall,
				Pos:  grid.Position{X: x, Y: y},
			})
		}
	}
	tiles = append(tiles, features...)
	for x := 2; x <= 4; x++ {
		for y := 2; y <= 4; y++ {
			p := grid.Position{X: x, Y: y}
			if !occupied[p] {
				tiles = append(tiles, grid.Tile{
					ID:   fmt.Sprintf("empty-%d-%d", x, y),
					Kind: grid.KindEmpty,
					Pos:  p,
				})
			}
		}
	}
	return &grid.Level{
		ID:               grid.LevelID("DoubleWall", 7, tiles),
		Name:             "DoubleWall",
		Tier:             1,
		GridSize:         7,
		Tiles:            tiles,
		Goals:            []grid.Position{{X: 2, Y: 3}, {X: 4, Y: 3}},
		CompressionDelay: time.Second,
		MaxMoves:         10,
	}
}

func TestRuntime_ShrinkClearsUndoHistory(t *testing.T) {
	r := NewRuntimeState(levelDoubleWall(), mustMode(t, mode.Compression))

	// A corner pipe can never bridge Left and Right at once, so the tap
	// rotates without winning and lands in the history.
	require.True(t, r.Tap(grid.Position{X: 3, Y: 3}))
	require.Len(t, r.undo, 1)

	res := r.AdvanceWalls()
	require.True(t, res.DidShrink)
	assert.Equal(t, 5, r.GridSize())
	assert.Empty(t, r.undo, "recorded positions predate the renumbering")
	assert.Equal(t, 1, r.Moves(), "history reset does not refund moves")
}

func TestRuntime_Hint(t *testing.T) {
	r := NewRuntimeState(levelFirst(), mustMode(t, mode.Classic))

	hint, err := r.Hint()
	require.NoError(t, err)
	require.NotNil(t, hint)
	assert.Equal(t, grid.Position{X: 2, Y: 2}, hint.Pos)
	assert.Equal(t, 1, hint.Steps)
}

func TestRuntime_ZenNeverLoses(t *testing.T) {
	r := NewRuntimeState(levelFirst(), mustMode(t, mode.Zen))

	for i := 0; i < 20; i++ {
		if r.Status() != StatusPlaying {
			break
		}
		r.Tap(grid.Position{X: 2, Y: 2})
	}
	assert.NotEqual(t, StatusLost, r.Status())
}

func TestRotateTap(t *testing.T) {
	lvl := levelFirst()

	rotated := RotateTap(grid.Position{X: 2, Y: 2}, lvl.Tiles)
	require.NotNil(t, rotated)
	assert.Equal(t, grid.Conns(grid.Left, grid.Right), rotated[grid.IndexByPosition(rotated)[grid.Position{X: 2, Y: 2}]].Conns)

	// The source tiles stay untouched.
	assert.Equal(t, grid.Conns(grid.Up, grid.Down), lvl.Tiles[grid.IndexByPosition(lvl.Tiles)[grid.Position{X: 2, Y: 2}]].Conns)

	assert.Nil(t, RotateTap(grid.Position{X: 0, Y: 0}, lvl.Tiles), "wall is not rotatable")
	assert.Nil(t, RotateTap(grid.Position{X: 9, Y: 9}, lvl.Tiles), "no tile at position")
}
