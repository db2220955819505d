package game

import (
	"fmt"
	"time"

	"github.com/roach88/flowgrid/internal/grid"
)

// Catalog returns the hand-authored levels, in play order. Each call
// builds fresh values; levels are treated as immutable by everything
// downstream, but callers get their own copies regardless.
func Catalog() []*grid.Level {
	return []*grid.Level{levelFirst(), levelElbow(), levelTriad()}
}

// levelFirst is the opening puzzle: two nodes flanking one straight
// pipe that starts vertical. One tap solves it.
func levelFirst() *grid.Level {
	tiles := authoredTiles(5, []grid.Tile{
		{ID: "node-0", Kind: grid.KindNode, Pos: grid.Position{X: 1, Y: 2}, Conns: grid.Conns(grid.Right), Goal: true},
		{ID: "pipe-0", Kind: grid.KindPath, Pos: grid.Position{X: 2, Y: 2}, Conns: grid.Conns(grid.Up, grid.Down), Rotatable: true},
		{ID: "node-1", Kind: grid.KindNode, Pos: grid.Position{X: 3, Y: 2}, Conns: grid.Conns(grid.Left), Goal: true},
	})
	return &grid.Level{
		ID:               grid.LevelID("First", 5, tiles),
		Name:             "First",
		Tier:             1,
		GridSize:         5,
		Tiles:            tiles,
		Goals:            []grid.Position{{X: 1, Y: 2}, {X: 3, Y: 2}},
		CompressionDelay: 12 * time.Second,
		MaxMoves:         3,
	}
}

// levelElbow bends the flow around a corner: a corner pipe two turns
// off and a straight one turn off, minimal cost 3.
func levelElbow() *grid.Level {
	tiles := authoredTiles(5, []grid.Tile{
		{ID: "node-0", Kind: grid.KindNode, Pos: grid.Position{X: 1, Y: 1}, Conns: grid.Conns(grid.Right), Goal: true},
		{ID: "pipe-0", Kind: grid.KindPath, Pos: grid.Position{X: 2, Y: 1}, Conns: grid.Conns(grid.Down, grid.Left).Rotate(2), Rotatable: true},
		{ID: "pipe-1", Kind: grid.KindPath, Pos: grid.Position{X: 2, Y: 2}, Conns: grid.Conns(grid.Up, grid.Down).Rotate(1), Rotatable: true},
		{ID: "node-1", Kind: grid.KindNode, Pos: grid.Position{X: 2, Y: 3}, Conns: grid.Conns(grid.Up), Goal: true},
	})
	return &grid.Level{
		ID:               grid.LevelID("Elbow", 5, tiles),
		Name:             "Elbow",
		Tier:             1,
		GridSize:         5,
		Tiles:            tiles,
		Goals:            []grid.Position{{X: 1, Y: 1}, {X: 2, Y: 3}},
		CompressionDelay: 10 * time.Second,
		MaxMoves:         6,
	}
}

// levelTriad joins three nodes through a tee, minimal cost 5.
func levelTriad() *grid.Level {
	tiles := authoredTiles(7, []grid.Tile{
		{ID: "node-0", Kind: grid.KindNode, Pos: grid.Position{X: 1, Y: 3}, Conns: grid.Conns(grid.Right), Goal: true},
		{ID: "node-1", Kind: grid.KindNode, Pos: grid.Position{X: 5, Y: 3}, Conns: grid.Conns(grid.Left), Goal: true},
		{ID: "node-2", Kind: grid.KindNode, Pos: grid.Position{X: 3, Y: 1}, Conns: grid.Conns(grid.Down), Goal: true},
		{ID: "pipe-0", Kind: grid.KindPath, Pos: grid.Position{X: 2, Y: 3}, Conns: grid.Conns(grid.Left, grid.Right).Rotate(1), Rotatable: true},
		{ID: "pipe-1", Kind: grid.KindPath, Pos: grid.Position{X: 4, Y: 3}, Conns: grid.Conns(grid.Left, grid.Right).Rotate(1), Rotatable: true},
		{ID: "pipe-2", Kind: grid.KindPath, Pos: grid.Position{X: 3, Y: 2}, Conns: grid.Conns(grid.Up, grid.Down).Rotate(1), Rotatable: true},
		{ID: "pipe-3", Kind: grid.KindPath, Pos: grid.Position{X: 3, Y: 3}, Conns: grid.Conns(grid.Left, grid.Right, grid.Up).Rotate(2), Rotatable: true},
	})
	return &grid.Level{
		ID:               grid.LevelID("Triad", 7, tiles),
		Name:             "Triad",
		Tier:             2,
		GridSize:         7,
		Tiles:            tiles,
		Goals:            []grid.Position{{X: 1, Y: 3}, {X: 5, Y: 3}, {X: 3, Y: 1}},
		CompressionDelay: 8 * time.Second,
		MaxMoves:         8,
	}
}

// authoredTiles assembles a full board: border walls, the given feature
// tiles, and empty padding for every remaining interior cell.
func authoredTiles(gridSize int, features []grid.Tile) []grid.Tile {
	occupied := make(map[grid.Position]bool, len(features))
	for i := range features {
		occupied[features[i].Pos] = true
	}

	var tiles []grid.Tile
	for x := 0; x < gridSize; x++ {
		for y := 0; y < gridSize; y++ {
			if x == 0 || y == 0 || x == gridSize-1 || y == gridSize-1 {
				tiles = append(tiles, grid.Tile{
					ID:   fmt.Sprintf("wall-%d-%d", x, y),
					Kind: grid.KindWall,
					Pos:  grid.Position{X: x, Y: y},
				})
			}
		}
	}
	tiles = append(tiles, features...)
	for x := 1; x < gridSize-1; x++ {
		for y := 1; y < gridSize-1; y++ {
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
	return tiles
}
