package grid

import "time"

// Move is one compound rotation on one tile. Steps counts atomic 90°
// turns, so a Move costs 1-3; a 4th step would return the tile to its
// starting orientation and is never part of a minimal solution.
type Move struct {
	Pos   Position
	Steps int // 1..3
}

// Solution is an ordered move list. Replaying it from a level's original
// tiles makes the goal set connected.
type Solution struct {
	Moves []Move
}

// Cost returns the total tap count of the solution.
func (s *Solution) Cost() int {
	total := 0
	for _, m := range s.Moves {
		total += m.Steps
	}
	return total
}

// Clone returns an independent copy.
func (s *Solution) Clone() *Solution {
	if s == nil {
		return nil
	}
	moves := make([]Move, len(s.Moves))
	copy(moves, s.Moves)
	return &Solution{Moves: moves}
}

// Level is an immutable puzzle definition. It is built once (by hand or
// by the generator) and never mutated; play sessions work on tile copies
// (see CloneTiles).
type Level struct {
	ID   string
	Name string
	Tier int

	GridSize int
	Tiles    []Tile
	Goals    []Position

	// CompressionDelay is the interval between wall advances when the
	// active mode compresses. Zero disables compression.
	CompressionDelay time.Duration

	// MaxMoves is the tap budget. Zero means unlimited.
	MaxMoves int

	// Solution is the precomputed minimal solution, when known. Always
	// set on generated levels, optional on hand-authored ones.
	Solution *Solution

	// Generated marks generator provenance, as opposed to a
	// hand-authored catalog level.
	Generated bool
}

// TileAt returns the tile at p, or nil if no tile occupies p.
func (l *Level) TileAt(p Position) *Tile {
	for i := range l.Tiles {
		if l.Tiles[i].Pos == p {
			return &l.Tiles[i]
		}
	}
	return nil
}

// RotatableCount returns the number of rotatable tiles. The solver
// switches between its exact and heuristic paths on this count.
func (l *Level) RotatableCount() int {
	n := 0
	for i := range l.Tiles {
		if l.Tiles[i].Rotatable {
			n++
		}
	}
	return n
}
