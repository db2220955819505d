package generator

import (
	"sort"

	"github.com/roach88/flowgrid/internal/grid"
)

// routeGoals connects consecutive goals with axis-aligned L-routes and
// accumulates, per visited cell, the union of directions required by
// every segment through it. Overlapping segments merge requirements, so
// a cell crossed twice may need 3 or 4 openings.
func routeGoals(goals []grid.Position) map[grid.Position]grid.ConnSet {
	reqs := make(map[grid.Position]grid.ConnSet)
	for i := 0; i+1 < len(goals); i++ {
		cells := lRoute(goals[i], goals[i+1])
		for j := 0; j+1 < len(cells); j++ {
			d := directionBetween(cells[j], cells[j+1])
			reqs[cells[j]] |= grid.Conns(d)
			reqs[cells[j+1]] |= grid.Conns(d.Opposite())
		}
	}
	return reqs
}

// lRoute walks from a to b horizontally first, then vertically,
// returning every visited cell including both endpoints.
func lRoute(a, b grid.Position) []grid.Position {
	cells := []grid.Position{a}
	cur := a
	for cur.X != b.X {
		cur.X += sign(b.X - cur.X)
		cells = append(cells, cur)
	}
	for cur.Y != b.Y {
		cur.Y += sign(b.Y - cur.Y)
		cells = append(cells, cur)
	}
	return cells
}

// directionBetween maps two adjacent cells to the direction from a
// toward b.
func directionBetween(a, b grid.Position) grid.Direction {
	switch {
	case b.X > a.X:
		return grid.Right
	case b.X < a.X:
		return grid.Left
	case b.Y > a.Y:
		return grid.Down
	default:
		return grid.Up
	}
}

// sortedPositions returns the requirement map's keys in row-major
// order, keeping tile construction deterministic for a given seed.
func sortedPositions(reqs map[grid.Position]grid.ConnSet) []grid.Position {
	out := make([]grid.Position, 0, len(reqs))
	for p := range reqs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	if n > 0 {
		return 1
	}
	return 0
}
