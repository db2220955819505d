package solver

import (
	"github.com/roach88/flowgrid/internal/connect"
	"github.com/roach88/flowgrid/internal/grid"
)

// Solve finds a minimum-cost rotation sequence making the goal set
// connected. maxMoves is the tap budget; maxMoves <= 0 means unlimited.
// The input tiles are never mutated.
//
// An already-connected board returns an empty solution with cost 0.
// Failure returns a *NoSolutionError whose Reason says whether the
// verdict is a proof or a bounded search giving up.
func Solve(tiles []grid.Tile, goals []grid.Position, maxMoves int, opts ...Option) (*grid.Solution, error) {
	cfg := buildConfig(opts)

	if connect.IsConnected(tiles, goals) {
		return &grid.Solution{}, nil
	}

	rotatable := rotatableIndexes(tiles)
	if len(rotatable) == 0 {
		// Nothing can change, so the disconnect is permanent.
		return nil, &NoSolutionError{Reason: ReasonProvenUnsolvable, Budget: maxMoves}
	}

	if len(rotatable) <= cfg.ExactTileLimit {
		return solveExact(tiles, goals, maxMoves, cfg)
	}
	return solveHeuristic(tiles, goals, maxMoves, cfg)
}

// MinMoves returns the minimal tap count to connect the goals, solving
// under the given budget.
func MinMoves(tiles []grid.Tile, goals []grid.Position, maxMoves int, opts ...Option) (int, error) {
	sol, err := Solve(tiles, goals, maxMoves, opts...)
	if err != nil {
		return 0, err
	}
	return sol.Cost(), nil
}

// Hint returns the head of a minimal solution: the single next move a
// player should make. An already-connected board has no hint.
func Hint(tiles []grid.Tile, goals []grid.Position, maxMoves int, opts ...Option) (*grid.Move, error) {
	sol, err := Solve(tiles, goals, maxMoves, opts...)
	if err != nil {
		return nil, err
	}
	if len(sol.Moves) == 0 {
		return nil, nil
	}
	m := sol.Moves[0]
	return &m, nil
}

// Replay applies a solution to a copy of tiles and returns the result.
// Used by verification to confirm a solution actually connects.
func Replay(tiles []grid.Tile, sol *grid.Solution) []grid.Tile {
	out := grid.CloneTiles(tiles)
	idx := grid.IndexByPosition(out)
	for _, m := range sol.Moves {
		if i, ok := idx[m.Pos]; ok {
			out[i].RotateSteps(m.Steps)
		}
	}
	return out
}

func rotatableIndexes(tiles []grid.Tile) []int {
	var out []int
	for i := range tiles {
		if tiles[i].Rotatable {
			out = append(out, i)
		}
	}
	return out
}
