package solver

import (
	"github.com/roach88/flowgrid/internal/connect"
	"github.com/roach88/flowgrid/internal/grid"
)

// solveHeuristic handles boards with too many rotatable tiles for exact
// search (state space 4^R). Stage one orients every tile greedily and
// independently; if the result is not globally connected, stage two
// runs bounded iterative deepening. Neither stage can prove
// unsolvability.
func solveHeuristic(tiles []grid.Tile, goals []grid.Position, budget int, cfg Config) (*grid.Solution, error) {
	if sol, ok := solveGreedy(tiles, goals, budget); ok {
		return sol, nil
	}
	return solveDeepening(tiles, goals, budget, cfg)
}

// solveGreedy orients each rotatable tile to the locally best-scoring
// rotation, then tests global connectivity once. Local score per open
// direction: +2 when the neighbor reciprocates the connection, +1 when
// a non-blocking neighbor is there but does not reciprocate, 0 toward
// walls and board edges. Ties keep the smallest rotation.
func solveGreedy(tiles []grid.Tile, goals []grid.Position, budget int) (*grid.Solution, bool) {
	idx := grid.IndexByPosition(tiles)

	work := grid.CloneTiles(tiles)
	var moves []grid.Move
	for i := range tiles {
		if !tiles[i].Rotatable {
			continue
		}
		bestR, bestScore := 0, scoreOrientation(tiles, idx, i, tiles[i].Conns)
		for r := 1; r <= 3; r++ {
			if s := scoreOrientation(tiles, idx, i, tiles[i].Conns.Rotate(r)); s > bestScore {
				bestR, bestScore = r, s
			}
		}
		if bestR > 0 {
			work[i].RotateSteps(bestR)
			moves = append(moves, grid.Move{Pos: tiles[i].Pos, Steps: bestR})
		}
	}

	sol := &grid.Solution{Moves: moves}
	if budget > 0 && sol.Cost() > budget {
		return nil, false
	}
	if !connect.IsConnected(work, goals) {
		return nil, false
	}
	return sol, true
}

func scoreOrientation(tiles []grid.Tile, idx map[grid.Position]int, i int, conns grid.ConnSet) int {
	score := 0
	for _, d := range grid.Directions {
		if !conns.Has(d) {
			continue
		}
		j, ok := idx[tiles[i].Pos.Step(d)]
		if !ok || tiles[j].Blocks() {
			continue
		}
		if tiles[j].Conns.Has(d.Opposite()) {
			score += 2
		} else {
			score++
		}
	}
	return score
}

// solveDeepening runs iterative-deepening DFS over rotatable tiles in
// slice order. At each tile "leave unrotated" is tried before r=1..3,
// biasing toward minimal-touch solutions; the deepening loop over the
// cost limit biases toward cheap ones. Depth counts taps, capped at
// min(budget, DepthCap).
func solveDeepening(tiles []grid.Tile, goals []grid.Position, budget int, cfg Config) (*grid.Solution, error) {
	depthCap := cfg.DepthCap
	if budget > 0 && budget < depthCap {
		depthCap = budget
	}

	work := grid.CloneTiles(tiles)
	order := rotatableIndexes(work)

	probes := 0
	capped := false
	var moves []grid.Move

	var dfs func(ti, remaining int) bool
	dfs = func(ti, remaining int) bool {
		if probes >= cfg.ExpansionCap {
			capped = true
			return false
		}
		probes++
		if connect.IsConnected(work, goals) {
			return true
		}
		if ti >= len(order) || remaining <= 0 {
			return false
		}

		if dfs(ti+1, remaining) {
			return true
		}

		// On success the work board is left as-is; only failed branches
		// unwind. The 4th step after a fully failed loop restores the
		// tile's start orientation.
		i := order[ti]
		for r := 1; r <= 3; r++ {
			work[i].RotateSteps(1)
			if capped || r > remaining {
				continue
			}
			moves = append(moves, grid.Move{Pos: work[i].Pos, Steps: r})
			if dfs(ti+1, remaining-r) {
				return true
			}
			moves = moves[:len(moves)-1]
		}
		work[i].RotateSteps(1)
		return false
	}

	for limit := 1; limit <= depthCap && !capped; limit++ {
		if dfs(0, limit) {
			out := make([]grid.Move, len(moves))
			copy(out, moves)
			return &grid.Solution{Moves: out}, nil
		}
	}

	return nil, &NoSolutionError{
		Reason:     ReasonHeuristicExhausted,
		Budget:     budget,
		Expansions: probes,
	}
}
