package solver

import (
	"container/heap"

	"github.com/roach88/flowgrid/internal/connect"
	"github.com/roach88/flowgrid/internal/grid"
)

// searchNode is one frontier entry: a full tile snapshot plus the move
// path that produced it.
type searchNode struct {
	tiles []grid.Tile
	moves []grid.Move
	cost  int
	seq   int64 // insertion order tie-break for deterministic pops
}

// frontier is a min-heap ordered by (cost, seq). Cost order is what
// makes the first goal pop minimal; seq order makes runs reproducible.
type frontier []*searchNode

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*searchNode)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return node
}

// solveExact runs Dijkstra-style best-first search over rotation
// configurations. Since every edge cost is positive and pops are
// cost-ordered, the first configuration that satisfies connectivity is
// reached at minimal total cost.
func solveExact(tiles []grid.Tile, goals []grid.Position, budget int, cfg Config) (*grid.Solution, error) {
	visited := make(map[string]struct{})
	var seq int64

	f := &frontier{}
	heap.Init(f)
	heap.Push(f, &searchNode{tiles: grid.CloneTiles(tiles)})

	expansions := 0
	for f.Len() > 0 {
		n := heap.Pop(f).(*searchNode)

		hash := grid.ConfigHash(n.tiles)
		if _, seen := visited[hash]; seen {
			continue
		}
		visited[hash] = struct{}{}

		if connect.IsConnected(n.tiles, goals) {
			return &grid.Solution{Moves: n.moves}, nil
		}

		expansions++
		if expansions >= cfg.ExpansionCap {
			// Pragmatic limit, not an unsolvability proof.
			return nil, &NoSolutionError{
				Reason:     ReasonExpansionCap,
				Budget:     budget,
				Expansions: expansions,
			}
		}

		// Each tile contributes at most one compound move per path; a
		// second rotation of the same tile is always expressible as a
		// single cheaper one.
		touched := make(map[grid.Position]struct{}, len(n.moves))
		for _, m := range n.moves {
			touched[m.Pos] = struct{}{}
		}

		for i := range n.tiles {
			if !n.tiles[i].Rotatable {
				continue
			}
			if _, done := touched[n.tiles[i].Pos]; done {
				continue
			}
			for r := 1; r <= 3; r++ {
				cost := n.cost + r
				if budget > 0 && cost > budget {
					break
				}
				child := grid.CloneTiles(n.tiles)
				child[i].RotateSteps(r)

				moves := make([]grid.Move, len(n.moves), len(n.moves)+1)
				copy(moves, n.moves)
				moves = append(moves, grid.Move{Pos: n.tiles[i].Pos, Steps: r})

				seq++
				heap.Push(f, &searchNode{tiles: child, moves: moves, cost: cost, seq: seq})
			}
		}
	}

	// Every configuration reachable within the budget was examined.
	return nil, &NoSolutionError{
		Reason:     ReasonProvenUnsolvable,
		Budget:     budget,
		Expansions: expansions,
	}
}
