// Package connect is the connectivity oracle: a pure breadth-first
// traversal over a tile snapshot deciding whether every goal node has
// joined one pipe network. It is called after every tap and on every
// node expansion inside the solver, so the whole check stays linear in
// tile count and the position index is built once per call.
package connect

import "github.com/roach88/flowgrid/internal/grid"

// IsConnected reports whether all goal positions are mutually reachable
// through reciprocal pipe connections. Fewer than two goals are
// trivially connected.
func IsConnected(tiles []grid.Tile, goals []grid.Position) bool {
	if len(goals) < 2 {
		return true
	}

	visited := traverse(tiles, goals[0])
	for _, g := range goals {
		if _, ok := visited[g]; !ok {
			return false
		}
	}
	return true
}

// ConnectedTiles returns every position reachable from the goal network.
// Callers use it to highlight the live network; a board with no goals
// yields an empty set.
func ConnectedTiles(tiles []grid.Tile, goals []grid.Position) map[grid.Position]struct{} {
	if len(goals) == 0 {
		return map[grid.Position]struct{}{}
	}
	return traverse(tiles, goals[0])
}

// traverse runs BFS from start. Tiles p and p+d are adjacent iff neither
// blocks, p opens toward d, and p+d opens back with the opposite
// direction. A one-sided opening never forms a link.
func traverse(tiles []grid.Tile, start grid.Position) map[grid.Position]struct{} {
	idx := grid.IndexByPosition(tiles)

	visited := make(map[grid.Position]struct{}, len(tiles))
	queue := make([]grid.Position, 0, len(tiles))

	if i, ok := idx[start]; !ok || tiles[i].Blocks() {
		return visited
	}
	visited[start] = struct{}{}
	queue = append(queue, start)

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		cur := &tiles[idx[pos]]

		for _, d := range grid.Directions {
			if !cur.Conns.Has(d) {
				continue
			}
			next := pos.Step(d)
			if _, seen := visited[next]; seen {
				continue
			}
			j, ok := idx[next]
			if !ok {
				continue
			}
			nb := &tiles[j]
			if nb.Blocks() || !nb.Conns.Has(d.Opposite()) {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}

	return visited
}
