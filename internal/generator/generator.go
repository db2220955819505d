// Package generator produces guaranteed-solvable, never-pre-solved
// levels. Generation is rejection-sampled: up to maxAttempts randomized
// layouts are built and validated through the solver, and a
// deterministic fallback level makes Generate total - it never fails
// outwardly, whatever the options.
package generator

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/roach88/flowgrid/internal/connect"
	"github.com/roach88/flowgrid/internal/grid"
	"github.com/roach88/flowgrid/internal/solver"
)

// maxAttempts bounds the randomized phase before the deterministic
// fallback takes over.
const maxAttempts = 50

// Options selects what to generate. Zero values are normalized: grid
// size to 5, node count to 2, difficulty to Easy.
type Options struct {
	GridSize   int
	NodeCount  int
	Difficulty Difficulty

	// DecoyOverride replaces the difficulty's decoy count when set.
	DecoyOverride *int
}

func (o Options) normalized() Options {
	if o.GridSize < 5 {
		o.GridSize = 5
	}
	if o.NodeCount < 2 {
		o.NodeCount = 2
	}
	if _, ok := profiles[o.Difficulty]; !ok {
		o.Difficulty = Easy
	}
	return o
}

// Generator builds levels from an injected random source. Tests pass a
// seeded source; production seeds from crypto/rand (internal/random).
type Generator struct {
	rng        *rand.Rand
	log        *slog.Logger
	solverOpts []solver.Option
}

// New creates a generator. A nil logger falls back to slog.Default().
func New(rng *rand.Rand, log *slog.Logger, solverOpts ...solver.Option) *Generator {
	if log == nil {
		log = slog.Default()
	}
	return &Generator{rng: rng, log: log, solverOpts: solverOpts}
}

// Generate returns a solvable, not-pre-solved level. Rejected attempts
// retry silently; after maxAttempts the deterministic fallback is
// returned, so the result is always valid.
func (g *Generator) Generate(opts Options) *grid.Level {
	opts = opts.normalized()
	prof := profiles[opts.Difficulty]

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lvl, reason := g.attempt(opts, prof)
		if lvl != nil {
			g.log.Debug("level generated",
				"attempt", attempt, "size", opts.GridSize, "moves", lvl.MaxMoves)
			return lvl
		}
		g.log.Debug("generation attempt rejected", "attempt", attempt, "reason", reason)
	}

	g.log.Warn("generation exhausted attempts, using fallback",
		"size", opts.GridSize, "difficulty", opts.Difficulty)
	return g.fallback(opts, prof)
}

// attempt builds and validates one candidate. A nil level carries a
// rejection reason for debug logs.
func (g *Generator) attempt(opts Options, prof profile) (*grid.Level, string) {
	goals := g.placeGoals(opts.GridSize, opts.NodeCount)
	if goals == nil {
		return nil, "placement exhausted"
	}

	reqs := routeGoals(goals)

	goalSet := make(map[grid.Position]bool, len(goals))
	for _, p := range goals {
		goalSet[p] = true
	}

	tiles := borderWalls(opts.GridSize)
	for i, p := range goals {
		tiles = append(tiles, grid.Tile{
			ID:    fmt.Sprintf("node-%d", i),
			Kind:  grid.KindNode,
			Pos:   p,
			Conns: reqs[p],
			Goal:  true,
		})
	}

	routed := 0
	used := make(map[grid.Position]bool, len(reqs))
	for p := range reqs {
		used[p] = true
	}
	for _, p := range sortedPositions(reqs) {
		if goalSet[p] {
			continue
		}
		base, ok := shapeFor(reqs[p])
		if !ok {
			return nil, "unroutable cell requirement"
		}
		routed++
		tiles = append(tiles, grid.Tile{
			ID:        fmt.Sprintf("pipe-%d-%d", p.X, p.Y),
			Kind:      grid.KindPath,
			Pos:       p,
			Conns:     base.Rotate(g.rng.Intn(3) + 1), // scramble off the solved orientation
			Rotatable: true,
		})
	}

	if connect.IsConnected(tiles, goals) {
		return nil, "pre-solved"
	}

	budget := 3*routed + prof.movePadding
	sol, err := solver.Solve(tiles, goals, budget, g.solverOpts...)
	if err != nil {
		return nil, "unsolvable within budget"
	}
	if sol.Cost() == 0 {
		return nil, "zero-cost solution"
	}

	tiles = g.scatterDecoys(tiles, opts, used)
	// Decoys land with random orientations next to scrambled route
	// pipes; an unlucky chain can reciprocate openings and join the
	// goals on its own, so the not-pre-solved check must run again on
	// the final tile set.
	if connect.IsConnected(tiles, goals) {
		return nil, "decoys completed a connection"
	}
	tiles = fillEmpty(tiles, opts.GridSize)

	return &grid.Level{
		ID:               uuid.NewString(),
		Name:             fmt.Sprintf("Generated %dx%d %s", opts.GridSize, opts.GridSize, opts.Difficulty),
		Tier:             prof.tier,
		GridSize:         opts.GridSize,
		Tiles:            tiles,
		Goals:            goals,
		CompressionDelay: prof.compressionDelay,
		MaxMoves:         sol.Cost() + prof.movePadding,
		Solution:         sol,
		Generated:        true,
	}, ""
}

// placeGoals samples interior cells, greedily accepting positions with
// pairwise Manhattan separation of at least 2 from a shuffled candidate
// list. Returns nil when the grid cannot host the requested count.
func (g *Generator) placeGoals(gridSize, nodeCount int) []grid.Position {
	var candidates []grid.Position
	for x := 1; x < gridSize-1; x++ {
		for y := 1; y < gridSize-1; y++ {
			candidates = append(candidates, grid.Position{X: x, Y: y})
		}
	}
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	var goals []grid.Position
	for _, c := range candidates {
		ok := true
		for _, chosen := range goals {
			if c.ManhattanDistance(chosen) < 2 {
				ok = false
				break
			}
		}
		if ok {
			goals = append(goals, c)
			if len(goals) == nodeCount {
				return goals
			}
		}
	}
	return nil
}

// scatterDecoys places extra rotatable tiles on unused interior cells.
// Decoys never land on a routed cell, so no solution can require one.
func (g *Generator) scatterDecoys(tiles []grid.Tile, opts Options, used map[grid.Position]bool) []grid.Tile {
	count := profiles[opts.Difficulty].decoys
	if opts.DecoyOverride != nil {
		count = *opts.DecoyOverride
	}
	if count <= 0 {
		return tiles
	}

	var free []grid.Position
	for x := 1; x < opts.GridSize-1; x++ {
		for y := 1; y < opts.GridSize-1; y++ {
			p := grid.Position{X: x, Y: y}
			if !used[p] {
				free = append(free, p)
			}
		}
	}
	g.rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	bases := []grid.ConnSet{
		grid.Conns(grid.Up, grid.Down),  // straight
		grid.Conns(grid.Up, grid.Right), // corner
	}
	for i := 0; i < count && i < len(free); i++ {
		p := free[i]
		conns := bases[g.rng.Intn(len(bases))].Rotate(g.rng.Intn(4))
		tiles = append(tiles, grid.Tile{
			ID:        fmt.Sprintf("decoy-%d-%d", p.X, p.Y),
			Kind:      grid.KindPath,
			Pos:       p,
			Conns:     conns,
			Rotatable: true,
		})
	}
	return tiles
}

// fallback synthesizes the minimal deterministic two-node single-pipe
// level: goals flanking one vertical straight, solvable in one tap. An
// explicit pre-solved check corrects the pipe if an edit ever makes the
// start orientation connecting.
func (g *Generator) fallback(opts Options, prof profile) *grid.Level {
	mid := opts.GridSize / 2
	goals := []grid.Position{{X: 1, Y: mid}, {X: 3, Y: mid}}
	pipePos := grid.Position{X: 2, Y: mid}

	tiles := borderWalls(opts.GridSize)
	tiles = append(tiles,
		grid.Tile{ID: "node-0", Kind: grid.KindNode, Pos: goals[0], Conns: grid.Conns(grid.Right), Goal: true},
		grid.Tile{ID: "pipe-2", Kind: grid.KindPath, Pos: pipePos, Conns: grid.Conns(grid.Up, grid.Down), Rotatable: true},
		grid.Tile{ID: "node-1", Kind: grid.KindNode, Pos: goals[1], Conns: grid.Conns(grid.Left), Goal: true},
	)
	if connect.IsConnected(tiles, goals) {
		for i := range tiles {
			if tiles[i].Pos == pipePos {
				tiles[i].RotateSteps(1)
			}
		}
	}
	tiles = fillEmpty(tiles, opts.GridSize)

	return &grid.Level{
		ID:               uuid.NewString(),
		Name:             "Fallback",
		Tier:             prof.tier,
		GridSize:         opts.GridSize,
		Tiles:            tiles,
		Goals:            goals,
		CompressionDelay: prof.compressionDelay,
		MaxMoves:         1 + prof.movePadding,
		Solution:         &grid.Solution{Moves: []grid.Move{{Pos: pipePos, Steps: 1}}},
		Generated:        true,
	}
}

// shapeFor maps a cell's accumulated route requirement to the canonical
// shape that satisfies it at some rotation. Requirements come from
// overlapping L-segments, so 2 through 4 openings are all reachable;
// shapes never cross classes when later scrambled or solved.
func shapeFor(req grid.ConnSet) (grid.ConnSet, bool) {
	if req.Count() < 2 {
		return 0, false
	}
	return req, true
}

func borderWalls(gridSize int) []grid.Tile {
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
	return tiles
}

// fillEmpty pads every unoccupied interior cell with an empty tile so
// the hazard machine sees complete rings.
func fillEmpty(tiles []grid.Tile, gridSize int) []grid.Tile {
	occupied := make(map[grid.Position]bool, len(tiles))
	for i := range tiles {
		occupied[tiles[i].Pos] = true
	}
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
