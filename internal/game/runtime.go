// Package game owns the mutable side of a play session: the runtime
// state mutated by taps, undo and wall advances, and the level service
// that fronts the catalog with a memoized solution cache.
//
// The package is single-threaded by design. Every method assumes one
// caller at a time over one RuntimeState; timers that drive wall
// advances live with the caller, which invokes AdvanceWalls from
// whatever loop owns the session.
package game

import (
	"github.com/roach88/flowgrid/internal/grid"
	"github.com/roach88/flowgrid/internal/hazard"
	"github.com/roach88/flowgrid/internal/mode"
	"github.com/roach88/flowgrid/internal/solver"
)

// Status is the session state.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	}
	return "unknown"
}

// RuntimeState is one play session over a Level. It holds a deep copy
// of the level's tiles; the Level itself is never touched.
type RuntimeState struct {
	level  *grid.Level
	policy mode.Policy

	tiles  []grid.Tile
	goals  []grid.Position
	moves  int
	undo   []grid.Position // tap history, newest last
	status Status
	loss   mode.LossReason

	haz *hazard.Machine
}

// NewRuntimeState starts a session for level under policy.
func NewRuntimeState(level *grid.Level, policy mode.Policy) *RuntimeState {
	r := &RuntimeState{level: level, policy: policy}
	r.reset()
	return r
}

func (r *RuntimeState) reset() {
	r.tiles = grid.CloneTiles(r.level.Tiles)
	r.goals = append([]grid.Position(nil), r.level.Goals...)
	r.moves = 0
	r.undo = nil
	r.status = StatusPlaying
	r.loss = mode.LossNone

	r.haz = hazard.New(r.tiles, r.goals, r.level.GridSize)
	if r.policy.WallCompression() == mode.CompressionAdvancing {
		r.haz.Activate()
	}
}

// Tap applies one tap at pos. Reports whether a tile rotated; taps on
// walls, crushed cells or fixed pipes do nothing. A finished session
// ignores taps.
func (r *RuntimeState) Tap(pos grid.Position) bool {
	if r.status != StatusPlaying {
		return false
	}

	rotated, counted := r.policy.OnTap(r.tiles, pos)
	if !rotated {
		return false
	}
	if counted {
		r.moves++
		r.undo = append(r.undo, pos)
	}

	if r.policy.CheckWin(r.tiles, r.goals) {
		r.status = StatusWon
		return true
	}
	if reason := r.policy.CheckLoss(r.moves, r.maxMoves(), false); reason != mode.LossNone {
		r.status = StatusLost
		r.loss = reason
	}
	return true
}

// Undo reverts the most recent counted tap. Returns false when the mode
// forbids undo, nothing is left to revert, or the tapped tile has since
// stopped being rotatable (crushed).
func (r *RuntimeState) Undo() bool {
	if !r.policy.SupportsUndo() || len(r.undo) == 0 || r.status != StatusPlaying {
		return false
	}

	pos := r.undo[len(r.undo)-1]
	for i := range r.tiles {
		if r.tiles[i].Pos != pos {
			continue
		}
		if !r.tiles[i].RotateSteps(3) { // three forward steps = one back
			return false
		}
		r.undo = r.undo[:len(r.undo)-1]
		r.moves--
		return true
	}
	return false
}

// AdvanceWalls runs one hazard step. The caller's timer decides when.
func (r *RuntimeState) AdvanceWalls() hazard.Result {
	if r.status != StatusPlaying {
		return hazard.Result{Tiles: r.tiles, Goals: r.goals, GridSize: r.GridSize(), WallOffset: r.WallOffset()}
	}

	res := r.haz.Advance()
	// The machine owns the authoritative tile slice; shrinking swaps it
	// out entirely.
	r.tiles = res.Tiles
	r.goals = res.Goals
	if res.DidShrink {
		// A shrink renumbers every surviving position; the recorded tap
		// positions no longer name the tiles that were tapped.
		r.undo = nil
	}

	if reason := r.policy.CheckLoss(r.moves, r.maxMoves(), res.CrushedGoal); reason != mode.LossNone {
		r.status = StatusLost
		r.loss = reason
	}
	return res
}

// Hint solves the current snapshot and returns the next move, nil when
// the board is already connected.
func (r *RuntimeState) Hint(opts ...solver.Option) (*grid.Move, error) {
	return solver.Hint(r.tiles, r.goals, r.remainingBudget(), opts...)
}

// Restart rebuilds the session from the level definition.
func (r *RuntimeState) Restart() {
	r.reset()
}

// Tiles returns the live tile snapshot. Callers must treat it as
// read-only; mutate through Tap and AdvanceWalls.
func (r *RuntimeState) Tiles() []grid.Tile { return r.tiles }

// Goals returns the current goal positions (shrinks renumber them).
func (r *RuntimeState) Goals() []grid.Position { return r.goals }

func (r *RuntimeState) Moves() int                { return r.moves }
func (r *RuntimeState) Status() Status            { return r.status }
func (r *RuntimeState) LossReason() mode.LossReason { return r.loss }
func (r *RuntimeState) WallOffset() int           { return r.haz.WallOffset }
func (r *RuntimeState) GridSize() int             { return r.haz.GridSize }

func (r *RuntimeState) maxMoves() int {
	if !r.policy.UsesMoveLimit() {
		return 0
	}
	return r.level.MaxMoves
}

func (r *RuntimeState) remainingBudget() int {
	max := r.maxMoves()
	if max == 0 {
		return 0
	}
	left := max - r.moves
	if left < 1 {
		left = 1
	}
	return left
}

// RotateTap is the standalone tap primitive from the engine surface:
// it returns a rotated copy of tiles, or nil when pos holds nothing
// rotatable.
func RotateTap(pos grid.Position, tiles []grid.Tile) []grid.Tile {
	out := grid.CloneTiles(tiles)
	for i := range out {
		if out[i].Pos == pos {
			if out[i].RotateSteps(1) {
				return out
			}
			return nil
		}
	}
	return nil
}
