// Package mode defines the capability contract that separates
// per-mode rules from the engine core. Win and loss conditions, tap
// accounting, undo availability and wall compression all vary by mode;
// the connectivity checker, solver, generator and hazard machine never
// see a concrete mode, only this interface.
//
// The variant set is closed: ForID rejects unknown IDs and All() is the
// whole enumeration. Adding a mode means adding a type here, not
// registering one at runtime.
package mode

import (
	"fmt"

	"github.com/roach88/flowgrid/internal/connect"
	"github.com/roach88/flowgrid/internal/grid"
)

// ID names a concrete mode.
type ID string

const (
	Classic     ID = "classic"
	Compression ID = "compression"
	Zen         ID = "zen"
)

// CompressionPolicy says how a mode treats the advancing border.
type CompressionPolicy uint8

const (
	// CompressionOff: walls never advance.
	CompressionOff CompressionPolicy = iota
	// CompressionAdvancing: the caller's timer drives hazard advances
	// at the level's compression delay.
	CompressionAdvancing
)

// LossReason says why CheckLoss fired.
type LossReason string

const (
	LossNone        LossReason = ""
	LossOutOfMoves  LossReason = "out_of_moves"
	LossGoalCrushed LossReason = "goal_crushed"
)

// Policy is the capability set consumed by the runtime.
type Policy interface {
	ID() ID

	// OnTap applies one tap at pos: a single quarter turn on a
	// rotatable tile. Reports whether a tile rotated and whether the
	// tap counts against the move budget.
	OnTap(tiles []grid.Tile, pos grid.Position) (rotated, counted bool)

	// CheckWin decides the win condition for the current snapshot.
	CheckWin(tiles []grid.Tile, goals []grid.Position) bool

	// CheckLoss decides the loss condition from the runtime counters.
	CheckLoss(moves, maxMoves int, goalCrushed bool) LossReason

	UsesMoveLimit() bool
	SupportsUndo() bool
	WallCompression() CompressionPolicy
}

// ForID returns the policy for id.
func ForID(id ID) (Policy, error) {
	for _, p := range All() {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unknown mode %q", id)
}

// All enumerates every mode.
func All() []Policy {
	return []Policy{classicMode{}, compressionMode{}, zenMode{}}
}

// rotateTap is the shared tap semantic: one quarter turn, rotatable
// tiles only.
func rotateTap(tiles []grid.Tile, pos grid.Position) bool {
	for i := range tiles {
		if tiles[i].Pos == pos {
			return tiles[i].RotateSteps(1)
		}
	}
	return false
}

// classicMode: budgeted moves, undo allowed, no compression.
type classicMode struct{}

func (classicMode) ID() ID { return Classic }

func (classicMode) OnTap(tiles []grid.Tile, pos grid.Position) (bool, bool) {
	rotated := rotateTap(tiles, pos)
	return rotated, rotated
}

func (classicMode) CheckWin(tiles []grid.Tile, goals []grid.Position) bool {
	return connect.IsConnected(tiles, goals)
}

func (classicMode) CheckLoss(moves, maxMoves int, goalCrushed bool) LossReason {
	if maxMoves > 0 && moves >= maxMoves {
		return LossOutOfMoves
	}
	return LossNone
}

func (classicMode) UsesMoveLimit() bool                { return true }
func (classicMode) SupportsUndo() bool                 { return true }
func (classicMode) WallCompression() CompressionPolicy { return CompressionOff }

// compressionMode: the border advances on a timer, a crushed goal is
// fatal, no undo (real-time play), no move budget.
type compressionMode struct{}

func (compressionMode) ID() ID { return Compression }

func (compressionMode) OnTap(tiles []grid.Tile, pos grid.Position) (bool, bool) {
	rotated := rotateTap(tiles, pos)
	return rotated, rotated
}

func (compressionMode) CheckWin(tiles []grid.Tile, goals []grid.Position) bool {
	return connect.IsConnected(tiles, goals)
}

func (compressionMode) CheckLoss(moves, maxMoves int, goalCrushed bool) LossReason {
	if goalCrushed {
		return LossGoalCrushed
	}
	return LossNone
}

func (compressionMode) UsesMoveLimit() bool                { return false }
func (compressionMode) SupportsUndo() bool                 { return false }
func (compressionMode) WallCompression() CompressionPolicy { return CompressionAdvancing }

// zenMode: no budget, no hazard, no way to lose. Taps still count for
// score display.
type zenMode struct{}

func (zenMode) ID() ID { return Zen }

func (zenMode) OnTap(tiles []grid.Tile, pos grid.Position) (bool, bool) {
	rotated := rotateTap(tiles, pos)
	return rotated, rotated
}

func (zenMode) CheckWin(tiles []grid.Tile, goals []grid.Position) bool {
	return connect.IsConnected(tiles, goals)
}

func (zenMode) CheckLoss(moves, maxMoves int, goalCrushed bool) LossReason {
	return LossNone
}

func (zenMode) UsesMoveLimit() bool                { return false }
func (zenMode) SupportsUndo() bool                 { return true }
func (zenMode) WallCompression() CompressionPolicy { return CompressionOff }
