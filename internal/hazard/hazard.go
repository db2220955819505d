// Package hazard implements the advancing-border state machine: an
// external timer calls Advance, each call crushes one more ring of the
// board, and a compaction invariant shrinks the grid once a whole ring
// is dead. The machine owns no timer; callers drive it (see the
// concurrency notes in the engine docs).
package hazard

import (
	"fmt"

	"github.com/roach88/flowgrid/internal/grid"
)

// Status is the machine's lifecycle state.
type Status uint8

const (
	// Idle: compression not started; Advance is a no-op.
	Idle Status = iota
	// Active: the border advances on every call.
	Active
	// CrushedLoss: terminal; a goal node was destroyed. Whether that
	// ends the game is the mode layer's call, but the machine stops.
	CrushedLoss
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case CrushedLoss:
		return "crushed-loss"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// MinGridSize is the size below which shrinking halts permanently.
// Crushing continues; compaction does not.
const MinGridSize = 3

// RingDistance is a tile's minimum distance to any grid edge. Ring 0 is
// the outermost border; crushing eats rings in distance order.
func RingDistance(p grid.Position, gridSize int) int {
	d := p.X
	if p.Y < d {
		d = p.Y
	}
	if r := gridSize - 1 - p.X; r < d {
		d = r
	}
	if r := gridSize - 1 - p.Y; r < d {
		d = r
	}
	return d
}

// Result summarizes one Advance call.
type Result struct {
	Tiles       []grid.Tile
	Goals       []grid.Position
	GridSize    int
	WallOffset  int
	CrushedGoal bool
	DidShrink   bool
}

// Machine tracks compression over one play session's tile snapshot. It
// owns its tile slice; construct it with a copy of the runtime tiles or
// share the runtime's slice deliberately.
type Machine struct {
	Tiles      []grid.Tile
	Goals      []grid.Position
	GridSize   int
	WallOffset int

	status       Status
	shrinkHalted bool
}

// New creates an idle machine over tiles.
func New(tiles []grid.Tile, goals []grid.Position, gridSize int) *Machine {
	return &Machine{
		Tiles:    tiles,
		Goals:    append([]grid.Position(nil), goals...),
		GridSize: gridSize,
	}
}

// Status returns the lifecycle state.
func (m *Machine) Status() Status {
	return m.status
}

// Activate starts compression. Idempotent; a crushed-loss machine stays
// terminal.
func (m *Machine) Activate() {
	if m.status == Idle {
		m.status = Active
	}
}

// Advance moves the border in by one ring: wallOffset increments, every
// tile closer to the edge than the new offset is crushed, and the board
// compacts when the ring at the offset is fully dead. The shrink check
// fires at most once per call; the rebuilt border sits at distance 0,
// so re-checking within the same call would wrongly treat it as
// shrinkable again.
func (m *Machine) Advance() Result {
	if m.status != Active {
		return m.snapshot(false)
	}

	m.WallOffset++

	crushedGoal := false
	for i := range m.Tiles {
		t := &m.Tiles[i]
		if RingDistance(t.Pos, m.GridSize) >= m.WallOffset {
			continue
		}
		if t.Kind == grid.KindCrushed {
			continue
		}
		wasGoal := t.Kind == grid.KindNode && t.Goal
		t.Crush()
		if wasGoal {
			crushedGoal = true
		}
	}
	if crushedGoal {
		m.status = CrushedLoss
	}

	didShrink := false
	if !m.shrinkHalted && m.ringIsDead(m.WallOffset) {
		didShrink = m.shrink()
	}

	res := m.snapshot(didShrink)
	res.CrushedGoal = crushedGoal
	return res
}

// ringIsDead reports whether the ring at the given distance holds no
// node, path or empty tile.
func (m *Machine) ringIsDead(dist int) bool {
	if dist > (m.GridSize-1)/2 {
		return false // ring does not exist
	}
	for i := range m.Tiles {
		if RingDistance(m.Tiles[i].Pos, m.GridSize) != dist {
			continue
		}
		switch m.Tiles[i].Kind {
		case grid.KindNode, grid.KindPath, grid.KindEmpty:
			return false
		}
	}
	return true
}

// shrink compacts the board: strip a dead border of width wallOffset+1,
// renumber survivors by subtracting that width, rebuild a one-cell wall
// border on the new perimeter, and reset wallOffset. Returns false and
// halts shrinking permanently when the result would fall below
// MinGridSize.
func (m *Machine) shrink() bool {
	width := m.WallOffset + 1
	newSize := m.GridSize - 2*width + 2
	if newSize < MinGridSize {
		m.shrinkHalted = true
		return false
	}

	// Live tiles all sit at distance >= width: everything closer was
	// wall or crushed, or the shrink check would not have passed.
	var survivors []grid.Tile
	for i := range m.Tiles {
		if m.Tiles[i].Blocks() {
			continue
		}
		t := m.Tiles[i]
		t.Pos.X -= width
		t.Pos.Y -= width
		survivors = append(survivors, t)
	}

	occupied := make(map[grid.Position]struct{}, len(survivors))
	for i := range survivors {
		occupied[survivors[i].Pos] = struct{}{}
	}

	for x := 0; x < newSize; x++ {
		for y := 0; y < newSize; y++ {
			p := grid.Position{X: x, Y: y}
			if RingDistance(p, newSize) != 0 {
				continue
			}
			if _, ok := occupied[p]; ok {
				continue
			}
			survivors = append(survivors, grid.Tile{
				ID:   fmt.Sprintf("wall-%d-%d", x, y),
				Kind: grid.KindWall,
				Pos:  p,
			})
		}
	}

	var goals []grid.Position
	for _, g := range m.Goals {
		shifted := grid.Position{X: g.X - width, Y: g.Y - width}
		if _, ok := occupied[shifted]; ok {
			goals = append(goals, shifted)
		}
	}

	m.Tiles = survivors
	m.Goals = goals
	m.GridSize = newSize
	m.WallOffset = 0
	return true
}

func (m *Machine) snapshot(didShrink bool) Result {
	return Result{
		Tiles:      m.Tiles,
		Goals:      m.Goals,
		GridSize:   m.GridSize,
		WallOffset: m.WallOffset,
		DidShrink:  didShrink,
	}
}
