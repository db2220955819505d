// Package harness executes declarative play scenarios against the
// engine and snapshots their traces as golden files. A scenario pins a
// level, a mode and a step sequence; the harness replays it and renders
// a deterministic trace, so behavior drift shows up as a golden diff.
package harness

import (
	"bytes"
	"fmt"

	"github.com/roach88/flowgrid/internal/connect"
	"github.com/roach88/flowgrid/internal/game"
	"github.com/roach88/flowgrid/internal/grid"
	"github.com/roach88/flowgrid/internal/levelfile"
	"github.com/roach88/flowgrid/internal/mode"
)

// Trace is the rendered record of one scenario run.
type Trace struct {
	lines []string
}

func (tr *Trace) add(format string, args ...any) {
	tr.lines = append(tr.lines, fmt.Sprintf(format, args...))
}

// Render serializes the trace, one event per line.
func (tr *Trace) Render() []byte {
	var buf bytes.Buffer
	for _, line := range tr.lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Run executes the scenario and returns its trace plus the final
// runtime state. Step execution never fails; expectation checking is
// separate (see Expect.Check) so a golden diff and an assertion failure
// stay distinguishable.
func Run(s *Scenario) (*Trace, *game.RuntimeState, error) {
	level, err := levelfile.Load(s.LevelPath())
	if err != nil {
		return nil, nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	policy, err := mode.ForID(mode.ID(s.Mode))
	if err != nil {
		return nil, nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	state := game.NewRuntimeState(level, policy)

	tr := &Trace{}
	tr.add("scenario: %s", s.Name)
	tr.add("level: %s %dx%d", level.Name, level.GridSize, level.GridSize)
	tr.add("mode: %s", policy.ID())

	for i, step := range s.Steps {
		n := i + 1
		switch {
		case step.Tap != nil:
			pos := grid.Position{X: step.Tap.X, Y: step.Tap.Y}
			rotated := state.Tap(pos)
			tr.add("step %d: tap (%d,%d) rotated=%t moves=%d status=%s", n, pos.X, pos.Y, rotated, state.Moves(), state.Status())
		case step.Advance:
			res := state.AdvanceWalls()
			tr.add("step %d: advance wall_offset=%d crushed_goal=%t did_shrink=%t status=%s", n, res.WallOffset, res.CrushedGoal, res.DidShrink, state.Status())
		case step.Undo:
			ok := state.Undo()
			tr.add("step %d: undo ok=%t moves=%d status=%s", n, ok, state.Moves(), state.Status())
		case step.Restart:
			state.Restart()
			tr.add("step %d: restart status=%s", n, state.Status())
		}
	}

	tr.add("final: status=%s moves=%d connected=%t wall_offset=%d grid_size=%d",
		state.Status(), state.Moves(),
		connect.IsConnected(state.Tiles(), state.Goals()),
		state.WallOffset(), state.GridSize())

	return tr, state, nil
}
