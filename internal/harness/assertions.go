package harness

import (
	"fmt"

	"github.com/roach88/flowgrid/internal/connect"
	"github.com/roach88/flowgrid/internal/game"
)

// Check validates the expectations against a final runtime state. All
// failures are collected into one error so a scenario reports every
// mismatch at once.
func (e *Expect) Check(state *game.RuntimeState) error {
	var problems []string

	if e.Status != "" && state.Status().String() != e.Status {
		problems = append(problems, fmt.Sprintf("status = %s, want %s", state.Status(), e.Status))
	}
	if e.LossReason != "" && string(state.LossReason()) != e.LossReason {
		problems = append(problems, fmt.Sprintf("loss_reason = %s, want %s", state.LossReason(), e.LossReason))
	}
	if e.Moves != nil && state.Moves() != *e.Moves {
		problems = append(problems, fmt.Sprintf("moves = %d, want %d", state.Moves(), *e.Moves))
	}
	if e.Connected != nil {
		got := connect.IsConnected(state.Tiles(), state.Goals())
		if got != *e.Connected {
			problems = append(problems, fmt.Sprintf("connected = %t, want %t", got, *e.Connected))
		}
	}
	if e.WallOffset != nil && state.WallOffset() != *e.WallOffset {
		problems = append(problems, fmt.Sprintf("wall_offset = %d, want %d", state.WallOffset(), *e.WallOffset))
	}
	if e.GridSize != nil && state.GridSize() != *e.GridSize {
		problems = append(problems, fmt.Sprintf("grid_size = %d, want %d", state.GridSize(), *e.GridSize))
	}

	if len(problems) == 0 {
		return nil
	}
	msg := problems[0]
	for _, p := range problems[1:] {
		msg += "; " + p
	}
	return fmt.Errorf("expectations failed: %s", msg)
}
