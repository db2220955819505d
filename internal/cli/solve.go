package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/flowgrid/internal/levelfile"
	"github.com/roach88/flowgrid/internal/solver"
)

// SolveMove is one move of a reported solution.
type SolveMove struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Steps int `json:"steps"`
}

// SolveResult is the payload of a successful solve run.
type SolveResult struct {
	Path     string      `json:"path"`
	ID       string      `json:"id"`
	Cost     int         `json:"cost"`
	Moves    []SolveMove `json:"moves"`
	HintOnly bool        `json:"hint_only,omitempty"`
}

func (r SolveResult) String() string {
	if len(r.Moves) == 0 {
		return fmt.Sprintf("%s: already connected", r.Path)
	}
	parts := make([]string, len(r.Moves))
	for i, m := range r.Moves {
		parts[i] = fmt.Sprintf("(%d,%d)x%d", m.X, m.Y, m.Steps)
	}
	label := "solution"
	if r.HintOnly {
		label = "hint"
	}
	return fmt.Sprintf("%s: %s cost %d: %s", r.Path, label, r.Cost, strings.Join(parts, " "))
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	var hint bool

	cmd := &cobra.Command{
		Use:   "solve <level.yaml>",
		Short: "Print a minimal solution for a level file",
		Long: `Solve searches for a minimal-cost move sequence for the level and
prints it. With --hint only the first move is printed.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(rootOpts, cmd, args[0], hint)
		},
	}

	cmd.Flags().BoolVar(&hint, "hint", false, "print only the next move")

	return cmd
}

func runSolve(opts *RootOptions, cmd *cobra.Command, path string, hintOnly bool) error {
	formatter := formatterFor(opts, cmd)

	level, err := levelfile.Load(path)
	if err != nil {
		formatter.Error(ErrCodeBadLevel, err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading level", err)
	}

	sol, err := solver.Solve(level.Tiles, level.Goals, level.MaxMoves)
	if err != nil {
		formatter.Error(ErrCodeUnsolvable, err.Error(), nil)
		return WrapExitError(ExitFailure, "no solution", err)
	}

	result := SolveResult{Path: path, ID: level.ID, Cost: sol.Cost(), HintOnly: hintOnly}
	moves := sol.Moves
	if hintOnly && len(moves) > 1 {
		moves = moves[:1]
	}
	for _, m := range moves {
		result.Moves = append(result.Moves, SolveMove{X: m.Pos.X, Y: m.Pos.Y, Steps: m.Steps})
	}
	if hintOnly && len(result.Moves) > 0 {
		result.Cost = result.Moves[0].Steps
	}

	return formatter.Success(result)
}
