package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/flowgrid/internal/game"
	"github.com/roach88/flowgrid/internal/levelfile"
)

// VerifyResult reports solvability for one level file.
type VerifyResult struct {
	Path string `json:"path"`
	ID   string `json:"id"`
	game.Verification
}

func (r VerifyResult) String() string {
	if r.Solvable {
		return fmt.Sprintf("%s: solvable in %d moves", r.Path, r.MinMoves)
	}
	verdict := "search capped"
	if r.Proven {
		verdict = "proven unsolvable"
	}
	return fmt.Sprintf("%s: unsolvable (%s): %s", r.Path, verdict, r.Reason)
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <level.yaml>",
		Short: "Check that a level file is solvable",
		Long: `Verify solves a level file from its starting configuration and
reports the minimal move count, or why no solution exists. Exit code 1
means the level did not verify; 2 means the file could not be read.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(rootOpts, cmd, args[0])
		},
	}
	return cmd
}

func runVerify(opts *RootOptions, cmd *cobra.Command, path string) error {
	formatter := formatterFor(opts, cmd)

	level, err := levelfile.Load(path)
	if err != nil {
		formatter.Error(ErrCodeBadLevel, err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading level", err)
	}
	formatter.VerboseLog("loaded %s: %dx%d, %d goals", level.ID, level.GridSize, level.GridSize, len(level.Goals))

	result := VerifyResult{Path: path, ID: level.ID, Verification: game.VerifyLevel(level)}
	if err := formatter.Success(result); err != nil {
		return err
	}
	if !result.Solvable {
		return WrapExitError(ExitFailure, "level did not verify", nil)
	}
	return nil
}
