package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/flowgrid/internal/store"
)

// StatsResult is the payload of the stats command.
type StatsResult struct {
	Levels []store.LevelStats `json:"levels"`
}

func (r StatsResult) String() string {
	if len(r.Levels) == 0 {
		return "no plays recorded"
	}
	var b strings.Builder
	for i, st := range r.Levels {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %d plays, %d wins", st.LevelID, st.Plays, st.Wins)
		if st.Wins > 0 {
			fmt.Fprintf(&b, ", best %d moves (minimum %d)", st.BestMoves, st.MinMoves)
		}
	}
	return b.String()
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show per-level play statistics",
		Long:  "Stats aggregates the play log in the completion database per level.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(rootOpts, cmd)
		},
	}
	return cmd
}

func runStats(opts *RootOptions, cmd *cobra.Command) error {
	formatter := formatterFor(opts, cmd)

	db, err := store.Open(opts.DBPath)
	if err != nil {
		formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "opening database", err)
	}
	defer db.Close()

	stats, err := db.Stats(context.Background())
	if err != nil {
		formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "reading stats", err)
	}

	return formatter.Success(StatsResult{Levels: stats})
}
