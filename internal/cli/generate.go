package cli

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/roach88/flowgrid/internal/generator"
	"github.com/roach88/flowgrid/internal/levelfile"
	"github.com/roach88/flowgrid/internal/random"
	"github.com/roach88/flowgrid/internal/store"
)

// GenerateResult is the payload of a successful generate run.
type GenerateResult struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	GridSize int    `json:"grid_size"`
	Nodes    int    `json:"nodes"`
	MinMoves int    `json:"min_moves"`
	MaxMoves int    `json:"max_moves"`
	Out      string `json:"out,omitempty"`
	Saved    bool   `json:"saved,omitempty"`
}

func (r GenerateResult) String() string {
	s := fmt.Sprintf("generated %s: %dx%d, %d nodes, solution %d/%d moves",
		r.ID, r.GridSize, r.GridSize, r.Nodes, r.MinMoves, r.MaxMoves)
	if r.Out != "" {
		s += " -> " + r.Out
	}
	return s
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		size       int
		nodes      int
		difficulty string
		decoys     int
		seed       int64
		out        string
		save       bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a solvable level",
		Long: `Generate a random solvable level.

The output is never pre-solved: at least one rotation is always
required. With --out the level is written as a YAML document; with
--save it is persisted to the completion database.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(rootOpts, cmd, generateParams{
				size:       size,
				nodes:      nodes,
				difficulty: difficulty,
				decoys:     decoys,
				seedSet:    cmd.Flags().Changed("seed"),
				seed:       seed,
				decoysSet:  cmd.Flags().Changed("decoys"),
				out:        out,
				save:       save,
			})
		},
	}

	cmd.Flags().IntVar(&size, "size", 5, "grid size (NxN, minimum 5)")
	cmd.Flags().IntVar(&nodes, "nodes", 2, "goal node count")
	cmd.Flags().StringVar(&difficulty, "difficulty", "easy", "difficulty (easy|medium|hard)")
	cmd.Flags().IntVar(&decoys, "decoys", 0, "override the difficulty's decoy count")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: crypto-random)")
	cmd.Flags().StringVar(&out, "out", "", "write the level YAML to this path")
	cmd.Flags().BoolVar(&save, "save", false, "persist the level to the database")

	return cmd
}

type generateParams struct {
	size       int
	nodes      int
	difficulty string
	decoys     int
	seed       int64
	seedSet    bool
	decoysSet  bool
	out        string
	save       bool
}

func runGenerate(opts *RootOptions, cmd *cobra.Command, p generateParams) error {
	formatter := formatterFor(opts, cmd)

	diff, err := generator.ParseDifficulty(p.difficulty)
	if err != nil {
		formatter.Error(ErrCodeGenerate, err.Error(), nil)
		return WrapExitError(ExitCommandError, "bad difficulty", err)
	}

	seed := p.seed
	if !p.seedSet {
		seed, err = random.NewSeed()
		if err != nil {
			formatter.Error(ErrCodeGenerate, err.Error(), nil)
			return WrapExitError(ExitCommandError, "seeding rng", err)
		}
	}
	formatter.VerboseLog("seed: %d", seed)

	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: logLevel}))

	genOpts := generator.Options{
		GridSize:   p.size,
		NodeCount:  p.nodes,
		Difficulty: diff,
	}
	if p.decoysSet {
		decoys := p.decoys
		genOpts.DecoyOverride = &decoys
	}

	gen := generator.New(rand.New(rand.NewSource(seed)), log)
	level := gen.Generate(genOpts)

	result := GenerateResult{
		ID:       level.ID,
		Name:     level.Name,
		GridSize: level.GridSize,
		Nodes:    len(level.Goals),
		MinMoves: level.Solution.Cost(),
		MaxMoves: level.MaxMoves,
	}

	if p.out != "" {
		if err := levelfile.Save(p.out, level); err != nil {
			formatter.Error(ErrCodeGenerate, err.Error(), nil)
			return WrapExitError(ExitCommandError, "writing level file", err)
		}
		result.Out = p.out
	}

	if p.save {
		db, err := store.Open(opts.DBPath)
		if err != nil {
			formatter.Error(ErrCodeStore, err.Error(), nil)
			return WrapExitError(ExitCommandError, "opening database", err)
		}
		defer db.Close()
		if err := db.SaveLevel(context.Background(), level); err != nil {
			formatter.Error(ErrCodeStore, err.Error(), nil)
			return WrapExitError(ExitCommandError, "saving level", err)
		}
		result.Saved = true
	}

	return formatter.Success(result)
}
