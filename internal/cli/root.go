package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands. Environment
// variables seed the defaults; flags win when both are set.
type RootOptions struct {
	Verbose bool
	Format  string `env:"FLOWGRID_FORMAT" envDefault:"text"`
	DBPath  string `env:"FLOWGRID_DB" envDefault:"flowgrid.db"`
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the flowgrid CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	if err := env.Parse(opts); err != nil {
		// Unparseable environment falls back to flag defaults.
		opts.Format = "text"
		opts.DBPath = "flowgrid.db"
	}

	cmd := &cobra.Command{
		Use:   "flowgrid",
		Short: "Flowgrid - rotation puzzle engine tooling",
		Long:  "Generate, verify and solve tile-rotation pipe puzzles.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", opts.Verbose, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", opts.Format, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", opts.DBPath, "path to the completion database")

	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))
	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// formatterFor builds the output formatter for one command invocation.
func formatterFor(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
