package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/flowgrid/internal/levelfile"
)

// ValidateResult reports the schema check for one level file.
type ValidateResult struct {
	Path  string `json:"path"`
	Valid bool   `json:"valid"`
	Code  string `json:"code,omitempty"`
	Error string `json:"error,omitempty"`
}

func (r ValidateResult) String() string {
	if r.Valid {
		return fmt.Sprintf("%s: valid", r.Path)
	}
	return fmt.Sprintf("%s: invalid [%s]: %s", r.Path, r.Code, r.Error)
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <level.yaml>",
		Short: "Validate a level file against the schema",
		Long: `Validate checks a level file against the embedded CUE schema and the
semantic rules (cell uniqueness, goal references, wall invariants)
without solving it.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidateLevel(rootOpts, cmd, args[0])
		},
	}
	return cmd
}

func runValidateLevel(opts *RootOptions, cmd *cobra.Command, path string) error {
	formatter := formatterFor(opts, cmd)

	_, err := levelfile.Load(path)
	if err != nil {
		result := ValidateResult{Path: path, Valid: false, Error: err.Error()}
		var fe *levelfile.FileError
		if errors.As(err, &fe) {
			result.Code = fe.Code
		}
		if outErr := formatter.Success(result); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitFailure, "level file invalid", err)
	}

	return formatter.Success(ValidateResult{Path: path, Valid: true})
}
