package solver

import (
	"errors"
	"fmt"
)

// Reason categorizes why no solution was returned.
type Reason string

const (
	// ReasonProvenUnsolvable means the exact search exhausted every
	// reachable configuration within the move budget. The proof is
	// scoped to that budget: with Budget > 0 it rules out solutions in
	// at most Budget taps, not solutions outright. Only with Budget == 0
	// (unlimited) is the puzzle unsolvable in any number of taps.
	ReasonProvenUnsolvable Reason = "PROVEN_UNSOLVABLE"

	// ReasonExpansionCap means the exact search hit its expansion cap
	// before exhausting the space. The puzzle may still be solvable.
	ReasonExpansionCap Reason = "EXPANSION_CAP"

	// ReasonHeuristicExhausted means both heuristic stages failed. The
	// puzzle may still be solvable.
	ReasonHeuristicExhausted Reason = "HEURISTIC_EXHAUSTED"
)

// NoSolutionError reports a failed solve attempt. Proven() tells callers
// whether the failure is a formal unsolvability proof or a bounded
// best-effort giving up.
type NoSolutionError struct {
	Reason     Reason
	Budget     int // move budget in taps; 0 means unlimited
	Expansions int // configurations expanded before giving up
}

func (e *NoSolutionError) Error() string {
	if e.Budget > 0 {
		return fmt.Sprintf("%s: no solution found within %d taps (%d expansions)",
			e.Reason, e.Budget, e.Expansions)
	}
	return fmt.Sprintf("%s: no solution found (%d expansions)", e.Reason, e.Expansions)
}

// Proven reports whether the failure proves the puzzle unsolvable
// within the move budget. Budget carries the bound the proof holds
// under; a true result with Budget > 0 says nothing about solvability
// with more taps.
func (e *NoSolutionError) Proven() bool {
	return e.Reason == ReasonProvenUnsolvable
}

// IsNoSolution reports whether err is a NoSolutionError, unwrapping as
// needed.
func IsNoSolution(err error) bool {
	var nse *NoSolutionError
	return errors.As(err, &nse)
}
