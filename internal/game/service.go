package game

import (
	"errors"
	"fmt"

	"github.com/roach88/flowgrid/internal/grid"
	"github.com/roach88/flowgrid/internal/solver"
)

// Verification is the solvability report for a level.
type Verification struct {
	Solvable bool   `json:"solvable"`
	MinMoves int    `json:"min_moves"`
	Proven   bool   `json:"proven,omitempty"` // unsolvable verdict backed by exhaustive search
	Reason   string `json:"reason,omitempty"`
}

// VerifyLevel solves a level from its original tiles and reports the
// minimal move count. An unsolvable verdict carries whether it is a
// proof or a bounded search giving up.
func VerifyLevel(level *grid.Level, opts ...solver.Option) Verification {
	sol, err := solver.Solve(level.Tiles, level.Goals, level.MaxMoves, opts...)
	if err != nil {
		v := Verification{Solvable: false, Reason: err.Error()}
		var nse *solver.NoSolutionError
		if errors.As(err, &nse) {
			v.Proven = nse.Proven()
		}
		return v
	}
	return Verification{Solvable: true, MinMoves: sol.Cost()}
}

// Service fronts the level catalog with a memoized solution cache.
//
// Cache policy: hand-authored levels are immutable constants, so cached
// solutions are never invalidated. Generated levels never populate the
// cache - their solution is attached at construction and returned
// directly. Clear exists for tests.
type Service struct {
	order  []string
	levels map[string]*grid.Level
	cache  map[string]*grid.Solution

	solverOpts []solver.Option
}

// NewService builds a service over the given levels; with none given it
// serves the built-in catalog.
func NewService(levels ...*grid.Level) *Service {
	if len(levels) == 0 {
		levels = Catalog()
	}
	s := &Service{
		levels: make(map[string]*grid.Level, len(levels)),
		cache:  make(map[string]*grid.Solution),
	}
	for _, lvl := range levels {
		if _, dup := s.levels[lvl.ID]; dup {
			continue
		}
		s.order = append(s.order, lvl.ID)
		s.levels[lvl.ID] = lvl
	}
	return s
}

// SetSolverOptions applies search caps to every subsequent Solve.
func (s *Service) SetSolverOptions(opts ...solver.Option) {
	s.solverOpts = opts
}

// Level returns the level with the given id.
func (s *Service) Level(id string) (*grid.Level, error) {
	lvl, ok := s.levels[id]
	if !ok {
		return nil, fmt.Errorf("unknown level %q", id)
	}
	return lvl, nil
}

// Levels lists the catalog in registration order.
func (s *Service) Levels() []*grid.Level {
	out := make([]*grid.Level, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.levels[id])
	}
	return out
}

// Add registers a level (a generated one, typically) with the service.
func (s *Service) Add(lvl *grid.Level) {
	if _, dup := s.levels[lvl.ID]; dup {
		return
	}
	s.order = append(s.order, lvl.ID)
	s.levels[lvl.ID] = lvl
}

// Solve returns a minimal solution for the level, memoizing results for
// hand-authored levels.
func (s *Service) Solve(id string) (*grid.Solution, error) {
	lvl, err := s.Level(id)
	if err != nil {
		return nil, err
	}

	// Generated levels carry their solution from construction and stay
	// out of the cache.
	if lvl.Generated && lvl.Solution != nil {
		return lvl.Solution.Clone(), nil
	}

	if sol, ok := s.cache[id]; ok {
		return sol.Clone(), nil
	}

	sol, err := solver.Solve(lvl.Tiles, lvl.Goals, lvl.MaxMoves, s.solverOpts...)
	if err != nil {
		return nil, err
	}
	s.cache[id] = sol
	return sol.Clone(), nil
}

// CachedSolutions reports the cache size, for tests and diagnostics.
func (s *Service) CachedSolutions() int {
	return len(s.cache)
}

// Clear empties the solution cache.
func (s *Service) Clear() {
	s.cache = make(map[string]*grid.Solution)
}
