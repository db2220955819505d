// Package solver finds minimum-cost rotation sequences that connect a
// level's goal nodes.
//
// A move is a compound rotation: one tile, 1-3 quarter turns, costing
// one per turn. A 4th turn returns the tile to its start orientation,
// so each rotatable tile contributes at most one move to any minimal
// solution and per-tile branching is bounded at 3.
//
// Two search paths, chosen by rotatable-tile count R:
//
// Exact (R <= ExactTileLimit): Dijkstra-style best-first search over
// rotation configurations, ordered by cumulative cost. Plain FIFO order
// would NOT yield minimal solutions here - move costs are non-uniform
// (1, 2, 3) - so the frontier is a cost-ordered heap with a strictly
// increasing tie-break sequence for determinism. Configurations are
// deduplicated by grid.ConfigHash. Exhausting the frontier within the
// budget is a real unsolvability proof; hitting the expansion cap is
// not, and the two are reported as distinct error reasons.
//
// Heuristic (R > ExactTileLimit): an independent greedy orientation
// pass, then bounded iterative deepening in a fixed tile order, trying
// "leave unrotated" before each rotation to bias toward minimal-touch
// solutions. This path offers no optimality or completeness guarantee
// and never reports unsolvability as proven.
//
// All caps are configuration, not constants: they were chosen
// empirically and callers with different latency budgets tune them via
// Option values.
package solver
