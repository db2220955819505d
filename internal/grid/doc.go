// Package grid defines the tile data model shared by every component of
// the puzzle engine: directions, positions, connection sets, tiles,
// levels, and solutions.
//
// The model is deliberately value-oriented. A connection set is a 4-bit
// mask over the cyclic direction order (up, right, down, left), so
// rotating a tile is a bit rotation and never allocates. Components that
// need mutation (runtime play, the hazard machine) work on their own
// copies of a level's tile slice; a Level itself is never mutated after
// construction.
//
// The package also provides canonical serialization and content hashing
// (see canonical.go and hash.go). The solver deduplicates rotation
// configurations by ConfigHash, and hand-authored levels derive their
// identity from LevelID, so both must be byte-stable across runs.
package grid
