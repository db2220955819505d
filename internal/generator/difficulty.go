package generator

import (
	"fmt"
	"time"
)

// Difficulty selects the generation tuning profile.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// profile holds the per-difficulty tuning knobs.
type profile struct {
	// tier is the level's difficulty tier, starting at 1.
	tier int
	// movePadding is added to the solver minimum to form the move
	// budget, and to the validation budget during generation.
	movePadding int
	// decoys is the default count of misdirection tiles.
	decoys int
	// compressionDelay is the wall-advance interval handed to modes
	// that compress.
	compressionDelay time.Duration
}

var profiles = map[Difficulty]profile{
	Easy:   {tier: 1, movePadding: 4, decoys: 2, compressionDelay: 12 * time.Second},
	Medium: {tier: 2, movePadding: 3, decoys: 4, compressionDelay: 8 * time.Second},
	Hard:   {tier: 3, movePadding: 2, decoys: 7, compressionDelay: 5 * time.Second},
}

// ParseDifficulty validates a difficulty name.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if _, ok := profiles[d]; !ok {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}
