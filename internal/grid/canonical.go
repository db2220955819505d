package grid

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CanonicalConfig renders the rotatable-tile subset of tiles as a
// byte-stable string: one "x,y:mask" line per rotatable tile, sorted by
// position. Two tile snapshots that differ only in slice order or in
// non-rotatable tiles produce the same rendering, which is exactly the
// identity the solver needs to deduplicate rotation configurations.
func CanonicalConfig(tiles []Tile) []byte {
	lines := make([]string, 0, len(tiles))
	for i := range tiles {
		if !tiles[i].Rotatable {
			continue
		}
		p := tiles[i].Pos
		lines = append(lines, fmt.Sprintf("%d,%d:%d", p.X, p.Y, uint8(tiles[i].Conns)))
	}
	sort.Strings(lines)
	return []byte(strings.Join(lines, "\n"))
}

// CanonicalLevel renders a level's identifying content: NFC-normalized
// name, grid size, and every tile's position, kind, connections and
// flags, sorted by position. Used by LevelID for hand-authored levels so
// the same level file always yields the same identity.
func CanonicalLevel(name string, gridSize int, tiles []Tile) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "name=%s\n", norm.NFC.String(name))
	fmt.Fprintf(&b, "size=%d\n", gridSize)

	lines := make([]string, 0, len(tiles))
	for i := range tiles {
		t := &tiles[i]
		lines = append(lines, fmt.Sprintf("%d,%d:%s:%d:%t:%t",
			t.Pos.X, t.Pos.Y, t.Kind, uint8(t.Conns), t.Goal, t.Rotatable))
	}
	sort.Strings(lines)
	b.WriteString(strings.Join(lines, "\n"))
	return []byte(b.String())
}
