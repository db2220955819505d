package grid

import "fmt"

// ConnSet is a tile's set of open pipe ends, one bit per Direction.
type ConnSet uint8

// Conns builds a ConnSet from directions.
func Conns(dirs ...Direction) ConnSet {
	var c ConnSet
	for _, d := range dirs {
		c |= 1 << d
	}
	return c
}

// Has reports whether d is open.
func (c ConnSet) Has(d Direction) bool {
	return c&(1<<d) != 0
}

// Count returns the number of open directions.
func (c ConnSet) Count() int {
	n := 0
	for _, d := range Directions {
		if c.Has(d) {
			n++
		}
	}
	return n
}

// Rotate returns the set advanced n clockwise quarter turns. Rotating by
// 4 is the identity.
func (c ConnSet) Rotate(n int) ConnSet {
	var out ConnSet
	for _, d := range Directions {
		if c.Has(d) {
			out |= 1 << d.Rotate(n)
		}
	}
	return out
}

// List returns the open directions in cyclic order (up, right, down,
// left). The level file format stores this ordered list.
func (c ConnSet) List() []Direction {
	out := make([]Direction, 0, 4)
	for _, d := range Directions {
		if c.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (c ConnSet) String() string {
	s := ""
	for _, d := range c.List() {
		if s != "" {
			s += "+"
		}
		s += d.String()
	}
	if s == "" {
		return "none"
	}
	return s
}

// Shape is the rotation class of a connection set. Rotation is a
// bijection on connection sets, so a tile never leaves its shape class:
// a straight only ever visits the two straight orientations, a corner
// only the four corner orientations.
type Shape uint8

const (
	ShapeNone     Shape = iota // no connections
	ShapeEnd                   // single opening
	ShapeStraight              // two opposite openings
	ShapeCorner                // two adjacent openings
	ShapeTee                   // three openings
	ShapeCross                 // all four openings
)

func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "none"
	case ShapeEnd:
		return "end"
	case ShapeStraight:
		return "straight"
	case ShapeCorner:
		return "corner"
	case ShapeTee:
		return "tee"
	case ShapeCross:
		return "cross"
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// ShapeOf classifies a connection set.
func ShapeOf(c ConnSet) Shape {
	switch c.Count() {
	case 0:
		return ShapeNone
	case 1:
		return ShapeEnd
	case 2:
		if c.Has(Up) == c.Has(Down) {
			return ShapeStraight
		}
		return ShapeCorner
	case 3:
		return ShapeTee
	}
	return ShapeCross
}

// Kind is a tile's cell variant.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindWall
	KindPath
	KindNode
	KindCrushed
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindWall:
		return "wall"
	case KindPath:
		return "path"
	case KindNode:
		return "node"
	case KindCrushed:
		return "crushed"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind parses the lowercase kind names used by the level file
// format.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "empty":
		return KindEmpty, nil
	case "wall":
		return KindWall, nil
	case "path":
		return KindPath, nil
	case "node":
		return KindNode, nil
	case "crushed":
		return KindCrushed, nil
	}
	return 0, fmt.Errorf("unknown tile kind %q", s)
}

// Tile is one grid cell.
//
// INVARIANT: wall and crushed tiles have an empty connection set and
// Rotatable=false. Crush() maintains this; constructors must too.
type Tile struct {
	ID        string
	Kind      Kind
	Pos       Position
	Conns     ConnSet
	Goal      bool // goal node that must join the connected network
	Rotatable bool
}

// RotateSteps rotates the tile's connections n quarter turns. Reports
// whether the tile was rotatable; walls, crushed cells and fixed pipes
// are left untouched.
func (t *Tile) RotateSteps(n int) bool {
	if !t.Rotatable {
		return false
	}
	t.Conns = t.Conns.Rotate(n)
	return true
}

// Crush turns the tile into a dead crushed cell.
func (t *Tile) Crush() {
	t.Kind = KindCrushed
	t.Conns = 0
	t.Rotatable = false
}

// Blocks reports whether the tile can never carry flow.
func (t *Tile) Blocks() bool {
	return t.Kind == KindWall || t.Kind == KindCrushed
}

// CloneTiles returns a deep copy of a tile slice. Runtime play and the
// hazard machine mutate copies, never a Level's own tiles.
func CloneTiles(tiles []Tile) []Tile {
	out := make([]Tile, len(tiles))
	copy(out, tiles)
	return out
}

// IndexByPosition builds a position lookup over tiles. Connectivity and
// the solver build this once per call instead of scanning per edge test.
func IndexByPosition(tiles []Tile) map[Position]int {
	idx := make(map[Position]int, len(tiles))
	for i, t := range tiles {
		idx[t.Pos] = i
	}
	return idx
}
