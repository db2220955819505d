package grid

import "fmt"

// Direction is one of the four cardinal directions, in cyclic clockwise
// order. Rotating a direction by n steps advances its index by n mod 4.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// NumDirections is the size of the direction cycle.
const NumDirections = 4

// Directions lists all directions in cyclic order.
var Directions = [NumDirections]Direction{Up, Right, Down, Left}

// Rotate returns the direction advanced n clockwise quarter turns.
// Negative n rotates counter-clockwise.
func (d Direction) Rotate(n int) Direction {
	n %= NumDirections
	if n < 0 {
		n += NumDirections
	}
	return Direction((int(d) + n) % NumDirections)
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return d.Rotate(2)
}

// Delta returns the grid coordinate offset for one step in d.
// Y grows downward, matching screen coordinates.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection parses the lowercase direction names used by the level
// file format.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return Up, nil
	case "right":
		return Right, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Position is an integer grid coordinate. (0,0) is the top-left cell.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Step returns the position one cell away in d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// ManhattanDistance returns the L1 distance to q.
func (p Position) ManhattanDistance(q Position) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
