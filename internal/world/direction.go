// Package world provides the floor grid, directions and computed spaces.
package world

import (
	"errors"
	"fmt"
)

// ErrInvalidDirection is returned for a direction token that is neither
// absolute nor relative.
var ErrInvalidDirection = errors.New("invalid direction")

// Direction is either an absolute compass direction or a direction relative
// to a unit's facing.
type Direction string

const (
	North Direction = "north"
	East  Direction = "east"
	South Direction = "south"
	West  Direction = "west"

	Forward  Direction = "forward"
	Right    Direction = "right"
	Backward Direction = "backward"
	Left     Direction = "left"
)

// AbsoluteDirections lists the compass directions clockwise from north.
var AbsoluteDirections = []Direction{North, East, South, West}

// RelativeDirections lists the relative directions clockwise from forward.
var RelativeDirections = []Direction{Forward, Right, Backward, Left}

// Point is a position (or delta) on the floor grid.
type Point struct{ X, Y int }

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point { return Point{x, y} }

// Add returns the sum of two points.
func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

// Neg returns the point with both components negated.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Equal reports whether both components match.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

var deltas = map[Direction]Point{
	North: {0, -1},
	East:  {1, 0},
	South: {0, 1},
	West:  {-1, 0},
}

// index returns the clockwise position of d within its family, or -1.
func index(d Direction) int {
	switch d {
	case North, Forward:
		return 0
	case East, Right:
		return 1
	case South, Backward:
		return 2
	case West, Left:
		return 3
	default:
		return -1
	}
}

// IsAbsolute reports whether d is a compass direction.
func (d Direction) IsAbsolute() bool {
	_, ok := deltas[d]
	return ok
}

// IsRelative reports whether d is a facing-relative direction.
func (d Direction) IsRelative() bool {
	switch d {
	case Forward, Right, Backward, Left:
		return true
	}
	return false
}

// ParseDirection validates a direction token. The empty token means Forward.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if d == "" {
		return Forward, nil
	}
	if !d.IsAbsolute() && !d.IsRelative() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
	return d, nil
}

// Absolute converts dir into a compass direction using facing. Absolute
// directions are returned unchanged.
func Absolute(dir, facing Direction) (Direction, error) {
	if dir == "" {
		dir = Forward
	}
	if dir.IsAbsolute() {
		return dir, nil
	}
	if !dir.IsRelative() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, dir)
	}
	if !facing.IsAbsolute() {
		return "", fmt.Errorf("%w: facing %q", ErrInvalidDirection, facing)
	}
	return AbsoluteDirections[(index(facing)+index(dir))%4], nil
}

// Relative converts dir into the facing-relative direction it points to.
// Relative directions are returned unchanged.
func Relative(dir, facing Direction) (Direction, error) {
	if dir == "" {
		dir = Forward
	}
	if dir.IsRelative() {
		return dir, nil
	}
	if !dir.IsAbsolute() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, dir)
	}
	if !facing.IsAbsolute() {
		return "", fmt.Errorf("%w: facing %q", ErrInvalidDirection, facing)
	}
	return RelativeDirections[(index(dir)-index(facing)+4)%4], nil
}

// Resolve returns the grid delta for dir given a unit facing.
func Resolve(dir, facing Direction) (Point, error) {
	abs, err := Absolute(dir, facing)
	if err != nil {
		return Point{}, err
	}
	return deltas[abs], nil
}
