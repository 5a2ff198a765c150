package world

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrOutOfBounds is returned when a position lies outside the floor.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrPositionOccupied is returned when placing a unit on a taken cell.
	ErrPositionOccupied = errors.New("position occupied")
)

// Occupant is anything that can stand on a floor cell.
// The entity package's Unit is the only production implementation.
type Occupant interface {
	Position() Point
	IsAlive() bool
	IsWarrior() bool
	Glyph() string
	String() string

	// TakeDamage reduces health and returns the damage actually taken.
	TakeDamage(amount int) int
}

// Floor is the grid a level is played on. Occupancy is derived from the
// registered units' positions; the floor keeps no per-cell state.
type Floor struct {
	Width  int
	Height int
	Stairs Point
	units  []Occupant
}

// NewFloor allocates a floor of the given size with the stairs at stairs.
func NewFloor(width, height int, stairs Point) (*Floor, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: floor size %dx%d", ErrOutOfBounds, width, height)
	}
	f := &Floor{
		Width:  width,
		Height: height,
		Stairs: stairs,
		units:  make([]Occupant, 0),
	}
	if !f.Contains(stairs) {
		return nil, fmt.Errorf("%w: stairs at %v", ErrOutOfBounds, stairs)
	}
	return f, nil
}

// Contains returns true if p is inside the grid.
func (f *Floor) Contains(p Point) bool {
	return p.X >= 0 && p.X < f.Width && p.Y >= 0 && p.Y < f.Height
}

// Tile returns the glyph for a cell in bordered coordinates, where the
// border occupies x = -1, x = Width, y = -1 and y = Height. Interior cells
// return TileEmpty; unit and stairs glyphs come from SpaceAt.
func (f *Floor) Tile(x, y int) Tile {
	left, right := x == -1, x == f.Width
	top, bottom := y == -1, y == f.Height
	switch {
	case top && left:
		return TileTopLeft
	case top && right:
		return TileTopRight
	case bottom && left:
		return TileBottomLeft
	case bottom && right:
		return TileBottomRight
	case top || bottom:
		return TileHorizontal
	case left || right:
		return TileVertical
	default:
		return TileEmpty
	}
}

// Place registers a unit at its current position.
func (f *Floor) Place(u Occupant) error {
	pos := u.Position()
	if !f.Contains(pos) {
		return fmt.Errorf("%w: %s at %v", ErrOutOfBounds, u, pos)
	}
	if other := f.UnitAt(pos); other != nil {
		return fmt.Errorf("%w: %s and %s at %v", ErrPositionOccupied, u, other, pos)
	}
	f.units = append(f.units, u)
	return nil
}

// LiveUnits yields the units that are still alive, in registration order.
// The sequence is recomputed from unit health on every iteration.
func (f *Floor) LiveUnits() iter.Seq[Occupant] {
	return func(yield func(Occupant) bool) {
		for _, u := range f.units {
			if !u.IsAlive() {
				continue
			}
			if !yield(u) {
				return
			}
		}
	}
}

// UnitAt returns the live unit at p, or nil.
func (f *Floor) UnitAt(p Point) Occupant {
	for u := range f.LiveUnits() {
		if u.Position().Equal(p) {
			return u
		}
	}
	return nil
}

// Warrior returns the live warrior, or nil.
func (f *Floor) Warrior() Occupant {
	for u := range f.LiveUnits() {
		if u.IsWarrior() {
			return u
		}
	}
	return nil
}

// SpaceAt returns the computed space at p. Points outside the grid yield a
// wall space.
func (f *Floor) SpaceAt(p Point) Space {
	return Space{floor: f, pos: p}
}
