package world

// Space is a read-only view of one floor cell. Everything it reports is
// computed from the floor and its units at call time.
type Space struct {
	floor *Floor
	pos   Point
}

// Position returns the cell coordinates.
func (s Space) Position() Point {
	return s.pos
}

// Unit returns the live unit in the cell, or nil.
func (s Space) Unit() Occupant {
	if s.floor == nil || s.IsWall() {
		return nil
	}
	return s.floor.UnitAt(s.pos)
}

// IsWall returns true for cells outside the grid.
func (s Space) IsWall() bool {
	return s.floor == nil || !s.floor.Contains(s.pos)
}

// IsStairs returns true for the goal cell, occupied or not.
func (s Space) IsStairs() bool {
	return !s.IsWall() && s.floor.Stairs.Equal(s.pos)
}

// IsUnit returns true if a live unit stands in the cell.
func (s Space) IsUnit() bool {
	return s.Unit() != nil
}

// IsEmpty returns true for an in-bounds cell with no live unit.
func (s Space) IsEmpty() bool {
	return !s.IsWall() && !s.IsUnit()
}

// IsPlayer returns true if the warrior stands in the cell.
func (s Space) IsPlayer() bool {
	u := s.Unit()
	return u != nil && u.IsWarrior()
}

// IsEnemy returns true if a non-warrior unit stands in the cell.
func (s Space) IsEnemy() bool {
	u := s.Unit()
	return u != nil && !u.IsWarrior()
}

// Character returns the glyph drawn for the cell.
func (s Space) Character() string {
	if s.IsWall() {
		return TileVertical.String()
	}
	if u := s.Unit(); u != nil {
		return u.Glyph()
	}
	if s.IsStairs() {
		return TileStairs.String()
	}
	return TileEmpty.String()
}

// String names the cell's contents for narration.
func (s Space) String() string {
	switch {
	case s.IsWall():
		return "wall"
	case s.IsUnit():
		return s.Unit().String()
	case s.IsStairs():
		return "stairs"
	default:
		return "nothing"
	}
}
