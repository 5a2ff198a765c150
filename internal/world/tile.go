package world

// Tile represents the glyph drawn for a map cell.
type Tile rune

const (
	TileTopLeft     Tile = '╔'
	TileTopRight    Tile = '╗'
	TileBottomLeft  Tile = '╚'
	TileBottomRight Tile = '╝'
	// TileHorizontal is the top and bottom wall run.
	TileHorizontal Tile = '═'
	// TileVertical is the left and right wall run.
	TileVertical Tile = '║'
	// TileStairs marks the goal cell when nothing stands on it.
	TileStairs Tile = '>'
	// TileEmpty is an unoccupied floor cell.
	TileEmpty Tile = ' '
)

// IsWall returns true for the border glyphs.
func (t Tile) IsWall() bool {
	switch t {
	case TileTopLeft, TileTopRight, TileBottomLeft, TileBottomRight, TileHorizontal, TileVertical:
		return true
	}
	return false
}

// String returns the tile's display character as a string.
func (t Tile) String() string {
	return string(rune(t))
}
