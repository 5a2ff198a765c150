// Package level instantiates level definitions and serializes their state.
package level

import (
	"github.com/samdwyer/warriortower/internal/entity"
	"github.com/samdwyer/warriortower/internal/world"
)

// Definition is a playable level as supplied by a tower catalog.
type Definition struct {
	TowerName   string
	Number      int
	Description string
	Tip         string
	Clue        string
	TimeBonus   int
	AceScore    int
	Floor       FloorDef
}

// FloorDef describes the grid and everything placed on it.
type FloorDef struct {
	Width   int
	Height  int
	Stairs  world.Point
	Warrior WarriorDef
	Units   []UnitDef
}

// Position is a starting cell and compass facing.
type Position struct {
	X, Y   int
	Facing world.Direction
}

// Point returns the position's cell.
func (p Position) Point() world.Point {
	return world.Pt(p.X, p.Y)
}

// WarriorDef describes the player-controlled unit.
type WarriorDef struct {
	Name      string
	Character string
	MaxHealth int
	Abilities []entity.AbilityEntry
	Position  Position
}

// UnitDef describes an enemy and its scripted turn.
type UnitDef struct {
	Name      string
	Character string
	MaxHealth int
	Reward    int
	Abilities []entity.AbilityEntry
	PlayTurn  entity.TurnFunc
	Position  Position
}
