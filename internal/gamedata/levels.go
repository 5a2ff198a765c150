package gamedata

import (
	"fmt"

	"github.com/samdwyer/warriortower/internal/level"
	"github.com/samdwyer/warriortower/internal/world"
)

// LevelDef is a level as stored in a JSON or YAML file.
type LevelDef struct {
	TowerName   string    `json:"towerName" yaml:"towerName"`
	Number      int       `json:"number" yaml:"number"`
	Description string    `json:"description" yaml:"description"`
	Tip         string    `json:"tip" yaml:"tip"`
	Clue        string    `json:"clue,omitempty" yaml:"clue,omitempty"`
	TimeBonus   int       `json:"timeBonus" yaml:"timeBonus"`
	AceScore    int       `json:"aceScore" yaml:"aceScore"`
	Floor       FloorData `json:"floor" yaml:"floor"`
}

// FloorData holds the grid size, the stairs and every unit.
type FloorData struct {
	Size    SizeData    `json:"size" yaml:"size"`
	Stairs  PointData   `json:"stairs" yaml:"stairs"`
	Warrior WarriorData `json:"warrior" yaml:"warrior"`
	Units   []UnitData  `json:"units" yaml:"units"`
}

// SizeData is the interior size of a floor.
type SizeData struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// PointData is a cell on the floor.
type PointData struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// PositionData is a starting cell plus a compass facing. An empty facing
// means east.
type PositionData struct {
	X      int    `json:"x" yaml:"x"`
	Y      int    `json:"y" yaml:"y"`
	Facing string `json:"facing" yaml:"facing"`
}

// WarriorData describes the player's unit.
type WarriorData struct {
	Name      string       `json:"name,omitempty" yaml:"name,omitempty"`
	Character string       `json:"character" yaml:"character"`
	MaxHealth int          `json:"maxHealth" yaml:"maxHealth"`
	Abilities []AbilityDef `json:"abilities" yaml:"abilities"`
	Position  PositionData `json:"position" yaml:"position"`
}

// UnitData describes an enemy. PlayTurn names a registered behaviour.
type UnitData struct {
	Name      string       `json:"name" yaml:"name"`
	Character string       `json:"character" yaml:"character"`
	MaxHealth int          `json:"maxHealth" yaml:"maxHealth"`
	Reward    int          `json:"reward,omitempty" yaml:"reward,omitempty"`
	Abilities []AbilityDef `json:"abilities" yaml:"abilities"`
	PlayTurn  string       `json:"playTurn,omitempty" yaml:"playTurn,omitempty"`
	Position  PositionData `json:"position" yaml:"position"`
}

// Definition resolves ability and behaviour names into a playable level.
func (d *LevelDef) Definition(abilities *AbilityRegistry, behaviors *BehaviorRegistry) (level.Definition, error) {
	warriorPos, err := d.Floor.Warrior.Position.position()
	if err != nil {
		return level.Definition{}, fmt.Errorf("level %s/%d: warrior: %w", d.TowerName, d.Number, err)
	}
	warriorAbilities, err := abilities.Entries(d.Floor.Warrior.Abilities)
	if err != nil {
		return level.Definition{}, fmt.Errorf("level %s/%d: warrior: %w", d.TowerName, d.Number, err)
	}

	def := level.Definition{
		TowerName:   d.TowerName,
		Number:      d.Number,
		Description: d.Description,
		Tip:         d.Tip,
		Clue:        d.Clue,
		TimeBonus:   d.TimeBonus,
		AceScore:    d.AceScore,
		Floor: level.FloorDef{
			Width:  d.Floor.Size.Width,
			Height: d.Floor.Size.Height,
			Stairs: world.Pt(d.Floor.Stairs.X, d.Floor.Stairs.Y),
			Warrior: level.WarriorDef{
				Name:      d.Floor.Warrior.Name,
				Character: d.Floor.Warrior.Character,
				MaxHealth: d.Floor.Warrior.MaxHealth,
				Abilities: warriorAbilities,
				Position:  warriorPos,
			},
			Units: make([]level.UnitDef, 0, len(d.Floor.Units)),
		},
	}

	for i, u := range d.Floor.Units {
		unit, err := u.unitDef(abilities, behaviors)
		if err != nil {
			return level.Definition{}, fmt.Errorf("level %s/%d: unit %d (%s): %w", d.TowerName, d.Number, i, u.Name, err)
		}
		def.Floor.Units = append(def.Floor.Units, unit)
	}
	return def, nil
}

func (u UnitData) unitDef(abilities *AbilityRegistry, behaviors *BehaviorRegistry) (level.UnitDef, error) {
	pos, err := u.Position.position()
	if err != nil {
		return level.UnitDef{}, err
	}
	entries, err := abilities.Entries(u.Abilities)
	if err != nil {
		return level.UnitDef{}, err
	}
	playTurn, err := behaviors.Resolve(u.PlayTurn)
	if err != nil {
		return level.UnitDef{}, err
	}
	return level.UnitDef{
		Name:      u.Name,
		Character: u.Character,
		MaxHealth: u.MaxHealth,
		Reward:    u.Reward,
		Abilities: entries,
		PlayTurn:  playTurn,
		Position:  pos,
	}, nil
}

func (p PositionData) position() (level.Position, error) {
	facing := world.East
	if p.Facing != "" {
		d, err := world.ParseDirection(p.Facing)
		if err != nil {
			return level.Position{}, err
		}
		if !d.IsAbsolute() {
			return level.Position{}, fmt.Errorf("%w: facing must be a compass direction, got %q", world.ErrInvalidDirection, p.Facing)
		}
		facing = d
	}
	return level.Position{X: p.X, Y: p.Y, Facing: facing}, nil
}
