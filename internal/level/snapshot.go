package level

import (
	"context"

	"github.com/samdwyer/warriortower/internal/entity"
	"github.com/samdwyer/warriortower/internal/world"
)

// Snapshot is the renderable state of a level.
type Snapshot struct {
	TowerName   string        `json:"towerName"`
	Number      int           `json:"number"`
	Description string        `json:"description"`
	Tip         string        `json:"tip"`
	Clue        string        `json:"clue"`
	TimeBonus   int           `json:"timeBonus"`
	Floor       FloorSnapshot `json:"floor"`
}

// FloorSnapshot is the bordered map plus the warrior's stats.
type FloorSnapshot struct {
	// Map is row-major with one border row and column on each side.
	Map     [][]Cell      `json:"map"`
	Warrior *UnitSnapshot `json:"warrior"`
}

// Cell is one map glyph.
type Cell struct {
	Character string        `json:"character"`
	Stairs    bool          `json:"stairs"`
	Unit      *UnitSnapshot `json:"unit,omitempty"`
}

// UnitSnapshot describes a unit. Score, Warrior and Abilities are only set
// for the warrior.
type UnitSnapshot struct {
	Name      string          `json:"name,omitempty"`
	Character string          `json:"character"`
	Health    int             `json:"health"`
	MaxHealth int             `json:"maxHealth"`
	Score     *int            `json:"score,omitempty"`
	Warrior   bool            `json:"warrior,omitempty"`
	Abilities *AbilityListing `json:"abilities,omitempty"`
}

// AbilityListing holds [name, description] pairs in declaration order.
type AbilityListing struct {
	Actions [][2]string `json:"actions"`
	Senses  [][2]string `json:"senses"`
}

// Snapshot projects the level's current state. It has no side effects.
func (l *Level) Snapshot() Snapshot {
	def := l.Definition
	return Snapshot{
		TowerName:   def.TowerName,
		Number:      def.Number,
		Description: def.Description,
		Tip:         def.Tip,
		Clue:        def.Clue,
		TimeBonus:   def.TimeBonus,
		Floor: FloorSnapshot{
			Map:     snapshotMap(l.Floor),
			Warrior: snapshotUnit(l.Warrior),
		},
	}
}

func snapshotMap(f *world.Floor) [][]Cell {
	rows := make([][]Cell, 0, f.Height+2)
	for y := -1; y <= f.Height; y++ {
		row := make([]Cell, 0, f.Width+2)
		for x := -1; x <= f.Width; x++ {
			if tile := f.Tile(x, y); tile.IsWall() {
				row = append(row, Cell{Character: tile.String()})
				continue
			}
			space := f.SpaceAt(world.Pt(x, y))
			cell := Cell{
				Character: space.Character(),
				Stairs:    space.IsStairs(),
			}
			if u, ok := space.Unit().(*entity.Unit); ok {
				cell.Unit = snapshotUnit(u)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	return rows
}

func snapshotUnit(u *entity.Unit) *UnitSnapshot {
	s := &UnitSnapshot{
		Name:      u.Name(),
		Character: u.Glyph(),
		Health:    u.Health(),
		MaxHealth: u.MaxHealth(),
	}
	if u.IsWarrior() {
		score := u.Score()
		s.Score = &score
		s.Warrior = true
		s.Abilities = &AbilityListing{
			Actions: pairs(u.Abilities().Actions()),
			Senses:  pairs(u.Abilities().Senses()),
		}
	}
	return s
}

func pairs(infos []entity.AbilityInfo) [][2]string {
	out := make([][2]string, 0, len(infos))
	for _, info := range infos {
		out = append(out, [2]string{info.Name, info.Description})
	}
	return out
}

// GetLevel instantiates def and returns its initial snapshot.
func GetLevel(def Definition) (Snapshot, error) {
	lvl, err := New(context.Background(), def)
	if err != nil {
		return Snapshot{}, err
	}
	return lvl.Snapshot(), nil
}
