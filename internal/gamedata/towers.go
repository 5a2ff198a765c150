package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ErrNoSuchLevel is returned when a tower has no level with the requested number.
var ErrNoSuchLevel = errors.New("no such level")

// TowerDef describes a tower loaded from towers.json.
type TowerDef struct {
	ID     string            `json:"id"`     // Unique identifier (e.g., "beginner")
	Name   string            `json:"name"`   // Display name (e.g., "Beginner")
	Colors map[string]string `json:"colors"` // Hex colour per glyph
	Levels []string          `json:"levels"` // Embedded level files, first level first
}

// Palette returns the tower's glyph colours. Invalid entries are skipped.
func (t *TowerDef) Palette() map[string]tcell.Color {
	palette := make(map[string]tcell.Color, len(t.Colors))
	for glyph, hex := range t.Colors {
		color, err := ParseHexColor(hex)
		if err != nil {
			continue
		}
		palette[glyph] = color
	}
	return palette
}

// LevelCount returns the number of levels in the tower.
func (t *TowerDef) LevelCount() int {
	return len(t.Levels)
}

// LoadLevel loads the level with the given 1-based number.
func (t *TowerDef) LoadLevel(number int) (LevelDef, error) {
	if number < 1 || number > len(t.Levels) {
		return LevelDef{}, fmt.Errorf("%w: %s/%d", ErrNoSuchLevel, t.ID, number)
	}
	return Load[LevelDef](t.Levels[number-1])
}

// TowersFile represents the structure of towers.json.
type TowersFile struct {
	Towers []TowerDef `json:"towers"`
}

// LoadTowers loads tower definitions from the embedded towers.json file.
func LoadTowers() ([]TowerDef, error) {
	file, err := Load[TowersFile]("towers.json")
	if err != nil {
		return nil, err
	}
	return file.Towers, nil
}
