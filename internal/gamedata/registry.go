package gamedata

import (
	"errors"
	"fmt"
)

// TowerRegistry holds loaded tower definitions.
type TowerRegistry struct {
	towers []TowerDef
}

// NewTowerRegistry creates a registry from loaded tower definitions.
func NewTowerRegistry(towers []TowerDef) *TowerRegistry {
	return &TowerRegistry{towers: towers}
}

// LoadTowerRegistry loads and creates a registry from the embedded towers.json.
func LoadTowerRegistry() (*TowerRegistry, error) {
	towers, err := LoadTowers()
	if err != nil {
		return nil, err
	}
	if len(towers) == 0 {
		return nil, errors.New("no towers loaded from towers.json")
	}
	return NewTowerRegistry(towers), nil
}

// MustLoadTowerRegistry loads a registry, panicking on error.
func MustLoadTowerRegistry() *TowerRegistry {
	registry, err := LoadTowerRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the tower with the given ID, or nil if not found.
func (r *TowerRegistry) GetByID(id string) *TowerDef {
	for i := range r.towers {
		if r.towers[i].ID == id {
			return &r.towers[i]
		}
	}
	return nil
}

// All returns all tower definitions.
func (r *TowerRegistry) All() []TowerDef {
	return r.towers
}

// Count returns the number of towers in the registry.
func (r *TowerRegistry) Count() int {
	return len(r.towers)
}

// Level loads level number of the tower id.
func (r *TowerRegistry) Level(id string, number int) (LevelDef, error) {
	tower := r.GetByID(id)
	if tower == nil {
		return LevelDef{}, fmt.Errorf("%w: unknown tower %q", ErrNoSuchLevel, id)
	}
	return tower.LoadLevel(number)
}
