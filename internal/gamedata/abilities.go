package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/warriortower/internal/combat"
	"github.com/samdwyer/warriortower/internal/entity"
)

// DefaultRestPercent is the share of max health restored by rest when a
// level does not say otherwise.
const DefaultRestPercent = 10

// ErrMissingPower is returned when a damaging ability has no power.
var ErrMissingPower = errors.New("ability needs a positive power")

// AbilityDef grants one ability to a unit. Only the parameters the named
// ability understands are read.
type AbilityDef struct {
	Name          string `json:"name" yaml:"name"`
	Power         int    `json:"power,omitempty" yaml:"power,omitempty"`                 // Forward damage (attack)
	BackwardPower int    `json:"backwardPower,omitempty" yaml:"backwardPower,omitempty"` // Backward damage; derived from power when zero
	Percent       int    `json:"percent,omitempty" yaml:"percent,omitempty"`             // Health share restored (rest)
}

// Builder turns an ability's parameters into a factory that binds it to a unit.
type Builder func(def AbilityDef) (entity.Factory, error)

// =============================================================================
// AbilityRegistry
// =============================================================================

// AbilityRegistry maps ability names to builders.
type AbilityRegistry struct {
	builders map[string]Builder
	names    []string
}

// NewAbilityRegistry creates an empty registry.
func NewAbilityRegistry() *AbilityRegistry {
	return &AbilityRegistry{
		builders: make(map[string]Builder),
	}
}

// DefaultAbilities returns a registry holding every built-in ability.
func DefaultAbilities() *AbilityRegistry {
	r := NewAbilityRegistry()
	r.mustRegister(combat.AbilityWalk, fixed(combat.Walk()))
	r.mustRegister(combat.AbilityAttack, buildAttack)
	r.mustRegister(combat.AbilityFeel, fixed(combat.Feel()))
	r.mustRegister(combat.AbilityLook, fixed(combat.Look()))
	r.mustRegister(combat.AbilityHealth, fixed(combat.Health()))
	r.mustRegister(combat.AbilityRest, buildRest)
	r.mustRegister(combat.AbilityPivot, fixed(combat.Pivot()))
	return r
}

// Register adds a builder under name.
func (r *AbilityRegistry) Register(name string, b Builder) error {
	if name == "" || b == nil {
		return fmt.Errorf("register ability %q: name and builder are required", name)
	}
	if _, ok := r.builders[name]; ok {
		return fmt.Errorf("register ability: %w %q", entity.ErrDuplicateAbility, name)
	}
	r.builders[name] = b
	r.names = append(r.names, name)
	return nil
}

func (r *AbilityRegistry) mustRegister(name string, b Builder) {
	if err := r.Register(name, b); err != nil {
		panic(err)
	}
}

// GetByID returns the builder registered under name, or nil if not found.
func (r *AbilityRegistry) GetByID(name string) Builder {
	return r.builders[name]
}

// All returns the registered ability names in registration order.
func (r *AbilityRegistry) All() []string {
	return r.names
}

// Count returns the number of registered abilities.
func (r *AbilityRegistry) Count() int {
	return len(r.names)
}

// Entries builds the ordered ability list for a unit, keeping the order of defs.
func (r *AbilityRegistry) Entries(defs []AbilityDef) ([]entity.AbilityEntry, error) {
	entries := make([]entity.AbilityEntry, 0, len(defs))
	for _, def := range defs {
		b := r.builders[def.Name]
		if b == nil {
			return nil, fmt.Errorf("%w %q", entity.ErrUnknownAbility, def.Name)
		}
		factory, err := b(def)
		if err != nil {
			return nil, fmt.Errorf("ability %s: %w", def.Name, err)
		}
		entries = append(entries, entity.AbilityEntry{Name: def.Name, Factory: factory})
	}
	return entries, nil
}

// fixed wraps an ability that takes no parameters.
func fixed(f entity.Factory) Builder {
	return func(AbilityDef) (entity.Factory, error) {
		return f, nil
	}
}

func buildAttack(def AbilityDef) (entity.Factory, error) {
	if def.Power <= 0 {
		return nil, ErrMissingPower
	}
	backward := def.BackwardPower
	if backward == 0 {
		backward = combat.DefaultBackward(def.Power)
	}
	return combat.Attack(combat.NewDamageTable(def.Power, backward)), nil
}

func buildRest(def AbilityDef) (entity.Factory, error) {
	percent := def.Percent
	if percent == 0 {
		percent = DefaultRestPercent
	}
	if percent < 0 || percent > 100 {
		return nil, fmt.Errorf("rest percent %d out of range", percent)
	}
	return combat.Rest(percent), nil
}
