package entity

import (
	"errors"
	"fmt"

	"github.com/samdwyer/warriortower/internal/world"
)

var (
	// ErrUnknownAbility is returned when a unit performs an ability it was not granted.
	ErrUnknownAbility = errors.New("unknown ability")
	// ErrDuplicateAbility is returned when a level grants the same ability twice.
	ErrDuplicateAbility = errors.New("duplicate ability")
)

// Ability is a capability bound to one unit.
// Actions consume the unit's turn; senses are free.
type Ability struct {
	Action      bool
	Description string
	// DefaultDirection replaces an omitted direction. Empty means world.Forward.
	DefaultDirection world.Direction
	// Perform runs the ability with an already validated direction.
	Perform func(dir world.Direction) (any, error)
}

// Factory binds an ability to its owning unit.
type Factory func(u *Unit) Ability

// AbilityEntry names a factory in a level definition. A slice of entries
// keeps the declaration order.
type AbilityEntry struct {
	Name    string
	Factory Factory
}

// AbilityInfo is the player-facing listing of an ability.
type AbilityInfo struct {
	Name        string
	Description string
}

// AbilitySet is a unit's bound abilities in declaration order.
type AbilitySet struct {
	names     []string
	abilities map[string]Ability
}

// NewAbilitySet calls each factory with u, keeping declaration order.
func NewAbilitySet(u *Unit, entries []AbilityEntry) (*AbilitySet, error) {
	set := &AbilitySet{
		names:     make([]string, 0, len(entries)),
		abilities: make(map[string]Ability, len(entries)),
	}
	for _, e := range entries {
		if e.Factory == nil {
			return nil, fmt.Errorf("ability %q has no factory", e.Name)
		}
		if _, exists := set.abilities[e.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAbility, e.Name)
		}
		set.names = append(set.names, e.Name)
		set.abilities[e.Name] = e.Factory(u)
	}
	return set, nil
}

// Get returns the ability with the given name.
func (s *AbilitySet) Get(name string) (Ability, bool) {
	a, ok := s.abilities[name]
	return a, ok
}

// Names returns every ability name in declaration order.
func (s *AbilitySet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Actions lists the turn-consuming abilities in declaration order.
func (s *AbilitySet) Actions() []AbilityInfo {
	return s.filter(true)
}

// Senses lists the free abilities in declaration order.
func (s *AbilitySet) Senses() []AbilityInfo {
	return s.filter(false)
}

func (s *AbilitySet) filter(action bool) []AbilityInfo {
	out := make([]AbilityInfo, 0, len(s.names))
	for _, name := range s.names {
		a := s.abilities[name]
		if a.Action == action {
			out = append(out, AbilityInfo{Name: name, Description: a.Description})
		}
	}
	return out
}

// Count returns the number of bound abilities.
func (s *AbilitySet) Count() int {
	return len(s.names)
}
