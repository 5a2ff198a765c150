package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/warriortower/internal/combat"
	"github.com/samdwyer/warriortower/internal/entity"
)

// Built-in behaviour names usable as a unit's playTurn.
const (
	BehaviorMelee      = "melee"
	BehaviorStationary = "stationary"
)

// ErrUnknownBehavior is returned for a playTurn name with no registered behaviour.
var ErrUnknownBehavior = errors.New("unknown behaviour")

// BehaviorRegistry maps behaviour names to enemy turn functions.
type BehaviorRegistry struct {
	behaviors map[string]entity.TurnFunc
	names     []string
}

// NewBehaviorRegistry creates an empty registry.
func NewBehaviorRegistry() *BehaviorRegistry {
	return &BehaviorRegistry{
		behaviors: make(map[string]entity.TurnFunc),
	}
}

// DefaultBehaviors returns a registry holding the built-in behaviours.
func DefaultBehaviors() *BehaviorRegistry {
	r := NewBehaviorRegistry()
	r.Register(BehaviorMelee, combat.Melee)
	r.Register(BehaviorStationary, combat.Stationary)
	return r
}

// Register adds or replaces the behaviour under name.
func (r *BehaviorRegistry) Register(name string, fn entity.TurnFunc) {
	if _, ok := r.behaviors[name]; !ok {
		r.names = append(r.names, name)
	}
	r.behaviors[name] = fn
}

// GetByID returns the behaviour registered under name, or nil if not found.
func (r *BehaviorRegistry) GetByID(name string) entity.TurnFunc {
	return r.behaviors[name]
}

// Resolve looks up a playTurn name. An empty name yields no behaviour.
func (r *BehaviorRegistry) Resolve(name string) (entity.TurnFunc, error) {
	if name == "" {
		return nil, nil
	}
	fn := r.behaviors[name]
	if fn == nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownBehavior, name)
	}
	return fn, nil
}

// All returns the registered behaviour names in registration order.
func (r *BehaviorRegistry) All() []string {
	return r.names
}

// Count returns the number of registered behaviours.
func (r *BehaviorRegistry) Count() int {
	return len(r.names)
}
