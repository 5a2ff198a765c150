// Package combat provides the built-in abilities and enemy behaviours.
package combat

import "github.com/samdwyer/warriortower/internal/world"

// DamageTable is an attack's damage keyed by the direction of the blow
// relative to the attacker's facing. Only backward blows are penalised.
type DamageTable struct {
	Forward  int
	Backward int
}

// NewDamageTable builds a table, clamping backward damage into [0, forward].
func NewDamageTable(forward, backward int) DamageTable {
	if forward < 0 {
		forward = 0
	}
	if backward < 0 {
		backward = 0
	}
	if backward > forward {
		backward = forward
	}
	return DamageTable{Forward: forward, Backward: backward}
}

// DefaultBackward derives backward damage when a level gives only the
// forward amount: 5 -> 3, 3 -> 2, i.e. ceil(forward * 3/5).
func DefaultBackward(forward int) int {
	if forward <= 0 {
		return 0
	}
	return (forward*3 + 4) / 5
}

// Amount returns the damage for a blow in the given relative direction.
func (t DamageTable) Amount(relative world.Direction) int {
	if relative == world.Backward {
		return t.Backward
	}
	return t.Forward
}
