package combat

import (
	"fmt"

	"github.com/samdwyer/warriortower/internal/entity"
	"github.com/samdwyer/warriortower/internal/world"
)

// Ability names used by levels and behaviours.
const (
	AbilityWalk   = "walk"
	AbilityAttack = "attack"
	AbilityFeel   = "feel"
	AbilityLook   = "look"
	AbilityHealth = "health"
	AbilityRest   = "rest"
	AbilityPivot  = "pivot"
)

// lookRange is how many spaces look returns.
const lookRange = 3

// Walk moves one space if it is empty and bumps otherwise. A bump still
// spends the turn.
func Walk() entity.Factory {
	return func(u *entity.Unit) entity.Ability {
		return entity.Ability{
			Action:      true,
			Description: fmt.Sprintf("Move one space in the given direction (%s by default).", world.Forward),
			Perform: func(dir world.Direction) (any, error) {
				u.Say(fmt.Sprintf("walks %s", dir))
				space, err := u.SpaceAt(dir)
				if err != nil {
					return nil, err
				}
				if space.IsEmpty() {
					if _, err := u.Move(dir); err != nil {
						return nil, err
					}
				} else {
					u.Say(fmt.Sprintf("bumps into %s", space))
				}
				return nil, nil
			},
		}
	}
}

// Attack damages the unit in the given direction using table.
func Attack(table DamageTable) entity.Factory {
	return func(u *entity.Unit) entity.Ability {
		return entity.Ability{
			Action:      true,
			Description: fmt.Sprintf("Attack a unit in the given direction (%s by default) dealing %d HP of damage.", world.Forward, table.Forward),
			Perform: func(dir world.Direction) (any, error) {
				space, err := u.SpaceAt(dir)
				if err != nil {
					return nil, err
				}
				receiver := space.Unit()
				if receiver == nil {
					u.Say(fmt.Sprintf("attacks %s and hits nothing", dir))
					return nil, nil
				}
				relative, err := world.Relative(dir, u.Facing())
				if err != nil {
					return nil, err
				}
				u.Say(fmt.Sprintf("attacks %s and hits %s", dir, receiver))
				u.Damage(receiver, table.Amount(relative))
				return nil, nil
			},
		}
	}
}

// Feel returns the adjacent space.
func Feel() entity.Factory {
	return func(u *entity.Unit) entity.Ability {
		return entity.Ability{
			Description: fmt.Sprintf("Return the adjacent space in the given direction (%s by default).", world.Forward),
			Perform: func(dir world.Direction) (any, error) {
				return u.SpaceAt(dir)
			},
		}
	}
}

// Look returns the next three spaces in a direction.
func Look() entity.Factory {
	return func(u *entity.Unit) entity.Ability {
		return entity.Ability{
			Description: fmt.Sprintf("Return an array of up to %d spaces in the given direction (%s by default).", lookRange, world.Forward),
			Perform: func(dir world.Direction) (any, error) {
				spaces := make([]world.Space, 0, lookRange)
				for n := 1; n <= lookRange; n++ {
					space, err := u.SpaceAtDistance(dir, n)
					if err != nil {
						return nil, err
					}
					spaces = append(spaces, space)
				}
				return spaces, nil
			},
		}
	}
}

// Health returns the unit's current health.
func Health() entity.Factory {
	return func(u *entity.Unit) entity.Ability {
		return entity.Ability{
			Description: "Return an integer representing your health.",
			Perform: func(world.Direction) (any, error) {
				return u.Health(), nil
			},
		}
	}
}

// Rest heals percent of max health, rounded, at the cost of the turn.
func Rest(percent int) entity.Factory {
	return func(u *entity.Unit) entity.Ability {
		return entity.Ability{
			Action:      true,
			Description: fmt.Sprintf("Gain %d%% of max health back, but do nothing more.", percent),
			Perform: func(world.Direction) (any, error) {
				if u.Health() >= u.MaxHealth() {
					u.Say("is already fit as a fiddle")
					return nil, nil
				}
				amount := (u.MaxHealth()*percent + 50) / 100
				healed := u.Heal(amount)
				u.Say(fmt.Sprintf("receives %d health from resting, up to %d health", healed, u.Health()))
				return nil, nil
			},
		}
	}
}

// Pivot turns the unit to face a relative direction.
func Pivot() entity.Factory {
	return func(u *entity.Unit) entity.Ability {
		return entity.Ability{
			Action:           true,
			Description:      fmt.Sprintf("Rotate in the given direction (%s by default).", world.Backward),
			DefaultDirection: world.Backward,
			Perform: func(dir world.Direction) (any, error) {
				if err := u.Pivot(dir); err != nil {
					return nil, err
				}
				u.Say(fmt.Sprintf("pivots %s", dir))
				return nil, nil
			},
		}
	}
}
