// Package entity provides the units that act on a floor.
package entity

import (
	"errors"
	"fmt"

	"github.com/samdwyer/warriortower/internal/world"
)

var (
	// ErrActionAlreadyUsed is returned when a unit tries a second action in one turn.
	ErrActionAlreadyUsed = errors.New("action already used this turn")
	// ErrUnitDead is returned when a dead unit tries to act.
	ErrUnitDead = errors.New("unit is dead")
)

// Narrator receives the lines a unit says.
type Narrator interface {
	Narrate(u *Unit, message string)
}

// NarratorFunc adapts a function to the Narrator interface.
type NarratorFunc func(u *Unit, message string)

// Narrate calls f.
func (f NarratorFunc) Narrate(u *Unit, message string) { f(u, message) }

// TurnFunc is an enemy's scripted behaviour for one turn.
type TurnFunc func(u *Unit) error

// Config describes a unit before it is bound to a floor.
type Config struct {
	Name      string
	Character string
	MaxHealth int
	// Reward is the score a warrior earns for the kill. Zero means MaxHealth.
	Reward    int
	Warrior   bool
	Abilities []AbilityEntry
	PlayTurn  TurnFunc
	Narrator  Narrator
}

// Unit is a combat entity on the floor.
type Unit struct {
	name      string
	character string
	health    int
	maxHealth int
	reward    int
	score     int
	warrior   bool

	position world.Point
	facing   world.Direction
	floor    *world.Floor

	abilities   *AbilitySet
	playTurn    TurnFunc
	narrator    Narrator
	actionTaken bool
}

// New creates a unit at full health and binds its abilities.
func New(cfg Config) (*Unit, error) {
	if cfg.MaxHealth <= 0 {
		return nil, fmt.Errorf("unit %q: max health must be positive, got %d", cfg.Name, cfg.MaxHealth)
	}
	u := &Unit{
		name:      cfg.Name,
		character: cfg.Character,
		health:    cfg.MaxHealth,
		maxHealth: cfg.MaxHealth,
		reward:    cfg.Reward,
		warrior:   cfg.Warrior,
		facing:    world.East,
		playTurn:  cfg.PlayTurn,
		narrator:  cfg.Narrator,
	}
	if u.reward == 0 {
		u.reward = cfg.MaxHealth
	}
	abilities, err := NewAbilitySet(u, cfg.Abilities)
	if err != nil {
		return nil, fmt.Errorf("unit %q: %w", cfg.Name, err)
	}
	u.abilities = abilities
	return u, nil
}

// Place puts the unit on floor at pos facing the given compass direction.
func (u *Unit) Place(floor *world.Floor, pos world.Point, facing world.Direction) error {
	if !facing.IsAbsolute() {
		return fmt.Errorf("%w: %s facing %q", world.ErrInvalidDirection, u, facing)
	}
	u.position = pos
	u.facing = facing
	if err := floor.Place(u); err != nil {
		return err
	}
	u.floor = floor
	return nil
}

// =============================================================================
// Occupant interface implementation
// =============================================================================

// Position returns the unit's cell.
func (u *Unit) Position() world.Point { return u.position }

// IsAlive returns true if the unit has health remaining.
func (u *Unit) IsAlive() bool { return u.health > 0 }

// IsWarrior returns true for the player-controlled unit.
func (u *Unit) IsWarrior() bool { return u.warrior }

// Glyph returns the unit's map character.
func (u *Unit) Glyph() string { return u.character }

// String returns the name used in narration.
func (u *Unit) String() string {
	if u.name != "" {
		return u.name
	}
	if u.warrior {
		return "Warrior"
	}
	return u.character
}

// TakeDamage reduces health, floored at zero, and returns the damage taken.
func (u *Unit) TakeDamage(amount int) int {
	if amount <= 0 || !u.IsAlive() {
		return 0
	}
	actual := amount
	if actual > u.health {
		actual = u.health
	}
	u.health -= actual
	return actual
}

var _ world.Occupant = (*Unit)(nil)

// =============================================================================
// Stats
// =============================================================================

// Name returns the configured name, which may be empty.
func (u *Unit) Name() string { return u.name }

// Health returns current health.
func (u *Unit) Health() int { return u.health }

// MaxHealth returns maximum health.
func (u *Unit) MaxHealth() int { return u.maxHealth }

// Score returns the points the unit has earned.
func (u *Unit) Score() int { return u.score }

// Reward returns the points awarded for killing this unit.
func (u *Unit) Reward() int { return u.reward }

// Facing returns the compass direction the unit faces.
func (u *Unit) Facing() world.Direction { return u.facing }

// Floor returns the floor the unit was placed on, or nil.
func (u *Unit) Floor() *world.Floor { return u.floor }

// Abilities returns the unit's bound abilities.
func (u *Unit) Abilities() *AbilitySet { return u.abilities }

// Behavior returns the unit's scripted turn, nil for the warrior.
func (u *Unit) Behavior() TurnFunc { return u.playTurn }

// Heal restores health, capped at max, and returns the amount healed.
func (u *Unit) Heal(amount int) int {
	if amount <= 0 || !u.IsAlive() {
		return 0
	}
	actual := amount
	if u.health+actual > u.maxHealth {
		actual = u.maxHealth - u.health
	}
	u.health += actual
	return actual
}

// EarnPoints adds to the unit's score.
func (u *Unit) EarnPoints(points int) {
	if points > 0 {
		u.score += points
	}
}

// =============================================================================
// Floor interaction
// =============================================================================

// Say forwards a narration line. It never changes state.
func (u *Unit) Say(message string) {
	if u.narrator != nil {
		u.narrator.Narrate(u, message)
	}
}

// SpaceAt returns the space adjacent to the unit in dir.
func (u *Unit) SpaceAt(dir world.Direction) (world.Space, error) {
	return u.SpaceAtDistance(dir, 1)
}

// SpaceAtDistance returns the space n cells away in dir.
func (u *Unit) SpaceAtDistance(dir world.Direction, n int) (world.Space, error) {
	delta, err := world.Resolve(dir, u.facing)
	if err != nil {
		return world.Space{}, err
	}
	pos := u.position
	for i := 0; i < n; i++ {
		pos = pos.Add(delta)
	}
	if u.floor == nil {
		return world.Space{}, nil
	}
	return u.floor.SpaceAt(pos), nil
}

// Move steps one cell in dir if that cell is empty. It reports whether the
// unit moved.
func (u *Unit) Move(dir world.Direction) (bool, error) {
	space, err := u.SpaceAt(dir)
	if err != nil {
		return false, err
	}
	if !space.IsEmpty() {
		return false, nil
	}
	u.position = space.Position()
	return true, nil
}

// Pivot turns the unit to face dir.
func (u *Unit) Pivot(dir world.Direction) error {
	facing, err := world.Absolute(dir, u.facing)
	if err != nil {
		return err
	}
	u.facing = facing
	return nil
}

// Damage deals amount to target and returns the damage done. A warrior
// earns the target's reward when the blow kills it.
func (u *Unit) Damage(target world.Occupant, amount int) int {
	if target == nil || !target.IsAlive() {
		return 0
	}
	dealt := target.TakeDamage(amount)
	if dealt > 0 {
		if t, ok := target.(*Unit); ok {
			t.Say(fmt.Sprintf("takes %d damage, %d health power left", dealt, t.health))
		}
	}
	if !target.IsAlive() {
		if t, ok := target.(*Unit); ok {
			t.Say("dies")
			if u.warrior {
				u.EarnPoints(t.reward)
			}
		}
	}
	return dealt
}

// =============================================================================
// Turns
// =============================================================================

// PrepareTurn resets the per-turn action budget.
func (u *Unit) PrepareTurn() {
	u.actionTaken = false
}

// ActionTaken reports whether the unit used its action this turn.
func (u *Unit) ActionTaken() bool {
	return u.actionTaken
}

// Perform runs the named ability. The direction is validated before an
// action is spent; a second action in the same turn is rejected without
// running.
func (u *Unit) Perform(name string, dir world.Direction) (any, error) {
	if !u.IsAlive() {
		return nil, fmt.Errorf("%s: %w", u, ErrUnitDead)
	}
	ability, ok := u.abilities.Get(name)
	if !ok {
		return nil, fmt.Errorf("%s: %w %q", u, ErrUnknownAbility, name)
	}
	if dir == "" {
		dir = ability.DefaultDirection
	}
	d, err := world.ParseDirection(string(dir))
	if err != nil {
		return nil, err
	}
	if ability.Action {
		if u.actionTaken {
			return nil, fmt.Errorf("%s %s: %w", u, name, ErrActionAlreadyUsed)
		}
		u.actionTaken = true
	}
	return ability.Perform(d)
}
