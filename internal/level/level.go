package level

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/warriortower/internal/entity"
	"github.com/samdwyer/warriortower/internal/telemetry"
	"github.com/samdwyer/warriortower/internal/world"
)

// Level is an instantiated definition: a floor with its units placed.
type Level struct {
	Definition Definition
	Floor      *world.Floor
	Warrior    *entity.Unit
	// Units holds the enemies in registration order.
	Units []*entity.Unit
}

// Option configures instantiation.
type Option func(*options)

type options struct {
	narrator entity.Narrator
}

// WithNarrator routes every unit's narration to n.
func WithNarrator(n entity.Narrator) Option {
	return func(o *options) {
		o.narrator = n
	}
}

// New builds the floor and places the warrior followed by each enemy.
func New(ctx context.Context, def Definition, opts ...Option) (*Level, error) {
	tracer := telemetry.Tracer("level")
	_, span := tracer.Start(ctx, "level.new")
	defer span.End()
	span.SetAttributes(
		attribute.String("level.tower", def.TowerName),
		attribute.Int("level.number", def.Number),
		attribute.Int("level.width", def.Floor.Width),
		attribute.Int("level.unit_count", len(def.Floor.Units)),
	)

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	floor, err := world.NewFloor(def.Floor.Width, def.Floor.Height, def.Floor.Stairs)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("level %s/%d: %w", def.TowerName, def.Number, err)
	}

	wd := def.Floor.Warrior
	warrior, err := entity.New(entity.Config{
		Name:      wd.Name,
		Character: wd.Character,
		MaxHealth: wd.MaxHealth,
		Warrior:   true,
		Abilities: wd.Abilities,
		Narrator:  o.narrator,
	})
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("level %s/%d: warrior: %w", def.TowerName, def.Number, err)
	}
	if err := warrior.Place(floor, wd.Position.Point(), wd.Position.Facing); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("level %s/%d: warrior: %w", def.TowerName, def.Number, err)
	}

	lvl := &Level{
		Definition: def,
		Floor:      floor,
		Warrior:    warrior,
		Units:      make([]*entity.Unit, 0, len(def.Floor.Units)),
	}

	for i, ud := range def.Floor.Units {
		u, err := entity.New(entity.Config{
			Name:      ud.Name,
			Character: ud.Character,
			MaxHealth: ud.MaxHealth,
			Reward:    ud.Reward,
			Abilities: ud.Abilities,
			PlayTurn:  ud.PlayTurn,
			Narrator:  o.narrator,
		})
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("level %s/%d: unit %d: %w", def.TowerName, def.Number, i, err)
		}
		if err := u.Place(floor, ud.Position.Point(), ud.Position.Facing); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("level %s/%d: unit %d: %w", def.TowerName, def.Number, i, err)
		}
		lvl.Units = append(lvl.Units, u)
	}

	return lvl, nil
}

// LiveEnemies returns the enemies that are still alive, in registration order.
func (l *Level) LiveEnemies() []*entity.Unit {
	alive := make([]*entity.Unit, 0, len(l.Units))
	for _, u := range l.Units {
		if u.IsAlive() {
			alive = append(alive, u)
		}
	}
	return alive
}

// WarriorAtStairs reports whether the living warrior stands on the stairs.
func (l *Level) WarriorAtStairs() bool {
	return l.Warrior.IsAlive() && l.Warrior.Position().Equal(l.Floor.Stairs)
}
