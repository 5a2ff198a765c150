package game

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/warriortower/internal/level"
	"github.com/samdwyer/warriortower/internal/telemetry"
)

// ErrNoPlayer is returned when a game is created without a player.
var ErrNoPlayer = errors.New("no player")

// Game holds the state of one run of a level. It is not safe for
// concurrent use; separate runs need separate games.
type Game struct {
	cfg        Config
	level      *level.Level
	player     Player
	transcript *Transcript
	tracer     trace.Tracer
	logger     *log.Logger
	phase      Phase
	turn       int
}

// Result summarises a finished (or interrupted) run.
type Result struct {
	Phase  Phase
	Turns  int
	Score  int
	Health int
}

// Option configures a game.
type Option func(*Game)

// WithTracer replaces the default tracer.
func WithTracer(t trace.Tracer) Option {
	return func(g *Game) {
		g.tracer = t
	}
}

// WithLogger echoes narration to l.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New instantiates def and prepares a run driven by player.
func New(ctx context.Context, def level.Definition, player Player, cfg Config, opts ...Option) (*Game, error) {
	if player == nil {
		return nil, ErrNoPlayer
	}
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = DefaultMaxTurns
	}

	g := &Game{
		cfg:    cfg,
		player: player,
		tracer: telemetry.Tracer("game"),
		phase:  PhaseAwaitingWarrior,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil && cfg.Echo {
		g.logger = log.Default()
	}
	g.transcript = NewTranscript(g.logger)

	lvl, err := level.New(ctx, def, level.WithNarrator(g.transcript))
	if err != nil {
		return nil, err
	}
	g.level = lvl
	return g, nil
}

// Level returns the running level.
func (g *Game) Level() *level.Level { return g.level }

// Transcript returns the narration recorded so far.
func (g *Game) Transcript() *Transcript { return g.transcript }

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Turn returns the number of rounds started.
func (g *Game) Turn() int { return g.turn }

// Snapshot returns the level's current snapshot.
func (g *Game) Snapshot() level.Snapshot { return g.level.Snapshot() }

// Run plays rounds until the run reaches a terminal phase.
func (g *Game) Run(ctx context.Context) (Result, error) {
	ctx, span := g.tracer.Start(ctx, "game.run")
	defer span.End()
	def := g.level.Definition
	span.SetAttributes(
		attribute.String("level.tower", def.TowerName),
		attribute.Int("level.number", def.Number),
		attribute.Int("game.max_turns", g.cfg.MaxTurns),
	)

	for !g.phase.IsTerminal() {
		if err := g.Step(ctx); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("game.outcome", g.phase.String()))
			return g.Result(), err
		}
	}

	res := g.Result()
	span.SetAttributes(
		attribute.String("game.outcome", res.Phase.String()),
		attribute.Int("game.turns", res.Turns),
		attribute.Int("warrior.score", res.Score),
		attribute.Int("warrior.health", res.Health),
	)
	return res, nil
}

// Step plays exactly one round: the warrior, then every live enemy. It
// does nothing once the run is over. Cancellation is only observed here,
// between rounds.
func (g *Game) Step(ctx context.Context) error {
	if g.phase.IsTerminal() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		g.phase = PhaseAborted
		return fmt.Errorf("turn %d: %w", g.turn+1, err)
	}

	g.turn++
	_, span := g.tracer.Start(ctx, "game.turn")
	defer span.End()
	span.SetAttributes(attribute.Int("turn", g.turn))
	g.transcript.startTurn(g.turn)

	g.phase = PhaseAwaitingWarrior
	if err := g.playWarrior(); err != nil {
		g.phase = PhaseAborted
		span.RecordError(err)
		return err
	}

	g.phase = PhaseEnemyTurns
	if err := g.playEnemies(); err != nil {
		g.phase = PhaseAborted
		span.RecordError(err)
		return err
	}

	g.phase = PhaseTurnComplete
	g.checkTerminal()
	span.SetAttributes(
		attribute.String("phase", g.phase.String()),
		attribute.Int("warrior.health", g.level.Warrior.Health()),
	)
	return nil
}

// Result reports the run's current outcome.
func (g *Game) Result() Result {
	w := g.level.Warrior
	return Result{
		Phase:  g.phase,
		Turns:  g.turn,
		Score:  w.Score(),
		Health: w.Health(),
	}
}
