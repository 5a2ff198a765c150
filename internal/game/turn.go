package game

import (
	"errors"
	"fmt"

	"github.com/samdwyer/warriortower/internal/entity"
)

// playWarrior runs the player's decision for this turn. Player failures,
// including panics, become a PlayerScriptError. A rejected second action
// is narrated and the turn goes on.
func (g *Game) playWarrior() (err error) {
	w := g.level.Warrior
	w.PrepareTurn()

	defer func() {
		if r := recover(); r != nil {
			err = &PlayerScriptError{Turn: g.turn, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if perr := g.player.PlayTurn(w); perr != nil {
		if errors.Is(perr, entity.ErrActionAlreadyUsed) {
			g.transcript.Note(perr.Error())
			return nil
		}
		return &PlayerScriptError{Turn: g.turn, Err: perr}
	}
	return nil
}

// playEnemies runs each live enemy once in placement order. The floor's
// live sequence is evaluated lazily, so a unit killed earlier in the pass
// is skipped. Behaviour errors are engine faults and abort the run.
func (g *Game) playEnemies() error {
	for occupant := range g.level.Floor.LiveUnits() {
		u, ok := occupant.(*entity.Unit)
		if !ok || u.IsWarrior() {
			continue
		}
		behavior := u.Behavior()
		if behavior == nil {
			continue
		}
		u.PrepareTurn()
		if err := behavior(u); err != nil {
			return fmt.Errorf("turn %d: %s: %w", g.turn, u, err)
		}
	}
	return nil
}

// checkTerminal moves a completed round into its next phase.
func (g *Game) checkTerminal() {
	w := g.level.Warrior
	switch {
	case !w.IsAlive():
		g.phase = PhaseWarriorDead
	case g.level.WarriorAtStairs():
		g.phase = PhaseWarriorAtGoal
	case g.turn >= g.cfg.MaxTurns:
		g.phase = PhaseTurnLimit
	default:
		g.phase = PhaseAwaitingWarrior
	}
}
