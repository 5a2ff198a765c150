// Package game drives the turn loop of a level.
package game

// Phase is the turn coordinator's current state.
type Phase int

const (
	// PhaseAwaitingWarrior waits for the player's decision for this turn.
	PhaseAwaitingWarrior Phase = iota
	// PhaseEnemyTurns runs each live enemy's behaviour in placement order.
	PhaseEnemyTurns
	// PhaseTurnComplete is reached after every unit acted; terminal checks follow.
	PhaseTurnComplete
	// PhaseWarriorDead ends the run in defeat.
	PhaseWarriorDead
	// PhaseWarriorAtGoal ends the run with the warrior on the stairs.
	PhaseWarriorAtGoal
	// PhaseTurnLimit ends the run when the configured ceiling is reached.
	PhaseTurnLimit
	// PhaseAborted ends the run after a player script error or cancellation.
	PhaseAborted
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingWarrior:
		return "awaiting_warrior"
	case PhaseEnemyTurns:
		return "enemy_turns"
	case PhaseTurnComplete:
		return "turn_complete"
	case PhaseWarriorDead:
		return "warrior_dead"
	case PhaseWarriorAtGoal:
		return "warrior_at_goal"
	case PhaseTurnLimit:
		return "turn_limit"
	case PhaseAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// IsTerminal returns true once the run is over.
func (p Phase) IsTerminal() bool {
	switch p {
	case PhaseWarriorDead, PhaseWarriorAtGoal, PhaseTurnLimit, PhaseAborted:
		return true
	}
	return false
}
