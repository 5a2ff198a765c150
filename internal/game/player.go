package game

import (
	"fmt"

	"github.com/samdwyer/warriortower/internal/entity"
)

// Player supplies the warrior's decision for each turn. It may perform at
// most one action and any number of senses on the warrior.
type Player interface {
	PlayTurn(warrior *entity.Unit) error
}

// PlayerFunc adapts a function to the Player interface.
type PlayerFunc func(warrior *entity.Unit) error

// PlayTurn calls f.
func (f PlayerFunc) PlayTurn(warrior *entity.Unit) error { return f(warrior) }

// PlayerScriptError wraps a failure raised by the player's decision
// function. It ends the run.
type PlayerScriptError struct {
	Turn int
	Err  error
}

func (e *PlayerScriptError) Error() string {
	return fmt.Sprintf("player script failed on turn %d: %v", e.Turn, e.Err)
}

func (e *PlayerScriptError) Unwrap() error {
	return e.Err
}
