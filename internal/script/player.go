// Package script runs warrior decisions written in Lua.
//
// A script defines a global function playTurn(warrior). The warrior table
// exposes one method per ability granted by the level, so a level that only
// grants walk gives the script warrior:walk() and nothing else:
//
//	function playTurn(warrior)
//	  if warrior:feel():isEmpty() then
//	    warrior:walk()
//	  else
//	    warrior:attack()
//	  end
//	end
//
// The Lua state lives for the whole run, so globals persist between turns.
package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Shopify/go-lua"

	"github.com/samdwyer/warriortower/internal/entity"
	"github.com/samdwyer/warriortower/internal/game"
	"github.com/samdwyer/warriortower/internal/world"
)

const playTurnName = "playTurn"

// ErrNoPlayTurn is returned when a script does not define playTurn.
var ErrNoPlayTurn = errors.New("script does not define a playTurn function")

// Player is a game.Player backed by a Lua state. It is not safe for
// concurrent use.
type Player struct {
	state *lua.State
	name  string

	// Set by ability calls during a turn.
	rejected error
	fault    error
}

var _ game.Player = (*Player)(nil)

// Load compiles source and runs its top level. name is used in error messages.
func Load(name, source string) (*Player, error) {
	p := newPlayer(name)
	if err := lua.LoadBuffer(p.state, source, name, ""); err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return p.init()
}

// LoadFile compiles and runs the script at path.
func LoadFile(path string) (*Player, error) {
	p := newPlayer(path)
	if err := lua.LoadFile(p.state, path, ""); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return p.init()
}

func newPlayer(name string) *Player {
	state := lua.NewState()
	openSandbox(state)
	return &Player{state: state, name: name}
}

// openSandbox opens the libraries a decision function needs and nothing
// that reaches the file system.
func openSandbox(state *lua.State) {
	libs := []lua.RegistryFunction{
		{Name: "_G", Function: lua.BaseOpen},
		{Name: "string", Function: lua.StringOpen},
		{Name: "table", Function: lua.TableOpen},
		{Name: "math", Function: lua.MathOpen},
	}
	for _, lib := range libs {
		lua.Require(state, lib.Name, lib.Function, true)
		state.Pop(1)
	}
	for _, name := range []string{"dofile", "loadfile", "require"} {
		state.PushNil()
		state.SetGlobal(name)
	}
}

func (p *Player) init() (*Player, error) {
	if err := p.state.ProtectedCall(0, 0, 0); err != nil {
		return nil, fmt.Errorf("run %s: %w", p.name, err)
	}
	p.state.Global(playTurnName)
	defined := p.state.IsFunction(-1)
	p.state.Pop(1)
	if !defined {
		return nil, fmt.Errorf("%s: %w", p.name, ErrNoPlayTurn)
	}
	return p, nil
}

// PlayTurn calls the script's playTurn with a table bound to warrior.
// Lua errors come back as errors. A second action in one turn is skipped
// and reported after the script returns.
func (p *Player) PlayTurn(warrior *entity.Unit) error {
	p.rejected, p.fault = nil, nil
	defer p.state.SetTop(0)

	p.state.Global(playTurnName)
	p.pushWarrior(warrior)
	if err := p.state.ProtectedCall(1, 0, 0); err != nil {
		// A fault the script caught with pcall is not the error it raised.
		if p.fault != nil && strings.Contains(err.Error(), p.fault.Error()) {
			return fmt.Errorf("%s: %w", p.name, p.fault)
		}
		return fmt.Errorf("%s: %w", p.name, err)
	}
	return p.rejected
}

// pushWarrior pushes a table with one method per ability.
func (p *Player) pushWarrior(warrior *entity.Unit) {
	names := warrior.Abilities().Names()
	p.state.CreateTable(0, len(names)+1)
	for _, name := range names {
		p.state.PushGoFunction(p.abilityFunc(warrior, name))
		p.state.SetField(-2, name)
	}
	if _, ok := warrior.Abilities().Get("think"); !ok {
		p.state.PushGoFunction(func(l *lua.State) int {
			warrior.Say("thinks " + stringArg(l))
			return 0
		})
		p.state.SetField(-2, "think")
	}
}

// abilityFunc wraps an ability for Lua. It accepts both warrior:walk("left")
// and warrior.walk("left").
func (p *Player) abilityFunc(warrior *entity.Unit, name string) lua.Function {
	return func(l *lua.State) int {
		dir, err := directionArg(l)
		if err != nil {
			p.fault = err
			lua.Errorf(l, "%s", err.Error())
			return 0
		}
		res, err := warrior.Perform(name, dir)
		if errors.Is(err, entity.ErrActionAlreadyUsed) {
			if p.rejected == nil {
				p.rejected = err
			}
			return 0
		}
		if err != nil {
			p.fault = err
			lua.Errorf(l, "%s", err.Error())
			return 0
		}
		return pushResult(l, res)
	}
}

// directionArg returns the direction argument, skipping a method receiver.
// A missing or nil argument means the ability's default direction.
func directionArg(l *lua.State) (world.Direction, error) {
	for i := 1; i <= l.Top(); i++ {
		switch l.TypeOf(i) {
		case lua.TypeTable:
			continue
		case lua.TypeNil, lua.TypeNone:
			return "", nil
		case lua.TypeString:
			s, _ := l.ToString(i)
			return world.Direction(s), nil
		default:
			return "", fmt.Errorf("%w: %s", world.ErrInvalidDirection, l.TypeOf(i))
		}
	}
	return "", nil
}

// stringArg returns the first string argument, skipping a method receiver.
func stringArg(l *lua.State) string {
	for i := 1; i <= l.Top(); i++ {
		if l.TypeOf(i) == lua.TypeString {
			s, _ := l.ToString(i)
			return s
		}
	}
	return ""
}

func pushResult(l *lua.State, res any) int {
	switch v := res.(type) {
	case nil:
		return 0
	case int:
		l.PushInteger(v)
	case bool:
		l.PushBoolean(v)
	case string:
		l.PushString(v)
	case world.Space:
		pushSpace(l, v)
	case []world.Space:
		l.CreateTable(len(v), 0)
		for i, space := range v {
			pushSpace(l, space)
			l.RawSetInt(-2, i+1)
		}
	default:
		lua.Errorf(l, "unsupported ability result %T", res)
		return 0
	}
	return 1
}

// pushSpace pushes a table of predicates over space. Predicates are
// evaluated when called, so a kept space reflects later turns.
func pushSpace(l *lua.State, space world.Space) {
	predicates := []struct {
		name string
		fn   func() bool
	}{
		{"isEmpty", space.IsEmpty},
		{"isPlayer", space.IsPlayer},
		{"isEnemy", space.IsEnemy},
		{"isStairs", space.IsStairs},
		{"isWall", space.IsWall},
		{"isUnit", space.IsUnit},
	}

	l.CreateTable(0, len(predicates)+2)
	for _, pred := range predicates {
		fn := pred.fn
		l.PushGoFunction(func(l *lua.State) int {
			l.PushBoolean(fn())
			return 1
		})
		l.SetField(-2, pred.name)
	}
	l.PushGoFunction(func(l *lua.State) int {
		l.PushString(space.Character())
		return 1
	})
	l.SetField(-2, "character")
	l.PushGoFunction(func(l *lua.State) int {
		l.PushString(space.String())
		return 1
	})
	l.SetField(-2, "toString")
}
