package ui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/warriortower/internal/game"
)

// Viewer plays a game one round per key press.
//
//	space, enter, right  play one round
//	r                    play to the end
//	q, esc, ctrl-c       quit
type Viewer struct {
	screen   *Screen
	renderer *Renderer
	game     *game.Game
	running  bool
	err      error
}

// NewViewer creates a viewer for g.
func NewViewer(screen *Screen, renderer *Renderer, g *game.Game) *Viewer {
	return &Viewer{
		screen:   screen,
		renderer: renderer,
		game:     g,
		running:  true,
	}
}

// Run draws and handles input until the user quits. It returns the game's
// result and the first error a round produced.
func (v *Viewer) Run(ctx context.Context) (game.Result, error) {
	for v.running {
		v.draw()
		v.handleInput(ctx)
	}
	return v.game.Result(), v.err
}

func (v *Viewer) draw() {
	v.renderer.Render(v.game.Snapshot(), v.status(), v.game.Transcript().Strings(0))
}

func (v *Viewer) status() string {
	w := v.game.Level().Warrior
	status := fmt.Sprintf("turn %d  health %d/%d  score %d  [%s]",
		v.game.Turn(), w.Health(), w.MaxHealth(), w.Score(), v.game.Phase())
	if v.err != nil {
		status += "  " + v.err.Error()
	}
	return status
}

// handleInput processes a single input event.
func (v *Viewer) handleInput(ctx context.Context) {
	ev := v.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		v.screen.Sync()
	case nil:
		// The screen was finalized.
		v.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyEnter, tcell.KeyRight:
		v.step(ctx)

	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			v.step(ctx)
		case 'r', 'R':
			for !v.game.Phase().IsTerminal() && v.err == nil {
				v.step(ctx)
			}
		case 'q', 'Q':
			v.running = false
		}
	}
}

func (v *Viewer) step(ctx context.Context) {
	if err := v.game.Step(ctx); err != nil && v.err == nil {
		v.err = err
	}
}
