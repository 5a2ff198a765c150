package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/warriortower/internal/level"
)

// Layout rows.
const (
	rowTitle  = 0
	rowMap    = 2
	mapMargin = 1
)

// Renderer handles drawing a level snapshot and its narration to the screen.
type Renderer struct {
	screen  *Screen
	palette map[string]tcell.Color
}

// NewRenderer creates a renderer. palette maps glyphs to colours; glyphs
// without an entry use defaults.
func NewRenderer(screen *Screen, palette map[string]tcell.Color) *Renderer {
	if palette == nil {
		palette = map[string]tcell.Color{}
	}
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the title, the floor, a status line and as many of the most
// recent narration lines as fit below it.
func (r *Renderer) Render(snap level.Snapshot, status string, lines []string) {
	r.screen.Clear()

	title := fmt.Sprintf("%s tower, level %d", snap.TowerName, snap.Number)
	r.screen.DrawText(0, rowTitle, title, baseStyle.Bold(true))

	for y, row := range snap.Floor.Map {
		for x, cell := range row {
			r.screen.DrawGlyph(mapMargin+x, rowMap+y, cell.Character, r.cellStyle(cell))
		}
	}

	y := rowMap + len(snap.Floor.Map) + 1
	r.screen.DrawText(0, y, status, baseStyle.Foreground(tcell.ColorWhite))
	y += 2

	_, height := r.screen.Size()
	room := height - y
	if room <= 0 {
		r.screen.Show()
		return
	}
	if len(lines) > room {
		lines = lines[len(lines)-room:]
	}
	for i, line := range lines {
		r.RenderMessage(line, y+i)
	}

	r.screen.Show()
}

// cellStyle returns the appropriate style for a map cell.
func (r *Renderer) cellStyle(cell level.Cell) tcell.Style {
	if color, ok := r.palette[cell.Character]; ok {
		return baseStyle.Foreground(color)
	}
	switch {
	case cell.Unit != nil && cell.Unit.Warrior:
		return baseStyle.Foreground(tcell.ColorYellow).Bold(true)
	case cell.Unit != nil:
		return baseStyle.Foreground(tcell.ColorRed)
	case cell.Stairs:
		return baseStyle.Foreground(tcell.ColorWhite)
	default:
		return baseStyle.Foreground(tcell.ColorDarkGray)
	}
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.DrawText(0, y, msg, baseStyle.Foreground(tcell.ColorGray))
}
