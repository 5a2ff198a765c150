package game

import (
	"fmt"
	"log"

	"github.com/samdwyer/warriortower/internal/entity"
)

// Line is one narrated event.
type Line struct {
	Turn    int
	Unit    string
	Message string
}

// String formats the line the way it is shown to the player.
func (l Line) String() string {
	if l.Unit == "" {
		return l.Message
	}
	return l.Unit + " " + l.Message
}

// Transcript records narration for a run. It implements entity.Narrator.
type Transcript struct {
	lines  []Line
	turn   int
	logger *log.Logger
}

// NewTranscript creates a transcript. A non-nil logger receives every line.
func NewTranscript(logger *log.Logger) *Transcript {
	return &Transcript{
		lines:  make([]Line, 0),
		logger: logger,
	}
}

// Narrate records a unit's line.
func (t *Transcript) Narrate(u *entity.Unit, message string) {
	t.add(Line{Turn: t.turn, Unit: u.String(), Message: message})
}

// Note records an engine line not attributed to a unit.
func (t *Transcript) Note(message string) {
	t.add(Line{Turn: t.turn, Message: message})
}

// startTurn marks the beginning of a round.
func (t *Transcript) startTurn(turn int) {
	t.turn = turn
	t.Note(fmt.Sprintf("- turn %d -", turn))
}

func (t *Transcript) add(l Line) {
	t.lines = append(t.lines, l)
	if t.logger != nil {
		t.logger.Print(l.String())
	}
}

// Lines returns every recorded line.
func (t *Transcript) Lines() []Line {
	out := make([]Line, len(t.lines))
	copy(out, t.lines)
	return out
}

// Strings returns the formatted lines, optionally only those of one turn.
// A turn of zero returns all lines.
func (t *Transcript) Strings(turn int) []string {
	out := make([]string, 0, len(t.lines))
	for _, l := range t.lines {
		if turn == 0 || l.Turn == turn {
			out = append(out, l.String())
		}
	}
	return out
}

var _ entity.Narrator = (*Transcript)(nil)
