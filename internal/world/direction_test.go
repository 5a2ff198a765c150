package world

import (
	"errors"
	"testing"
)

func TestResolveAbsolute(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Point
	}{
		{North, Pt(0, -1)},
		{East, Pt(1, 0)},
		{South, Pt(0, 1)},
		{West, Pt(-1, 0)},
	}

	for _, tt := range tests {
		// Facing must not matter for absolute directions
		for _, facing := range AbsoluteDirections {
			got, err := Resolve(tt.dir, facing)
			if err != nil {
				t.Fatalf("Resolve(%s, %s) error: %v", tt.dir, facing, err)
			}
			if got != tt.expected {
				t.Errorf("Resolve(%s, %s) = %v, want %v", tt.dir, facing, got, tt.expected)
			}
		}
	}
}

func TestResolveRelative(t *testing.T) {
	tests := []struct {
		dir, facing Direction
		expected    Point
	}{
		{Forward, East, Pt(1, 0)},
		{Backward, East, Pt(-1, 0)},
		{Left, East, Pt(0, -1)},
		{Right, East, Pt(0, 1)},
		{Forward, West, Pt(-1, 0)},
		{Backward, West, Pt(1, 0)},
		{Left, West, Pt(0, 1)},
		{Right, West, Pt(0, -1)},
		{Forward, North, Pt(0, -1)},
		{Right, North, Pt(1, 0)},
		{Forward, South, Pt(0, 1)},
		{Right, South, Pt(-1, 0)},
		{"", East, Pt(1, 0)}, // default is forward
	}

	for _, tt := range tests {
		got, err := Resolve(tt.dir, tt.facing)
		if err != nil {
			t.Fatalf("Resolve(%q, %s) error: %v", tt.dir, tt.facing, err)
		}
		if got != tt.expected {
			t.Errorf("Resolve(%q, %s) = %v, want %v", tt.dir, tt.facing, got, tt.expected)
		}
	}
}

func TestBackwardIsNegatedForward(t *testing.T) {
	for _, facing := range AbsoluteDirections {
		fwd, _ := Resolve(Forward, facing)
		back, _ := Resolve(Backward, facing)
		if back != fwd.Neg() {
			t.Errorf("facing %s: backward %v is not -forward %v", facing, back, fwd)
		}
	}
}

func TestResolveInvalid(t *testing.T) {
	if _, err := Resolve("sideways", East); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("Resolve(sideways) error = %v, want ErrInvalidDirection", err)
	}
	if _, err := Resolve(Forward, Left); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("Resolve with relative facing error = %v, want ErrInvalidDirection", err)
	}
	if _, err := ParseDirection("up"); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("ParseDirection(up) error = %v, want ErrInvalidDirection", err)
	}
}

func TestParseDirectionDefault(t *testing.T) {
	got, err := ParseDirection("")
	if err != nil || got != Forward {
		t.Errorf("ParseDirection(\"\") = %q, %v, want forward", got, err)
	}
}

func TestRelative(t *testing.T) {
	tests := []struct {
		dir, facing Direction
		expected    Direction
	}{
		{West, East, Backward},
		{East, East, Forward},
		{North, East, Left},
		{South, East, Right},
		{East, West, Backward},
		{Backward, North, Backward},
	}

	for _, tt := range tests {
		got, err := Relative(tt.dir, tt.facing)
		if err != nil {
			t.Fatalf("Relative(%s, %s) error: %v", tt.dir, tt.facing, err)
		}
		if got != tt.expected {
			t.Errorf("Relative(%s, %s) = %s, want %s", tt.dir, tt.facing, got, tt.expected)
		}
	}
}

func TestAbsoluteRelativeRoundTrip(t *testing.T) {
	for _, facing := range AbsoluteDirections {
		for _, rel := range RelativeDirections {
			abs, err := Absolute(rel, facing)
			if err != nil {
				t.Fatal(err)
			}
			back, err := Relative(abs, facing)
			if err != nil {
				t.Fatal(err)
			}
			if back != rel {
				t.Errorf("facing %s: %s -> %s -> %s", facing, rel, abs, back)
			}
		}
	}
}
