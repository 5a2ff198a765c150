package telemetry

import (
	"context"
	"testing"
)

func TestNoopTracerRecordsNothing(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "game.turn")
	defer span.End()

	if span.IsRecording() {
		t.Error("noop span should not record")
	}
	if span.SpanContext().IsValid() {
		t.Error("noop span should not carry a valid context")
	}
}

func TestGetHostname(t *testing.T) {
	if getHostname() == "" {
		t.Error("getHostname() returned an empty string")
	}
}

func TestResourceDescribesRun(t *testing.T) {
	tests := []struct {
		name       string
		run        Run
		wantLevel  string
		wantScript string
	}{
		{"catalog level", Run{Level: "beginner/2", Script: "/home/me/scripts/feel.lua"}, "beginner/2", "feel.lua"},
		{"level file", Run{Level: "levels/custom.yaml", Script: "walk.lua", Interactive: true}, "levels/custom.yaml", "walk.lua"},
		{"nothing set", Run{}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := newResource(context.Background(), tt.run)
			if err != nil {
				t.Fatalf("newResource() error: %v", err)
			}
			set := res.Set()

			if v, _ := set.Value("service.name"); v.AsString() != serviceName {
				t.Errorf("service.name = %q, want %q", v.AsString(), serviceName)
			}
			if v, _ := set.Value(AttrLevel); v.AsString() != tt.wantLevel {
				t.Errorf("%s = %q, want %q", AttrLevel, v.AsString(), tt.wantLevel)
			}
			if v, _ := set.Value(AttrScript); v.AsString() != tt.wantScript {
				t.Errorf("%s = %q, want %q", AttrScript, v.AsString(), tt.wantScript)
			}
			if v, ok := set.Value(AttrInteractive); !ok || v.AsBool() != tt.run.Interactive {
				t.Errorf("%s = %v, want %v", AttrInteractive, v.AsBool(), tt.run.Interactive)
			}
		})
	}
}
