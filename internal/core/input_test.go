package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	if len(f.Actions) != 0 || len(f.Clicks) != 0 {
		t.Error("new frame should be empty")
	}

	f.Set(ActionToggle)
	f.Click(4, 2)

	if !f.Has(ActionToggle) {
		t.Error("frame should have ActionToggle")
	}
	if f.Has(ActionHint) {
		t.Error("frame should not have ActionHint")
	}
	if len(f.Clicks) != 1 || f.Clicks[0] != (Point{X: 4, Y: 2}) {
		t.Errorf("Clicks = %v, expected [{4 2}]", f.Clicks)
	}

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionToggle) || len(f.Clicks) != 0 {
		t.Error("frame should be empty after Clear")
	}
	if !clone.Has(ActionToggle) || len(clone.Clicks) != 1 {
		t.Error("clone should be unaffected by Clear")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestTicksFor(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		ms       int
		expected int
	}{
		{"restart delay at 60fps", 60, 1500, 90},
		{"restart delay at 30fps", 30, 1500, 45},
		{"zero rate falls back to 60", 0, 1000, 60},
		{"tiny delay rounds up", 10, 1, 1},
		{"no delay", 60, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := RuntimeConfig{TickRate: tc.rate}
			if got := cfg.TicksFor(tc.ms); got != tc.expected {
				t.Errorf("TicksFor(%d) = %d, expected %d", tc.ms, got, tc.expected)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionToggle.String() != "Toggle" {
		t.Errorf("ActionToggle.String() = %q", ActionToggle.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ScreenW != 80 || cfg.ScreenH != 24 || cfg.TickRate != 60 || cfg.Seed != 0 {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
	if cfg.TicksFor(1500) != 90 {
		t.Errorf("default restart delay = %d ticks, expected 90", cfg.TicksFor(1500))
	}
}
