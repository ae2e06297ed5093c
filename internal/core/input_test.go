package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionUp)
	f.Set(ActionUndo)
	f.Set(ActionNone)

	for _, a := range []Action{ActionUp, ActionUndo} {
		if !f.Has(a) {
			t.Errorf("expected %v to be set", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionDown, ActionQuit} {
		if f.Has(a) {
			t.Errorf("did not expect %v", a)
		}
	}

	copied := f
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
	if !copied.Has(ActionUp) {
		t.Error("frames are values; clearing one must not clear a copy")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:  "None",
		ActionRight: "Right",
		ActionPause: "Pause",
		Action(200): "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, want %q", a, got, want)
		}
	}
}
