package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionJump, ActionRestart, ActionNone)

	if !f.Has(ActionJump) || !f.Has(ActionRestart) {
		t.Error("frame should hold both actions")
	}
	if f.Has(ActionNone) || len(f.Actions) != 2 {
		t.Errorf("ActionNone must never be set, got %v", f.Actions)
	}

	if f.Empty() {
		t.Error("frame with actions reported empty")
	}
	if !NewInputFrame(ActionNone).Empty() {
		t.Error("frame holding only ActionNone should be empty")
	}

	var zero InputFrame
	if zero.Has(ActionJump) || !zero.Empty() {
		t.Error("zero frame should be empty")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set() on a zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionJump, "Jump"},
		{ActionRestart, "Restart"},
		{ActionConfirm, "Confirm"},
		{ActionHistory, "History"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}
