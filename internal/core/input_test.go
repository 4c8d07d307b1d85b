package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.Hold(ActionLeft)

	if !f.Has(ActionJump) {
		t.Error("Jump should be set")
	}
	if f.Has(ActionPause) {
		t.Error("Pause should not be set")
	}
	if !f.IsHeld(ActionLeft) || f.IsHeld(ActionRight) {
		t.Error("only Left should be held")
	}

	f.Clear()

	if f.Has(ActionJump) || f.IsHeld(ActionLeft) {
		t.Error("Clear should drop actions and held keys")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) || f.IsHeld(ActionLeft) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionJump)
	f.Hold(ActionRight)
	if !f.Has(ActionJump) || !f.IsHeld(ActionRight) {
		t.Error("zero frame should lazily allocate")
	}
}

// heldAfterApply ages the tracker one tick and reports what it held.
func heldAfterApply(h *HeldInput) InputFrame {
	f := NewInputFrame()
	h.Apply(&f)
	return f
}

func TestHeldInputWindow(t *testing.T) {
	h := NewHeldInput(3)
	h.Press(ActionRight)

	held := 0
	for i := 0; i < 5; i++ {
		if heldAfterApply(h).IsHeld(ActionRight) {
			held++
		}
	}

	if held != 3 {
		t.Errorf("press should hold for 3 ticks, held for %d", held)
	}
	if len(h.remaining) != 0 {
		t.Error("hold window should have expired")
	}
}

func TestHeldInputRepeatRefreshes(t *testing.T) {
	h := NewHeldInput(3)
	h.Press(ActionLeft)

	for i := 0; i < 10; i++ {
		if !heldAfterApply(h).IsHeld(ActionLeft) {
			t.Fatalf("tick %d: auto-repeat should keep Left held", i)
		}
		if i%2 == 1 {
			h.Press(ActionLeft)
		}
	}
}

func TestHeldInputOppositeAndRelease(t *testing.T) {
	h := NewHeldInput(10)
	h.Press(ActionLeft)
	h.Press(ActionRight)

	f := heldAfterApply(h)
	if f.IsHeld(ActionLeft) || !f.IsHeld(ActionRight) {
		t.Error("pressing Right should release Left")
	}

	h.Release(ActionRight)
	if heldAfterApply(h).IsHeld(ActionRight) {
		t.Error("Release should end the hold immediately")
	}

	h.Press(ActionJump)
	if heldAfterApply(h).IsHeld(ActionJump) {
		t.Error("non-directional actions are never held")
	}

	h.Press(ActionLeft)
	h.ReleaseAll()
	if heldAfterApply(h).IsHeld(ActionLeft) {
		t.Error("ReleaseAll should drop everything")
	}
}

func TestNewHeldInputDefault(t *testing.T) {
	h := NewHeldInput(0)
	if h.holdTicks != DefaultHoldTicks {
		t.Errorf("holdTicks = %d, expected %d", h.holdTicks, DefaultHoldTicks)
	}
}
