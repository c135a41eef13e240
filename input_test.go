package fbopick

import "testing"

func TestInjectClickFiresOnce(t *testing.T) {
	in := NewInput()
	var got []PointerContext
	in.OnPointerDown(func(ctx PointerContext) { got = append(got, ctx) })

	in.InjectClick(12, 34, MouseButtonLeft)
	if in.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", in.Pending())
	}
	for range 3 {
		in.Update()
	}

	if len(got) != 1 {
		t.Fatalf("fired %d times, want 1", len(got))
	}
	if got[0].ScreenX != 12 || got[0].ScreenY != 34 || got[0].Button != MouseButtonLeft {
		t.Errorf("ctx = %+v", got[0])
	}
	if in.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", in.Pending())
	}
}

func TestInjectPressWithoutReleaseDoesNotRepeat(t *testing.T) {
	in := NewInput()
	n := 0
	in.OnPointerDown(func(PointerContext) { n++ })

	in.InjectPress(1, 1, MouseButtonLeft)
	in.InjectPress(2, 2, MouseButtonLeft)
	in.Update()
	in.Update()
	if n != 1 {
		t.Errorf("fired %d times, want 1", n)
	}

	in.InjectRelease(2, 2, MouseButtonLeft)
	in.InjectPress(3, 3, MouseButtonLeft)
	in.Update()
	in.Update()
	if n != 2 {
		t.Errorf("fired %d times after release, want 2", n)
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	in := NewInput()
	a, b := 0, 0
	ha := in.OnPointerDown(func(PointerContext) { a++ })
	in.OnPointerDown(func(PointerContext) { b++ })

	in.firePointerDown(mousePointerID, 0, 0, MouseButtonLeft, 0)
	ha.Remove()
	in.firePointerDown(mousePointerID, 0, 0, MouseButtonLeft, 0)

	if a != 1 || b != 2 {
		t.Errorf("a=%d b=%d, want 1 2", a, b)
	}

	// Removing twice is harmless.
	ha.Remove()
	CallbackHandle{}.Remove()
}

func TestCtrlClickIsSecondary(t *testing.T) {
	in := NewInput()
	var got MouseButton
	in.OnPointerDown(func(ctx PointerContext) { got = ctx.Button })

	in.firePointerDown(mousePointerID, 0, 0, MouseButtonLeft, ModCtrl)
	if got != MouseButtonRight {
		t.Errorf("Ctrl+left = %v, want right", got)
	}

	in.CtrlClickSecondary = false
	in.firePointerDown(mousePointerID, 0, 0, MouseButtonLeft, ModCtrl)
	if got != MouseButtonLeft {
		t.Errorf("Ctrl+left with remap off = %v, want left", got)
	}

	in.CtrlClickSecondary = true
	in.firePointerDown(mousePointerID, 0, 0, MouseButtonLeft, ModShift)
	if got != MouseButtonLeft {
		t.Errorf("Shift+left = %v, want left", got)
	}
}
