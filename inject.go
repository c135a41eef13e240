package fbopick

// syntheticPointerEvent represents a single injected pointer event in
// window pixels. It goes through the same pointer-down path as real input.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
	button           MouseButton
}

// InjectPress queues a press of button at the given window coordinates.
// The event is consumed on the next frame's Update.
func (in *Input) InjectPress(x, y float64, button MouseButton) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
		button:  button,
	})
}

// InjectRelease queues a release of button at the given window coordinates.
func (in *Input) InjectRelease(x, y float64, button MouseButton) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: false,
		button:  button,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (in *Input) InjectClick(x, y float64, button MouseButton) {
	in.InjectPress(x, y, button)
	in.InjectRelease(x, y, button)
}

// Pending reports how many injected events are still queued.
func (in *Input) Pending() int {
	return len(in.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the pointer-down path. Returns true if an event was consumed
// (real input should be skipped this frame).
func (in *Input) processInjectedInput(mods KeyModifiers) bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	b := int(evt.button)
	if b >= len(in.injectDown) {
		return true
	}
	if evt.pressed && !in.injectDown[b] {
		in.firePointerDown(mousePointerID, evt.screenX, evt.screenY, evt.button, mods)
	}
	in.injectDown[b] = evt.pressed
	return true
}
