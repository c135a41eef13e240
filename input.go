package fbopick

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// mousePointerID identifies the mouse; touches use 1 and up.
const mousePointerID = 0

// PointerContext carries pointer-down event data in window pixels.
type PointerContext struct {
	ScreenX   float64
	ScreenY   float64
	Button    MouseButton
	PointerID int
	Modifiers KeyModifiers
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type handlerRegistry struct {
	pointerDown []pointerHandler
	nextID      uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.pointerDown = removePointerHandler(h.reg.pointerDown, h.id)
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// Input turns mouse, touch and injected events into pointer-down callbacks.
// Update must be called once per frame from the game loop.
type Input struct {
	handlers handlerRegistry

	// CtrlClickSecondary reports a primary press with Ctrl held as a
	// secondary press.
	CtrlClickSecondary bool

	mouseDown    [3]bool
	injectDown   [3]bool
	injectQueue  []syntheticPointerEvent
	touchIDs     []ebiten.TouchID
	nextPointer  int
	touchPointer map[ebiten.TouchID]int
}

// NewInput creates an Input with no handlers.
func NewInput() *Input {
	return &Input{
		CtrlClickSecondary: true,
		touchPointer:       make(map[ebiten.TouchID]int),
	}
}

// OnPointerDown registers fn to run whenever a pointer button goes down.
func (in *Input) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	in.handlers.nextID++
	id := in.handlers.nextID
	in.handlers.pointerDown = append(in.handlers.pointerDown, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &in.handlers}
}

// Update consumes one injected event if any are queued; otherwise it polls
// the real mouse and touch state.
func (in *Input) Update() {
	mods := readModifiers()
	if in.processInjectedInput(mods) {
		return
	}
	in.processMouse(mods)
	in.processTouches(mods)
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

var ebitenButtons = [3]ebiten.MouseButton{
	MouseButtonLeft:   ebiten.MouseButtonLeft,
	MouseButtonRight:  ebiten.MouseButtonRight,
	MouseButtonMiddle: ebiten.MouseButtonMiddle,
}

// processMouse fires on the frame a mouse button changes from up to down.
func (in *Input) processMouse(mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()
	for b, eb := range ebitenButtons {
		pressed := ebiten.IsMouseButtonPressed(eb)
		if pressed && !in.mouseDown[b] {
			in.firePointerDown(mousePointerID, float64(mx), float64(my), MouseButton(b), mods)
		}
		in.mouseDown[b] = pressed
	}
}

// processTouches fires a primary press for every touch that began this frame.
func (in *Input) processTouches(mods KeyModifiers) {
	in.touchIDs = inpututil.AppendJustPressedTouchIDs(in.touchIDs[:0])
	for _, tid := range in.touchIDs {
		pid, ok := in.touchPointer[tid]
		if !ok {
			in.nextPointer++
			pid = mousePointerID + in.nextPointer
			in.touchPointer[tid] = pid
		}
		tx, ty := ebiten.TouchPosition(tid)
		in.firePointerDown(pid, float64(tx), float64(ty), MouseButtonLeft, mods)
	}
	for tid := range in.touchPointer {
		if inpututil.IsTouchJustReleased(tid) {
			delete(in.touchPointer, tid)
		}
	}
}

func (in *Input) firePointerDown(pointerID int, sx, sy float64, button MouseButton, mods KeyModifiers) {
	if in.CtrlClickSecondary && button == MouseButtonLeft && mods&ModCtrl != 0 {
		button = MouseButtonRight
	}
	ctx := PointerContext{
		ScreenX:   sx,
		ScreenY:   sy,
		Button:    button,
		PointerID: pointerID,
		Modifiers: mods,
	}
	for _, h := range in.handlers.pointerDown {
		h.fn(ctx)
	}
}
