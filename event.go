package rwui

import "github.com/hajimehoshi/ebiten/v2"

// Event is a semantic input event delivered to widgets once per frame by the
// [App] shell. The set of variants is closed: [CursorMoved], [MouseInput],
// and [WheelScrolled].
type Event interface {
	isEvent()
}

// CursorMoved reports that the pointer moved to a new absolute position in
// screen coordinates.
type CursorMoved struct {
	Position Vec2
}

func (CursorMoved) isEvent() {}

// ButtonState describes whether a mouse button transitioned to pressed or
// released.
type ButtonState uint8

const (
	StatePressed  ButtonState = iota // button went down this frame
	StateReleased                    // button went up this frame
)

// MouseInput reports a mouse button state change.
type MouseInput struct {
	State  ButtonState
	Button MouseButton
}

func (MouseInput) isEvent() {}

// WheelScrolled reports mouse wheel movement. Buttons ignore it; it exists so
// applications can consume scrolling through the same event stream.
type WheelScrolled struct {
	Offset Vec2
}

func (WheelScrolled) isEvent() {}

// --- Input polling ---

// inputState tracks the previous frame's raw mouse state so polling can be
// diffed into discrete events.
type inputState struct {
	lastX, lastY float64
	buttons      [3]bool
	started      bool
}

var polledButtons = [3]ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// poll diffs the current Ebitengine mouse state against the previous frame and
// appends one event per observed change to buf. The first frame always emits a
// CursorMoved so widgets learn the initial pointer position.
func (in *inputState) poll(buf []Event) []Event {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	if !in.started || x != in.lastX || y != in.lastY {
		buf = append(buf, CursorMoved{Position: Vec2{X: x, Y: y}})
		in.lastX, in.lastY = x, y
		in.started = true
	}

	for i, b := range polledButtons {
		pressed := ebiten.IsMouseButtonPressed(b)
		if pressed == in.buttons[i] {
			continue
		}
		in.buttons[i] = pressed
		state := StateReleased
		if pressed {
			state = StatePressed
		}
		buf = append(buf, MouseInput{State: state, Button: MouseButton(i)})
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		buf = append(buf, WheelScrolled{Offset: Vec2{X: wx, Y: wy}})
	}
	return buf
}

// --- Synthetic event injection ---

// InjectCursorMoved queues a pointer move event at the given screen
// coordinates. The event is delivered on the next frame, suppressing real
// mouse input for that frame.
func (a *App[T]) InjectCursorMoved(x, y float64) {
	a.injectQueue = append(a.injectQueue, CursorMoved{Position: Vec2{X: x, Y: y}})
}

// InjectMousePress queues a left button press event.
func (a *App[T]) InjectMousePress() {
	a.injectQueue = append(a.injectQueue, MouseInput{State: StatePressed, Button: MouseButtonLeft})
}

// InjectMouseRelease queues a left button release event.
func (a *App[T]) InjectMouseRelease() {
	a.injectQueue = append(a.injectQueue, MouseInput{State: StateReleased, Button: MouseButtonLeft})
}

// InjectClick is a convenience that queues a cursor move to (x, y) followed by
// a press and a release. Consumes three frames.
func (a *App[T]) InjectClick(x, y float64) {
	a.InjectCursorMoved(x, y)
	a.InjectMousePress()
	a.InjectMouseRelease()
}

// popInjected removes and returns the oldest injected event.
// Returns nil if the queue is empty.
func (a *App[T]) popInjected() Event {
	if len(a.injectQueue) == 0 {
		return nil
	}
	evt := a.injectQueue[0]
	copy(a.injectQueue, a.injectQueue[1:])
	a.injectQueue = a.injectQueue[:len(a.injectQueue)-1]
	return evt
}
